// Copyright (C) 2026 The go-cfu Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package protocol implements the wire-level frames of the Component
// Firmware Update (CFU) protocol. All multi-byte integer fields are
// little-endian, and every frame serializes to a fixed byte width.
package protocol

// CFU Protocol Specification Version 2.0.
const (
	// ProtocolVersion is the CFU protocol version nibble.
	ProtocolVersion = 0b0010
	// MaxComponentCount is the maximum number of components a client advertises,
	// one primary and up to six sub-components.
	MaxComponentCount = 7
	// MaxSubcomponentCount is the maximum number of sub-components per primary.
	MaxSubcomponentCount = 6
	// DefaultDataLength is the payload capacity of a content command in bytes.
	DefaultDataLength = 52
)

// Fixed frame widths in bytes.
const (
	FwUpdateOfferSize            = 32
	FwUpdateOfferInformationSize = 16
	FwUpdateOfferExtendedSize    = 16
	FwUpdateOfferResponseSize    = 16
	FwUpdateContentCommandSize   = 60
	FwUpdateContentResponseSize  = 16
	GetFwVersionResponseSize     = 60
)
