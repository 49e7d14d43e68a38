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

// Package cfu implements the Component Firmware Update (CFU) protocol
// core: the host update engine, the client command router, and the
// pluggable component model. The wire frames live in the protocol
// sub-package; the transport and image capabilities in the io sub-package.
package cfu

import (
	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
)

// ComponentID identifies an independently updatable component.
type ComponentID = protocol.ComponentID

// FwVersion represents a component firmware version.
type FwVersion = protocol.FwVersion

// HostToken identifies the originator of an offer.
type HostToken = protocol.HostToken

// BankType represents a component's storage bank topology.
type BankType = protocol.BankType

// Transport represents a transport.
type Transport = io.Transport

// Image represents a firmware image.
type Image = io.Image
