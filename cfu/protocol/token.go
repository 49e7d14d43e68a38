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

package protocol

import (
	"fmt"
)

// HostToken identifies the originator of an offer. Any byte value is
// accepted on the wire; values other than the well-known tokens are
// vendor specific.
type HostToken uint8

const (
	// HostTokenDriver identifies an offer issued by the platform driver.
	HostTokenDriver HostToken = 0xA0
	// HostTokenTool identifies an offer issued by an update tool.
	HostTokenTool HostToken = 0xB0
)

// NewHostTokenFromByte returns the host token for the wire byte.
func NewHostTokenFromByte(b byte) HostToken {
	return HostToken(b)
}

// IsVendorSpecific reports whether the token is a vendor-specific value.
func (t HostToken) IsVendorSpecific() bool {
	switch t {
	case HostTokenDriver, HostTokenTool:
		return false
	}
	return true
}

// String returns the string representation of the token.
func (t HostToken) String() string {
	switch t {
	case HostTokenDriver:
		return "Driver"
	case HostTokenTool:
		return "Tool"
	}
	return fmt.Sprintf("VendorSpecific(0x%02X)", uint8(t))
}
