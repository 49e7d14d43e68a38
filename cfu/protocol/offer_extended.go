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

// OfferExtendedCode selects the extended offer command. All other values
// are vendor specific.
type OfferExtendedCode uint8

// OfferNotifyOnReady asks the primary component to answer CommandReady
// once it is able to accept offers.
const OfferNotifyOnReady OfferExtendedCode = 0x01

// IsVendorSpecific reports whether the code is a vendor-specific value.
func (c OfferExtendedCode) IsVendorSpecific() bool {
	return c != OfferNotifyOnReady
}

// String returns the string representation of the code.
func (c OfferExtendedCode) String() string {
	if c == OfferNotifyOnReady {
		return "OfferNotifyOnReady"
	}
	return fmt.Sprintf("VendorSpecific(0x%02X)", uint8(c))
}

// FwUpdateOfferExtended is an offer-command-extended frame (16 bytes on the
// wire), tagged with the Command special component ID.
type FwUpdateOfferExtended struct {
	Code        OfferExtendedCode
	ComponentID ComponentID
	Token       HostToken
}

// NewFwUpdateOfferExtended creates an extended offer command frame for the code.
func NewFwUpdateOfferExtended(token HostToken, code OfferExtendedCode) *FwUpdateOfferExtended {
	return &FwUpdateOfferExtended{
		Code:        code,
		ComponentID: ComponentIDCommand,
		Token:       token,
	}
}

// Encode serializes the frame to its fixed 16-byte wire form.
func (cmd *FwUpdateOfferExtended) Encode() []byte {
	bytes := make([]byte, FwUpdateOfferExtendedSize)
	bytes[0] = byte(cmd.Code)
	bytes[2] = byte(cmd.ComponentID)
	bytes[3] = byte(cmd.Token)
	return bytes
}

// NewFwUpdateOfferExtendedFromBytes parses an extended offer command frame
// from its 16-byte wire form. The component ID byte must be the Command value.
func NewFwUpdateOfferExtendedFromBytes(data []byte) (*FwUpdateOfferExtended, error) {
	if len(data) < FwUpdateOfferExtendedSize {
		return nil, newShortBufferError("FwUpdateOfferExtended", data, FwUpdateOfferExtendedSize)
	}
	componentID, err := decodeSpecialComponentID(data[2], ComponentIDCommand)
	if err != nil {
		return nil, err
	}
	return &FwUpdateOfferExtended{
		Code:        OfferExtendedCode(data[0]),
		ComponentID: componentID,
		Token:       NewHostTokenFromByte(data[3]),
	}, nil
}

// String returns a human-readable representation of the frame.
func (cmd *FwUpdateOfferExtended) String() string {
	return fmt.Sprintf("FwUpdateOfferExtended{Code=%s, Token=%s}", cmd.Code, cmd.Token)
}
