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
	"encoding/binary"
	"fmt"
)

const (
	offerFlagForceIgnoreVersion = 0x80
	offerFlagForceReset         = 0x40
)

// OfferComponentInfo is the first dword of a firmware update offer.
type OfferComponentInfo struct {
	SegmentNumber      uint8
	ForceIgnoreVersion bool
	ForceReset         bool
	ComponentID        ComponentID
	Token              HostToken
}

// FwUpdateOffer proposes a firmware image to a component (32 bytes on the wire).
type FwUpdateOffer struct {
	ComponentInfo          OfferComponentInfo
	FirmwareVersion        FwVersion
	VendorSpecific         uint32
	MiscAndProtocolVersion uint32
}

// NewFwUpdateOffer creates an offer for the component with the protocol
// version nibble set in the misc dword.
func NewFwUpdateOffer(token HostToken, componentID ComponentID, version FwVersion) *FwUpdateOffer {
	return &FwUpdateOffer{
		ComponentInfo: OfferComponentInfo{
			SegmentNumber:      0,
			ForceIgnoreVersion: false,
			ForceReset:         false,
			ComponentID:        componentID,
			Token:              token,
		},
		FirmwareVersion:        version,
		VendorSpecific:         0,
		MiscAndProtocolVersion: uint32(ProtocolVersion) << 28,
	}
}

// ProtocolVersionNibble returns the protocol version nibble of the misc dword.
func (offer *FwUpdateOffer) ProtocolVersionNibble() uint8 {
	return uint8(offer.MiscAndProtocolVersion >> 28)
}

// Encode serializes the offer to its fixed 32-byte wire form.
func (offer *FwUpdateOffer) Encode() []byte {
	bytes := make([]byte, FwUpdateOfferSize)
	bytes[0] = offer.ComponentInfo.SegmentNumber
	if offer.ComponentInfo.ForceIgnoreVersion {
		bytes[1] |= offerFlagForceIgnoreVersion
	}
	if offer.ComponentInfo.ForceReset {
		bytes[1] |= offerFlagForceReset
	}
	bytes[2] = byte(offer.ComponentInfo.ComponentID)
	bytes[3] = byte(offer.ComponentInfo.Token)
	bytes[4] = offer.FirmwareVersion.Variant
	binary.LittleEndian.PutUint16(bytes[5:7], offer.FirmwareVersion.Minor)
	bytes[7] = offer.FirmwareVersion.Major
	binary.LittleEndian.PutUint32(bytes[8:12], offer.VendorSpecific)
	binary.LittleEndian.PutUint32(bytes[12:16], offer.MiscAndProtocolVersion)
	return bytes
}

// NewFwUpdateOfferFromBytes parses an offer from its 32-byte wire form.
// Reserved bits and bytes are ignored and read back as zero.
func NewFwUpdateOfferFromBytes(data []byte) (*FwUpdateOffer, error) {
	if len(data) < FwUpdateOfferSize {
		return nil, newShortBufferError("FwUpdateOffer", data, FwUpdateOfferSize)
	}
	return &FwUpdateOffer{
		ComponentInfo: OfferComponentInfo{
			SegmentNumber:      data[0],
			ForceIgnoreVersion: (data[1] & offerFlagForceIgnoreVersion) != 0,
			ForceReset:         (data[1] & offerFlagForceReset) != 0,
			ComponentID:        NewComponentIDFromByte(data[2]),
			Token:              NewHostTokenFromByte(data[3]),
		},
		FirmwareVersion: FwVersion{
			Variant: data[4],
			Minor:   binary.LittleEndian.Uint16(data[5:7]),
			Major:   data[7],
		},
		VendorSpecific:         binary.LittleEndian.Uint32(data[8:12]),
		MiscAndProtocolVersion: binary.LittleEndian.Uint32(data[12:16]),
	}, nil
}

// String returns a human-readable representation of the offer.
func (offer *FwUpdateOffer) String() string {
	return fmt.Sprintf("FwUpdateOffer{Component=%s, Token=%s, Version=%s, Seg=%d}",
		offer.ComponentInfo.ComponentID,
		offer.ComponentInfo.Token,
		offer.FirmwareVersion,
		offer.ComponentInfo.SegmentNumber)
}
