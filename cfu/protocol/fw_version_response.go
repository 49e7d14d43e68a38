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

	"github.com/cybergarage/go-safecast/safecast"
)

// ProtocolByte is the protocol-version-bearing byte of a
// GetFwVersionResponse header. The upper nibble carries the protocol
// version; the low bit is the extension flag.
type ProtocolByte uint8

const (
	// ProtocolByteNoExtensions indicates no extensions are present.
	ProtocolByteNoExtensions ProtocolByte = ProtocolVersion << 4
	// ProtocolByteExtensionFlagSet indicates extensions are present.
	ProtocolByteExtensionFlagSet ProtocolByte = (ProtocolVersion << 4) | 1
)

// NewProtocolByteFromByte returns the protocol byte for the wire byte.
func NewProtocolByteFromByte(b byte) (ProtocolByte, error) {
	switch ProtocolByte(b) {
	case ProtocolByteNoExtensions, ProtocolByteExtensionFlagSet:
		return ProtocolByte(b), nil
	}
	return 0, newInvalidEnumError("protocol byte", b)
}

// HasExtensions reports whether the extension flag is set.
func (b ProtocolByte) HasExtensions() bool {
	return (b & 0x01) != 0
}

const (
	fwVerComponentInfoSize = 8
	bankMask               = 0x03
	vendorNibbleShift      = 4
)

// FwVerComponentInfo describes one component in a GetFwVersionResponse
// (8 bytes on the wire). The packed byte carries the bank type in bits
// 0-1 and a vendor nibble in bits 4-7; bits 2-3 are reserved.
type FwVerComponentInfo struct {
	FwVersion       FwVersion
	Bank            BankType
	VendorSpecific0 uint8
	ComponentID     ComponentID
	VendorSpecific1 uint16
}

// NewFwVerComponentInfo creates a component info entry with no vendor data.
func NewFwVerComponentInfo(version FwVersion, componentID ComponentID) FwVerComponentInfo {
	return FwVerComponentInfo{
		FwVersion:       version,
		Bank:            SingleBank,
		VendorSpecific0: 0,
		ComponentID:     componentID,
		VendorSpecific1: 0,
	}
}

// NewFwVerComponentInfoWithVendorInfo creates a component info entry with
// the bank type and vendor-specific data.
func NewFwVerComponentInfoWithVendorInfo(version FwVersion, componentID ComponentID, bank BankType, vendorSpecific0 uint8, vendorSpecific1 uint16) FwVerComponentInfo {
	return FwVerComponentInfo{
		FwVersion:       version,
		Bank:            bank & bankMask,
		VendorSpecific0: vendorSpecific0 & 0x0F,
		ComponentID:     componentID,
		VendorSpecific1: vendorSpecific1,
	}
}

func (info *FwVerComponentInfo) packedByte() byte {
	return (byte(info.Bank) & bankMask) | ((info.VendorSpecific0 & 0x0F) << vendorNibbleShift)
}

// GetFwVersionResponse advertises the firmware versions of all registered
// components (60 bytes on the wire). Entries beyond ComponentCount are
// zero on the wire.
type GetFwVersionResponse struct {
	ComponentCount uint8
	ProtocolByte   ProtocolByte
	ComponentInfo  [MaxComponentCount]FwVerComponentInfo
}

// NewGetFwVersionResponse creates a version response for the component
// info entries. The entry count must not exceed MaxComponentCount.
func NewGetFwVersionResponse(infos []FwVerComponentInfo) (*GetFwVersionResponse, error) {
	if MaxComponentCount < len(infos) {
		return nil, fmt.Errorf("component count (%d): %w", len(infos), ErrOutOfRange)
	}
	res := &GetFwVersionResponse{
		ComponentCount: 0,
		ProtocolByte:   ProtocolByteNoExtensions,
		ComponentInfo:  [MaxComponentCount]FwVerComponentInfo{},
	}
	if err := safecast.ToUint8(len(infos), &res.ComponentCount); err != nil {
		return nil, err
	}
	copy(res.ComponentInfo[:], infos)
	return res, nil
}

// Encode serializes the response to its fixed 60-byte wire form.
func (res *GetFwVersionResponse) Encode() []byte {
	bytes := make([]byte, GetFwVersionResponseSize)
	bytes[0] = res.ComponentCount
	bytes[3] = byte(res.ProtocolByte)
	offset := 4
	for i := 0; i < int(res.ComponentCount) && i < MaxComponentCount; i++ {
		info := &res.ComponentInfo[i]
		bytes[offset] = info.packedByte()
		bytes[offset+1] = byte(info.ComponentID)
		binary.LittleEndian.PutUint16(bytes[offset+2:offset+4], info.VendorSpecific1)
		bytes[offset+4] = info.FwVersion.Major
		binary.LittleEndian.PutUint16(bytes[offset+5:offset+7], info.FwVersion.Minor)
		bytes[offset+7] = info.FwVersion.Variant
		offset += fwVerComponentInfoSize
	}
	return bytes
}

// NewGetFwVersionResponseFromBytes parses a version response from its
// 60-byte wire form. Decoding fails when the component count exceeds
// MaxComponentCount; unused entries decode as zero.
func NewGetFwVersionResponseFromBytes(data []byte) (*GetFwVersionResponse, error) {
	if len(data) < GetFwVersionResponseSize {
		return nil, newShortBufferError("GetFwVersionResponse", data, GetFwVersionResponseSize)
	}
	componentCount := data[0]
	if MaxComponentCount < componentCount {
		return nil, fmt.Errorf("component count (%d): %w", componentCount, ErrOutOfRange)
	}
	protocolByte, err := NewProtocolByteFromByte(data[3])
	if err != nil {
		return nil, err
	}
	res := &GetFwVersionResponse{
		ComponentCount: componentCount,
		ProtocolByte:   protocolByte,
		ComponentInfo:  [MaxComponentCount]FwVerComponentInfo{},
	}
	offset := 4
	for i := 0; i < int(componentCount); i++ {
		res.ComponentInfo[i] = FwVerComponentInfo{
			FwVersion: FwVersion{
				Major:   data[offset+4],
				Minor:   binary.LittleEndian.Uint16(data[offset+5 : offset+7]),
				Variant: data[offset+7],
			},
			Bank:            BankType(data[offset] & bankMask),
			VendorSpecific0: (data[offset] >> vendorNibbleShift) & 0x0F,
			ComponentID:     NewComponentIDFromByte(data[offset+1]),
			VendorSpecific1: binary.LittleEndian.Uint16(data[offset+2 : offset+4]),
		}
		offset += fwVerComponentInfoSize
	}
	return res, nil
}

// String returns a human-readable representation of the response.
func (res *GetFwVersionResponse) String() string {
	return fmt.Sprintf("GetFwVersionResponse{Count=%d, ProtocolByte=0x%02X}", res.ComponentCount, uint8(res.ProtocolByte))
}
