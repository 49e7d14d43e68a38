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

// OfferInformationCode selects the offer-information operation. Values
// above EndOfferList are vendor specific.
type OfferInformationCode uint8

const (
	// StartEntireTransaction opens an update transaction.
	StartEntireTransaction OfferInformationCode = 0x00
	// StartOfferList announces that per-component offers follow.
	StartOfferList OfferInformationCode = 0x01
	// EndOfferList announces that all offers have been sent.
	EndOfferList OfferInformationCode = 0x02
)

// IsVendorSpecific reports whether the code is a vendor-specific value.
func (c OfferInformationCode) IsVendorSpecific() bool {
	return EndOfferList < c
}

// String returns the string representation of the code.
func (c OfferInformationCode) String() string {
	switch c {
	case StartEntireTransaction:
		return "StartEntireTransaction"
	case StartOfferList:
		return "StartOfferList"
	case EndOfferList:
		return "EndOfferList"
	}
	return fmt.Sprintf("VendorSpecific(0x%02X)", uint8(c))
}

// FwUpdateOfferInformation is an offer-information frame (16 bytes on the
// wire), tagged with the Info special component ID.
type FwUpdateOfferInformation struct {
	Code        OfferInformationCode
	ComponentID ComponentID
	Token       HostToken
}

// NewFwUpdateOfferInformation creates an offer-information frame for the code.
func NewFwUpdateOfferInformation(token HostToken, code OfferInformationCode) *FwUpdateOfferInformation {
	return &FwUpdateOfferInformation{
		Code:        code,
		ComponentID: ComponentIDInfo,
		Token:       token,
	}
}

// Encode serializes the frame to its fixed 16-byte wire form.
func (info *FwUpdateOfferInformation) Encode() []byte {
	bytes := make([]byte, FwUpdateOfferInformationSize)
	bytes[0] = byte(info.Code)
	bytes[2] = byte(info.ComponentID)
	bytes[3] = byte(info.Token)
	return bytes
}

// NewFwUpdateOfferInformationFromBytes parses an offer-information frame
// from its 16-byte wire form. The component ID byte must be the Info value.
func NewFwUpdateOfferInformationFromBytes(data []byte) (*FwUpdateOfferInformation, error) {
	if len(data) < FwUpdateOfferInformationSize {
		return nil, newShortBufferError("FwUpdateOfferInformation", data, FwUpdateOfferInformationSize)
	}
	componentID, err := decodeSpecialComponentID(data[2], ComponentIDInfo)
	if err != nil {
		return nil, err
	}
	return &FwUpdateOfferInformation{
		Code:        OfferInformationCode(data[0]),
		ComponentID: componentID,
		Token:       NewHostTokenFromByte(data[3]),
	}, nil
}

// String returns a human-readable representation of the frame.
func (info *FwUpdateOfferInformation) String() string {
	return fmt.Sprintf("FwUpdateOfferInformation{Code=%s, Token=%s}", info.Code, info.Token)
}
