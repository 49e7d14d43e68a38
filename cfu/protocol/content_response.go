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

// ContentStatus is a client's answer to one content block.
type ContentStatus uint8

const (
	// ContentStatusSuccess indicates the block was applied.
	ContentStatusSuccess ContentStatus = 0x00
	// ContentStatusErrorPrepare indicates the component was not prepared, typically on the first block.
	ContentStatusErrorPrepare ContentStatus = 0x01
	// ContentStatusErrorWrite indicates the block could not be written.
	ContentStatusErrorWrite ContentStatus = 0x02
	// ContentStatusErrorComplete indicates the swap could not be set up, on the last block.
	ContentStatusErrorComplete ContentStatus = 0x03
	// ContentStatusErrorVerify indicates dword verification failed.
	ContentStatusErrorVerify ContentStatus = 0x04
	// ContentStatusErrorCrc indicates the image CRC failed, on the last block.
	ContentStatusErrorCrc ContentStatus = 0x05
	// ContentStatusErrorSignature indicates the image signature failed, on the last block.
	ContentStatusErrorSignature ContentStatus = 0x06
	// ContentStatusErrorVersion indicates version verification failed, on the last block.
	ContentStatusErrorVersion ContentStatus = 0x07
	// ContentStatusSwapPending indicates no further content commands can be accepted.
	ContentStatusSwapPending ContentStatus = 0x08
	// ContentStatusErrorInvalidAddr indicates an invalid destination address.
	ContentStatusErrorInvalidAddr ContentStatus = 0x09
	// ContentStatusErrorNoOffer indicates content without an accepted offer.
	ContentStatusErrorNoOffer ContentStatus = 0x0A
	// ContentStatusErrorInvalid is the general content command error.
	ContentStatusErrorInvalid ContentStatus = 0x0B
)

// NewContentStatusFromByte returns the content status for the wire byte.
func NewContentStatusFromByte(b byte) (ContentStatus, error) {
	if ContentStatus(b) > ContentStatusErrorInvalid {
		return 0, newInvalidEnumError("content status", b)
	}
	return ContentStatus(b), nil
}

// String returns the string representation of the status.
func (s ContentStatus) String() string {
	switch s {
	case ContentStatusSuccess:
		return "Success"
	case ContentStatusErrorPrepare:
		return "ErrorPrepare"
	case ContentStatusErrorWrite:
		return "ErrorWrite"
	case ContentStatusErrorComplete:
		return "ErrorComplete"
	case ContentStatusErrorVerify:
		return "ErrorVerify"
	case ContentStatusErrorCrc:
		return "ErrorCrc"
	case ContentStatusErrorSignature:
		return "ErrorSignature"
	case ContentStatusErrorVersion:
		return "ErrorVersion"
	case ContentStatusSwapPending:
		return "SwapPending"
	case ContentStatusErrorInvalidAddr:
		return "ErrorInvalidAddr"
	case ContentStatusErrorNoOffer:
		return "ErrorNoOffer"
	case ContentStatusErrorInvalid:
		return "ErrorInvalid"
	}
	return fmt.Sprintf("Unknown(0x%02X)", uint8(s))
}

// FwUpdateContentResponse is a client's answer to one content command
// (16 bytes on the wire).
type FwUpdateContentResponse struct {
	Sequence uint16
	Status   ContentStatus
}

// NewFwUpdateContentResponse creates a content response echoing the sequence number.
func NewFwUpdateContentResponse(sequence uint16, status ContentStatus) *FwUpdateContentResponse {
	return &FwUpdateContentResponse{
		Sequence: sequence,
		Status:   status,
	}
}

// Encode serializes the response to its fixed 16-byte wire form.
func (res *FwUpdateContentResponse) Encode() []byte {
	bytes := make([]byte, FwUpdateContentResponseSize)
	binary.LittleEndian.PutUint16(bytes[0:2], res.Sequence)
	bytes[4] = byte(res.Status)
	return bytes
}

// NewFwUpdateContentResponseFromBytes parses a content response from its
// 16-byte wire form, validating the status byte.
func NewFwUpdateContentResponseFromBytes(data []byte) (*FwUpdateContentResponse, error) {
	if len(data) < FwUpdateContentResponseSize {
		return nil, newShortBufferError("FwUpdateContentResponse", data, FwUpdateContentResponseSize)
	}
	status, err := NewContentStatusFromByte(data[4])
	if err != nil {
		return nil, err
	}
	return &FwUpdateContentResponse{
		Sequence: binary.LittleEndian.Uint16(data[0:2]),
		Status:   status,
	}, nil
}

// String returns a human-readable representation of the response.
func (res *FwUpdateContentResponse) String() string {
	return fmt.Sprintf("FwUpdateContentResponse{Seq=%d, Status=%s}", res.Sequence, res.Status)
}
