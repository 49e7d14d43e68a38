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

// OfferStatus is a client's decision on a received offer.
type OfferStatus uint8

const (
	// OfferStatusSkip asks the host to offer the component again later.
	OfferStatusSkip OfferStatus = 0x00
	// OfferStatusAccept accepts the offer; content streaming may begin.
	OfferStatusAccept OfferStatus = 0x01
	// OfferStatusReject rejects the offer with a reject reason.
	OfferStatusReject OfferStatus = 0x02
	// OfferStatusBusy asks the host to retry the same offer after a delay.
	OfferStatusBusy OfferStatus = 0x03
	// OfferStatusCommandReady answers an OfferNotifyOnReady request.
	OfferStatusCommandReady OfferStatus = 0x04
	// OfferStatusCmdNotSupported indicates an unsupported command.
	OfferStatusCmdNotSupported OfferStatus = 0xFF
)

// NewOfferStatusFromByte returns the offer status for the wire byte.
func NewOfferStatusFromByte(b byte) (OfferStatus, error) {
	status := OfferStatus(b)
	switch status {
	case OfferStatusSkip, OfferStatusAccept, OfferStatusReject, OfferStatusBusy, OfferStatusCommandReady, OfferStatusCmdNotSupported:
		return status, nil
	}
	return 0, newInvalidEnumError("offer status", b)
}

// String returns the string representation of the status.
func (s OfferStatus) String() string {
	switch s {
	case OfferStatusSkip:
		return "Skip"
	case OfferStatusAccept:
		return "Accept"
	case OfferStatusReject:
		return "Reject"
	case OfferStatusBusy:
		return "Busy"
	case OfferStatusCommandReady:
		return "CommandReady"
	case OfferStatusCmdNotSupported:
		return "CmdNotSupported"
	}
	return fmt.Sprintf("Unknown(0x%02X)", uint8(s))
}

// OfferRejectReason explains an OfferStatusReject decision. Values in
// [0xE0, 0xFF] are vendor specific.
type OfferRejectReason uint8

const (
	// OfferRejectOldFw indicates the offered version is not newer than the current image.
	OfferRejectOldFw OfferRejectReason = 0x00
	// OfferRejectInvalidComponent indicates a component ID mismatch.
	OfferRejectInvalidComponent OfferRejectReason = 0x01
	// OfferRejectSwapPending indicates a staged update has not been applied yet.
	OfferRejectSwapPending OfferRejectReason = 0x02

	offerRejectVendorSpecificMin = 0xE0
)

// NewOfferRejectReasonFromByte returns the reject reason for the wire byte.
func NewOfferRejectReasonFromByte(b byte) (OfferRejectReason, error) {
	reason := OfferRejectReason(b)
	switch reason {
	case OfferRejectOldFw, OfferRejectInvalidComponent, OfferRejectSwapPending:
		return reason, nil
	}
	if offerRejectVendorSpecificMin <= b {
		return reason, nil
	}
	return 0, newInvalidEnumError("offer reject reason", b)
}

// IsVendorSpecific reports whether the reason is a vendor-specific value.
func (r OfferRejectReason) IsVendorSpecific() bool {
	return offerRejectVendorSpecificMin <= uint8(r)
}

// String returns the string representation of the reason.
func (r OfferRejectReason) String() string {
	switch r {
	case OfferRejectOldFw:
		return "OldFw"
	case OfferRejectInvalidComponent:
		return "InvalidComponent"
	case OfferRejectSwapPending:
		return "SwapPending"
	}
	return fmt.Sprintf("VendorSpecific(0x%02X)", uint8(r))
}

// FwUpdateOfferResponse is a client's answer to any offer frame
// (16 bytes on the wire). RejectReason is meaningful only when the
// status is OfferStatusReject.
type FwUpdateOfferResponse struct {
	Token        HostToken
	RejectReason OfferRejectReason
	Status       OfferStatus
}

// NewAcceptOfferResponse creates a response accepting the offer.
func NewAcceptOfferResponse(token HostToken) *FwUpdateOfferResponse {
	return &FwUpdateOfferResponse{
		Token:        token,
		RejectReason: OfferRejectOldFw,
		Status:       OfferStatusAccept,
	}
}

// NewOfferResponse creates a response with the status and reject reason.
func NewOfferResponse(token HostToken, status OfferStatus, reason OfferRejectReason) *FwUpdateOfferResponse {
	return &FwUpdateOfferResponse{
		Token:        token,
		RejectReason: reason,
		Status:       status,
	}
}

// Encode serializes the response to its fixed 16-byte wire form.
func (res *FwUpdateOfferResponse) Encode() []byte {
	bytes := make([]byte, FwUpdateOfferResponseSize)
	bytes[3] = byte(res.Token)
	bytes[8] = byte(res.RejectReason)
	bytes[12] = byte(res.Status)
	return bytes
}

// NewFwUpdateOfferResponseFromBytes parses an offer response from its
// 16-byte wire form, validating the reject reason and status bytes.
func NewFwUpdateOfferResponseFromBytes(data []byte) (*FwUpdateOfferResponse, error) {
	if len(data) < FwUpdateOfferResponseSize {
		return nil, newShortBufferError("FwUpdateOfferResponse", data, FwUpdateOfferResponseSize)
	}
	reason, err := NewOfferRejectReasonFromByte(data[8])
	if err != nil {
		return nil, err
	}
	status, err := NewOfferStatusFromByte(data[12])
	if err != nil {
		return nil, err
	}
	return &FwUpdateOfferResponse{
		Token:        NewHostTokenFromByte(data[3]),
		RejectReason: reason,
		Status:       status,
	}, nil
}

// String returns a human-readable representation of the response.
func (res *FwUpdateOfferResponse) String() string {
	if res.Status == OfferStatusReject {
		return fmt.Sprintf("FwUpdateOfferResponse{Status=%s, Reason=%s, Token=%s}", res.Status, res.RejectReason, res.Token)
	}
	return fmt.Sprintf("FwUpdateOfferResponse{Status=%s, Token=%s}", res.Status, res.Token)
}
