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

package cfu

import (
	"errors"
	"fmt"

	"github.com/cybergarage/go-cfu/cfu/protocol"
)

var (
	// ErrInvalidBlockTransition indicates that the final content response
	// did not echo the last chunk's sequence number.
	ErrInvalidBlockTransition = errors.New("invalid block transition")
	// ErrNoPrimaryComponent indicates that no primary component is registered.
	ErrNoPrimaryComponent = errors.New("no primary component")
)

// UpdateError reports an aggregate per-component update failure.
type UpdateError struct {
	ComponentID protocol.ComponentID
	Err         error
}

// Error returns the error message.
func (e *UpdateError) Error() string {
	return fmt.Sprintf("update failed for component %s: %v", e.ComponentID, e.Err)
}

// Unwrap returns the underlying error.
func (e *UpdateError) Unwrap() error {
	return e.Err
}

// TransportError reports a transport or image-read failure while
// streaming content to a component. It terminates that component's
// update but not the transaction.
type TransportError struct {
	ComponentID protocol.ComponentID
	Err         error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failed for component %s: %v", e.ComponentID, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a per-request deadline exceeded for a component.
type TimeoutError struct {
	ComponentID protocol.ComponentID
}

// Error returns the error message.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout for component %s", e.ComponentID)
}

// OfferStatusError reports a peer offer response that terminated the update.
type OfferStatusError struct {
	ComponentID protocol.ComponentID
	Status      protocol.OfferStatus
	Reason      protocol.OfferRejectReason
}

// Error returns the error message.
func (e *OfferStatusError) Error() string {
	if e.Status == protocol.OfferStatusReject {
		return fmt.Sprintf("offer for component %s rejected (%s)", e.ComponentID, e.Reason)
	}
	return fmt.Sprintf("offer for component %s answered %s", e.ComponentID, e.Status)
}

// ContentStatusError reports a non-success peer answer to a content block.
type ContentStatusError struct {
	ComponentID protocol.ComponentID
	Status      protocol.ContentStatus
}

// Error returns the error message.
func (e *ContentStatusError) Error() string {
	return fmt.Sprintf("content update for component %s failed (%s)", e.ComponentID, e.Status)
}

// StorageError reports a failed storage staging operation.
type StorageError struct {
	ComponentID protocol.ComponentID
	Op          string
	Err         error
}

// Error returns the error message.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for component %s: %v", e.Op, e.ComponentID, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
