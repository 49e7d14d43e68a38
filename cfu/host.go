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
	"context"

	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
)

// UpdateTarget names a component to update, the image to send, and the
// version carried in the offer.
type UpdateTarget struct {
	ComponentID protocol.ComponentID
	Version     protocol.FwVersion
	Image       io.Image
	BaseOffset  int
}

// UpdateResult is the per-component outcome of a transaction.
type UpdateResult struct {
	ComponentID  protocol.ComponentID
	Status       protocol.OfferStatus
	RejectReason protocol.OfferRejectReason
	Updated      bool
	Err          error
}

// UpdateReport collects the per-component outcomes of a transaction.
type UpdateReport struct {
	Results []*UpdateResult
}

// AllUpdated reports whether every targeted component finished updating.
func (r *UpdateReport) AllUpdated() bool {
	for _, result := range r.Results {
		if !result.Updated {
			return false
		}
	}
	return true
}

// Host represents the update initiator. It owns the active transaction
// and drives the offer and content phases over its transport.
type Host interface {
	// StartTransaction notifies the client that an update transaction begins.
	StartTransaction(ctx context.Context) (*protocol.FwUpdateOfferResponse, error)
	// NotifyStartOfferList notifies the client that per-component offers follow.
	NotifyStartOfferList(ctx context.Context) (*protocol.FwUpdateOfferResponse, error)
	// NotifyEndOfferList notifies the client that all offers have been sent.
	NotifyEndOfferList(ctx context.Context) (*protocol.FwUpdateOfferResponse, error)
	// Offer sends a firmware update offer, retrying Busy answers up to the
	// configured limit.
	Offer(ctx context.Context, offer *protocol.FwUpdateOffer) (*protocol.FwUpdateOfferResponse, error)
	// WriteDataChunks streams the image to the component in sequenced,
	// flag-tagged blocks and returns the last content response.
	WriteDataChunks(ctx context.Context, image io.Image, componentID protocol.ComponentID, baseOffset int) (*protocol.FwUpdateContentResponse, error)
	// Update runs a whole transaction over the targets and returns the
	// per-component report. The error is non-nil only for conditions
	// fatal to the entire transaction.
	Update(ctx context.Context, targets []*UpdateTarget) (*UpdateReport, error)
	// GetFwVersions reads and decodes the client's firmware version report.
	GetFwVersions(ctx context.Context) (*protocol.GetFwVersionResponse, error)
}

// VerifyAllUpdatesCompleted reports whether every offer response in the
// slice indicates an accepted, finished component.
func VerifyAllUpdatesCompleted(responses []*protocol.FwUpdateOfferResponse) bool {
	for _, res := range responses {
		if res.Status != protocol.OfferStatusAccept {
			return false
		}
	}
	return true
}
