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

	"github.com/cybergarage/go-cfu/cfu/protocol"
)

// Component represents an independently updatable unit with its own
// identity, offer acceptance policy, storage staging, and finalize hooks.
// The client command router invokes these methods while processing
// incoming commands; the storage trio is called prepare, then write per
// block, then finalize at the last block.
type Component interface {
	// ComponentID returns the component's ID.
	ComponentID() protocol.ComponentID
	// FirmwareVersion returns the component's current firmware version.
	FirmwareVersion(ctx context.Context) (protocol.FwVersion, error)
	// ValidateOffer returns the policy decision for a received offer.
	// The reject reason is meaningful only when the status is Reject.
	ValidateOffer(ctx context.Context, offer *protocol.FwUpdateOffer) (protocol.OfferStatus, protocol.OfferRejectReason)
	// IsPrimary reports whether this is the primary component.
	IsPrimary() bool
	// BankType returns the component's storage bank topology.
	BankType() protocol.BankType
	// IsDualBank reports whether the component has a dual-bank memory layout.
	IsDualBank() bool
	// Subcomponents returns the IDs of the component's sub-components.
	Subcomponents() []protocol.ComponentID
	// IsMidUpdate reports whether the component is already receiving an update.
	IsMidUpdate() bool
	// StoragePrepare readies the staging area. Idempotent per transaction.
	StoragePrepare(ctx context.Context) error
	// StorageWrite stages one block of image data at the address.
	StorageWrite(ctx context.Context, addr uint32, data []byte) error
	// StorageFinalize commits the staged image at the last block.
	StorageFinalize(ctx context.Context) error
	// OnUpdateComplete handles post-update requirements such as a delay
	// before reset or setting boot flags.
	OnUpdateComplete(ctx context.Context) error
}
