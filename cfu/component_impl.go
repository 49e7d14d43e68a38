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
	"fmt"

	"github.com/cybergarage/go-cfu/cfu/protocol"
)

type componentImpl struct {
	id              protocol.ComponentID
	version         protocol.FwVersion
	primary         bool
	bank            protocol.BankType
	subcomponents   []protocol.ComponentID
	prepared        bool
	midUpdate       bool
	swapPending     bool
	staged          []byte
	storagePrepare  func(ctx context.Context) error
	storageWrite    func(ctx context.Context, addr uint32, data []byte) error
	storageFinalize func(ctx context.Context) error
	updateComplete  func(ctx context.Context) error
}

// ComponentOption represents a functional option for configuring a Component.
type ComponentOption func(*componentImpl)

// WithComponentID sets the component ID.
func WithComponentID(id protocol.ComponentID) ComponentOption {
	return func(c *componentImpl) {
		c.id = id
	}
}

// WithComponentFirmwareVersion sets the current firmware version.
func WithComponentFirmwareVersion(version protocol.FwVersion) ComponentOption {
	return func(c *componentImpl) {
		c.version = version
	}
}

// WithComponentPrimary marks the component as the primary component.
func WithComponentPrimary(primary bool) ComponentOption {
	return func(c *componentImpl) {
		c.primary = primary
	}
}

// WithComponentBankType sets the storage bank topology.
func WithComponentBankType(bank protocol.BankType) ComponentOption {
	return func(c *componentImpl) {
		c.bank = bank
	}
}

// WithComponentSubcomponents sets the sub-component IDs.
func WithComponentSubcomponents(ids ...protocol.ComponentID) ComponentOption {
	return func(c *componentImpl) {
		c.subcomponents = ids
	}
}

// WithComponentStoragePrepare overrides the storage prepare hook.
func WithComponentStoragePrepare(fn func(ctx context.Context) error) ComponentOption {
	return func(c *componentImpl) {
		c.storagePrepare = fn
	}
}

// WithComponentStorageWrite overrides the storage write hook.
func WithComponentStorageWrite(fn func(ctx context.Context, addr uint32, data []byte) error) ComponentOption {
	return func(c *componentImpl) {
		c.storageWrite = fn
	}
}

// WithComponentStorageFinalize overrides the storage finalize hook.
func WithComponentStorageFinalize(fn func(ctx context.Context) error) ComponentOption {
	return func(c *componentImpl) {
		c.storageFinalize = fn
	}
}

// WithComponentOnUpdateComplete overrides the post-update hook.
func WithComponentOnUpdateComplete(fn func(ctx context.Context) error) ComponentOption {
	return func(c *componentImpl) {
		c.updateComplete = fn
	}
}

// NewComponent creates a component with the provided options. Without
// storage options the component stages written blocks into an internal
// buffer it owns.
func NewComponent(opts ...ComponentOption) Component {
	c := &componentImpl{
		id:              0,
		version:         protocol.FwVersion{},
		primary:         false,
		bank:            protocol.SingleBank,
		subcomponents:   nil,
		prepared:        false,
		midUpdate:       false,
		swapPending:     false,
		staged:          nil,
		storagePrepare:  nil,
		storageWrite:    nil,
		storageFinalize: nil,
		updateComplete:  nil,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComponentID returns the component's ID.
func (c *componentImpl) ComponentID() protocol.ComponentID {
	return c.id
}

// FirmwareVersion returns the component's current firmware version.
func (c *componentImpl) FirmwareVersion(ctx context.Context) (protocol.FwVersion, error) {
	return c.version, nil
}

// ValidateOffer returns the policy decision for a received offer.
// Offers for a different component ID are rejected with InvalidComponent,
// offers while already mid-update or while a staged update is pending are
// rejected with SwapPending, and offers that are not newer than the
// current image are rejected with OldFw unless the offer sets the
// force-ignore-version flag.
func (c *componentImpl) ValidateOffer(ctx context.Context, offer *protocol.FwUpdateOffer) (protocol.OfferStatus, protocol.OfferRejectReason) {
	if offer.ComponentInfo.ComponentID != c.id {
		return protocol.OfferStatusReject, protocol.OfferRejectInvalidComponent
	}
	if c.midUpdate {
		return protocol.OfferStatusReject, protocol.OfferRejectSwapPending
	}
	if c.swapPending {
		return protocol.OfferStatusReject, protocol.OfferRejectSwapPending
	}
	if !offer.ComponentInfo.ForceIgnoreVersion && !offer.FirmwareVersion.IsNewerThan(c.version) {
		return protocol.OfferStatusReject, protocol.OfferRejectOldFw
	}
	return protocol.OfferStatusAccept, protocol.OfferRejectOldFw
}

// IsPrimary reports whether this is the primary component.
func (c *componentImpl) IsPrimary() bool {
	return c.primary
}

// BankType returns the component's storage bank topology.
func (c *componentImpl) BankType() protocol.BankType {
	return c.bank
}

// IsDualBank reports whether the component has a dual-bank memory layout.
func (c *componentImpl) IsDualBank() bool {
	return c.bank == protocol.DualBank
}

// Subcomponents returns the IDs of the component's sub-components.
func (c *componentImpl) Subcomponents() []protocol.ComponentID {
	return c.subcomponents
}

// IsMidUpdate reports whether the component is already receiving an update.
func (c *componentImpl) IsMidUpdate() bool {
	return c.midUpdate
}

// StoragePrepare readies the staging area. Idempotent per transaction.
func (c *componentImpl) StoragePrepare(ctx context.Context) error {
	if c.prepared {
		return nil
	}
	if c.storagePrepare != nil {
		if err := c.storagePrepare(ctx); err != nil {
			return err
		}
	}
	c.staged = c.staged[:0]
	c.prepared = true
	return nil
}

// StorageWrite stages one block of image data at the address.
func (c *componentImpl) StorageWrite(ctx context.Context, addr uint32, data []byte) error {
	if !c.prepared {
		return fmt.Errorf("component %s: storage write before prepare", c.id)
	}
	c.midUpdate = true
	if c.storageWrite != nil {
		return c.storageWrite(ctx, addr, data)
	}
	c.staged = append(c.staged, data...)
	return nil
}

// StorageFinalize commits the staged image at the last block.
func (c *componentImpl) StorageFinalize(ctx context.Context) error {
	if c.storageFinalize != nil {
		if err := c.storageFinalize(ctx); err != nil {
			return err
		}
	}
	c.midUpdate = false
	c.swapPending = true
	c.prepared = false
	return nil
}

// OnUpdateComplete handles post-update requirements. The default applies
// the staged swap and returns success.
func (c *componentImpl) OnUpdateComplete(ctx context.Context) error {
	if c.updateComplete != nil {
		if err := c.updateComplete(ctx); err != nil {
			return err
		}
	}
	c.swapPending = false
	return nil
}
