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

	"github.com/cybergarage/go-cfu/cfu/errors"
	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/cybergarage/go-logger/log"
)

type clientImpl struct {
	token      protocol.HostToken
	components []Component
	prepared   bool
	target     Component
	updated    []Component
	nextSeq    uint16
}

// ClientOption represents a functional option for configuring a Client.
type ClientOption func(*clientImpl)

// WithClientComponents registers the components with the client.
func WithClientComponents(components ...Component) ClientOption {
	return func(c *clientImpl) {
		c.components = append(c.components, components...)
	}
}

// NewClient creates a client command router with the provided options.
func NewClient(opts ...ClientOption) Client {
	c := &clientImpl{
		token:      protocol.HostTokenDriver,
		components: nil,
		prepared:   false,
		target:     nil,
		updated:    nil,
		nextSeq:    0,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddComponent registers a component with the client. A client holds at
// most MaxComponentCount components; the number of primary components
// among them is not checked.
func (c *clientImpl) AddComponent(component Component) error {
	if protocol.MaxComponentCount <= len(c.components) {
		return fmt.Errorf("component count (%d): %w", len(c.components)+1, protocol.ErrOutOfRange)
	}
	c.components = append(c.components, component)
	return nil
}

// Components returns the registered components.
func (c *clientImpl) Components() []Component {
	return c.components
}

// LookupComponent returns the component with the ID.
func (c *clientImpl) LookupComponent(id protocol.ComponentID) (Component, error) {
	for _, component := range c.components {
		if component.ComponentID() == id {
			return component, nil
		}
	}
	return nil, fmt.Errorf("component %s: %w", id, errors.ErrNotFound)
}

// PrimaryComponent returns the primary component.
func (c *clientImpl) PrimaryComponent() (Component, error) {
	for _, component := range c.components {
		if component.IsPrimary() {
			return component, nil
		}
	}
	return nil, ErrNoPrimaryComponent
}

// PrepareComponents invokes storage prepare on the primary component and
// all sub-components before a transaction begins. Idempotent.
func (c *clientImpl) PrepareComponents(ctx context.Context) error {
	if c.prepared {
		return nil
	}
	primary, err := c.PrimaryComponent()
	if err != nil {
		return err
	}
	if err := primary.StoragePrepare(ctx); err != nil {
		return &StorageError{ComponentID: primary.ComponentID(), Op: "prepare", Err: err}
	}
	for _, component := range c.components {
		if component == primary {
			continue
		}
		if err := component.StoragePrepare(ctx); err != nil {
			return &StorageError{ComponentID: component.ComponentID(), Op: "prepare", Err: err}
		}
	}
	c.prepared = true
	return nil
}

// ProcessCommand decodes an incoming command frame by its fixed width,
// dispatches it, and returns the encoded response frame. Undecodable
// commands of a known width are answered with an error response, not
// raised; a frame of any other width returns an error.
func (c *clientImpl) ProcessCommand(ctx context.Context, cmd []byte) ([]byte, error) {
	switch len(cmd) {
	case protocol.FwUpdateContentCommandSize:
		content, err := protocol.NewFwUpdateContentCommandFromBytes(cmd)
		if err != nil {
			log.Warnf("Failed to decode content command: %v", err)
			log.HexWarn(cmd)
			return protocol.NewFwUpdateContentResponse(0, protocol.ContentStatusErrorInvalid).Encode(), nil
		}
		return c.ProcessContent(ctx, content).Encode(), nil
	case protocol.FwUpdateOfferSize:
		offer, err := protocol.NewFwUpdateOfferFromBytes(cmd)
		if err != nil {
			log.Warnf("Failed to decode offer: %v", err)
			log.HexWarn(cmd)
			return protocol.NewOfferResponse(c.token, protocol.OfferStatusCmdNotSupported, protocol.OfferRejectOldFw).Encode(), nil
		}
		return c.ProcessOffer(ctx, offer).Encode(), nil
	case protocol.FwUpdateOfferInformationSize:
		switch protocol.NewComponentIDFromByte(cmd[2]) {
		case protocol.ComponentIDInfo:
			info, err := protocol.NewFwUpdateOfferInformationFromBytes(cmd)
			if err == nil {
				return c.ProcessOfferInformation(ctx, info).Encode(), nil
			}
		case protocol.ComponentIDCommand:
			extended, err := protocol.NewFwUpdateOfferExtendedFromBytes(cmd)
			if err == nil {
				return c.ProcessOfferExtended(ctx, extended).Encode(), nil
			}
		}
		log.Warnf("Unsupported 16-byte command")
		log.HexWarn(cmd)
		return protocol.NewOfferResponse(c.token, protocol.OfferStatusCmdNotSupported, protocol.OfferRejectOldFw).Encode(), nil
	}
	return nil, fmt.Errorf("command size (%d): %w", len(cmd), errors.ErrInvalid)
}

// ProcessOffer handles a firmware update offer by consulting the target
// component's acceptance policy.
func (c *clientImpl) ProcessOffer(ctx context.Context, offer *protocol.FwUpdateOffer) *protocol.FwUpdateOfferResponse {
	token := offer.ComponentInfo.Token
	component, err := c.LookupComponent(offer.ComponentInfo.ComponentID)
	if err != nil {
		return protocol.NewOfferResponse(token, protocol.OfferStatusReject, protocol.OfferRejectInvalidComponent)
	}
	status, reason := component.ValidateOffer(ctx, offer)
	if status == protocol.OfferStatusAccept {
		c.target = component
		c.nextSeq = 0
	}
	return protocol.NewOfferResponse(token, status, reason)
}

// ProcessOfferInformation handles transaction boundary notifications.
// EndOfferList runs the post-update hook of every component updated in
// this transaction.
func (c *clientImpl) ProcessOfferInformation(ctx context.Context, info *protocol.FwUpdateOfferInformation) *protocol.FwUpdateOfferResponse {
	switch info.Code {
	case protocol.StartEntireTransaction:
		c.prepared = false
		c.target = nil
		c.updated = nil
		return protocol.NewAcceptOfferResponse(info.Token)
	case protocol.StartOfferList:
		if err := c.PrepareComponents(ctx); err != nil {
			log.Errorf("Failed to prepare components: %v", err)
			return protocol.NewOfferResponse(info.Token, protocol.OfferStatusReject, protocol.OfferRejectSwapPending)
		}
		return protocol.NewAcceptOfferResponse(info.Token)
	case protocol.EndOfferList:
		for _, component := range c.updated {
			if err := component.OnUpdateComplete(ctx); err != nil {
				log.Warnf("Update complete hook failed for component %s: %v", component.ComponentID(), err)
			}
		}
		c.updated = nil
		return protocol.NewAcceptOfferResponse(info.Token)
	}
	return protocol.NewOfferResponse(info.Token, protocol.OfferStatusCmdNotSupported, protocol.OfferRejectOldFw)
}

// ProcessOfferExtended handles extended offer commands on behalf of the
// primary component.
func (c *clientImpl) ProcessOfferExtended(ctx context.Context, cmd *protocol.FwUpdateOfferExtended) *protocol.FwUpdateOfferResponse {
	if cmd.Code != protocol.OfferNotifyOnReady {
		return protocol.NewOfferResponse(cmd.Token, protocol.OfferStatusCmdNotSupported, protocol.OfferRejectOldFw)
	}
	primary, err := c.PrimaryComponent()
	if err != nil {
		return protocol.NewOfferResponse(cmd.Token, protocol.OfferStatusCmdNotSupported, protocol.OfferRejectOldFw)
	}
	if primary.IsMidUpdate() {
		return protocol.NewOfferResponse(cmd.Token, protocol.OfferStatusBusy, protocol.OfferRejectOldFw)
	}
	return protocol.NewOfferResponse(cmd.Token, protocol.OfferStatusCommandReady, protocol.OfferRejectOldFw)
}

// ProcessContent handles one content block for the component whose offer
// was last accepted. The router keeps at most one block in flight and
// requires storage prepare before any storage write.
func (c *clientImpl) ProcessContent(ctx context.Context, cmd *protocol.FwUpdateContentCommand) *protocol.FwUpdateContentResponse {
	seq := cmd.SequenceNum
	if c.target == nil {
		return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusErrorNoOffer)
	}
	if !c.prepared {
		return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusErrorPrepare)
	}
	if protocol.DefaultDataLength < int(cmd.DataLength) {
		return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusErrorInvalid)
	}
	if cmd.IsFirstBlock() {
		c.nextSeq = 0
	}
	if seq != c.nextSeq {
		log.Warnf("Content block out of order: got seq %d, want %d", seq, c.nextSeq)
		return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusErrorInvalid)
	}
	data := cmd.Data[:cmd.DataLength]
	if err := c.target.StorageWrite(ctx, cmd.FirmwareAddress, data); err != nil {
		log.Errorf("Storage write failed for component %s: %v", c.target.ComponentID(), err)
		return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusErrorWrite)
	}
	c.nextSeq = seq + 1
	if cmd.IsLastBlock() {
		if err := c.target.StorageFinalize(ctx); err != nil {
			log.Errorf("Storage finalize failed for component %s: %v", c.target.ComponentID(), err)
			return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusErrorComplete)
		}
		c.updated = append(c.updated, c.target)
		c.target = nil
	}
	return protocol.NewFwUpdateContentResponse(seq, protocol.ContentStatusSuccess)
}

// FirmwareVersions returns the version report for all registered components.
func (c *clientImpl) FirmwareVersions(ctx context.Context) (*protocol.GetFwVersionResponse, error) {
	infos := make([]protocol.FwVerComponentInfo, 0, len(c.components))
	for _, component := range c.components {
		version, err := component.FirmwareVersion(ctx)
		if err != nil {
			return nil, err
		}
		infos = append(infos, protocol.NewFwVerComponentInfoWithVendorInfo(
			version,
			component.ComponentID(),
			component.BankType(),
			0,
			0))
	}
	return protocol.NewGetFwVersionResponse(infos)
}
