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

// Client represents the device-side command router. It holds references
// to the registered components, dispatches decoded commands to the right
// component, and produces the matching response frames.
type Client interface {
	// AddComponent registers a component with the client.
	AddComponent(component Component) error
	// Components returns the registered components.
	Components() []Component
	// LookupComponent returns the component with the ID.
	LookupComponent(id protocol.ComponentID) (Component, error)
	// PrimaryComponent returns the primary component.
	PrimaryComponent() (Component, error)
	// PrepareComponents invokes storage prepare on the primary component
	// and all sub-components. Idempotent.
	PrepareComponents(ctx context.Context) error
	// ProcessCommand decodes an incoming command frame, dispatches it,
	// and returns the encoded response frame.
	ProcessCommand(ctx context.Context, cmd []byte) ([]byte, error)
	// ProcessOffer handles a firmware update offer.
	ProcessOffer(ctx context.Context, offer *protocol.FwUpdateOffer) *protocol.FwUpdateOfferResponse
	// ProcessOfferInformation handles an offer-information frame.
	ProcessOfferInformation(ctx context.Context, info *protocol.FwUpdateOfferInformation) *protocol.FwUpdateOfferResponse
	// ProcessOfferExtended handles an extended offer command.
	ProcessOfferExtended(ctx context.Context, cmd *protocol.FwUpdateOfferExtended) *protocol.FwUpdateOfferResponse
	// ProcessContent handles one content block.
	ProcessContent(ctx context.Context, cmd *protocol.FwUpdateContentCommand) *protocol.FwUpdateContentResponse
	// FirmwareVersions returns the version report for all registered components.
	FirmwareVersions(ctx context.Context) (*protocol.GetFwVersionResponse, error)
}
