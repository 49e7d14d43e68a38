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

// Package transport provides typed CFU frame exchange over a raw transport.
package transport

import (
	"context"
	"fmt"

	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/cybergarage/go-logger/log"
)

// Codec wraps a raw Transport and provides CFU frame exchange. It encodes
// outbound commands, performs the paired write/read round trip, and decodes
// the 16-byte response frames.
type Codec struct {
	transport io.Transport
}

// NewCodec creates a new Codec that wraps the given transport.
func NewCodec(t io.Transport) *Codec {
	return &Codec{
		transport: t,
	}
}

// Transport returns the wrapped raw transport.
func (c *Codec) Transport() io.Transport {
	return c.transport
}

func (c *Codec) writeRead(ctx context.Context, offset io.Offset, cmd []byte) ([]byte, error) {
	resp := make([]byte, protocol.FwUpdateOfferResponseSize)
	if err := c.transport.WriteRead(ctx, offset, cmd, resp); err != nil {
		return nil, fmt.Errorf("transport write/read failed: %w", err)
	}
	return resp, nil
}

// PostOffer sends a firmware update offer and returns the decoded offer response.
func (c *Codec) PostOffer(ctx context.Context, offer *protocol.FwUpdateOffer) (*protocol.FwUpdateOfferResponse, error) {
	log.Debugf("Post offer: %s", offer.String())
	resp, err := c.writeRead(ctx, io.AnyOffset, offer.Encode())
	if err != nil {
		return nil, err
	}
	res, err := protocol.NewFwUpdateOfferResponseFromBytes(resp)
	if err != nil {
		log.Warnf("Failed to decode offer response: %v", err)
		log.HexWarn(resp)
		return nil, err
	}
	log.Debugf("Received offer response: %s", res.String())
	return res, nil
}

// PostOfferInformation sends an offer-information frame and returns the decoded offer response.
func (c *Codec) PostOfferInformation(ctx context.Context, info *protocol.FwUpdateOfferInformation) (*protocol.FwUpdateOfferResponse, error) {
	log.Debugf("Post offer information: %s", info.String())
	resp, err := c.writeRead(ctx, io.AnyOffset, info.Encode())
	if err != nil {
		return nil, err
	}
	res, err := protocol.NewFwUpdateOfferResponseFromBytes(resp)
	if err != nil {
		log.Warnf("Failed to decode offer response: %v", err)
		log.HexWarn(resp)
		return nil, err
	}
	log.Debugf("Received offer response: %s", res.String())
	return res, nil
}

// PostOfferExtended sends an extended offer command and returns the decoded offer response.
func (c *Codec) PostOfferExtended(ctx context.Context, cmd *protocol.FwUpdateOfferExtended) (*protocol.FwUpdateOfferResponse, error) {
	log.Debugf("Post offer extended: %s", cmd.String())
	resp, err := c.writeRead(ctx, io.AnyOffset, cmd.Encode())
	if err != nil {
		return nil, err
	}
	res, err := protocol.NewFwUpdateOfferResponseFromBytes(resp)
	if err != nil {
		log.Warnf("Failed to decode offer response: %v", err)
		log.HexWarn(resp)
		return nil, err
	}
	log.Debugf("Received offer response: %s", res.String())
	return res, nil
}

// PostContent sends a content command and returns the decoded content response.
func (c *Codec) PostContent(ctx context.Context, offset io.Offset, cmd *protocol.FwUpdateContentCommand) (*protocol.FwUpdateContentResponse, error) {
	log.Debugf("Post content: %s", cmd.String())
	resp, err := c.writeRead(ctx, offset, cmd.Encode())
	if err != nil {
		return nil, err
	}
	res, err := protocol.NewFwUpdateContentResponseFromBytes(resp)
	if err != nil {
		log.Warnf("Failed to decode content response: %v", err)
		log.HexWarn(resp)
		return nil, err
	}
	log.Debugf("Received content response: %s", res.String())
	return res, nil
}
