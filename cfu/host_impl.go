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
	"errors"
	"fmt"
	"time"

	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/cybergarage/go-cfu/cfu/transport"
	"github.com/cybergarage/go-logger/log"
	"github.com/cybergarage/go-safecast/safecast"
)

type hostImpl struct {
	codec  *transport.Codec
	token  protocol.HostToken
	config *Config
}

// HostOption represents a functional option for configuring a Host.
type HostOption func(*hostImpl)

// WithHostToken sets the host token carried in every offer.
func WithHostToken(token protocol.HostToken) HostOption {
	return func(h *hostImpl) {
		h.token = token
	}
}

// WithHostConfig sets the engine configuration.
func WithHostConfig(config *Config) HostOption {
	return func(h *hostImpl) {
		h.config = config
	}
}

// NewHost creates a host update engine driving the transport.
func NewHost(t io.Transport, opts ...HostOption) Host {
	h := &hostImpl{
		codec:  transport.NewCodec(t),
		token:  protocol.HostTokenDriver,
		config: NewDefaultConfig(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// requestCtx bounds one transport round trip with the configured
// per-request timeout.
func (h *hostImpl) requestCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.config.PerRequestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.config.PerRequestTimeout)
}

func (h *hostImpl) postOfferInformation(ctx context.Context, code protocol.OfferInformationCode) (*protocol.FwUpdateOfferResponse, error) {
	rctx, cancel := h.requestCtx(ctx)
	defer cancel()
	res, err := h.codec.PostOfferInformation(rctx, protocol.NewFwUpdateOfferInformation(h.token, code))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{ComponentID: protocol.ComponentIDInfo}
		}
		return nil, err
	}
	return res, nil
}

// StartTransaction notifies the client that an update transaction begins.
func (h *hostImpl) StartTransaction(ctx context.Context) (*protocol.FwUpdateOfferResponse, error) {
	return h.postOfferInformation(ctx, protocol.StartEntireTransaction)
}

// NotifyStartOfferList notifies the client that per-component offers follow.
func (h *hostImpl) NotifyStartOfferList(ctx context.Context) (*protocol.FwUpdateOfferResponse, error) {
	return h.postOfferInformation(ctx, protocol.StartOfferList)
}

// NotifyEndOfferList notifies the client that all offers have been sent.
func (h *hostImpl) NotifyEndOfferList(ctx context.Context) (*protocol.FwUpdateOfferResponse, error) {
	return h.postOfferInformation(ctx, protocol.EndOfferList)
}

// Offer sends a firmware update offer. A Busy answer is retried with the
// configured interval; receiving Busy for the configured limit in a row
// yields a timeout error for the component.
func (h *hostImpl) Offer(ctx context.Context, offer *protocol.FwUpdateOffer) (*protocol.FwUpdateOfferResponse, error) {
	componentID := offer.ComponentInfo.ComponentID
	for attempt := 1; ; attempt++ {
		rctx, cancel := h.requestCtx(ctx)
		res, err := h.codec.PostOffer(rctx, offer)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, &TimeoutError{ComponentID: componentID}
			}
			return nil, err
		}
		if res.Status != protocol.OfferStatusBusy {
			return res, nil
		}
		if h.config.BusyRetryLimit <= attempt {
			log.Warnf("Component %s still busy after %d offers", componentID, attempt)
			return nil, &TimeoutError{ComponentID: componentID}
		}
		log.Debugf("Component %s busy, retrying offer (%d/%d)", componentID, attempt, h.config.BusyRetryLimit)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(h.config.BusyRetryInterval):
		}
	}
}

// WriteDataChunks streams the image to the component. The first chunk
// carries the first-block flag, the final chunk the last-block flag, and
// a single-chunk image carries both. The next chunk is not sent until the
// previous chunk's response reports success.
func (h *hostImpl) WriteDataChunks(ctx context.Context, image io.Image, componentID protocol.ComponentID, baseOffset int) (*protocol.FwUpdateContentResponse, error) {
	total := image.TotalSize()
	if total <= 0 {
		return nil, fmt.Errorf("image for component %s is empty", componentID)
	}
	chunkCount := (total + protocol.DefaultDataLength - 1) / protocol.DefaultDataLength
	lastIndex := chunkCount - 1

	var chunk [protocol.DefaultDataLength]byte
	var res *protocol.FwUpdateContentResponse
	for i := 0; i < chunkCount; i++ {
		offset := i * protocol.DefaultDataLength
		n := min(protocol.DefaultDataLength, total-offset)
		if err := image.ReadChunk(ctx, chunk[:n], baseOffset+offset); err != nil {
			return nil, &TransportError{ComponentID: componentID, Err: fmt.Errorf("image read failed: %w", err)}
		}

		flags := protocol.ContentFlagNone
		if i == 0 {
			flags |= protocol.ContentFlagFirstBlock
		}
		if i == lastIndex {
			flags |= protocol.ContentFlagLastBlock
		}
		var seq uint16
		if err := safecast.ToUint16(i, &seq); err != nil {
			return nil, err
		}
		cmd := protocol.NewFwUpdateContentCommand(flags, seq, 0, chunk[:n])

		rctx, cancel := h.requestCtx(ctx)
		r, err := h.codec.PostContent(rctx, io.Offset(offset), cmd)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, &TimeoutError{ComponentID: componentID}
			}
			return nil, &TransportError{ComponentID: componentID, Err: err}
		}
		if r.Status != protocol.ContentStatusSuccess {
			return nil, &ContentStatusError{ComponentID: componentID, Status: r.Status}
		}
		res = r
	}

	if int(res.Sequence) != lastIndex {
		log.Warnf("Final sequence number %d does not match last chunk index %d", res.Sequence, lastIndex)
		return nil, ErrInvalidBlockTransition
	}
	return res, nil
}

// isComponentError reports whether the error terminates only the current
// component's update. Anything else aborts the transaction.
func isComponentError(err error) bool {
	var contentErr *ContentStatusError
	var transportErr *TransportError
	var timeoutErr *TimeoutError
	return errors.As(err, &contentErr) ||
		errors.As(err, &transportErr) ||
		errors.As(err, &timeoutErr) ||
		errors.Is(err, ErrInvalidBlockTransition)
}

// Update runs a whole transaction: start transaction, start offer list,
// one offer per target with content streaming on acceptance, then end
// offer list. Per-component failures are collected in the report; the
// returned error is non-nil only for transaction-fatal conditions.
func (h *hostImpl) Update(ctx context.Context, targets []*UpdateTarget) (*UpdateReport, error) {
	res, err := h.StartTransaction(ctx)
	if err != nil {
		return nil, err
	}
	if res.Status != protocol.OfferStatusAccept {
		return nil, &OfferStatusError{ComponentID: protocol.ComponentIDInfo, Status: res.Status, Reason: res.RejectReason}
	}

	res, err = h.NotifyStartOfferList(ctx)
	if err != nil {
		return nil, err
	}
	if res.Status != protocol.OfferStatusAccept {
		return nil, &OfferStatusError{ComponentID: protocol.ComponentIDInfo, Status: res.Status, Reason: res.RejectReason}
	}

	report := &UpdateReport{
		Results: make([]*UpdateResult, 0, len(targets)),
	}
	for _, target := range targets {
		result := &UpdateResult{
			ComponentID:  target.ComponentID,
			Status:       protocol.OfferStatusSkip,
			RejectReason: protocol.OfferRejectOldFw,
			Updated:      false,
			Err:          nil,
		}
		report.Results = append(report.Results, result)

		offer := protocol.NewFwUpdateOffer(h.token, target.ComponentID, target.Version)
		offerRes, err := h.Offer(ctx, offer)
		if err != nil {
			if !isComponentError(err) {
				return report, err
			}
			result.Err = err
			continue
		}
		result.Status = offerRes.Status

		switch offerRes.Status {
		case protocol.OfferStatusAccept:
			if _, err := h.WriteDataChunks(ctx, target.Image, target.ComponentID, target.BaseOffset); err != nil {
				if !isComponentError(err) {
					return report, err
				}
				result.Err = &UpdateError{ComponentID: target.ComponentID, Err: err}
				continue
			}
			result.Updated = true
			log.Infof("Component %s updated to %s", target.ComponentID, target.Version)
		case protocol.OfferStatusSkip:
			log.Infof("Component %s skipped the offer", target.ComponentID)
		case protocol.OfferStatusReject:
			log.Infof("Component %s rejected the offer (%s)", target.ComponentID, offerRes.RejectReason)
			result.RejectReason = offerRes.RejectReason
			result.Err = &OfferStatusError{ComponentID: target.ComponentID, Status: offerRes.Status, Reason: offerRes.RejectReason}
		case protocol.OfferStatusCmdNotSupported:
			return report, &OfferStatusError{ComponentID: target.ComponentID, Status: offerRes.Status, Reason: offerRes.RejectReason}
		default:
			result.Err = &OfferStatusError{ComponentID: target.ComponentID, Status: offerRes.Status, Reason: offerRes.RejectReason}
		}
	}

	res, err = h.NotifyEndOfferList(ctx)
	if err != nil {
		return report, err
	}
	if res.Status != protocol.OfferStatusAccept {
		return report, &OfferStatusError{ComponentID: protocol.ComponentIDInfo, Status: res.Status, Reason: res.RejectReason}
	}
	return report, nil
}

// GetFwVersions reads and decodes the client's firmware version report.
func (h *hostImpl) GetFwVersions(ctx context.Context) (*protocol.GetFwVersionResponse, error) {
	rctx, cancel := h.requestCtx(ctx)
	defer cancel()
	buf := make([]byte, protocol.GetFwVersionResponseSize)
	if err := h.codec.Transport().Read(rctx, io.AnyOffset, buf); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{ComponentID: protocol.ComponentIDInfo}
		}
		return nil, fmt.Errorf("transport read failed: %w", err)
	}
	return protocol.NewGetFwVersionResponseFromBytes(buf)
}
