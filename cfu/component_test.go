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
	"testing"

	"github.com/cybergarage/go-cfu/cfu/protocol"
)

func newTestComponent(id protocol.ComponentID, version protocol.FwVersion) Component {
	return NewComponent(
		WithComponentID(id),
		WithComponentFirmwareVersion(version))
}

func TestComponentOfferPolicy(t *testing.T) {
	ctx := context.Background()
	current := protocol.FwVersion{Major: 1, Minor: 5, Variant: 0}

	tests := []struct {
		name       string
		offer      *protocol.FwUpdateOffer
		wantStatus protocol.OfferStatus
		wantReason protocol.OfferRejectReason
	}{
		{
			name:       "newer version accepted",
			offer:      protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 1, protocol.FwVersion{Major: 1, Minor: 6, Variant: 0}),
			wantStatus: protocol.OfferStatusAccept,
			wantReason: protocol.OfferRejectOldFw,
		},
		{
			name:       "older version rejected",
			offer:      protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 1, protocol.FwVersion{Major: 1, Minor: 4, Variant: 0}),
			wantStatus: protocol.OfferStatusReject,
			wantReason: protocol.OfferRejectOldFw,
		},
		{
			name:       "same version rejected",
			offer:      protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 1, current),
			wantStatus: protocol.OfferStatusReject,
			wantReason: protocol.OfferRejectOldFw,
		},
		{
			name:       "mismatched component rejected",
			offer:      protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 2, protocol.FwVersion{Major: 9, Minor: 0, Variant: 0}),
			wantStatus: protocol.OfferStatusReject,
			wantReason: protocol.OfferRejectInvalidComponent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := newTestComponent(1, current)
			status, reason := component.ValidateOffer(ctx, tt.offer)
			if status != tt.wantStatus {
				t.Errorf("status: got %s, want %s", status, tt.wantStatus)
			}
			if status == protocol.OfferStatusReject && reason != tt.wantReason {
				t.Errorf("reason: got %s, want %s", reason, tt.wantReason)
			}
		})
	}
}

func TestComponentForceIgnoreVersion(t *testing.T) {
	ctx := context.Background()
	component := newTestComponent(1, protocol.FwVersion{Major: 2, Minor: 0, Variant: 0})

	offer := protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 1, protocol.FwVersion{Major: 1, Minor: 0, Variant: 0})
	offer.ComponentInfo.ForceIgnoreVersion = true
	status, _ := component.ValidateOffer(ctx, offer)
	if status != protocol.OfferStatusAccept {
		t.Errorf("status: got %s, want Accept", status)
	}
}

func TestComponentMidUpdateRejectsOffers(t *testing.T) {
	ctx := context.Background()
	component := newTestComponent(1, protocol.FwVersion{Major: 1, Minor: 0, Variant: 0})

	if err := component.StoragePrepare(ctx); err != nil {
		t.Fatalf("StoragePrepare failed: %v", err)
	}
	if err := component.StorageWrite(ctx, 0, []byte{1, 2, 3}); err != nil {
		t.Fatalf("StorageWrite failed: %v", err)
	}
	if !component.IsMidUpdate() {
		t.Fatal("component should be mid-update after a write")
	}

	offer := protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 1, protocol.FwVersion{Major: 2, Minor: 0, Variant: 0})
	status, reason := component.ValidateOffer(ctx, offer)
	if status != protocol.OfferStatusReject {
		t.Errorf("status: got %s, want Reject", status)
	}
	if reason != protocol.OfferRejectSwapPending {
		t.Errorf("reason: got %s, want SwapPending", reason)
	}
}

func TestComponentSwapPendingRejectsUntilComplete(t *testing.T) {
	ctx := context.Background()
	component := newTestComponent(1, protocol.FwVersion{Major: 1, Minor: 0, Variant: 0})

	if err := component.StoragePrepare(ctx); err != nil {
		t.Fatalf("StoragePrepare failed: %v", err)
	}
	if err := component.StorageWrite(ctx, 0, []byte{1, 2, 3}); err != nil {
		t.Fatalf("StorageWrite failed: %v", err)
	}
	if err := component.StorageFinalize(ctx); err != nil {
		t.Fatalf("StorageFinalize failed: %v", err)
	}

	offer := protocol.NewFwUpdateOffer(protocol.HostTokenDriver, 1, protocol.FwVersion{Major: 2, Minor: 0, Variant: 0})
	status, reason := component.ValidateOffer(ctx, offer)
	if status != protocol.OfferStatusReject || reason != protocol.OfferRejectSwapPending {
		t.Errorf("got %s/%s, want Reject/SwapPending", status, reason)
	}

	if err := component.OnUpdateComplete(ctx); err != nil {
		t.Fatalf("OnUpdateComplete failed: %v", err)
	}
	status, _ = component.ValidateOffer(ctx, offer)
	if status != protocol.OfferStatusAccept {
		t.Errorf("status after update complete: got %s, want Accept", status)
	}
}

func TestComponentStorageWriteRequiresPrepare(t *testing.T) {
	ctx := context.Background()
	component := newTestComponent(1, protocol.FwVersion{Major: 1, Minor: 0, Variant: 0})
	if err := component.StorageWrite(ctx, 0, []byte{1}); err == nil {
		t.Error("expected error for write before prepare, got nil")
	}
}
