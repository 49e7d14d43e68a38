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
	"errors"
	"testing"
)

func TestOfferRejectReasonBoundaries(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		reason, err := NewOfferRejectReasonFromByte(byte(b))
		switch {
		case b <= 0x02:
			if err != nil {
				t.Errorf("byte 0x%02X: unexpected error: %v", b, err)
			}
		case 0xE0 <= b:
			if err != nil {
				t.Errorf("byte 0x%02X: unexpected error: %v", b, err)
			}
			if !reason.IsVendorSpecific() {
				t.Errorf("byte 0x%02X: expected vendor specific", b)
			}
		default:
			if err == nil {
				t.Errorf("byte 0x%02X: expected error, got %v", b, reason)
			}
			var enumErr *InvalidEnumError
			if !errors.As(err, &enumErr) {
				t.Errorf("byte 0x%02X: expected InvalidEnumError, got %T", b, err)
			}
		}
	}
}

func TestHostTokenAcceptsEveryByte(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		token := NewHostTokenFromByte(byte(b))
		switch byte(b) {
		case 0xA0:
			if token != HostTokenDriver {
				t.Errorf("byte 0xA0: got %v, want Driver", token)
			}
		case 0xB0:
			if token != HostTokenTool {
				t.Errorf("byte 0xB0: got %v, want Tool", token)
			}
		default:
			if !token.IsVendorSpecific() {
				t.Errorf("byte 0x%02X: expected vendor specific", b)
			}
		}
	}
}

func TestOfferStatusBoundaries(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		_, err := NewOfferStatusFromByte(byte(b))
		valid := b <= 0x04 || b == 0xFF
		if valid && err != nil {
			t.Errorf("byte 0x%02X: unexpected error: %v", b, err)
		}
		if !valid && err == nil {
			t.Errorf("byte 0x%02X: expected error, got nil", b)
		}
	}
}

func TestContentStatusBoundaries(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		_, err := NewContentStatusFromByte(byte(b))
		valid := b <= 0x0B
		if valid && err != nil {
			t.Errorf("byte 0x%02X: unexpected error: %v", b, err)
		}
		if !valid && err == nil {
			t.Errorf("byte 0x%02X: expected error, got nil", b)
		}
	}
}

func TestFwVersionRoundtrip(t *testing.T) {
	tests := []struct {
		version FwVersion
		packed  uint32
	}{
		{FwVersion{Major: 1, Minor: 2, Variant: 3}, 0x01000203},
		{FwVersion{Major: 0xFF, Minor: 0xFFFF, Variant: 0xFF}, 0xFFFFFFFF},
		{FwVersion{Major: 0, Minor: 0, Variant: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.version.Uint32(); got != tt.packed {
			t.Errorf("%v: packed 0x%08X, want 0x%08X", tt.version, got, tt.packed)
		}
		if got := NewFwVersionFromUint32(tt.packed); got != tt.version {
			t.Errorf("0x%08X: unpacked %v, want %v", tt.packed, got, tt.version)
		}
	}
}

func TestNewFwVersion(t *testing.T) {
	v, err := NewFwVersion(1, 2, 3)
	if err != nil {
		t.Fatalf("NewFwVersion failed: %v", err)
	}
	if v != (FwVersion{Major: 1, Minor: 2, Variant: 3}) {
		t.Errorf("got %v, want 1.2.3", v)
	}
	if _, err := NewFwVersion(256, 0, 0); err == nil {
		t.Error("expected error for major 256, got nil")
	}
	if _, err := NewFwVersion(0, 0x10000, 0); err == nil {
		t.Error("expected error for minor 0x10000, got nil")
	}
}

func TestFwVersionIsNewerThan(t *testing.T) {
	v := FwVersion{Major: 1, Minor: 5, Variant: 0}
	if !(FwVersion{Major: 2, Minor: 0, Variant: 0}).IsNewerThan(v) {
		t.Error("major bump should be newer")
	}
	if !(FwVersion{Major: 1, Minor: 6, Variant: 0}).IsNewerThan(v) {
		t.Error("minor bump should be newer")
	}
	if (FwVersion{Major: 1, Minor: 5, Variant: 9}).IsNewerThan(v) {
		t.Error("variant bump alone should not be newer")
	}
	if (FwVersion{Major: 1, Minor: 4, Variant: 0}).IsNewerThan(v) {
		t.Error("older minor should not be newer")
	}
}
