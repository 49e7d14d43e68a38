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
	"bytes"
	"errors"
	"testing"
)

func TestGetFwVersionResponseRoundtrip(t *testing.T) {
	version := FwVersion{Major: 1, Minor: 2, Variant: 3}
	infos := []FwVerComponentInfo{
		NewFwVerComponentInfo(version, 1),
		NewFwVerComponentInfoWithVendorInfo(version, 2, DualBank, 0x0A, 0xBEEF),
		NewFwVerComponentInfo(version, 3),
	}
	res, err := NewGetFwVersionResponse(infos)
	if err != nil {
		t.Fatalf("NewGetFwVersionResponse failed: %v", err)
	}

	encoded := res.Encode()
	if len(encoded) != GetFwVersionResponseSize {
		t.Fatalf("encoded size mismatch: got %d, want %d", len(encoded), GetFwVersionResponseSize)
	}
	// Entries beyond the component count are zero on the wire.
	if !bytes.Equal(encoded[4+3*8:], make([]byte, GetFwVersionResponseSize-4-3*8)) {
		t.Errorf("unused entries not zero: %v", encoded[4+3*8:])
	}

	decoded, err := NewGetFwVersionResponseFromBytes(encoded)
	if err != nil {
		t.Fatalf("NewGetFwVersionResponseFromBytes failed: %v", err)
	}
	if *decoded != *res {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", decoded, res)
	}
	if decoded.ComponentInfo[1].Bank != DualBank {
		t.Errorf("bank type: got %v, want DualBank", decoded.ComponentInfo[1].Bank)
	}
	if decoded.ComponentInfo[1].VendorSpecific0 != 0x0A {
		t.Errorf("vendor nibble: got 0x%02X, want 0x0A", decoded.ComponentInfo[1].VendorSpecific0)
	}
}

func TestGetFwVersionResponseComponentCountLimit(t *testing.T) {
	infos := make([]FwVerComponentInfo, MaxComponentCount+1)
	if _, err := NewGetFwVersionResponse(infos); err == nil {
		t.Error("expected error for 8 components, got nil")
	}

	res, err := NewGetFwVersionResponse(infos[:1])
	if err != nil {
		t.Fatalf("NewGetFwVersionResponse failed: %v", err)
	}
	encoded := res.Encode()
	encoded[0] = MaxComponentCount + 1
	_, err = NewGetFwVersionResponseFromBytes(encoded)
	if err == nil {
		t.Fatal("expected error for component count 8, got nil")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestGetFwVersionResponseProtocolByte(t *testing.T) {
	res, err := NewGetFwVersionResponse(nil)
	if err != nil {
		t.Fatalf("NewGetFwVersionResponse failed: %v", err)
	}
	encoded := res.Encode()
	if encoded[3] != 0x20 {
		t.Fatalf("protocol byte: got 0x%02X, want 0x20", encoded[3])
	}

	encoded[3] = 0x21
	decoded, err := NewGetFwVersionResponseFromBytes(encoded)
	if err != nil {
		t.Fatalf("decode with extension flag failed: %v", err)
	}
	if !decoded.ProtocolByte.HasExtensions() {
		t.Error("extension flag not detected")
	}

	encoded[3] = 0x30
	if _, err := NewGetFwVersionResponseFromBytes(encoded); err == nil {
		t.Error("expected error for protocol byte 0x30, got nil")
	}
}
