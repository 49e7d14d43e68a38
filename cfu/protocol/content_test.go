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
	"testing"
)

func TestFwUpdateContentCommandRoundtrip(t *testing.T) {
	fullBlock := make([]byte, DefaultDataLength)
	for i := range fullBlock {
		fullBlock[i] = byte(i + 1)
	}

	tests := []struct {
		name string
		cmd  *FwUpdateContentCommand
	}{
		{
			name: "first block",
			cmd:  NewFwUpdateContentCommand(ContentFlagFirstBlock, 0, 0, fullBlock),
		},
		{
			name: "middle block",
			cmd:  NewFwUpdateContentCommand(ContentFlagNone, 0x1234, 0x5678, fullBlock),
		},
		{
			name: "short last block",
			cmd:  NewFwUpdateContentCommand(ContentFlagLastBlock, 3, 0, fullBlock[:17]),
		},
		{
			name: "first and last block",
			cmd:  NewFwUpdateContentCommand(ContentFlagFirstBlock|ContentFlagLastBlock, 0, 0, fullBlock[:40]),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.cmd.Encode()
			if len(encoded) != FwUpdateContentCommandSize {
				t.Fatalf("encoded size mismatch: got %d, want %d", len(encoded), FwUpdateContentCommandSize)
			}
			decoded, err := NewFwUpdateContentCommandFromBytes(encoded)
			if err != nil {
				t.Fatalf("NewFwUpdateContentCommandFromBytes failed: %v", err)
			}
			if *decoded != *tt.cmd {
				t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, tt.cmd)
			}
		})
	}
}

func TestFwUpdateContentCommandPadding(t *testing.T) {
	cmd := NewFwUpdateContentCommand(ContentFlagFirstBlock|ContentFlagLastBlock, 0, 0, bytes.Repeat([]byte{0xAB}, 40))
	if cmd.DataLength != 40 {
		t.Fatalf("data length: got %d, want 40", cmd.DataLength)
	}
	encoded := cmd.Encode()
	if !bytes.Equal(encoded[8+40:], make([]byte, 12)) {
		t.Errorf("payload padding not zero: %v", encoded[8+40:])
	}
	if encoded[0] != 0xC0 {
		t.Errorf("flags byte: got 0x%02X, want 0xC0", encoded[0])
	}
}

func TestFwUpdateContentResponseRoundtrip(t *testing.T) {
	for _, status := range []ContentStatus{ContentStatusSuccess, ContentStatusErrorWrite, ContentStatusErrorInvalid} {
		res := NewFwUpdateContentResponse(0x1234, status)
		encoded := res.Encode()
		if len(encoded) != FwUpdateContentResponseSize {
			t.Fatalf("encoded size mismatch: got %d, want %d", len(encoded), FwUpdateContentResponseSize)
		}
		if !bytes.Equal(encoded[2:4], make([]byte, 2)) || !bytes.Equal(encoded[5:], make([]byte, 11)) {
			t.Errorf("reserved bytes not zero: %v", encoded)
		}
		decoded, err := NewFwUpdateContentResponseFromBytes(encoded)
		if err != nil {
			t.Fatalf("NewFwUpdateContentResponseFromBytes failed: %v", err)
		}
		if *decoded != *res {
			t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, res)
		}
	}
}

func TestFwUpdateContentResponseInvalidStatus(t *testing.T) {
	encoded := NewFwUpdateContentResponse(0, ContentStatusSuccess).Encode()
	encoded[4] = 0x0C
	if _, err := NewFwUpdateContentResponseFromBytes(encoded); err == nil {
		t.Error("expected error for content status 0x0C, got nil")
	}
}
