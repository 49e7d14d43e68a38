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
	"fmt"
)

// ComponentID identifies an independently updatable component.
type ComponentID uint8

const (
	// ComponentIDCommand is the special component ID tagging Offer-Command-Extended frames.
	ComponentIDCommand ComponentID = 0xFE
	// ComponentIDInfo is the special component ID tagging Offer-Information frames.
	ComponentIDInfo ComponentID = 0xFF
)

// NewComponentIDFromByte returns the component ID for the wire byte.
func NewComponentIDFromByte(b byte) ComponentID {
	return ComponentID(b)
}

// IsSpecial reports whether the ID is one of the reserved special values.
func (id ComponentID) IsSpecial() bool {
	return id == ComponentIDCommand || id == ComponentIDInfo
}

// String returns the string representation of the component ID.
func (id ComponentID) String() string {
	switch id {
	case ComponentIDCommand:
		return "Command"
	case ComponentIDInfo:
		return "Info"
	}
	return fmt.Sprintf("0x%02X", uint8(id))
}

// decodeSpecialComponentID validates a wire byte at a frame position that
// demands one specific special component ID.
func decodeSpecialComponentID(b byte, want ComponentID) (ComponentID, error) {
	id := ComponentID(b)
	if !id.IsSpecial() || id != want {
		return 0, newInvalidEnumError("special component ID", b)
	}
	return id, nil
}

// BankType represents a component's storage bank topology.
type BankType uint8

const (
	SingleBank BankType = 0x00
	DualBank   BankType = 0x01
	TripleBank BankType = 0x02
	QuadBank   BankType = 0x03
)

// String returns the string representation of the bank type.
func (b BankType) String() string {
	switch b {
	case SingleBank:
		return "SingleBank"
	case DualBank:
		return "DualBank"
	case TripleBank:
		return "TripleBank"
	case QuadBank:
		return "QuadBank"
	}
	return fmt.Sprintf("VendorSpecific(0x%02X)", uint8(b))
}
