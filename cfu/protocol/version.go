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

	"github.com/cybergarage/go-safecast/safecast"
)

// FwVersion represents a component firmware version packed into 32 bits.
type FwVersion struct {
	Major   uint8
	Minor   uint16
	Variant uint8
}

// NewFwVersion creates a FwVersion from major, minor, and variant components.
func NewFwVersion(major, minor, variant int) (FwVersion, error) {
	var v FwVersion
	if err := safecast.ToUint8(major, &v.Major); err != nil {
		return FwVersion{}, err
	}
	if err := safecast.ToUint16(minor, &v.Minor); err != nil {
		return FwVersion{}, err
	}
	if err := safecast.ToUint8(variant, &v.Variant); err != nil {
		return FwVersion{}, err
	}
	return v, nil
}

// NewFwVersionFromUint32 unpacks a FwVersion from its 32-bit wire form.
func NewFwVersionFromUint32(v uint32) FwVersion {
	return FwVersion{
		Major:   uint8((v >> 24) & 0xFF),
		Minor:   uint16((v >> 8) & 0xFFFF),
		Variant: uint8(v & 0xFF),
	}
}

// Uint32 packs the version into its 32-bit wire form.
// 31 .. 24 - major, 23 .. 8 - minor, 7 .. 0 - variant.
func (v FwVersion) Uint32() uint32 {
	return (uint32(v.Major) << 24) | (uint32(v.Minor) << 8) | uint32(v.Variant)
}

// IsNewerThan reports whether the version is newer than the other version.
// Only the major and minor components participate in the comparison.
func (v FwVersion) IsNewerThan(other FwVersion) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor > other.Minor
}

// String returns the version in "major.minor.variant" format.
func (v FwVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Variant)
}
