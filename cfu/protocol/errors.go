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
	"fmt"
)

var (
	// ErrShortBuffer indicates that a frame buffer is smaller than the fixed frame width.
	ErrShortBuffer = errors.New("short buffer")
	// ErrOutOfRange indicates a field value outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")
)

// InvalidEnumError reports a wire byte outside an enum's closed value set.
type InvalidEnumError struct {
	Enum  string
	Value byte
}

// Error returns the error message.
func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s value (0x%02X)", e.Enum, e.Value)
}

func newInvalidEnumError(enum string, value byte) error {
	return &InvalidEnumError{
		Enum:  enum,
		Value: value,
	}
}

func newShortBufferError(frame string, data []byte, size int) error {
	return fmt.Errorf("%s: %w (%d of %d bytes)", frame, ErrShortBuffer, len(data), size)
}
