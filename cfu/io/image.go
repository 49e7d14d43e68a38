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

package io

import (
	"context"
	"fmt"
)

// Image represents a firmware image readable in chunks by byte offset.
type Image interface {
	// TotalSize returns the total size of the image in bytes.
	TotalSize() int
	// ReadChunk fills the buffer with image bytes starting at the offset.
	ReadChunk(ctx context.Context, buf []byte, offset int) error
}

type bytesImage struct {
	data []byte
}

// NewBytesImage returns an Image backed by the byte slice.
func NewBytesImage(data []byte) Image {
	return &bytesImage{
		data: data,
	}
}

// TotalSize returns the total size of the image in bytes.
func (img *bytesImage) TotalSize() int {
	return len(img.data)
}

// ReadChunk fills the buffer with image bytes starting at the offset.
func (img *bytesImage) ReadChunk(ctx context.Context, buf []byte, offset int) error {
	if offset < 0 || len(img.data) < offset+len(buf) {
		return fmt.Errorf("image read [%d:%d] out of range (%d bytes)", offset, offset+len(buf), len(img.data))
	}
	copy(buf, img.data[offset:])
	return nil
}
