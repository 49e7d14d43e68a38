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

// Package io defines the transport and image-source capabilities the CFU
// core consumes. The bus driver behind a Transport and the medium behind
// an Image are not specified here.
package io

import (
	"context"
)

// Offset addresses a region of the peer's memory-mapped command surface.
// A transport may use it as an addressing hint or ignore it.
type Offset int

// AnyOffset means "use the transport's current position".
const AnyOffset Offset = -1

// Transport represents a driver that can exchange CFU frames with a peer.
type Transport interface {
	// Write transmits the data to the peer.
	Write(ctx context.Context, offset Offset, data []byte) error
	// Read fills the buffer with data from the peer.
	Read(ctx context.Context, offset Offset, buf []byte) error
	// WriteRead transmits a request and receives the paired response.
	WriteRead(ctx context.Context, offset Offset, data []byte, resp []byte) error
}
