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

package transport

import (
	"context"
	"fmt"

	"github.com/cybergarage/go-cfu/cfu/io"
)

// CommandHandler processes one raw command frame and returns the raw
// response frame. A client command router satisfies this signature.
type CommandHandler func(ctx context.Context, cmd []byte) ([]byte, error)

type loopback struct {
	handler CommandHandler
	pending []byte
}

// NewLoopback returns a Transport that delivers every written frame to the
// handler in process and hands its response back on the paired read.
func NewLoopback(handler CommandHandler) io.Transport {
	return &loopback{
		handler: handler,
		pending: nil,
	}
}

// Write delivers the frame to the handler and retains the response for the next read.
func (t *loopback) Write(ctx context.Context, offset io.Offset, data []byte) error {
	resp, err := t.handler(ctx, data)
	if err != nil {
		return err
	}
	t.pending = resp
	return nil
}

// Read fills the buffer with the retained response of the last write.
func (t *loopback) Read(ctx context.Context, offset io.Offset, buf []byte) error {
	if t.pending == nil {
		return fmt.Errorf("no pending response")
	}
	if len(t.pending) < len(buf) {
		return fmt.Errorf("pending response too short (%d of %d bytes)", len(t.pending), len(buf))
	}
	copy(buf, t.pending)
	t.pending = nil
	return nil
}

// WriteRead delivers the frame to the handler and fills the response buffer.
func (t *loopback) WriteRead(ctx context.Context, offset io.Offset, data []byte, resp []byte) error {
	if err := t.Write(ctx, offset, data); err != nil {
		return err
	}
	return t.Read(ctx, offset, resp)
}
