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
)

type nopTransport struct{}

// NewNopTransport returns a Transport that accepts every write and leaves
// read buffers untouched. Useful for scaffolding and tests.
func NewNopTransport() Transport {
	return &nopTransport{}
}

func (t *nopTransport) Write(ctx context.Context, offset Offset, data []byte) error {
	return nil
}

func (t *nopTransport) Read(ctx context.Context, offset Offset, buf []byte) error {
	return nil
}

func (t *nopTransport) WriteRead(ctx context.Context, offset Offset, data []byte, resp []byte) error {
	return nil
}
