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

// Package ble adapts a BLE transport to the CFU transport capability so a
// host can drive an update over a GATT characteristic pair.
package ble

import (
	"context"
	"fmt"

	"github.com/cybergarage/go-ble/ble"
	"github.com/cybergarage/go-cfu/cfu/io"
)

// Transport represents a CFU transport over BLE.
type Transport interface {
	io.Transport
}

type transport struct {
	ble.Transport
}

// NewTransportWith returns a CFU transport backed by the BLE transport.
// BLE characteristics carry whole frames, so the CFU offset hint is not used.
func NewTransportWith(bleTransport ble.Transport) Transport {
	return &transport{
		Transport: bleTransport,
	}
}

// Write transmits the frame to the peer characteristic.
func (t *transport) Write(ctx context.Context, offset io.Offset, data []byte) error {
	_, err := t.WriteWithoutResponse(ctx, data)
	return err
}

// Read fills the buffer from the peer characteristic.
func (t *transport) Read(ctx context.Context, offset io.Offset, buf []byte) error {
	data, err := t.Transport.Read(ctx)
	if err != nil {
		return err
	}
	if len(data) < len(buf) {
		return fmt.Errorf("ble response too short (%d of %d bytes)", len(data), len(buf))
	}
	copy(buf, data)
	return nil
}

// WriteRead transmits a frame and receives the paired response.
func (t *transport) WriteRead(ctx context.Context, offset io.Offset, data []byte, resp []byte) error {
	if err := t.Write(ctx, offset, data); err != nil {
		return err
	}
	return t.Read(ctx, offset, resp)
}
