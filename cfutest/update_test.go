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

package cfutest

import (
	"bytes"
	"context"
	"testing"

	"github.com/cybergarage/go-cfu/cfu"
	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/cybergarage/go-cfu/cfu/transport"
)

// recordingTransport wraps a transport and records every written frame.
type recordingTransport struct {
	io.Transport
	frames [][]byte
}

func (t *recordingTransport) Write(ctx context.Context, offset io.Offset, data []byte) error {
	t.frames = append(t.frames, append([]byte(nil), data...))
	return t.Transport.Write(ctx, offset, data)
}

func (t *recordingTransport) WriteRead(ctx context.Context, offset io.Offset, data []byte, resp []byte) error {
	t.frames = append(t.frames, append([]byte(nil), data...))
	return t.Transport.WriteRead(ctx, offset, data, resp)
}

// newUpdatePair wires a host to a client over an in-process loopback and
// returns the host, the client, and the transport recording the wire frames.
func newUpdatePair(components ...cfu.Component) (cfu.Host, cfu.Client, *recordingTransport) {
	client := cfu.NewClient(cfu.WithClientComponents(components...))
	loopback := &recordingTransport{
		Transport: transport.NewLoopback(client.ProcessCommand),
		frames:    nil,
	}
	host := cfu.NewHost(loopback)
	return host, client, loopback
}

func testImageBytes(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i + 1)
	}
	return data
}

func frameSizes(frames [][]byte) []int {
	sizes := make([]int, 0, len(frames))
	for _, frame := range frames {
		sizes = append(sizes, len(frame))
	}
	return sizes
}

func TestUpdateSingleChunkImage(t *testing.T) {
	ctx := context.Background()

	var staged []byte
	component := cfu.NewComponent(
		cfu.WithComponentID(1),
		cfu.WithComponentPrimary(true),
		cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 1, Minor: 0, Variant: 0}),
		cfu.WithComponentStorageWrite(func(ctx context.Context, addr uint32, data []byte) error {
			staged = append(staged, data...)
			return nil
		}))
	host, _, wire := newUpdatePair(component)

	image := testImageBytes(40)
	report, err := host.Update(ctx, []*cfu.UpdateTarget{
		{
			ComponentID: 1,
			Version:     protocol.FwVersion{Major: 1, Minor: 2, Variant: 3},
			Image:       io.NewBytesImage(image),
			BaseOffset:  0,
		},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !report.AllUpdated() {
		t.Fatal("component 1 not reported updated")
	}

	// StartEntireTransaction, StartOfferList, offer, one content block, EndOfferList.
	wantSizes := []int{16, 16, 32, 60, 16}
	gotSizes := frameSizes(wire.frames)
	if len(gotSizes) != len(wantSizes) {
		t.Fatalf("frame sizes: got %v, want %v", gotSizes, wantSizes)
	}
	for i := range wantSizes {
		if gotSizes[i] != wantSizes[i] {
			t.Fatalf("frame sizes: got %v, want %v", gotSizes, wantSizes)
		}
	}

	content, err := protocol.NewFwUpdateContentCommandFromBytes(wire.frames[3])
	if err != nil {
		t.Fatalf("decode content frame failed: %v", err)
	}
	if content.Flags != protocol.ContentFlagFirstBlock|protocol.ContentFlagLastBlock {
		t.Errorf("flags: got %s, want FirstBlock|LastBlock", content.Flags)
	}
	if content.DataLength != 40 {
		t.Errorf("data length: got %d, want 40", content.DataLength)
	}
	if content.SequenceNum != 0 {
		t.Errorf("sequence: got %d, want 0", content.SequenceNum)
	}
	if !bytes.Equal(content.Data[:40], image) {
		t.Error("content payload mismatch")
	}
	if !bytes.Equal(content.Data[40:], make([]byte, 12)) {
		t.Errorf("payload padding not zero: %v", content.Data[40:])
	}
	if !bytes.Equal(staged, image) {
		t.Error("staged image mismatch")
	}
}

func TestUpdateExactChunkMultiple(t *testing.T) {
	ctx := context.Background()

	component := cfu.NewComponent(
		cfu.WithComponentID(1),
		cfu.WithComponentPrimary(true),
		cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 1, Minor: 0, Variant: 0}))
	host, _, wire := newUpdatePair(component)

	report, err := host.Update(ctx, []*cfu.UpdateTarget{
		{
			ComponentID: 1,
			Version:     protocol.FwVersion{Major: 2, Minor: 0, Variant: 0},
			Image:       io.NewBytesImage(testImageBytes(2 * protocol.DefaultDataLength)),
			BaseOffset:  0,
		},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !report.AllUpdated() {
		t.Fatal("component 1 not reported updated")
	}

	var contents []*protocol.FwUpdateContentCommand
	for _, frame := range wire.frames {
		if len(frame) == protocol.FwUpdateContentCommandSize {
			content, err := protocol.NewFwUpdateContentCommandFromBytes(frame)
			if err != nil {
				t.Fatalf("decode content frame failed: %v", err)
			}
			contents = append(contents, content)
		}
	}
	if len(contents) != 2 {
		t.Fatalf("content frame count: got %d, want 2", len(contents))
	}
	if contents[0].Flags != protocol.ContentFlagFirstBlock || contents[0].SequenceNum != 0 {
		t.Errorf("first block: got %s seq %d, want FirstBlock seq 0", contents[0].Flags, contents[0].SequenceNum)
	}
	if contents[1].Flags != protocol.ContentFlagLastBlock || contents[1].SequenceNum != 1 {
		t.Errorf("last block: got %s seq %d, want LastBlock seq 1", contents[1].Flags, contents[1].SequenceNum)
	}
}

// busyComponent answers Busy to the first offers before delegating to the
// default policy.
type busyComponent struct {
	cfu.Component
	busyLeft int
}

func (c *busyComponent) ValidateOffer(ctx context.Context, offer *protocol.FwUpdateOffer) (protocol.OfferStatus, protocol.OfferRejectReason) {
	if 0 < c.busyLeft {
		c.busyLeft--
		return protocol.OfferStatusBusy, protocol.OfferRejectOldFw
	}
	return c.Component.ValidateOffer(ctx, offer)
}

func TestUpdateBusyThenAccept(t *testing.T) {
	ctx := context.Background()

	component := &busyComponent{
		Component: cfu.NewComponent(
			cfu.WithComponentID(1),
			cfu.WithComponentPrimary(true),
			cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 1, Minor: 0, Variant: 0})),
		busyLeft: 2,
	}
	client := cfu.NewClient(cfu.WithClientComponents(component))
	wire := &recordingTransport{
		Transport: transport.NewLoopback(client.ProcessCommand),
		frames:    nil,
	}
	config := cfu.NewDefaultConfig()
	config.BusyRetryLimit = 3
	config.BusyRetryInterval = 0
	host := cfu.NewHost(wire, cfu.WithHostConfig(config))

	report, err := host.Update(ctx, []*cfu.UpdateTarget{
		{
			ComponentID: 1,
			Version:     protocol.FwVersion{Major: 2, Minor: 0, Variant: 0},
			Image:       io.NewBytesImage(testImageBytes(40)),
			BaseOffset:  0,
		},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !report.AllUpdated() {
		t.Fatal("component 1 not reported updated")
	}

	offers := 0
	for _, frame := range wire.frames {
		if len(frame) == protocol.FwUpdateOfferSize {
			offers++
		}
	}
	if offers != 3 {
		t.Errorf("offer frame count: got %d, want 3", offers)
	}
}

func TestUpdateRejectOldFw(t *testing.T) {
	ctx := context.Background()

	component := cfu.NewComponent(
		cfu.WithComponentID(1),
		cfu.WithComponentPrimary(true),
		cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 2, Minor: 0, Variant: 0}))
	host, _, wire := newUpdatePair(component)

	report, err := host.Update(ctx, []*cfu.UpdateTarget{
		{
			ComponentID: 1,
			Version:     protocol.FwVersion{Major: 1, Minor: 2, Variant: 3},
			Image:       io.NewBytesImage(testImageBytes(40)),
			BaseOffset:  0,
		},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if report.AllUpdated() {
		t.Fatal("rejected component reported updated")
	}
	result := report.Results[0]
	if result.Status != protocol.OfferStatusReject || result.RejectReason != protocol.OfferRejectOldFw {
		t.Errorf("result: got %s/%s, want Reject/OldFw", result.Status, result.RejectReason)
	}
	for _, frame := range wire.frames {
		if len(frame) == protocol.FwUpdateContentCommandSize {
			t.Fatal("content frame sent after rejected offer")
		}
	}
}

func TestUpdateMultipleComponents(t *testing.T) {
	ctx := context.Background()

	primary := cfu.NewComponent(
		cfu.WithComponentID(1),
		cfu.WithComponentPrimary(true),
		cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 1, Minor: 0, Variant: 0}),
		cfu.WithComponentSubcomponents(2))
	sub := cfu.NewComponent(
		cfu.WithComponentID(2),
		cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 3, Minor: 0, Variant: 0}))
	host, _, _ := newUpdatePair(primary, sub)

	report, err := host.Update(ctx, []*cfu.UpdateTarget{
		{
			ComponentID: 1,
			Version:     protocol.FwVersion{Major: 2, Minor: 0, Variant: 0},
			Image:       io.NewBytesImage(testImageBytes(104)),
			BaseOffset:  0,
		},
		{
			ComponentID: 2,
			Version:     protocol.FwVersion{Major: 2, Minor: 0, Variant: 0},
			Image:       io.NewBytesImage(testImageBytes(40)),
			BaseOffset:  0,
		},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if report.AllUpdated() {
		t.Fatal("old-firmware sub-component reported updated")
	}
	if !report.Results[0].Updated {
		t.Error("primary component not updated")
	}
	if report.Results[1].Updated {
		t.Error("sub-component updated despite older offer")
	}
	if report.Results[1].RejectReason != protocol.OfferRejectOldFw {
		t.Errorf("sub-component reject reason: got %s, want OldFw", report.Results[1].RejectReason)
	}
}
