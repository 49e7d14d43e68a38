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
	"encoding/binary"
	"fmt"
)

// ContentFlags is the flags bitmask of a content command.
type ContentFlags uint8

const (
	// ContentFlagNone marks a middle block.
	ContentFlagNone ContentFlags = 0x00
	// ContentFlagFirstBlock marks the first block of an image.
	ContentFlagFirstBlock ContentFlags = 0x80
	// ContentFlagLastBlock marks the last block of an image.
	ContentFlagLastBlock ContentFlags = 0x40
)

// String returns the string representation of the flags.
func (f ContentFlags) String() string {
	switch f {
	case ContentFlagNone:
		return "None"
	case ContentFlagFirstBlock:
		return "FirstBlock"
	case ContentFlagLastBlock:
		return "LastBlock"
	case ContentFlagFirstBlock | ContentFlagLastBlock:
		return "FirstBlock|LastBlock"
	}
	return fmt.Sprintf("0x%02X", uint8(f))
}

// FwUpdateContentCommand carries one block of image data to a component
// (60 bytes on the wire). DataLength is not validated at decode; the
// engine enforces DataLength <= DefaultDataLength.
type FwUpdateContentCommand struct {
	Flags           ContentFlags
	DataLength      uint8
	SequenceNum     uint16
	FirmwareAddress uint32
	Data            [DefaultDataLength]byte
}

// NewFwUpdateContentCommand creates a content command carrying the data
// block, zero-padded to the fixed payload width.
func NewFwUpdateContentCommand(flags ContentFlags, seqNum uint16, addr uint32, data []byte) *FwUpdateContentCommand {
	cmd := &FwUpdateContentCommand{
		Flags:           flags,
		DataLength:      uint8(min(len(data), DefaultDataLength)),
		SequenceNum:     seqNum,
		FirmwareAddress: addr,
		Data:            [DefaultDataLength]byte{},
	}
	copy(cmd.Data[:], data)
	return cmd
}

// IsFirstBlock reports whether the first-block flag is set.
func (cmd *FwUpdateContentCommand) IsFirstBlock() bool {
	return (cmd.Flags & ContentFlagFirstBlock) != 0
}

// IsLastBlock reports whether the last-block flag is set.
func (cmd *FwUpdateContentCommand) IsLastBlock() bool {
	return (cmd.Flags & ContentFlagLastBlock) != 0
}

// Encode serializes the command to its fixed 60-byte wire form.
func (cmd *FwUpdateContentCommand) Encode() []byte {
	bytes := make([]byte, FwUpdateContentCommandSize)
	bytes[0] = byte(cmd.Flags)
	bytes[1] = cmd.DataLength
	binary.LittleEndian.PutUint16(bytes[2:4], cmd.SequenceNum)
	binary.LittleEndian.PutUint32(bytes[4:8], cmd.FirmwareAddress)
	copy(bytes[8:], cmd.Data[:])
	return bytes
}

// NewFwUpdateContentCommandFromBytes parses a content command from its
// 60-byte wire form.
func NewFwUpdateContentCommandFromBytes(data []byte) (*FwUpdateContentCommand, error) {
	if len(data) < FwUpdateContentCommandSize {
		return nil, newShortBufferError("FwUpdateContentCommand", data, FwUpdateContentCommandSize)
	}
	cmd := &FwUpdateContentCommand{
		Flags:           ContentFlags(data[0]),
		DataLength:      data[1],
		SequenceNum:     binary.LittleEndian.Uint16(data[2:4]),
		FirmwareAddress: binary.LittleEndian.Uint32(data[4:8]),
		Data:            [DefaultDataLength]byte{},
	}
	copy(cmd.Data[:], data[8:FwUpdateContentCommandSize])
	return cmd, nil
}

// String returns a human-readable representation of the command.
func (cmd *FwUpdateContentCommand) String() string {
	return fmt.Sprintf("FwUpdateContentCommand{Flags=%s, Seq=%d, Len=%d, Addr=0x%08X}",
		cmd.Flags, cmd.SequenceNum, cmd.DataLength, cmd.FirmwareAddress)
}
