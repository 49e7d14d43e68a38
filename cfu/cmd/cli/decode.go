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

package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

// DecodeFrame decodes a raw CFU frame by its fixed width and returns a
// human-readable representation.
func DecodeFrame(data []byte) (string, error) {
	switch len(data) {
	case protocol.FwUpdateOfferSize:
		offer, err := protocol.NewFwUpdateOfferFromBytes(data)
		if err != nil {
			return "", err
		}
		return offer.String(), nil
	case protocol.FwUpdateContentCommandSize:
		// 60-byte frames are content commands or version reports; a
		// version report carries its protocol byte at offset 3.
		if res, err := protocol.NewGetFwVersionResponseFromBytes(data); err == nil {
			return res.String(), nil
		}
		cmd, err := protocol.NewFwUpdateContentCommandFromBytes(data)
		if err != nil {
			return "", err
		}
		return cmd.String(), nil
	case protocol.FwUpdateOfferInformationSize:
		switch protocol.NewComponentIDFromByte(data[2]) {
		case protocol.ComponentIDInfo:
			info, err := protocol.NewFwUpdateOfferInformationFromBytes(data)
			if err != nil {
				return "", err
			}
			return info.String(), nil
		case protocol.ComponentIDCommand:
			cmd, err := protocol.NewFwUpdateOfferExtendedFromBytes(data)
			if err != nil {
				return "", err
			}
			return cmd.String(), nil
		}
		// Response frames have no component ID tag. An offer response
		// carries its status at byte 12 and reject reason at byte 8,
		// both reserved (zero) in a content response.
		if data[8] != 0 || data[12] != 0 {
			if res, err := protocol.NewFwUpdateOfferResponseFromBytes(data); err == nil {
				return res.String(), nil
			}
		}
		if res, err := protocol.NewFwUpdateContentResponseFromBytes(data); err == nil {
			return res.String(), nil
		}
		res, err := protocol.NewFwUpdateOfferResponseFromBytes(data)
		if err != nil {
			return "", err
		}
		return res.String(), nil
	}
	return "", fmt.Errorf("unknown frame size (%d)", len(data))
}

var decodeCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "decode <hex-frame>",
	Short: "Decode a hex-encoded CFU frame.",
	Long:  "Decode a hex-encoded CFU frame (16, 32, or 60 bytes) and print its fields.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hexStr := strings.ReplaceAll(strings.TrimSpace(args[0]), " ", "")
		data, err := hex.DecodeString(hexStr)
		if err != nil {
			return err
		}
		s, err := DecodeFrame(data)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}
