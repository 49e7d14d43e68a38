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
	"context"
	"fmt"
	"os"

	"github.com/cybergarage/go-cfu/cfu"
	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/cybergarage/go-cfu/cfu/transport"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "update <image-file>",
	Short: "Run an update transaction against a loopback client.",
	Long:  "Offer the image to an in-process loopback client component and stream its contents.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageBytes, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		component := cfu.NewComponent(
			cfu.WithComponentID(1),
			cfu.WithComponentPrimary(true),
			cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 1, Minor: 0, Variant: 0}))
		client := cfu.NewClient(cfu.WithClientComponents(component))
		host := cfu.NewHost(
			transport.NewLoopback(client.ProcessCommand),
			cfu.WithHostConfig(NewConfig()))

		report, err := host.Update(context.Background(), []*cfu.UpdateTarget{
			{
				ComponentID: 1,
				Version:     protocol.FwVersion{Major: 1, Minor: 1, Variant: 0},
				Image:       io.NewBytesImage(imageBytes),
				BaseOffset:  0,
			},
		})
		if err != nil {
			return err
		}

		for _, result := range report.Results {
			if result.Updated {
				fmt.Printf("component %s: updated\n", result.ComponentID)
				continue
			}
			fmt.Printf("component %s: %s (%v)\n", result.ComponentID, result.Status, result.Err)
		}
		return nil
	},
}
