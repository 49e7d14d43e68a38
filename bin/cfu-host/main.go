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

/*
cfu-host runs a demo CFU update transaction against an in-process client.

	NAME
	cfu-host

	SYNOPSIS
	cfu-host [OPTIONS] [IMAGE-FILE]

	cfu-host offers the image to a loopback client component and streams
	its contents, printing the per-component results.

	RETURN VALUE
	  Return EXIT_SUCCESS or EXIT_FAILURE
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cybergarage/go-cfu/cfu"
	"github.com/cybergarage/go-cfu/cfu/io"
	"github.com/cybergarage/go-cfu/cfu/protocol"
	"github.com/cybergarage/go-cfu/cfu/transport"
	"github.com/cybergarage/go-logger/log"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose output")
	flag.Parse()

	// Setup logger

	if *verbose {
		log.SetSharedLogger(log.NewStdoutLogger(log.LevelTrace))
	}

	imageBytes := []byte("go-cfu demo firmware image")
	if 0 < flag.NArg() {
		fileBytes, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Errorf("failed to read image file: %v", err)
			os.Exit(1)
		}
		imageBytes = fileBytes
	}

	component := cfu.NewComponent(
		cfu.WithComponentID(1),
		cfu.WithComponentPrimary(true),
		cfu.WithComponentFirmwareVersion(protocol.FwVersion{Major: 1, Minor: 0, Variant: 0}))
	client := cfu.NewClient(cfu.WithClientComponents(component))
	host := cfu.NewHost(transport.NewLoopback(client.ProcessCommand))

	report, err := host.Update(context.Background(), []*cfu.UpdateTarget{
		{
			ComponentID: 1,
			Version:     protocol.FwVersion{Major: 1, Minor: 1, Variant: 0},
			Image:       io.NewBytesImage(imageBytes),
			BaseOffset:  0,
		},
	})
	if err != nil {
		log.Errorf("update transaction failed: %v", err)
		os.Exit(1)
	}

	for _, result := range report.Results {
		if result.Updated {
			fmt.Printf("component %s: updated\n", result.ComponentID)
			continue
		}
		fmt.Printf("component %s: %s (%v)\n", result.ComponentID, result.Status, result.Err)
	}

	if !report.AllUpdated() {
		os.Exit(1)
	}
	os.Exit(0)
}
