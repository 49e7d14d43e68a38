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
cfu-dump is a dump utility for CFU protocol frames.

	NAME
	cfu-dump

	SYNOPSIS
	cfu-dump [OPTIONS]

	cfu-dump reads hex-encoded frames from stdin, one per line, and
	prints the decoded frames.

	RETURN VALUE
	  Return EXIT_SUCCESS or EXIT_FAILURE
*/
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cybergarage/go-cfu/cfu/cmd/cli"
	"github.com/cybergarage/go-logger/log"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose output")
	flag.Parse()

	// Setup logger

	if *verbose {
		log.SetSharedLogger(log.NewStdoutLogger(log.LevelTrace))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), " ", "")
		if len(line) == 0 {
			continue
		}
		data, err := hex.DecodeString(line)
		if err != nil {
			log.Errorf("invalid hex line: %v", err)
			continue
		}
		s, err := cli.DecodeFrame(data)
		if err != nil {
			log.Errorf("failed to decode frame: %v", err)
			log.HexWarn(data)
			continue
		}
		fmt.Println(s)
	}

	if err := scanner.Err(); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
