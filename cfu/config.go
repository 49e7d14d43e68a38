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

package cfu

import (
	"time"
)

const (
	// DefaultBusyRetryLimit is the default maximum number of sends of an offer answered with Busy.
	DefaultBusyRetryLimit = 3
	// DefaultBusyRetryInterval is the default delay between Busy retries.
	DefaultBusyRetryInterval = 100 * time.Millisecond
)

// Config holds the host engine knobs.
type Config struct {
	// BusyRetryLimit is the maximum number of times an offer is sent,
	// counting the first send, while the peer answers Busy. A Busy answer
	// to the last allowed send yields a timeout error for the component.
	BusyRetryLimit int
	// BusyRetryInterval is the delay between Busy retries.
	BusyRetryInterval time.Duration
	// PerRequestTimeout bounds a single transport round trip.
	// Zero means no per-request deadline.
	PerRequestTimeout time.Duration
}

// NewDefaultConfig returns a Config with the default knob values.
func NewDefaultConfig() *Config {
	return &Config{
		BusyRetryLimit:    DefaultBusyRetryLimit,
		BusyRetryInterval: DefaultBusyRetryInterval,
		PerRequestTimeout: 0,
	}
}
