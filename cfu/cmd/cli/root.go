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

// Package cli implements the cfuctl command tree.
package cli

import (
	"strings"

	"github.com/cybergarage/go-cfu/cfu"
	"github.com/cybergarage/go-logger/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ProgramName     = "cfuctl"
	VerboseParamStr = "verbose"
	DebugParamStr   = "debug"
	RetryParamStr   = "busy-retry-limit"
	TimeoutParamStr = "timeout"
)

var rootCmd = &cobra.Command{ // nolint:exhaustruct
	Use:               ProgramName,
	Version:           cfu.Version,
	Short:             "",
	Long:              "",
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetSharedLogger(nil)
		verbose := viper.GetBool(VerboseParamStr)
		debug := viper.GetBool(DebugParamStr)
		if debug {
			verbose = true
		}
		if verbose {
			log.Infof("%s version %s", ProgramName, cfu.Version)
			log.Infof("verbose:%t, debug:%t", verbose, debug)
			if debug {
				log.SetSharedLogger(log.NewStdoutLogger(log.LevelDebug))
			} else {
				log.SetSharedLogger(log.NewStdoutLogger(log.LevelInfo))
			}
		}
		return nil
	},
}

// RootCommand returns the root command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// NewConfig returns an engine configuration populated from the recognized
// configuration options.
func NewConfig() *cfu.Config {
	config := cfu.NewDefaultConfig()
	if limit := viper.GetInt(RetryParamStr); 0 < limit {
		config.BusyRetryLimit = limit
	}
	if timeout := viper.GetDuration(TimeoutParamStr); 0 < timeout {
		config.PerRequestTimeout = timeout
	}
	return config
}

func init() {
	viper.SetEnvPrefix("cfu_ctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	viper.SetDefault(VerboseParamStr, false)
	rootCmd.PersistentFlags().Bool(VerboseParamStr, false, "enable verbose output")
	viper.BindPFlag(VerboseParamStr, rootCmd.PersistentFlags().Lookup(VerboseParamStr))
	viper.BindEnv(VerboseParamStr) // CFU_CTL_VERBOSE

	viper.SetDefault(DebugParamStr, false)
	rootCmd.PersistentFlags().Bool(DebugParamStr, false, "enable debug output")
	viper.BindPFlag(DebugParamStr, rootCmd.PersistentFlags().Lookup(DebugParamStr))
	viper.BindEnv(DebugParamStr) // CFU_CTL_DEBUG

	viper.SetDefault(RetryParamStr, cfu.DefaultBusyRetryLimit)
	rootCmd.PersistentFlags().Int(RetryParamStr, cfu.DefaultBusyRetryLimit, "maximum offer sends while the peer answers busy")
	viper.BindPFlag(RetryParamStr, rootCmd.PersistentFlags().Lookup(RetryParamStr))
	viper.BindEnv(RetryParamStr) // CFU_CTL_BUSY_RETRY_LIMIT

	viper.SetDefault(TimeoutParamStr, 0)
	rootCmd.PersistentFlags().Duration(TimeoutParamStr, 0, "per-request transport timeout")
	viper.BindPFlag(TimeoutParamStr, rootCmd.PersistentFlags().Lookup(TimeoutParamStr))
	viper.BindEnv(TimeoutParamStr) // CFU_CTL_TIMEOUT
}
