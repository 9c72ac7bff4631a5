// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the
// snapsearch project. Commands are organized using the cobra library.
// The "serve" sub-command starts the REST API server, "search" runs
// one search and prints its results, "cities" lists the searchable
// cities, "config" prints the effective settings, and "watch" reads
// query changes from the standard input and prints the debounced
// search states as they change.
//
//	./snapsearch serve [-c /path/of/config.yaml]
//	./snapsearch search [--sort price] Utrecht
//	./snapsearch cities [dam] [--lat 52.3 --lon 4.8]
//	./snapsearch watch < queries.txt
//	./snapsearch config
package command

import (
	"fmt"
	"os"

	"github.com/momeni/snappauto/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "snapsearch",
	Short: "Rental cars search around the SnappCar cities",
	Long: `Rental cars search around the SnappCar cities.
A query text is matched against a fixed list of cities, the first
matching city resolves to its geographic coordinates, and the cars
around that location are fetched from the SnappCar search API.
Results may be served as a REST API, printed once, or watched while
the query text changes (with debouncing).`,
	SilenceUsage: true,
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args or the CONFIG_FILE environment variable. If none of them is
// set, cfgPath remains empty and the default settings are used.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	cfgPath = os.Getenv("CONFIG_FILE")
}

// loadConfig loads the configuration file and installs the default
// logger which writes to the standard error stream, so the standard
// output only contains the commands results.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	if err = c.Log.Setup(os.Stderr); err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}
	return c, nil
}
