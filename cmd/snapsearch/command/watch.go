// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/momeni/snappauto/pkg/core/usecase/searchuc"
	"github.com/spf13/cobra"
)

// sortDirective prefixes the input lines which change the sort option
// instead of the query text.
const sortDirective = ":sort "

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Search while the query text changes",
	Long: `Read the query text changes from the standard input, one query
per line, and print the search states as JSON lines while they change.
Rapid changes are debounced, so only the latest query is searched.
A line like ":sort price" changes the sort option instead.
The command waits for the last search after reaching the end of input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		uc, err := c.NewSearchUseCase(nil)
		if err != nil {
			return fmt.Errorf("creating search use case: %w", err)
		}
		return watch(cmd.Context(), uc, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// event is one printed line of the watch command.
type event struct {
	Phase string `json:"phase"`
	model.SearchState
}

// watch feeds the lines of in to the uc use case and writes its state
// changes to out. It closes uc before returning.
func watch(
	ctx context.Context, uc *searchuc.UseCase, in io.Reader, out io.Writer,
) error {
	states, _ := uc.Subscribe()
	printed := make(chan error, 1)
	go func() {
		enc := json.NewEncoder(out)
		var err error
		for s := range states {
			if err != nil {
				continue // drain
			}
			err = enc.Encode(event{Phase: s.Phase.String(), SearchState: s})
		}
		printed <- err
	}()

	err := feed(uc, in)
	if err == nil {
		err = uc.Wait(ctx)
	}
	uc.Close()
	if perr := <-printed; err == nil && perr != nil {
		err = fmt.Errorf("printing states: %w", perr)
	}
	return err
}

func feed(uc *searchuc.UseCase, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if opt, ok := strings.CutPrefix(line, sortDirective); ok {
			sort, err := model.ParseSortOption(opt)
			if err != nil {
				return fmt.Errorf("parsing sort option %q: %w", opt, err)
			}
			if err = uc.SetSort(sort); err != nil {
				return err
			}
			continue
		}
		if err := uc.SetQuery(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading queries: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
