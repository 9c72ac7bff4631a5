// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/spf13/cobra"
)

var sortName string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the cars around the first matching city once",
	Long: `Search the cars around the first city which its name contains
the query text (case-insensitively) and print the matched city and the
found cars as a JSON document. Arguments are joined by a space, so the
query text does not need quoting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: search,
}

func search(cmd *cobra.Command, args []string) error {
	sort, err := model.ParseSortOption(sortName)
	if err != nil {
		return fmt.Errorf("parsing --sort %q: %w", sortName, err)
	}
	c, err := loadConfig()
	if err != nil {
		return err
	}
	uc, err := c.NewSearchUseCase(nil)
	if err != nil {
		return fmt.Errorf("creating search use case: %w", err)
	}
	defer uc.Close()
	city, results, err := uc.Lookup(
		cmd.Context(), strings.Join(args, " "), sort,
	)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		City    *model.City          `json:"city"`
		Results []model.SearchResult `json:"results"`
	}{City: city, Results: results})
}

func init() {
	searchCmd.Flags().StringVarP(
		&sortName, "sort", "s", model.SortOptionRecommended.String(),
		"sort option: price, recommended, or distance",
	)
	rootCmd.AddCommand(searchCmd)
}
