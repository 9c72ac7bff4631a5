// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/momeni/snappauto/pkg/adapter/static/citiesrp"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/spf13/cobra"
)

var nearLat, nearLon float64

var citiesCmd = &cobra.Command{
	Use:   "cities [query]",
	Short: "List the searchable cities",
	Long: `List the searchable cities which their names contain the
query text case-insensitively (or all cities without a query).
If both of the --lat and --lon flags are given, the nearest city to
that location is printed with its distance in meters instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: listCities,
}

func listCities(cmd *cobra.Command, args []string) error {
	dir := citiesrp.New()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()
	flags := cmd.Flags()
	if flags.Changed("lat") || flags.Changed("lon") {
		if !flags.Changed("lat") || !flags.Changed("lon") {
			return errors.New("both of --lat and --lon are required")
		}
		city, meters := dir.Nearest(model.Coordinate{Lat: nearLat, Lon: nearLon})
		fmt.Fprintf(w, "%s\t%s\t%.0fm\n", city.Name, city.Country, meters)
		return nil
	}
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	for _, city := range dir.Match(query) {
		fmt.Fprintf(
			w, "%s\t%s\t%g\t%g\n", city.Name, city.Country,
			city.Coordinate.Lat, city.Coordinate.Lon,
		)
	}
	return nil
}

func init() {
	citiesCmd.Flags().Float64Var(&nearLat, "lat", 0, "latitude of a location")
	citiesCmd.Flags().Float64Var(&nearLon, "lon", 0, "longitude of a location")
	rootCmd.AddCommand(citiesCmd)
}
