package repo

import "github.com/momeni/snappauto/pkg/core/model"

// Cities is the directory of searchable cities.
type Cities interface {
	All() []model.City
	Match(query string) []model.City
	Nearest(c model.Coordinate) (city model.City, meters float64)
}
