package searchrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/snappauto/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/snappauto/pkg/core/model"
)

var bindingQuery = binding.Query

type rawSearchReq struct {
	Query string `form:"q"`
	Sort  string `form:"sort"`
}

type searchReq struct {
	Query string
	Sort  model.SortOption
}

type citiesReq struct {
	Query string `form:"q"`
}

// StrCoordinate is the query string form of a model.Coordinate.
type StrCoordinate struct {
	Lat string `form:"lat" binding:"required,latitude"`
	Lon string `form:"lon" binding:"required,longitude"`
}

// ToModel parses sc fields and reports the invalid ones in errs, with
// the query param names as keys.
func (sc StrCoordinate) ToModel(errs *map[string][]string) (c model.Coordinate, ok bool) {
	var latErr, lonErr error
	c.Lat, latErr = strconv.ParseFloat(sc.Lat, 64)
	c.Lon, lonErr = strconv.ParseFloat(sc.Lon, 64)
	ok = serdser.Assert(errs, latErr == nil, "lat", "Query param lat must be a number.")
	ok = serdser.Assert(errs, lonErr == nil, "lon", "Query param lon must be a number.") && ok
	return
}

func (rs *resource) DserSearchReq(c *gin.Context) *searchReq {
	req := &rawSearchReq{}
	if ok := serdser.Bind(c, req, bindingQuery); !ok {
		return nil
	}
	val := &searchReq{Query: req.Query, Sort: model.SortOptionRecommended}
	if req.Sort == "" {
		return val
	}
	var err error
	var errs map[string][]string
	val.Sort, err = model.ParseSortOption(req.Sort)
	if !serdser.Assert(
		&errs, err == nil,
		"sort", "Query param sort must be one of price, recommended, or distance.",
	) {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

func (rs *resource) DserCoordinate(c *gin.Context) *model.Coordinate {
	req := &StrCoordinate{}
	if ok := serdser.Bind(c, req, bindingQuery); !ok {
		return nil
	}
	var errs map[string][]string
	coord, ok := req.ToModel(&errs)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &coord
}
