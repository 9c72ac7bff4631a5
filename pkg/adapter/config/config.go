// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the snapsearch to instantiate
// different components, from the adapter or use cases layers, using
// those loaded configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so they
// are validated once more by the relevant end-component such as the
// search UseCase instance.
//
// All settings are optional. Missing settings take their default
// values during the ValidateAndNormalize step, so an empty file (or
// no file at all) describes a working configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/snappauto/pkg/adapter/config/settings"
	"github.com/momeni/snappauto/pkg/adapter/metrics"
	"github.com/momeni/snappauto/pkg/adapter/restful/gin"
	"github.com/momeni/snappauto/pkg/adapter/snappcar"
	"github.com/momeni/snappauto/pkg/adapter/snappcar/searchrp"
	"github.com/momeni/snappauto/pkg/adapter/static/citiesrp"
	"github.com/momeni/snappauto/pkg/core/log"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/momeni/snappauto/pkg/core/repo"
	"github.com/momeni/snappauto/pkg/core/usecase/searchuc"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is implemented
// with primitive fields or structs which are defined locally, not
// models from lower layers, so the configuration file format can be
// kept intact while other layers change freely.
type Config struct {
	SnappCar SnappCar `yaml:"snappcar"` // upstream search API settings
	Search   Search   `yaml:"search"`   // search use case settings
	Gin      Gin      `yaml:"gin"`      // Gin-Gonic instantiation settings
	Log      Log      `yaml:"log"`
	Metrics  Metrics  `yaml:"metrics"`
}

// NewSearchUseCase instantiates the search repositories and a new
// search use case based on the settings in the `c` struct.
// The m metrics is optional and records the search API calls.
func (c *Config) NewSearchUseCase(
	m *metrics.Metrics,
) (*searchuc.UseCase, error) {
	var o snappcar.Observer
	if m != nil {
		o = m
	}
	client, err := c.SnappCar.NewClient(o)
	if err != nil {
		return nil, fmt.Errorf("creating search API client: %w", err)
	}
	searchRepo := searchrp.New(client, snappcar.Mapper{})
	return c.Search.NewUseCase(citiesrp.New(), searchRepo)
}

// SnappCar contains the search API client settings.
type SnappCar struct {
	// BaseURL is the endpoint which /search/query is appended to.
	BaseURL *string `yaml:"base-url" validate:"omitempty,url"`
	// Timeout bounds each search request. Zero means no timeout.
	Timeout *settings.Duration `yaml:"timeout" validate:"omitempty,gte=0"`
}

// NewClient instantiates a search API client based on the `s`
// settings. The o observer is optional.
func (s SnappCar) NewClient(o snappcar.Observer) (*snappcar.Client, error) {
	opts := make([]snappcar.Option, 0, 3)
	opts = append(opts, snappcar.WithBaseURL(*s.BaseURL))
	if t := time.Duration(*s.Timeout); t > 0 {
		opts = append(opts, snappcar.WithTimeout(t))
	}
	if o != nil {
		opts = append(opts, snappcar.WithObserver(o))
	}
	return snappcar.New(opts...)
}

// Search contains the search use case settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized. Uninitialized fields are filled by their
// default values in the ValidateAndNormalize method.
type Search struct {
	// DebounceDelay is the waiting time after each query change.
	DebounceDelay *settings.Duration `yaml:"debounce-delay" validate:"omitempty,gt=0"`
	// MinDebounceDelay is the inclusive minimum acceptable value
	// for the DebounceDelay setting.
	// A missing value indicates that there is no lower bound.
	MinDebounceDelay *settings.Duration `yaml:"debounce-delay-minimum" validate:"omitempty,gt=0"`
	// MaxDebounceDelay is the inclusive maximum acceptable value
	// for the DebounceDelay setting.
	// A missing value indicates that there is no upper bound.
	MaxDebounceDelay *settings.Duration `yaml:"debounce-delay-maximum" validate:"omitempty,gt=0"`

	Limit        *int    `yaml:"limit" validate:"omitempty,gt=0"`
	Offset       *int    `yaml:"offset" validate:"omitempty,gte=0"`
	MaxDistance  *int    `yaml:"max-distance" validate:"omitempty,gt=0"`
	Order        *string `yaml:"order" validate:"omitempty,oneof=asc desc"`
	ErrorMessage *string `yaml:"error-message" validate:"omitempty,min=1"`
}

// NewUseCase instantiates a new search use case based on the settings
// in the `s` struct.
func (s Search) NewUseCase(
	c repo.Cities, r repo.Search,
) (*searchuc.UseCase, error) {
	o, err := model.ParseOrder(*s.Order)
	if err != nil {
		return nil, fmt.Errorf("parsing order: %w", err)
	}
	return searchuc.New(
		c, r,
		searchuc.WithDebounceDelay(time.Duration(*s.DebounceDelay)),
		searchuc.WithPage(*s.Limit, *s.Offset),
		searchuc.WithMaxDistance(*s.MaxDistance),
		searchuc.WithOrder(o),
		searchuc.WithErrorMessage(*s.ErrorMessage),
	)
}

// Gin contains the gin-gonic related configuration settings.
type Gin struct {
	// Address is the TCP address which the REST API listens on.
	Address  *string `yaml:"address" validate:"omitempty,hostname_port"`
	Logger   *bool   `yaml:"logger"`   // Whether to log requests with slog
	Recovery *bool   `yaml:"recovery"` // Whether to recover from panics
	// RateLimit is the number of accepted requests per second for each
	// client IP address. Zero disables the rate limiting.
	RateLimit *float64 `yaml:"rate-limit" validate:"omitempty,gte=0"`
	Burst     *int     `yaml:"burst" validate:"omitempty,gte=0"`
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The m metrics is optional.
func (g Gin) NewEngine(m *metrics.Metrics) *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3)
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if m != nil {
		middlewares = append(middlewares, gin.Metrics(m))
	}
	return gin.New(middlewares...)
}

// APIMiddlewares returns the middlewares which only cover the REST
// APIs, so the metrics endpoint is never rate limited.
func (g Gin) APIMiddlewares() []gin.HandlerFunc {
	if *g.RateLimit <= 0 {
		return nil
	}
	return []gin.HandlerFunc{gin.RateLimit(*g.RateLimit, *g.Burst)}
}

// Log contains the structured logging settings.
type Log struct {
	Level  *string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format *string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Setup installs the default logger which writes into w.
func (l Log) Setup(w io.Writer) error {
	return log.Setup(w, *l.Level, *l.Format)
}

// Metrics contains the prometheus metrics settings.
type Metrics struct {
	Enabled *bool   `yaml:"enabled"`
	Path    *string `yaml:"path" validate:"omitempty,startswith=/"`
}

// New instantiates the metrics collectors if they are enabled,
// otherwise, it returns nil.
func (m Metrics) New() *metrics.Metrics {
	if !*m.Enabled {
		return nil
	}
	return metrics.New()
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// An empty path loads the default settings.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals the data byte slice and loads a Config instance.
// Extra items in the data will be ignored and missing items will take
// their default values. The SNAPSEARCH_BASE_URL, SNAPSEARCH_ADDRESS,
// SNAPSEARCH_LOG_LEVEL, SNAPSEARCH_LOG_FORMAT, and
// SNAPSEARCH_METRICS_PATH environment variables take precedence over
// their data counterparts. Thereafter, the loaded Config is validated
// and normalized.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	c.overrideFromEnv()
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// overrideFromEnv replaces the string settings whose environment
// variables are present.
func (c *Config) overrideFromEnv() {
	for key, dst := range map[string]**string{
		"SNAPSEARCH_BASE_URL":     &c.SnappCar.BaseURL,
		"SNAPSEARCH_ADDRESS":      &c.Gin.Address,
		"SNAPSEARCH_LOG_LEVEL":    &c.Log.Level,
		"SNAPSEARCH_LOG_FORMAT":   &c.Log.Format,
		"SNAPSEARCH_METRICS_PATH": &c.Metrics.Path,
	} {
		settings.LookupEnv(dst, key)
	}
}

// Marshal serializes the `c` settings as yaml. After normalization,
// the result lists the effective value of every setting.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It also replaces the
// nil settings with their default values.
func (c *Config) ValidateAndNormalize() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf(
				"invalid %s setting: %w", verrs[0].Namespace(), err,
			)
		}
		return err
	}
	settings.OverwriteNil(
		&c.Search.DebounceDelay, ptr(settings.Duration(500*time.Millisecond)),
	)
	delays := settings.Range[settings.Duration]{
		Min: c.Search.MinDebounceDelay,
		Max: c.Search.MaxDebounceDelay,
	}
	if err := delays.Clamp(&c.Search.DebounceDelay); err != nil {
		if err.InvalidRange {
			return fmt.Errorf("verifying debounce delay range: %w", err)
		}
		log.Warn(
			context.Background(),
			"debounce delay is adjusted by boundary values",
			log.Valuer("value", err.Value),
			log.Valuer("bound", err.Bound),
			log.Err("violation", err),
		)
	}

	settings.OverwriteNil(&c.SnappCar.BaseURL, ptr(snappcar.DefaultBaseURL))
	settings.Nil2Zero(&c.SnappCar.Timeout)

	settings.OverwriteNil(&c.Search.Limit, ptr(10))
	settings.Nil2Zero(&c.Search.Offset)
	settings.OverwriteNil(&c.Search.MaxDistance, ptr(3000))
	settings.OverwriteNil(&c.Search.Order, ptr(model.OrderAsc.String()))
	settings.OverwriteNil(
		&c.Search.ErrorMessage, ptr(searchuc.DefaultErrorMessage),
	)

	settings.OverwriteNil(&c.Gin.Address, ptr(":8080"))
	settings.OverwriteNil(&c.Gin.Logger, ptr(true))
	settings.OverwriteNil(&c.Gin.Recovery, ptr(true))
	settings.Nil2Zero(&c.Gin.RateLimit)
	settings.Nil2Zero(&c.Gin.Burst)
	if *c.Gin.RateLimit > 0 && *c.Gin.Burst == 0 {
		*c.Gin.Burst = 1
	}

	settings.OverwriteNil(&c.Log.Level, ptr("info"))
	settings.OverwriteNil(&c.Log.Format, ptr("text"))

	settings.Nil2Zero(&c.Metrics.Enabled)
	settings.OverwriteNil(&c.Metrics.Path, ptr("/metrics"))
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
