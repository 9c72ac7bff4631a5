// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package searchuc contains the search UseCase which turns a stream of
// query text changes into rental car search results.
// Every change of the query text (or the sort option) cancels the
// previous task and starts a new one. A task waits for the debounce
// delay, resolves the first city which matches the query text, and
// fetches the cars around that city from the search repository.
// Observers may poll the State() or Subscribe() to its changes.
//
// The one-shot Lookup use case runs the same resolution and fetching
// steps synchronously, without debouncing and without changing the
// observable state, for the REST and CLI adapters.
package searchuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/snappauto/pkg/core/cerr"
	"github.com/momeni/snappauto/pkg/core/log"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/momeni/snappauto/pkg/core/repo"
)

// DefaultErrorMessage is shown to users when a search fails, whatever
// the reason of that failure was.
const DefaultErrorMessage = "Something went wrong, please try again"

var (
	// ErrNoMatchingCity indicates that no city name contains the
	// query text.
	ErrNoMatchingCity = errors.New("no matching city")

	// ErrClosed is returned when the query or sort option of a closed
	// UseCase is changed.
	ErrClosed = errors.New("search use case is closed")
)

// UseCase represents the search use case. It holds the cities
// directory and search repositories, the search parameters which are
// not controlled by users, and the observable search state.
type UseCase struct {
	cities repo.Cities
	search repo.Search

	delay        time.Duration
	limit        int
	offset       int
	pageSet      bool
	maxDistance  int
	order        model.Order
	errorMessage string

	mu      sync.Mutex
	state   model.SearchState
	gen     uint64 // incremented per started task
	cancel  context.CancelFunc
	done    chan struct{}
	subs    map[int]chan model.SearchState
	nextSub int
	closed  bool
}

// New instantiates a search use case.
// Required parameters are passed individually, while optional search
// parameters are passed as functional options. Defaults are a 500ms
// debounce delay, limit of 10 results from offset 0, 3000 meters of
// maximum distance, and the ascending order.
func New(c repo.Cities, s repo.Search, opts ...Option) (*UseCase, error) {
	uc := &UseCase{
		cities: c,
		search: s,
		state: model.SearchState{
			Sort:    model.SortOptionRecommended,
			Phase:   model.PhaseIdle,
			Results: []model.SearchResult{},
		},
		subs: make(map[int]chan model.SearchState),
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.delay == 0 {
		uc.delay = 500 * time.Millisecond
	}
	if !uc.pageSet {
		uc.limit, uc.offset = 10, 0
	}
	if uc.maxDistance == 0 {
		uc.maxDistance = 3000
	}
	if uc.order == model.OrderInvalid {
		uc.order = model.OrderAsc
	}
	if uc.errorMessage == "" {
		uc.errorMessage = DefaultErrorMessage
	}
	return uc, nil
}

// SetQuery use case replaces the query text and restarts the search.
func (uc *UseCase) SetQuery(text string) error {
	return uc.restart(func(s *model.SearchState) {
		s.Query = text
	})
}

// SetSort use case replaces the sort option and restarts the search
// for the current query text.
func (uc *UseCase) SetSort(opt model.SortOption) error {
	if err := opt.Validate(); err != nil {
		return cerr.BadRequest(err)
	}
	return uc.restart(func(s *model.SearchState) {
		s.Sort = opt
	})
}

// restart cancels the current task, applies the mutate function on
// the state, and starts a new task.
func (uc *UseCase) restart(mutate func(s *model.SearchState)) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return ErrClosed
	}
	if uc.cancel != nil {
		uc.cancel()
	}
	mutate(&uc.state)
	uc.state.Loading = false
	uc.state.ShowError = false
	uc.state.ErrorMessage = ""
	uc.state.Phase = model.PhaseDebouncing
	uc.gen++
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	uc.cancel, uc.done = cancel, done
	uc.publishLocked()
	go uc.run(ctx, uc.gen, uc.state.Query, uc.state.Sort, done)
	return nil
}

func (uc *UseCase) run(
	ctx context.Context,
	gen uint64,
	text string,
	sort model.SortOption,
	done chan<- struct{},
) {
	defer close(done)
	ctx = log.WithAttrs(ctx, log.ID("task", uuid.New()))
	t := time.NewTimer(uc.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		log.Debug(ctx, "search task is superseded")
		return
	case <-t.C:
	}

	matches := uc.cities.Match(text)
	if len(matches) == 0 {
		log.Debug(
			ctx, "no city matches the query", slog.String("query", text),
		)
		uc.commit(ctx, gen, func(s *model.SearchState) {
			s.Phase = model.PhaseSkipped
		})
		return
	}
	if text == "" {
		uc.commit(ctx, gen, func(s *model.SearchState) {
			s.City = nil
			s.Results = []model.SearchResult{}
			s.Phase = model.PhaseSkipped
		})
		return
	}
	city := matches[0]
	if !uc.commit(ctx, gen, func(s *model.SearchState) {
		s.City = &city
		s.Loading = true
		s.Phase = model.PhaseLoading
	}) {
		return
	}

	q := uc.query(city, sort)
	log.Info(
		ctx, "searching cars",
		slog.String("city", city.Name),
		log.Valuer("query", q),
	)
	results, err := uc.search.Search(ctx, q)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			log.Debug(ctx, "search is canceled")
			return
		}
		log.Warn(ctx, "search failed", log.Err("err", err))
		uc.commit(ctx, gen, func(s *model.SearchState) {
			s.Loading = false
			s.ShowError = true
			s.ErrorMessage = uc.errorMessage
			s.Phase = model.PhaseFailed
		})
		return
	}
	if uc.commit(ctx, gen, func(s *model.SearchState) {
		s.Results = results
		s.Loading = false
		s.Phase = model.PhaseReady
	}) {
		log.Info(
			ctx, "search results are ready", slog.Int("count", len(results)),
		)
	}
}

// commit applies the mutate function on the state if the gen task is
// still the current task and its ctx is not canceled. It reports if
// the state was changed.
func (uc *UseCase) commit(
	ctx context.Context, gen uint64, mutate func(s *model.SearchState),
) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if ctx.Err() != nil || gen != uc.gen || uc.closed {
		return false
	}
	mutate(&uc.state)
	uc.publishLocked()
	return true
}

func (uc *UseCase) query(
	city model.City, sort model.SortOption,
) model.SearchQuery {
	return model.SearchQuery{
		Limit:       uc.limit,
		Offset:      uc.offset,
		Country:     city.Country,
		Coordinate:  city.Coordinate,
		MaxDistance: uc.maxDistance,
		Sort:        sort,
		Order:       uc.order,
	}
}

// publishLocked sends a snapshot of the state to all subscribers.
// Each subscriber channel has a buffer of one snapshot which is
// replaced if it was not received yet. Caller must hold uc.mu.
func (uc *UseCase) publishLocked() {
	for _, ch := range uc.subs {
		select {
		case <-ch:
		default:
		}
		ch <- uc.state.Clone()
	}
}

// State returns a snapshot of the current search state.
func (uc *UseCase) State() model.SearchState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Clone()
}

// Subscribe returns a channel which receives the latest state snapshot
// whenever the state changes. A slow subscriber misses intermediate
// snapshots, but always finds the latest one in the channel.
// The current state is available on the channel immediately.
// The channel is closed by the returned unsubscribe function or when
// the UseCase is closed.
// A snapshot which is pending in the channel at that time is still
// received before the close is observed.
func (uc *UseCase) Subscribe() (<-chan model.SearchState, func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ch := make(chan model.SearchState, 1)
	if uc.closed {
		close(ch)
		return ch, func() {}
	}
	id := uc.nextSub
	uc.nextSub++
	uc.subs[id] = ch
	ch <- uc.state.Clone()
	return ch, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if _, ok := uc.subs[id]; ok {
			delete(uc.subs, id)
			close(ch)
		}
	}
}

// Wait blocks until the task which is current at the time of calling
// Wait finishes, or ctx is done.
func (uc *UseCase) Wait(ctx context.Context) error {
	uc.mu.Lock()
	done := uc.done
	uc.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels the current task and closes all subscriptions.
// Closing a closed UseCase has no effect.
func (uc *UseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.closed {
		return
	}
	uc.closed = true
	if uc.cancel != nil {
		uc.cancel()
	}
	for id, ch := range uc.subs {
		delete(uc.subs, id)
		close(ch)
	}
}

// Lookup use case resolves the first city which matches the query
// text and searches the cars around it using the sort option.
// The search state is not affected.
//
// An empty query text resolves no city and returns an empty results
// list. If no city matches the query text, a cerr.Error with the
// http.StatusNotFound status code wrapping ErrNoMatchingCity is
// returned. Search failures are reported with the
// http.StatusBadGateway status code and the configured error message,
// while their cause may be found using errors.Is and errors.As.
func (uc *UseCase) Lookup(
	ctx context.Context, text string, sort model.SortOption,
) (*model.City, []model.SearchResult, error) {
	if err := sort.Validate(); err != nil {
		return nil, nil, cerr.BadRequest(err)
	}
	matches := uc.cities.Match(text)
	if len(matches) == 0 {
		return nil, nil, cerr.NotFound(
			fmt.Errorf("%w: %q", ErrNoMatchingCity, text),
		)
	}
	if text == "" {
		return nil, []model.SearchResult{}, nil
	}
	city := matches[0]
	q := uc.query(city, sort)
	results, err := uc.search.Search(ctx, q)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return nil, nil, err
		}
		log.Warn(
			ctx, "search lookup failed",
			slog.String("city", city.Name),
			log.Valuer("query", q),
			log.Err("err", err),
		)
		return nil, nil, cerr.BadGateway(&failure{
			msg: uc.errorMessage, err: err,
		})
	}
	return &city, results, nil
}

// Cities use case lists the cities whose names contain text.
func (uc *UseCase) Cities(text string) []model.City {
	return uc.cities.Match(text)
}

// Nearest use case finds the city which is closest to c, and its
// distance from c in meters.
func (uc *UseCase) Nearest(c model.Coordinate) (model.City, float64) {
	return uc.cities.Nearest(c)
}

// failure hides the details of err behind a user-facing message.
type failure struct {
	msg string
	err error
}

func (f *failure) Error() string {
	return f.msg
}

func (f *failure) Unwrap() error {
	return f.err
}
