// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Phase is the lifecycle step of the latest query which was given to
// the search orchestrator.
//
//	Idle -> Debouncing -> Skipped
//	                   -> Loading -> Ready | Failed
//
// A new query moves the orchestrator back to Debouncing from any phase.
type Phase int

// Valid values for the Phase enum.
const (
	PhaseIdle       Phase = iota // no query was given yet
	PhaseDebouncing              // waiting for the typing to settle
	PhaseSkipped                 // no city matched or query was empty
	PhaseLoading                 // upstream search is in flight
	PhaseReady                   // results were replaced
	PhaseFailed                  // upstream search failed
)

// String returns a lower-case name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseSkipped:
		return "skipped"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SearchState is a snapshot of the search orchestrator observable
// state. Snapshots are values: their Results slice is not shared with
// the orchestrator, so readers may keep them around.
type SearchState struct {
	Query        string         `json:"query"`
	Sort         SortOption     `json:"sort"`
	Phase        Phase          `json:"-"`
	City         *City          `json:"city,omitempty"` // last resolved
	Results      []SearchResult `json:"results"`
	Loading      bool           `json:"loading"`
	ShowError    bool           `json:"showError"`
	ErrorMessage string         `json:"errorMessage"`
}

// Clone returns a copy of s which does not share its Results slice
// or its City with s.
func (s SearchState) Clone() SearchState {
	c := s
	c.Results = make([]SearchResult, len(s.Results))
	copy(c.Results, s.Results)
	if s.City != nil {
		city := *s.City
		c.City = &city
	}
	return c
}
