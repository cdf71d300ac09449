package ui

import "factsviewer/internal/facts"

// ViewState is what the facts view is currently showing. Exactly one of
// Loading, LoadFailed or Loaded is active.
type ViewState interface {
	viewState()
}

// Loading is the initial state while the fetch is in flight.
type Loading struct{}

// LoadFailed holds the message of whatever made the fetch fail.
type LoadFailed struct {
	Message string
}

// Loaded holds the facts in the order the API returned them.
type Loaded struct {
	Facts []facts.Fact
}

func (Loading) viewState()    {}
func (LoadFailed) viewState() {}
func (Loaded) viewState()     {}
