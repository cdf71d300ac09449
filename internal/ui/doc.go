// Package ui renders the facts viewer with Bubble Tea.
//
// FactsView owns a three-way ViewState (Loading, LoadFailed, Loaded) and
// issues exactly one fetch per endpoint value. AppModel adapts it to
// tea.Model and handles quitting.
package ui
