package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It hosts the facts view and owns the
// program-level quit binding.
type AppModel struct {
	Facts *FactsView
	Keys  KeyMap
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Facts.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.Keys.Quit) {
		return a, tea.Quit
	}
	v, cmd := a.Facts.Update(msg)
	if f, ok := v.(*FactsView); ok {
		a.Facts = f
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Facts.View()
}

// NewAppModel creates the root application model around a facts view.
func NewAppModel(facts *FactsView) *AppModel {
	return &AppModel{
		Facts: facts,
		Keys:  DefaultKeyMap(),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
