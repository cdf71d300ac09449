package ui

import "factsviewer/internal/facts"

// EndpointChangedMsg points the view at a new endpoint. A different URL
// restarts the view in Loading and issues a fresh fetch. The command sends
// it through tea.Program.Send when FACTS_API_URL changes in the .env file.
type EndpointChangedMsg struct {
	URL string
}

// factsLoadedMsg carries a successful fetch result for Endpoint.
type factsLoadedMsg struct {
	Endpoint string
	Facts    []facts.Fact
}

// factsFailedMsg carries a failed fetch for Endpoint.
type factsFailedMsg struct {
	Endpoint string
	Err      error
}
