// Package facts models the facts API payload and fetches it over HTTP.
package facts

// DefaultURL is the production endpoint used when no override is configured.
const DefaultURL = "https://intern-technical-assignment.onrender.com/api/facts/"

// Fact is a single record returned by the facts API.
type Fact struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Fact     string `json:"fact"`
}

// Response is the JSON envelope wrapping the facts list.
// Only Data is required; the remaining fields are informational.
type Response struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
	Data    []Fact `json:"data"`
}
