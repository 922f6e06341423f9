// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// ChartResponse represents the JSON response from the v8 chart endpoint.
// Price fields are pointers because Yahoo emits null for missing sessions.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol   string `json:"symbol"`
				Currency string `json:"currency"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *APIError `json:"error"`
	} `json:"chart"`
}

// APIError is the error object Yahoo embeds in failed responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
