// Package api provides the HTTP client for the Ask/PDF chat service.
package api

// GJSON paths for extracting values from endpoint replies.
// Both endpoints also send an "ok" flag, which the client ignores.
const (
	PathAnswer  = "answer"
	PathSummary = "summary"
)
