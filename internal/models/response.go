package models

// AskRequest is the JSON body sent to the QA endpoint
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the decoded reply of the QA endpoint
type AskResponse struct {
	// Answer is empty when the field is absent or blank
	Answer string
	// StatusCode is informational; bodies are rendered whatever the status
	StatusCode int
}

// Text returns the answer, or the literal fallback when it is empty
func (r *AskResponse) Text() string {
	if r == nil || r.Answer == "" {
		return FallbackAnswer
	}
	return r.Answer
}

// SummaryResponse is the decoded reply of the summarization endpoint
type SummaryResponse struct {
	Summary    string
	StatusCode int
}

// Text returns the summary, or the literal fallback when it is empty
func (r *SummaryResponse) Text() string {
	if r == nil || r.Summary == "" {
		return FallbackSummary
	}
	return r.Summary
}
