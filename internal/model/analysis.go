package model

// AnalysisRequest is the accepted body shape for POST /analyze. The field is
// required and must be a JSON string; any other key is rejected.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// AnalysisResult echoes the input text together with its counts.
type AnalysisResult struct {
	OriginalText   string `json:"original_text"`
	WordCount      int    `json:"word_count"`
	CharacterCount int    `json:"character_count"`
}

// HealthStatus is the fixed payload of GET /health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the envelope for every non-200 response.
type ErrorResponse struct {
	Error string `json:"error"`
}
