package model

import "net/http"

// OutcomeKind is the trust level of an analysis result.
type OutcomeKind string

const (
	// Conformant results passed schema validation.
	OutcomeConformant OutcomeKind = "conformant"
	// BestEffort results are JSON recovered from raw model text without validation.
	OutcomeBestEffort OutcomeKind = "best_effort"
	OutcomeFailure    OutcomeKind = "failure"
)

// AnalysisOutcome is the tagged result of one analyze-trade request.
// Exactly one of Analysis, Raw or Failure is set, according to Kind.
type AnalysisOutcome struct {
	Kind     OutcomeKind
	Analysis *TradeAnalysisEnvelope
	Raw      any
	Failure  *FailureDiagnostics
}

// FailureDiagnostics is what the route answers when no analysis is available.
type FailureDiagnostics struct {
	Status     int    `json:"-"`
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	RawText    string `json:"raw_text,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Body returns the JSON payload for the outcome.
func (o AnalysisOutcome) Body() any {
	switch o.Kind {
	case OutcomeConformant:
		return o.Analysis
	case OutcomeBestEffort:
		return o.Raw
	default:
		return o.Failure
	}
}

// Status is the HTTP status the outcome is answered with.
func (o AnalysisOutcome) Status() int {
	if o.Kind == OutcomeFailure && o.Failure != nil {
		return o.Failure.Status
	}
	return http.StatusOK
}

func NewFailure(status int, errMsg, details string) AnalysisOutcome {
	return AnalysisOutcome{
		Kind:    OutcomeFailure,
		Failure: &FailureDiagnostics{Status: status, Error: errMsg, Details: details},
	}
}
