package customerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adexaja/trade-analysis-ai/model"
)

var (
	ErrMissingInput = errors.New("Asset and investment amount are required")
	ErrEmptyOutput  = errors.New("model returned no text")
)

// SchemaIssue is one non-conforming path of a validated value.
type SchemaIssue struct {
	Path    string
	Message string
}

// SchemaError lists every path that failed validation.
type SchemaError struct {
	Issues []SchemaIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// NoObjectGeneratedError is returned when the model answered but the answer is
// not a schema-conformant object. Text is the raw answer, possibly empty.
type NoObjectGeneratedError struct {
	Text         string
	Cause        error
	FinishReason string
	Usage        model.TokenUsage
}

func (e *NoObjectGeneratedError) Error() string {
	return fmt.Sprintf("no object generated (finish reason %q): %v", e.FinishReason, e.Cause)
}

func (e *NoObjectGeneratedError) Unwrap() error {
	return e.Cause
}

// UpstreamFetchError wraps failures of the market data or generation services.
type UpstreamFetchError struct {
	Source string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}
