package pipeline

import "fmt"

// NoContentError reports job text that is missing or too thin to extract
// from. Callers treat it as recoverable: the posting simply has nothing
// to analyze.
type NoContentError struct {
	JobID  string
	Length int
}

func (e *NoContentError) Error() string {
	return fmt.Sprintf("no usable job content (job %s, %d chars)", e.JobID, e.Length)
}

// ProfileUnavailableError reports that the profile collaborator returned
// nothing or failed. The current analysis aborts; the host decides
// whether to retry.
type ProfileUnavailableError struct {
	Stage string
	JobID string
	Cause error
}

func (e *ProfileUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile unavailable at stage %s (job %s): %v", e.Stage, e.JobID, e.Cause)
	}
	return fmt.Sprintf("profile unavailable at stage %s (job %s)", e.Stage, e.JobID)
}

func (e *ProfileUnavailableError) Unwrap() error {
	return e.Cause
}

// TaxonomyUninitializedError reports that lazy taxonomy initialization
// failed. Until it succeeds, no extraction can run.
type TaxonomyUninitializedError struct {
	Cause error
}

func (e *TaxonomyUninitializedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy not initialized: %v", e.Cause)
	}
	return "taxonomy not initialized"
}

func (e *TaxonomyUninitializedError) Unwrap() error {
	return e.Cause
}
