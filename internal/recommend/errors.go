// Package recommend orchestrates one analysis request: it calls the remote
// recommendation service, reconciles whichever response shape comes back, and
// falls back to the fully local pipeline on any failure. An AnalysisResult is
// always produced; no failure kind is fatal to the request.
package recommend

import "fmt"

// FailureKind classifies why the remote path was abandoned.
type FailureKind string

// Failure kinds, each with its own advisory wording. All of them lead to the
// same local fallback; the advisory text is the only externally
// distinguishable difference.
const (
	// FailureDisabled means no remote client is configured.
	FailureDisabled FailureKind = "disabled"
	// FailureTransport covers network errors reaching the service.
	FailureTransport FailureKind = "transport"
	// FailureTimeout means the bounded call deadline elapsed.
	FailureTimeout FailureKind = "timeout"
	// FailureStatus means the service answered with a non-success status.
	FailureStatus FailureKind = "status"
	// FailureDecode means the response body or wrapped payload was not
	// parseable JSON.
	FailureDecode FailureKind = "decode"
	// FailureShape means the response parsed but matched neither documented
	// shape.
	FailureShape FailureKind = "shape"
)

// FailureError is the typed error returned by the remote fetch. The caller
// always unwraps it into a guaranteed local recomputation.
type FailureError struct {
	Kind  FailureKind
	Cause error
}

func (e *FailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote recommendation failed (%s): %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("remote recommendation failed (%s)", e.Kind)
}

func (e *FailureError) Unwrap() error {
	return e.Cause
}

// Advisory returns the human-readable notice shown to the end user when this
// failure triggered the local fallback.
func (e *FailureError) Advisory() string {
	switch e.Kind {
	case FailureDisabled:
		return "Remote recommendations are disabled; showing locally computed recommendations."
	case FailureTimeout:
		return "The recommendation service timed out; showing locally computed recommendations."
	case FailureTransport:
		return "The recommendation service could not be reached; showing locally computed recommendations."
	case FailureStatus:
		if e.Cause != nil {
			return fmt.Sprintf("The recommendation service reported an error (%v); showing locally computed recommendations.", e.Cause)
		}
		return "The recommendation service reported an error; showing locally computed recommendations."
	case FailureDecode:
		return "The recommendation service returned an unreadable response; showing locally computed recommendations."
	case FailureShape:
		return "The recommendation service response was missing required fields; showing locally computed recommendations."
	default:
		return "Remote recommendations were unavailable; showing locally computed recommendations."
	}
}
