package dto

// EventDisposition is what the handler actually did with an authenticated
// notification. The HTTP boundary collapses every disposition to a generic
// acknowledgment; keeping the tag here keeps the no-op paths testable.
type EventDisposition string

const (
	EventApplied EventDisposition = "applied"
	EventSkipped EventDisposition = "skipped"
)

type SkipReason string

const (
	ReasonUnknownTopic      SkipReason = "unknown_topic"
	ReasonIncompletePayload SkipReason = "incomplete_payload"
	ReasonOrderMissing      SkipReason = "order_missing"
	ReasonAlreadyExists     SkipReason = "already_exists"
)

type ProcessResult struct {
	Disposition EventDisposition
	// Reason is set only when Disposition is EventSkipped.
	Reason SkipReason
}
