package pipeline

import "fmt"

// Kind enumerates the error taxonomy from spec §7. ParseWarning is not a Go
// error type at all — malformed rows are dropped inline by filter predicates
// in the loader/aggregator packages, never surfaced as a returned error.
type Kind string

const (
	KindMissingInput        Kind = "MissingInput"
	KindSchemaMismatch      Kind = "SchemaMismatch"
	KindEmptyPartition      Kind = "EmptyPartition"
	KindModelReleaseMissing Kind = "ModelReleaseMissing"
)

// Error is the common shape for the three fail-fast error kinds. Wrap with
// fmt.Errorf("stage: %w", err) at call sites, same as the rest of the repo.
type Error struct {
	Kind    Kind
	Subject string // path, URL, column name, or model id naming the offender
	Detail  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Subject, e.Detail)
}

// MissingInput builds a KindMissingInput error for an unavailable file/URL.
func MissingInput(subject, detail string) error {
	return &Error{Kind: KindMissingInput, Subject: subject, Detail: detail}
}

// SchemaMismatch builds a KindSchemaMismatch error for an absent column or a
// benchmark asset whose regex anchors no longer match.
func SchemaMismatch(subject, detail string) error {
	return &Error{Kind: KindSchemaMismatch, Subject: subject, Detail: detail}
}

// ModelReleaseMissing builds a KindModelReleaseMissing error listing the
// offending model ids.
func ModelReleaseMissing(modelIDs []string) error {
	return &Error{Kind: KindModelReleaseMissing, Subject: fmt.Sprintf("%v", modelIDs), Detail: "no release date in MODEL_RELEASES"}
}

// EmptyPartitionNote is not an error — the Task Alignment Engine continues
// with a NaN row when a mapped SOC set has no candidate tasks. This type
// exists only so callers can log the condition consistently.
type EmptyPartitionNote struct {
	Occupation string
	SOCCodes   []string
}

func (n EmptyPartitionNote) String() string {
	return fmt.Sprintf("%s: %s: no candidate tasks for SOC set %v", KindEmptyPartition, n.Occupation, n.SOCCodes)
}
