package faultline

type OutcomeKind string

const (
	OutcomeKind_Known   OutcomeKind = "failure.known"
	OutcomeKind_Foreign OutcomeKind = "failure.foreign"
	OutcomeKind_Unknown OutcomeKind = "failure.unknown"
)

// Outcome is the classification Run hands to its handler when a failure
// escapes the entry function. Exactly one concrete type is produced per
// failure: KnownOutcome, ForeignOutcome or UnknownOutcome.
type Outcome interface {
	Kind() OutcomeKind
}

// KnownOutcome reports a failure raised by this framework. The goroutine's
// trace recorder was frozen when the failure was constructed, so the handler
// can read the call chain active at the raise site from the context's
// recorder.
type KnownOutcome struct {
	Failure *Failure
}

func (o *KnownOutcome) Kind() OutcomeKind {
	return OutcomeKind_Known
}

// ForeignOutcome reports a failure that implements error but was not raised
// by this framework, such as a runtime error or a panicked error value.
// Nothing froze the trace recorder on this path, so the snapshot is usually
// empty by the time the handler runs.
type ForeignOutcome struct {
	Description string
	Err         error
}

func (o *ForeignOutcome) Kind() OutcomeKind {
	return OutcomeKind_Foreign
}

// UnknownOutcome reports a failure the boundary cannot introspect: the panic
// payload is neither a *Failure nor an error.
type UnknownOutcome struct {
	Value interface{}
}

func (o *UnknownOutcome) Kind() OutcomeKind {
	return OutcomeKind_Unknown
}
