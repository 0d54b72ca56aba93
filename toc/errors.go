package toc

import "go.uber.org/multierr"

// FatalError wraps one or more internal invariant violations detected
// during selection. Unlike a RegexSyntax failure (which is localized to
// the offending pattern and logged away) a FatalError means the engine's
// own bookkeeping is inconsistent and the caller should abort rather than
// return partial results.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string { return "toc: internal invariant violation: " + e.err.Error() }

func (e *FatalError) Unwrap() error { return e.err }

// newFatalError aggregates one or more invariant failures with multierr, so
// callers see every problem found at once instead of only the first.
func newFatalError(errs ...error) *FatalError {
	combined := multierr.Combine(errs...)
	if combined == nil {
		return nil
	}
	return &FatalError{err: combined}
}
