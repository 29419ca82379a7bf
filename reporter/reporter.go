package reporter

import (
	"sync"

	"github.com/sexpbuild/sexpcompile/ast"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, compilation aborts with that error. If the
// reporter returns nil, the stage that reported the error still stops (this
// compiler does not attempt recovery), but the overall result is the
// sentinel ErrInvalidSource instead of the swallowed error.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// indicate input that is legal but suspicious, such as adjacent digits
// lexing into separate number tokens. Though they are just warnings, the
// details are supplied to the reporter via an error type.
type WarningReporter func(ErrorWithPos)

// Reporter receives errors and warnings as a compilation runs.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter creates a Reporter from the given function values, either of
// which may be nil. A nil error function fails on the first error; a nil
// warning function ignores warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler coordinates the reporting of errors and warnings from a single
// compilation. It is safe for concurrent use.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler. A nil reporter means errors abort the
// compilation immediately and warnings are ignored.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports the given error. If the error is an ErrorWithPos it is
// passed to the underlying reporter; the reporter's verdict (or the error
// itself, for a nil reporter) becomes the handler's resolution and is
// returned from all subsequent calls.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarningf reports a warning with the given source position and message.
func (h *Handler) HandleWarningf(pos ast.SourcePos, format string, args ...interface{}) {
	// no lock; warnings don't interact with mutable fields
	h.reporter.Warning(Errorf(pos, format, args...))
}

// Error returns the handler's resolution: nil if no errors were reported, the
// first reported error otherwise. If errors were reported but the reporter
// swallowed them all, ErrInvalidSource is returned.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}
