// Package errors provides structured error handling for grid layouts and the
// scene graph they are attached to.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid grid or layout file configuration.
	KindConfig
	// KindBounds indicates a cell position or span outside the grid.
	KindBounds
	// KindScene indicates the scene graph rejected a mutation.
	KindScene
	// KindRender indicates a rasterization error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBounds:
		return "bounds"
	case KindScene:
		return "scene"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by LayoutError. Match them with Is.
var (
	ErrInvalidGrid = stderrors.New("invalid grid configuration")
	ErrOutOfBounds = stderrors.New("cell outside grid bounds")
	ErrNilContent  = stderrors.New("nil cell content")

	// ErrUncomparableContent marks content that cannot be matched by
	// identity, such as a value type holding a slice.
	ErrUncomparableContent = stderrors.New("cell content type is not comparable")
)

// LayoutError represents a structured error raised by the layout packages.
type LayoutError struct {
	// Op is the operation that failed (e.g., "layout.AddContent").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error was reported. Zero until Report is called.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// New returns a LayoutError for op wrapping err.
func New(op string, kind ErrorKind, err error) *LayoutError {
	return &LayoutError{Op: op, Kind: kind, Err: err}
}

// Errorf returns a LayoutError whose underlying error is built with
// fmt.Errorf, so %w verbs keep the wrapped chain intact.
func Errorf(op string, kind ErrorKind, format string, args ...any) *LayoutError {
	return &LayoutError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first LayoutError in err's chain.
func KindOf(err error) ErrorKind {
	var le *LayoutError
	if stderrors.As(err, &le) {
		return le.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scene.Render").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the layout packages.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is re-exports errors.Is for callers importing this package under the
// name errors.
var Is = stderrors.Is
