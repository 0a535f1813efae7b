package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/wippyai/openxr/abi"
)

// Phase indicates which part of the API issued the failing call
type Phase string

const (
	PhaseLoader    Phase = "loader"    // loader init and enumeration
	PhaseInstance  Phase = "instance"  // instance creation and queries
	PhaseSystem    Phase = "system"    // system and view configuration queries
	PhaseSession   Phase = "session"   // session lifecycle
	PhaseFrame     Phase = "frame"     // wait/begin/end frame
	PhaseSpace     Phase = "space"     // reference and action spaces
	PhaseSwapchain Phase = "swapchain" // swapchain creation and image protocol
	PhaseAction    Phase = "action"    // actions, paths and bindings
	PhaseExtension Phase = "extension" // dynamically resolved functions
	PhaseEvent     Phase = "event"     // event polling
	PhaseConfig    Phase = "config"    // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindRuntimeStatus       Kind = "runtime_status"
	KindProcUnavailable     Kind = "proc_unavailable"
	KindPartialConstruction Kind = "partial_construction"
	KindCallerDiscipline    Kind = "caller_discipline"
	KindContractViolation   Kind = "contract_violation"
	KindExtensionNotEnabled Kind = "extension_not_enabled"
	KindInvalidInput        Kind = "invalid_input"
	KindUnsupported         Kind = "unsupported"
	KindConfig              Kind = "config"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Function string
	Detail   string
	Result   abi.Result
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Function != "" {
		b.WriteString(": ")
		b.WriteString(e.Function)
		if e.Result != abi.Success {
			b.WriteString(" -> ")
			b.WriteString(e.Result.String())
		}
	} else if e.Result != abi.Success {
		b.WriteString(": ")
		b.WriteString(e.Result.String())
	}

	if e.Detail != "" {
		if e.Function != "" || e.Result != abi.Success {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty
// Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase == "" {
			return e.Kind == t.Kind
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Function sets the native function name
func (b *Builder) Function(name string) *Builder {
	b.err.Function = name
	return b
}

// Result sets the runtime status code
func (b *Builder) Result(r abi.Result) *Builder {
	b.err.Result = r
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Status wraps a non-success status returned by a native call.
func Status(phase Phase, function string, r abi.Result) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindRuntimeStatus,
		Function: function,
		Result:   r,
	}
}

// Check returns nil for Success and a Status error otherwise.
func Check(phase Phase, function string, r abi.Result) error {
	if r == abi.Success {
		return nil
	}
	return Status(phase, function, r)
}

// ProcUnavailable reports a function that could not be resolved by name.
// r is the status of the lookup; Success means the runtime returned a
// null function.
func ProcUnavailable(function string, r abi.Result) *Error {
	e := &Error{
		Phase:    PhaseExtension,
		Kind:     KindProcUnavailable,
		Function: function,
		Result:   r,
	}
	if r == abi.Success {
		e.Detail = "runtime returned a null function"
	}
	return e
}

// PartialConstruction reports an object that was created but whose
// follow-up setup call failed. The object is still returned to the caller.
func PartialConstruction(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindPartialConstruction,
		Detail: what,
		Cause:  cause,
	}
}

// CallerDiscipline reports misuse of the API detected by debug assertions.
func CallerDiscipline(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCallerDiscipline,
		Detail: detail,
	}
}

// ContractViolation reports runtime behaviour that breaks the OpenXR contract.
func ContractViolation(phase Phase, function, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindContractViolation,
		Function: function,
		Detail:   detail,
	}
}

// ExtensionNotEnabled reports use of an extension the instance was not created with.
func ExtensionNotEnabled(extension string) *Error {
	return &Error{
		Phase:  PhaseExtension,
		Kind:   KindExtensionNotEnabled,
		Detail: fmt.Sprintf("%s not enabled on this instance", extension),
		Value:  extension,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Config creates a configuration error
func Config(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindConfig,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ResultOf returns the runtime status carried by err. A nil error yields
// (Success, true); an error chain without a runtime status yields false.
func ResultOf(err error) (abi.Result, bool) {
	if err == nil {
		return abi.Success, true
	}
	for err != nil {
		var xe *Error
		if !stderrors.As(err, &xe) {
			return 0, false
		}
		if xe.Result != abi.Success {
			return xe.Result, true
		}
		err = xe.Cause
	}
	return 0, false
}

// IsResult reports whether err carries the status r.
func IsResult(err error, r abi.Result) bool {
	got, ok := ResultOf(err)
	return ok && got == r
}

// IsKind reports whether err or any error it wraps has the given kind.
func IsKind(err error, kind Kind) bool {
	return stderrors.Is(err, &Error{Kind: kind})
}

// MissingExtensionsError is returned when required extensions are not
// advertised by the runtime.
type MissingExtensionsError struct {
	Extensions []string
	Available  int
}

// NewMissingExtensionsError collects the names in required that are absent
// from available. It returns nil when nothing is missing.
func NewMissingExtensionsError(required, available []string) *MissingExtensionsError {
	have := make(map[string]struct{}, len(available))
	for _, name := range available {
		have[name] = struct{}{}
	}
	var missing []string
	for _, name := range required {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingExtensionsError{Extensions: missing, Available: len(available)}
}

func (e *MissingExtensionsError) Error() string {
	if len(e.Extensions) == 0 {
		return "[instance] extension_missing: no extensions specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("missing %d required extension(s) (runtime advertises %d):", len(e.Extensions), e.Available))
	for _, name := range e.Extensions {
		b.WriteString("\n  - ")
		b.WriteString(name)
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *MissingExtensionsError) Is(target error) bool {
	_, ok := target.(*MissingExtensionsError)
	return ok
}
