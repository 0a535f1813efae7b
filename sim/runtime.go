package sim

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/resource"
)

// SystemID is the id of the single simulated system.
const SystemID abi.SystemID = 0x5157

// startTime is the simulated clock at creation. Runtime time is always
// positive.
const startTime abi.Time = 1_000_000_000

// Runtime is a simulated OpenXR runtime. It is safe for concurrent use.
type Runtime struct {
	profile  *Profile
	table    *resource.UnifiedTable
	counter  *resource.Counter
	calls    map[string]int
	failures map[string]abi.Result
	input    map[string]input
	haptics  []HapticEvent

	// Extension functions: injected lookup failures and names that
	// resolve to a null address.
	missingProcs map[string]abi.Result
	nullProcs    map[string]bool

	loaderInitResult  abi.Result
	loaderInitialized bool
	holdImages        bool
	clock             abi.Time

	mu sync.Mutex
}

var _ abi.Runtime = (*Runtime)(nil)

// Option configures a Runtime.
type Option func(*Runtime)

// WithProfile replaces DefaultProfile. The profile must be valid.
func WithProfile(p *Profile) Option {
	return func(r *Runtime) {
		r.profile = p
	}
}

// WithFailure makes every call to function return res until
// ClearFailure is called.
func WithFailure(function string, res abi.Result) Option {
	return func(r *Runtime) {
		r.failures[function] = res
	}
}

// WithHoldImages makes xrWaitSwapchainImage time out, as if the
// compositor never released the image.
func WithHoldImages() Option {
	return func(r *Runtime) {
		r.holdImages = true
	}
}

// WithLoaderInitResult sets the status returned by xrInitializeLoaderKHR.
func WithLoaderInitResult(res abi.Result) Option {
	return func(r *Runtime) {
		r.loaderInitResult = res
	}
}

// WithMissingProc makes xrGetInstanceProcAddr fail for name with res.
func WithMissingProc(name string, res abi.Result) Option {
	return func(r *Runtime) {
		r.missingProcs[name] = res
	}
}

// WithNullProc makes xrGetInstanceProcAddr succeed for name but return a
// null address.
func WithNullProc(name string) Option {
	return func(r *Runtime) {
		r.nullProcs[name] = true
	}
}

// New creates a simulated runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		profile:      DefaultProfile(),
		table:        resource.NewTable(),
		counter:      resource.NewCounter(),
		calls:        make(map[string]int),
		failures:     make(map[string]abi.Result),
		input:        make(map[string]input),
		missingProcs: make(map[string]abi.Result),
		nullProcs:    make(map[string]bool),
		clock:        startTime,
	}
	r.table.Subscribe(r.counter)
	r.table.Subscribe(dropLogger{})
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the profile the runtime simulates.
func (r *Runtime) Profile() *Profile {
	return r.profile
}

// SetFailure injects a failure for function, like WithFailure.
func (r *Runtime) SetFailure(function string, res abi.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[function] = res
}

// ClearFailure removes an injected failure.
func (r *Runtime) ClearFailure(function string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.failures, function)
}

// SetHoldImages toggles WithHoldImages.
func (r *Runtime) SetHoldImages(hold bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holdImages = hold
}

// Calls returns how many times function was invoked, including calls
// that failed.
func (r *Runtime) Calls(function string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[function]
}

// Application returns the application and engine names an instance was
// created with, as decoded from the create info.
func (r *Runtime) Application(h abi.Instance) (name, engine string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.instance(h)
	if !ok {
		return "", "", false
	}
	return in.appName, in.engineName, true
}

// EnabledExtensions returns the extension names an instance was created
// with, in the order received.
func (r *Runtime) EnabledExtensions(h abi.Instance) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if in, ok := r.instance(h); ok {
		return slices.Clone(in.enabledNames)
	}
	return nil
}

// Created returns how many objects of kind were created.
func (r *Runtime) Created(kind resource.Kind) int {
	return r.counter.Created(kind)
}

// Destroyed returns how many objects of kind were destroyed, directly or
// together with their parent.
func (r *Runtime) Destroyed(kind resource.Kind) int {
	return r.counter.Dropped(kind)
}

// Live returns the number of live objects of kind.
func (r *Runtime) Live(kind resource.Kind) int {
	return r.counter.Live(kind)
}

// Now returns the simulated clock.
func (r *Runtime) Now() abi.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock
}

// Close destroys every object. Handles issued before Close stay invalid.
func (r *Runtime) Close() error {
	return r.table.Close()
}

// enter records a call and returns the injected failure for it, or
// Success. Callers hold r.mu.
func (r *Runtime) enter(function string) abi.Result {
	r.calls[function]++
	if res, ok := r.failures[function]; ok {
		Logger().Debug("injected failure",
			zap.String("function", function),
			zap.Stringer("result", res))
		return res
	}
	return abi.Success
}

// insert issues a handle for value. It fails only after Close.
func (r *Runtime) insert(kind resource.Kind, parent uint64, value any) (uint64, abi.Result) {
	h := r.table.Insert(kind, resource.Handle(parent), value)
	if h == 0 {
		return 0, abi.ErrorRuntimeFailure
	}
	Logger().Debug("created",
		zap.Stringer("kind", kind),
		zap.Uint64("handle", uint64(h)))
	return uint64(h), abi.Success
}

func (r *Runtime) remove(kind resource.Kind, h uint64) abi.Result {
	if _, ok := r.table.GetKind(resource.Handle(h), kind); !ok {
		return abi.ErrorHandleInvalid
	}
	r.table.Remove(resource.Handle(h))
	return abi.Success
}

// children returns the live values of kind owned by parent.
func children[T any](r *Runtime, parent uint64, kind resource.Kind) []T {
	var out []T
	for _, h := range r.table.Children(resource.Handle(parent)) {
		if v, ok := r.table.GetKind(h, kind); ok {
			out = append(out, v.(T))
		}
	}
	return out
}

func lookup[T any](r *Runtime, h uint64, kind resource.Kind) (T, bool) {
	v, ok := r.table.GetKind(resource.Handle(h), kind)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

type dropLogger struct{}

func (dropLogger) OnResourceEvent(e resource.Event) {
	if e.Type == resource.EventDropped {
		Logger().Debug("destroyed",
			zap.Stringer("kind", e.Kind),
			zap.Uint64("handle", uint64(e.Handle)))
	}
}

// fill implements the runtime side of the two-call protocol for records
// without a Type field.
func fill[T any](capacity uint32, count *uint32, buf []T, src []T) abi.Result {
	if count == nil {
		return abi.ErrorValidationFailure
	}
	*count = uint32(len(src))
	if capacity == 0 {
		return abi.Success
	}
	if capacity < uint32(len(src)) {
		return abi.ErrorSizeInsufficient
	}
	if uint32(len(buf)) < capacity {
		return abi.ErrorValidationFailure
	}
	copy(buf, src)
	return abi.Success
}

// fillTyped is fill for records whose Type the caller must set first.
func fillTyped[T any](capacity uint32, count *uint32, buf []T, src []T, want abi.StructureType, typeOf func(*T) abi.StructureType) abi.Result {
	if capacity != 0 && capacity >= uint32(len(src)) && uint32(len(buf)) >= uint32(len(src)) {
		for i := range src {
			if typeOf(&buf[i]) != want {
				return abi.ErrorValidationFailure
			}
		}
	}
	return fill(capacity, count, buf, src)
}
