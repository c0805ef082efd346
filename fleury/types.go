// types.go - sentinel errors, options and result types.

package fleury

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidVertexCount is returned by NewGraph when v <= 0.
	ErrInvalidVertexCount = errors.New("fleury: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex id outside 0..V-1.
	ErrVertexOutOfRange = errors.New("fleury: vertex out of range")

	// ErrSelfLoop indicates an attempt to add an edge u-u.
	ErrSelfLoop = errors.New("fleury: self-loop not allowed")

	// ErrTooManyOddVertices indicates more than two vertices of odd degree,
	// so no Eulerian trail exists.
	ErrTooManyOddVertices = errors.New("fleury: more than two odd-degree vertices")

	// ErrDisconnected indicates that the edges of the graph do not form a
	// single connected component.
	ErrDisconnected = errors.New("fleury: edges are not connected")

	// ErrInvalidTrail indicates that a sequence of steps is not an Eulerian
	// trail of the given graph.
	ErrInvalidTrail = errors.New("fleury: invalid trail")

	// ErrUnknownRestorePolicy is returned by ParseRestorePolicy.
	ErrUnknownRestorePolicy = errors.New("fleury: unknown restore policy")
)

// RestorePolicy selects how the bridge probe in IsValidNextEdge puts back
// the edge it temporarily removed.
type RestorePolicy int

const (
	// RestoreAppend re-adds the edge, appending fresh entries to the end of
	// both adjacency sequences. The original slots stay removed, so the
	// neighbor order of u and v changes after every probe.
	RestoreAppend RestorePolicy = iota

	// RestoreInPlace re-activates the original edge, leaving both adjacency
	// sequences exactly as they were.
	RestoreInPlace
)

// String returns the config spelling of the policy.
func (p RestorePolicy) String() string {
	switch p {
	case RestoreAppend:
		return "append"
	case RestoreInPlace:
		return "inplace"
	default:
		return "RestorePolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseRestorePolicy maps "append" or "inplace" to a RestorePolicy.
func ParseRestorePolicy(s string) (RestorePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "append":
		return RestoreAppend, nil
	case "inplace", "in-place":
		return RestoreInPlace, nil
	default:
		return RestoreAppend, fmt.Errorf("%w: %q", ErrUnknownRestorePolicy, s)
	}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithRestorePolicy sets the probe restore policy. Default is RestoreAppend.
func WithRestorePolicy(p RestorePolicy) GraphOption {
	return func(g *Graph) {
		g.restore = p
	}
}

// Option configures a single Tour run.
// Use with g.Tour(opts...).
type Option func(*TourOptions)

// TourOptions holds configurable parameters for Tour.
type TourOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per walk step.
	Ctx context.Context

	// Strict runs CheckEulerian before walking and returns its error instead
	// of producing a partial trail.
	Strict bool

	// OnStep, if non-nil, is invoked for every edge just before it is
	// consumed. Returning an error aborts the tour with that error; the
	// rejected step stays live and is not added to Result.Steps.
	OnStep func(s Step) error

	// OnDefer, if non-nil, is invoked whenever a live edge u-v is skipped
	// because it is currently a bridge.
	OnDefer func(u, v int)
}

// DefaultOptions returns TourOptions with:
//   - Background context
//   - Strict = false (no precondition check)
//   - no hooks
func DefaultOptions() TourOptions {
	return TourOptions{
		Ctx:     context.Background(),
		Strict:  false,
		OnStep:  nil,
		OnDefer: nil,
	}
}

// WithContext returns an Option that sets the Context for Tour.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *TourOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrict returns an Option that enables the precondition check.
func WithStrict() Option {
	return func(o *TourOptions) {
		o.Strict = true
	}
}

// WithOnStep returns an Option that installs fn as the per-step hook.
// Panics on nil.
func WithOnStep(fn func(s Step) error) Option {
	if fn == nil {
		panic("fleury: WithOnStep(nil)")
	}

	return func(o *TourOptions) {
		o.OnStep = fn
	}
}

// WithOnDefer returns an Option that installs fn as the deferred-bridge hook.
// Panics on nil.
func WithOnDefer(fn func(u, v int)) Option {
	if fn == nil {
		panic("fleury: WithOnDefer(nil)")
	}

	return func(o *TourOptions) {
		o.OnDefer = fn
	}
}

// Step is one traversed edge, directed in walk order.
type Step struct {
	From int
	To   int
}

// String renders the step as "u-v".
func (s Step) String() string {
	return strconv.Itoa(s.From) + "-" + strconv.Itoa(s.To)
}

// Result captures the outcome of a Tour.
type Result struct {
	// Start is the vertex the walk began at.
	Start int

	// Steps lists the consumed edges in walk order.
	Steps []Step

	// Deferred counts how many times a live edge was skipped as a bridge.
	Deferred int

	// Circuit reports a non-empty closed trail (ends where it started).
	Circuit bool

	// Complete reports that every edge live at the start was consumed.
	Complete bool
}

// End returns the vertex the walk finished at (Start for an empty trail).
func (r *Result) End() int {
	if len(r.Steps) == 0 {
		return r.Start
	}

	return r.Steps[len(r.Steps)-1].To
}

// String renders the trail as space-separated "u-v" tokens.
func (r *Result) String() string {
	return FormatTrail(r.Steps)
}
