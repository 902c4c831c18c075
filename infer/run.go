package infer

import (
	"fmt"

	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/matrix"
)

// DefaultIterations is the number of infer sweeps per run (or per epoch).
const DefaultIterations = 100

// Option configures Run and RunEM via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// run starts.
type Option func(*Options)

// Options holds the loop sizes and callbacks of a run.
type Options struct {
	// Iterations is the number of infer sweeps (K) per run or per epoch.
	Iterations int

	// Epochs is the number of outer iterations (M) of RunEM. Run ignores it.
	Epochs int

	// Reset, if set, runs at the start of every RunEM epoch, typically to
	// restore free variables to an initial guess. An error aborts the run.
	Reset func() error

	// OnInfer is called after every infer sweep. If it returns an error,
	// the run aborts and propagates that error.
	OnInfer func(epoch, iteration int) error

	// OnLearn is called after every learn sweep of RunEM.
	OnLearn func(epoch int) error

	// TraceEnergy records the energy after every sweep in Report.Trace.
	TraceEnergy bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Iterations = DefaultIterations
//   - Epochs = 1
//   - no reset
//   - no-op hooks
//   - no energy trace.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Epochs:     1,
		OnInfer:    func(int, int) error { return nil },
		OnLearn:    func(int) error { return nil },
	}
}

// WithIterations sets K.
//
//	k >= 0: run k sweeps (0 runs none)
//	k < 0: invalid option → ErrOptionViolation
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Iterations cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Iterations = k
	}
}

// WithEpochs sets M for RunEM; negative values → ErrOptionViolation.
func WithEpochs(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: Epochs cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.Epochs = m
	}
}

// WithReset registers the per-epoch reset hook.
func WithReset(fn func() error) Option {
	return func(o *Options) { o.Reset = fn }
}

// WithOnInfer registers a callback to run after each infer sweep.
func WithOnInfer(fn func(epoch, iteration int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInfer = fn
		}
	}
}

// WithOnLearn registers a callback to run after each learn sweep.
func WithOnLearn(fn func(epoch int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLearn = fn
		}
	}
}

// WithEnergyTrace enables Report.Trace.
func WithEnergyTrace() Option {
	return func(o *Options) { o.TraceEnergy = true }
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Report summarizes a run. On error it describes the work completed before
// the failure.
type Report struct {
	// Sweeps is the number of completed infer sweeps.
	Sweeps int

	// Learns is the number of completed learn sweeps.
	Learns int

	// Trace holds the energy after each sweep when WithEnergyTrace is set.
	Trace []float64

	// Energy is the energy at the end of the run.
	Energy float64
}

// Run performs Options.Iterations infer sweeps over g.
func Run[N Node, E Function](g *graph.Graph[N, E], opts ...Option) (Report, error) {
	var rep Report
	o, err := gatherOptions(opts)
	if err != nil {
		return rep, fmt.Errorf("Run: %w", err)
	}
	if err = inferLoop(g, &o, 0, &rep); err != nil {
		return rep, fmt.Errorf("Run: %w", err)
	}
	if rep.Energy, err = Energy(g); err != nil {
		return rep, fmt.Errorf("Run: %w", err)
	}

	return rep, nil
}

// RunEM performs Options.Epochs epochs of: Reset (if set), Options.Iterations
// infer sweeps, then one learn sweep.
func RunEM[N Node, E Function](g *graph.Graph[N, E], opts ...Option) (Report, error) {
	var rep Report
	o, err := gatherOptions(opts)
	if err != nil {
		return rep, fmt.Errorf("RunEM: %w", err)
	}
	for epoch := 0; epoch < o.Epochs; epoch++ {
		if o.Reset != nil {
			if err = o.Reset(); err != nil {
				return rep, fmt.Errorf("RunEM: epoch %d: reset: %w", epoch, err)
			}
		}
		if err = inferLoop(g, &o, epoch, &rep); err != nil {
			return rep, fmt.Errorf("RunEM: epoch %d: %w", epoch, err)
		}
		if err = Learn(g); err != nil {
			return rep, fmt.Errorf("RunEM: epoch %d: %w", epoch, err)
		}
		rep.Learns++
		if err = trace(g, &o, &rep); err != nil {
			return rep, fmt.Errorf("RunEM: epoch %d: %w", epoch, err)
		}
		if err = o.OnLearn(epoch); err != nil {
			return rep, fmt.Errorf("RunEM: epoch %d: %w", epoch, err)
		}
	}
	if rep.Energy, err = Energy(g); err != nil {
		return rep, fmt.Errorf("RunEM: %w", err)
	}

	return rep, nil
}

func inferLoop[N Node, E Function](g *graph.Graph[N, E], o *Options, epoch int, rep *Report) error {
	for it := 0; it < o.Iterations; it++ {
		if err := Infer(g); err != nil {
			return fmt.Errorf("iteration %d: %w", it, err)
		}
		rep.Sweeps++
		if err := trace(g, o, rep); err != nil {
			return err
		}
		if err := o.OnInfer(epoch, it); err != nil {
			return fmt.Errorf("iteration %d: %w", it, err)
		}
	}

	return nil
}

func trace[N Node, E Function](g *graph.Graph[N, E], o *Options, rep *Report) error {
	if !o.TraceEnergy {
		return nil
	}
	en, err := Energy(g)
	if err != nil {
		return err
	}
	rep.Trace = append(rep.Trace, en)

	return nil
}

// Resettable is a Node whose value can be restored.
type Resettable interface {
	Node
	Fixed() bool
	Set(data *matrix.Dense) error
}

// Snapshot holds copies of the free node values of a graph.
type Snapshot struct {
	values map[int]*matrix.Dense
}

// Len is the number of captured nodes.
func (s Snapshot) Len() int { return len(s.values) }

// Capture records the current value of every free node of g.
func Capture[N Resettable, E Function](g *graph.Graph[N, E]) (Snapshot, error) {
	if g == nil {
		return Snapshot{}, fmt.Errorf("Capture: %w", ErrNilGraph)
	}
	s := Snapshot{values: make(map[int]*matrix.Dense)}
	for i, n := range g.Nodes() {
		if !n.Fixed() {
			s.values[i] = n.Value()
		}
	}

	return s, nil
}

// ResetTo returns a reset hook for WithReset that restores the nodes
// captured in s. Nodes fixed after the capture are restored as well.
func ResetTo[N Resettable, E Function](g *graph.Graph[N, E], s Snapshot) func() error {
	return func() error {
		if g == nil {
			return ErrNilGraph
		}
		for i, v := range s.values {
			n, err := g.Node(i)
			if err != nil {
				return fmt.Errorf("ResetTo: %w", err)
			}
			if err = n.Set(v); err != nil {
				return fmt.Errorf("ResetTo: node %d: %w", i, err)
			}
		}

		return nil
	}
}
