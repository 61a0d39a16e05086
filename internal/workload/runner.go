package workload

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/logarray/internal/config"
	"github.com/dshills/logarray/internal/engine/logarray"
	"github.com/dshills/logarray/internal/engine/sliceutil"
	"github.com/dshills/logarray/internal/logging"
)

// Result summarizes a run.
type Result struct {
	RunID      string
	Seed       int64
	Operations int
	Counts     map[Op]int
	Checks     int
	Duration   time.Duration
	Stats      logarray.Stats
	Metrics    MetricsSnapshot

	ArrayFingerprint uint64
	ModelFingerprint uint64
}

// OpsPerSecond returns the operation throughput of the run.
func (r Result) OpsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Operations) / r.Duration.Seconds()
}

// Runner executes one randomized workload. A Runner is not safe for
// concurrent use and runs at most once.
type Runner struct {
	id      string
	cfg     config.WorkloadConfig
	log     *logging.Logger
	rng     *rand.Rand
	seed    int64
	arr     *logarray.Array[int64]
	model   []int64
	metrics *Metrics

	ops    []Op
	starts []int // cumulative weight preceding each op
	total  int

	next  int64
	steps int
}

// New prepares a runner for cfg. The array is preloaded with
// cfg.Workload.InitialSize sequential values. A nil logger discards output.
func New(cfg config.Config, log *logging.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Null()
	}

	seed := cfg.Workload.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	initial := make([]int64, cfg.Workload.InitialSize)
	for i := range initial {
		initial[i] = int64(i)
	}
	arr, err := logarray.From(initial, logarray.WithChunkSize(cfg.Array.ChunkSize))
	if err != nil {
		return nil, fmt.Errorf("creating array: %w", err)
	}

	id := uuid.New().String()
	r := &Runner{
		id:      id,
		cfg:     cfg.Workload,
		log:     log.WithComponent("workload").WithField("run", id),
		rng:     rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		seed:    seed,
		arr:     arr,
		model:   initial,
		metrics: NewMetrics(),
		next:    int64(len(initial)),
	}

	for _, op := range Ops() {
		w := weight(cfg.Workload.Mix, op)
		r.ops = append(r.ops, op)
		r.starts = append(r.starts, r.total)
		r.total += w
	}
	return r, nil
}

// ID returns the run identifier attached to log lines and the result.
func (r *Runner) ID() string {
	return r.id
}

// Seed returns the effective seed.
func (r *Runner) Seed() int64 {
	return r.seed
}

// Metrics returns the runner's latency metrics.
func (r *Runner) Metrics() *Metrics {
	return r.metrics
}

// Array returns the array under test.
func (r *Runner) Array() *logarray.Array[int64] {
	return r.arr
}

// Run issues the configured number of operations. It stops early when ctx
// is done, returning ctx.Err(), or at the first divergence, returning a
// *DivergenceError. The result reflects the operations completed so far.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:  r.id,
		Seed:   r.seed,
		Counts: make(map[Op]int, len(r.ops)),
	}
	finish := func(err error) (Result, error) {
		res.Duration = time.Since(start)
		res.Stats = r.arr.Stats()
		res.Metrics = r.metrics.Snapshot()
		res.ArrayFingerprint = Fingerprint(r.arr.Values())
		res.ModelFingerprint = Fingerprint(slices.Values(r.model))
		return res, err
	}

	r.log.Info("starting run: operations=%d initial=%d chunk=%d seed=%d",
		r.cfg.Operations, r.arr.Len(), r.arr.ChunkSize(), r.seed)

	for r.steps < r.cfg.Operations {
		if err := ctx.Err(); err != nil {
			r.log.Warn("run cancelled after %d operations", r.steps)
			return finish(err)
		}

		op := r.pick()
		opStart := time.Now()
		err := r.apply(op)
		r.metrics.RecordOp(op, time.Since(opStart))
		if err != nil {
			r.log.Error("%v", err)
			return finish(err)
		}
		res.Counts[op]++
		r.steps++
		res.Operations = r.steps

		if r.cfg.CheckEvery > 0 && r.steps%r.cfg.CheckEvery == 0 {
			if err := r.timedVerify(); err != nil {
				r.log.Error("%v", err)
				return finish(err)
			}
			res.Checks++
			if r.log.Enabled(logging.LevelDebug) {
				r.log.Debug("checkpoint %d: len=%d height=%d", r.steps, r.arr.Len(), r.arr.Stats().Height)
			}
		}
	}

	if err := r.timedVerify(); err != nil {
		r.log.Error("%v", err)
		return finish(err)
	}
	res.Checks++

	res, err := finish(nil)
	r.log.Info("run complete: operations=%d len=%d height=%d elapsed=%s",
		res.Operations, res.Stats.Len, res.Stats.Height, res.Duration.Round(time.Millisecond))
	return res, err
}

// pick draws an operation according to the configured weights.
func (r *Runner) pick() Op {
	x := r.rng.IntN(r.total)
	i := sliceutil.FindLastIndex(r.starts, func(start, _ int, _ []int) bool {
		return start <= x
	})
	return r.ops[i]
}

func (r *Runner) value() int64 {
	v := r.next
	r.next++
	return v
}

// apply performs op on both the array and the model and compares the
// outcomes. Indexes one past the end are drawn on purpose for operations
// that must reject them.
func (r *Runner) apply(op Op) error {
	n := len(r.model)
	diverged := func(index int, format string, args ...any) error {
		return &DivergenceError{Step: r.steps, Op: op, Index: index, Detail: fmt.Sprintf(format, args...)}
	}

	switch op {
	case OpInsert:
		i, v := r.rng.IntN(n+1), r.value()
		if err := r.arr.Insert(i, v); err != nil {
			return diverged(i, "unexpected error: %v", err)
		}
		r.model = slices.Insert(r.model, i, v)

	case OpRemove:
		i := r.rng.IntN(n + 1)
		got, err := r.arr.Remove(i)
		if i == n {
			if !errors.Is(err, logarray.ErrOutOfRange) {
				return diverged(i, "expected out of range error, got %v", err)
			}
			break
		}
		if err != nil {
			return diverged(i, "unexpected error: %v", err)
		}
		if want := r.model[i]; got != want {
			return diverged(i, "removed %d, want %d", got, want)
		}
		r.model = slices.Delete(r.model, i, i+1)

	case OpDelete:
		i := r.rng.IntN(n + 1)
		ok := r.arr.Delete(i)
		if ok != (i < n) {
			return diverged(i, "delete reported %v with length %d", ok, n)
		}
		if ok {
			r.model = slices.Delete(r.model, i, i+1)
		}

	case OpGet:
		i := r.rng.IntN(n + 1)
		got, err := r.arr.Get(i)
		if i == n {
			if !errors.Is(err, logarray.ErrOutOfRange) {
				return diverged(i, "expected out of range error, got %v", err)
			}
			break
		}
		if err != nil {
			return diverged(i, "unexpected error: %v", err)
		}
		if want := r.model[i]; got != want {
			return diverged(i, "got %d, want %d", got, want)
		}

	case OpSet:
		if n == 0 {
			break
		}
		i, v := r.rng.IntN(n), r.value()
		if err := r.arr.Set(i, v); err != nil {
			return diverged(i, "unexpected error: %v", err)
		}
		r.model[i] = v

	case OpPush:
		v := r.value()
		r.model = append(r.model, v)
		if got := r.arr.Push(v); got != 1 {
			return diverged(n, "push reported %d values added, want 1", got)
		}

	case OpPop:
		got, ok := r.arr.Pop()
		prefix, want, wantOK := sliceutil.Tail(r.model)
		if ok != wantOK || got != want {
			return diverged(n-1, "pop returned (%d, %v), want (%d, %v)", got, ok, want, wantOK)
		}
		r.model = prefix

	case OpShift:
		got, ok := r.arr.Shift()
		if ok != (n > 0) {
			return diverged(0, "shift reported %v with length %d", ok, n)
		}
		if ok {
			if want := r.model[0]; got != want {
				return diverged(0, "shifted %d, want %d", got, want)
			}
			r.model = slices.Delete(r.model, 0, 1)
		}

	case OpUnshift:
		v := r.value()
		r.model = slices.Insert(r.model, 0, v)
		if got := r.arr.Unshift(v); got != 1 {
			return diverged(0, "unshift reported %d values added, want 1", got)
		}
	}

	if r.arr.Len() != len(r.model) {
		return diverged(-1, "length %d, model length %d", r.arr.Len(), len(r.model))
	}
	return nil
}

func (r *Runner) timedVerify() error {
	start := time.Now()
	err := r.verify()
	r.metrics.RecordCheck(time.Since(start))
	return err
}

// verify checks the tree invariants and compares the full contents with
// the model.
func (r *Runner) verify() error {
	if err := r.arr.Check(); err != nil {
		return fmt.Errorf("after %d operations: %w", r.steps, err)
	}
	if Fingerprint(r.arr.Values()) == Fingerprint(slices.Values(r.model)) {
		return nil
	}

	got := r.arr.ToSlice()
	i := 0
	for i < len(got) && i < len(r.model) && got[i] == r.model[i] {
		i++
	}
	return &DivergenceError{
		Step:   -1,
		Index:  i,
		Detail: fmt.Sprintf("contents differ from index %d after %d operations", i, r.steps),
	}
}
