package scenario

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kchristidis/duallist/duallist"
	"github.com/kchristidis/duallist/stats"
	"go.uber.org/zap"
)

// ExitMsg is written to the runner's writer when Run returns.
const ExitMsg = "runner • exited"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Recorder

// Recorder is an interface that encapsulates the stats
// collector calls that are relevant to the runner.
type Recorder interface {
	Record(s stats.Step)
}

type discard struct{}

func (discard) Record(stats.Step) {}

// Runner applies the steps of a scenario, in order, to a list of ints.
type Runner struct {
	Scenario *Scenario
	List     *duallist.List[int]
	Recorder Recorder

	RunID string
	// When set, the list's chains are verified after every step and a
	// violation aborts the run.
	CheckInvariants bool

	Logger *zap.Logger
	Writer io.Writer // Receives status lines and dumps.
}

// New returns a runner whose list is seeded with the scenario's initial
// values. A nil recorder drops the step stats and a nil logger is a no-op.
func New(sc *Scenario, recorder Recorder, logger *zap.Logger, writer io.Writer, runID string) *Runner {
	if recorder == nil {
		recorder = discard{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Scenario:        sc,
		List:            duallist.Of(sc.Initial...),
		Recorder:        recorder,
		RunID:           runID,
		CheckInvariants: true,
		Logger:          logger.With(zap.String("run", runID), zap.String("scenario", sc.Name)),
		Writer:          writer,
	}
}

// Run executes every step. Errors returned by the list are recorded and the
// run continues; a broken invariant or a cancelled context ends the run.
func (r *Runner) Run(ctx context.Context) error {
	defer fmt.Fprintln(r.Writer, ExitMsg)

	fmt.Fprintf(r.Writer, "runner • %s: %d steps\n", r.Scenario.Name, len(r.Scenario.Steps))

	for i, step := range r.Scenario.Steps {
		if err := ctx.Err(); err != nil {
			r.Logger.Warn("run cancelled", zap.Int("step", i), zap.Error(err))
			return err
		}

		start := time.Now()
		err := r.apply(step)
		elapsed := time.Since(start)

		rec := stats.Step{
			RunID:    r.RunID,
			Index:    i,
			Op:       step.Op,
			Size:     r.List.Len(),
			Duration: elapsed,
		}
		if err != nil {
			rec.Err = err.Error()
			r.Logger.Warn("step failed", zap.Int("step", i), zap.String("op", step.Op), zap.Error(err))
			fmt.Fprintf(r.Writer, "runner • step %d (%s) failed: %s\n", i, step.Op, err)
		} else {
			r.Logger.Debug("step applied", zap.Int("step", i), zap.String("op", step.Op), zap.Int("size", rec.Size), zap.Duration("elapsed", elapsed))
		}
		r.Recorder.Record(rec)

		if r.CheckInvariants {
			if cerr := r.List.Check(); cerr != nil {
				r.Logger.Error("invariant violated", zap.Int("step", i), zap.String("op", step.Op), zap.Error(cerr))
				return fmt.Errorf("step %d (%s): %w", i, step.Op, cerr)
			}
		}

		if step.Dump || step.Op == OpDump {
			if err := r.dump(i); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) apply(s Step) error {
	l := r.List
	var err error
	switch s.Op {
	case OpPushBack:
		l.PushBack(s.Value)
	case OpPushFront:
		l.PushFront(s.Value)
	case OpInsert:
		err = l.Insert(s.Value, s.Pos)
	case OpInsertN:
		err = l.InsertN(s.Value, s.Pos, s.Count)
	case OpErase:
		err = l.Erase(s.Pos)
	case OpEraseN:
		err = l.EraseN(s.Pos, s.Count)
	case OpPopBack:
		_, err = l.PopBack()
	case OpPopFront:
		_, err = l.PopFront()
	case OpClear:
		l.Clear()
	case OpAssign:
		err = l.Assign(s.Value, s.Count)
	case OpAssignValues:
		l.AssignValues(s.Values...)
	case OpResize:
		err = l.Resize(s.Count)
	case OpEmplaceFront:
		err = l.EmplaceFront(s.Count)
	case OpRemove:
		_, err = l.Remove(s.Value)
	case OpRemoveGreater:
		_, err = l.RemoveIf(func(v int) bool { return v > s.Value })
	case OpSplice:
		err = l.Splice(s.Pos, duallist.Of(s.Values...))
	case OpMerge:
		l.Merge(duallist.Of(s.Values...))
	case OpReverse:
		l.Reverse()
	case OpUnique:
		l.Unique()
	case OpSort:
		l.Sort()
	case OpDump:
	default:
		err = fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
	}
	return err
}

func (r *Runner) dump(i int) error {
	fmt.Fprintf(r.Writer, "runner • step %d dump (size %d)\n", i, r.List.Len())
	dumps := []struct {
		label string
		print func(io.Writer) error
	}{
		{"next", r.List.PrintNext},
		{"prev", r.List.PrintPrev},
		{"asc", r.List.PrintAsc},
		{"desc", r.List.PrintDesc},
	}
	for _, d := range dumps {
		fmt.Fprintf(r.Writer, "%s: ", d.label)
		if err := d.print(r.Writer); err != nil {
			return err
		}
	}
	return nil
}
