package eval

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/cellstore"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
	"github.com/specialistvlad/gridsheet/internal/formula"
)

// Evaluator computes display values over a cell store. It never writes to
// the store and keeps no state between calls.
type Evaluator struct {
	store  cellstore.Store
	policy CyclePolicy
}

// New creates an evaluator reading from store.
func New(store cellstore.Store, policy CyclePolicy) *Evaluator {
	return &Evaluator{store: store, policy: policy}
}

// Policy returns the evaluator's cycle policy.
func (e *Evaluator) Policy() CyclePolicy {
	return e.policy
}

// Value computes the display value of the cell at coord:
//   - empty cell: Empty
//   - literal: its text, uncoerced
//   - formula: the sum of its references
//
// Value always returns a displayable result.
func (e *Evaluator) Value(ctx context.Context, coord cellid.Coord) Value {
	return e.newRun(ctx, make(map[cellid.Coord]Value)).value(coord)
}

// NewFrame starts a memoized render pass bound to the current store version.
func (e *Evaluator) NewFrame() *Frame {
	return &Frame{
		eval:    e,
		version: e.store.Version(),
		memo:    make(map[cellid.Coord]Value),
	}
}

// run is the state of one top-level evaluation.
type run struct {
	eval       *Evaluator
	ctx        context.Context
	logger     *slog.Logger
	inProgress map[cellid.Coord]struct{}
	memo       map[cellid.Coord]Value
}

func (e *Evaluator) newRun(ctx context.Context, memo map[cellid.Coord]Value) *run {
	return &run{
		eval:       e,
		ctx:        ctx,
		logger:     ctxlog.FromContext(ctx),
		inProgress: make(map[cellid.Coord]struct{}),
		memo:       memo,
	}
}

func (r *run) value(coord cellid.Coord) Value {
	content, ok := r.eval.store.Read(r.ctx, coord)
	if !ok {
		return Empty()
	}
	if !content.IsFormula() {
		return Text(content.Raw)
	}
	v, _ := r.formula(coord, content.Raw)
	return v
}

// formula evaluates one formula cell. The flag reports whether the
// evaluation met a reference that was already in progress, anywhere below
// coord.
//
// Under CycleAsError every such result is CycleError wherever the cycle was
// entered, so all results are memoized. Under CycleAsZero a sum that met a
// cycle depends on the entry point and is not recorded; everything else is.
func (r *run) formula(coord cellid.Coord, raw string) (Value, bool) {
	if r.memo != nil {
		if v, ok := r.memo[coord]; ok {
			return v, false
		}
	}

	r.inProgress[coord] = struct{}{}
	result, cyclic := r.sum(coord, raw)
	delete(r.inProgress, coord)

	if r.memo != nil && (!cyclic || r.eval.policy == CycleAsError) {
		r.memo[coord] = result
	}
	return result, cyclic
}

func (r *run) sum(coord cellid.Coord, raw string) (Value, bool) {
	total := 0.0
	cyclic := false
	var failure *Value

	for _, ref := range formula.ParseReferences(raw) {
		refCoord, err := cellid.Parse(ref)
		if err != nil {
			r.logger.Debug("Skipping malformed reference.", "cell", coord.String(), "ref", ref)
			continue
		}

		content, ok := r.eval.store.Read(r.ctx, refCoord)
		if !ok {
			continue
		}
		if !content.IsFormula() {
			total += LeadingFloat(content.Raw)
			continue
		}

		if _, busy := r.inProgress[refCoord]; busy {
			r.logger.Debug("Circular reference detected.", "cell", coord.String(), "ref", refCoord.String(), "policy", r.eval.policy.String())
			cyclic = true
			if r.eval.policy == CycleAsError {
				v := Error(CycleError)
				failure = &v
			}
			continue
		}

		v, sub := r.formula(refCoord, content.Raw)
		cyclic = cyclic || sub
		if v.IsError() {
			failure = &v
			continue
		}
		total += v.Numeric()
	}

	if failure != nil {
		return *failure, cyclic
	}
	return Number(total), cyclic
}

// Frame memoizes evaluations for a single render pass. It is not safe for
// concurrent use.
type Frame struct {
	eval    *Evaluator
	version uint64
	memo    map[cellid.Coord]Value
}

// Value returns the display value of coord, reusing results computed earlier
// in the same frame. If the store changed since the frame was created the
// memo is discarded first.
func (f *Frame) Value(ctx context.Context, coord cellid.Coord) Value {
	if v := f.eval.store.Version(); v != f.version {
		ctxlog.FromContext(ctx).Debug("Store changed, dropping frame memo.", "old_version", f.version, "new_version", v, "memoized", len(f.memo))
		f.version = v
		clear(f.memo)
	}
	return f.eval.newRun(ctx, f.memo).value(coord)
}

// Len returns the number of memoized formula results. Under CycleAsZero,
// results that met a circular reference are not counted.
func (f *Frame) Len() int {
	return len(f.memo)
}
