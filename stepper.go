package gridpath

import (
	"context"
	"log/slog"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current Cell
	// CurrentCost and CurrentEstimate are G and F of the cell finalized in this step.
	CurrentCost     float64
	CurrentEstimate float64
	Open            []Cell
	Closed          []Cell
	Done            bool
	Found           bool
	Path            []Cell
	TotalCost       float64
	StepIndex       int
}

// Stepper runs the same search as Search one expansion at a time.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	ctx       context.Context
	logger    *slog.Logger
	engine    *engine
	stepCount int
	done      bool
	found     bool
	path      []Cell
	totalCost float64
}

// NewStepper validates the endpoints and prepares a search. WithWorkers has
// no effect here. Once parent is cancelled the next Step ends the search with
// the context's error.
func NewStepper(parent context.Context, grid *Grid, source, target Cell, options ...Option) (*Stepper, error) {
	opts := applyOptions(options)
	e, err := newEngine(grid, source, target, opts.MaxExpansions)
	if err != nil {
		return nil, err
	}
	return &Stepper{ctx: parent, logger: opts.Logger, engine: e}, nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
// The error is ErrNoPathFound, ErrBudgetExceeded, ErrPathCorruption or the
// context's error on the step that ends the search that way.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(Cell{}, PriorityQueueItem{}), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.done = true
		s.logger.Debug("step search canceled", "steps", s.stepCount, "err", err)
		return s.snapshot(Cell{}, PriorityQueueItem{}), err
	}

	s.stepCount++
	item, outcome := s.engine.step()
	switch outcome {
	case stepExhausted:
		s.done = true
		s.logger.Debug("no path found",
			"source", s.engine.source, "target", s.engine.target, "steps", s.stepCount)
		return s.snapshot(Cell{}, PriorityQueueItem{}), ErrNoPathFound
	case stepBudget:
		s.done = true
		s.logger.Debug("expansion budget exceeded",
			"source", s.engine.source, "target", s.engine.target, "budget", s.engine.maxExpansions)
		return s.snapshot(Cell{}, PriorityQueueItem{}), ErrBudgetExceeded
	case stepFound:
		s.done = true
		path, err := s.engine.path()
		if err != nil {
			s.logger.Error("path reconstruction failed",
				"source", s.engine.source, "target", s.engine.target, "err", err)
			return s.snapshot(item.Cell, item), err
		}
		s.found = true
		s.path = path
		s.totalCost = item.GScore
		s.logger.Debug("path found",
			"source", s.engine.source, "target", s.engine.target,
			"cost", item.GScore, "length", len(path), "steps", s.stepCount)
	}
	return s.snapshot(item.Cell, item), nil
}

func (s *Stepper) snapshot(current Cell, item PriorityQueueItem) StepSnapshot {
	return StepSnapshot{
		Current:         current,
		CurrentCost:     item.GScore,
		CurrentEstimate: item.FCost,
		Open:            s.openCells(),
		Closed:          s.closedCells(),
		Done:            s.done,
		Found:           s.found,
		Path:            append([]Cell(nil), s.path...),
		TotalCost:       s.totalCost,
		StepIndex:       s.stepCount,
	}
}

// openCells lists discovered cells that are not finalized, once each,
// however many stale entries the frontier holds for them.
func (s *Stepper) openCells() []Cell {
	e := s.engine
	seen := make(map[Cell]bool, e.openSet.Len())
	var open []Cell
	for _, item := range e.openSet {
		if e.closed[e.grid.index(item.Cell)] || seen[item.Cell] {
			continue
		}
		seen[item.Cell] = true
		open = append(open, item.Cell)
	}
	return open
}

// closedCells lists finalized cells, leaving out walls.
func (s *Stepper) closedCells() []Cell {
	e := s.engine
	var closed []Cell
	for i, c := range e.closed {
		if c && !e.grid.blocked[i] {
			closed = append(closed, e.grid.cellAt(i))
		}
	}
	return closed
}
