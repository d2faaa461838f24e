package gridpath

import (
	"container/heap"
	"context"
	"log/slog"
	"math"
	"runtime"
)

// Result contains the outcome of a search.
// Path runs from the target back to the source.
type Result struct {
	Path          []Cell
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxExpansions   int
	Logger          *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers sets how many searches SearchAll runs at once. Search itself
// is always single-threaded.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops a search with ErrBudgetExceeded once it would
// finalize more than n cells. Zero or less means no limit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger routes per-search debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

type stepOutcome int

const (
	stepExpanded stepOutcome = iota
	stepFound
	stepExhausted
	stepBudget
)

// engine owns every table of one search. Nothing in it is shared.
type engine struct {
	grid      *Grid
	source    Cell
	target    Cell
	heuristic HeuristicTable

	bestG    []float64
	closed   []bool
	relation []int
	openSet  PriorityQueue

	maxExpansions int
	expanded      int
	neighborBuf   []Cell
}

func newEngine(grid *Grid, source, target Cell, maxExpansions int) (*engine, error) {
	if grid == nil {
		return nil, configErrorf("grid", "nil")
	}
	if err := grid.validateEndpoint("source", source); err != nil {
		return nil, err
	}
	if err := grid.validateEndpoint("target", target); err != nil {
		return nil, err
	}

	size := grid.width * grid.height
	e := &engine{
		grid:          grid,
		source:        source,
		target:        target,
		heuristic:     BuildHeuristic(grid.width, grid.height, target),
		bestG:         make([]float64, size),
		closed:        make([]bool, size),
		relation:      make([]int, size),
		openSet:       make(PriorityQueue, 0, size),
		maxExpansions: maxExpansions,
		neighborBuf:   make([]Cell, 0, len(directions)),
	}
	for i := range size {
		e.bestG[i] = math.Inf(1)
		e.relation[i] = -1
		// walls are finalized before the first pop
		e.closed[i] = grid.blocked[i]
	}

	e.bestG[grid.index(source)] = 0
	heap.Push(&e.openSet, PriorityQueueItem{
		Cell:   source,
		GScore: 0,
		FCost:  e.heuristic.At(source),
	})
	return e, nil
}

// step pops frontier entries until it finds one that is not stale, then
// either reports the target or finalizes the cell and relaxes its neighbors.
func (e *engine) step() (PriorityQueueItem, stepOutcome) {
	for e.openSet.Len() > 0 {
		currentItem := heap.Pop(&e.openSet).(PriorityQueueItem)
		current := currentItem.Cell
		currentIndex := e.grid.index(current)

		// Skip stale entries for cells that were already finalized.
		if e.closed[currentIndex] {
			continue
		}
		if e.maxExpansions > 0 && e.expanded >= e.maxExpansions {
			return currentItem, stepBudget
		}
		e.expanded++

		if current == e.target {
			return currentItem, stepFound
		}
		e.closed[currentIndex] = true

		e.neighborBuf = neighbors(e.grid, e.closed, current, e.neighborBuf)
		for _, next := range e.neighborBuf {
			nextIndex := e.grid.index(next)
			tentativeG := currentItem.GScore + StepCost(current, next)
			if tentativeG < e.bestG[nextIndex] {
				e.bestG[nextIndex] = tentativeG
				e.relation[nextIndex] = currentIndex
				heap.Push(&e.openSet, PriorityQueueItem{
					Cell:   next,
					GScore: tentativeG,
					FCost:  tentativeG + e.heuristic.At(next),
				})
			}
		}
		return currentItem, stepExpanded
	}
	return PriorityQueueItem{}, stepExhausted
}

func (e *engine) path() ([]Cell, error) {
	return reconstructPath(e.grid, e.relation, e.source, e.target)
}

// Search runs A* from source to target on grid.
//
// It returns ErrNoPathFound with Found == false when the target cannot be
// reached, and a *ConfigurationError when source or target is off the grid
// or on a wall. Context cancellation is checked before every expansion.
func Search(
	contextObject context.Context,
	grid *Grid,
	source Cell,
	target Cell,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	e, err := newEngine(grid, source, target, searchOptions.MaxExpansions)
	if err != nil {
		return Result{}, err
	}

	for {
		if err := contextObject.Err(); err != nil {
			return Result{ExpandedNodes: e.expanded}, err
		}

		currentItem, outcome := e.step()
		switch outcome {
		case stepExpanded:
			continue
		case stepExhausted:
			searchOptions.Logger.Debug("no path found",
				"source", source, "target", target, "expanded", e.expanded)
			return Result{ExpandedNodes: e.expanded}, ErrNoPathFound
		case stepBudget:
			searchOptions.Logger.Debug("expansion budget exceeded",
				"source", source, "target", target, "budget", searchOptions.MaxExpansions)
			return Result{ExpandedNodes: e.expanded}, ErrBudgetExceeded
		}

		path, err := e.path()
		if err != nil {
			searchOptions.Logger.Error("path reconstruction failed",
				"source", source, "target", target, "err", err)
			return Result{ExpandedNodes: e.expanded}, err
		}
		searchOptions.Logger.Debug("path found",
			"source", source, "target", target,
			"cost", currentItem.GScore, "length", len(path), "expanded", e.expanded)
		return Result{
			Path:          path,
			TotalCost:     currentItem.GScore,
			ExpandedNodes: e.expanded,
			Found:         true,
		}, nil
	}
}
