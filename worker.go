package gridpath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one source/target pair for SearchAll.
type Query struct {
	Source Cell
	Target Cell
}

// QueryResult is the outcome of one query. Err carries per-query failures
// such as ErrNoPathFound or a *ConfigurationError.
type QueryResult struct {
	Query  Query
	Result Result
	Err    error
}

// SearchAll runs an independent Search for every query over the same grid,
// with at most NumberOfWorkers searches in flight. Results keep the order of
// queries. The returned error is only set when ctx is cancelled.
func SearchAll(
	contextObject context.Context,
	grid *Grid,
	queries []Query,
	options ...Option,
) ([]QueryResult, error) {
	searchOptions := applyOptions(options)
	results := make([]QueryResult, len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			result, err := Search(groupContext, grid, query.Source, query.Target, options...)
			results[i] = QueryResult{Query: query, Result: result, Err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := contextObject.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
