package concurrent

import (
	"context"

	"github.com/zeusync/forces/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// MapErr applies mapFn to each element of the iterator with at most workers
// goroutines in flight, preserving input order in the result. The context
// passed to mapFn is cancelled as soon as one call fails; the first error is
// returned and the partial results are discarded.
func MapErr[T any, R any](
	ctx context.Context,
	i *sequence.Iterator[T],
	workers int,
	mapFn func(context.Context, T) (R, error),
) ([]R, error) {
	in := i.Collect()
	out := make([]R, len(in))

	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for idx, val := range in {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			res, err := mapFn(groupCtx, val)
			if err != nil {
				return err
			}
			out[idx] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
