package accel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Point is one (n, order) evaluation request.
type Point struct {
	N     int
	Order int
}

// Outcome is the result of evaluating one Point.
type Outcome[T Float] struct {
	Point
	Value T
	Err   error
}

// Sweep evaluates acc at every point concurrently and returns the outcomes in
// the order of points.
//
// Behavior highlights:
//   - At most limit evaluations run at once; limit <= 0 means unbounded.
//   - Per-point errors (domain, instability) are recorded in Outcome.Err and
//     never cancel sibling evaluations.
//   - Only cancellation of ctx aborts the sweep; its error is returned and
//     unevaluated points carry ctx.Err().
//
// acc must be safe for concurrent use (every accelerator in this module is,
// provided its series is).
func Sweep[T Float](ctx context.Context, acc Accelerator[T], points []Point, limit int) ([]Outcome[T], error) {
	out := make([]Outcome[T], len(points))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, p := range points {
		i, p := i, p
		g.Go(func() error {
			out[i].Point = p
			if err := gctx.Err(); err != nil {
				out[i].Err = err

				return err
			}
			out[i].Value, out[i].Err = acc.Accelerate(p.N, p.Order)

			return nil
		})
	}

	return out, g.Wait()
}
