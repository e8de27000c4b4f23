package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// BatchError reports the items of a batch operation that failed.
// It unwraps to every item error.
type BatchError struct {
	Operation Operation
	Namespace string
	Kind      string
	Total     int
	Failed    []ItemOutcome
}

func (e *BatchError) Error() string {
	if len(e.Failed) == 0 {
		return fmt.Sprintf("%s: no failures", e.Operation)
	}

	first := e.Failed[0]

	return fmt.Sprintf("failed %d of %d %ss in namespace '%s': %s: %v",
		len(e.Failed),
		e.Total,
		strings.ToLower(e.Kind),
		e.Namespace,
		first.Name,
		first.Err,
	)
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for i := range e.Failed {
		errs = append(errs, e.Failed[i].Err)
	}

	return errs
}

// FailedNames returns the names of the failed items.
func (e *BatchError) FailedNames() []string {
	names := make([]string, 0, len(e.Failed))
	for i := range e.Failed {
		names = append(names, e.Failed[i].Name)
	}

	return names
}

// runBatch applies fn to every item with at most limit calls in flight.
// fn reports its outcome instead of failing, so one item never stops the others.
// Outcomes are returned in item order.
func runBatch[T any](
	ctx context.Context,
	limit int,
	items []T,
	fn func(ctx context.Context, item T) ItemOutcome,
) []ItemOutcome {
	outcomes := make([]ItemOutcome, len(items))

	var g errgroup.Group

	g.SetLimit(limit)

	for i := range items {
		g.Go(func() error {
			outcomes[i] = fn(ctx, items[i])

			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

// batchErr returns a *BatchError when any item of the report failed.
func batchErr(report *Report, kind string) error {
	failed := report.Failed()
	if len(failed) == 0 {
		return nil
	}

	return &BatchError{
		Operation: report.Operation,
		Namespace: report.Namespace,
		Kind:      kind,
		Total:     len(report.Items),
		Failed:    failed,
	}
}

// targetErr wraps a Repository error for a directly addressed resource,
// translating adapter markers into ErrTargetNotFound and ErrThrottled.
func targetErr(op error, kind, namespace, name string, err error) error {
	var nf notFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %s '%s' %w in namespace '%s'",
			op, strings.ToLower(kind), name, ErrTargetNotFound, namespace)
	}

	var tmr tooManyRequests
	if errors.As(err, &tmr) {
		return fmt.Errorf("%w: %s '%s': %w", op, strings.ToLower(kind), name, ErrThrottled)
	}

	return fmt.Errorf("%w: %s '%s' in namespace '%s': %w",
		op, strings.ToLower(kind), name, namespace, err)
}

// listErr wraps a Repository list error for a namespace.
func listErr(op error, namespace string, err error) error {
	var tmr tooManyRequests
	if errors.As(err, &tmr) {
		return fmt.Errorf("%w: namespace '%s': %w", op, namespace, ErrThrottled)
	}

	return fmt.Errorf("%w: namespace '%s': %w", op, namespace, err)
}

func isNotFound(err error) bool {
	var nf notFound

	return errors.As(err, &nf)
}
