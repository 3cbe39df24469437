package main

import (
	"context"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"go-chi-calculator/internal/observability"
)

// shutdownAll runs every hook in ops within timeout when the process exits
// without a signal, so providers started so far still flush.
func shutdownAll(ops map[string]gfshutdown.Operation, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	for _, name := range names {
		if opErr := ops[name](ctx); opErr != nil {
			observability.Logger.Error("shutdown hook failed", zap.String("hook", name), zap.Error(opErr))
			err = errors.CombineErrors(err, errors.Wrapf(opErr, "shutting down %s", name))
		}
	}
	return err
}
