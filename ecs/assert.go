package ecs

import "fmt"

// invariant aborts the process when a precondition documented as a
// programming error is violated (emplace of a duplicate, remove of a
// missing entity, insert of the sentinel entity, and so on). The core
// never returns a recoverable error for these — see §7 of the
// specification this package implements: contracts are fail-fast, not
// retried.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
