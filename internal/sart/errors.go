package sart

import "errors"

var (
	// ErrInvalidConfig reports malformed generator parameters: bad
	// probe bounds, an empty non-target pool, or a target digit that
	// also appears in the non-target pool.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInfeasiblePartition reports a step structure that cannot be
	// satisfied for the requested trial count.
	ErrInfeasiblePartition = errors.New("infeasible partition")
)
