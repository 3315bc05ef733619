// Package autologic schedules autocross event participants into
// balanced heats, assigns each participant a work role, and places
// workers and captains onto course stations.
//
// The pipeline has three stages:
//
//  1. The Scheduler partitions competition classes across heats under
//     size and novice balance constraints, retrying randomized
//     partitions until one is feasible.
//  2. A role strategy (see the strategy package) staffs each heat's
//     required roles from multi-qualified participants.
//  3. The stations package distributes workers and captains across
//     course stations with category-aware bin packing.
//
// The whole pipeline is synchronous and CPU-bound; run it off the
// caller's primary goroutine when embedding in interactive contexts
// and cancel it through the context.
//
// Basic usage:
//
//	cfg := autologic.DefaultConfig()
//	roster := types.NewRoster(participants, cfg.Heats)
//	sched, err := autologic.New(&cfg, roster)
//	if err != nil {
//	    return err
//	}
//	result, err := sched.Run(ctx)
package autologic
