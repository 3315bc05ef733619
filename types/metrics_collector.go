package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures
// gracefully. The scheduler calls these from its run goroutine;
// implementations must tolerate concurrent use when the embedder runs
// multiple schedulers.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	SchedulerMetrics
	StationMetrics
}

// SchedulerMetrics defines metrics for the partitioner retry loop.
type SchedulerMetrics interface {
	// RecordIteration records one partitioner attempt.
	RecordIteration()

	// RecordRejection records a rejected attempt by reason
	// ("heat size out of bounds", "novice count out of bounds",
	// "insufficient qualified <role>", "unable to assign <role>").
	RecordRejection(reason string)

	// RecordRunOutcome records a terminal run outcome and its total
	// duration in seconds.
	RecordRunOutcome(outcome Outcome, duration float64)

	// RecordAcceptedIteration records the index of the accepted
	// attempt.
	RecordAcceptedIteration(iteration int)

	// RecordHeatBalance records an accepted heat's size and novice
	// count (gauge metrics, labeled by heat).
	RecordHeatBalance(heat, size, novices int)
}

// StationMetrics defines metrics for the station assignment pass.
type StationMetrics interface {
	// RecordCategorySplits records how many category groups were split
	// across stations in one heat.
	RecordCategorySplits(heat, splits int)

	// RecordCaptainSwaps records how many captain swaps the refinement
	// pass performed in one heat.
	RecordCaptainSwaps(heat, swaps int)
}
