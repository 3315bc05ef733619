package metrics

import "github.com/joshuavictorchen/autologic-sub000/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SchedulerMetrics implementation

// RecordIteration discards the iteration metric.
func (n *NopMetrics) RecordIteration() {
	// No-op
}

// RecordRejection discards the rejection metric.
func (n *NopMetrics) RecordRejection(_ /* reason */ string) {
	// No-op
}

// RecordRunOutcome discards the run outcome metric.
func (n *NopMetrics) RecordRunOutcome(_ /* outcome */ types.Outcome, _ /* duration */ float64) {
	// No-op
}

// RecordAcceptedIteration discards the accepted iteration metric.
func (n *NopMetrics) RecordAcceptedIteration(_ /* iteration */ int) {
	// No-op
}

// RecordHeatBalance discards the heat balance metric.
func (n *NopMetrics) RecordHeatBalance(_ /* heat */, _ /* size */, _ /* novices */ int) {
	// No-op
}

// StationMetrics implementation

// RecordCategorySplits discards the category split metric.
func (n *NopMetrics) RecordCategorySplits(_ /* heat */, _ /* splits */ int) {
	// No-op
}

// RecordCaptainSwaps discards the captain swap metric.
func (n *NopMetrics) RecordCaptainSwaps(_ /* heat */, _ /* swaps */ int) {
	// No-op
}
