// Package types defines the core data types and interfaces for the
// autologic library.
//
// It contains the roster entity graph (Participant, Category, Heat,
// Roster), the numeric acceptance rules (Rules, RoleMinima), run
// outcomes and diagnostics (Outcome, RoleShortfall), and the
// interfaces implemented elsewhere (RoleStrategy, ParticipantSource,
// Logger, MetricsCollector, Hooks).
//
// Keeping these in a leaf package lets internal packages depend on
// them without importing the root autologic package, avoiding import
// cycles while the root re-exports the public names.
package types
