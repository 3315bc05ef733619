// Package source provides participant source implementations.
//
// A source performs all roster ingestion I/O and returns finalized
// participant records; the scheduler itself never touches files. Two
// implementations are provided:
//
//   - Static: a fixed in-memory list, for tests and embedders that
//     build participants themselves.
//   - AXWare: parses a timing-software registration export (TSV)
//     joined with a member attributes sheet (CSV).
package source
