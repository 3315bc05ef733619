// Package stations assigns physical station numbers to the workers
// and captains of a role-assigned heat.
//
// Captains are placed round-robin so every station is covered whenever
// enough captains exist. Workers are distributed by grouped bin
// packing: per-station capacities differ by at most one, and workers
// sharing a normalized category are kept together using closest-fit
// selection. A single-pass local search then swaps isolated captains
// toward stations holding their class mates.
//
// Assignment is best-effort and never fails: it runs once per accepted
// heat over an already-valid role assignment and is idempotent while
// that assignment is unchanged.
package stations
