// Package export renders accepted schedules as printable sheets.
//
// Two sheets are produced: the work assignment sheet, ordered by
// working slot so course control can call heats up in order, and the
// run order sheet, ordered by running slot for grid. Both are CSV so
// they open directly in a spreadsheet for day-of-event printing.
package export
