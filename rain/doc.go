// Package rain implements the per-column streak state machine.
//
// A column holds at most one Streak. Each render tick the driver calls
// Advance with the column's current streak; Advance may create a streak in an
// empty column, advance an existing one by one visual step once every Speed
// ticks, or retire it when its trailing edge catches the leading edge.
package rain
