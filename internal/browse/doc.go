// Package browse is a full-screen, read-only catalog browser built with
// Bubble Tea and the Bubbles table component.
//
// It shows the same columns as package table, without style codes, and
// reacts to:
//
//   - ↑/k and ↓/j to move the highlight
//   - enter to show the highlighted record's full description
//   - q, esc or ctrl+c to quit
//
// The browser works on a snapshot taken when it starts and never changes the
// catalog.
package browse
