// Package terminal wraps the tcell screen behind a narrow interface used by the event loop.
//
// Features:
//   - Raw mode and alternate screen through tcell
//   - Optional mouse capture, bracketed paste and focus reporting
//   - Color capability detection (16, 256, true color)
//   - Panic-safe frame drawing
//   - Emergency restoration of terminal state after a crash
package terminal
