// Package clock provides timing sources for a scheduler.
//
//   - [Manual] delivers frames only when stepped, for tests and offline runs
//   - [Ticker] fires from a background goroutine and hands frames to the
//     owning goroutine through a [Mailbox]
package clock
