// Package tune grid-searches animation parameters. Each grid point is baked
// as a detached animation on a worker goroutine and scored from its track
// metrics.
package tune
