// Package keyframe bakes animations into fixed-rate tracks.
//
// Sampling runs on a detached clone, so the source animation and its
// callbacks are never touched. A track stores the key times, the value and
// velocity of every lane at each key, and whether the animation came to
// rest inside the sampling window.
package keyframe
