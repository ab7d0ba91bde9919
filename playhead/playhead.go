// Package playhead implements the frame-position arithmetic for animation
// playback. A playhead is a scalar counted in fractional frames since the
// start of a composition's timeline. It is never eagerly wrapped into a
// single loop; the loop count is derived on demand from the cycle length
// (segment length plus intermission), which lets loops-completed survive
// settings changes without separate bookkeeping.
package playhead

import "math"

// Prev returns the largest float strictly less than x.
func Prev(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// Advance converts an elapsed time step into a playhead delta.
func Advance(dt, speed, frameRate float64) float64 {
	return dt * speed * frameRate
}

// LoopsCompleted derives how many full loops the playhead has passed under
// the given intermission. The first loop boundary sits at length (the
// intermission of loop one has not necessarily elapsed yet), later
// boundaries repeat every length+intermission frames.
func LoopsCompleted(rendered, length, intermission float64) float64 {
	switch {
	case rendered > length+intermission:
		return math.Trunc(rendered / (length + intermission))
	case rendered > length:
		return 1
	default:
		return 0
	}
}

// ApplyIntermission re-expresses rendered under a new intermission duration
// without changing which loop the playhead is in. Completed loops each
// contributed oldIntermission frames of dead time; those contributions are
// rescaled to the new duration. A playhead currently inside an intermission
// window is re-anchored just before the next loop boundary instead, so it
// stays idle rather than jumping across a boundary.
func ApplyIntermission(rendered, length, oldIntermission, newIntermission float64) float64 {
	loopsCompleted := LoopsCompleted(rendered, length, oldIntermission)
	inIntermission := rendered > length &&
		rendered >= loopsCompleted*length &&
		rendered < loopsCompleted*length+oldIntermission
	if inIntermission {
		return Prev(loopsCompleted * (length + newIntermission))
	}
	dtFrames := (newIntermission - oldIntermission) * loopsCompleted
	return math.Max(0, rendered+dtFrames)
}

// ApplySeek resolves a requested seek frame against the playhead. The
// request is bounded to the effective segment (end exclusive) and mirrored
// about the segment end when playing in reverse. The current loop count is
// preserved: seeking moves the playhead within its loop, never across one.
func ApplySeek(rendered, frame, segStart, segEnd, intermission float64, reverse bool) float64 {
	bounded := clamp(frame, segStart, Prev(segEnd))
	seek := bounded
	if reverse {
		seek = segEnd - bounded
	}
	length := segEnd - segStart + intermission
	loopsCompleted := math.Trunc(rendered / length)
	return loopsCompleted*length + seek
}

// Bounds collapses a raw playhead into a concrete frame position inside the
// segment [segStart, segEnd): the position within the current loop, held at
// the last frame while inside an intermission or once the allowed loop
// count is exhausted, and mirrored when playing in reverse. loopCap is the
// number of completed loops permitted; a negative cap loops forever.
func Bounds(rendered, segStart, segEnd, intermission float64, reverse bool, loopCap float64) float64 {
	if segEnd < segStart {
		segEnd = segStart
	}
	length := segEnd - segStart
	cycle := length + intermission

	var loops, frame float64
	if cycle > 0 {
		loops = math.Trunc(rendered / cycle)
		frame = rendered - loops*cycle
	}
	if loopCap >= 0 && loops > loopCap {
		frame = length
	}
	// Inside an intermission the last frame holds.
	frame = math.Min(frame, length)
	frame = math.Max(frame, 0)

	playhead := segStart + frame
	if reverse {
		playhead = segEnd - frame
	}
	return clamp(playhead, segStart, Prev(segEnd))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
