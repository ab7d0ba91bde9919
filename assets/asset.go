// Package assets holds the asset arena and the vector-asset model the
// animation systems drive. Decoding actual lottie or SVG files is out of
// scope here; compositions are supplied by whatever loads them.
package assets

import "github.com/hajimehoshi/ebiten/v2"

// Composition describes the immutable timing bounds of a frame-based asset.
type Composition struct {
	// FrameStart and FrameEnd bound the composition's frames, end exclusive.
	FrameStart float64
	FrameEnd   float64
	// FrameRate is frames per second. Must be > 0.
	FrameRate float64
}

// Length returns the composition's frame count.
func (c Composition) Length() float64 {
	return c.FrameEnd - c.FrameStart
}

// Data is the format-specific payload of a VelloAsset.
type Data interface {
	// FirstFrame reports when the asset was first shown, in elapsed seconds
	// of scene time, and whether it has been shown at all.
	FirstFrame() (float64, bool)
	// MarkFirstFrame records the first-shown timestamp. Later calls within
	// the same state are ignored; ClearFirstFrame re-arms it.
	MarkFirstFrame(at float64)
	// ClearFirstFrame forgets the first-shown timestamp. Called on every
	// state commit so OnAfter and OnShow measure from state entry.
	ClearFirstFrame()
}

// Lottie is a frame-based animation payload.
type Lottie struct {
	Composition Composition
	// RenderedFrames is the playhead. Mutated exclusively by the animation
	// systems; see the playhead package for how it is interpreted.
	RenderedFrames float64

	firstFrame *float64
}

func (l *Lottie) FirstFrame() (float64, bool) {
	if l.firstFrame == nil {
		return 0, false
	}
	return *l.firstFrame, true
}

func (l *Lottie) MarkFirstFrame(at float64) {
	if l.firstFrame == nil {
		l.firstFrame = &at
	}
}

func (l *Lottie) ClearFirstFrame() {
	l.firstFrame = nil
}

// Svg is a static vector payload. It has no frame concept; only the
// first-shown timestamp participates in transitions.
type Svg struct {
	firstFrame *float64
}

func (s *Svg) FirstFrame() (float64, bool) {
	if s.firstFrame == nil {
		return 0, false
	}
	return *s.firstFrame, true
}

func (s *Svg) MarkFirstFrame(at float64) {
	if s.firstFrame == nil {
		s.firstFrame = &at
	}
}

func (s *Svg) ClearFirstFrame() {
	s.firstFrame = nil
}

// VelloAsset is one renderable vector asset plus the mutable playback
// state the systems own.
type VelloAsset struct {
	Width  float64
	Height float64
	// LocalTransformCenter maps a point in the entity's local space to the
	// asset's top-left content origin (y-down content against a y-up
	// local frame).
	LocalTransformCenter ebiten.GeoM
	Data                 Data
}
