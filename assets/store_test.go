package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddGet(t *testing.T) {
	s := NewStore()
	a := &VelloAsset{Width: 10, Height: 10, Data: &Svg{}}
	h := s.Add(a)
	require.NotEqual(t, Handle(0), h)
	assert.Same(t, a, s.Get(h))
}

func TestStoreZeroHandle(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Get(0))
	assert.Nil(t, s.Get(99))
}

func TestStoreReserveFulfill(t *testing.T) {
	s := NewStore()
	h := s.Reserve()
	// Not ready until fulfilled.
	assert.Nil(t, s.Get(h))

	a := &VelloAsset{Data: &Lottie{}}
	s.Fulfill(h, a)
	assert.Same(t, a, s.Get(h))
}

func TestStoreHandlesAreStable(t *testing.T) {
	s := NewStore()
	h1 := s.Add(&VelloAsset{Data: &Svg{}})
	h2 := s.Add(&VelloAsset{Data: &Svg{}})
	assert.NotEqual(t, h1, h2)
	assert.NotSame(t, s.Get(h1), s.Get(h2))
}

func TestFirstFrameSetOnce(t *testing.T) {
	l := &Lottie{}
	_, shown := l.FirstFrame()
	assert.False(t, shown)

	l.MarkFirstFrame(1.5)
	l.MarkFirstFrame(9.9) // ignored; already shown
	at, shown := l.FirstFrame()
	assert.True(t, shown)
	assert.Equal(t, 1.5, at)

	l.ClearFirstFrame()
	_, shown = l.FirstFrame()
	assert.False(t, shown)
}
