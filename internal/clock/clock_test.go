package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Now(t *testing.T) {
	got := System{}.Now()
	assert.Equal(t, time.UTC, got.Location())
	assert.WithinDuration(t, time.Now(), got, time.Minute)
}

func TestFake(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFake(start)

	assert.True(t, f.Now().Equal(start), "Now() = %v, want %v", f.Now(), start)

	want := start.Add(48 * time.Hour)
	assert.True(t, f.Advance(48*time.Hour).Equal(want), "Advance() should return the new time")
	assert.True(t, f.Now().Equal(want), "Now() after Advance = %v, want %v", f.Now(), want)

	f.Set(start)
	assert.True(t, f.Now().Equal(start), "Now() after Set = %v, want %v", f.Now(), start)
}
