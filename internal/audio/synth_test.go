package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inRange(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		for c := 0; c < 2; c++ {
			if s[c] < -1 || s[c] > 1 {
				t.Fatalf("sample %d channel %d out of range: %v", i, c, s[c])
			}
		}
	}
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = max(p, s[0], -s[0], s[1], -s[1])
	}
	return p
}

func TestCatch(t *testing.T) {
	samples := Catch(44100)

	require.Len(t, samples, 7056)
	inRange(t, samples)
	assert.Greater(t, peak(samples), 0.1, "catch cue should be audible")

	// Decays to near silence by the end
	assert.Less(t, peak(samples[len(samples)-100:]), 0.05)
}

func TestRain(t *testing.T) {
	samples := Rain(44100, time.Second, 7)

	require.Len(t, samples, 44100)
	inRange(t, samples)
	assert.Greater(t, peak(samples), 0.01)
	assert.Equal(t, samples, Rain(44100, time.Second, 7), "same seed gives the same loop")
}

func TestRainShortLoop(t *testing.T) {
	samples := Rain(1000, 100*time.Millisecond, 1)
	require.Len(t, samples, 100)
	inRange(t, samples)
}

func TestPCM16(t *testing.T) {
	out := PCM16([][2]float64{{1, -1}, {0, 0.5}})
	require.Len(t, out, 8)

	word := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[i*2:])) }
	assert.Equal(t, int16(32767), word(0))
	assert.Equal(t, int16(-32767), word(1))
	assert.Equal(t, int16(0), word(2))
	assert.Equal(t, int16(16384), word(3))
}
