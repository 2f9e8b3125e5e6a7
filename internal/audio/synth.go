package audio

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

// Catch synthesizes the catch cue: a short falling "plink" with a fast decay.
func Catch(rate int) [][2]float64 {
	n := samplesFor(rate, 160*time.Millisecond)
	out := make([][2]float64, n)

	phase := 0.0
	for i := range out {
		t := float64(i) / float64(rate)
		progress := float64(i) / float64(n)

		// Pitch drops an octave over the cue
		freq := 1400 * math.Pow(0.5, progress)
		phase += freq / float64(rate)

		envelope := math.Exp(-t*28) * math.Min(t/0.002, 1)
		v := 0.6 * envelope * (math.Sin(2*math.Pi*phase) + 0.25*math.Sin(4*math.Pi*phase))
		out[i] = [2]float64{v, v}
	}
	return out
}

// Rain synthesizes a loop of soft rain: low-passed noise with sparse droplet ticks.
// The tail is cross-faded into the head so the loop has no seam.
func Rain(rate int, length time.Duration, seed uint64) [][2]float64 {
	n := samplesFor(rate, length)
	fade := min(samplesFor(rate, 250*time.Millisecond), n/2)
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))

	raw := make([][2]float64, n+fade)
	var lowL, lowR, tick float64
	for i := range raw {
		// One-pole low-pass per channel keeps the hiss soft
		lowL += 0.08 * (rng.Float64()*2 - 1 - lowL)
		lowR += 0.08 * (rng.Float64()*2 - 1 - lowR)

		// Occasional bright droplet, decaying quickly
		if rng.Float64() < 12.0/float64(rate) {
			tick = 0.35 * (rng.Float64() + 0.5)
		}
		tick *= 0.995
		click := tick * math.Sin(float64(i)*0.9)

		raw[i] = [2]float64{0.5*lowL + click, 0.5*lowR + click}
	}

	out := make([][2]float64, n)
	copy(out, raw[:n])
	for i := 0; i < fade; i++ {
		w := float64(i) / float64(fade)
		for c := 0; c < 2; c++ {
			out[i][c] = raw[i][c]*w + raw[n+i][c]*(1-w)
		}
	}
	return clip(out)
}

// PCM16 encodes samples as interleaved signed 16-bit little-endian stereo.
func PCM16(samples [][2]float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		for c := 0; c < 2; c++ {
			v := int16(math.Round(clamp1(s[c]) * math.MaxInt16))
			binary.LittleEndian.PutUint16(out[i*4+c*2:], uint16(v))
		}
	}
	return out
}

func samplesFor(rate int, d time.Duration) int {
	return int(math.Round(float64(rate) * d.Seconds()))
}

func clip(samples [][2]float64) [][2]float64 {
	for i := range samples {
		samples[i][0] = clamp1(samples[i][0])
		samples[i][1] = clamp1(samples[i][1])
	}
	return samples
}

func clamp1(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
