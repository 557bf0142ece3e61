// Package analysis produces byte-scaled spectrum and waveform snapshots of the
// signal flowing to the speaker, following the conventions of the Web Audio
// AnalyserNode: a Blackman-windowed FFT, exponential smoothing between
// snapshots, and decibel magnitudes mapped linearly onto 0..255.
package analysis

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

const (
	DefaultFFTSize     = 2048
	DefaultSmoothing   = 0.8
	DefaultMinDecibels = -100.0
	DefaultMaxDecibels = -30.0
)

var ErrInvalidFFTSize = errors.New("fft size must be a power of two between 32 and 32768")

// Options configures an Analyser.
type Options struct {
	FFTSize     int
	Smoothing   float64 // 0 disables smoothing, values close to 1 smooth heavily
	MinDecibels float64
	MaxDecibels float64
}

// DefaultOptions returns the AnalyserNode defaults.
func DefaultOptions() Options {
	return Options{
		FFTSize:     DefaultFFTSize,
		Smoothing:   DefaultSmoothing,
		MinDecibels: DefaultMinDecibels,
		MaxDecibels: DefaultMaxDecibels,
	}
}

// Analyser keeps the most recent FFTSize mono samples written to it.
// Write is called from the audio goroutine, snapshots from anywhere.
type Analyser struct {
	opts Options

	mu       sync.Mutex
	ring     []float64
	pos      int
	window   []float64
	smoothed []float64
}

// New creates an Analyser.
func New(opts Options) (*Analyser, error) {
	n := opts.FFTSize
	if n < 32 || n > 32768 || n&(n-1) != 0 {
		return nil, ErrInvalidFFTSize
	}
	if opts.Smoothing < 0 || opts.Smoothing >= 1 {
		opts.Smoothing = DefaultSmoothing
	}
	if opts.MinDecibels >= opts.MaxDecibels {
		opts.MinDecibels, opts.MaxDecibels = DefaultMinDecibels, DefaultMaxDecibels
	}

	return &Analyser{
		opts:     opts,
		ring:     make([]float64, n),
		window:   window.Blackman(n),
		smoothed: make([]float64, n/2),
	}, nil
}

// BinCount returns the number of frequency bins, half the FFT size.
func (a *Analyser) BinCount() int { return a.opts.FFTSize / 2 }

// Write appends a stereo block, mixed down to mono.
func (a *Analyser) Write(samples [][2]float64) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[a.pos] = (s[0] + s[1]) / 2
		a.pos = (a.pos + 1) % len(a.ring)
	}
	a.mu.Unlock()
}

// Reset clears captured samples and smoothing history.
func (a *Analyser) Reset() {
	a.mu.Lock()
	clear(a.ring)
	clear(a.smoothed)
	a.pos = 0
	a.mu.Unlock()
}

// FrequencyData fills dst with one magnitude byte per frequency bin.
// Bins past BinCount are left untouched.
func (a *Analyser) FrequencyData(dst []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.ring)
	frame := make([]float64, n)
	for i := range n {
		frame[i] = a.ring[(a.pos+i)%n] * a.window[i]
	}
	spectrum := fft.FFTReal(frame)

	tau := a.opts.Smoothing
	span := a.opts.MaxDecibels - a.opts.MinDecibels
	for i := range min(len(dst), len(a.smoothed)) {
		mag := cmplx.Abs(spectrum[i]) / float64(n)
		a.smoothed[i] = tau*a.smoothed[i] + (1-tau)*mag

		db := math.Inf(-1)
		if a.smoothed[i] > 0 {
			db = 20 * math.Log10(a.smoothed[i])
		}
		dst[i] = toByte(255 * (db - a.opts.MinDecibels) / span)
	}
}

// TimeDomainData fills dst with the most recent len(dst) samples, centered at
// 128. At most FFTSize samples are available.
func (a *Analyser) TimeDomainData(dst []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.ring)
	count := min(len(dst), n)
	start := a.pos - count + n
	for i := range count {
		dst[i] = toByte(128 * (1 + a.ring[(start+i)%n]))
	}
}

func toByte(v float64) byte {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}
