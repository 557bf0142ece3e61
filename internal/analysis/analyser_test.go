package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq, rate float64, n int, amp float64) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/rate)
		out[i] = [2]float64{v, v}
	}
	return out
}

func TestNew_RejectsBadFFTSize(t *testing.T) {
	for _, n := range []int{0, 16, 1000, 65536} {
		_, err := New(Options{FFTSize: n})
		assert.ErrorIs(t, err, ErrInvalidFFTSize, "size %d", n)
	}
}

func TestNew_FallsBackOnBadRanges(t *testing.T) {
	a, err := New(Options{FFTSize: 256, Smoothing: 2, MinDecibels: 0, MaxDecibels: -10})
	require.NoError(t, err)
	assert.Equal(t, DefaultSmoothing, a.opts.Smoothing)
	assert.Equal(t, DefaultMinDecibels, a.opts.MinDecibels)
	assert.Equal(t, DefaultMaxDecibels, a.opts.MaxDecibels)
	assert.Equal(t, 128, a.BinCount())
}

func TestTimeDomain_SilenceIsCentered(t *testing.T) {
	a, err := New(DefaultOptions())
	require.NoError(t, err)

	dst := make([]byte, a.BinCount())
	a.TimeDomainData(dst)

	for i, v := range dst {
		require.Equal(t, byte(128), v, "sample %d", i)
	}
}

func TestTimeDomain_ScalesAndClamps(t *testing.T) {
	a, err := New(Options{FFTSize: 32})
	require.NoError(t, err)

	a.Write([][2]float64{{1, 1}, {-1, -1}, {0.5, 0.5}, {2, 2}})

	dst := make([]byte, 4)
	a.TimeDomainData(dst)

	assert.Equal(t, []byte{255, 0, 192, 255}, dst)
}

func TestTimeDomain_MostRecentSamples(t *testing.T) {
	a, err := New(Options{FFTSize: 32})
	require.NoError(t, err)

	block := make([][2]float64, 40)
	for i := range block {
		block[i] = [2]float64{float64(i) / 100, float64(i) / 100}
	}
	a.Write(block)

	dst := make([]byte, 2)
	a.TimeDomainData(dst)

	assert.Equal(t, toByte(128*(1+0.38)), dst[0])
	assert.Equal(t, toByte(128*(1+0.39)), dst[1])
}

func TestFrequency_SilenceIsZero(t *testing.T) {
	a, err := New(DefaultOptions())
	require.NoError(t, err)

	dst := make([]byte, a.BinCount())
	a.FrequencyData(dst)

	for _, v := range dst {
		require.Equal(t, byte(0), v)
	}
}

func TestFrequency_PeakAtToneBin(t *testing.T) {
	const rate = 44100.0
	a, err := New(Options{FFTSize: 2048, Smoothing: 0, MinDecibels: -100, MaxDecibels: -30})
	require.NoError(t, err)

	// bin 100 center frequency
	freq := 100 * rate / 2048
	a.Write(sine(freq, rate, 2048, 0.5))

	dst := make([]byte, a.BinCount())
	a.FrequencyData(dst)

	peak := 0
	for i, v := range dst {
		if v > dst[peak] {
			peak = i
		}
	}
	assert.InDelta(t, 100, peak, 1)
	assert.Equal(t, byte(255), dst[peak])
	assert.Less(t, dst[500], dst[peak])
}

func TestFrequency_SmoothingDecays(t *testing.T) {
	const rate = 44100.0
	a, err := New(Options{FFTSize: 1024, Smoothing: 0.8, MinDecibels: -100, MaxDecibels: -30})
	require.NoError(t, err)

	freq := 50 * rate / 1024
	a.Write(sine(freq, rate, 1024, 0.5))
	first := make([]byte, a.BinCount())
	a.FrequencyData(first)

	a.Write(make([][2]float64, 1024))
	second := make([]byte, a.BinCount())
	a.FrequencyData(second)

	assert.Positive(t, second[50], "smoothing must retain energy from the previous frame")
	assert.Less(t, second[50], first[50])
}

func TestReset(t *testing.T) {
	a, err := New(Options{FFTSize: 32})
	require.NoError(t, err)
	a.Write([][2]float64{{1, 1}})

	a.Reset()

	dst := make([]byte, 1)
	a.TimeDomainData(dst)
	assert.Equal(t, byte(128), dst[0])
}
