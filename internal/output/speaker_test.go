package output

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vivid/internal/analysis"
	"github.com/llehouerou/vivid/internal/decode"
)

// constant produces n samples of value v on both channels.
type constant struct {
	n, done int
	v       float64
}

func (c *constant) Stream(samples [][2]float64) (int, bool) {
	if c.done >= c.n {
		return 0, false
	}
	k := min(len(samples), c.n-c.done)
	for i := range k {
		samples[i] = [2]float64{c.v, c.v}
	}
	c.done += k
	return k, true
}

func (c *constant) Err() error { return nil }

func newTestSpeaker(t *testing.T, rate beep.SampleRate) (*Speaker, *analysis.Analyser) {
	t.Helper()
	a, err := analysis.New(analysis.Options{FFTSize: 32})
	require.NoError(t, err)
	s := NewSpeaker(rate, 0, a)
	s.play = func(beep.Streamer) {}
	return s, a
}

func pcmOf(rate beep.SampleRate, n int, v float64) *decode.PCM {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	return decode.NewPCM(format, &constant{n: n, v: v})
}

func TestNewSpeaker_Defaults(t *testing.T) {
	s := NewSpeaker(0, 0, nil)
	assert.Equal(t, DefaultSampleRate, s.SampleRate())
	assert.Equal(t, DefaultBuffer, s.buffer)
}

func TestGraph_AppliesGainAfterAnalyser(t *testing.T) {
	s, a := newTestSpeaker(t, 100)
	s.SetGain(0.2)

	g := s.build(pcmOf(100, 100, 0.5), 0, func() {})
	buf := make([][2]float64, 50)
	n, ok := g.chain.Stream(buf)

	require.True(t, ok)
	require.Equal(t, 50, n)
	assert.InDelta(t, 0.1, buf[0][0], 1e-3, "output must be scaled by the gain")
	assert.InDelta(t, 0.1, buf[49][1], 1e-3)

	wave := make([]byte, 1)
	a.TimeDomainData(wave)
	assert.InDelta(t, 192, int(wave[0]), 1, "analyser must see the signal before gain")
}

func TestGraph_GainChangesApplyToLiveGraph(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	g := s.build(pcmOf(100, 100, 0.5), 0, func() {})

	s.SetGain(1)
	buf := make([][2]float64, 10)
	g.chain.Stream(buf)

	assert.InDelta(t, 0.5, buf[0][0], 1e-3)
}

func TestGraph_StartsAtOffset(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	g := s.build(pcmOf(100, 100, 0.5), 600*time.Millisecond, func() {})

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := g.gain.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, 40, total)
}

func TestGraph_Resamples(t *testing.T) {
	s, _ := newTestSpeaker(t, 200)
	g := s.build(pcmOf(100, 100, 0.5), 0, func() {})

	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := g.gain.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.InDelta(t, 200, total, 8)
}

func TestGraph_StopReportsEnd(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	ended := make(chan struct{}, 2)
	g := s.build(pcmOf(100, 1000, 0.5), 0, func() { ended <- struct{}{} })
	g.Start()

	g.Stop()
	buf := make([][2]float64, 16)
	// the mixer keeps pulling until the trailing callback has run
	for range 3 {
		g.chain.Stream(buf)
	}

	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not report an end")
	}
	assert.Nil(t, s.live)
	g.Stop()
	assert.Empty(t, ended, "end is reported once")
}

func TestGraph_NaturalEnd(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	ended := make(chan struct{}, 1)
	g := s.build(pcmOf(100, 10, 0.5), 0, func() { ended <- struct{}{} })
	g.Start()

	buf := make([][2]float64, 64)
	g.chain.Stream(buf)

	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("natural end was not reported")
	}
}

func TestGraph_StopBeforeStart(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	ended := 0
	g := s.build(pcmOf(100, 10, 0.5), 0, func() { ended++ })

	g.Stop()

	assert.Equal(t, 1, ended)
}

func TestGraph_StartOnce(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	plays := 0
	s.play = func(beep.Streamer) { plays++ }
	g := s.build(pcmOf(100, 10, 0.5), 0, func() {})

	g.Start()
	g.Start()

	assert.Equal(t, 1, plays)
}

func TestSpeaker_CloseWithoutOpen(t *testing.T) {
	s, _ := newTestSpeaker(t, 100)
	assert.NotPanics(t, s.Close)
}
