package engine

import (
	"errors"
	"time"

	"github.com/llehouerou/vivid/internal/decode"
)

// ErrMockOpen is returned by Mock.Open after FailOpen(true).
var ErrMockOpen = errors.New("mock output unavailable")

// Mock is an Output test double. Sources it opens report their end
// synchronously, from the goroutine that calls Stop or Finish.
type Mock struct {
	gain     float64
	sources  []*MockSource
	analyser *MockAnalyser
	failOpen bool
}

// NewMock creates a mock output with an analyser of binCount bins.
func NewMock(binCount int) *Mock {
	return &Mock{analyser: &MockAnalyser{bins: binCount}}
}

// Open records a new source.
func (m *Mock) Open(pcm *decode.PCM, offset time.Duration, ended func()) (Source, error) {
	if m.failOpen {
		return nil, ErrMockOpen
	}
	s := &MockSource{PCM: pcm, Offset: offset, ended: ended}
	m.sources = append(m.sources, s)
	return s, nil
}

// SetGain records the gain.
func (m *Mock) SetGain(level float64) { m.gain = level }

// Analyser returns the mock analyser.
func (m *Mock) Analyser() Analyser { return m.analyser }

// Test helpers

func (m *Mock) Gain() float64 { return m.gain }

func (m *Mock) Sources() []*MockSource { return m.sources }

func (m *Mock) FailOpen(fail bool) { m.failOpen = fail }

func (m *Mock) AnalyserMock() *MockAnalyser { return m.analyser }

// Last returns the most recently opened source, or nil.
func (m *Mock) Last() *MockSource {
	if len(m.sources) == 0 {
		return nil
	}
	return m.sources[len(m.sources)-1]
}

// Live returns the sources that were started and have not ended.
func (m *Mock) Live() []*MockSource {
	var live []*MockSource
	for _, s := range m.sources {
		if s.Started && !s.Ended {
			live = append(live, s)
		}
	}
	return live
}

// MockSource records how a source was driven.
type MockSource struct {
	PCM     *decode.PCM
	Offset  time.Duration
	Started bool
	Stopped bool
	Ended   bool
	ended   func()
}

func (s *MockSource) Start() { s.Started = true }

// Stop ends the source; like a real graph it reports the end once.
func (s *MockSource) Stop() {
	s.Stopped = true
	s.end()
}

// Finish simulates the source reaching the end of its buffer.
func (s *MockSource) Finish() { s.end() }

func (s *MockSource) end() {
	if s.Ended {
		return
	}
	s.Ended = true
	s.ended()
}

// MockAnalyser returns settable fixed data.
type MockAnalyser struct {
	bins   int
	Freq   byte
	Wave   byte
	Resets int
}

func (a *MockAnalyser) Reset() { a.Resets++ }

func (a *MockAnalyser) BinCount() int { return a.bins }

func (a *MockAnalyser) FrequencyData(dst []byte) {
	for i := range dst {
		dst[i] = a.Freq
	}
}

func (a *MockAnalyser) TimeDomainData(dst []byte) {
	for i := range dst {
		dst[i] = a.Wave
	}
}

// Verify Mock implements Output at compile time.
var _ Output = (*Mock)(nil)
