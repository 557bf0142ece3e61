package decode

import (
	"time"

	"github.com/gopxl/beep/v2"
)

// PCM is fully decoded audio held in memory.
// It is immutable once returned by a Decoder.
type PCM struct {
	format beep.Format
	buffer *beep.Buffer
}

// NewPCM materializes every sample of s into memory.
func NewPCM(format beep.Format, s beep.Streamer) *PCM {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &PCM{format: format, buffer: buf}
}

// Format returns the sample format of the buffer.
func (p *PCM) Format() beep.Format { return p.format }

// Len returns the number of samples.
func (p *PCM) Len() int { return p.buffer.Len() }

// Duration returns the playing time of the whole buffer.
func (p *PCM) Duration() time.Duration {
	return p.format.SampleRate.D(p.buffer.Len())
}

// StreamerAt returns a fresh streamer over the buffer starting at offset.
// Offsets outside the buffer are clamped.
func (p *PCM) StreamerAt(offset time.Duration) beep.StreamSeeker {
	from := min(max(p.format.SampleRate.N(offset), 0), p.buffer.Len())
	return p.buffer.Streamer(from, p.buffer.Len())
}
