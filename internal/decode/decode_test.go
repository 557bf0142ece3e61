package decode

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuto_DecodesWAV(t *testing.T) {
	raw := makeWAV(t, 8000, 16000)

	pcm, err := Auto{}.Decode(raw)

	require.NoError(t, err)
	assert.Equal(t, 16000, pcm.Len())
	assert.Equal(t, 2*time.Second, pcm.Duration())
	assert.Equal(t, beep.SampleRate(8000), pcm.Format().SampleRate)
}

func TestAuto_Empty(t *testing.T) {
	_, err := Auto{}.Decode(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAuto_Unsupported(t *testing.T) {
	_, err := Auto{}.Decode([]byte("definitely not audio at all"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAuto_CorruptWAV(t *testing.T) {
	raw := makeWAV(t, 8000, 100)
	// keep the RIFF/WAVE magic, destroy the fmt chunk
	corrupt := append([]byte(nil), raw[:12]...)
	corrupt = append(corrupt, []byte("garbagegarbagegarbage")...)

	_, err := Auto{}.Decode(corrupt)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode WAV")
}

func TestFunc_Adapter(t *testing.T) {
	want := errors.New("backend down")
	var d Decoder = Func(func([]byte) (*PCM, error) { return nil, want })

	_, err := d.Decode([]byte{1})
	assert.ErrorIs(t, err, want)
}

func TestPCM_StreamerAt(t *testing.T) {
	format := beep.Format{SampleRate: 100, NumChannels: 2, Precision: 2}
	pcm := NewPCM(format, beep.Silence(1000))

	tests := []struct {
		name   string
		offset time.Duration
		want   int
	}{
		{"start", 0, 1000},
		{"middle", 4 * time.Second, 600},
		{"negative", -time.Second, 1000},
		{"past end", time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pcm.StreamerAt(tt.offset)
			assert.Equal(t, tt.want, s.Len()-s.Position())
		})
	}
	assert.Equal(t, 10*time.Second, pcm.Duration())
}
