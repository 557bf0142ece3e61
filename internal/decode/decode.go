// Package decode turns raw audio file bytes into in-memory PCM.
//
// The container is detected from magic bytes rather than a file extension,
// since callers hand over bytes (drag-and-drop, stdin) as often as paths.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

var (
	ErrEmpty             = errors.New("no audio data")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoSamples         = errors.New("audio stream contains no samples")
)

// Decoder converts raw file bytes to PCM.
// Implementations may be slow and are expected to run off the caller's loop.
type Decoder interface {
	Decode(data []byte) (*PCM, error)
}

// Func adapts a function to Decoder.
type Func func(data []byte) (*PCM, error)

// Decode calls f(data).
func (f Func) Decode(data []byte) (*PCM, error) { return f(data) }

// Auto decodes MP3, FLAC, WAV, Ogg Vorbis and Ogg Opus, chosen by Sniff.
type Auto struct{}

// Decode implements Decoder.
func (Auto) Decode(data []byte) (*PCM, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	kind := Sniff(data)
	streamer, format, closer, err := open(kind, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	pcm := NewPCM(format, streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	if pcm.Len() == 0 {
		return nil, fmt.Errorf("decode %s: %w", kind, ErrNoSamples)
	}
	return pcm, nil
}

func open(kind Kind, data []byte) (beep.Streamer, beep.Format, io.Closer, error) {
	switch kind {
	case KindMP3:
		s, f, err := decodeMP3(bytes.NewReader(data))
		return s, f, nil, err
	case KindFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		s, f, err := flac.Decode(bytes.NewReader(data[id3v2Size(data):]))
		return s, f, s, err
	case KindWAV:
		s, f, err := wav.Decode(bytes.NewReader(data))
		return s, f, s, err
	case KindVorbis, KindOpus:
		s, f, err := decodeOgg(kind, data)
		return s, f, nil, err
	case KindUnknown:
	}
	return nil, beep.Format{}, nil, ErrUnsupportedFormat
}
