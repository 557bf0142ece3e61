package decode

import (
	"encoding/binary"
	"errors"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

// Opus always decodes at 48kHz regardless of the input rate in OpusHead.
const opusSampleRate = 48000

// 120ms at 48kHz is the longest Opus packet.
const opusMaxFrame = 5760

var (
	errOpusHead   = errors.New("opus: invalid OpusHead")
	errOpusMapped = errors.New("opus: multichannel mapping not supported")
	errVorbisHead = errors.New("vorbis: invalid identification header")
)

type opusCodec struct {
	dec      *opus.Decoder
	channels int
	skip     int
	pcm      []float32
}

func (c *opusCodec) headers() int { return 2 } // OpusHead, OpusTags

func (c *opusCodec) setup(headers [][]byte) error {
	head := headers[0]
	if len(head) < 19 || string(head[:8]) != "OpusHead" || head[8] != 1 {
		return errOpusHead
	}
	c.channels = int(head[9])
	if c.channels < 1 || c.channels > 2 || head[18] != 0 {
		return errOpusMapped
	}
	c.skip = int(binary.LittleEndian.Uint16(head[10:12]))

	dec, err := opus.NewDecoder(opusSampleRate, c.channels)
	if err != nil {
		return err
	}
	c.dec = dec
	c.pcm = make([]float32, opusMaxFrame*c.channels)
	return nil
}

func (c *opusCodec) format() beep.Format {
	return beep.Format{SampleRate: opusSampleRate, NumChannels: c.channels, Precision: 2}
}

func (c *opusCodec) preSkip() int { return c.skip }

func (c *opusCodec) decode(packet []byte, out [][2]float64) ([][2]float64, error) {
	n, err := c.dec.DecodeFloat32(packet, c.pcm)
	if err != nil {
		return out, err
	}
	return appendInterleaved(out, c.pcm[:n*c.channels], c.channels), nil
}

type vorbisCodec struct {
	dec      vorbis.Decoder
	channels int
	rate     int
}

func (c *vorbisCodec) headers() int { return 3 } // identification, comment, setup

func (c *vorbisCodec) setup(headers [][]byte) error {
	id := headers[0]
	if len(id) < 16 || id[0] != 0x01 || string(id[1:7]) != "vorbis" {
		return errVorbisHead
	}
	for _, h := range headers {
		if err := c.dec.ReadHeader(h); err != nil {
			return err
		}
	}
	c.channels = c.dec.Channels()
	c.rate = c.dec.SampleRate()
	return nil
}

func (c *vorbisCodec) format() beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(c.rate), NumChannels: c.channels, Precision: 2}
}

func (c *vorbisCodec) preSkip() int { return 0 }

func (c *vorbisCodec) decode(packet []byte, out [][2]float64) ([][2]float64, error) {
	pcm, err := c.dec.Decode(packet)
	if err != nil {
		return out, err
	}
	return appendInterleaved(out, pcm, c.channels), nil
}

// appendInterleaved folds interleaved samples into stereo frames. Mono is
// duplicated to both sides; channels past the second are dropped.
func appendInterleaved(out [][2]float64, pcm []float32, channels int) [][2]float64 {
	if channels < 1 {
		return out
	}
	for i := 0; i+channels <= len(pcm); i += channels {
		l := float64(pcm[i])
		r := l
		if channels > 1 {
			r = float64(pcm[i+1])
		}
		out = append(out, [2]float64{l, r})
	}
	return out
}
