package decode

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gopxl/beep/v2"
)

const oggHeaderLen = 27

var (
	errOggCapture   = errors.New("ogg: invalid capture pattern")
	errOggVersion   = errors.New("ogg: unsupported version")
	errOggTruncated = errors.New("ogg: truncated page")
	errOggNoPackets = errors.New("ogg: no packets")
)

// oggStream is the packet sequence of the first logical bitstream in a file.
type oggStream struct {
	packets [][]byte
	// granule is the last non-negative granule position seen, or -1.
	granule int64
}

// readOgg splits data into packets. Pages belonging to other logical
// streams (chained or multiplexed files) are skipped.
func readOgg(data []byte) (*oggStream, error) {
	st := &oggStream{granule: -1}
	var (
		serial  uint32
		partial []byte
	)

	for pos, first := 0, true; pos < len(data); first = false {
		if len(data)-pos < oggHeaderLen {
			return nil, errOggTruncated
		}
		hdr := data[pos : pos+oggHeaderLen]
		if string(hdr[0:4]) != "OggS" {
			return nil, errOggCapture
		}
		if hdr[4] != 0 {
			return nil, errOggVersion
		}
		granule := int64(binary.LittleEndian.Uint64(hdr[6:14])) //nolint:gosec // -1 marks "no packet ends here"
		pageSerial := binary.LittleEndian.Uint32(hdr[14:18])
		segments := int(hdr[26])

		pos += oggHeaderLen
		if len(data)-pos < segments {
			return nil, errOggTruncated
		}
		table := data[pos : pos+segments]
		pos += segments

		bodyLen := 0
		for _, l := range table {
			bodyLen += int(l)
		}
		if len(data)-pos < bodyLen {
			return nil, errOggTruncated
		}
		body := data[pos : pos+bodyLen]
		pos += bodyLen

		if first {
			serial = pageSerial
		} else if pageSerial != serial {
			continue
		}

		off := 0
		for _, l := range table {
			partial = append(partial, body[off:off+int(l)]...)
			off += int(l)
			// a lacing value below 255 terminates the packet
			if l < 255 {
				st.packets = append(st.packets, partial)
				partial = nil
			}
		}
		if granule >= 0 {
			st.granule = granule
		}
	}

	if len(st.packets) == 0 {
		return nil, errOggNoPackets
	}
	return st, nil
}

// oggCodec decodes the packets of one Ogg-encapsulated codec.
type oggCodec interface {
	// headers is the number of leading packets consumed by setup.
	headers() int
	setup(headers [][]byte) error
	format() beep.Format
	// preSkip is the number of decoded frames to discard at stream start.
	preSkip() int
	// decode appends the frames of one packet to out.
	decode(packet []byte, out [][2]float64) ([][2]float64, error)
}

func newOggCodec(kind Kind) (oggCodec, error) {
	switch kind {
	case KindOpus:
		return &opusCodec{}, nil
	case KindVorbis:
		return &vorbisCodec{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// decodeOgg decodes every audio packet of an Ogg Opus or Vorbis file.
// Undecodable audio packets are skipped, matching how players treat a
// damaged page mid-stream.
func decodeOgg(kind Kind, data []byte) (beep.Streamer, beep.Format, error) {
	codec, err := newOggCodec(kind)
	if err != nil {
		return nil, beep.Format{}, err
	}
	st, err := readOgg(data)
	if err != nil {
		return nil, beep.Format{}, err
	}
	n := codec.headers()
	if len(st.packets) < n {
		return nil, beep.Format{}, fmt.Errorf("ogg: %d header packets, want %d", len(st.packets), n)
	}
	if err := codec.setup(st.packets[:n]); err != nil {
		return nil, beep.Format{}, err
	}

	return &frameStreamer{frames: decodePackets(codec, st)}, codec.format(), nil
}

// decodePackets decodes the audio packets following the headers, then
// drops the pre-skip and the padding past the final granule position.
func decodePackets(codec oggCodec, st *oggStream) [][2]float64 {
	var frames [][2]float64
	for _, pkt := range st.packets[codec.headers():] {
		if out, err := codec.decode(pkt, frames); err == nil {
			frames = out
		}
	}

	skip := min(codec.preSkip(), len(frames))
	frames = frames[skip:]
	if st.granule >= 0 {
		if end := st.granule - int64(codec.preSkip()); end >= 0 && end < int64(len(frames)) {
			frames = frames[:end]
		}
	}
	return frames
}

// frameStreamer streams a decoded frame slice once.
type frameStreamer struct {
	frames [][2]float64
	pos    int
}

func (s *frameStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.frames) {
		return 0, false
	}
	n := copy(samples, s.frames[s.pos:])
	s.pos += n
	return n, true
}

func (s *frameStreamer) Err() error { return nil }
