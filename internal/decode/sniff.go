package decode

import (
	"bytes"
)

// Kind is a container/codec detected from leading bytes.
type Kind int

const (
	KindUnknown Kind = iota
	KindMP3
	KindFLAC
	KindWAV
	KindVorbis
	KindOpus
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindMP3:
		return "MP3"
	case KindFLAC:
		return "FLAC"
	case KindWAV:
		return "WAV"
	case KindVorbis:
		return "Vorbis"
	case KindOpus:
		return "Opus"
	default:
		return "Unknown"
	}
}

// Sniff identifies the audio kind of data from its magic bytes.
func Sniff(data []byte) Kind {
	body := data[id3v2Size(data):]

	switch {
	case bytes.HasPrefix(body, []byte("fLaC")):
		return KindFLAC
	case len(body) >= 12 && bytes.HasPrefix(body, []byte("RIFF")) && string(body[8:12]) == "WAVE":
		return KindWAV
	case bytes.HasPrefix(body, []byte("OggS")):
		return sniffOgg(body)
	case len(body) >= 2 && body[0] == 0xFF && body[1]&0xE0 == 0xE0:
		return KindMP3
	case len(body) < len(data):
		// ID3v2 tag followed by something other than FLAC is almost always MP3
		// with padding before the first frame.
		return KindMP3
	}
	return KindUnknown
}

// sniffOgg inspects the identification packet of the first Ogg page.
func sniffOgg(body []byte) Kind {
	head := body[:min(len(body), 128)]
	switch {
	case bytes.Contains(head, []byte("\x01vorbis")):
		return KindVorbis
	case bytes.Contains(head, []byte("OpusHead")):
		return KindOpus
	}
	return KindUnknown
}

// id3v2Size returns the size of a leading ID3v2 tag, header included,
// or 0 when data does not start with one.
func id3v2Size(data []byte) int {
	if len(data) < 10 || string(data[0:3]) != "ID3" {
		return 0
	}

	// ID3v2 size is stored as a syncsafe integer in bytes 6-9
	// Each byte only uses 7 bits (bit 7 is always 0)
	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)

	// Footer flag adds another 10 bytes
	if data[5]&0x10 != 0 {
		size += 10
	}
	return min(10+size, len(data))
}
