package codec

import (
	"bytes"
	"fmt"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// Toggle is the decoded value of an ON/OFF field.
type Toggle int8

const (
	// ToggleUnrecognized is returned when the word is neither "ON" nor "OFF".
	ToggleUnrecognized Toggle = -2
	// ToggleUnparsed marks a toggle field that was not present in the dump.
	ToggleUnparsed Toggle = -1
	ToggleOff      Toggle = 0
	ToggleOn       Toggle = 1
)

// Big-endian words of the ASCII literals "ON\0\0" and "OFF\0".
const (
	wordOn  uint32 = 0x4F4E0000
	wordOff uint32 = 0x4F464600
)

// String returns the human-readable name of a toggle value.
func (t Toggle) String() string {
	switch t {
	case ToggleOn:
		return "ON"
	case ToggleOff:
		return "OFF"
	case ToggleUnparsed:
		return "UNPARSED"
	case ToggleUnrecognized:
		return "UNRECOGNIZED"
	default:
		return fmt.Sprintf("Toggle(%d)", int8(t))
	}
}

// MarshalText implements encoding.TextMarshaler so toggles render by name in JSON and YAML.
func (t Toggle) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseToggle maps a raw word to its toggle value.
func ParseToggle(word uint32) Toggle {
	switch word {
	case wordOn:
		return ToggleOn
	case wordOff:
		return ToggleOff
	default:
		return ToggleUnrecognized
	}
}

// PaddedByte consumes a word and returns its first byte. Single-byte fields
// are padded to a 32-bit boundary on the wire.
func (r *Reader) PaddedByte() (byte, error) {
	b, err := r.next(WordSize)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// OnOff consumes a garbage word followed by an "ON"/"OFF" word.
func (r *Reader) OnOff() (Toggle, error) {
	if err := r.Garbage(); err != nil {
		return ToggleUnparsed, err
	}
	word, err := r.Uint32()
	if err != nil {
		return ToggleUnparsed, err
	}
	return ParseToggle(word), nil
}

// Padding returns the number of bytes needed to align n to a word boundary.
func Padding(n int) int {
	return (WordSize - n%WordSize) % WordSize
}

// PrefixedString consumes a length word, whose last byte is the payload length, then the
// payload and its alignment padding. Trailing NULs are dropped from the result.
func (r *Reader) PrefixedString() (string, error) {
	word, err := r.next(WordSize)
	if err != nil {
		return "", err
	}
	n := int(word[WordSize-1])

	payload, err := r.next(n)
	if err != nil {
		return "", err
	}
	if err := r.Skip(Padding(n)); err != nil {
		return "", err
	}
	return decodeText(payload)
}

// ShortString consumes a garbage word and a fixed 4-byte field holding three
// characters and one alignment byte.
func (r *Reader) ShortString() (string, error) {
	if err := r.Garbage(); err != nil {
		return "", err
	}
	b, err := r.next(WordSize)
	if err != nil {
		return "", err
	}
	return decodeText(b[:3])
}

// fileTimeEpochOffset is the number of seconds between 1601-01-01 and 1970-01-01.
const fileTimeEpochOffset = 11644473600

// ticksPerSecond is the number of 100ns FILETIME intervals per second.
const ticksPerSecond = 10000000

// FileTimeToTime converts a FILETIME tick count to a UTC time.
func FileTimeToTime(ticks uint64) time.Time {
	secs := int64(ticks/ticksPerSecond) - fileTimeEpochOffset
	nsec := int64(ticks%ticksPerSecond) * 100
	return time.Unix(secs, nsec).UTC()
}

// FileTime consumes a garbage word and a FILETIME stored as low then high word.
func (r *Reader) FileTime() (time.Time, error) {
	if err := r.Garbage(); err != nil {
		return time.Time{}, err
	}
	low, err := r.Uint32()
	if err != nil {
		return time.Time{}, err
	}
	high, err := r.Uint32()
	if err != nil {
		return time.Time{}, err
	}
	return FileTimeToTime(uint64(high)<<32 | uint64(low)), nil
}

// decodeText converts Windows-1252 bytes to UTF-8, dropping trailing NULs.
func decodeText(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("invalid text field: %w", err)
	}
	return string(out), nil
}
