package archive

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// Entry is one archived dump. Payload holds the zstd-compressed dump bytes and
// is only populated inside the archive; Get and List return entries without it.
type Entry struct {
	ID         string    `cbor:"id" json:"id" yaml:"id"`
	Digest     string    `cbor:"digest" json:"digest" yaml:"digest"`
	ReceivedAt time.Time `cbor:"received_at" json:"received_at" yaml:"received_at"`
	Size       int       `cbor:"size" json:"size" yaml:"size"`
	GameNumber int32     `cbor:"game_number" json:"game_number" yaml:"game_number"`
	MapName    string    `cbor:"map_name" json:"map_name" yaml:"map_name"`
	Players    []string  `cbor:"players,omitempty" json:"players,omitempty" yaml:"players,omitempty"`
	Payload    []byte    `cbor:"payload,omitempty" json:"-" yaml:"-"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode

	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Receive times keep their nanoseconds.
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("archive: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("archive: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("archive: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("archive: zstd decoder initialization failed: " + err.Error())
	}
}

func encodeEntry(e *Entry) ([]byte, error) {
	data, err := encMode.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entry: %w", err)
	}
	return data, nil
}

func decodeEntry(data []byte) (*Entry, error) {
	var e Entry
	if err := decMode.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &e, nil
}

func compress(raw []byte) []byte {
	return zstdEncoder.EncodeAll(raw, make([]byte, 0, len(raw)))
}

func decompress(payload []byte, size int) ([]byte, error) {
	raw, err := zstdDecoder.DecodeAll(payload, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd decompress: %v", ErrCorrupt, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: zstd decompress: got %d bytes, expected %d", ErrCorrupt, len(raw), size)
	}
	return raw, nil
}
