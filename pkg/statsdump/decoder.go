package statsdump

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ssargent/statsdump/pkg/codec"
)

// headerSize is the reported-size field plus two reserved bytes.
const headerSize = 4

// Options configures a Decoder. The zero value uses the default table,
// skips unknown tags and discards diagnostics.
type Options struct {
	// Table overrides the dispatch table.
	Table *Table
	// Strict fails the decode on the first unknown tag instead of skipping it.
	Strict bool
	// Logger receives a warning for every unknown tag.
	Logger *slog.Logger
}

// Decoder turns stats dump bytes into a Record. A Decoder holds no per-dump
// state and may be shared.
type Decoder struct {
	table  *Table
	strict bool
	logger *slog.Logger
}

// NewDecoder creates a decoder with the given options
func NewDecoder(opts Options) *Decoder {
	d := &Decoder{
		table:  opts.Table,
		strict: opts.Strict,
		logger: opts.Logger,
	}
	if d.table == nil {
		d.table = DefaultTable()
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

// Decode decodes a dump with default options.
func Decode(data []byte) (*Record, error) {
	return NewDecoder(Options{}).Decode(data)
}

// DecodeFile reads and decodes the dump at path.
func (d *Decoder) DecodeFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats dump: %w", err)
	}
	defer f.Close()

	return d.DecodeReader(f)
}

// DecodeReader reads r to the end and decodes the result.
func (d *Decoder) DecodeReader(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats dump: %w", err)
	}
	return d.Decode(data)
}

// decodeState is the transient state threaded through one decode.
type decodeState struct {
	rec *Record
	// lastSidePlayer is the 1-based player of the most recent side tag, 0 if none yet.
	lastSidePlayer int
}

// Decode decodes a complete dump. It returns either a fully decoded record or
// a *DecodeError, never both.
func (d *Decoder) Decode(data []byte) (*Record, error) {
	if len(data) < headerSize {
		return nil, newDecodeError("", 0, fmt.Errorf("%w: %d bytes", ErrTruncatedDump, len(data)))
	}

	r := codec.NewReader(data)
	st := &decodeState{rec: NewRecord()}
	st.rec.DumpSize = r.Len()

	reported, err := r.Int16()
	if err != nil {
		return nil, newDecodeError("", r.Offset(), err)
	}
	if err := r.Skip(2); err != nil {
		return nil, newDecodeError("", r.Offset(), err)
	}
	st.rec.ReportedSize = int32(reported)

	for !r.Done() {
		offset := r.Offset()
		tag, err := r.Tag()
		if err != nil {
			return nil, newDecodeError("", offset, err)
		}

		rule, ok := d.table.Lookup(tag)
		if !ok {
			if d.strict {
				return nil, newDecodeError(tag, offset, ErrUnknownTag)
			}
			// The payload length of an unknown tag is unknowable; only the tag is skipped.
			d.logger.Warn("skipping unknown stats dump tag", "tag", tag, "offset", offset)
			st.rec.UnknownTags = append(st.rec.UnknownTags, UnknownTag{Tag: tag, Offset: offset})
			continue
		}

		if err := st.apply(r, tag, &rule.Handler); err != nil {
			return nil, newDecodeError(tag, offset, err)
		}
	}

	return st.rec, nil
}

// apply resolves the player slot, consumes the payload and stores it.
func (st *decodeState) apply(r *codec.Reader, tag string, h *Handler) error {
	slot := -1
	switch h.Slot {
	case SlotFromTag:
		player, err := PlayerNumber(tag)
		if err != nil {
			return err
		}
		slot = player - 1
	case SlotFromSide:
		if st.lastSidePlayer == 0 {
			return fmt.Errorf("%w: %s before any side tag", ErrPlayerIndexOutOfRange, tag)
		}
		slot = st.lastSidePlayer - 1
	}

	if h.Garbage {
		if err := r.Garbage(); err != nil {
			return err
		}
	}
	v, err := h.Codec.decode(r)
	if err != nil {
		return fmt.Errorf("%s: %w", h.Field, err)
	}
	h.store(st.rec, slot, v)

	if h.RecordsSide {
		st.lastSidePlayer = slot + 1
	}
	return nil
}
