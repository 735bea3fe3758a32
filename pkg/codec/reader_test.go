package codec

import (
	"errors"
	"testing"
)

func TestReader_Integers(t *testing.T) {
	data := []byte{
		0xFF, 0xFE, // int16 -2
		0x00, 0x00, 0x05, 0xDC, // int32 1500
		0xFF, 0xFF, 0xFF, 0xFF, // int32 -1
		0x80, 0x00, 0x00, 0x01, // uint32 2147483649
	}
	r := NewReader(data)

	i16, err := r.Int16()
	if err != nil || i16 != -2 {
		t.Fatalf("Int16: got %d, %v; want -2", i16, err)
	}
	if r.Offset() != 2 {
		t.Errorf("Offset after Int16: got %d, want 2", r.Offset())
	}

	i32, err := r.Int32()
	if err != nil || i32 != 1500 {
		t.Fatalf("Int32: got %d, %v; want 1500", i32, err)
	}

	neg, err := r.Int32()
	if err != nil || neg != -1 {
		t.Fatalf("Int32: got %d, %v; want -1", neg, err)
	}

	u32, err := r.Uint32()
	if err != nil || u32 != 0x80000001 {
		t.Fatalf("Uint32: got %#x, %v; want 0x80000001", u32, err)
	}

	if !r.Done() || r.Remaining() != 0 || r.Offset() != len(data) {
		t.Errorf("expected reader to be exhausted: offset=%d remaining=%d", r.Offset(), r.Remaining())
	}
}

func TestReader_Tag(t *testing.T) {
	r := NewReader([]byte("CRD3IDNO"))

	for _, want := range []string{"CRD3", "IDNO"} {
		got, err := r.Tag()
		if err != nil {
			t.Fatalf("Tag failed: %v", err)
		}
		if got != want {
			t.Errorf("Tag mismatch: got %q, want %q", got, want)
		}
	}
}

func TestReader_UnexpectedEndOfData(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		read func(r *Reader) error
	}{
		{"int32 from 3 bytes", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.Int32(); return err }},
		{"int16 from 1 byte", []byte{1}, func(r *Reader) error { _, err := r.Int16(); return err }},
		{"tag from empty", nil, func(r *Reader) error { _, err := r.Tag(); return err }},
		{"skip past end", []byte{1, 2}, func(r *Reader) error { return r.Skip(3) }},
		{"negative length", []byte{1, 2}, func(r *Reader) error { _, err := r.Bytes(-1); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.data)
			err := tc.read(r)
			if !errors.Is(err, ErrUnexpectedEndOfData) {
				t.Fatalf("expected ErrUnexpectedEndOfData, got %v", err)
			}
			if r.Offset() != 0 {
				t.Errorf("failed read advanced the offset to %d", r.Offset())
			}
		})
	}
}

func TestReader_OffsetNeverExceedsLength(t *testing.T) {
	r := NewReader(make([]byte, 10))

	for i := 0; i < 5; i++ {
		_ = r.Garbage()
		if r.Offset() > r.Len() {
			t.Fatalf("offset %d exceeds length %d", r.Offset(), r.Len())
		}
	}
	if r.Offset() != 8 {
		t.Errorf("expected offset 8 after two whole words, got %d", r.Offset())
	}
}
