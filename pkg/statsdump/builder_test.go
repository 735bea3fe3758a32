package statsdump

import (
	"encoding/binary"
)

// dumpBuilder assembles stats dump bytes for tests.
type dumpBuilder struct {
	body []byte
}

func newDump() *dumpBuilder {
	return &dumpBuilder{}
}

func (b *dumpBuilder) tag(t string) *dumpBuilder {
	if len(t) != 4 {
		panic("tags are four bytes: " + t)
	}
	b.body = append(b.body, t...)
	return b
}

func (b *dumpBuilder) word(v uint32) *dumpBuilder {
	b.body = binary.BigEndian.AppendUint32(b.body, v)
	return b
}

func (b *dumpBuilder) raw(p []byte) *dumpBuilder {
	b.body = append(b.body, p...)
	return b
}

func (b *dumpBuilder) garbage() *dumpBuilder {
	return b.word(0xDEADBEEF)
}

// int32 appends a tag, its garbage word and a signed value.
func (b *dumpBuilder) int32(tag string, v int32) *dumpBuilder {
	return b.tag(tag).garbage().word(uint32(v))
}

// byteField appends a tag, its garbage word and a padded byte.
func (b *dumpBuilder) byteField(tag string, v byte) *dumpBuilder {
	return b.tag(tag).garbage().raw([]byte{v, 0xAA, 0xBB, 0xCC})
}

func (b *dumpBuilder) str(tag, s string) *dumpBuilder {
	b.tag(tag).word(uint32(len(s))).raw([]byte(s))
	for i := 0; i < (4-len(s)%4)%4; i++ {
		b.body = append(b.body, 0)
	}
	return b
}

func (b *dumpBuilder) short(tag, s string) *dumpBuilder {
	return b.tag(tag).garbage().raw(append([]byte(s[:3]), 0))
}

func (b *dumpBuilder) onOff(tag string, on bool) *dumpBuilder {
	b.tag(tag).garbage()
	if on {
		return b.raw([]byte("ON\x00\x00"))
	}
	return b.raw([]byte("OFF\x00"))
}

func (b *dumpBuilder) fileTime(tag string, ticks uint64) *dumpBuilder {
	return b.tag(tag).garbage().word(uint32(ticks)).word(uint32(ticks >> 32))
}

// tally appends a tally record of n counters; set maps counter index to value.
func (b *dumpBuilder) tally(tag string, n int, set map[int]int32) *dumpBuilder {
	b.tag(tag).garbage()
	for i := 0; i < n; i++ {
		b.word(uint32(set[i]))
	}
	return b
}

// bytes returns the header followed by the body.
func (b *dumpBuilder) bytes() []byte {
	return b.bytesReporting(uint16(4 + len(b.body)))
}

// bytesReporting is bytes with an arbitrary reported size in the header.
func (b *dumpBuilder) bytesReporting(size uint16) []byte {
	out := make([]byte, 0, 4+len(b.body))
	out = binary.BigEndian.AppendUint16(out, size)
	out = append(out, 0, 0)
	return append(out, b.body...)
}
