package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/statsdump/pkg/statsdump"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "archive"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

// gameDump builds a dump carrying a game number and one player name.
func gameDump(game int32, name string) []byte {
	body := []byte("IDNO")
	body = binary.BigEndian.AppendUint32(body, 0)
	body = binary.BigEndian.AppendUint32(body, uint32(game))
	body = append(body, "NAM1"...)
	body = binary.BigEndian.AppendUint32(body, uint32(len(name)))
	body = append(body, name...)
	for len(body)%4 != 0 {
		body = append(body, 0)
	}
	out := binary.BigEndian.AppendUint16(nil, uint16(4+len(body)))
	out = append(out, 0, 0)
	return append(out, body...)
}

func decode(t *testing.T, raw []byte) *statsdump.Record {
	t.Helper()
	rec, err := statsdump.Decode(raw)
	require.NoError(t, err)
	return rec
}

func TestArchive_PutGetRaw(t *testing.T) {
	a := openTestArchive(t)
	fixed := time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)
	a.now = func() time.Time { return fixed }

	raw := gameDump(42, "Volkov")
	entry, duplicate, err := a.Put(raw, decode(t, raw))
	require.NoError(t, err)
	assert.False(t, duplicate)

	_, err = ksuid.Parse(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, Digest(raw), entry.Digest)
	assert.Equal(t, len(raw), entry.Size)
	assert.Equal(t, int32(42), entry.GameNumber)
	assert.Equal(t, []string{"Volkov"}, entry.Players)
	assert.Nil(t, entry.Payload)

	got, err := a.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, entry.Digest, got.Digest)
	assert.True(t, fixed.Equal(got.ReceivedAt), "received at %v", got.ReceivedAt)
	assert.Equal(t, int32(42), got.GameNumber)
	assert.Equal(t, statsdump.UnparsedString, got.MapName)
	assert.Nil(t, got.Payload)

	back, err := a.Raw(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, raw, back)
}

func TestArchive_PutWithoutRecord(t *testing.T) {
	a := openTestArchive(t)

	entry, _, err := a.Put([]byte("not a dump"), nil)
	require.NoError(t, err)
	assert.Equal(t, statsdump.Unparsed, entry.GameNumber)
	assert.Equal(t, statsdump.UnparsedString, entry.MapName)
	assert.Empty(t, entry.Players)
}

func TestArchive_Deduplicates(t *testing.T) {
	a := openTestArchive(t)
	raw := gameDump(7, "Kane")

	first, duplicate, err := a.Put(raw, nil)
	require.NoError(t, err)
	assert.False(t, duplicate)

	second, duplicate, err := a.Put(bytes.Clone(raw), nil)
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, first.ID, second.ID)

	other, duplicate, err := a.Put(gameDump(8, "Kane"), nil)
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.NotEqual(t, first.ID, other.ID)

	entries, err := a.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestArchive_ConcurrentDuplicatePuts(t *testing.T) {
	a := openTestArchive(t)
	raw := gameDump(99, "Stalin")

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, _, err := a.Put(raw, nil)
			if err == nil {
				ids[i] = e.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	entries, err := a.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestArchive_List(t *testing.T) {
	a := openTestArchive(t)

	entries, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	for i := int32(1); i <= 3; i++ {
		_, _, err := a.Put(gameDump(i, "Player"), nil)
		require.NoError(t, err)
	}

	entries, err = a.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Nil(t, e.Payload)
		assert.NotEmpty(t, e.Digest)
	}
}

func TestArchive_Delete(t *testing.T) {
	a := openTestArchive(t)
	raw := gameDump(5, "Tanya")

	entry, _, err := a.Put(raw, nil)
	require.NoError(t, err)

	require.NoError(t, a.Delete(entry.ID))

	_, err = a.Get(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = a.Raw(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, a.Delete(entry.ID), ErrNotFound)

	// The digest index went with the entry, so the same bytes archive afresh.
	again, duplicate, err := a.Put(raw, nil)
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.NotEqual(t, entry.ID, again.ID)
}

func TestArchive_InvalidID(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Get("not-a-ksuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = a.Get(ksuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrInvalidID))
}

func TestArchive_CorruptEntry(t *testing.T) {
	a := openTestArchive(t)
	id := ksuid.New().String()
	require.NoError(t, a.db.Set(dumpKey(id), []byte{0xFF, 0x00}, nil))

	_, err := a.Get(id)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestArchive_ReopenKeepsEntries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	raw := gameDump(11, "Nadia")

	a, err := Open(dir)
	require.NoError(t, err)
	entry, _, err := a.Put(raw, nil)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(dir)
	require.NoError(t, err)
	defer a.Close()

	back, err := a.Raw(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, raw, back)
}

func TestDigest(t *testing.T) {
	assert.Len(t, Digest(nil), 64)
	assert.Equal(t, Digest([]byte("a")), Digest([]byte("a")))
	assert.NotEqual(t, Digest([]byte("a")), Digest([]byte("b")))
}
