// Package archive stores raw stats dumps in a pebble database, deduplicated by
// content digest.
//
// Keys:
//
//	dump/<ksuid>     CBOR-encoded Entry with the zstd-compressed dump
//	digest/<blake3>  ksuid of the entry holding those bytes
package archive

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/zeebo/blake3"

	"github.com/ssargent/statsdump/pkg/statsdump"
)

var (
	// ErrNotFound is returned for IDs with no archived dump
	ErrNotFound = errors.New("dump not found")

	// ErrInvalidID is returned for strings that are not KSUIDs
	ErrInvalidID = errors.New("invalid dump id")

	// ErrCorrupt indicates a stored entry that cannot be decoded or fails its digest check
	ErrCorrupt = errors.New("archive entry corrupt")
)

const (
	dumpPrefix   = "dump/"
	digestPrefix = "digest/"
)

// Archive is a pebble-backed dump store. It is safe for concurrent use.
type Archive struct {
	db *pebble.DB
	// mu serializes writers so the digest check and insert are atomic.
	mu  sync.Mutex
	now func() time.Time
}

// Open opens or creates an archive in dir
func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db, now: time.Now}, nil
}

// Close closes the underlying database
func (a *Archive) Close() error {
	return a.db.Close()
}

// Digest returns the hex BLAKE3-256 digest used to deduplicate raw.
func Digest(raw []byte) string {
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func dumpKey(id string) []byte {
	return []byte(dumpPrefix + id)
}

func digestKey(digest string) []byte {
	return []byte(digestPrefix + digest)
}

// get copies the value for key; pebble's slice is only valid until the closer runs.
func (a *Archive) get(key []byte) ([]byte, error) {
	data, closer, err := a.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put archives raw. rec supplies the listing metadata and may be nil. If the
// same bytes were archived before, the existing entry is returned with
// duplicate set and nothing is written.
func (a *Archive) Put(raw []byte, rec *statsdump.Record) (entry *Entry, duplicate bool, err error) {
	digest := Digest(raw)

	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.get(digestKey(digest))
	switch {
	case err == nil:
		dup, err := a.Get(string(existing))
		if err != nil {
			return nil, false, fmt.Errorf("failed to load duplicate %s: %w", existing, err)
		}
		return dup, true, nil
	case !errors.Is(err, ErrNotFound):
		return nil, false, fmt.Errorf("failed to check digest: %w", err)
	}

	e := &Entry{
		ID:         ksuid.New().String(),
		Digest:     digest,
		ReceivedAt: a.now().UTC(),
		Size:       len(raw),
		GameNumber: statsdump.Unparsed,
		MapName:    statsdump.UnparsedString,
		Payload:    compress(raw),
	}
	if rec != nil {
		e.GameNumber = rec.GameNumber
		e.MapName = rec.MapName
		e.Players = rec.PlayerNames()
	}

	data, err := encodeEntry(e)
	if err != nil {
		return nil, false, err
	}

	batch := a.db.NewBatch()
	defer batch.Close()
	if err := batch.Set(dumpKey(e.ID), data, nil); err != nil {
		return nil, false, fmt.Errorf("failed to stage entry: %w", err)
	}
	if err := batch.Set(digestKey(digest), []byte(e.ID), nil); err != nil {
		return nil, false, fmt.Errorf("failed to stage digest: %w", err)
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return nil, false, fmt.Errorf("failed to commit entry: %w", err)
	}

	e.Payload = nil
	return e, false, nil
}

func (a *Archive) load(id string) (*Entry, error) {
	if _, err := ksuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	data, err := a.get(dumpKey(id))
	if err != nil {
		return nil, err
	}
	return decodeEntry(data)
}

// Get returns the metadata of an archived dump
func (a *Archive) Get(id string) (*Entry, error) {
	e, err := a.load(id)
	if err != nil {
		return nil, err
	}
	e.Payload = nil
	return e, nil
}

// Raw returns the original dump bytes, verified against the stored digest
func (a *Archive) Raw(id string) ([]byte, error) {
	e, err := a.load(id)
	if err != nil {
		return nil, err
	}
	raw, err := decompress(e.Payload, e.Size)
	if err != nil {
		return nil, err
	}
	if Digest(raw) != e.Digest {
		return nil, fmt.Errorf("%w: digest mismatch for %s", ErrCorrupt, id)
	}
	return raw, nil
}

// List returns all entries, oldest first
func (a *Archive) List() ([]Entry, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(dumpPrefix),
		UpperBound: []byte("dump0"), // '0' follows '/'
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		e, err := decodeEntry(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", iter.Key(), err)
		}
		e.Payload = nil
		entries = append(entries, *e)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate archive: %w", err)
	}
	return entries, nil
}

// Delete removes an archived dump and its digest index
func (a *Archive) Delete(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.load(id)
	if err != nil {
		return err
	}

	batch := a.db.NewBatch()
	defer batch.Close()
	if err := batch.Delete(dumpKey(id), nil); err != nil {
		return fmt.Errorf("failed to stage delete: %w", err)
	}
	if err := batch.Delete(digestKey(e.Digest), nil); err != nil {
		return fmt.Errorf("failed to stage delete: %w", err)
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
