//go:build fuzz
// +build fuzz

package statsdump

import (
	"errors"
	"testing"
)

// FuzzDecode checks that arbitrary input yields a record or a classified error, never a panic
func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add(newDump().int32("IDNO", 42).bytes())
	f.Add(newDump().short("SID1", "USS").int32("QUIT", 1).bytes())
	f.Add(newDump().str("SCEN", "Map").tally("BLB1", len(BuildingCounters), nil).bytes())

	f.Fuzz(func(t *testing.T, data []byte) {
		rec, err := Decode(data)
		if err != nil {
			if rec != nil {
				t.Fatal("record returned alongside an error")
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("unclassified error: %v", err)
			}
			return
		}
		if rec.DumpSize != len(data) {
			t.Fatalf("dump size %d, want %d", rec.DumpSize, len(data))
		}
	})
}
