package statsdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_WriteText(t *testing.T) {
	data := newDump().
		int32("IDNO", 42).
		str("SCEN", "Bridge Too Far").
		onOff("BASE", true).
		str("NAM2", "Natasha").
		int32("CRD2", 1500).
		tag("ALY2").garbage().word(0x0F).
		tally("UNB2", len(VehicleCounters), map[int]int32{0: 3, 11: 1}).
		tally("VSK2", len(VesselCounters), nil).
		tag("XXXX").
		bytes()

	rec, err := Decode(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rec.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "GameNumber = 42\n")
	assert.Contains(t, out, "Players = 2\n")
	assert.Contains(t, out, "MapName = Bridge Too Far\n")
	assert.Contains(t, out, "BasesEnabled = ON\n")
	assert.Contains(t, out, "Name for player 2 = Natasha\n")
	assert.Contains(t, out, "Credits for player 2 = 1500\n")
	assert.Contains(t, out, "Alliances for player 2 = 0x0000000f\n")
	assert.Contains(t, out, "Vehicles bought for player 2: MammothTank=3 MCV=1\n")
	assert.Contains(t, out, "Vessels killed for player 2: none\n")
	assert.Contains(t, out, "Unknown tag \"XXXX\" at offset")

	// Absent fields are omitted rather than printed as sentinels.
	assert.NotContains(t, out, UnparsedString)
	assert.NotContains(t, out, "= -1")
	assert.NotContains(t, out, "player 1")
	assert.NotContains(t, out, "OreRegenerates")
}

func TestRecord_WriteText_PlayersLine(t *testing.T) {
	data := newDump().
		int32("CRD5", 100).
		short("SID1", "USS").
		tally("CRA8", len(CrateCounters), nil).
		bytes()

	rec, err := Decode(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rec.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "Players = 1 5 8\n")
	assert.Contains(t, out, "Side for player 1 = USS\n")
	assert.Contains(t, out, "Credits for player 5 = 100\n")
	assert.Contains(t, out, "Crates collected for player 8: none\n")
	assert.NotContains(t, out, "player 2")
	assert.Less(t, strings.Index(out, "Players ="), strings.Index(out, "Side for player 1"))
}

func TestRecord_WriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRecord().WriteText(&buf))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
