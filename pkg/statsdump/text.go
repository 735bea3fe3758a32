package statsdump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ssargent/statsdump/pkg/codec"
)

// scalarLine renders one match-wide field; ok is false while the field holds its sentinel.
type scalarLine struct {
	label string
	value func(*Record) (s string, ok bool)
}

func intLine(label string, get func(*Record) int32) scalarLine {
	return scalarLine{label, func(r *Record) (string, bool) {
		v := get(r)
		return strconv.Itoa(int(v)), v != Unparsed
	}}
}

func toggleLine(label string, get func(*Record) codec.Toggle) scalarLine {
	return scalarLine{label, func(r *Record) (string, bool) {
		v := get(r)
		return v.String(), v != codec.ToggleUnparsed
	}}
}

func textLine(label string, get func(*Record) string) scalarLine {
	return scalarLine{label, func(r *Record) (string, bool) {
		v := get(r)
		return v, v != UnparsedString
	}}
}

var scalarLines = []scalarLine{
	{"DumpSize", func(r *Record) (string, bool) { return strconv.Itoa(r.DumpSize), r.DumpSize != int(Unparsed) }},
	intLine("ReportedSize", func(r *Record) int32 { return r.ReportedSize }),
	intLine("SDFX", func(r *Record) int32 { return r.SDFX }),
	intLine("GameNumber", func(r *Record) int32 { return r.GameNumber }),
	intLine("NumberOfPlayers", func(r *Record) int32 { return r.NumberOfPlayers }),
	intLine("NumberOfRemainingPlayers", func(r *Record) int32 { return r.NumberOfRemainingPlayers }),
	intLine("IsTournamentGame", func(r *Record) int32 { return r.IsTournamentGame }),
	intLine("StartingCredits", func(r *Record) int32 { return r.StartingCredits }),
	toggleLine("BasesEnabled", func(r *Record) codec.Toggle { return r.BasesEnabled }),
	toggleLine("OreRegenerates", func(r *Record) codec.Toggle { return r.OreRegenerates }),
	toggleLine("CratesEnabled", func(r *Record) codec.Toggle { return r.CratesEnabled }),
	intLine("NumberOfAIPlayers", func(r *Record) int32 { return r.NumberOfAIPlayers }),
	toggleLine("ShroudRegrows", func(r *Record) codec.Toggle { return r.ShroudRegrows }),
	toggleLine("CaptureTheFlag", func(r *Record) codec.Toggle { return r.CaptureTheFlag }),
	intLine("StartingUnits", func(r *Record) int32 { return r.StartingUnits }),
	intLine("TechLevel", func(r *Record) int32 { return r.TechLevel }),
	textLine("MapName", func(r *Record) string { return r.MapName }),
	textLine("IPAddress1", func(r *Record) string { return r.IPAddress1 }),
	textLine("IPAddress2", func(r *Record) string { return r.IPAddress2 }),
	textLine("Ping", func(r *Record) string { return r.Ping }),
	intLine("CompletionType", func(r *Record) int32 { return r.CompletionType }),
	intLine("StartTime", func(r *Record) int32 { return r.StartTime }),
	intLine("Duration", func(r *Record) int32 { return r.Duration }),
	intLine("AverageFPS", func(r *Record) int32 { return r.AverageFPS }),
	intLine("ProcessorType", func(r *Record) int32 { return r.ProcessorType }),
	intLine("SystemMemory", func(r *Record) int32 { return r.SystemMemory }),
	intLine("VideoMemory", func(r *Record) int32 { return r.VideoMemory }),
	intLine("GameSpeed", func(r *Record) int32 { return r.GameSpeed }),
	textLine("Version", func(r *Record) string { return r.Version }),
	{"ExecutableDate", func(r *Record) (string, bool) {
		if r.ExecutableDate == nil {
			return "", false
		}
		return r.ExecutableDate.Format(time.RFC3339), true
	}},
}

// playerLine renders one per-player array; ok is false for sentinel slots.
type playerLine struct {
	label string
	value func(r *Record, slot int) (s string, ok bool)
}

func playerIntLine(label string, get func(*Record) *[MaxPlayers]int32) playerLine {
	return playerLine{label, func(r *Record, slot int) (string, bool) {
		v := get(r)[slot]
		return strconv.Itoa(int(v)), v != Unparsed
	}}
}

func playerTextLine(label string, get func(*Record) *[MaxPlayers]string) playerLine {
	return playerLine{label, func(r *Record, slot int) (string, bool) {
		v := get(r)[slot]
		return v, v != UnparsedString
	}}
}

var playerLines = []playerLine{
	playerTextLine("Name", func(r *Record) *[MaxPlayers]string { return &r.PlayerName }),
	playerTextLine("Side", func(r *Record) *[MaxPlayers]string { return &r.PlayerSide }),
	playerIntLine("Color", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerColor }),
	playerIntLine("Spawn location", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerSpawnLocation }),
	{"Alliances", func(r *Record, slot int) (string, bool) {
		v := r.PlayerAlliances[slot]
		return fmt.Sprintf("0x%08x", v), v != int64(Unparsed)
	}},
	playerIntLine("Spectator", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerSpectator }),
	playerIntLine("Money harvested", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerMoneyHarvested }),
	playerIntLine("Credits", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerCredits }),
	playerIntLine("Dead", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerDead }),
	playerIntLine("Resigned", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerResigned }),
	playerIntLine("Connection lost", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerConnectionLost }),
	playerIntLine("Quit state", func(r *Record) *[MaxPlayers]int32 { return &r.PlayerQuitState }),
}

// tallyLine renders one tally category; a nil slice means the slot was never decoded.
type tallyLine struct {
	label  string
	values func(r *Record, slot int) []CountValue
}

var tallyLines = []tallyLine{
	{"Crates collected", func(r *Record, i int) []CountValue { return r.PlayerCratesCollected[i].Values() }},
	{"Vehicles bought", func(r *Record, i int) []CountValue { return r.VehiclesBought[i].Values() }},
	{"Vehicles left", func(r *Record, i int) []CountValue { return r.VehiclesLeft[i].Values() }},
	{"Vehicles killed", func(r *Record, i int) []CountValue { return r.VehiclesKilled[i].Values() }},
	{"Infantry bought", func(r *Record, i int) []CountValue { return r.InfantryBought[i].Values() }},
	{"Infantry left", func(r *Record, i int) []CountValue { return r.InfantryLeft[i].Values() }},
	{"Infantry killed", func(r *Record, i int) []CountValue { return r.InfantryKilled[i].Values() }},
	{"Planes bought", func(r *Record, i int) []CountValue { return r.PlanesBought[i].Values() }},
	{"Planes left", func(r *Record, i int) []CountValue { return r.PlanesLeft[i].Values() }},
	{"Planes killed", func(r *Record, i int) []CountValue { return r.PlanesKilled[i].Values() }},
	{"Vessels bought", func(r *Record, i int) []CountValue { return r.VesselsBought[i].Values() }},
	{"Vessels left", func(r *Record, i int) []CountValue { return r.VesselsLeft[i].Values() }},
	{"Vessels killed", func(r *Record, i int) []CountValue { return r.VesselsKilled[i].Values() }},
	{"Buildings bought", func(r *Record, i int) []CountValue { return r.BuildingsBought[i].Values() }},
	{"Buildings left", func(r *Record, i int) []CountValue { return r.BuildingsLeft[i].Values() }},
	{"Buildings killed", func(r *Record, i int) []CountValue { return r.BuildingsKilled[i].Values() }},
	{"Buildings captured", func(r *Record, i int) []CountValue { return r.BuildingsCaptured[i].Values() }},
}

// WriteText writes every decoded field as "Name = value" lines. Sentinel values
// are omitted, per-player lines cover only the players listed on the
// "Players" line, and tallies list only their non-zero counters.
func (r *Record) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, line := range scalarLines {
		if s, ok := line.value(r); ok {
			fmt.Fprintf(bw, "%s = %s\n", line.label, s)
		}
	}

	var seen []int
	for slot := 0; slot < MaxPlayers; slot++ {
		if r.PlayerSeen(slot + 1) {
			seen = append(seen, slot)
		}
	}
	if len(seen) > 0 {
		fmt.Fprint(bw, "Players =")
		for _, slot := range seen {
			fmt.Fprintf(bw, " %d", slot+1)
		}
		fmt.Fprintln(bw)
	}

	for _, line := range playerLines {
		for _, slot := range seen {
			if s, ok := line.value(r, slot); ok {
				fmt.Fprintf(bw, "%s for player %d = %s\n", line.label, slot+1, s)
			}
		}
	}

	for _, line := range tallyLines {
		for _, slot := range seen {
			values := line.values(r, slot)
			if values == nil {
				continue
			}
			fmt.Fprintf(bw, "%s for player %d:", line.label, slot+1)
			n := 0
			for _, v := range values {
				if v.Value != 0 {
					fmt.Fprintf(bw, " %s=%d", v.Name, v.Value)
					n++
				}
			}
			if n == 0 {
				fmt.Fprint(bw, " none")
			}
			fmt.Fprintln(bw)
		}
	}

	for _, u := range r.UnknownTags {
		fmt.Fprintf(bw, "Unknown tag %q at offset %d\n", u.Tag, u.Offset)
	}

	return bw.Flush()
}
