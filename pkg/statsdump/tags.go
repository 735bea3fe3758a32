package statsdump

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ssargent/statsdump/pkg/codec"
)

// Codec identifies how a tag's payload is read.
type Codec int

const (
	CodecInt32 Codec = iota
	CodecUint32
	CodecPaddedByte
	CodecOnOff
	CodecString
	CodecShortString
	CodecFileTime
	CodecCrates
	CodecVehicles
	CodecInfantry
	CodecPlanes
	CodecVessels
	CodecBuildings
)

var codecNames = map[Codec]string{
	CodecInt32:       "int32",
	CodecUint32:      "uint32",
	CodecPaddedByte:  "byte",
	CodecOnOff:       "on/off",
	CodecString:      "string",
	CodecShortString: "short-string",
	CodecFileTime:    "filetime",
	CodecCrates:      "crates",
	CodecVehicles:    "vehicles",
	CodecInfantry:    "infantry",
	CodecPlanes:      "planes",
	CodecVessels:     "vessels",
	CodecBuildings:   "buildings",
}

func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Codec(%d)", int(c))
}

// value carries a decoded payload from a codec to a handler's store function.
type value struct {
	num    int64
	text   string
	toggle codec.Toggle
	time   time.Time
	tally  any
}

func (c Codec) decode(r *codec.Reader) (value, error) {
	var (
		v   value
		err error
	)
	switch c {
	case CodecInt32:
		var n int32
		n, err = r.Int32()
		v.num = int64(n)
	case CodecUint32:
		var n uint32
		n, err = r.Uint32()
		v.num = int64(n)
	case CodecPaddedByte:
		var b byte
		b, err = r.PaddedByte()
		v.num = int64(b)
	case CodecOnOff:
		v.toggle, err = r.OnOff()
	case CodecString:
		v.text, err = r.PrefixedString()
	case CodecShortString:
		v.text, err = r.ShortString()
	case CodecFileTime:
		v.time, err = r.FileTime()
	case CodecCrates:
		v.tally, err = decodeTally(r, CrateCounters)
	case CodecVehicles:
		v.tally, err = decodeTally(r, VehicleCounters)
	case CodecInfantry:
		v.tally, err = decodeTally(r, InfantryCounters)
	case CodecPlanes:
		v.tally, err = decodeTally(r, PlaneCounters)
	case CodecVessels:
		v.tally, err = decodeTally(r, VesselCounters)
	case CodecBuildings:
		v.tally, err = decodeTally(r, BuildingCounters)
	default:
		err = fmt.Errorf("unsupported codec %d", int(c))
	}
	return v, err
}

// SlotSource says where a handler takes its player slot from.
type SlotSource int

const (
	// SlotNone marks a match-wide field.
	SlotNone SlotSource = iota
	// SlotFromTag takes the player number from the tag's fourth character.
	SlotFromTag
	// SlotFromSide reuses the player of the most recent side tag.
	SlotFromSide
)

func (s SlotSource) String() string {
	switch s {
	case SlotNone:
		return "global"
	case SlotFromTag:
		return "player"
	case SlotFromSide:
		return "last-side"
	default:
		return fmt.Sprintf("SlotSource(%d)", int(s))
	}
}

// Handler describes how one tag's payload is consumed and where it is stored.
type Handler struct {
	// Field names the record field the payload lands in.
	Field string
	// Garbage is set when a meaningless word precedes the payload. Codecs that
	// carry their own leading word (on/off, short-string, filetime) leave it unset.
	Garbage bool
	Codec   Codec
	Slot    SlotSource
	// RecordsSide marks the handler whose player becomes the QUIT target.
	RecordsSide bool

	store func(rec *Record, slot int, v value)
}

// MatchKind is how a rule compares itself against a tag.
type MatchKind int

const (
	// MatchExact requires the tag to equal the rule's pattern.
	MatchExact MatchKind = iota
	// MatchContains requires the pattern to occur anywhere in the tag.
	MatchContains
)

func (m MatchKind) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "contains"
}

// Rule binds a tag or tag pattern to a handler.
type Rule struct {
	Pattern string
	Match   MatchKind
	// Except lists tags the pattern must not claim.
	Except  []string
	Handler Handler
}

// Matches reports whether the rule claims tag.
func (r *Rule) Matches(tag string) bool {
	if r.Match == MatchExact {
		return tag == r.Pattern
	}
	for _, e := range r.Except {
		if tag == e {
			return false
		}
	}
	return strings.Contains(tag, r.Pattern)
}

// Table dispatches tags to handlers. Exact rules are consulted first; pattern
// rules are then tried in order and the first match wins.
type Table struct {
	exact    map[string]*Rule
	patterns []*Rule
}

// NewTable builds a dispatch table. Exact tags must be unique, and so must patterns.
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{exact: make(map[string]*Rule)}
	seen := make(map[string]bool)
	for i := range rules {
		rule := rules[i]
		if len(rule.Pattern) == 0 || len(rule.Pattern) > codec.WordSize {
			return nil, fmt.Errorf("invalid tag pattern %q", rule.Pattern)
		}
		if rule.Handler.store == nil {
			return nil, fmt.Errorf("rule %q has no store function", rule.Pattern)
		}
		key := rule.Match.String() + ":" + rule.Pattern
		if seen[key] {
			return nil, fmt.Errorf("duplicate rule %q", rule.Pattern)
		}
		seen[key] = true

		if rule.Match == MatchExact {
			t.exact[rule.Pattern] = &rule
		} else {
			t.patterns = append(t.patterns, &rule)
		}
	}
	return t, nil
}

// Lookup returns the rule that handles tag.
func (t *Table) Lookup(tag string) (*Rule, bool) {
	if rule, ok := t.exact[tag]; ok {
		return rule, true
	}
	for _, rule := range t.patterns {
		if rule.Matches(tag) {
			return rule, true
		}
	}
	return nil, false
}

// Rules returns the table in precedence order: exact rules sorted by tag, then patterns.
func (t *Table) Rules() []Rule {
	rules := make([]Rule, 0, len(t.exact)+len(t.patterns))
	for _, rule := range t.exact {
		rules = append(rules, *rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Pattern < rules[j].Pattern })
	for _, rule := range t.patterns {
		rules = append(rules, *rule)
	}
	return rules
}

// PlayerNumber extracts the 1-based player number from a per-player tag.
func PlayerNumber(tag string) (int, error) {
	if len(tag) != codec.WordSize {
		return 0, fmt.Errorf("%w: malformed tag %q", ErrPlayerIndexOutOfRange, tag)
	}
	c := tag[3]
	if c < '1' || c > '0'+MaxPlayers {
		return 0, fmt.Errorf("%w: tag %q has player %q", ErrPlayerIndexOutOfRange, tag, c)
	}
	return int(c - '0'), nil
}

var defaultTable *Table

func init() {
	var err error
	defaultTable, err = NewTable(defaultRules())
	if err != nil {
		panic("statsdump: dispatch table initialization failed: " + err.Error())
	}
}

// DefaultTable returns the dispatch table for the final dump format.
func DefaultTable() *Table {
	return defaultTable
}

func exact(tag string, h Handler) Rule {
	return Rule{Pattern: tag, Match: MatchExact, Handler: h}
}

func contains(pattern string, h Handler, except ...string) Rule {
	return Rule{Pattern: pattern, Match: MatchContains, Except: except, Handler: h}
}

// Handler constructors. The garbage flag is explicit at each call site in defaultRules.

func globalInt(field string, garbage bool, c Codec, dst func(*Record) *int32) Handler {
	return Handler{Field: field, Garbage: garbage, Codec: c, store: func(rec *Record, _ int, v value) {
		*dst(rec) = int32(v.num)
	}}
}

func globalToggle(field string, dst func(*Record) *codec.Toggle) Handler {
	return Handler{Field: field, Codec: CodecOnOff, store: func(rec *Record, _ int, v value) {
		*dst(rec) = v.toggle
	}}
}

func globalText(field string, c Codec, dst func(*Record) *string) Handler {
	return Handler{Field: field, Codec: c, store: func(rec *Record, _ int, v value) {
		*dst(rec) = v.text
	}}
}

func globalTime(field string, dst func(*Record) **time.Time) Handler {
	return Handler{Field: field, Codec: CodecFileTime, store: func(rec *Record, _ int, v value) {
		ts := v.time
		*dst(rec) = &ts
	}}
}

func playerInt(field string, c Codec, dst func(*Record) *[MaxPlayers]int32) Handler {
	return Handler{Field: field, Garbage: true, Codec: c, Slot: SlotFromTag, store: func(rec *Record, slot int, v value) {
		dst(rec)[slot] = int32(v.num)
	}}
}

func playerText(field string, c Codec, dst func(*Record) *[MaxPlayers]string) Handler {
	return Handler{Field: field, Codec: c, Slot: SlotFromTag, store: func(rec *Record, slot int, v value) {
		dst(rec)[slot] = v.text
	}}
}

func playerTally[T any](field string, c Codec, dst func(*Record) *[MaxPlayers]*T) Handler {
	return Handler{Field: field, Garbage: true, Codec: c, Slot: SlotFromTag, store: func(rec *Record, slot int, v value) {
		dst(rec)[slot] = v.tally.(*T)
	}}
}

func defaultRules() []Rule {
	return []Rule{
		// Match-wide fields.
		exact("SDFX", globalInt("SDFX", true, CodecPaddedByte, func(r *Record) *int32 { return &r.SDFX })),
		exact("IDNO", globalInt("GameNumber", true, CodecInt32, func(r *Record) *int32 { return &r.GameNumber })),
		exact("NUMP", globalInt("NumberOfPlayers", true, CodecInt32, func(r *Record) *int32 { return &r.NumberOfPlayers })),
		exact("REMN", globalInt("NumberOfRemainingPlayers", true, CodecInt32, func(r *Record) *int32 { return &r.NumberOfRemainingPlayers })),
		exact("TRNY", globalInt("IsTournamentGame", true, CodecInt32, func(r *Record) *int32 { return &r.IsTournamentGame })),
		exact("CRED", globalInt("StartingCredits", true, CodecInt32, func(r *Record) *int32 { return &r.StartingCredits })),
		exact("BASE", globalToggle("BasesEnabled", func(r *Record) *codec.Toggle { return &r.BasesEnabled })),
		exact("TIBR", globalToggle("OreRegenerates", func(r *Record) *codec.Toggle { return &r.OreRegenerates })),
		exact("CRAT", globalToggle("CratesEnabled", func(r *Record) *codec.Toggle { return &r.CratesEnabled })),
		exact("AIPL", globalInt("NumberOfAIPlayers", true, CodecInt32, func(r *Record) *int32 { return &r.NumberOfAIPlayers })),
		exact("SHAD", globalToggle("ShroudRegrows", func(r *Record) *codec.Toggle { return &r.ShroudRegrows })),
		exact("FLAG", globalToggle("CaptureTheFlag", func(r *Record) *codec.Toggle { return &r.CaptureTheFlag })),
		exact("UNIT", globalInt("StartingUnits", true, CodecInt32, func(r *Record) *int32 { return &r.StartingUnits })),
		exact("TECH", globalInt("TechLevel", true, CodecInt32, func(r *Record) *int32 { return &r.TechLevel })),
		exact("SCEN", globalText("MapName", CodecString, func(r *Record) *string { return &r.MapName })),
		exact("ADR1", globalText("IPAddress1", CodecString, func(r *Record) *string { return &r.IPAddress1 })),
		exact("ADR2", globalText("IPAddress2", CodecString, func(r *Record) *string { return &r.IPAddress2 })),
		exact("PING", globalText("Ping", CodecString, func(r *Record) *string { return &r.Ping })),
		exact("CMPL", globalInt("CompletionType", true, CodecPaddedByte, func(r *Record) *int32 { return &r.CompletionType })),
		exact("TIME", globalInt("StartTime", true, CodecInt32, func(r *Record) *int32 { return &r.StartTime })),
		exact("DURA", globalInt("Duration", true, CodecInt32, func(r *Record) *int32 { return &r.Duration })),
		exact("AFPS", globalInt("AverageFPS", true, CodecInt32, func(r *Record) *int32 { return &r.AverageFPS })),
		exact("PROC", globalInt("ProcessorType", true, CodecPaddedByte, func(r *Record) *int32 { return &r.ProcessorType })),
		exact("MEMO", globalInt("SystemMemory", true, CodecInt32, func(r *Record) *int32 { return &r.SystemMemory })),
		exact("VIDM", globalInt("VideoMemory", true, CodecInt32, func(r *Record) *int32 { return &r.VideoMemory })),
		exact("SPED", globalInt("GameSpeed", true, CodecPaddedByte, func(r *Record) *int32 { return &r.GameSpeed })),
		exact("VERS", globalText("Version", CodecShortString, func(r *Record) *string { return &r.Version })),
		exact("DATE", globalTime("ExecutableDate", func(r *Record) **time.Time { return &r.ExecutableDate })),
		exact("QUIT", Handler{Field: "PlayerQuitState", Garbage: true, Codec: CodecInt32, Slot: SlotFromSide,
			store: func(rec *Record, slot int, v value) { rec.PlayerQuitState[slot] = int32(v.num) }}),

		// Per-player fields; the fourth character of the tag is the player number.
		contains("RSG", playerInt("PlayerResigned", CodecPaddedByte, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerResigned })),
		contains("CON", playerInt("PlayerConnectionLost", CodecPaddedByte, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerConnectionLost })),
		contains("SPA", playerInt("PlayerSpawnLocation", CodecInt32, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerSpawnLocation })),
		contains("NAM", playerText("PlayerName", CodecString, func(r *Record) *[MaxPlayers]string { return &r.PlayerName })),
		contains("COL", playerInt("PlayerColor", CodecPaddedByte, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerColor })),
		contains("ALY", Handler{Field: "PlayerAlliances", Garbage: true, Codec: CodecUint32, Slot: SlotFromTag,
			store: func(rec *Record, slot int, v value) { rec.PlayerAlliances[slot] = v.num }}),
		contains("SPC", playerInt("PlayerSpectator", CodecPaddedByte, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerSpectator })),
		contains("DED", playerInt("PlayerDead", CodecPaddedByte, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerDead })),
		contains("UNL", playerTally("VehiclesLeft", CodecVehicles, func(r *Record) *[MaxPlayers]*Vehicles { return &r.VehiclesLeft })),
		contains("UNB", playerTally("VehiclesBought", CodecVehicles, func(r *Record) *[MaxPlayers]*Vehicles { return &r.VehiclesBought })),
		contains("UNK", playerTally("VehiclesKilled", CodecVehicles, func(r *Record) *[MaxPlayers]*Vehicles { return &r.VehiclesKilled })),
		contains("INL", playerTally("InfantryLeft", CodecInfantry, func(r *Record) *[MaxPlayers]*Infantry { return &r.InfantryLeft })),
		contains("INB", playerTally("InfantryBought", CodecInfantry, func(r *Record) *[MaxPlayers]*Infantry { return &r.InfantryBought })),
		contains("INK", playerTally("InfantryKilled", CodecInfantry, func(r *Record) *[MaxPlayers]*Infantry { return &r.InfantryKilled })),
		contains("PLL", playerTally("PlanesLeft", CodecPlanes, func(r *Record) *[MaxPlayers]*Planes { return &r.PlanesLeft })),
		contains("PLB", playerTally("PlanesBought", CodecPlanes, func(r *Record) *[MaxPlayers]*Planes { return &r.PlanesBought })),
		contains("PLK", playerTally("PlanesKilled", CodecPlanes, func(r *Record) *[MaxPlayers]*Planes { return &r.PlanesKilled })),
		contains("VSL", playerTally("VesselsLeft", CodecVessels, func(r *Record) *[MaxPlayers]*Vessels { return &r.VesselsLeft })),
		contains("VSB", playerTally("VesselsBought", CodecVessels, func(r *Record) *[MaxPlayers]*Vessels { return &r.VesselsBought })),
		contains("VSK", playerTally("VesselsKilled", CodecVessels, func(r *Record) *[MaxPlayers]*Vessels { return &r.VesselsKilled })),
		contains("BLL", playerTally("BuildingsLeft", CodecBuildings, func(r *Record) *[MaxPlayers]*Buildings { return &r.BuildingsLeft })),
		contains("BLB", playerTally("BuildingsBought", CodecBuildings, func(r *Record) *[MaxPlayers]*Buildings { return &r.BuildingsBought })),
		contains("BLK", playerTally("BuildingsKilled", CodecBuildings, func(r *Record) *[MaxPlayers]*Buildings { return &r.BuildingsKilled })),
		contains("BLC", playerTally("BuildingsCaptured", CodecBuildings, func(r *Record) *[MaxPlayers]*Buildings { return &r.BuildingsCaptured })),
		contains("SID", Handler{Field: "PlayerSide", Codec: CodecShortString, Slot: SlotFromTag, RecordsSide: true,
			store: func(rec *Record, slot int, v value) { rec.PlayerSide[slot] = v.text }}),
		contains("HRV", playerInt("PlayerMoneyHarvested", CodecInt32, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerMoneyHarvested })),
		contains("CRA", playerTally("PlayerCratesCollected", CodecCrates, func(r *Record) *[MaxPlayers]*Crates { return &r.PlayerCratesCollected }), "CRAT"),
		contains("CRD", playerInt("PlayerCredits", CodecInt32, func(r *Record) *[MaxPlayers]int32 { return &r.PlayerCredits })),
	}
}
