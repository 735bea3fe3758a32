package statsdump

import (
	"time"

	"github.com/ssargent/statsdump/pkg/codec"
)

// MaxPlayers is the number of player slots in a dump.
const MaxPlayers = 8

// Sentinels for fields that were not present in the dump.
const (
	Unparsed       int32  = -1
	UnparsedString string = "UNPARSED"
)

// UnknownTag records a tag the decoder had no handler for.
type UnknownTag struct {
	Tag    string `json:"tag" yaml:"tag"`
	Offset int    `json:"offset" yaml:"offset"`
}

// Record is a decoded stats dump. Fields the dump did not carry keep their
// sentinel: -1, "UNPARSED", ToggleUnparsed, or nil.
//
// Per-player arrays are indexed by player number minus one.
type Record struct {
	DumpSize     int   `json:"dump_size" yaml:"dump_size"`
	ReportedSize int32 `json:"reported_size" yaml:"reported_size"`

	SDFX                     int32        `json:"sdfx" yaml:"sdfx"`
	GameNumber               int32        `json:"game_number" yaml:"game_number"`
	NumberOfPlayers          int32        `json:"number_of_players" yaml:"number_of_players"`
	NumberOfRemainingPlayers int32        `json:"number_of_remaining_players" yaml:"number_of_remaining_players"`
	IsTournamentGame         int32        `json:"is_tournament_game" yaml:"is_tournament_game"`
	StartingCredits          int32        `json:"starting_credits" yaml:"starting_credits"`
	BasesEnabled             codec.Toggle `json:"bases_enabled" yaml:"bases_enabled"`
	OreRegenerates           codec.Toggle `json:"ore_regenerates" yaml:"ore_regenerates"`
	CratesEnabled            codec.Toggle `json:"crates_enabled" yaml:"crates_enabled"`
	NumberOfAIPlayers        int32        `json:"number_of_ai_players" yaml:"number_of_ai_players"`
	ShroudRegrows            codec.Toggle `json:"shroud_regrows" yaml:"shroud_regrows"`
	CaptureTheFlag           codec.Toggle `json:"capture_the_flag" yaml:"capture_the_flag"`
	StartingUnits            int32        `json:"starting_units" yaml:"starting_units"`
	TechLevel                int32        `json:"tech_level" yaml:"tech_level"`
	MapName                  string       `json:"map_name" yaml:"map_name"`
	IPAddress1               string       `json:"ip_address_1" yaml:"ip_address_1"`
	IPAddress2               string       `json:"ip_address_2" yaml:"ip_address_2"`
	Ping                     string       `json:"ping" yaml:"ping"`
	CompletionType           int32        `json:"completion_type" yaml:"completion_type"`
	StartTime                int32        `json:"start_time" yaml:"start_time"`
	Duration                 int32        `json:"duration" yaml:"duration"`
	AverageFPS               int32        `json:"average_fps" yaml:"average_fps"`
	ProcessorType            int32        `json:"processor_type" yaml:"processor_type"`
	SystemMemory             int32        `json:"system_memory" yaml:"system_memory"`
	VideoMemory              int32        `json:"video_memory" yaml:"video_memory"`
	GameSpeed                int32        `json:"game_speed" yaml:"game_speed"`
	Version                  string       `json:"version" yaml:"version"`
	ExecutableDate           *time.Time   `json:"executable_date,omitempty" yaml:"executable_date,omitempty"`

	PlayerMoneyHarvested  [MaxPlayers]int32   `json:"player_money_harvested" yaml:"player_money_harvested"`
	PlayerCredits         [MaxPlayers]int32   `json:"player_credits" yaml:"player_credits"`
	PlayerQuitState       [MaxPlayers]int32   `json:"player_quit_state" yaml:"player_quit_state"`
	PlayerColor           [MaxPlayers]int32   `json:"player_color" yaml:"player_color"`
	PlayerAlliances       [MaxPlayers]int64   `json:"player_alliances" yaml:"player_alliances"`
	PlayerSpectator       [MaxPlayers]int32   `json:"player_spectator" yaml:"player_spectator"`
	PlayerDead            [MaxPlayers]int32   `json:"player_dead" yaml:"player_dead"`
	PlayerSpawnLocation   [MaxPlayers]int32   `json:"player_spawn_location" yaml:"player_spawn_location"`
	PlayerConnectionLost  [MaxPlayers]int32   `json:"player_connection_lost" yaml:"player_connection_lost"`
	PlayerResigned        [MaxPlayers]int32   `json:"player_resigned" yaml:"player_resigned"`
	PlayerSide            [MaxPlayers]string  `json:"player_side" yaml:"player_side"`
	PlayerName            [MaxPlayers]string  `json:"player_name" yaml:"player_name"`
	PlayerCratesCollected [MaxPlayers]*Crates `json:"player_crates_collected" yaml:"player_crates_collected"`

	VehiclesBought    [MaxPlayers]*Vehicles  `json:"vehicles_bought" yaml:"vehicles_bought"`
	VehiclesLeft      [MaxPlayers]*Vehicles  `json:"vehicles_left" yaml:"vehicles_left"`
	VehiclesKilled    [MaxPlayers]*Vehicles  `json:"vehicles_killed" yaml:"vehicles_killed"`
	InfantryBought    [MaxPlayers]*Infantry  `json:"infantry_bought" yaml:"infantry_bought"`
	InfantryLeft      [MaxPlayers]*Infantry  `json:"infantry_left" yaml:"infantry_left"`
	InfantryKilled    [MaxPlayers]*Infantry  `json:"infantry_killed" yaml:"infantry_killed"`
	PlanesBought      [MaxPlayers]*Planes    `json:"planes_bought" yaml:"planes_bought"`
	PlanesLeft        [MaxPlayers]*Planes    `json:"planes_left" yaml:"planes_left"`
	PlanesKilled      [MaxPlayers]*Planes    `json:"planes_killed" yaml:"planes_killed"`
	VesselsBought     [MaxPlayers]*Vessels   `json:"vessels_bought" yaml:"vessels_bought"`
	VesselsLeft       [MaxPlayers]*Vessels   `json:"vessels_left" yaml:"vessels_left"`
	VesselsKilled     [MaxPlayers]*Vessels   `json:"vessels_killed" yaml:"vessels_killed"`
	BuildingsBought   [MaxPlayers]*Buildings `json:"buildings_bought" yaml:"buildings_bought"`
	BuildingsLeft     [MaxPlayers]*Buildings `json:"buildings_left" yaml:"buildings_left"`
	BuildingsKilled   [MaxPlayers]*Buildings `json:"buildings_killed" yaml:"buildings_killed"`
	BuildingsCaptured [MaxPlayers]*Buildings `json:"buildings_captured" yaml:"buildings_captured"`

	UnknownTags []UnknownTag `json:"unknown_tags,omitempty" yaml:"unknown_tags,omitempty"`
}

// NewRecord returns a record with every field set to its sentinel.
func NewRecord() *Record {
	r := &Record{
		DumpSize:                 int(Unparsed),
		ReportedSize:             Unparsed,
		SDFX:                     Unparsed,
		GameNumber:               Unparsed,
		NumberOfPlayers:          Unparsed,
		NumberOfRemainingPlayers: Unparsed,
		IsTournamentGame:         Unparsed,
		StartingCredits:          Unparsed,
		BasesEnabled:             codec.ToggleUnparsed,
		OreRegenerates:           codec.ToggleUnparsed,
		CratesEnabled:            codec.ToggleUnparsed,
		NumberOfAIPlayers:        Unparsed,
		ShroudRegrows:            codec.ToggleUnparsed,
		CaptureTheFlag:           codec.ToggleUnparsed,
		StartingUnits:            Unparsed,
		TechLevel:                Unparsed,
		MapName:                  UnparsedString,
		IPAddress1:               UnparsedString,
		IPAddress2:               UnparsedString,
		Ping:                     UnparsedString,
		CompletionType:           Unparsed,
		StartTime:                Unparsed,
		Duration:                 Unparsed,
		AverageFPS:               Unparsed,
		ProcessorType:            Unparsed,
		SystemMemory:             Unparsed,
		VideoMemory:              Unparsed,
		GameSpeed:                Unparsed,
		Version:                  UnparsedString,
	}

	for _, a := range []*[MaxPlayers]int32{
		&r.PlayerMoneyHarvested,
		&r.PlayerCredits,
		&r.PlayerQuitState,
		&r.PlayerColor,
		&r.PlayerSpectator,
		&r.PlayerDead,
		&r.PlayerSpawnLocation,
		&r.PlayerConnectionLost,
		&r.PlayerResigned,
	} {
		for i := range a {
			a[i] = Unparsed
		}
	}
	for i := 0; i < MaxPlayers; i++ {
		r.PlayerAlliances[i] = int64(Unparsed)
		r.PlayerSide[i] = UnparsedString
		r.PlayerName[i] = UnparsedString
	}

	return r
}

// PlayerSeen reports whether any per-player field was decoded for the given
// 1-based player number.
func (r *Record) PlayerSeen(player int) bool {
	if player < 1 || player > MaxPlayers {
		return false
	}
	i := player - 1
	for _, v := range []int32{
		r.PlayerMoneyHarvested[i], r.PlayerCredits[i], r.PlayerQuitState[i], r.PlayerColor[i],
		r.PlayerSpectator[i], r.PlayerDead[i], r.PlayerSpawnLocation[i], r.PlayerConnectionLost[i],
		r.PlayerResigned[i],
	} {
		if v != Unparsed {
			return true
		}
	}
	return r.PlayerAlliances[i] != int64(Unparsed) ||
		r.PlayerSide[i] != UnparsedString ||
		r.PlayerName[i] != UnparsedString ||
		r.PlayerCratesCollected[i] != nil ||
		r.VehiclesBought[i] != nil || r.VehiclesLeft[i] != nil || r.VehiclesKilled[i] != nil ||
		r.InfantryBought[i] != nil || r.InfantryLeft[i] != nil || r.InfantryKilled[i] != nil ||
		r.PlanesBought[i] != nil || r.PlanesLeft[i] != nil || r.PlanesKilled[i] != nil ||
		r.VesselsBought[i] != nil || r.VesselsLeft[i] != nil || r.VesselsKilled[i] != nil ||
		r.BuildingsBought[i] != nil || r.BuildingsLeft[i] != nil || r.BuildingsKilled[i] != nil ||
		r.BuildingsCaptured[i] != nil
}

// PlayerNames returns the decoded names of all players that have one, in slot order.
func (r *Record) PlayerNames() []string {
	var names []string
	for _, n := range r.PlayerName {
		if n != UnparsedString {
			names = append(names, n)
		}
	}
	return names
}
