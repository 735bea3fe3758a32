package statsdump

import (
	"fmt"

	"github.com/ssargent/statsdump/pkg/codec"
)

// Counter binds one 32-bit tally counter to its field. A tally is decoded by
// reading one word per counter, in slice order, so the slices below are the
// wire layout of each tally record.
type Counter[T any] struct {
	Name  string
	Field func(*T) *int32
}

// CountValue is a named counter value, in wire order.
type CountValue struct {
	Name  string
	Value int32
}

// decodeTally reads len(counters) big-endian words into a new T.
func decodeTally[T any](r *codec.Reader, counters []Counter[T]) (*T, error) {
	t := new(T)
	for _, c := range counters {
		v, err := r.Int32()
		if err != nil {
			return nil, fmt.Errorf("counter %s: %w", c.Name, err)
		}
		*c.Field(t) = v
	}
	return t, nil
}

// tallyValues lists the counters of t in wire order. A nil tally yields nil.
func tallyValues[T any](t *T, counters []Counter[T]) []CountValue {
	if t == nil {
		return nil
	}
	values := make([]CountValue, len(counters))
	for i, c := range counters {
		values[i] = CountValue{Name: c.Name, Value: *c.Field(t)}
	}
	return values
}

// Crates counts the crates a player picked up, by crate effect.
type Crates struct {
	Money            int32 `json:"money" yaml:"money"`
	Unit             int32 `json:"unit" yaml:"unit"`
	Parabomb         int32 `json:"parabomb" yaml:"parabomb"`
	Heal             int32 `json:"heal" yaml:"heal"`
	Cloak            int32 `json:"cloak" yaml:"cloak"`
	Explosion        int32 `json:"explosion" yaml:"explosion"`
	Napalm           int32 `json:"napalm" yaml:"napalm"`
	Squad            int32 `json:"squad" yaml:"squad"`
	Reshroud         int32 `json:"reshroud" yaml:"reshroud"`
	Reveal           int32 `json:"reveal" yaml:"reveal"`
	SonarPulse       int32 `json:"sonar_pulse" yaml:"sonar_pulse"`
	ArmorUpgrade     int32 `json:"armor_upgrade" yaml:"armor_upgrade"`
	SpeedUpgrade     int32 `json:"speed_upgrade" yaml:"speed_upgrade"`
	FirepowerUpgrade int32 `json:"firepower_upgrade" yaml:"firepower_upgrade"`
	Nuke             int32 `json:"nuke" yaml:"nuke"`
	TimeQuake        int32 `json:"time_quake" yaml:"time_quake"`
	IronCurtain      int32 `json:"iron_curtain" yaml:"iron_curtain"`
	ChronoVortex     int32 `json:"chrono_vortex" yaml:"chrono_vortex"`
}

// Vehicles counts ground vehicles, in the engine's unit type order.
type Vehicles struct {
	MammothTank        int32 `json:"mammoth_tank" yaml:"mammoth_tank"`                 // 4TNK
	HeavyTank          int32 `json:"heavy_tank" yaml:"heavy_tank"`                     // 3TNK
	MediumTank         int32 `json:"medium_tank" yaml:"medium_tank"`                   // 2TNK
	LightTank          int32 `json:"light_tank" yaml:"light_tank"`                     // 1TNK
	APC                int32 `json:"apc" yaml:"apc"`                                   // APC
	MineLayer          int32 `json:"mine_layer" yaml:"mine_layer"`                     // MNLY
	Ranger             int32 `json:"ranger" yaml:"ranger"`                             // JEEP
	Harvester          int32 `json:"harvester" yaml:"harvester"`                       // HARV
	Artillery          int32 `json:"artillery" yaml:"artillery"`                       // ARTY
	RadarJammer        int32 `json:"radar_jammer" yaml:"radar_jammer"`                 // MRJ
	MobileGapGenerator int32 `json:"mobile_gap_generator" yaml:"mobile_gap_generator"` // MGG
	MCV                int32 `json:"mcv" yaml:"mcv"`                                   // MCV
	V2Launcher         int32 `json:"v2_launcher" yaml:"v2_launcher"`                   // V2RL
	SupplyTruck        int32 `json:"supply_truck" yaml:"supply_truck"`                 // TRUK
	WarriorAnt         int32 `json:"warrior_ant" yaml:"warrior_ant"`                   // ANT1
	FireAnt            int32 `json:"fire_ant" yaml:"fire_ant"`                         // ANT2
	ScoutAnt           int32 `json:"scout_ant" yaml:"scout_ant"`                       // ANT3
	ChronoTank         int32 `json:"chrono_tank" yaml:"chrono_tank"`                   // CTNK
	TeslaTank          int32 `json:"tesla_tank" yaml:"tesla_tank"`                     // TTNK
	MADTank            int32 `json:"mad_tank" yaml:"mad_tank"`                         // QTNK
	DemolitionTruck    int32 `json:"demolition_truck" yaml:"demolition_truck"`         // DTRK
	PhaseTransport     int32 `json:"phase_transport" yaml:"phase_transport"`           // STNK
}

// Infantry counts foot soldiers, civilians and special characters.
type Infantry struct {
	RifleInfantry int32 `json:"rifle_infantry" yaml:"rifle_infantry"` // E1
	Grenadier     int32 `json:"grenadier" yaml:"grenadier"`           // E2
	RocketSoldier int32 `json:"rocket_soldier" yaml:"rocket_soldier"` // E3
	Flamethrower  int32 `json:"flamethrower" yaml:"flamethrower"`     // E4
	Engineer      int32 `json:"engineer" yaml:"engineer"`             // E6
	Tanya         int32 `json:"tanya" yaml:"tanya"`                   // E7
	Spy           int32 `json:"spy" yaml:"spy"`                       // SPY
	Thief         int32 `json:"thief" yaml:"thief"`                   // THF
	Medic         int32 `json:"medic" yaml:"medic"`                   // MEDI
	FieldMarshal  int32 `json:"field_marshal" yaml:"field_marshal"`   // GNRL
	AttackDog     int32 `json:"attack_dog" yaml:"attack_dog"`         // DOG
	Civilian1     int32 `json:"civilian1" yaml:"civilian1"`           // C1
	Civilian2     int32 `json:"civilian2" yaml:"civilian2"`           // C2
	Civilian3     int32 `json:"civilian3" yaml:"civilian3"`           // C3
	Civilian4     int32 `json:"civilian4" yaml:"civilian4"`           // C4
	Civilian5     int32 `json:"civilian5" yaml:"civilian5"`           // C5
	Civilian6     int32 `json:"civilian6" yaml:"civilian6"`           // C6
	Civilian7     int32 `json:"civilian7" yaml:"civilian7"`           // C7
	Civilian8     int32 `json:"civilian8" yaml:"civilian8"`           // C8
	Civilian9     int32 `json:"civilian9" yaml:"civilian9"`           // C9
	Civilian10    int32 `json:"civilian10" yaml:"civilian10"`         // C10
	Einstein      int32 `json:"einstein" yaml:"einstein"`             // EINSTEIN
	Delphi        int32 `json:"delphi" yaml:"delphi"`                 // DELPHI
	DrChan        int32 `json:"dr_chan" yaml:"dr_chan"`               // CHAN
	ShockTrooper  int32 `json:"shock_trooper" yaml:"shock_trooper"`   // SHOK
	Mechanic      int32 `json:"mechanic" yaml:"mechanic"`             // MECH
}

// Planes counts aircraft, fixed wing and helicopters alike.
type Planes struct {
	Transport int32 `json:"transport" yaml:"transport"` // TRAN
	Badger    int32 `json:"badger" yaml:"badger"`       // BADR
	SpyPlane  int32 `json:"spy_plane" yaml:"spy_plane"` // U2
	MiG       int32 `json:"mig" yaml:"mig"`             // MIG
	Yak       int32 `json:"yak" yaml:"yak"`             // YAK
	Longbow   int32 `json:"longbow" yaml:"longbow"`     // HELI
	Hind      int32 `json:"hind" yaml:"hind"`           // HIND
}

// Vessels counts naval units.
type Vessels struct {
	Submarine  int32 `json:"submarine" yaml:"submarine"`     // SS
	Destroyer  int32 `json:"destroyer" yaml:"destroyer"`     // DD
	Cruiser    int32 `json:"cruiser" yaml:"cruiser"`         // CA
	Transport  int32 `json:"transport" yaml:"transport"`     // LST
	Gunboat    int32 `json:"gunboat" yaml:"gunboat"`         // PT
	MissileSub int32 `json:"missile_sub" yaml:"missile_sub"` // MSUB
}

// Buildings counts structures, including walls, mines, civilian
// buildings and the superweapons.
type Buildings struct {
	AdvancedTechCenter   int32 `json:"advanced_tech_center" yaml:"advanced_tech_center"`     // ATEK
	IronCurtain          int32 `json:"iron_curtain" yaml:"iron_curtain"`                     // IRON
	WarFactory           int32 `json:"war_factory" yaml:"war_factory"`                       // WEAP
	Chronosphere         int32 `json:"chronosphere" yaml:"chronosphere"`                     // PDOX
	Pillbox              int32 `json:"pillbox" yaml:"pillbox"`                               // PBOX
	CamoPillbox          int32 `json:"camo_pillbox" yaml:"camo_pillbox"`                     // HBOX
	RadarDome            int32 `json:"radar_dome" yaml:"radar_dome"`                         // DOME
	GapGenerator         int32 `json:"gap_generator" yaml:"gap_generator"`                   // GAP
	Turret               int32 `json:"turret" yaml:"turret"`                                 // GUN
	AAGun                int32 `json:"aa_gun" yaml:"aa_gun"`                                 // AGUN
	FlameTower           int32 `json:"flame_tower" yaml:"flame_tower"`                       // FTUR
	ConstructionYard     int32 `json:"construction_yard" yaml:"construction_yard"`           // FACT
	OreRefinery          int32 `json:"ore_refinery" yaml:"ore_refinery"`                     // PROC
	OreSilo              int32 `json:"ore_silo" yaml:"ore_silo"`                             // SILO
	Helipad              int32 `json:"helipad" yaml:"helipad"`                               // HPAD
	SAMSite              int32 `json:"sam_site" yaml:"sam_site"`                             // SAM
	Airfield             int32 `json:"airfield" yaml:"airfield"`                             // AFLD
	PowerPlant           int32 `json:"power_plant" yaml:"power_plant"`                       // POWR
	AdvancedPowerPlant   int32 `json:"advanced_power_plant" yaml:"advanced_power_plant"`     // APWR
	SovietTechCenter     int32 `json:"soviet_tech_center" yaml:"soviet_tech_center"`         // STEK
	Hospital             int32 `json:"hospital" yaml:"hospital"`                             // HOSP
	SovietBarracks       int32 `json:"soviet_barracks" yaml:"soviet_barracks"`               // BARR
	AlliedBarracks       int32 `json:"allied_barracks" yaml:"allied_barracks"`               // TENT
	Kennel               int32 `json:"kennel" yaml:"kennel"`                                 // KENN
	ServiceDepot         int32 `json:"service_depot" yaml:"service_depot"`                   // FIX
	BioResearch          int32 `json:"bio_research" yaml:"bio_research"`                     // BIO
	Mission              int32 `json:"mission" yaml:"mission"`                               // MISS
	Shipyard             int32 `json:"shipyard" yaml:"shipyard"`                             // SYRD
	SubPen               int32 `json:"sub_pen" yaml:"sub_pen"`                               // SPEN
	MissileSilo          int32 `json:"missile_silo" yaml:"missile_silo"`                     // MSLO
	ForwardCommand       int32 `json:"forward_command" yaml:"forward_command"`               // FCOM
	TeslaCoil            int32 `json:"tesla_coil" yaml:"tesla_coil"`                         // TSLA
	FakeWarFactory       int32 `json:"fake_war_factory" yaml:"fake_war_factory"`             // WEAF
	FakeConstructionYard int32 `json:"fake_construction_yard" yaml:"fake_construction_yard"` // FACF
	FakeShipyard         int32 `json:"fake_shipyard" yaml:"fake_shipyard"`                   // SYRF
	FakeSubPen           int32 `json:"fake_sub_pen" yaml:"fake_sub_pen"`                     // SPEF
	FakeRadarDome        int32 `json:"fake_radar_dome" yaml:"fake_radar_dome"`               // DOMF
	Sandbags             int32 `json:"sandbags" yaml:"sandbags"`                             // SBAG
	ChainLinkFence       int32 `json:"chain_link_fence" yaml:"chain_link_fence"`             // CYCL
	ConcreteWall         int32 `json:"concrete_wall" yaml:"concrete_wall"`                   // BRIK
	BarbedWire           int32 `json:"barbed_wire" yaml:"barbed_wire"`                       // BARB
	WoodFence            int32 `json:"wood_fence" yaml:"wood_fence"`                         // WOOD
	WireFence            int32 `json:"wire_fence" yaml:"wire_fence"`                         // FENC
	AntiTankMine         int32 `json:"anti_tank_mine" yaml:"anti_tank_mine"`                 // MINV
	AntiPersonnelMine    int32 `json:"anti_personnel_mine" yaml:"anti_personnel_mine"`       // MINP
	Village01            int32 `json:"village01" yaml:"village01"`                           // V01
	Village02            int32 `json:"village02" yaml:"village02"`                           // V02
	Village03            int32 `json:"village03" yaml:"village03"`                           // V03
	Village04            int32 `json:"village04" yaml:"village04"`                           // V04
	Village05            int32 `json:"village05" yaml:"village05"`                           // V05
	Village06            int32 `json:"village06" yaml:"village06"`                           // V06
	Village07            int32 `json:"village07" yaml:"village07"`                           // V07
	Village08            int32 `json:"village08" yaml:"village08"`                           // V08
	Village09            int32 `json:"village09" yaml:"village09"`                           // V09
	Village10            int32 `json:"village10" yaml:"village10"`                           // V10
	Village11            int32 `json:"village11" yaml:"village11"`                           // V11
	Village12            int32 `json:"village12" yaml:"village12"`                           // V12
	Village13            int32 `json:"village13" yaml:"village13"`                           // V13
	Village14            int32 `json:"village14" yaml:"village14"`                           // V14
	Village15            int32 `json:"village15" yaml:"village15"`                           // V15
	Village16            int32 `json:"village16" yaml:"village16"`                           // V16
	Village17            int32 `json:"village17" yaml:"village17"`                           // V17
	Village18            int32 `json:"village18" yaml:"village18"`                           // V18
	Village19            int32 `json:"village19" yaml:"village19"`                           // V19
	Village20            int32 `json:"village20" yaml:"village20"`                           // V20
	Village21            int32 `json:"village21" yaml:"village21"`                           // V21
	Village22            int32 `json:"village22" yaml:"village22"`                           // V22
	Village23            int32 `json:"village23" yaml:"village23"`                           // V23
	Village24            int32 `json:"village24" yaml:"village24"`                           // V24
	Village25            int32 `json:"village25" yaml:"village25"`                           // V25
	Village26            int32 `json:"village26" yaml:"village26"`                           // V26
	Village27            int32 `json:"village27" yaml:"village27"`                           // V27
	Village28            int32 `json:"village28" yaml:"village28"`                           // V28
	Village29            int32 `json:"village29" yaml:"village29"`                           // V29
	Village30            int32 `json:"village30" yaml:"village30"`                           // V30
	Village31            int32 `json:"village31" yaml:"village31"`                           // V31
	Village32            int32 `json:"village32" yaml:"village32"`                           // V32
	Village33            int32 `json:"village33" yaml:"village33"`                           // V33
	Village34            int32 `json:"village34" yaml:"village34"`                           // V34
	Village35            int32 `json:"village35" yaml:"village35"`                           // V35
	Village36            int32 `json:"village36" yaml:"village36"`                           // V36
	Village37            int32 `json:"village37" yaml:"village37"`                           // V37
	Barrel               int32 `json:"barrel" yaml:"barrel"`                                 // BARL
	BarrelGroup          int32 `json:"barrel_group" yaml:"barrel_group"`                     // BRL3
	AntQueen             int32 `json:"ant_queen" yaml:"ant_queen"`                           // QUEE
	Larva1               int32 `json:"larva1" yaml:"larva1"`                                 // LAR1
	Larva2               int32 `json:"larva2" yaml:"larva2"`                                 // LAR2
}

// CrateCounters is the wire order of Crates counters.
var CrateCounters = []Counter[Crates]{
	{"Money", func(t *Crates) *int32 { return &t.Money }},
	{"Unit", func(t *Crates) *int32 { return &t.Unit }},
	{"Parabomb", func(t *Crates) *int32 { return &t.Parabomb }},
	{"Heal", func(t *Crates) *int32 { return &t.Heal }},
	{"Cloak", func(t *Crates) *int32 { return &t.Cloak }},
	{"Explosion", func(t *Crates) *int32 { return &t.Explosion }},
	{"Napalm", func(t *Crates) *int32 { return &t.Napalm }},
	{"Squad", func(t *Crates) *int32 { return &t.Squad }},
	{"Reshroud", func(t *Crates) *int32 { return &t.Reshroud }},
	{"Reveal", func(t *Crates) *int32 { return &t.Reveal }},
	{"SonarPulse", func(t *Crates) *int32 { return &t.SonarPulse }},
	{"ArmorUpgrade", func(t *Crates) *int32 { return &t.ArmorUpgrade }},
	{"SpeedUpgrade", func(t *Crates) *int32 { return &t.SpeedUpgrade }},
	{"FirepowerUpgrade", func(t *Crates) *int32 { return &t.FirepowerUpgrade }},
	{"Nuke", func(t *Crates) *int32 { return &t.Nuke }},
	{"TimeQuake", func(t *Crates) *int32 { return &t.TimeQuake }},
	{"IronCurtain", func(t *Crates) *int32 { return &t.IronCurtain }},
	{"ChronoVortex", func(t *Crates) *int32 { return &t.ChronoVortex }},
}

// VehicleCounters is the wire order of Vehicles counters.
var VehicleCounters = []Counter[Vehicles]{
	{"MammothTank", func(t *Vehicles) *int32 { return &t.MammothTank }},
	{"HeavyTank", func(t *Vehicles) *int32 { return &t.HeavyTank }},
	{"MediumTank", func(t *Vehicles) *int32 { return &t.MediumTank }},
	{"LightTank", func(t *Vehicles) *int32 { return &t.LightTank }},
	{"APC", func(t *Vehicles) *int32 { return &t.APC }},
	{"MineLayer", func(t *Vehicles) *int32 { return &t.MineLayer }},
	{"Ranger", func(t *Vehicles) *int32 { return &t.Ranger }},
	{"Harvester", func(t *Vehicles) *int32 { return &t.Harvester }},
	{"Artillery", func(t *Vehicles) *int32 { return &t.Artillery }},
	{"RadarJammer", func(t *Vehicles) *int32 { return &t.RadarJammer }},
	{"MobileGapGenerator", func(t *Vehicles) *int32 { return &t.MobileGapGenerator }},
	{"MCV", func(t *Vehicles) *int32 { return &t.MCV }},
	{"V2Launcher", func(t *Vehicles) *int32 { return &t.V2Launcher }},
	{"SupplyTruck", func(t *Vehicles) *int32 { return &t.SupplyTruck }},
	{"WarriorAnt", func(t *Vehicles) *int32 { return &t.WarriorAnt }},
	{"FireAnt", func(t *Vehicles) *int32 { return &t.FireAnt }},
	{"ScoutAnt", func(t *Vehicles) *int32 { return &t.ScoutAnt }},
	{"ChronoTank", func(t *Vehicles) *int32 { return &t.ChronoTank }},
	{"TeslaTank", func(t *Vehicles) *int32 { return &t.TeslaTank }},
	{"MADTank", func(t *Vehicles) *int32 { return &t.MADTank }},
	{"DemolitionTruck", func(t *Vehicles) *int32 { return &t.DemolitionTruck }},
	{"PhaseTransport", func(t *Vehicles) *int32 { return &t.PhaseTransport }},
}

// InfantryCounters is the wire order of Infantry counters.
var InfantryCounters = []Counter[Infantry]{
	{"RifleInfantry", func(t *Infantry) *int32 { return &t.RifleInfantry }},
	{"Grenadier", func(t *Infantry) *int32 { return &t.Grenadier }},
	{"RocketSoldier", func(t *Infantry) *int32 { return &t.RocketSoldier }},
	{"Flamethrower", func(t *Infantry) *int32 { return &t.Flamethrower }},
	{"Engineer", func(t *Infantry) *int32 { return &t.Engineer }},
	{"Tanya", func(t *Infantry) *int32 { return &t.Tanya }},
	{"Spy", func(t *Infantry) *int32 { return &t.Spy }},
	{"Thief", func(t *Infantry) *int32 { return &t.Thief }},
	{"Medic", func(t *Infantry) *int32 { return &t.Medic }},
	{"FieldMarshal", func(t *Infantry) *int32 { return &t.FieldMarshal }},
	{"AttackDog", func(t *Infantry) *int32 { return &t.AttackDog }},
	{"Civilian1", func(t *Infantry) *int32 { return &t.Civilian1 }},
	{"Civilian2", func(t *Infantry) *int32 { return &t.Civilian2 }},
	{"Civilian3", func(t *Infantry) *int32 { return &t.Civilian3 }},
	{"Civilian4", func(t *Infantry) *int32 { return &t.Civilian4 }},
	{"Civilian5", func(t *Infantry) *int32 { return &t.Civilian5 }},
	{"Civilian6", func(t *Infantry) *int32 { return &t.Civilian6 }},
	{"Civilian7", func(t *Infantry) *int32 { return &t.Civilian7 }},
	{"Civilian8", func(t *Infantry) *int32 { return &t.Civilian8 }},
	{"Civilian9", func(t *Infantry) *int32 { return &t.Civilian9 }},
	{"Civilian10", func(t *Infantry) *int32 { return &t.Civilian10 }},
	{"Einstein", func(t *Infantry) *int32 { return &t.Einstein }},
	{"Delphi", func(t *Infantry) *int32 { return &t.Delphi }},
	{"DrChan", func(t *Infantry) *int32 { return &t.DrChan }},
	{"ShockTrooper", func(t *Infantry) *int32 { return &t.ShockTrooper }},
	{"Mechanic", func(t *Infantry) *int32 { return &t.Mechanic }},
}

// PlaneCounters is the wire order of Planes counters.
var PlaneCounters = []Counter[Planes]{
	{"Transport", func(t *Planes) *int32 { return &t.Transport }},
	{"Badger", func(t *Planes) *int32 { return &t.Badger }},
	{"SpyPlane", func(t *Planes) *int32 { return &t.SpyPlane }},
	{"MiG", func(t *Planes) *int32 { return &t.MiG }},
	{"Yak", func(t *Planes) *int32 { return &t.Yak }},
	{"Longbow", func(t *Planes) *int32 { return &t.Longbow }},
	{"Hind", func(t *Planes) *int32 { return &t.Hind }},
}

// VesselCounters is the wire order of Vessels counters.
var VesselCounters = []Counter[Vessels]{
	{"Submarine", func(t *Vessels) *int32 { return &t.Submarine }},
	{"Destroyer", func(t *Vessels) *int32 { return &t.Destroyer }},
	{"Cruiser", func(t *Vessels) *int32 { return &t.Cruiser }},
	{"Transport", func(t *Vessels) *int32 { return &t.Transport }},
	{"Gunboat", func(t *Vessels) *int32 { return &t.Gunboat }},
	{"MissileSub", func(t *Vessels) *int32 { return &t.MissileSub }},
}

// BuildingCounters is the wire order of Buildings counters.
var BuildingCounters = []Counter[Buildings]{
	{"AdvancedTechCenter", func(t *Buildings) *int32 { return &t.AdvancedTechCenter }},
	{"IronCurtain", func(t *Buildings) *int32 { return &t.IronCurtain }},
	{"WarFactory", func(t *Buildings) *int32 { return &t.WarFactory }},
	{"Chronosphere", func(t *Buildings) *int32 { return &t.Chronosphere }},
	{"Pillbox", func(t *Buildings) *int32 { return &t.Pillbox }},
	{"CamoPillbox", func(t *Buildings) *int32 { return &t.CamoPillbox }},
	{"RadarDome", func(t *Buildings) *int32 { return &t.RadarDome }},
	{"GapGenerator", func(t *Buildings) *int32 { return &t.GapGenerator }},
	{"Turret", func(t *Buildings) *int32 { return &t.Turret }},
	{"AAGun", func(t *Buildings) *int32 { return &t.AAGun }},
	{"FlameTower", func(t *Buildings) *int32 { return &t.FlameTower }},
	{"ConstructionYard", func(t *Buildings) *int32 { return &t.ConstructionYard }},
	{"OreRefinery", func(t *Buildings) *int32 { return &t.OreRefinery }},
	{"OreSilo", func(t *Buildings) *int32 { return &t.OreSilo }},
	{"Helipad", func(t *Buildings) *int32 { return &t.Helipad }},
	{"SAMSite", func(t *Buildings) *int32 { return &t.SAMSite }},
	{"Airfield", func(t *Buildings) *int32 { return &t.Airfield }},
	{"PowerPlant", func(t *Buildings) *int32 { return &t.PowerPlant }},
	{"AdvancedPowerPlant", func(t *Buildings) *int32 { return &t.AdvancedPowerPlant }},
	{"SovietTechCenter", func(t *Buildings) *int32 { return &t.SovietTechCenter }},
	{"Hospital", func(t *Buildings) *int32 { return &t.Hospital }},
	{"SovietBarracks", func(t *Buildings) *int32 { return &t.SovietBarracks }},
	{"AlliedBarracks", func(t *Buildings) *int32 { return &t.AlliedBarracks }},
	{"Kennel", func(t *Buildings) *int32 { return &t.Kennel }},
	{"ServiceDepot", func(t *Buildings) *int32 { return &t.ServiceDepot }},
	{"BioResearch", func(t *Buildings) *int32 { return &t.BioResearch }},
	{"Mission", func(t *Buildings) *int32 { return &t.Mission }},
	{"Shipyard", func(t *Buildings) *int32 { return &t.Shipyard }},
	{"SubPen", func(t *Buildings) *int32 { return &t.SubPen }},
	{"MissileSilo", func(t *Buildings) *int32 { return &t.MissileSilo }},
	{"ForwardCommand", func(t *Buildings) *int32 { return &t.ForwardCommand }},
	{"TeslaCoil", func(t *Buildings) *int32 { return &t.TeslaCoil }},
	{"FakeWarFactory", func(t *Buildings) *int32 { return &t.FakeWarFactory }},
	{"FakeConstructionYard", func(t *Buildings) *int32 { return &t.FakeConstructionYard }},
	{"FakeShipyard", func(t *Buildings) *int32 { return &t.FakeShipyard }},
	{"FakeSubPen", func(t *Buildings) *int32 { return &t.FakeSubPen }},
	{"FakeRadarDome", func(t *Buildings) *int32 { return &t.FakeRadarDome }},
	{"Sandbags", func(t *Buildings) *int32 { return &t.Sandbags }},
	{"ChainLinkFence", func(t *Buildings) *int32 { return &t.ChainLinkFence }},
	{"ConcreteWall", func(t *Buildings) *int32 { return &t.ConcreteWall }},
	{"BarbedWire", func(t *Buildings) *int32 { return &t.BarbedWire }},
	{"WoodFence", func(t *Buildings) *int32 { return &t.WoodFence }},
	{"WireFence", func(t *Buildings) *int32 { return &t.WireFence }},
	{"AntiTankMine", func(t *Buildings) *int32 { return &t.AntiTankMine }},
	{"AntiPersonnelMine", func(t *Buildings) *int32 { return &t.AntiPersonnelMine }},
	{"Village01", func(t *Buildings) *int32 { return &t.Village01 }},
	{"Village02", func(t *Buildings) *int32 { return &t.Village02 }},
	{"Village03", func(t *Buildings) *int32 { return &t.Village03 }},
	{"Village04", func(t *Buildings) *int32 { return &t.Village04 }},
	{"Village05", func(t *Buildings) *int32 { return &t.Village05 }},
	{"Village06", func(t *Buildings) *int32 { return &t.Village06 }},
	{"Village07", func(t *Buildings) *int32 { return &t.Village07 }},
	{"Village08", func(t *Buildings) *int32 { return &t.Village08 }},
	{"Village09", func(t *Buildings) *int32 { return &t.Village09 }},
	{"Village10", func(t *Buildings) *int32 { return &t.Village10 }},
	{"Village11", func(t *Buildings) *int32 { return &t.Village11 }},
	{"Village12", func(t *Buildings) *int32 { return &t.Village12 }},
	{"Village13", func(t *Buildings) *int32 { return &t.Village13 }},
	{"Village14", func(t *Buildings) *int32 { return &t.Village14 }},
	{"Village15", func(t *Buildings) *int32 { return &t.Village15 }},
	{"Village16", func(t *Buildings) *int32 { return &t.Village16 }},
	{"Village17", func(t *Buildings) *int32 { return &t.Village17 }},
	{"Village18", func(t *Buildings) *int32 { return &t.Village18 }},
	{"Village19", func(t *Buildings) *int32 { return &t.Village19 }},
	{"Village20", func(t *Buildings) *int32 { return &t.Village20 }},
	{"Village21", func(t *Buildings) *int32 { return &t.Village21 }},
	{"Village22", func(t *Buildings) *int32 { return &t.Village22 }},
	{"Village23", func(t *Buildings) *int32 { return &t.Village23 }},
	{"Village24", func(t *Buildings) *int32 { return &t.Village24 }},
	{"Village25", func(t *Buildings) *int32 { return &t.Village25 }},
	{"Village26", func(t *Buildings) *int32 { return &t.Village26 }},
	{"Village27", func(t *Buildings) *int32 { return &t.Village27 }},
	{"Village28", func(t *Buildings) *int32 { return &t.Village28 }},
	{"Village29", func(t *Buildings) *int32 { return &t.Village29 }},
	{"Village30", func(t *Buildings) *int32 { return &t.Village30 }},
	{"Village31", func(t *Buildings) *int32 { return &t.Village31 }},
	{"Village32", func(t *Buildings) *int32 { return &t.Village32 }},
	{"Village33", func(t *Buildings) *int32 { return &t.Village33 }},
	{"Village34", func(t *Buildings) *int32 { return &t.Village34 }},
	{"Village35", func(t *Buildings) *int32 { return &t.Village35 }},
	{"Village36", func(t *Buildings) *int32 { return &t.Village36 }},
	{"Village37", func(t *Buildings) *int32 { return &t.Village37 }},
	{"Barrel", func(t *Buildings) *int32 { return &t.Barrel }},
	{"BarrelGroup", func(t *Buildings) *int32 { return &t.BarrelGroup }},
	{"AntQueen", func(t *Buildings) *int32 { return &t.AntQueen }},
	{"Larva1", func(t *Buildings) *int32 { return &t.Larva1 }},
	{"Larva2", func(t *Buildings) *int32 { return &t.Larva2 }},
}

// Values returns the crate counters in wire order.
func (c *Crates) Values() []CountValue { return tallyValues(c, CrateCounters) }

// Values returns the vehicle counters in wire order.
func (v *Vehicles) Values() []CountValue { return tallyValues(v, VehicleCounters) }

// Values returns the infantry counters in wire order.
func (i *Infantry) Values() []CountValue { return tallyValues(i, InfantryCounters) }

// Values returns the aircraft counters in wire order.
func (p *Planes) Values() []CountValue { return tallyValues(p, PlaneCounters) }

// Values returns the vessel counters in wire order.
func (v *Vessels) Values() []CountValue { return tallyValues(v, VesselCounters) }

// Values returns the structure counters in wire order.
func (b *Buildings) Values() []CountValue { return tallyValues(b, BuildingCounters) }
