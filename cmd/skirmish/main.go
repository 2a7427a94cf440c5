// Command skirmish runs a seeded two-unit duel to completion and writes a
// JSON replay. Identical seeds produce identical replays.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
	"github.com/SwiggitySwerve/mekstation/internal/combat"
	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/environment"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/physical"
	"github.com/SwiggitySwerve/mekstation/internal/replay"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

type config struct {
	Seed         uint64 `env:"SKIRMISH_SEED" envDefault:"42"`
	Attacker     string `env:"SKIRMISH_ATTACKER" envDefault:"testdata/attacker.yaml"`
	Defender     string `env:"SKIRMISH_DEFENDER" envDefault:"testdata/defender.yaml"`
	Board        string `env:"SKIRMISH_BOARD"`
	CatalogDB    string `env:"SKIRMISH_CATALOG_DB"`
	ReplayOut    string `env:"SKIRMISH_REPLAY_OUT" envDefault:"replay.json"`
	MaxTurns     int    `env:"SKIRMISH_MAX_TURNS" envDefault:"30"`
	HeatSinks    int    `env:"SKIRMISH_HEAT_SINKS" envDefault:"10"`
	Verbose      bool   `env:"SKIRMISH_VERBOSE"`
	Nat12AutoHit bool   `env:"SKIRMISH_NAT12_AUTO_HIT"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "skirmish:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cat, closeCat, err := openCatalog(cfg.CatalogDB)
	if err != nil {
		return err
	}
	defer closeCat()

	board, err := openBoard(cfg.Board)
	if err != nil {
		return err
	}

	attacker, err := buildUnit("attacker", cfg.Attacker, cat)
	if err != nil {
		return err
	}
	defender, err := buildUnit("defender", cfg.Defender, cat)
	if err != nil {
		return err
	}
	attacker.Pos = hexmap.Coord{Col: 2, Row: board.Height / 2}
	defender.Pos = hexmap.Coord{Col: board.Width - 1, Row: board.Height / 2}

	logger.Info("skirmish start",
		zap.Uint64("seed", cfg.Seed),
		zap.String("attacker", attacker.Name),
		zap.String("defender", defender.Name),
		zap.Int("board_width", board.Width),
		zap.Int("board_height", board.Height))

	s := &skirmish{
		log:     logger,
		roller:  dice.Seeded(cfg.Seed),
		board:   board,
		catalog: cat,
		env:     environment.Standard(),
		cfg:     cfg,
	}
	data := s.fight(attacker, defender)
	if err := data.WriteFile(cfg.ReplayOut); err != nil {
		return err
	}
	logger.Info("skirmish complete",
		zap.String("result", data.Result),
		zap.Int("turns", len(data.Turns)),
		zap.String("replay", cfg.ReplayOut))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openCatalog(path string) (catalog.Source, func(), error) {
	if path == "" {
		return catalog.Builtin(), func() {}, nil
	}
	store, err := catalog.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, func() { store.Close() }, nil
}

func openBoard(path string) (*hexmap.Board, error) {
	if path == "" {
		return hexmap.NewBoard(15, 17), nil
	}
	return hexmap.ParseBoard(path)
}

// ─── Unit construction ──────────────────────────────────────────────────────

var locationNames = map[string]unit.Location{
	"HD": unit.LocHD, "CT": unit.LocCT, "LT": unit.LocLT, "RT": unit.LocRT,
	"LA": unit.LocLA, "RA": unit.LocRA, "LL": unit.LocLL, "RL": unit.LocRL,
}

var meleeKinds = map[string]unit.MeleeWeaponKind{
	"hatchet": unit.MeleeHatchet,
	"sword":   unit.MeleeSword,
	"mace":    unit.MeleeMace,
}

func buildUnit(id, path string, cat catalog.Source) (*unit.Unit, error) {
	l, err := catalog.LoadLoadout(path)
	if err != nil {
		return nil, err
	}

	u := unit.New(id, l.Name, l.Tonnage)
	u.WalkMP = l.WalkMP
	u.RunMP = (l.WalkMP*3 + 1) / 2
	u.JumpMP = l.JumpMP
	u.Pilot.Gunnery = l.Gunnery
	u.Pilot.Piloting = l.Piloting
	u.HasAMS = l.AMS
	u.ECMActive = l.ECM
	u.TSMActive = l.TSM
	u.XLEngine = l.XLEngine
	if l.AMS {
		u.AMSAmmo = catalog.RoundsPerTon("AMS")
	}

	for name, pts := range l.Armor {
		loc, ok := locationNames[name]
		if !ok {
			return nil, fmt.Errorf("loadout %s: unknown location %q", path, name)
		}
		u.Armor[loc] = pts
	}
	for name, pts := range l.Rear {
		switch name {
		case "CT":
			u.RearArmor[0] = pts
		case "LT":
			u.RearArmor[1] = pts
		case "RT":
			u.RearArmor[2] = pts
		default:
			return nil, fmt.Errorf("loadout %s: rear armor on %q", path, name)
		}
	}

	// Standard actuator and system slots.
	u.Slots[unit.LocHD] = []string{"Life Support", "Sensors", "Cockpit"}
	u.Slots[unit.LocCT] = []string{"Engine", "Engine", "Gyro", "Gyro"}
	for _, loc := range []unit.Location{unit.LocLA, unit.LocRA} {
		u.Slots[loc] = []string{"Shoulder", "Upper Arm Actuator", "Lower Arm Actuator", "Hand Actuator"}
	}
	for _, loc := range []unit.Location{unit.LocLL, unit.LocRL} {
		u.Slots[loc] = []string{"Hip", "Upper Leg Actuator", "Lower Leg Actuator", "Foot Actuator"}
	}
	if l.XLEngine {
		u.Slots[unit.LocLT] = append(u.Slots[unit.LocLT], "Engine")
		u.Slots[unit.LocRT] = append(u.Slots[unit.LocRT], "Engine")
	}

	for i, lw := range l.Weapons {
		w, err := cat.Weapon(lw.Weapon)
		if err != nil {
			return nil, fmt.Errorf("loadout %s: %w", path, err)
		}
		loc, ok := locationNames[lw.Location]
		if !ok {
			return nil, fmt.Errorf("loadout %s: weapon %s in unknown location %q", path, lw.Weapon, lw.Location)
		}
		u.Weapons = append(u.Weapons, unit.Mount{
			ID:        fmt.Sprintf("w%d", i+1),
			WeaponKey: w.Key,
			Location:  loc,
			AmmoKey:   w.AmmoKey,
			Artemis:   lw.Artemis,
		})
		u.Slots[loc] = append(u.Slots[loc], w.Name)
		if w.NeedsAmmo() {
			tons := max(lw.AmmoTons, 1)
			u.Ammo[w.AmmoKey] += tons * catalog.RoundsPerTon(w.AmmoKey)
			u.Slots[loc] = append(u.Slots[loc], fmt.Sprintf("Ammo (%s)", w.AmmoKey))
		}
	}

	if l.Melee != "" {
		kind, ok := meleeKinds[strings.ToLower(l.Melee)]
		if !ok {
			return nil, fmt.Errorf("loadout %s: unknown melee weapon %q", path, l.Melee)
		}
		u.Melee = kind
		u.MeleeLocation = unit.LocRA
	}
	return u, nil
}

// ─── Turn loop ──────────────────────────────────────────────────────────────

type skirmish struct {
	log     *zap.Logger
	roller  dice.Roller
	board   *hexmap.Board
	catalog catalog.Source
	env     environment.Conditions
	cfg     config
}

func (s *skirmish) fight(a, b *unit.Unit) *replay.Data {
	data := replay.New(s.cfg.Seed, s.board, a, b)

	for turn := 1; turn <= s.cfg.MaxTurns; turn++ {
		log := &events.Log{}
		a.ResetTurn()
		b.ResetTurn()

		s.movementPhase(a, b)
		s.movementPhase(b, a)

		s.weaponPhase(log, a, b)
		if !b.Destroyed() {
			s.weaponPhase(log, b, a)
		}
		if !a.Destroyed() && !b.Destroyed() {
			s.physicalPhase(log, a, b)
		}
		if !a.Destroyed() && !b.Destroyed() {
			s.physicalPhase(log, b, a)
		}

		s.heatPhase(a)
		s.heatPhase(b)
		s.stabilityPhase(log, a)
		s.stabilityPhase(log, b)

		data.AddTurn(turn, a, b, log.Records())
		s.log.Debug("turn complete",
			zap.Int("turn", turn),
			zap.Int("attacker_heat", a.Heat),
			zap.Int("defender_heat", b.Heat))

		if a.Destroyed() || b.Destroyed() {
			break
		}
	}

	switch {
	case a.Destroyed() && b.Destroyed():
		data.Result = "mutual destruction"
	case b.Destroyed():
		data.Result = a.Name + " wins"
	case a.Destroyed():
		data.Result = b.Name + " wins"
	default:
		data.Result = "draw"
	}
	return data
}

// movementPhase walks a unit toward its opponent and faces it. Prone units
// spend the turn standing.
func (s *skirmish) movementPhase(u, enemy *unit.Unit) {
	if u.Destroyed() {
		return
	}
	if u.Prone {
		u.Prone = false
		u.Move = unit.MoveState{Mode: unit.MoveStationary}
		u.Facing = hexmap.BearingTo(u.Pos, enemy.Pos)
		return
	}

	mp := u.EffectiveWalkMP()
	moved := 0
	for moved < mp && hexmap.Distance(u.Pos, enemy.Pos) > 1 {
		next := hexmap.Neighbor(u.Pos, hexmap.BearingTo(u.Pos, enemy.Pos))
		if !s.board.InBounds(next) {
			break
		}
		u.Pos = next
		moved++
	}
	u.Facing = hexmap.BearingTo(u.Pos, enemy.Pos)
	if moved > 0 {
		u.Move = unit.MoveState{Mode: unit.MoveWalked, Hexes: moved}
	} else {
		u.Move = unit.MoveState{Mode: unit.MoveStationary}
	}
}

func (s *skirmish) weaponPhase(log *events.Log, att, tgt *unit.Unit) {
	if att.Destroyed() || att.Pilot.Unconscious {
		return
	}
	resolver := &combat.Resolver{
		Log:    log,
		Roller: s.roller,
		Config: combat.Config{Nat12AutoHit: s.cfg.Nat12AutoHit},
	}

	for i := range att.Weapons {
		m := &att.Weapons[i]
		w, err := s.catalog.Weapon(m.WeaponKey)
		if err != nil {
			s.log.Warn("unknown weapon in loadout", zap.String("key", m.WeaponKey))
			continue
		}
		d := combat.Declaration{
			AttackerID: att.ID,
			TargetID:   tgt.ID,
			WeaponID:   m.ID,
		}
		if w.Mode == catalog.ModeRotary {
			d.Shots = 2
		}

		if err := combat.Declare(log, d, att, tgt, w); err != nil {
			s.log.Debug("declaration rejected",
				zap.String("unit", att.ID),
				zap.String("weapon", w.Key),
				zap.Error(err))
			continue
		}

		th := combat.WeaponToHit(att, tgt, w, s.board, s.env)
		if th.Impossible() {
			continue
		}
		resolver.ResolveWeaponAttack(att, tgt, d, w, th)
		if tgt.Destroyed() {
			return
		}
	}
}

func (s *skirmish) physicalPhase(log *events.Log, att, tgt *unit.Unit) {
	if att.Destroyed() || att.Pilot.Unconscious || att.Prone {
		return
	}
	if hexmap.Distance(att.Pos, tgt.Pos) != 1 {
		return
	}

	resolver := &physical.Resolver{
		Log:        log,
		Roller:     s.roller,
		WaterDepth: s.board.At(tgt.Pos).WaterDepth(),
	}

	if att.Melee != unit.MeleeNone {
		if err := resolver.MeleeWeapon(att, tgt); err == nil {
			return
		}
	}
	if err := resolver.Kick(att, tgt, unit.LocRL); err == nil {
		return
	}
	if err := resolver.Punch(att, tgt, unit.LocRA); err != nil {
		if err := resolver.Punch(att, tgt, unit.LocLA); err != nil {
			s.log.Debug("no physical attack available", zap.String("unit", att.ID))
		}
	}
}

// heatPhase dissipates sink capacity and applies environmental heat.
func (s *skirmish) heatPhase(u *unit.Unit) {
	if u.Destroyed() {
		return
	}
	mods := environment.Resolve(s.env)
	u.Heat += mods.HeatPerTurn
	u.Heat -= s.cfg.HeatSinks
	if u.Heat < 0 {
		u.Heat = 0
	}
}

// stabilityPhase consumes queued PSR requirements, dropping the unit when
// a roll fails.
func (s *skirmish) stabilityPhase(log *events.Log, u *unit.Unit) {
	if u.Destroyed() || u.Prone {
		return
	}
	resolver := &physical.Resolver{
		Log:        log,
		Roller:     s.roller,
		WaterDepth: s.board.At(u.Pos).WaterDepth(),
	}
	for _, rec := range log.Records() {
		psr, ok := rec.Body.(events.PSRRequired)
		if !ok || rec.Unit != u.ID {
			continue
		}
		if _, made := physical.RollPSR(s.roller, u, psr.Modifier); !made {
			s.log.Debug("piloting roll failed",
				zap.String("unit", u.ID),
				zap.String("reason", psr.Reason))
			resolver.ResolveFall(u, 0)
			return
		}
	}
}
