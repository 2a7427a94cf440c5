// Package events defines the ordered, immutable event records the engine
// emits for every resolved action. Collaborators (UI, replay, audit log)
// consume these instead of re-deriving state from engine internals.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies the type of a combat event.
type Kind string

const (
	KindAttackDeclared        Kind = "attack.declared"
	KindAttackResolved        Kind = "attack.resolved"
	KindHitLocationDetermined Kind = "attack.hit_location"
	KindDamageApplied         Kind = "damage.applied"
	KindCriticalHitResolved   Kind = "damage.critical"
	KindAmmoExploded          Kind = "damage.ammo_explosion"
	KindWeaponJammed          Kind = "weapon.jammed"
	KindPilotHit              Kind = "pilot.hit"
	KindPSRRequired           Kind = "psr.required"
	KindUnitDestroyed         Kind = "unit.destroyed"
)

// Payload is implemented by every event body.
type Payload interface {
	Kind() Kind
}

// Record is one entry in the event log. Records are append-only and never
// mutated after emission.
type Record struct {
	ID     string  `json:"id"`
	Seq    int     `json:"seq"`
	Unit   string  `json:"unit"`   // acting unit
	Target string  `json:"target"` // affected unit, if any
	Body   Payload `json:"body"`
}

// MarshalJSON includes the body's kind so consumers can decode the trail
// without type information.
func (r Record) MarshalJSON() ([]byte, error) {
	type alias Record
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{Kind: r.Body.Kind(), alias: alias(r)})
}

// Log is the ordered event list for one resolved action.
type Log struct {
	records []Record
}

// recordNamespace scopes the name-based record IDs.
var recordNamespace = uuid.MustParse("8f1c2a4e-0b7d-5e36-9a41-c3d8e7f60512")

// Append adds an event to the log, assigning id and sequence. IDs are
// name-based (v5) over the sequence, parties and kind, never random, so
// identical resolution runs emit identical records.
func (l *Log) Append(unitID, targetID string, body Payload) {
	seq := len(l.records) + 1
	name := fmt.Sprintf("%d/%s/%s/%s", seq, unitID, targetID, body.Kind())
	l.records = append(l.records, Record{
		ID:     uuid.NewSHA1(recordNamespace, []byte(name)).String(),
		Seq:    seq,
		Unit:   unitID,
		Target: targetID,
		Body:   body,
	})
}

// Records returns the emitted records in order. The returned slice is a
// copy; the log itself stays immutable to callers.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of emitted records.
func (l *Log) Len() int { return len(l.records) }

// ─── Payloads ───────────────────────────────────────────────────────────────

// AttackDeclared records an accepted attack declaration.
type AttackDeclared struct {
	WeaponKey  string `json:"weapon,omitempty"`
	Physical   string `json:"physical,omitempty"`
	AmmoSpent  int    `json:"ammoSpent,omitempty"`
	HeatLogged int    `json:"heatLogged,omitempty"`
	Shots      int    `json:"shots,omitempty"`
}

func (AttackDeclared) Kind() Kind { return KindAttackDeclared }

// AttackResolved records one to-hit roll against a target number.
type AttackResolved struct {
	WeaponKey string `json:"weapon,omitempty"`
	Target    int    `json:"target"`
	Roll      int    `json:"roll"`
	Hit       bool   `json:"hit"`
	Shot      int    `json:"shot,omitempty"` // 1-based for multi-shot weapons
	Hits      int    `json:"hits,omitempty"` // cluster hits, when applicable
}

func (AttackResolved) Kind() Kind { return KindAttackResolved }

// HitLocationDetermined records a hit-location roll.
type HitLocationDetermined struct {
	Roll     int    `json:"roll"`
	Location string `json:"location"`
	Arc      string `json:"arc"`
	TAC      bool   `json:"tac,omitempty"`
}

func (HitLocationDetermined) Kind() Kind { return KindHitLocationDetermined }

// DamageApplied records one damage application step. The amounts must sum
// to the incoming damage: armor + structure + transferred + discarded.
type DamageApplied struct {
	Location          string `json:"location"`
	Rear              bool   `json:"rear,omitempty"`
	Amount            int    `json:"amount"`
	ToArmor           int    `json:"toArmor"`
	ToStructure       int    `json:"toStructure"`
	Transferred       int    `json:"transferred,omitempty"`
	TransferTo        string `json:"transferTo,omitempty"`
	Discarded         int    `json:"discarded,omitempty"`
	LocationDestroyed bool   `json:"locationDestroyed,omitempty"`
}

func (DamageApplied) Kind() Kind { return KindDamageApplied }

// CriticalHitResolved records a critical-hit determination in a location.
type CriticalHitResolved struct {
	Location       string   `json:"location"`
	Roll           int      `json:"roll"`
	SlotsDestroyed []string `json:"slotsDestroyed,omitempty"`
	LimbBlownOff   bool     `json:"limbBlownOff,omitempty"`
	AmmoExplosion  bool     `json:"ammoExplosion,omitempty"`
}

func (CriticalHitResolved) Kind() Kind { return KindCriticalHitResolved }

// AmmoExploded records an ammunition explosion and the damage re-injected.
type AmmoExploded struct {
	Location string `json:"location"`
	AmmoKey  string `json:"ammoKey"`
	Damage   int    `json:"damage"`
	CASE     bool   `json:"case,omitempty"`
}

func (AmmoExploded) Kind() Kind { return KindAmmoExploded }

// WeaponJammed records an Ultra/Rotary jam.
type WeaponJammed struct {
	WeaponKey string `json:"weapon"`
	Shot      int    `json:"shot,omitempty"`
}

func (WeaponJammed) Kind() Kind { return KindWeaponJammed }

// PilotHit records a pilot wound and the consciousness target the
// pilot-state collaborator must roll against.
type PilotHit struct {
	Wounds              int `json:"wounds"`
	ConsciousnessTarget int `json:"consciousnessTarget"`
}

func (PilotHit) Kind() Kind { return KindPilotHit }

// PSRRequired queues a piloting-skill-roll requirement for the movement
// and stability subsystem.
type PSRRequired struct {
	Reason   string `json:"reason"`
	Modifier int    `json:"modifier"`
}

func (PSRRequired) Kind() Kind { return KindPSRRequired }

// UnitDestroyed records the destruction of a unit.
type UnitDestroyed struct {
	Reason string `json:"reason"`
}

func (UnitDestroyed) Kind() Kind { return KindUnitDestroyed }
