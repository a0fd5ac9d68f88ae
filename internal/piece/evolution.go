// Package piece holds the live, mutable progression state of one evolved
// piece type. Gameplay-path refusals (unknown attribute, exhausted ability
// slots) surface as boolean returns rather than errors so callers on the
// session's critical path never have to recover.
package piece

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"evogambit/internal/model"
)

// Overrides customizes base attributes at construction, for example when a
// game mode seeds a piece with a head start.
type Overrides struct {
	Attributes map[string]float64
	Traits     map[string]bool
}

// Evolution is the live upgrade state of one piece type. It is exclusively
// owned by the enclosing system; callers get snapshots, never references.
type Evolution struct {
	id           string
	pieceType    model.PieceType
	level        int
	attrs        map[string]float64
	traits       map[string]bool
	abilities    []string
	visualMods   []model.VisualModification
	investment   model.ResourceCost
	timeInvested time.Duration
	lastModified time.Time
}

// New constructs the live state for a piece type from its base attribute
// schema, merged with optional overrides.
func New(pieceType model.PieceType, overrides *Overrides) (*Evolution, error) {
	schema, ok := baseAttributes[pieceType]
	if !ok {
		return nil, fmt.Errorf("unknown piece type: %s", pieceType)
	}

	attrs := make(map[string]float64, len(schema.numeric))
	for name, value := range schema.numeric {
		attrs[name] = value
	}
	traits := make(map[string]bool, len(schema.traits))
	for name, value := range schema.traits {
		traits[name] = value
	}
	if overrides != nil {
		for name, value := range overrides.Attributes {
			attrs[name] = value
		}
		for name, value := range overrides.Traits {
			traits[name] = value
		}
	}

	return &Evolution{
		id:           uuid.NewString(),
		pieceType:    pieceType,
		level:        1,
		attrs:        attrs,
		traits:       traits,
		investment:   make(model.ResourceCost),
		lastModified: time.Now(),
	}, nil
}

// FromRecord rebuilds an instance from a serialized snapshot without
// replaying the original upgrade sequence. Missing collections degrade to
// empty ones.
func FromRecord(rec model.PieceEvolutionRecord) (*Evolution, error) {
	if !rec.PieceType.Valid() {
		return nil, fmt.Errorf("unknown piece type: %s", rec.PieceType)
	}

	ev := &Evolution{
		id:           rec.ID,
		pieceType:    rec.PieceType,
		level:        rec.EvolutionLevel,
		attrs:        make(map[string]float64, len(rec.Attributes)),
		traits:       make(map[string]bool, len(rec.Traits)),
		abilities:    append([]string(nil), rec.UnlockedAbilities...),
		visualMods:   append([]model.VisualModification(nil), rec.VisualModifications...),
		investment:   rec.TotalInvestment.Clone(),
		timeInvested: time.Duration(rec.TimeInvestedMs) * time.Millisecond,
		lastModified: time.UnixMilli(rec.LastModified),
	}
	if ev.id == "" {
		ev.id = uuid.NewString()
	}
	if ev.level < 1 {
		ev.level = 1
	}
	for name, value := range rec.Attributes {
		ev.attrs[name] = value
	}
	for name, value := range rec.Traits {
		ev.traits[name] = value
	}
	// The slot bound holds for rebuilt instances too; excess abilities in a
	// face-value payload are dropped, keeping unlock order.
	if slots := int(ev.attrs[AttributeAbilitySlots]); len(ev.abilities) > slots {
		if slots < 0 {
			slots = 0
		}
		ev.abilities = ev.abilities[:slots]
	}
	return ev, nil
}

// UpgradeAttribute increments a numeric attribute and the evolution level by
// delta, accumulating cost into the investment ledger. Boolean traits and
// unknown names are not upgradable; those attempts change nothing and return
// false.
func (e *Evolution) UpgradeAttribute(name string, delta int, c model.ResourceCost) bool {
	current, ok := e.attrs[name]
	if !ok {
		return false
	}
	e.attrs[name] = current + float64(delta)
	e.level += delta
	e.investment.Add(c)
	e.touch()
	return true
}

// Invest accumulates a spend into the investment ledger without touching
// attributes, for purchases whose effects are not attribute upgrades.
func (e *Evolution) Invest(c model.ResourceCost) {
	if len(c) == 0 {
		return
	}
	e.investment.Add(c)
	e.touch()
}

// AddTimeInvestment accumulates elapsed play time. Negative durations are
// ignored so the ledger stays monotonic.
func (e *Evolution) AddTimeInvestment(d time.Duration) {
	if d <= 0 {
		return
	}
	e.timeInvested += d
	e.touch()
}

// UnlockAbility appends an ability while slots remain. Re-unlocking an
// already held ability fails without state change.
func (e *Evolution) UnlockAbility(abilityID string) bool {
	slots := int(e.attrs[AttributeAbilitySlots])
	if len(e.abilities) >= slots {
		return false
	}
	for _, held := range e.abilities {
		if held == abilityID {
			return false
		}
	}
	e.abilities = append(e.abilities, abilityID)
	e.touch()
	return true
}

// AddVisualModification appends unconditionally; cosmetics are unbounded.
func (e *Evolution) AddVisualModification(mod model.VisualModification) {
	e.visualMods = append(e.visualMods, mod)
	e.touch()
}

// PowerScore combines weighted numeric attributes, unlocked abilities and the
// evolution level into one scalar. Positive weights keep the score
// non-decreasing under upgrades and unlocks.
func (e *Evolution) PowerScore() float64 {
	score := 0.0
	for name, value := range e.attrs {
		weight, ok := powerWeights[name]
		if !ok {
			weight = defaultAttributeWeight
		}
		score += weight * value
	}
	score += abilityPowerWeight * float64(len(e.abilities))
	score += levelPowerWeight * float64(e.level)
	return score
}

// StateHash fingerprints the piece type, attribute values, traits and the
// unlocked-ability set. Identical states hash identically regardless of
// unlock order; any state difference changes the digest.
func (e *Evolution) StateHash() string {
	parts := []string{"pt=" + string(e.pieceType)}

	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, "attr:"+name+"="+strconv.FormatFloat(e.attrs[name], 'g', -1, 64))
	}

	names = names[:0]
	for name := range e.traits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("trait:%s=%t", name, e.traits[name]))
	}

	abilities := append([]string(nil), e.abilities...)
	sort.Strings(abilities)
	for _, id := range abilities {
		parts = append(parts, "ab:"+id)
	}

	digest := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(digest[:])
}

// Snapshot copies the full state into a serializable record.
func (e *Evolution) Snapshot() model.PieceEvolutionRecord {
	attrs := make(map[string]float64, len(e.attrs))
	for name, value := range e.attrs {
		attrs[name] = value
	}
	traits := make(map[string]bool, len(e.traits))
	for name, value := range e.traits {
		traits[name] = value
	}
	return model.PieceEvolutionRecord{
		ID:                  e.id,
		PieceType:           e.pieceType,
		EvolutionLevel:      e.level,
		Attributes:          attrs,
		Traits:              traits,
		UnlockedAbilities:   append([]string(nil), e.abilities...),
		VisualModifications: append([]model.VisualModification(nil), e.visualMods...),
		TotalInvestment:     e.investment.Clone(),
		TimeInvestedMs:      e.timeInvested.Milliseconds(),
		LastModified:        e.lastModified.UnixMilli(),
	}
}

func (e *Evolution) ID() string                 { return e.id }
func (e *Evolution) PieceType() model.PieceType { return e.pieceType }
func (e *Evolution) Level() int                 { return e.level }
func (e *Evolution) TimeInvested() time.Duration {
	return e.timeInvested
}
func (e *Evolution) LastModified() time.Time { return e.lastModified }

// Attribute returns a numeric attribute value and whether it exists.
func (e *Evolution) Attribute(name string) (float64, bool) {
	value, ok := e.attrs[name]
	return value, ok
}

// Trait returns a boolean trait value and whether it exists.
func (e *Evolution) Trait(name string) (bool, bool) {
	value, ok := e.traits[name]
	return value, ok
}

// Abilities returns a copy of the unlocked-ability list in unlock order.
func (e *Evolution) Abilities() []string {
	return append([]string(nil), e.abilities...)
}

// Investment returns a copy of the cumulative spend ledger.
func (e *Evolution) Investment() model.ResourceCost {
	return e.investment.Clone()
}

func (e *Evolution) touch() {
	now := time.Now()
	if now.After(e.lastModified) {
		e.lastModified = now
	}
}
