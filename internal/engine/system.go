// Package engine orchestrates the piece evolution progression: it owns the
// live PieceEvolution instances, the discovered-combination ledger, the
// exact combination-space arithmetic and the serialize/deserialize protocol.
// It is the only component exposed to collaborators; they receive snapshots,
// never mutable references.
package engine

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"evogambit/internal/cost"
	"evogambit/internal/model"
	"evogambit/internal/piece"
	"evogambit/internal/tree"
)

// ErrChecksumMismatch signals a corrupt save payload. The load is rejected
// wholesale; nothing is applied. Persistence collaborators decide whether to
// retry, fall back or surface the condition.
var ErrChecksumMismatch = errors.New("save data checksum mismatch")

// synergyGrowthBase compounds the theoretical state space once per unordered
// pair of piece types, reflecting cross-piece synergies.
var synergyGrowthBase = big.NewInt(3)

const synergyLevelBonus = 0.05

// Config wires the system's collaborators. Nil fields get defaults.
type Config struct {
	Calculator *cost.Calculator
	Catalog    *tree.Catalog
}

// System is the progression engine of one play session. It is exclusively
// owned by the enclosing game-state controller and accessed from a single
// control flow; no locking is needed.
type System struct {
	calc    *cost.Calculator
	catalog *tree.Catalog

	pieces     map[model.PieceType]*piece.Evolution
	byID       map[string]*piece.Evolution
	combos     []model.CombinationRecord
	comboSeen  map[string]struct{}
	comboCount *big.Int
	unlocked   map[string]struct{}
}

// New constructs an empty system.
func New(cfg Config) *System {
	if cfg.Calculator == nil {
		cfg.Calculator = cost.NewCalculator(cost.DefaultConfig())
	}
	if cfg.Catalog == nil {
		cfg.Catalog = tree.NewCatalog()
	}
	s := &System{
		calc:    cfg.Calculator,
		catalog: cfg.Catalog,
	}
	s.reset()
	return s
}

func (s *System) reset() {
	s.pieces = make(map[model.PieceType]*piece.Evolution)
	s.byID = make(map[string]*piece.Evolution)
	s.combos = nil
	s.comboSeen = make(map[string]struct{})
	s.comboCount = big.NewInt(0)
	s.unlocked = make(map[string]struct{})
}

// Calculator exposes the pricing operations for the resource-ledger
// collaborator.
func (s *System) Calculator() *cost.Calculator { return s.calc }

// EvolvePiece upgrades one numeric attribute of the piece type by one level,
// lazily creating its live instance. A successful upgrade records the new
// global combination. Failure reports false with no state change.
func (s *System) EvolvePiece(pieceType model.PieceType, attribute string, c model.ResourceCost) bool {
	ev, created, ok := s.ensurePiece(pieceType)
	if !ok {
		return false
	}
	if !ev.UpgradeAttribute(attribute, 1, c) {
		s.discardCreated(pieceType, ev, created)
		return false
	}
	s.recordCombination()
	return true
}

// UnlockNode purchases a catalog evolution: it marks the node unlocked and
// applies its effects to the owning piece. The whole purchase is
// all-or-nothing; if any effect cannot apply, nothing changes.
func (s *System) UnlockNode(evolutionID string, c model.ResourceCost) bool {
	def, ok := s.catalog.Lookup(evolutionID)
	if !ok {
		return false
	}
	if _, already := s.unlocked[evolutionID]; already {
		return false
	}
	if !s.catalog.Satisfied(def, s.isUnlocked) {
		return false
	}
	ev, created, ok := s.ensurePiece(def.PieceType)
	if !ok {
		return false
	}
	if !effectsApplicable(ev, def.Effects) {
		s.discardCreated(def.PieceType, ev, created)
		return false
	}

	ev.Invest(c)
	for _, effect := range def.Effects {
		switch effect.Kind {
		case model.EffectAttribute:
			ev.UpgradeAttribute(effect.Target, int(effect.Amount), nil)
		case model.EffectAbility:
			ev.UnlockAbility(effect.Target)
		case model.EffectVisual:
			ev.AddVisualModification(model.VisualModification{
				ID:    uuid.NewString(),
				Slot:  effect.Target,
				Value: def.ID,
			})
		}
	}
	s.unlocked[evolutionID] = struct{}{}
	s.recordCombination()
	return true
}

// UnlockAbility grants an ability directly, bounded by the piece's slots.
func (s *System) UnlockAbility(pieceType model.PieceType, abilityID string) bool {
	ev, created, ok := s.ensurePiece(pieceType)
	if !ok {
		return false
	}
	if !ev.UnlockAbility(abilityID) {
		s.discardCreated(pieceType, ev, created)
		return false
	}
	return true
}

// AddTimeInvestment accumulates play time on an evolved piece.
func (s *System) AddTimeInvestment(pieceType model.PieceType, d time.Duration) bool {
	ev, _, ok := s.ensurePiece(pieceType)
	if !ok {
		return false
	}
	ev.AddTimeInvestment(d)
	return true
}

// CanAffordEvolution is a structural contract check only; the resource ledger
// collaborator owns real affordability.
func (s *System) CanAffordEvolution(ev model.Evolution) bool {
	if ev.ID == "" || !ev.PieceType.Valid() || ev.Tier < 1 {
		return false
	}
	for _, amount := range ev.BaseCost {
		if amount < 0 {
			return false
		}
	}
	return true
}

// Quote prices a catalog evolution at the given level.
func (s *System) Quote(evolutionID string, level int) (model.ResourceCost, bool) {
	def, ok := s.catalog.Lookup(evolutionID)
	if !ok {
		return nil, false
	}
	return s.calc.ScaledCost(def, level), true
}

// EvolutionTree projects one piece type's catalog with live unlock flags.
func (s *System) EvolutionTree(pieceType model.PieceType) []tree.Node {
	return s.catalog.Nodes(pieceType, s.isUnlocked)
}

// AllEvolutions snapshots every live instance in canonical piece order.
func (s *System) AllEvolutions() []model.PieceEvolutionRecord {
	out := make([]model.PieceEvolutionRecord, 0, len(s.pieces))
	for _, pieceType := range model.PieceTypes {
		if ev, ok := s.pieces[pieceType]; ok {
			out = append(out, ev.Snapshot())
		}
	}
	return out
}

// EvolutionsByPieceType snapshots the live instances for one piece type.
func (s *System) EvolutionsByPieceType(pieceType model.PieceType) []model.PieceEvolutionRecord {
	ev, ok := s.pieces[pieceType]
	if !ok {
		return nil
	}
	return []model.PieceEvolutionRecord{ev.Snapshot()}
}

// PieceEvolution snapshots one live instance by its identity id.
func (s *System) PieceEvolution(id string) (model.PieceEvolutionRecord, bool) {
	ev, ok := s.byID[id]
	if !ok {
		return model.PieceEvolutionRecord{}, false
	}
	return ev.Snapshot(), true
}

// DiscoveredCombinations copies the append-only combination ledger.
func (s *System) DiscoveredCombinations() []model.CombinationRecord {
	return append([]model.CombinationRecord(nil), s.combos...)
}

// CombinationCount returns the number of distinct combinations discovered so
// far, as an exact integer.
func (s *System) CombinationCount() *big.Int {
	return new(big.Int).Set(s.comboCount)
}

// CombinationSpace derives the theoretical size of the evolution state space:
// the catalog's requirement-closed unlock states compounded by a synergy
// factor per unordered pair of piece types. The value is exact and identical
// across calls against unchanged catalogs.
func (s *System) CombinationSpace() *big.Int {
	space := s.catalog.StateSpace()

	pairs := len(model.PieceTypes) * (len(model.PieceTypes) - 1) / 2
	synergy := new(big.Int).Exp(synergyGrowthBase, big.NewInt(int64(pairs)), nil)
	return space.Mul(space, synergy)
}

// UnlockedNodes returns the sorted unlocked catalog node ids.
func (s *System) UnlockedNodes() []string {
	out := make([]string, 0, len(s.unlocked))
	for id := range s.unlocked {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SynergyBonuses derives one bonus per unordered pair of evolved piece types.
// The multiplier grows with the weaker partner's level.
func (s *System) SynergyBonuses() []model.SynergyBonus {
	evolved := make([]model.PieceType, 0, len(s.pieces))
	for _, pieceType := range model.PieceTypes {
		if _, ok := s.pieces[pieceType]; ok {
			evolved = append(evolved, pieceType)
		}
	}

	var bonuses []model.SynergyBonus
	for i := 0; i < len(evolved); i++ {
		for j := i + 1; j < len(evolved); j++ {
			a := s.pieces[evolved[i]].Level()
			b := s.pieces[evolved[j]].Level()
			weaker := a
			if b < a {
				weaker = b
			}
			bonuses = append(bonuses, model.SynergyBonus{
				PieceTypes: []model.PieceType{evolved[i], evolved[j]},
				Multiplier: 1 + synergyLevelBonus*float64(weaker),
			})
		}
	}
	return bonuses
}

// ensurePiece resolves the live instance for a piece type, creating it on
// first use. The created flag lets a refused operation roll the creation back
// so failures leave no observable state.
func (s *System) ensurePiece(pieceType model.PieceType) (ev *piece.Evolution, created, ok bool) {
	if ev, ok := s.pieces[pieceType]; ok {
		return ev, false, true
	}
	ev, err := piece.New(pieceType, nil)
	if err != nil {
		return nil, false, false
	}
	s.pieces[pieceType] = ev
	s.byID[ev.ID()] = ev
	return ev, true, true
}

func (s *System) discardCreated(pieceType model.PieceType, ev *piece.Evolution, created bool) {
	if !created {
		return
	}
	delete(s.pieces, pieceType)
	delete(s.byID, ev.ID())
}

func (s *System) isUnlocked(evolutionID string) bool {
	_, ok := s.unlocked[evolutionID]
	return ok
}

// recordCombination hashes the current joint state of all live instances and
// appends a ledger record the first time that state is observed.
func (s *System) recordCombination() {
	parts := make([]string, 0, len(s.pieces))
	ids := make([]string, 0, len(s.pieces))
	totalPower := 0.0
	for _, pieceType := range model.PieceTypes {
		ev, ok := s.pieces[pieceType]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s@%d", ev.ID(), ev.Level()))
		ids = append(ids, ev.ID())
		totalPower += ev.PowerScore()
	}
	digest := sha1.Sum([]byte(strings.Join(parts, "|")))
	hash := hex.EncodeToString(digest[:])

	if _, seen := s.comboSeen[hash]; seen {
		return
	}
	s.comboSeen[hash] = struct{}{}
	s.combos = append(s.combos, model.CombinationRecord{
		ID:                uuid.NewString(),
		Hash:              hash,
		PieceEvolutionIDs: ids,
		TotalPower:        totalPower,
		DiscoveredAt:      time.Now().UnixMilli(),
	})
	s.comboCount.Add(s.comboCount, big.NewInt(1))
}

// effectsApplicable preflights a purchase so effect application never fails
// halfway through.
func effectsApplicable(ev *piece.Evolution, effects []model.Effect) bool {
	slots := 0
	if v, ok := ev.Attribute(piece.AttributeAbilitySlots); ok {
		slots = int(v)
	}
	free := slots - len(ev.Abilities())

	for _, effect := range effects {
		switch effect.Kind {
		case model.EffectAttribute:
			if _, ok := ev.Attribute(effect.Target); !ok {
				return false
			}
		case model.EffectAbility:
			for _, held := range ev.Abilities() {
				if held == effect.Target {
					return false
				}
			}
			free--
			if free < 0 {
				return false
			}
		}
	}
	return true
}
