package engine

import (
	"math/big"
	"time"

	"evogambit/internal/model"
	"evogambit/internal/piece"
)

// Serialize snapshots the full progression state into the save-data contract.
// The combination counter is string-encoded because its magnitude can exceed
// the numeric range of the serialization format.
func (s *System) Serialize() model.SaveData {
	data := model.SaveData{
		Version:           model.CurrentSaveVersion,
		Evolutions:        s.AllEvolutions(),
		Combinations:      s.DiscoveredCombinations(),
		UnlockedNodes:     s.UnlockedNodes(),
		SynergyBonuses:    s.SynergyBonuses(),
		TotalCombinations: s.comboCount.String(),
		Timestamp:         time.Now().UnixMilli(),
	}
	data.Checksum = data.ComputeChecksum()
	return data
}

// Deserialize replaces the system state with the snapshot's. Loads are
// all-or-nothing: a checksum mismatch rejects the payload wholesale and the
// current state survives untouched. Structurally empty payloads degrade to a
// fresh system. Individual malformed records are skipped rather than fatal;
// the rest of the payload still applies.
func (s *System) Deserialize(data model.SaveData) error {
	if data.Checksum == "" && data.Empty() {
		s.reset()
		return nil
	}
	if data.Checksum != "" && !data.VerifyChecksum() {
		return ErrChecksumMismatch
	}

	pieces := make(map[model.PieceType]*piece.Evolution, len(data.Evolutions))
	byID := make(map[string]*piece.Evolution, len(data.Evolutions))
	for _, rec := range data.Evolutions {
		ev, err := piece.FromRecord(rec)
		if err != nil {
			continue
		}
		if _, dup := pieces[ev.PieceType()]; dup {
			continue
		}
		pieces[ev.PieceType()] = ev
		byID[ev.ID()] = ev
	}

	combos := append([]model.CombinationRecord(nil), data.Combinations...)
	comboSeen := make(map[string]struct{}, len(combos))
	for _, rec := range combos {
		comboSeen[rec.Hash] = struct{}{}
	}

	unlocked := make(map[string]struct{}, len(data.UnlockedNodes))
	for _, id := range data.UnlockedNodes {
		unlocked[id] = struct{}{}
	}

	count, ok := new(big.Int).SetString(data.TotalCombinations, 10)
	if !ok || count.Sign() < 0 {
		count = big.NewInt(int64(len(combos)))
	}

	s.pieces = pieces
	s.byID = byID
	s.combos = combos
	s.comboSeen = comboSeen
	s.comboCount = count
	s.unlocked = unlocked
	return nil
}
