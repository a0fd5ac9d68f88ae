package model

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
)

// CurrentSaveVersion tags save payloads produced by this build. Loaders are
// lenient about the version field; it exists for forward migrations.
const CurrentSaveVersion = "1.0.0"

// SaveData is the persistence contract shared with the cloud-sync
// collaborator. Field names are fixed; they must survive version-to-version
// round-trips.
type SaveData struct {
	Version           string                 `json:"version"`
	Evolutions        []PieceEvolutionRecord `json:"evolutions"`
	Combinations      []CombinationRecord    `json:"combinations"`
	UnlockedNodes     []string               `json:"unlockedNodes"`
	SynergyBonuses    []SynergyBonus         `json:"synergyBonuses"`
	TotalCombinations string                 `json:"totalCombinations"`
	Timestamp         int64                  `json:"timestamp"`
	Checksum          string                 `json:"checksum"`
}

// ComputeChecksum hashes every field except Checksum itself. The digest is an
// integrity signal for the persistence collaborator, not authentication.
func (s SaveData) ComputeChecksum() string {
	shadow := s
	shadow.Checksum = ""
	payload, err := json.Marshal(shadow)
	if err != nil {
		// Marshal of this shape cannot fail; keep the signature total anyway.
		return ""
	}
	digest := sha1.Sum(payload)
	return hex.EncodeToString(digest[:])
}

// VerifyChecksum reports whether the stored checksum matches the payload.
func (s SaveData) VerifyChecksum() bool {
	return s.Checksum == s.ComputeChecksum()
}

// Empty reports whether the payload carries no progression state. Empty
// payloads deserialize to a fresh system rather than failing.
func (s SaveData) Empty() bool {
	return len(s.Evolutions) == 0 &&
		len(s.Combinations) == 0 &&
		len(s.UnlockedNodes) == 0 &&
		(s.TotalCombinations == "" || s.TotalCombinations == "0")
}
