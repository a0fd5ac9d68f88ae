package model

// PieceType identifies one of the six chess piece kinds.
type PieceType string

const (
	Pawn   PieceType = "pawn"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Rook   PieceType = "rook"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

// PieceTypes lists all piece kinds in canonical board order. Serialization
// and combination hashing iterate in this order so output is deterministic.
var PieceTypes = []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func (p PieceType) Valid() bool {
	switch p {
	case Pawn, Knight, Bishop, Rook, Queen, King:
		return true
	}
	return false
}

// Rarity is an ordered classification scaling cost and presumed power.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ResourceKind names one of the four progression currencies.
type ResourceKind string

const (
	TemporalEssence ResourceKind = "temporalEssence"
	MnemonicDust    ResourceKind = "mnemonicDust"
	AetherShards    ResourceKind = "aetherShards"
	ArcaneEnergy    ResourceKind = "arcaneEnergy"
)

// ResourceKinds lists the currencies in canonical order.
var ResourceKinds = []ResourceKind{TemporalEssence, MnemonicDust, AetherShards, ArcaneEnergy}

// ResourceCost maps resource kinds to non-negative amounts. Absent kinds are
// zero wherever costs are combined.
type ResourceCost map[ResourceKind]float64

// Clone returns an independent copy. A nil cost clones to an empty map.
func (c ResourceCost) Clone() ResourceCost {
	out := make(ResourceCost, len(c))
	for kind, amount := range c {
		out[kind] = amount
	}
	return out
}

// Add accumulates other into c per resource kind.
func (c ResourceCost) Add(other ResourceCost) {
	for kind, amount := range other {
		c[kind] += amount
	}
}

// EffectKind classifies what an evolution effect changes.
type EffectKind string

const (
	EffectAttribute EffectKind = "attribute"
	EffectAbility   EffectKind = "ability"
	EffectVisual    EffectKind = "visual"
)

// Effect is one consequence of purchasing an evolution: an attribute delta,
// an ability grant, or a visual modification.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Target string     `json:"target"`
	Amount float64    `json:"amount,omitempty"`
}

// Evolution is the immutable definition of one purchasable upgrade for a
// piece type. Definitions live in the static per-piece catalogs and are never
// mutated at runtime.
type Evolution struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	PieceType   PieceType    `json:"pieceType"`
	BaseCost    ResourceCost `json:"baseCost"`
	Effects     []Effect     `json:"effects,omitempty"`
	Requires    []string     `json:"requires,omitempty"`
	Tier        int          `json:"tier"`
	Rarity      Rarity       `json:"rarity"`
}

// VisualModification is a cosmetic change applied to an evolved piece.
type VisualModification struct {
	ID    string `json:"id"`
	Slot  string `json:"slot"`
	Value string `json:"value"`
}

// CombinationRecord captures one distinct observed joint state across all
// evolved piece types. Records are append-only; they are never mutated after
// discovery.
type CombinationRecord struct {
	ID                string   `json:"id"`
	Hash              string   `json:"hash"`
	PieceEvolutionIDs []string `json:"pieceEvolutionIds"`
	TotalPower        float64  `json:"totalPower"`
	DiscoveredAt      int64    `json:"discoveredAt"`
}

// SynergyBonus is a derived bonus for a pair of simultaneously evolved piece
// types. Bonuses are recomputed from live state, not stored.
type SynergyBonus struct {
	PieceTypes []PieceType `json:"pieceTypes"`
	Multiplier float64     `json:"multiplier"`
}

// PieceEvolutionRecord is the serialized snapshot of one live PieceEvolution.
type PieceEvolutionRecord struct {
	ID                  string               `json:"id"`
	PieceType           PieceType            `json:"pieceType"`
	EvolutionLevel      int                  `json:"evolutionLevel"`
	Attributes          map[string]float64   `json:"attributes"`
	Traits              map[string]bool      `json:"traits,omitempty"`
	UnlockedAbilities   []string             `json:"unlockedAbilities"`
	VisualModifications []VisualModification `json:"visualModifications,omitempty"`
	TotalInvestment     ResourceCost         `json:"totalInvestment"`
	TimeInvestedMs      int64                `json:"timeInvested"`
	LastModified        int64                `json:"lastModified"`
}
