package piece

import "evogambit/internal/model"

// AttributeAbilitySlots bounds how many abilities an instance may unlock.
const AttributeAbilitySlots = "abilitySlots"

// attributeSchema is the closed per-piece-type attribute bag: named numeric
// fields plus named boolean traits. Instances resolve it into fixed-shape
// maps at construction; only numeric fields are upgradable.
type attributeSchema struct {
	numeric map[string]float64
	traits  map[string]bool
}

var baseAttributes = map[model.PieceType]attributeSchema{
	model.Pawn: {
		numeric: map[string]float64{
			"moveRange":           1,
			"attackPower":         1,
			"defense":             1,
			"promotionDrive":      1,
			AttributeAbilitySlots: 2,
		},
		traits: map[string]bool{"canEnPassant": true},
	},
	model.Knight: {
		numeric: map[string]float64{
			"moveRange":           2,
			"attackPower":         3,
			"defense":             2,
			"leapRange":           2,
			AttributeAbilitySlots: 3,
		},
		traits: map[string]bool{"ignoresBlockers": true},
	},
	model.Bishop: {
		numeric: map[string]float64{
			"moveRange":           4,
			"attackPower":         3,
			"defense":             2,
			"diagonalReach":       4,
			AttributeAbilitySlots: 3,
		},
		traits: map[string]bool{"colorBound": true},
	},
	model.Rook: {
		numeric: map[string]float64{
			"moveRange":           4,
			"attackPower":         5,
			"defense":             4,
			"lineReach":           4,
			AttributeAbilitySlots: 3,
		},
		traits: map[string]bool{"canCastle": true},
	},
	model.Queen: {
		numeric: map[string]float64{
			"moveRange":           8,
			"attackPower":         9,
			"defense":             5,
			"dominance":           5,
			AttributeAbilitySlots: 4,
		},
		traits: map[string]bool{},
	},
	model.King: {
		numeric: map[string]float64{
			"moveRange":           1,
			"attackPower":         2,
			"defense":             8,
			"courtAura":           1,
			AttributeAbilitySlots: 2,
		},
		traits: map[string]bool{"canCastle": true},
	},
}

// powerWeights feed PowerScore. Every weight is positive so upgrades never
// lower the score.
var powerWeights = map[string]float64{
	"attackPower":         2.0,
	"defense":             1.5,
	"moveRange":           1.2,
	AttributeAbilitySlots: 3.0,
}

const (
	defaultAttributeWeight = 1.0
	abilityPowerWeight     = 5.0
	levelPowerWeight       = 2.0
)
