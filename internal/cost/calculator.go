// Package cost computes resource prices and multipliers for piece
// evolutions. Every operation is a pure function of its inputs: the
// calculator is queried for previews as often as for committed purchases, so
// malformed inputs clamp to sane values instead of failing.
package cost

import (
	"math"
	"time"

	"evogambit/internal/model"
)

// Config tunes the pricing model. Zero fields fall back to defaults so a
// partially specified config (for example one loaded from YAML) stays usable.
type Config struct {
	BaseMultiplier    float64                  `yaml:"base_multiplier"`
	RarityMultiplier  map[model.Rarity]float64 `yaml:"rarity_multiplier"`
	TierGrowthBase    float64                  `yaml:"tier_growth_base"`
	LevelExponent     float64                  `yaml:"level_exponent"`
	LevelMultiplier   float64                  `yaml:"level_multiplier"`
	BulkDiscountStep  float64                  `yaml:"bulk_discount_step"`
	BulkDiscountFloor float64                  `yaml:"bulk_discount_floor"`
	TimeDecayRate     float64                  `yaml:"time_decay_rate"`
	TimeDecayFloor    float64                  `yaml:"time_decay_floor"`
}

// DefaultConfig returns the shipped pricing constants.
func DefaultConfig() Config {
	return Config{
		BaseMultiplier: 1.0,
		RarityMultiplier: map[model.Rarity]float64{
			model.RarityCommon:    1.0,
			model.RarityUncommon:  1.5,
			model.RarityRare:      2.5,
			model.RarityEpic:      4.0,
			model.RarityLegendary: 7.0,
		},
		TierGrowthBase:    2.0,
		LevelExponent:     1.2,
		LevelMultiplier:   1.5,
		BulkDiscountStep:  0.05,
		BulkDiscountFloor: 0.5,
		TimeDecayRate:     0.95,
		TimeDecayFloor:    0.1,
	}
}

// Calculator prices evolutions. It holds no mutable state.
type Calculator struct {
	cfg Config
}

// NewCalculator builds a calculator, filling unset config fields from
// DefaultConfig.
func NewCalculator(cfg Config) *Calculator {
	defaults := DefaultConfig()
	if cfg.BaseMultiplier == 0 {
		cfg.BaseMultiplier = defaults.BaseMultiplier
	}
	if len(cfg.RarityMultiplier) == 0 {
		cfg.RarityMultiplier = defaults.RarityMultiplier
	}
	if cfg.TierGrowthBase == 0 {
		cfg.TierGrowthBase = defaults.TierGrowthBase
	}
	if cfg.LevelExponent == 0 {
		cfg.LevelExponent = defaults.LevelExponent
	}
	if cfg.LevelMultiplier == 0 {
		cfg.LevelMultiplier = defaults.LevelMultiplier
	}
	if cfg.BulkDiscountStep == 0 {
		cfg.BulkDiscountStep = defaults.BulkDiscountStep
	}
	if cfg.BulkDiscountFloor == 0 {
		cfg.BulkDiscountFloor = defaults.BulkDiscountFloor
	}
	if cfg.TimeDecayRate == 0 {
		cfg.TimeDecayRate = defaults.TimeDecayRate
	}
	if cfg.TimeDecayFloor == 0 {
		cfg.TimeDecayFloor = defaults.TimeDecayFloor
	}
	return &Calculator{cfg: cfg}
}

// BaseCost scales the evolution's base cost vector by rarity, tier growth and
// the global multiplier, flooring every entry. Resource kinds absent from the
// base cost stay absent.
func (c *Calculator) BaseCost(ev model.Evolution) model.ResourceCost {
	rarity, ok := c.cfg.RarityMultiplier[ev.Rarity]
	if !ok {
		rarity = 1.0
	}
	tier := ev.Tier
	if tier < 1 {
		tier = 1
	}
	scale := rarity * math.Pow(c.cfg.TierGrowthBase, float64(tier-1)) * c.cfg.BaseMultiplier

	out := make(model.ResourceCost, len(ev.BaseCost))
	for kind, amount := range ev.BaseCost {
		out[kind] = math.Floor(amount * scale)
	}
	return out
}

// ScaledCost applies level scaling on top of BaseCost. Levels below 1 clamp
// to 1 so the exponent term stays defined.
func (c *Calculator) ScaledCost(ev model.Evolution, level int) model.ResourceCost {
	if level < 1 {
		level = 1
	}
	scale := math.Pow(float64(level), c.cfg.LevelExponent) * c.cfg.LevelMultiplier

	out := c.BaseCost(ev)
	for kind, amount := range out {
		out[kind] = math.Floor(amount * scale)
	}
	return out
}

// BulkDiscount returns the multiplier for purchasing n evolutions in one
// batch. The list is positional; duplicates count. Batches of one or fewer
// get no discount.
func (c *Calculator) BulkDiscount(evolutions []model.Evolution) float64 {
	n := len(evolutions)
	if n <= 1 {
		return 1.0
	}
	discount := 1.0 - c.cfg.BulkDiscountStep*float64(n-1)
	return math.Max(c.cfg.BulkDiscountFloor, discount)
}

// TimeBonus converts elapsed play time into a cost multiplier that decays
// per hour down to the configured floor. Negative elapsed time clamps to
// zero, which yields exactly 1.0.
func (c *Calculator) TimeBonus(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	hours := elapsed.Hours()
	return math.Max(c.cfg.TimeDecayFloor, math.Pow(c.cfg.TimeDecayRate, hours))
}
