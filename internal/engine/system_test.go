package engine

import (
	"math/big"
	"testing"

	"evogambit/internal/model"
)

func TestEvolvePawnScenario(t *testing.T) {
	sys := New(Config{})

	if !sys.EvolvePiece(model.Pawn, "attackPower", model.ResourceCost{model.TemporalEssence: 10}) {
		t.Fatal("evolve should succeed")
	}

	records := sys.EvolutionsByPieceType(model.Pawn)
	if len(records) != 1 {
		t.Fatalf("expected one pawn evolution, got %d", len(records))
	}
	rec := records[0]
	if rec.Attributes["attackPower"] != 2 {
		t.Fatalf("attackPower: got %v, want 2", rec.Attributes["attackPower"])
	}
	if rec.EvolutionLevel != 2 {
		t.Fatalf("level: got %d, want 2", rec.EvolutionLevel)
	}
	if rec.TotalInvestment[model.TemporalEssence] != 10 {
		t.Fatalf("investment: got %v, want 10", rec.TotalInvestment[model.TemporalEssence])
	}
}

func TestEvolvePieceRefusals(t *testing.T) {
	sys := New(Config{})

	if sys.EvolvePiece(model.PieceType("wizard"), "attackPower", nil) {
		t.Fatal("unknown piece type must fail")
	}
	if sys.EvolvePiece(model.Pawn, "canEnPassant", nil) {
		t.Fatal("boolean trait must fail")
	}
	if sys.EvolvePiece(model.Pawn, "noSuchAttribute", nil) {
		t.Fatal("unknown attribute must fail")
	}
	// Refused upgrades roll back the lazily created instance and discover no
	// combination.
	if got := len(sys.AllEvolutions()); got != 0 {
		t.Fatalf("failed upgrades must leave no live instances, got %d", got)
	}
	if got := sys.CombinationCount(); got.Sign() != 0 {
		t.Fatalf("combination count after failures: %s", got)
	}
}

func TestFailedOperationsLeaveNoInstance(t *testing.T) {
	sys := New(Config{})

	if sys.UnlockNode("knight_double_vault", nil) {
		t.Fatal("tier-2 node must stay locked without its requirement")
	}
	sys.EvolvePiece(model.Knight, "noSuchAttribute", nil)
	if got := len(sys.EvolutionsByPieceType(model.Knight)); got != 0 {
		t.Fatalf("refusals must not register a knight instance, got %d", got)
	}

	// A failure against an already live instance keeps it live.
	sys.EvolvePiece(model.Knight, "leapRange", nil)
	sys.EvolvePiece(model.Knight, "noSuchAttribute", nil)
	if got := len(sys.EvolutionsByPieceType(model.Knight)); got != 1 {
		t.Fatalf("existing instance must survive a refusal, got %d", got)
	}
}

func TestEvolveDiscoversCombinations(t *testing.T) {
	sys := New(Config{})

	sys.EvolvePiece(model.Pawn, "attackPower", nil)
	sys.EvolvePiece(model.Knight, "defense", nil)
	sys.EvolvePiece(model.Pawn, "defense", nil)

	combos := sys.DiscoveredCombinations()
	if len(combos) != 3 {
		t.Fatalf("expected 3 discoveries, got %d", len(combos))
	}
	if sys.CombinationCount().Cmp(big.NewInt(3)) != 0 {
		t.Fatalf("combination count: %s", sys.CombinationCount())
	}

	seen := make(map[string]struct{})
	for _, combo := range combos {
		if combo.ID == "" || combo.Hash == "" {
			t.Fatalf("incomplete record: %+v", combo)
		}
		if _, dup := seen[combo.Hash]; dup {
			t.Fatalf("duplicate combination hash: %s", combo.Hash)
		}
		seen[combo.Hash] = struct{}{}
		if combo.TotalPower <= 0 {
			t.Fatalf("non-positive total power: %+v", combo)
		}
	}

	// Later discoveries span more pieces and higher levels, so power grows.
	if combos[1].TotalPower <= combos[0].TotalPower {
		t.Fatalf("power should grow with the second piece: %v then %v",
			combos[0].TotalPower, combos[1].TotalPower)
	}
}

func TestUnlockNodeFollowsRequirements(t *testing.T) {
	sys := New(Config{})

	if sys.UnlockNode("pawn_twin_step", nil) {
		t.Fatal("tier-2 node must stay locked without its requirement")
	}
	if !sys.UnlockNode("pawn_swift_advance", model.ResourceCost{model.TemporalEssence: 100}) {
		t.Fatal("tier-1 node should unlock")
	}
	if sys.UnlockNode("pawn_swift_advance", nil) {
		t.Fatal("re-unlocking must fail")
	}
	if !sys.UnlockNode("pawn_twin_step", model.ResourceCost{model.TemporalEssence: 220}) {
		t.Fatal("tier-2 node should unlock once its requirement is met")
	}

	nodes := sys.EvolutionTree(model.Pawn)
	for _, node := range nodes {
		if node.Evolution.ID == "pawn_tempest_charge" && !node.Unlocked {
			t.Fatal("tier-3 node should show as unlockable now")
		}
	}

	records := sys.EvolutionsByPieceType(model.Pawn)
	if len(records) != 1 {
		t.Fatalf("expected one pawn instance, got %d", len(records))
	}
	if got := records[0].Attributes["moveRange"]; got != 2 {
		t.Fatalf("swift advance should raise moveRange: got %v, want 2", got)
	}
	if got := records[0].UnlockedAbilities; len(got) != 1 || got[0] != "twin_advance" {
		t.Fatalf("twin step should grant twin_advance: %v", got)
	}
	// Both purchases charge the ledger, the ability-only node included.
	if got := records[0].TotalInvestment[model.TemporalEssence]; got != 320 {
		t.Fatalf("investment after both unlocks: got %v, want 320", got)
	}
}

func TestCanAffordEvolutionIsStructural(t *testing.T) {
	sys := New(Config{})

	valid := model.Evolution{ID: "x", PieceType: model.Pawn, Tier: 1}
	if !sys.CanAffordEvolution(valid) {
		t.Fatal("structurally valid evolution should pass")
	}
	if sys.CanAffordEvolution(model.Evolution{PieceType: model.Pawn, Tier: 1}) {
		t.Fatal("missing id must fail")
	}
	if sys.CanAffordEvolution(model.Evolution{ID: "x", PieceType: "wizard", Tier: 1}) {
		t.Fatal("invalid piece type must fail")
	}
	if sys.CanAffordEvolution(model.Evolution{ID: "x", PieceType: model.Pawn, Tier: 0}) {
		t.Fatal("tier below 1 must fail")
	}
	negative := model.Evolution{ID: "x", PieceType: model.Pawn, Tier: 1,
		BaseCost: model.ResourceCost{model.TemporalEssence: -5}}
	if sys.CanAffordEvolution(negative) {
		t.Fatal("negative cost must fail")
	}
}

func TestCombinationSpaceDeterministicAndVast(t *testing.T) {
	sys := New(Config{})

	first := sys.CombinationSpace()
	second := sys.CombinationSpace()
	if first.Cmp(second) != 0 {
		t.Fatalf("combination space not deterministic: %s vs %s", first, second)
	}

	trillion := new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil)
	if first.Cmp(trillion) <= 0 {
		t.Fatalf("combination space too small: %s", first)
	}

	// Session mutations must not change the theoretical space.
	sys.EvolvePiece(model.Queen, "dominance", nil)
	if got := sys.CombinationSpace(); got.Cmp(first) != 0 {
		t.Fatalf("space changed after evolve: %s vs %s", got, first)
	}
}

func TestSynergyBonuses(t *testing.T) {
	sys := New(Config{})

	if got := sys.SynergyBonuses(); len(got) != 0 {
		t.Fatalf("no synergies expected for empty system: %v", got)
	}

	sys.EvolvePiece(model.Pawn, "attackPower", nil)
	sys.EvolvePiece(model.Rook, "defense", nil)
	sys.EvolvePiece(model.Rook, "defense", nil)

	bonuses := sys.SynergyBonuses()
	if len(bonuses) != 1 {
		t.Fatalf("expected one pair bonus, got %v", bonuses)
	}
	// Pawn is level 2, rook level 3; the weaker level drives the bonus.
	if got, want := bonuses[0].Multiplier, 1+0.05*2; got != want {
		t.Fatalf("multiplier: got %v, want %v", got, want)
	}
}

func TestQuoteUsesCatalogAndCalculator(t *testing.T) {
	sys := New(Config{})

	quote, ok := sys.Quote("pawn_swift_advance", 1)
	if !ok {
		t.Fatal("quote should resolve catalog id")
	}
	// Common tier-1 with base 100 essence, level 1: floor(100 * 1.5).
	if got := quote[model.TemporalEssence]; got != 150 {
		t.Fatalf("quote: got %v, want 150", got)
	}
	if _, ok := sys.Quote("no_such_evolution", 1); ok {
		t.Fatal("unknown id must not quote")
	}
}

func TestPieceEvolutionLookupByID(t *testing.T) {
	sys := New(Config{})
	sys.EvolvePiece(model.Bishop, "diagonalReach", nil)

	rec := sys.AllEvolutions()[0]
	byID, ok := sys.PieceEvolution(rec.ID)
	if !ok {
		t.Fatalf("lookup by id %s failed", rec.ID)
	}
	if byID.PieceType != model.Bishop {
		t.Fatalf("unexpected piece type: %s", byID.PieceType)
	}
	if _, ok := sys.PieceEvolution("missing"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	sys := New(Config{})
	sys.EvolvePiece(model.Pawn, "attackPower", nil)

	rec := sys.AllEvolutions()[0]
	rec.Attributes["attackPower"] = 999
	rec.TotalInvestment[model.ArcaneEnergy] = 999

	fresh := sys.AllEvolutions()[0]
	if fresh.Attributes["attackPower"] == 999 {
		t.Fatal("snapshot mutation leaked into live state")
	}
	if fresh.TotalInvestment[model.ArcaneEnergy] == 999 {
		t.Fatal("investment mutation leaked into live state")
	}
}
