package tree

import (
	"math/big"
	"testing"

	"evogambit/internal/model"
)

func TestCatalogIDsGloballyUnique(t *testing.T) {
	catalog := NewCatalog()

	seen := make(map[string]model.PieceType)
	for _, pieceType := range model.PieceTypes {
		for _, ev := range catalog.Evolutions(pieceType) {
			if owner, dup := seen[ev.ID]; dup {
				t.Fatalf("id %s appears under both %s and %s", ev.ID, owner, pieceType)
			}
			seen[ev.ID] = pieceType
			if ev.PieceType != pieceType {
				t.Fatalf("id %s carries piece type %s under catalog %s", ev.ID, ev.PieceType, pieceType)
			}
		}
	}
	if len(seen) == 0 {
		t.Fatal("catalog is empty")
	}
}

func TestCatalogStructure(t *testing.T) {
	catalog := NewCatalog()

	for _, pieceType := range model.PieceTypes {
		evolutions := catalog.Evolutions(pieceType)
		if len(evolutions) == 0 {
			t.Fatalf("no evolutions for %s", pieceType)
		}
		for _, ev := range evolutions {
			if ev.Tier < 1 {
				t.Fatalf("%s: tier %d below 1", ev.ID, ev.Tier)
			}
			if ev.Tier == 1 && len(ev.Requires) != 0 {
				t.Fatalf("%s: tier-1 node declares requirements", ev.ID)
			}
			if ev.Tier > 1 && len(ev.Requires) == 0 {
				t.Fatalf("%s: tier %d node has no requirements", ev.ID, ev.Tier)
			}
			for _, required := range ev.Requires {
				parent, ok := catalog.Lookup(required)
				if !ok {
					t.Fatalf("%s requires unknown id %s", ev.ID, required)
				}
				if parent.PieceType != ev.PieceType {
					t.Fatalf("%s requires %s from another piece type", ev.ID, required)
				}
				if parent.Tier >= ev.Tier {
					t.Fatalf("%s (tier %d) requires %s (tier %d)", ev.ID, ev.Tier, required, parent.Tier)
				}
			}
			for kind := range ev.BaseCost {
				if ev.BaseCost[kind] < 0 {
					t.Fatalf("%s: negative base cost for %s", ev.ID, kind)
				}
			}
		}
	}
}

func TestNodesDeriveUnlockedLive(t *testing.T) {
	catalog := NewCatalog()

	nothing := func(string) bool { return false }
	nodes := catalog.Nodes(model.Pawn, nothing)
	byID := make(map[string]Node, len(nodes))
	for _, node := range nodes {
		byID[node.Evolution.ID] = node
	}

	if !byID["pawn_swift_advance"].Unlocked {
		t.Fatal("tier-1 nodes are unlocked by definition")
	}
	if byID["pawn_twin_step"].Unlocked {
		t.Fatal("tier-2 node unlocked without its requirement")
	}

	withRoot := func(id string) bool { return id == "pawn_swift_advance" }
	nodes = catalog.Nodes(model.Pawn, withRoot)
	for _, node := range nodes {
		if node.Evolution.ID == "pawn_twin_step" && !node.Unlocked {
			t.Fatal("tier-2 node should unlock once its requirement is met")
		}
		if node.Evolution.ID == "pawn_tempest_charge" && node.Unlocked {
			t.Fatal("tier-3 node must stay locked while its parent is locked")
		}
	}
}

func TestNodesChildrenAndPositions(t *testing.T) {
	catalog := NewCatalog()
	nodes := catalog.Nodes(model.Rook, func(string) bool { return false })

	for _, node := range nodes {
		if node.Position.Y != node.Evolution.Tier {
			t.Fatalf("%s: position row %d, tier %d", node.Evolution.ID, node.Position.Y, node.Evolution.Tier)
		}
		for _, child := range node.Children {
			childEv, ok := catalog.Lookup(child)
			if !ok {
				t.Fatalf("%s lists unknown child %s", node.Evolution.ID, child)
			}
			found := false
			for _, required := range childEv.Requires {
				if required == node.Evolution.ID {
					found = true
				}
			}
			if !found {
				t.Fatalf("%s lists %s as child but is not required by it", node.Evolution.ID, child)
			}
		}
	}
}

func TestStateSpaceDeterministicAndLarge(t *testing.T) {
	catalog := NewCatalog()

	first := catalog.StateSpace()
	second := catalog.StateSpace()
	if first.Cmp(second) != 0 {
		t.Fatalf("state space not deterministic: %s vs %s", first, second)
	}

	trillion := new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil)
	if first.Cmp(trillion) <= 0 {
		t.Fatalf("state space too small: %s", first)
	}
}
