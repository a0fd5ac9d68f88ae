package evogambit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"evogambit/internal/model"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(Options{StoreKind: "memory"})
	require.NoError(t, err)
	require.NoError(t, client.Init(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClientSaveLoadCycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.True(t, client.EvolvePiece(model.Pawn, "attackPower", model.ResourceCost{model.TemporalEssence: 10}))
	require.True(t, client.UnlockNode("pawn_swift_advance", model.ResourceCost{model.TemporalEssence: 100}))

	saved, err := client.Save(ctx, "default")
	require.NoError(t, err)
	require.True(t, saved.VerifyChecksum())

	// Mutate further, then load the slot: the in-between progress is gone.
	require.True(t, client.EvolvePiece(model.Queen, "dominance", nil))
	require.NoError(t, client.Load(ctx, "default"))

	records := client.AllEvolutions()
	require.Len(t, records, 1)
	require.Equal(t, model.Pawn, records[0].PieceType)
	require.Equal(t, float64(2), records[0].Attributes["attackPower"])
	require.Equal(t, []string{"pawn_swift_advance"}, client.Serialize().UnlockedNodes)
}

func TestClientLoadMissingSlotResets(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.True(t, client.EvolvePiece(model.Rook, "defense", nil))
	require.NoError(t, client.Load(ctx, "never-saved"))
	require.Empty(t, client.AllEvolutions())
	require.Zero(t, client.CombinationCount().Sign())
}

func TestClientSlotsAndReset(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	client.EvolvePiece(model.Knight, "leapRange", nil)
	_, err := client.Save(ctx, "campaign")
	require.NoError(t, err)

	slots, err := client.Slots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, "campaign", slots[0].Slot)
	require.Equal(t, model.CurrentSaveVersion, slots[0].Version)

	require.NoError(t, client.Reset(ctx, "campaign"))
	slots, err = client.Slots(ctx)
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestClientTreeAndCombinations(t *testing.T) {
	client := newTestClient(t)

	nodes := client.EvolutionTree(model.Bishop)
	require.NotEmpty(t, nodes)
	for _, node := range nodes {
		if node.Evolution.Tier == 1 {
			require.True(t, node.Unlocked, "tier-1 node %s", node.Evolution.ID)
		}
	}

	require.True(t, client.EvolvePiece(model.Bishop, "diagonalReach", nil))
	require.Equal(t, int64(1), client.CombinationCount().Int64())
	require.Len(t, client.DiscoveredCombinations(), 1)
	require.Positive(t, client.CombinationSpace().Sign())
}

func TestClientQuoteAndCalculator(t *testing.T) {
	client := newTestClient(t)

	quote, ok := client.Quote("pawn_swift_advance", 2)
	require.True(t, ok)
	require.Greater(t, quote[model.TemporalEssence], float64(0))

	require.Equal(t, 1.0, client.Calculator().BulkDiscount(nil))
}
