package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"evogambit/internal/model"
)

func sampleSaveData() model.SaveData {
	data := model.SaveData{
		Version: model.CurrentSaveVersion,
		Evolutions: []model.PieceEvolutionRecord{{
			ID:              "pe-1",
			PieceType:       model.Pawn,
			EvolutionLevel:  3,
			Attributes:      map[string]float64{"attackPower": 3},
			TotalInvestment: model.ResourceCost{model.TemporalEssence: 45},
		}},
		UnlockedNodes:     []string{"pawn_swift_advance"},
		TotalCombinations: "2",
		Timestamp:         1700000000000,
	}
	data.Checksum = data.ComputeChecksum()
	return data
}

func TestMemoryStoreSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := sampleSaveData()
	require.NoError(t, store.SaveSnapshot(ctx, "default", input))

	output, ok, err := store.GetSnapshot(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, input.Checksum, output.Checksum)
	require.Equal(t, input.Evolutions, output.Evolutions)
	require.Equal(t, input.TotalCombinations, output.TotalCombinations)
}

func TestMemoryStoreMissingSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	_, ok, err := store.GetSnapshot(ctx, "absent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	require.NoError(t, store.SaveSnapshot(ctx, "beta", sampleSaveData()))
	require.NoError(t, store.SaveSnapshot(ctx, "alpha", sampleSaveData()))

	infos, err := store.ListSlots(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	require.Equal(t, "alpha", infos[0].Slot)
	require.Equal(t, model.CurrentSaveVersion, infos[0].Version)

	require.NoError(t, store.DeleteSnapshot(ctx, "alpha"))
	infos, err = store.ListSlots(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "beta", infos[0].Slot)
}
