// Package evogambit is the public surface of the piece evolution engine. A
// Client owns one progression system and one snapshot store; rendering,
// resource-ledger and cloud-sync collaborators all go through it.
package evogambit

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"evogambit/internal/cost"
	"evogambit/internal/engine"
	"evogambit/internal/model"
	"evogambit/internal/storage"
	"evogambit/internal/tree"
)

const defaultDBPath = "evogambit.db"

// Options configures a Client. Zero values select the default store backend
// and pricing constants.
type Options struct {
	StoreKind string
	DBPath    string
	Cost      cost.Config
}

// Client couples the progression engine with its persistence collaborator.
type Client struct {
	system *engine.System
	calc   *cost.Calculator
	store  storage.Store
}

// New builds a client with an empty progression system.
func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	calc := cost.NewCalculator(opts.Cost)
	return &Client{
		system: engine.New(engine.Config{Calculator: calc}),
		calc:   calc,
		store:  store,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// Progression operations, consumed by the resource-ledger collaborator.

func (c *Client) EvolvePiece(pieceType model.PieceType, attribute string, spend model.ResourceCost) bool {
	return c.system.EvolvePiece(pieceType, attribute, spend)
}

func (c *Client) UnlockNode(evolutionID string, spend model.ResourceCost) bool {
	return c.system.UnlockNode(evolutionID, spend)
}

func (c *Client) UnlockAbility(pieceType model.PieceType, abilityID string) bool {
	return c.system.UnlockAbility(pieceType, abilityID)
}

func (c *Client) AddTimeInvestment(pieceType model.PieceType, d time.Duration) bool {
	return c.system.AddTimeInvestment(pieceType, d)
}

func (c *Client) CanAffordEvolution(ev model.Evolution) bool {
	return c.system.CanAffordEvolution(ev)
}

func (c *Client) Quote(evolutionID string, level int) (model.ResourceCost, bool) {
	return c.system.Quote(evolutionID, level)
}

// Calculator exposes the pure pricing operations.
func (c *Client) Calculator() *cost.Calculator { return c.calc }

// Read-only views, consumed by the rendering collaborator.

func (c *Client) EvolutionTree(pieceType model.PieceType) []tree.Node {
	return c.system.EvolutionTree(pieceType)
}

func (c *Client) AllEvolutions() []model.PieceEvolutionRecord {
	return c.system.AllEvolutions()
}

func (c *Client) EvolutionsByPieceType(pieceType model.PieceType) []model.PieceEvolutionRecord {
	return c.system.EvolutionsByPieceType(pieceType)
}

func (c *Client) PieceEvolution(id string) (model.PieceEvolutionRecord, bool) {
	return c.system.PieceEvolution(id)
}

func (c *Client) DiscoveredCombinations() []model.CombinationRecord {
	return c.system.DiscoveredCombinations()
}

func (c *Client) CombinationCount() *big.Int {
	return c.system.CombinationCount()
}

func (c *Client) CombinationSpace() *big.Int {
	return c.system.CombinationSpace()
}

func (c *Client) SynergyBonuses() []model.SynergyBonus {
	return c.system.SynergyBonuses()
}

// Persistence wiring, consumed by the cloud-sync collaborator.

// Serialize snapshots the current state without persisting it.
func (c *Client) Serialize() model.SaveData {
	return c.system.Serialize()
}

// Deserialize replaces the state with an already-fetched snapshot.
func (c *Client) Deserialize(data model.SaveData) error {
	return c.system.Deserialize(data)
}

// Save serializes the current state into the named slot.
func (c *Client) Save(ctx context.Context, slot string) (model.SaveData, error) {
	data := c.system.Serialize()
	if err := c.store.SaveSnapshot(ctx, slot, data); err != nil {
		return model.SaveData{}, fmt.Errorf("save slot %s: %w", slot, err)
	}
	return data, nil
}

// Load replaces the state from the named slot. A missing slot resets to an
// empty system rather than failing, matching the engine's graceful-load
// contract.
func (c *Client) Load(ctx context.Context, slot string) error {
	data, ok, err := c.store.GetSnapshot(ctx, slot)
	if err != nil {
		return fmt.Errorf("load slot %s: %w", slot, err)
	}
	if !ok {
		return c.system.Deserialize(model.SaveData{})
	}
	return c.system.Deserialize(data)
}

// Slots lists stored snapshots.
func (c *Client) Slots(ctx context.Context) ([]storage.SlotInfo, error) {
	return c.store.ListSlots(ctx)
}

// Reset deletes a stored snapshot.
func (c *Client) Reset(ctx context.Context, slot string) error {
	return c.store.DeleteSnapshot(ctx, slot)
}
