package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"evogambit/internal/model"
	"evogambit/internal/storage"
	evoapi "evogambit/pkg/evogambit"
)

const defaultSlot = "default"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "evolve":
		return runEvolve(ctx, args[1:])
	case "unlock":
		return runUnlock(ctx, args[1:])
	case "ability":
		return runAbility(ctx, args[1:])
	case "tree":
		return runTree(ctx, args[1:])
	case "pieces":
		return runPieces(ctx, args[1:])
	case "combinations":
		return runCombinations(ctx, args[1:])
	case "cost":
		return runCost(ctx, args[1:])
	case "slots":
		return runSlots(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := evoapi.New(evoapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := openClient(ctx, *storeKind, *dbPath, "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Reset(ctx, *slot); err != nil {
		return err
	}
	fmt.Printf("deleted slot=%s\n", *slot)
	return nil
}

func runEvolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("evolve", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	pieceType := fs.String("piece", "", "piece type: pawn|knight|bishop|rook|queen|king")
	attribute := fs.String("attribute", "", "numeric attribute to upgrade")
	spendSpec := fs.String("spend", "", "resources, e.g. temporalEssence=10,mnemonicDust=5")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pieceType == "" || *attribute == "" {
		return errors.New("evolve requires --piece and --attribute")
	}
	spend, err := parseSpend(*spendSpec)
	if err != nil {
		return err
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if !client.EvolvePiece(model.PieceType(*pieceType), *attribute, spend) {
		return fmt.Errorf("cannot upgrade %s.%s", *pieceType, *attribute)
	}
	if _, err := client.Save(ctx, *slot); err != nil {
		return err
	}

	records := client.EvolutionsByPieceType(model.PieceType(*pieceType))
	rec := records[0]
	fmt.Printf("evolved piece=%s attribute=%s value=%g level=%d combinations=%s\n",
		rec.PieceType, *attribute, rec.Attributes[*attribute], rec.EvolutionLevel,
		client.CombinationCount().String())
	return nil
}

func runUnlock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("unlock", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	evolutionID := fs.String("evolution", "", "catalog evolution id")
	spendSpec := fs.String("spend", "", "resources, e.g. temporalEssence=100")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *evolutionID == "" {
		return errors.New("unlock requires --evolution")
	}
	spend, err := parseSpend(*spendSpec)
	if err != nil {
		return err
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if !client.UnlockNode(*evolutionID, spend) {
		return fmt.Errorf("cannot unlock %s: requirements unmet or already unlocked", *evolutionID)
	}
	if _, err := client.Save(ctx, *slot); err != nil {
		return err
	}
	fmt.Printf("unlocked evolution=%s\n", *evolutionID)
	return nil
}

func runAbility(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ability", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	pieceType := fs.String("piece", "", "piece type: pawn|knight|bishop|rook|queen|king")
	abilityID := fs.String("id", "", "ability id to grant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pieceType == "" || *abilityID == "" {
		return errors.New("ability requires --piece and --id")
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if !client.UnlockAbility(model.PieceType(*pieceType), *abilityID) {
		return fmt.Errorf("cannot grant %s to %s: slots full or already held", *abilityID, *pieceType)
	}
	if _, err := client.Save(ctx, *slot); err != nil {
		return err
	}
	fmt.Printf("granted piece=%s ability=%s\n", *pieceType, *abilityID)
	return nil
}

func runTree(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	pieceType := fs.String("piece", "", "piece type: pawn|knight|bishop|rook|queen|king")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !model.PieceType(*pieceType).Valid() {
		return fmt.Errorf("unknown piece type: %s", *pieceType)
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	for _, node := range client.EvolutionTree(model.PieceType(*pieceType)) {
		state := "locked"
		if node.Unlocked {
			state = "open"
		}
		fmt.Printf("tier=%d [%s] %-28s %-10s %s\n",
			node.Evolution.Tier, state, node.Evolution.ID, node.Evolution.Rarity,
			node.Evolution.Name)
	}
	return nil
}

func runPieces(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pieces", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	records := client.AllEvolutions()
	if len(records) == 0 {
		fmt.Println("no evolved pieces")
		return nil
	}
	for _, rec := range records {
		fmt.Printf("piece=%s level=%d abilities=%d modified=%s\n",
			rec.PieceType, rec.EvolutionLevel, len(rec.UnlockedAbilities),
			time.UnixMilli(rec.LastModified).UTC().Format(time.RFC3339))
	}
	return nil
}

func runCombinations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("combinations", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	fmt.Printf("discovered=%s theoretical=%s\n",
		humanize.BigComma(client.CombinationCount()),
		humanize.BigComma(client.CombinationSpace()))
	for _, combo := range client.DiscoveredCombinations() {
		fmt.Printf("combination hash=%.12s pieces=%d power=%.1f at=%s\n",
			combo.Hash, len(combo.PieceEvolutionIDs), combo.TotalPower,
			time.UnixMilli(combo.DiscoveredAt).UTC().Format(time.RFC3339))
	}
	return nil
}

func runCost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cost", flag.ContinueOnError)
	evolutionID := fs.String("evolution", "", "catalog evolution id")
	level := fs.Int("level", 1, "target level for scaling")
	configPath := fs.String("config", "", "optional YAML pricing config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *evolutionID == "" {
		return errors.New("cost requires --evolution")
	}

	cfg, err := loadCostConfig(*configPath)
	if err != nil {
		return err
	}
	client, err := evoapi.New(evoapi.Options{StoreKind: "memory", Cost: cfg})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	quote, ok := client.Quote(*evolutionID, *level)
	if !ok {
		return fmt.Errorf("unknown evolution id: %s", *evolutionID)
	}
	fmt.Printf("evolution=%s level=%d cost=%s\n", *evolutionID, *level, formatCost(quote))
	return nil
}

func runSlots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := evoapi.New(evoapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	slots, err := client.Slots(ctx)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Println("no saved slots")
		return nil
	}
	for _, info := range slots {
		fmt.Printf("slot=%s version=%s saved=%s checksum=%.12s\n",
			info.Slot, info.Version,
			time.UnixMilli(info.Timestamp).UTC().Format(time.RFC3339), info.Checksum)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "evogambit.db", "sqlite database path")
	slot := fs.String("slot", defaultSlot, "save slot")
	out := fs.String("out", "", "output file (default <slot>.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		*out = *slot + ".json"
	}

	client, err := openClient(ctx, *storeKind, *dbPath, *slot)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	payload, err := json.MarshalIndent(client.Serialize(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, payload, 0o644); err != nil {
		return err
	}
	fmt.Printf("exported slot=%s to=%s\n", *slot, *out)
	return nil
}

// openClient builds a client and, when a slot is named, loads it. Missing
// slots load as an empty session.
func openClient(ctx context.Context, storeKind, dbPath, slot string) (*evoapi.Client, error) {
	client, err := evoapi.New(evoapi.Options{StoreKind: storeKind, DBPath: dbPath})
	if err != nil {
		return nil, err
	}
	if err := client.Init(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	if slot != "" {
		if err := client.Load(ctx, slot); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

// parseSpend reads "kind=amount,kind=amount" resource specs.
func parseSpend(spec string) (model.ResourceCost, error) {
	if spec == "" {
		return nil, nil
	}
	spend := make(model.ResourceCost)
	for _, part := range strings.Split(spec, ",") {
		kind, amount, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("malformed spend entry: %s", part)
		}
		var value float64
		if _, err := fmt.Sscanf(amount, "%g", &value); err != nil {
			return nil, fmt.Errorf("malformed spend amount: %s", part)
		}
		if value < 0 {
			return nil, fmt.Errorf("negative spend amount: %s", part)
		}
		spend[model.ResourceKind(kind)] = value
	}
	return spend, nil
}

func formatCost(c model.ResourceCost) string {
	parts := make([]string, 0, len(c))
	for _, kind := range model.ResourceKinds {
		if amount, ok := c[kind]; ok {
			parts = append(parts, fmt.Sprintf("%s=%g", kind, amount))
		}
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, ",")
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: evogambitctl <init|reset|evolve|unlock|ability|tree|pieces|combinations|cost|slots|export> [flags]", msg)
}
