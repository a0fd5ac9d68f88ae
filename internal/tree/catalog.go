// Package tree holds the static per-piece-type catalogs of evolution
// definitions. Catalogs are built once at system construction and queried,
// never mutated; unlock flags are derived from live system state at call
// time.
package tree

import (
	"fmt"
	"math/big"
	"sort"

	"evogambit/internal/model"
)

// Position is a layout hint for tree rendering collaborators.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Node projects one evolution definition into a renderable tree node. The
// Unlocked flag is computed against live state when the node list is built.
type Node struct {
	Evolution model.Evolution `json:"evolution"`
	Children  []string        `json:"children,omitempty"`
	Position  Position        `json:"position"`
	Unlocked  bool            `json:"unlocked"`
}

// UnlockPredicate reports whether an evolution id counts as unlocked in the
// caller's current state.
type UnlockPredicate func(evolutionID string) bool

// Catalog indexes every evolution definition by piece type and id.
type Catalog struct {
	byPiece  map[model.PieceType][]model.Evolution
	byID     map[string]model.Evolution
	children map[string][]string
}

// NewCatalog builds the built-in catalogs for all six piece types.
func NewCatalog() *Catalog {
	c := &Catalog{
		byPiece:  make(map[model.PieceType][]model.Evolution),
		byID:     make(map[string]model.Evolution),
		children: make(map[string][]string),
	}
	for _, pieceType := range model.PieceTypes {
		rows, ok := catalogRows[pieceType]
		if !ok {
			continue
		}
		for _, row := range rows {
			ev := row.toEvolution(pieceType)
			if _, dup := c.byID[ev.ID]; dup {
				panic(fmt.Sprintf("duplicate evolution id: %s", ev.ID))
			}
			c.byID[ev.ID] = ev
			c.byPiece[pieceType] = append(c.byPiece[pieceType], ev)
			for _, parent := range ev.Requires {
				c.children[parent] = append(c.children[parent], ev.ID)
			}
		}
	}
	return c
}

// Evolutions returns the definitions for one piece type in catalog order.
func (c *Catalog) Evolutions(pieceType model.PieceType) []model.Evolution {
	return append([]model.Evolution(nil), c.byPiece[pieceType]...)
}

// Lookup finds a definition by id.
func (c *Catalog) Lookup(id string) (model.Evolution, bool) {
	ev, ok := c.byID[id]
	return ev, ok
}

// Satisfied reports whether an evolution's requirements are met: tier-1 nodes
// are always satisfied, others need every declared requirement unlocked.
func (c *Catalog) Satisfied(ev model.Evolution, unlocked UnlockPredicate) bool {
	if ev.Tier <= 1 {
		return true
	}
	for _, required := range ev.Requires {
		if !unlocked(required) {
			return false
		}
	}
	return true
}

// Nodes projects one piece type's catalog into tree nodes, computing the
// Unlocked flag from the supplied predicate. Layout positions place nodes in
// columns within their tier.
func (c *Catalog) Nodes(pieceType model.PieceType, unlocked UnlockPredicate) []Node {
	evolutions := c.byPiece[pieceType]
	columns := make(map[int]int)

	nodes := make([]Node, 0, len(evolutions))
	for _, ev := range evolutions {
		column := columns[ev.Tier]
		columns[ev.Tier]++

		children := append([]string(nil), c.children[ev.ID]...)
		sort.Strings(children)

		nodes = append(nodes, Node{
			Evolution: ev,
			Children:  children,
			Position:  Position{X: column, Y: ev.Tier},
			Unlocked:  c.Satisfied(ev, unlocked),
		})
	}
	return nodes
}

// StateSpace counts the reachable unlock states of the whole catalog as an
// exact integer: the product over piece types of each tree's
// requirement-closed subset count. Repeated calls return equal values.
func (c *Catalog) StateSpace() *big.Int {
	total := big.NewInt(1)
	for _, pieceType := range model.PieceTypes {
		total.Mul(total, c.treeStates(pieceType))
	}
	return total
}

// treeStates counts requirement-closed unlock subsets of one piece's forest.
// A node contributes 1 (locked, subtree forced locked) plus the product of
// its children's counts (unlocked, children free).
func (c *Catalog) treeStates(pieceType model.PieceType) *big.Int {
	var nodeStates func(id string) *big.Int
	nodeStates = func(id string) *big.Int {
		states := big.NewInt(1)
		for _, child := range c.children[id] {
			states.Mul(states, nodeStates(child))
		}
		return states.Add(states, big.NewInt(1))
	}

	total := big.NewInt(1)
	for _, ev := range c.byPiece[pieceType] {
		if ev.Tier == 1 {
			total.Mul(total, nodeStates(ev.ID))
		}
	}
	return total
}
