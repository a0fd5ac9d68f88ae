// Package storage is the persistence collaborator for save blobs. It treats
// the payload as opaque beyond its version, timestamp and checksum fields;
// the engine core never touches storage directly.
package storage

import (
	"context"

	"evogambit/internal/model"
)

// SlotInfo summarizes one stored snapshot without decoding its payload.
type SlotInfo struct {
	Slot      string `json:"slot"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
	Checksum  string `json:"checksum"`
}

// Store persists serialized progression snapshots keyed by slot name.
type Store interface {
	Init(ctx context.Context) error
	SaveSnapshot(ctx context.Context, slot string, data model.SaveData) error
	GetSnapshot(ctx context.Context, slot string) (model.SaveData, bool, error)
	ListSlots(ctx context.Context) ([]SlotInfo, error)
	DeleteSnapshot(ctx context.Context, slot string) error
}
