package storage

import (
	"context"
	"sort"
	"sync"

	"evogambit/internal/model"
)

// MemoryStore keeps snapshots in process memory. It backs tests and
// throwaway sessions.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, slot string, data model.SaveData) error {
	payload, err := EncodeSaveData(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[slot] = payload
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, slot string) (model.SaveData, bool, error) {
	s.mu.RLock()
	payload, ok := s.snapshots[slot]
	s.mu.RUnlock()

	if !ok {
		return model.SaveData{}, false, nil
	}
	data, err := DecodeSaveData(payload)
	if err != nil {
		return data, true, err
	}
	return data, true, nil
}

func (s *MemoryStore) ListSlots(_ context.Context) ([]SlotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]SlotInfo, 0, len(s.snapshots))
	for slot, payload := range s.snapshots {
		data, err := DecodeSaveData(payload)
		if err != nil && data.Version == "" {
			continue
		}
		infos = append(infos, SlotInfo{
			Slot:      slot,
			Version:   data.Version,
			Timestamp: data.Timestamp,
			Checksum:  data.Checksum,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Slot < infos[j].Slot })
	return infos, nil
}

func (s *MemoryStore) DeleteSnapshot(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, slot)
	return nil
}
