package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"evogambit/internal/model"
)

// ErrIntegrity flags a decoded snapshot whose checksum does not match its
// payload. The decoded data is still returned so callers can choose to accept
// it at face value; the engine's own load path rejects it wholesale.
var ErrIntegrity = errors.New("snapshot integrity check failed")

// EncodeSaveData marshals a snapshot, stamping the checksum if the producer
// left it empty.
func EncodeSaveData(data model.SaveData) ([]byte, error) {
	if data.Checksum == "" {
		data.Checksum = data.ComputeChecksum()
	}
	return json.Marshal(data)
}

// DecodeSaveData unmarshals a snapshot and verifies its checksum. On
// integrity failure the data is returned alongside ErrIntegrity.
func DecodeSaveData(raw []byte) (model.SaveData, error) {
	var data model.SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.SaveData{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if data.Checksum != "" && !data.VerifyChecksum() {
		return data, ErrIntegrity
	}
	return data, nil
}
