package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"recall-game/contract"
	"recall-game/domain"
	"recall-game/errors"
)

// ReadSeed decodes a JSON array of room objects. Each object carries its id
// under "room_id"; every other key is kept as raw metadata.
func ReadSeed(r io.Reader) ([]domain.RawRoom, error) {
	var entries []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidRoom, err)
	}
	rooms := make([]domain.RawRoom, 0, len(entries))
	for i, entry := range entries {
		id, ok := entry["room_id"].(string)
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: entry %d has no room_id", errors.ErrInvalidRoom, i)
		}
		metadata := make(map[string]any, len(entry))
		for k, v := range entry {
			if k == "room_id" {
				continue
			}
			metadata[k] = normalize(v)
		}
		rooms = append(rooms, domain.RawRoom{ID: id, Metadata: metadata})
	}
	return rooms, nil
}

func ReadSeedFile(path string) ([]domain.RawRoom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeed(f)
}

// Seed saves rooms in order and returns how many were written.
func Seed(repo contract.IRoomRepository, rooms []domain.RawRoom) (int, error) {
	for i, room := range rooms {
		if err := repo.SaveRoom(room); err != nil {
			return i, fmt.Errorf("seed room %s: %w", room.ID, err)
		}
	}
	return len(rooms), nil
}

// normalize turns json.Number into int64 when integral, float64 otherwise.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, inner := range t {
			t[k] = normalize(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = normalize(inner)
		}
		return t
	}
	return v
}
