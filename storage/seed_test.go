package storage

import (
	"log/slog"
	"recall-game/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSeed(t *testing.T) {
	req := require.New(t)

	rooms, err := ReadSeed(strings.NewReader(`[
		{"room_id": "r1", "permission": "public", "max_size": 6, "turn_time_limit": 12.5},
		{"room_id": "r2", "permission": "private", "tags": [1, "x"]}
	]`))

	req.NoError(err)
	req.Len(rooms, 2)
	req.Equal("r1", rooms[0].ID)
	req.NotContains(rooms[0].Metadata, "room_id")
	req.Equal(int64(6), rooms[0].Metadata["max_size"])
	req.Equal(12.5, rooms[0].Metadata["turn_time_limit"])
	req.Equal([]any{int64(1), "x"}, rooms[1].Metadata["tags"])
}

func TestReadSeed_Invalid(t *testing.T) {
	req := require.New(t)

	_, err := ReadSeed(strings.NewReader(`{"room_id": "r1"}`))
	req.ErrorIs(err, errors.ErrInvalidRoom)

	_, err = ReadSeed(strings.NewReader(`[{"permission": "public"}]`))
	req.ErrorIs(err, errors.ErrInvalidRoom)
}

func TestSeed(t *testing.T) {
	req := require.New(t)
	repo := NewRoomRepository(openDB(t), slog.Default())
	rooms, err := ReadSeed(strings.NewReader(`[{"room_id": "r1"}, {"room_id": "r2"}]`))
	req.NoError(err)

	n, err := Seed(repo, rooms)

	req.NoError(err)
	req.Equal(2, n)
	stored, err := repo.GetAllRooms()
	req.NoError(err)
	req.Len(stored, 2)
}
