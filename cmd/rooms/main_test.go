package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SeedThenList(t *testing.T) {
	req := require.New(t)

	// Given an empty database and a seed file with one public and one private room
	dir := t.TempDir()
	t.Setenv("BADGER_FILEPATH", filepath.Join(dir, "db"))
	t.Setenv("ROOMS_COLOURS", "false")
	seed := filepath.Join(dir, "rooms.json")
	req.NoError(os.WriteFile(seed, []byte(`[
		{"room_id": "r1", "room_name": "Lobby", "permission": "public", "max_size": 6},
		{"room_id": "r2", "room_name": "Secret", "permission": "private"}
	]`), 0o600))

	// When seeding
	var out bytes.Buffer
	code, err := run([]string{"seed", seed}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "Seeded 2 rooms")

	// Then listing only shows the public room
	out.Reset()
	code, err = run([]string{"list"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "Lobby")
	req.NotContains(out.String(), "Secret")
	req.Contains(out.String(), "1 rooms")

	// And -all lists both
	out.Reset()
	_, err = run([]string{"-all", "list"}, &out)
	req.NoError(err)
	req.Contains(out.String(), "Secret")

	// And dump shows the raw keyspace, index included
	out.Reset()
	_, err = run([]string{"-prefix", "idx:", "dump"}, &out)
	req.NoError(err)
	req.Contains(out.String(), "idx:room:r1")
	req.Contains(out.String(), "2 entries")
}

func TestRun_Usage(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", filepath.Join(t.TempDir(), "db"))

	code, err := run([]string{"drop"}, &bytes.Buffer{})
	req.Error(err)
	req.Equal(exitConfig, code)

	code, err = run(nil, &bytes.Buffer{})
	req.Error(err)
	req.Equal(exitConfig, code)
}
