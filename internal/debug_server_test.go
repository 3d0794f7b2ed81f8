package internal

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestDebugServer_Page(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	// Given one room entry and one index entry
	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("room:0000000000000000001:r1"), []byte("xyz")); err != nil {
			return err
		}
		return txn.Set([]byte("idx:room:r1"), []byte("room:0000000000000000001:r1"))
	}))

	server := NewDebugServer(slog.Default(), db, "", "/inspect", nil,
		func() map[string]any { return map[string]any{"sessions": 3} })

	// When scanning the default prefix
	page := server.Page("")

	// Then only rooms are listed
	req.Equal("room:", page.Prefix)
	req.Len(page.Items, 1)
	req.Equal("r1", page.Items[0].RoomID)
	req.Equal("Size: 3 bytes", page.Items[0].Detail)
	req.Equal(3, page.Stats["sessions"])

	// And the HTML view renders it
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect?prefix=idx:", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "idx:room:r1")
}

func TestDebugServer_Handle(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	server := NewDebugServer(slog.Default(), db, "", "/inspect", nil, nil)
	server.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	req.Equal(http.StatusTeapot, rec.Code)
}

func TestDefaultMapper(t *testing.T) {
	req := require.New(t)

	row := DefaultMapper("room:0000000000000000000:abc", []byte("12"))
	req.Equal("abc", row.RoomID)
	req.Equal("00:00:00", row.Created)

	row = DefaultMapper("garbage", nil)
	req.Equal("--------", row.RoomID)
}
