package internal

import (
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

const defaultPrefix = "room:"

type InspectRow struct {
	Key        string
	Created    string
	RoomID     string
	Permission string
	Detail     string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// DebugServer serves a read-only HTML view of the Badger keyspace next to
// live process statistics. Extra handlers, such as /health, are mounted on
// the same mux.
type DebugServer struct {
	log           *slog.Logger
	db            *badger.DB
	addr          string
	endpoint      string
	mapper        RowMapper
	statsProvider StatsProvider
	mux           *http.ServeMux
}

func NewDebugServer(log *slog.Logger, db *badger.DB, addr, endpoint string,
	mapper RowMapper, statsProvider StatsProvider) *DebugServer {
	if mapper == nil {
		mapper = DefaultMapper
	}
	s := &DebugServer{
		log:           log,
		db:            db,
		addr:          addr,
		endpoint:      endpoint,
		mapper:        mapper,
		statsProvider: statsProvider,
		mux:           http.NewServeMux(),
	}
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	s.mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		data := s.Page(r.URL.Query().Get("prefix"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			s.log.Error("Failed to render inspector", "error", err)
		}
	})
	return s
}

func (s *DebugServer) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
}

func (s *DebugServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Page collects every entry under prefix. An empty prefix means rooms.
func (s *DebugServer) Page(prefix string) PageData {
	if prefix == "" {
		prefix = defaultPrefix
	}
	data := PageData{Prefix: prefix, Stats: make(map[string]any)}
	if s.statsProvider != nil {
		data.Stats = s.statsProvider()
	}

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			_ = item.Value(func(val []byte) error {
				data.Items = append(data.Items, s.mapper(string(item.Key()), val))
				return nil
			})
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Inspector scan failed", "prefix", prefix, "error", err)
	}
	return data
}

// Run serves the inspector until ctx is canceled.
func (s *DebugServer) Run(ctx context.Context) error {
	server := &http.Server{Addr: s.addr, Handler: s.mux}
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting debug server", "address", s.addr, "endpoint", s.endpoint)
		errChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errChan:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("debug server: %w", err)
	}
}

// DefaultMapper only reads the key, "room:{created_nanos}:{room_id}".
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:        key,
		Created:    "--:--:--",
		RoomID:     "--------",
		Permission: "-",
		Detail:     "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.SplitN(key, ":", 3)
	if len(parts) == 3 {
		if tsNano, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			row.Created = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
		row.RoomID = parts[2]
	}
	return row
}
