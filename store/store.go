// Package store persists multiplexed frames in SQLite.
//
// Every frame is the complete self-describing byte form produced by a
// [muxcodec.Mux]: framed header plus payload. The dispatch key recorded at
// Put time is stored alongside the bytes, so the kind of a frame can be
// inspected without decoding it.
package store

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/teenjuna/muxcodec"
	"github.com/teenjuna/muxcodec/internal"
)

var (
	// ErrClosed is returned by Store methods when the store has been closed.
	ErrClosed = errors.New("store is closed")
	// ErrNotFound is returned when no frame exists under the requested ID.
	ErrNotFound = errors.New("frame not found")
)

const (
	memory = ":memory:"
)

// FrameID identifies a stored frame.
type FrameID = string

// Store is a persistent frame archive backed by SQLite.
type Store struct {
	cfg *Config
	mux *muxcodec.Mux
	db  *sql.DB
}

// New creates a new Store that encodes and decodes frames through mux.
//
// Default configuration:
//   - File: ":memory:" (in-memory database)
//   - Durable: false
//
// Returns an error if the SQLite database cannot be opened or initialized.
func New(mux *muxcodec.Mux, configFuncs ...ConfigFunc) (*Store, error) {
	if mux == nil {
		panic("mux can't be nil")
	}

	cfg := &Config{}
	cfg.File(memory)
	for _, cf := range configFuncs {
		cf(cfg)
	}

	db, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := setup(db); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	store := Store{
		cfg: cfg,
		mux: mux,
		db:  db,
	}

	return &store, nil
}

// Put encodes v through the mux and inserts the resulting frame.
//
// Returns the new frame's ID. Dispatch failures ([muxcodec.NoCodecError])
// propagate unchanged and nothing is inserted. Returns [ErrClosed] if the
// store has been closed.
func (s *Store) Put(v any) (FrameID, error) {
	report := new(muxcodec.Report)

	var buf bytes.Buffer
	if err := s.mux.WithReport(report).Encode(&buf, v); err != nil {
		return "", err
	}
	key, _ := report.Key()

	id := internal.GenerateID()
	_, err := s.db.Exec(
		`
		insert into frame (
			id,
			key,
			data,
			stored_at
		) values (
			:id,
			:key,
			:data,
			:stored_at
		)
		`,
		sql.Named("id", id),
		sql.Named("key", key),
		sql.Named("data", buf.Bytes()),
		sql.Named("stored_at", time.Now().UnixMilli()),
	)
	if err != nil {
		return "", closedErr(err)
	}

	return id, nil
}

// Get loads the frame and decodes it back through the mux.
//
// Returns [ErrNotFound] if no frame exists under id, and [ErrClosed] if the
// store has been closed.
func (s *Store) Get(id FrameID) (any, error) {
	var data []byte
	err := s.db.QueryRow(
		`select data from frame where id = :id`,
		sql.Named("id", id),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, closedErr(err)
	}

	return s.mux.Decode(bytes.NewReader(data))
}

// Key returns the dispatch key recorded when the frame was stored, without
// decoding the payload.
func (s *Store) Key(id FrameID) (string, error) {
	var key string
	err := s.db.QueryRow(
		`select key from frame where id = :id`,
		sql.Named("id", id),
	).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	} else if err != nil {
		return "", closedErr(err)
	}

	return key, nil
}

// List returns the IDs of all stored frames in insertion order.
func (s *Store) List() ([]FrameID, error) {
	rows, err := s.db.Query(`select id from frame order by rowid asc`)
	if err != nil {
		return nil, closedErr(err)
	}
	defer rows.Close()

	ids := make([]FrameID, 0)
	for rows.Next() {
		var id FrameID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return ids, nil
}

// Delete permanently removes one or more frames from the store. Unknown
// IDs are ignored.
func (s *Store) Delete(ids ...FrameID) error {
	_, err := s.db.Exec(
		`
		delete from frame
		where
			id in (
				select value from json_each(:ids)
			)
		`,
		sql.Named("ids", jsonIDs(ids)),
	)
	return closedErr(err)
}

// Stats returns the number of stored frames and their total payload size
// in bytes.
func (s *Store) Stats() (*Stats, error) {
	var (
		frames int
		size   int64
	)
	err := s.db.QueryRow(
		`
		select
			coalesce(count(*), 0) as frames,
			coalesce(sum(length(data)), 0) as bytes
		from
			frame
		`,
	).Scan(
		&frames,
		&size,
	)
	if err != nil {
		return nil, closedErr(err)
	}

	stats := Stats{
		Frames: frames,
		Bytes:  size,
	}

	return &stats, nil
}

// Close closes the underlying SQLite database.
//
// After closing, all methods on Store return [ErrClosed].
func (s *Store) Close() error {
	return s.db.Close()
}

// Stats represents statistics about the store.
type Stats struct {
	// Frames is the total number of stored frames.
	Frames int
	// Bytes is the total size of all frame bytes, headers included.
	Bytes int64
}

func open(cfg *Config) (*sql.DB, error) {
	params := url.Values{}
	params.Add("_txlock", "immediate")
	params.Add("_timeout", "5000") // 5s
	file := cfg.file
	if file == memory {
		file = internal.GenerateID()
		params.Add("mode", "memory")
		params.Add("cache", "shared")
	} else {
		params.Add("_journal", "wal")
		params.Add("_cache_size", "-20000") // 20mb
		if cfg.durable {
			params.Add("_sync", "full")
		} else {
			params.Add("_sync", "normal")
		}
	}

	db, err := sql.Open("sqlite3", "file:"+file+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
	if params.Get("mode") == "memory" {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	return db, nil
}

func setup(db *sql.DB) error {
	if _, err := db.Exec(
		`
		create table if not exists frame (
			id        text primary key,
			key       text not null,
			data      blob not null,
			stored_at int not null
		) strict
		`,
	); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	return nil
}

func closedErr(err error) error {
	if err != nil && err.Error() == "sql: database is closed" {
		return ErrClosed
	}
	return err
}

func jsonIDs(ids []FrameID) string {
	b, err := json.Marshal(ids)
	if err != nil {
		// []string marshaling can't fail.
		panic(err)
	}
	return string(b)
}
