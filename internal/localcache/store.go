package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lvalenti/liftlog/internal/fit"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Persisted collection keys. Each one holds a whole collection as a single
// JSON blob, read and written wholesale - there is no partial-record API.
const (
	CollectionExercises = "exercises"
	CollectionTemplates = "workout-templates"
	CollectionCalendar  = "calendar"

	keyCurrentUser = "current-user"
)

const hotCacheExpireSeconds = 60 * 60

// Store is the on-device source of truth the presentation layer reads from.
// It is a key-value SQLite file with a freecache hot layer in front.
//
// Read and write failures are logged and degrade to nil / no-op: a failed
// read must be indistinguishable from an absent collection for callers.
type Store struct {
	db  *sql.DB
	hot *freecache.Cache
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open local cache db: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	megabyte := 1024 * 1024
	return &Store{
		db:  db,
		hot: freecache.NewCache(10 * megabyte),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw blob stored under key, or nil if absent or unreadable.
func (s *Store) Get(ctx context.Context, key string) []byte {
	if value, err := s.hot.Get([]byte(key)); err == nil {
		return value
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		log.Errorf("local cache: get %s: %s", key, err)
		return nil
	}

	if err := s.hot.Set([]byte(key), value, hotCacheExpireSeconds); err != nil {
		log.Debugf("local cache: hot set %s: %s", key, err)
	}
	return value
}

// Set overwrites the whole value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		log.Errorf("local cache: set %s: %s", key, err)
		return
	}

	if err := s.hot.Set([]byte(key), value, hotCacheExpireSeconds); err != nil {
		log.Debugf("local cache: hot set %s: %s", key, err)
	}
}

func (s *Store) Remove(ctx context.Context, key string) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?;`, key); err != nil {
		log.Errorf("local cache: remove %s: %s", key, err)
		return
	}
	s.hot.Del([]byte(key))
}

func (s *Store) GetExercises(ctx context.Context) []fit.Exercise {
	var exercises []fit.Exercise
	s.getCollection(ctx, CollectionExercises, &exercises)
	return exercises
}

func (s *Store) SaveExercises(ctx context.Context, exercises []fit.Exercise) {
	s.setCollection(ctx, CollectionExercises, exercises)
}

func (s *Store) GetTemplates(ctx context.Context) []fit.WorkoutTemplate {
	var templates []fit.WorkoutTemplate
	s.getCollection(ctx, CollectionTemplates, &templates)
	return templates
}

func (s *Store) SaveTemplates(ctx context.Context, templates []fit.WorkoutTemplate) {
	s.setCollection(ctx, CollectionTemplates, templates)
}

func (s *Store) GetCalendar(ctx context.Context) []fit.CalendarEntry {
	var calendar []fit.CalendarEntry
	s.getCollection(ctx, CollectionCalendar, &calendar)
	return calendar
}

func (s *Store) SaveCalendar(ctx context.Context, calendar []fit.CalendarEntry) {
	s.setCollection(ctx, CollectionCalendar, calendar)
}

// CurrentUser returns the cached identity, or nil when signed out. Note that
// the cached identity is a display convenience, not a session credential.
func (s *Store) CurrentUser(ctx context.Context) *fit.UserIdentity {
	data := s.Get(ctx, keyCurrentUser)
	if data == nil {
		return nil
	}
	var user fit.UserIdentity
	if err := json.Unmarshal(data, &user); err != nil {
		log.Errorf("local cache: unmarshal current user: %s", err)
		return nil
	}
	return &user
}

func (s *Store) SetCurrentUser(ctx context.Context, user *fit.UserIdentity) {
	data, err := json.Marshal(user)
	if err != nil {
		log.Errorf("local cache: marshal current user: %s", err)
		return
	}
	s.Set(ctx, keyCurrentUser, data)
}

func (s *Store) RemoveCurrentUser(ctx context.Context) {
	s.Remove(ctx, keyCurrentUser)
}

func (s *Store) getCollection(ctx context.Context, key string, dest interface{}) {
	data := s.Get(ctx, key)
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Errorf("local cache: unmarshal collection %s: %s", key, err)
	}
}

func (s *Store) setCollection(ctx context.Context, key string, records interface{}) {
	data, err := json.Marshal(records)
	if err != nil {
		log.Errorf("local cache: marshal collection %s: %s", key, err)
		return
	}
	s.Set(ctx, key, data)
}
