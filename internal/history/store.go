package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"browsermgr/internal/config"
)

const (
	bucketHistory = "history"
	bucketMeta    = "meta"
	keyLastOp     = "last_operation"

	// keyTimeLayout has fixed width so keys sort chronologically.
	keyTimeLayout = "2006-01-02T15:04:05.000000000"
)

// Store manages operation history using BoltDB.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history database in the data directory.
func Open() (*Store, error) {
	if err := config.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return OpenAt(config.HistoryPath())
}

// OpenAt opens or creates a history database at path.
func OpenAt(path string) (*Store, error) {
	db, err := bbolt.Open(filepath.Clean(path), 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// Ensure buckets exist
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketHistory)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketMeta)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record saves a new history entry.
func (s *Store) Record(entry *Entry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketHistory))
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		// Timestamp keys sort chronologically; a sequence suffix keeps equal timestamps apart.
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate entry sequence: %w", err)
		}
		key := []byte(fmt.Sprintf("%s-%08d", entryTime(entry.Timestamp), seq))
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		// Update last operation reference
		metaBucket := tx.Bucket([]byte(bucketMeta))
		if metaBucket != nil {
			if err := metaBucket.Put([]byte(keyLastOp), key); err != nil {
				return fmt.Errorf("failed to update last operation: %w", err)
			}
		}

		return nil
	})
}

// scan walks entries newest first until keep returns false. Malformed entries are skipped.
func (s *Store) scan(keep func(Entry) bool) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketHistory))
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var e Entry
			if json.Unmarshal(v, &e) != nil {
				continue
			}
			if !keep(e) {
				return nil
			}
		}
		return nil
	})
}

// List returns the most recent history entries, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]Entry, error) {
	return s.collect(limit, func(Entry) bool { return true })
}

// ForBrowser returns entries for one browser, newest first.
func (s *Store) ForBrowser(id string, limit int) ([]Entry, error) {
	return s.collect(limit, func(e Entry) bool { return e.Browser == id })
}

func (s *Store) collect(limit int, match func(Entry) bool) ([]Entry, error) {
	var out []Entry
	err := s.scan(func(e Entry) bool {
		if match(e) {
			out = append(out, e)
		}
		return limit <= 0 || len(out) < limit
	})
	return out, err
}

// Last returns the most recent entry, or nil if the history is empty.
func (s *Store) Last() (*Entry, error) {
	var entry *Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket([]byte(bucketMeta))
		bucket := tx.Bucket([]byte(bucketHistory))
		if meta == nil || bucket == nil {
			return nil
		}

		key := meta.Get([]byte(keyLastOp))
		if key == nil {
			return nil
		}
		v := bucket.Get(key)
		if v == nil {
			return nil
		}

		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return err
		}
		entry = &e
		return nil
	})

	return entry, err
}

// Count returns the total number of entries.
func (s *Store) Count() (int, error) {
	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketHistory))
		if bucket == nil {
			return nil
		}

		count = bucket.Stats().KeyN
		return nil
	})

	return count, err
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketHistory)); err != nil && !errors.Is(err, berrors.ErrBucketNotFound) {
			return err
		}
		if meta := tx.Bucket([]byte(bucketMeta)); meta != nil {
			if err := meta.Delete([]byte(keyLastOp)); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucket([]byte(bucketHistory))
		return err
	})
}

// Prune removes entries older than maxAge and returns how many were deleted.
// Keys start with their UTC timestamp, so the cursor stops at the first newer key.
func (s *Store) Prune(maxAge time.Duration) (int, error) {
	cutoff := []byte(entryTime(time.Now().Add(-maxAge)))
	var deleted int

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketHistory))
		if bucket == nil {
			return nil
		}

		// Collect first; deleting under a moving cursor skips keys.
		var stale [][]byte
		c := bucket.Cursor()
		for k, _ := c.First(); k != nil && bytes.Compare(k, cutoff) < 0; k, _ = c.Next() {
			stale = append(stale, append([]byte(nil), k...))
		}

		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})

	return deleted, err
}

func entryTime(t time.Time) string {
	return t.UTC().Format(keyTimeLayout)
}
