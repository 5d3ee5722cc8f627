// Package cache implements the on-disk hash cache the dedup stage
// consults across runs, so a re-run over an already-organized library
// doesn't re-hash every file. Directly grounded on the teacher's
// cache.go: SQLite in WAL mode, a single writer goroutine serializing
// every write behind a channel, reads going straight to the database.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type writeRequest struct {
	path    string
	size    int64
	modTime time.Time
	hash    string
}

// Cache is the SHA-256 hash cache keyed by (path, size, mtime): any
// change to size or mtime invalidates the cached hash, so the cache can
// never observe a stale value.
type Cache struct {
	db         *sql.DB
	writeChan  chan writeRequest
	writerDone sync.WaitGroup
}

// Open creates or opens the cache database under outputBase.
func Open(outputBase string) (*Cache, error) {
	cacheDir := filepath.Join(outputBase, ".takeout-reorg-cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	dbPath := filepath.Join(cacheDir, "cache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS files (
		path TEXT PRIMARY KEY,
		size INTEGER NOT NULL,
		mod_time INTEGER NOT NULL,
		hash TEXT NOT NULL,
		processed_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_hash ON files(hash);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	c := &Cache{
		db:        db,
		writeChan: make(chan writeRequest, 1000),
	}
	c.writerDone.Add(1)
	go c.writerLoop()

	return c, nil
}

func (c *Cache) writerLoop() {
	defer c.writerDone.Done()
	for req := range c.writeChan {
		c.writeToDatabase(req)
	}
}

// Close flushes pending writes and closes the database.
func (c *Cache) Close() error {
	if c.writeChan != nil {
		close(c.writeChan)
		c.writerDone.Wait()
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get satisfies dedup.HashCache: a hit requires an exact (path, size,
// mtime) match.
func (c *Cache) Get(path string, size int64, modTime time.Time) (string, bool) {
	var hash string
	err := c.db.QueryRow(
		`SELECT hash FROM files WHERE path = ? AND size = ? AND mod_time = ?`,
		path, size, modTime.Unix(),
	).Scan(&hash)
	if err != nil {
		return "", false
	}
	return hash, hash != ""
}

// Put satisfies dedup.HashCache: queues an upsert on the single writer
// goroutine; a full queue drops the write rather than blocking the
// hashing worker pool, since this cache is strictly best-effort.
func (c *Cache) Put(path string, size int64, modTime time.Time, hash string) {
	select {
	case c.writeChan <- writeRequest{path: path, size: size, modTime: modTime, hash: hash}:
	default:
	}
}

func (c *Cache) writeToDatabase(req writeRequest) {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO files (path, size, mod_time, hash, processed_at) VALUES (?, ?, ?, ?, ?)`,
		req.path, req.size, req.modTime.Unix(), req.hash, time.Now().Unix(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cache write failed for %s: %v\n", req.path, err)
	}
}

// PruneDeleted removes entries whose path is no longer present in
// validPaths, keeping the cache from growing unboundedly across repeated
// runs over a changing input tree.
func (c *Cache) PruneDeleted(validPaths map[string]bool) (int64, error) {
	rows, err := c.db.Query("SELECT path FROM files")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			continue
		}
		if !validPaths[path] {
			stale = append(stale, path)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	tx, err := c.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("DELETE FROM files WHERE path = ?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, path := range stale {
		if _, err := stmt.Exec(path); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int64(len(stale)), nil
}
