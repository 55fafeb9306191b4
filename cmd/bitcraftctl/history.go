package main

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// History is a sqlite-backed log of codec operations: every decode or
// encode run through the CLI gets a row, so `bitcraftctl history` can
// show what was processed in past invocations.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if necessary) the sqlite database at
// path and ensures its schema exists.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	const schema = `
CREATE TABLE IF NOT EXISTS operations (
	id             TEXT PRIMARY KEY,
	block          TEXT NOT NULL,
	block_id       TEXT NOT NULL,
	action         TEXT NOT NULL,
	summary        TEXT NOT NULL,
	byte_size      INTEGER NOT NULL,
	leftover_bits  INTEGER NOT NULL,
	success        INTEGER NOT NULL,
	ran_at         INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &History{db: db}, nil
}

func (h *History) Close() error { return h.db.Close() }

// Operation is one logged codec run.
type Operation struct {
	ID           string
	Block        string
	BlockID      string
	Action       string
	Summary      string
	ByteSize     int
	LeftoverBits uint
	Success      bool
	RanAt        time.Time
}

// Record inserts a new operation row, assigning it a fresh identity.
func (h *History) Record(op Operation) error {
	_, err := h.db.Exec(
		`INSERT INTO operations (id, block, block_id, action, summary, byte_size, leftover_bits, success, ran_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), op.Block, op.BlockID, op.Action, op.Summary, op.ByteSize, op.LeftoverBits, op.Success, time.Now().Unix(),
	)
	return err
}

// Recent returns the last n logged operations, most recent first.
func (h *History) Recent(n int) ([]Operation, error) {
	rows, err := h.db.Query(
		`SELECT id, block, block_id, action, summary, byte_size, leftover_bits, success, ran_at
		 FROM operations ORDER BY ran_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Operation
	for rows.Next() {
		var op Operation
		var ranAt int64
		if err := rows.Scan(&op.ID, &op.Block, &op.BlockID, &op.Action, &op.Summary, &op.ByteSize, &op.LeftoverBits, &op.Success, &ranAt); err != nil {
			return nil, err
		}
		op.RanAt = time.Unix(ranAt, 0)
		out = append(out, op)
	}
	return out, rows.Err()
}
