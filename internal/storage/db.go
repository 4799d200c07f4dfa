package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"schedconv/internal"
)

// DB keeps the conversion-run history. Extracted shift data is never
// persisted; only per-run audit metadata lands here.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  sourceFile TEXT NOT NULL,
  mode TEXT NOT NULL,
  year INTEGER NOT NULL,
  rowsExtracted INTEGER NOT NULL,
  rowsExported INTEGER NOT NULL,
  outputPath TEXT NOT NULL DEFAULT '',
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_createdAt ON runs(createdAt);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(run internal.ConversionRun) error {
	_, err := d.conn.Exec(`
INSERT INTO runs (traceId, sourceFile, mode, year, rowsExtracted, rowsExported, outputPath)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, run.TraceID, run.SourceFile, run.Mode, run.Year, run.RowsExtracted, run.RowsExported, run.OutputPath)
	return err
}

func (d *DB) ListRuns(limit int) ([]internal.ConversionRun, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, sourceFile, mode, year, rowsExtracted, rowsExported, outputPath, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ConversionRun
	for rows.Next() {
		var run internal.ConversionRun
		if err := rows.Scan(
			&run.ID, &run.TraceID, &run.SourceFile, &run.Mode, &run.Year,
			&run.RowsExtracted, &run.RowsExported, &run.OutputPath, &run.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
