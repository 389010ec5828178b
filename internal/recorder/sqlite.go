package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"BacBoSentinel/internal/model"
)

// SQLiteRecorder persists the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			outcome     TEXT NOT NULL,
			history_len INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_ts ON rounds(timestamp)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			pattern     TEXT NOT NULL,
			entry       TEXT NOT NULL,
			confidence  INTEGER,
			length      INTEGER,
			history     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,

		`CREATE TABLE IF NOT EXISTS resolutions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			signal_id      TEXT NOT NULL,
			timestamp      INTEGER NOT NULL,
			entry          TEXT,
			outcome        TEXT,
			result         TEXT,
			direct_wins    INTEGER,
			recovered_wins INTEGER,
			losses         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resolutions_ts ON resolutions(timestamp)`,

		`CREATE TABLE IF NOT EXISTS fetch_failures (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			source    TEXT,
			error     TEXT
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRound(evt *RoundEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO rounds (timestamp, outcome, history_len) VALUES (?,?,?)`,
		evt.At.Unix(), string(evt.Outcome), evt.HistoryLen)
	return err
}

func (r *SQLiteRecorder) RecordSignal(evt *SignalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sig := evt.Signal
	_, err := r.db.Exec(`INSERT INTO signals
		(id, timestamp, pattern, entry, confidence, length, history)
		VALUES (?,?,?,?,?,?,?)`,
		sig.ID, sig.OpenedAt.Unix(), string(sig.Pattern), string(sig.Entry),
		sig.Confidence, evt.Match.Length, joinOutcomes(evt.History),
	)
	return err
}

func (r *SQLiteRecorder) RecordResolution(evt *ResolutionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := evt.Resolution
	sb := evt.Scoreboard
	_, err := r.db.Exec(`INSERT INTO resolutions
		(signal_id, timestamp, entry, outcome, result, direct_wins, recovered_wins, losses)
		VALUES (?,?,?,?,?,?,?,?)`,
		res.Signal.ID, res.ResolvedAt.Unix(), string(res.Signal.Entry), string(res.Outcome),
		string(res.Result), sb.DirectWins, sb.RecoveredWins, sb.Losses,
	)
	return err
}

func (r *SQLiteRecorder) RecordFetchFailure(evt *FetchFailureEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fetch_failures (timestamp, source, error) VALUES (?,?,?)`,
		evt.At.Unix(), evt.Source, evt.Err)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}

func joinOutcomes(seq []model.Outcome) string {
	parts := make([]string, len(seq))
	for i, o := range seq {
		parts[i] = string(o)
	}
	return strings.Join(parts, ",")
}
