package ngram

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
)

// SetupStoreSchema initializes the accumulation tables in the provided
// database. It is idempotent and safe to call on an already-initialized
// database.
func SetupStoreSchema(db *sql.DB) error {
	const (
		schemaUnigrams = `
CREATE TABLE IF NOT EXISTS ngram_unigrams (
    syllable TEXT PRIMARY KEY,
    frequency INTEGER NOT NULL DEFAULT 0
);
`
		schemaBigrams = `
CREATE TABLE IF NOT EXISTS ngram_bigrams (
    first TEXT NOT NULL,
    second TEXT NOT NULL,
    frequency INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (first, second)
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaUnigrams); err != nil {
		return fmt.Errorf("could not create unigram schema: %w", err)
	}
	if _, err = tx.Exec(schemaBigrams); err != nil {
		return fmt.Errorf("could not create bigram schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store accumulates n-gram counts in SQLite so that corpora too large for
// a single in-memory pass can be counted in flushed batches. Counts are
// merged with ON CONFLICT upserts; rowid order preserves first-insert
// order, which keeps count ties stable when the tables are read back.
type Store struct {
	db                *sql.DB
	stmtUpsertUnigram *sql.Stmt
	stmtUpsertBigram  *sql.Stmt
	stmtPruneUnigrams *sql.Stmt
	stmtPruneBigrams  *sql.Stmt
	stmtReadUnigrams  *sql.Stmt
	stmtReadBigrams   *sql.Stmt
	logger            *slog.Logger
}

// NewStore creates a Store over the given database, pre-compiling all SQL
// statements. SetupStoreSchema must have been run on the database.
func NewStore(db *sql.DB) (*Store, error) {
	stmtUpsertUnigram, err := db.Prepare(`INSERT INTO ngram_unigrams (syllable, frequency) VALUES (?, ?) ON CONFLICT(syllable) DO UPDATE SET frequency = frequency + excluded.frequency;`)
	if err != nil {
		return nil, err
	}

	stmtUpsertBigram, err := db.Prepare(`INSERT INTO ngram_bigrams (first, second, frequency) VALUES (?, ?, ?) ON CONFLICT(first, second) DO UPDATE SET frequency = frequency + excluded.frequency;`)
	if err != nil {
		return nil, err
	}

	stmtPruneUnigrams, err := db.Prepare(`DELETE FROM ngram_unigrams WHERE frequency < ?;`)
	if err != nil {
		return nil, err
	}

	stmtPruneBigrams, err := db.Prepare(`DELETE FROM ngram_bigrams WHERE frequency < ?;`)
	if err != nil {
		return nil, err
	}

	stmtReadUnigrams, err := db.Prepare(`SELECT syllable, frequency FROM ngram_unigrams ORDER BY frequency DESC, rowid ASC;`)
	if err != nil {
		return nil, err
	}

	stmtReadBigrams, err := db.Prepare(`SELECT first, second, frequency FROM ngram_bigrams ORDER BY frequency DESC, rowid ASC;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:                db,
		stmtUpsertUnigram: stmtUpsertUnigram,
		stmtUpsertBigram:  stmtUpsertBigram,
		stmtPruneUnigrams: stmtPruneUnigrams,
		stmtPruneBigrams:  stmtPruneBigrams,
		stmtReadUnigrams:  stmtReadUnigrams,
		stmtReadBigrams:   stmtReadBigrams,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Close releases all prepared SQL statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtUpsertUnigram.Close()
	_ = s.stmtUpsertBigram.Close()
	_ = s.stmtPruneUnigrams.Close()
	_ = s.stmtPruneBigrams.Close()
	_ = s.stmtReadUnigrams.Close()
	_ = s.stmtReadBigrams.Close()
}

// Reset empties both accumulation tables for a fresh training run.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, `DELETE FROM ngram_unigrams;`); err != nil {
		return fmt.Errorf("could not reset unigram table: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM ngram_bigrams;`); err != nil {
		return fmt.Errorf("could not reset bigram table: %w", err)
	}
	return tx.Commit()
}

// Accumulate merges a batch of in-memory counts into the store within a
// single transaction.
func (s *Store) Accumulate(ctx context.Context, unigrams *UnigramTable, bigrams *BigramTable) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmtUnigram := tx.StmtContext(ctx, s.stmtUpsertUnigram)
	stmtBigram := tx.StmtContext(ctx, s.stmtUpsertBigram)

	for _, r := range unigrams.Syllables() {
		if _, err = stmtUnigram.ExecContext(ctx, string(r), unigrams.Count(r)); err != nil {
			return fmt.Errorf("could not upsert unigram %q: %w", r, err)
		}
	}
	for _, b := range bigrams.Pairs() {
		if _, err = stmtBigram.ExecContext(ctx, string(b.First), string(b.Second), bigrams.Count(b)); err != nil {
			return fmt.Errorf("could not upsert bigram %q: %w", b.Key(), err)
		}
	}

	s.logger.DebugContext(ctx, "Accumulated count batch",
		slog.Int("unigrams", unigrams.Len()),
		slog.Int("bigrams", bigrams.Len()),
	)

	return tx.Commit()
}

// Prune removes all stored entries with a frequency strictly below
// minFreq. A minFreq of 1 or less is a no-op.
func (s *Store) Prune(ctx context.Context, minFreq int) error {
	if minFreq <= 1 {
		return nil
	}

	uniRes, err := s.stmtPruneUnigrams.ExecContext(ctx, minFreq)
	if err != nil {
		return fmt.Errorf("could not prune unigrams: %w", err)
	}
	biRes, err := s.stmtPruneBigrams.ExecContext(ctx, minFreq)
	if err != nil {
		return fmt.Errorf("could not prune bigrams: %w", err)
	}

	uniRemoved, _ := uniRes.RowsAffected()
	biRemoved, _ := biRes.RowsAffected()
	s.logger.InfoContext(ctx, "Store pruned",
		slog.Int("min_frequency", minFreq),
		slog.Int64("unigrams_removed", uniRemoved),
		slog.Int64("bigrams_removed", biRemoved),
	)
	return nil
}

// Tables reads the accumulated counts back into in-memory tables, ordered
// by descending frequency with first-insert order breaking ties.
func (s *Store) Tables(ctx context.Context) (*UnigramTable, *BigramTable, error) {
	unigrams := NewUnigramTable()
	rows, err := s.stmtReadUnigrams.QueryContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	for rows.Next() {
		var syllable string
		var freq int
		if err = rows.Scan(&syllable, &freq); err != nil {
			_ = rows.Close()
			return nil, nil, err
		}
		runes := []rune(syllable)
		if len(runes) != 1 {
			_ = rows.Close()
			return nil, nil, fmt.Errorf("%w: stored unigram %q is not a single syllable", ErrModelFormat, syllable)
		}
		unigrams.Add(runes[0], freq)
	}
	if closeErr := rows.Close(); closeErr != nil {
		return nil, nil, closeErr
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	bigrams := NewBigramTable()
	rows, err = s.stmtReadBigrams.QueryContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	for rows.Next() {
		var first, second string
		var freq int
		if err = rows.Scan(&first, &second, &freq); err != nil {
			_ = rows.Close()
			return nil, nil, err
		}
		fr, sr := []rune(first), []rune(second)
		if len(fr) != 1 || len(sr) != 1 {
			_ = rows.Close()
			return nil, nil, fmt.Errorf("%w: stored bigram %q|%q is not a syllable pair", ErrModelFormat, first, second)
		}
		bigrams.Add(Bigram{First: fr[0], Second: sr[0]}, freq)
	}
	if closeErr := rows.Close(); closeErr != nil {
		return nil, nil, closeErr
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return unigrams, bigrams, nil
}
