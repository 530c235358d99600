package historydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
)

// NewSQLiteStore opens (creating if necessary) a sqlite-backed Store with
// its database file in storageDir.
func NewSQLiteStore(storageDir string) (Store, error) {
	fileName := filepath.Join(storageDir, "history.db")

	db, err := sql.Open("sqlite", fileName)
	if err != nil {
		return nil, wrapDBError(err)
	}

	repo := &sqliteHistoryRepository{db: db}
	if err := repo.init(); err != nil {
		return nil, err
	}

	return &sqliteStore{db: db, history: repo}, nil
}

type sqliteStore struct {
	db      *sql.DB
	history *sqliteHistoryRepository
}

func (s *sqliteStore) History() HistoryRepository { return s.history }

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

type sqliteHistoryRepository struct {
	db *sql.DB
}

func (repo *sqliteHistoryRepository) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id TEXT NOT NULL PRIMARY KEY,
		source TEXT NOT NULL,
		digest BLOB NOT NULL,
		byte_length INTEGER NOT NULL,
		accepted INTEGER NOT NULL,
		failure_index INTEGER NOT NULL,
		failure_message TEXT NOT NULL,
		submitted_at INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (repo *sqliteHistoryRepository) Close() error { return nil }

func (repo *sqliteHistoryRepository) Create(ctx context.Context, rec ParseRecord) (ParseRecord, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return ParseRecord{}, fmt.Errorf("could not generate ID: %w", err)
	}
	rec.ID = newUUID
	if rec.SubmittedAt.IsZero() {
		rec.SubmittedAt = time.Now()
	}

	stmt, err := repo.db.Prepare(`INSERT INTO history (id, source, digest, byte_length, accepted, failure_index, failure_message, submitted_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ParseRecord{}, wrapDBError(err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		rec.ID.String(), rec.Source, rec.Digest, rec.ByteLength, boolToInt(rec.Accepted), rec.FailureIndex, rec.FailureMessage, rec.SubmittedAt.Unix(),
	)
	if err != nil {
		return ParseRecord{}, wrapDBError(err)
	}

	return rec, nil
}

func (repo *sqliteHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (ParseRecord, error) {
	row := repo.db.QueryRowContext(ctx,
		`SELECT id, source, digest, byte_length, accepted, failure_index, failure_message, submitted_at FROM history WHERE id = ?`, id.String(),
	)
	return scanParseRecord(row)
}

func (repo *sqliteHistoryRepository) GetAll(ctx context.Context, notBefore *time.Time, notAfter *time.Time) ([]ParseRecord, error) {
	query := `SELECT id, source, digest, byte_length, accepted, failure_index, failure_message, submitted_at FROM history`
	var args []any
	var clauses []string
	if notBefore != nil {
		clauses = append(clauses, "submitted_at >= ?")
		args = append(args, notBefore.Unix())
	}
	if notAfter != nil {
		clauses = append(clauses, "submitted_at <= ?")
		args = append(args, notAfter.Unix())
	}
	if len(clauses) > 0 {
		query += " WHERE " + clauses[0]
		for _, c := range clauses[1:] {
			query += " AND " + c
		}
	}
	query += " ORDER BY submitted_at DESC"

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []ParseRecord
	for rows.Next() {
		rec, err := scanParseRecord(rows)
		if err != nil {
			return all, err
		}
		all = append(all, rec)
	}
	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanParseRecord(row rowScanner) (ParseRecord, error) {
	var rec ParseRecord
	var id string
	var accepted int
	var submittedAt int64

	err := row.Scan(&id, &rec.Source, &rec.Digest, &rec.ByteLength, &accepted, &rec.FailureIndex, &rec.FailureMessage, &submittedAt)
	if err != nil {
		return ParseRecord{}, wrapDBError(err)
	}

	rec.ID, err = uuid.Parse(id)
	if err != nil {
		return ParseRecord{}, fmt.Errorf("%w: stored UUID %q is invalid", ErrDecodingFailure, id)
	}
	rec.Accepted = accepted != 0
	rec.SubmittedAt = time.Unix(submittedAt, 0)

	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return ErrConstraintViolation
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
