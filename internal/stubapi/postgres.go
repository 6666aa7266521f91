package stubapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgx ping: %w", err)
	}
	slog.Info("postgres connected")
	return pool, nil
}

const uniqueViolation = "23505"

// PostgresStore keeps every kind in one JSONB table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// schema creates the records table and the unique indexes that back the
// one-application-per-program and one-certificate-per-assessment rules.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS records (
		kind       TEXT        NOT NULL,
		id         TEXT        NOT NULL,
		data       JSONB       NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (kind, id)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS records_application_once
		ON records ((data->>'program_id'), (data->>'student_id'))
		WHERE kind = 'applications';`,
	`CREATE UNIQUE INDEX IF NOT EXISTS records_certificate_once
		ON records ((data->>'assessment_id'))
		WHERE kind = 'certificates';`,
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("prepare schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, kind string, filter Filter, offset, limit int) ([]json.RawMessage, int, error) {
	if offset < 0 {
		return nil, 0, ErrInvalidOffset
	}
	where, args := filterClause(kind, filter)

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM records WHERE `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", kind, err)
	}

	query := `SELECT data FROM records WHERE ` + where + ` ORDER BY created_at, id`
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	rows, err := s.pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	items := make([]json.RawMessage, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", kind, err)
		}
		items = append(items, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, total, nil
}

func (s *PostgresStore) Get(ctx context.Context, kind, id string) (json.RawMessage, error) {
	const query = `SELECT data FROM records WHERE kind = $1 AND id = $2;`
	var data []byte
	if err := s.pool.QueryRow(ctx, query, kind, id).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	return json.RawMessage(data), nil
}

func (s *PostgresStore) Put(ctx context.Context, kind, id string, data json.RawMessage) error {
	const query = `
	INSERT INTO records (kind, id, data)
	VALUES ($1, $2, $3)
	ON CONFLICT (kind, id) DO UPDATE SET data = EXCLUDED.data;`
	if _, err := s.pool.Exec(ctx, query, kind, id, []byte(data)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("put %s %s: %w", kind, id, ErrConflict)
		}
		return fmt.Errorf("put %s %s: %w", kind, id, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, kind, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM records WHERE kind = $1 AND id = $2;`, kind, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// filterClause builds the WHERE body. Keys are bound as parameters, so
// arbitrary filter names cannot inject SQL.
func filterClause(kind string, filter Filter) (string, []any) {
	args := []any{kind}
	clauses := []string{"kind = $1"}
	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		args = append(args, key, filter[key])
		clauses = append(clauses, fmt.Sprintf("data->>$%d = $%d", len(args)-1, len(args)))
	}
	return strings.Join(clauses, " AND "), args
}
