package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/labela/labela-control/internal/model"
)

const sessionSchema = `
	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		credential TEXT,
		user_id INTEGER,
		user_name TEXT,
		user_email TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
`

// OpenSQLite opens (creating if needed) the session database at path.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sessionSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return db, nil
}

type sessionRow struct {
	Credential sql.NullString `db:"credential"`
	UserID     sql.NullInt64  `db:"user_id"`
	UserName   sql.NullString `db:"user_name"`
	UserEmail  sql.NullString `db:"user_email"`
}

// SQLiteRepository keeps the session as the single row of the session table.
type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*model.Session, error) {
	var row sessionRow
	query := `SELECT credential, user_id, user_name, user_email FROM session WHERE id = 1`
	err := r.DB.GetContext(ctx, &row, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	s := &model.Session{Credential: row.Credential.String}
	if row.UserID.Valid {
		s.User = &model.User{
			ID:    row.UserID.Int64,
			Name:  row.UserName.String,
			Email: row.UserEmail.String,
		}
	}
	return s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s *model.Session) error {
	row := sessionRow{Credential: sql.NullString{String: s.Credential, Valid: s.Credential != ""}}
	if s.User != nil {
		row.UserID = sql.NullInt64{Int64: s.User.ID, Valid: true}
		row.UserName = sql.NullString{String: s.User.Name, Valid: true}
		row.UserEmail = sql.NullString{String: s.User.Email, Valid: true}
	}

	query := `
		INSERT INTO session (id, credential, user_id, user_name, user_email, updated_at)
		VALUES (1, :credential, :user_id, :user_name, :user_email, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			credential = excluded.credential,
			user_id = excluded.user_id,
			user_name = excluded.user_name,
			user_email = excluded.user_email,
			updated_at = excluded.updated_at
	`
	_, err := r.DB.NamedExecContext(ctx, query, row)
	return err
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)
	return err
}
