package sqlite

import (
	"context"
	"database/sql"

	"github.com/garnizeh/scout/pkg/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, username string) (*models.User, error) {
	ts := now()
	if _, err := r.conn.Exec(ctx, `INSERT INTO users (username, created, last_login) VALUES (?, ?, ?)`, username, ts, ts); err != nil {
		return nil, err
	}

	return &models.User{Username: username, CreatedAt: fromMillis(ts), LastLogin: fromMillis(ts)}, nil
}

func (r *SQLiteRepo) GetUser(ctx context.Context, username string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT username, created, last_login FROM users WHERE username = ?`, username)

	var u models.User
	var created, lastLogin int64
	if err := row.Scan(&u.Username, &created, &lastLogin); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	u.CreatedAt = fromMillis(created)
	u.LastLogin = fromMillis(lastLogin)
	return &u, nil
}

func (r *SQLiteRepo) UpdateLastLogin(ctx context.Context, username string) error {
	_, err := r.conn.Exec(ctx, `UPDATE users SET last_login = ? WHERE username = ?`, now(), username)
	return err
}
