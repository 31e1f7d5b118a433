package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/garnizeh/scout/pkg/models"
	"github.com/garnizeh/scout/pkg/repository"
)

// Roadmaps are stored as whole JSON documents; owner and creation time are
// lifted into columns for the per-user list query.

func (r *SQLiteRepo) SaveRoadmap(ctx context.Context, doc *models.Roadmap) error {
	if doc == nil {
		return fmt.Errorf("roadmap is nil")
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}

	_, err = r.conn.Exec(ctx,
		`INSERT INTO roadmaps (id, user_id, created, updated, doc) VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.UserID, doc.CreatedAt.UnixMilli(), doc.UpdatedAt.UnixMilli(), string(b))
	return err
}

func (r *SQLiteRepo) GetRoadmap(ctx context.Context, id string) (*models.Roadmap, error) {
	row := r.conn.QueryRow(ctx, `SELECT doc FROM roadmaps WHERE id = ?`, id)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var doc models.Roadmap
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode roadmap %s: %w", id, err)
	}
	return &doc, nil
}

func (r *SQLiteRepo) UpdateRoadmap(ctx context.Context, id string, doc *models.Roadmap) error {
	if doc == nil {
		return fmt.Errorf("roadmap is nil")
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}

	_, err = r.conn.Exec(ctx,
		`UPDATE roadmaps SET user_id = ?, updated = ?, doc = ? WHERE id = ?`,
		doc.UserID, doc.UpdatedAt.UnixMilli(), string(b), id)
	return err
}

func (r *SQLiteRepo) GetUserRoadmaps(ctx context.Context, username string) ([]models.Roadmap, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT doc FROM roadmaps WHERE user_id = ? ORDER BY created DESC`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Roadmap
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc models.Roadmap
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode roadmap: %w", err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}
