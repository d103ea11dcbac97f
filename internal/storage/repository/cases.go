package repository

import (
	"context"
	"fmt"

	"github.com/neurobond/neurobond/internal/models"
)

// CreateCase stores a submitted community case and returns its ID.
func (s *Storage) CreateCase(ctx context.Context, c models.CommunityCase) (int, error) {
	const op = "storage.CreateCase"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO community_cases (title, category, dialog)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query, c.Title, c.Category, c.Dialog).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCases returns stored community cases, oldest first so the combined
// list keeps a stable order behind the builtin cases.
func (s *Storage) ListCases(ctx context.Context, limit, offset int) ([]*models.CommunityCase, error) {
	const op = "storage.ListCases"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, category, dialog, created_at
			  FROM community_cases
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.CommunityCase
	for rows.Next() {
		var item models.CommunityCase
		if err := rows.Scan(&item.ID, &item.Title, &item.Category, &item.Dialog, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
