package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

// CreateNote creates a new note in the storage
func (s *Storage) CreateNote(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (id, title, content, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		note.ID,
		note.Title,
		note.Content,
		note.OwnerID,
		note.CreatedAt.Unix(),
		note.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// GetNote retrieves a single note by ID scoped to its owner.
// Владелец проверяется в самом предикате запроса, а не после выборки
func (s *Storage) GetNote(ctx context.Context, id, ownerID string) (*models.Note, error) {
	query := `
		SELECT id, title, content, owner_id, created_at, updated_at
		FROM notes
		WHERE id = ? AND owner_id = ?
	`

	return s.scanNote(s.db.QueryRowContext(ctx, query, id, ownerID))
}

// GetUserNotes retrieves all notes owned by the user
func (s *Storage) GetUserNotes(ctx context.Context, ownerID string) ([]*models.Note, error) {
	query := `
		SELECT id, title, content, owner_id, created_at, updated_at
		FROM notes
		WHERE owner_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)

	for rows.Next() {
		note := &models.Note{}
		var createdAt, updatedAt int64

		err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.OwnerID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}

		note.CreatedAt = time.Unix(createdAt, 0).UTC()
		note.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// UpdateNote updates title and content of the note matching id AND owner_id
// and returns the updated note
func (s *Storage) UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		UPDATE notes
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		note.Title,
		note.Content,
		note.UpdatedAt.Unix(),
		note.ID,
		note.OwnerID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	// Чужая или несуществующая заметка — для вызывающего это одно и то же
	if rows == 0 {
		return nil, storage.ErrNoteNotFound
	}

	return s.GetNote(ctx, note.ID, note.OwnerID)
}

// DeleteNote removes the note matching id AND owner_id and returns its prior state
func (s *Storage) DeleteNote(ctx context.Context, id, ownerID string) (*models.Note, error) {
	// Сначала читаем состояние, затем удаляем тем же предикатом
	note, err := s.GetNote(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM notes WHERE id = ? AND owner_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrNoteNotFound
	}

	return note, nil
}

// scanNote читает одну строку из таблицы notes
func (s *Storage) scanNote(row *sql.Row) (*models.Note, error) {
	note := &models.Note{}
	var createdAt, updatedAt int64

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.OwnerID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	note.CreatedAt = time.Unix(createdAt, 0).UTC()
	note.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	return note, nil
}
