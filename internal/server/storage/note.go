package storage

import (
	"context"

	"github.com/iudanet/notekeeper/internal/models"
)

// NoteStorage defines interface for note persistence.
// Every lookup takes the owner ID and filters by it inside the query
// predicate itself, never as a check after the fetch.
type NoteStorage interface {
	// CreateNote creates a new note in the storage
	CreateNote(ctx context.Context, note *models.Note) error

	// GetNote retrieves a single note by ID scoped to its owner
	// Returns ErrNoteNotFound if no note matches id AND ownerID
	GetNote(ctx context.Context, id, ownerID string) (*models.Note, error)

	// GetUserNotes retrieves all notes owned by the user
	// Returns empty slice if no notes found
	GetUserNotes(ctx context.Context, ownerID string) ([]*models.Note, error)

	// UpdateNote updates title and content of the note matching id AND ownerID
	// and returns the updated note.
	// Returns ErrNoteNotFound if no note matches.
	UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// DeleteNote removes the note matching id AND ownerID and returns
	// its prior state.
	// Returns ErrNoteNotFound if no note matches.
	DeleteNote(ctx context.Context, id, ownerID string) (*models.Note, error)
}
