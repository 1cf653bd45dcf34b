package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
	"github.com/iudanet/notekeeper/pkg/api"
)

// NotesHandler обрабатывает CRUD запросы по заметкам
// Все операции работают только с заметками аутентифицированного пользователя:
// владелец подставляется в предикат запроса на уровне хранилища
type NotesHandler struct {
	logger      *slog.Logger
	noteStorage storage.NoteStorage
}

// NewNotesHandler создает новый handler для заметок
func NewNotesHandler(logger *slog.Logger, noteStorage storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger:      logger,
		noteStorage: noteStorage,
	}
}

// Create обрабатывает POST /api/v1/notes
// Создание новой заметки, владельцем становится текущий пользователь
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем user_id из контекста (установлен AuthMiddleware)
	ownerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user ID not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode note request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	note := &models.Note{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.noteStorage.CreateNote(ctx, note); err != nil {
		h.logger.ErrorContext(ctx, "failed to create note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created",
		slog.String("note_id", note.ID),
		slog.String("user_id", ownerID))

	sendJSON(h.logger, w, toNoteResponse(note), http.StatusCreated)
}

// List обрабатывает GET /api/v1/notes
// Возвращает все заметки текущего пользователя и только его
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user ID not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := h.noteStorage.GetUserNotes(ctx, ownerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notes", slog.Any("error", err), slog.String("user_id", ownerID))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.NotesListResponse{
		Notes: make([]api.NoteResponse, 0, len(notes)),
		Count: len(notes),
	}
	for _, note := range notes {
		resp.Notes = append(resp.Notes, toNoteResponse(note))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Update обрабатывает PUT /api/v1/notes/{id}
// Обновляет title и content заметки текущего пользователя
// Чужая заметка неотличима от несуществующей — в обоих случаях 404
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user ID not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	noteID := r.PathValue("id")
	if noteID == "" {
		sendError(h.logger, w, "note id is required", http.StatusBadRequest)
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode note request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	note := &models.Note{
		ID:        noteID,
		Title:     req.Title,
		Content:   req.Content,
		OwnerID:   ownerID,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := h.noteStorage.UpdateNote(ctx, note)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			h.logger.WarnContext(ctx, "note not found for update",
				slog.String("note_id", noteID),
				slog.String("user_id", ownerID))
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note updated",
		slog.String("note_id", noteID),
		slog.String("user_id", ownerID))

	sendJSON(h.logger, w, toNoteResponse(updated), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/notes/{id}
// Удаляет заметку текущего пользователя, возвращает ее последнее состояние
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user ID not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	noteID := r.PathValue("id")
	if noteID == "" {
		sendError(h.logger, w, "note id is required", http.StatusBadRequest)
		return
	}

	deleted, err := h.noteStorage.DeleteNote(ctx, noteID, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			h.logger.WarnContext(ctx, "note not found for delete",
				slog.String("note_id", noteID),
				slog.String("user_id", ownerID))
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note deleted",
		slog.String("note_id", noteID),
		slog.String("user_id", ownerID))

	resp := api.DeleteNoteResponse{
		Message: "Note deleted successfully",
		Note:    toNoteResponse(deleted),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// toNoteResponse конвертирует модель в API формат
func toNoteResponse(note *models.Note) api.NoteResponse {
	return api.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		OwnerID:   note.OwnerID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
