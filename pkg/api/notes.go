package api

import "time"

// NoteRequest представляет тело запроса на создание или обновление заметки
type NoteRequest struct {
	Title   string `json:"title"`   // заголовок, может быть пустым
	Content string `json:"content"` // текст заметки, может быть пустым
}

// NoteResponse представляет заметку в ответе API
type NoteResponse struct {
	ID        string    `json:"id"`         // UUID заметки
	Title     string    `json:"title"`      // заголовок
	Content   string    `json:"content"`    // текст заметки
	OwnerID   string    `json:"owner_id"`   // ID владельца
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
}

// NotesListResponse представляет список заметок пользователя
type NotesListResponse struct {
	Notes []NoteResponse `json:"notes"` // заметки текущего пользователя
	Count int            `json:"count"` // количество заметок
}

// DeleteNoteResponse представляет подтверждение удаления заметки
type DeleteNoteResponse struct {
	Message string       `json:"message"` // сообщение об успешном удалении
	Note    NoteResponse `json:"note"`    // состояние заметки до удаления
}
