package models

import "time"

// Note представляет заметку пользователя
// OwnerID устанавливается один раз при создании и больше не меняется
type Note struct {
	ID        string    `json:"id"`         // UUID заметки
	Title     string    `json:"title"`      // заголовок, может быть пустым
	Content   string    `json:"content"`    // текст заметки, может быть пустым
	OwnerID   string    `json:"owner_id"`   // ID пользователя-владельца
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
}
