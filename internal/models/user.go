package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Username     string    `json:"username"`   // уникальный username
	Email        string    `json:"email"`      // уникальный email, используется для логина
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, никогда не отдается клиенту
	CreatedAt    time.Time `json:"created_at"` // время создания
	UpdatedAt    time.Time `json:"updated_at"` // время последнего обновления
}
