package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость bcrypt по умолчанию (10 раундов)
const DefaultCost = bcrypt.DefaultCost

// HashPassword хеширует пароль с использованием bcrypt
// Соль генерируется случайно на каждый вызов, поэтому два хеша
// одного пароля никогда не совпадают
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному хешу
// Свободная функция, не привязана к модели пользователя
// Возвращает false при несовпадении, ошибку только при некорректном хеше
func VerifyPassword(password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		// Хеш поврежден или имеет неверный формат
		return false, fmt.Errorf("failed to compare password: %w", err)
	}

	return true, nil
}
