package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле оператора
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidPasswordHash возвращается, когда хэш пароля в конфигурации
	// не является корректным bcrypt-хэшем
	ErrInvalidPasswordHash = errors.New("auth: invalid admin password hash")
)
