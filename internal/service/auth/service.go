package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service отвечает за аутентификацию оператора и выдачу сессионных токенов.
// Сессии живут в памяти процесса: студия обслуживается одним оператором,
// и потеря сессий при рестарте означает только повторный логин.
type Service struct {
	passwordHash []byte
	sessionTTL   time.Duration
	timeProvider TimeProvider
	log          Logger

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiration
}

func New(passwordHash string, sessionTTL time.Duration, timeProvider TimeProvider, log Logger) (*Service, error) {
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("%w: New - bcrypt.Cost: %v", ErrInvalidPasswordHash, err)
	}

	return &Service{
		passwordHash: []byte(passwordHash),
		sessionTTL:   sessionTTL,
		timeProvider: timeProvider,
		log:          log,
		sessions:     make(map[string]time.Time),
	}, nil
}

// Login проверяет пароль оператора и выдаёт сессионный токен.
// Неудачная попытка не меняет состояние сессий.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Warn("[auth.Login] Неудачная попытка входа оператора")
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	expiresAt := s.timeProvider.Now().Add(s.sessionTTL)

	s.mu.Lock()
	s.sessions[token] = expiresAt
	s.mu.Unlock()

	s.log.Info("[auth.Login] Оператор вошёл в систему, сессия до %s", expiresAt.Format(time.RFC3339))
	return token, nil
}

// Verify проверяет, что токен существует и его сессия не истекла.
// Истёкшие сессии удаляются при проверке.
func (s *Service) Verify(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.sessions[token]
	if !ok {
		return false
	}

	if s.timeProvider.Now().After(expiresAt) {
		delete(s.sessions, token)
		return false
	}

	return true
}

// Logout завершает сессию. Неизвестный токен не является ошибкой.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}
