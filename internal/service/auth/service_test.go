package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T, password string, ttl time.Duration, clock *fixedTime) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	svc, err := New(string(hash), ttl, clock, nopLogger{})
	require.NoError(t, err)
	return svc
}

func TestNew_RejectsMalformedHash(t *testing.T) {
	_, err := New("not-a-bcrypt-hash", time.Hour, &RealTimeProvider{}, nopLogger{})
	assert.ErrorIs(t, err, ErrInvalidPasswordHash)
}

func TestLoginAndVerify(t *testing.T) {
	clock := &fixedTime{now: time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(t, "studio-secret", 2*time.Hour, clock)

	token, err := svc.Login("studio-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.Verify(token))
}

func TestLogin_WrongPassword(t *testing.T) {
	clock := &fixedTime{now: time.Now()}
	svc := newTestService(t, "studio-secret", time.Hour, clock)

	token, err := svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestVerify_UnknownToken(t *testing.T) {
	svc := newTestService(t, "studio-secret", time.Hour, &fixedTime{now: time.Now()})

	assert.False(t, svc.Verify(""))
	assert.False(t, svc.Verify("deadbeef"))
}

func TestVerify_ExpiredSession(t *testing.T) {
	clock := &fixedTime{now: time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(t, "studio-secret", time.Hour, clock)

	token, err := svc.Login("studio-secret")
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour + time.Minute)
	assert.False(t, svc.Verify(token))

	// Истёкшая сессия удалена: откат часов её не воскрешает
	clock.now = clock.now.Add(-time.Hour)
	assert.False(t, svc.Verify(token))
}

func TestLogout(t *testing.T) {
	clock := &fixedTime{now: time.Now()}
	svc := newTestService(t, "studio-secret", time.Hour, clock)

	token, err := svc.Login("studio-secret")
	require.NoError(t, err)

	svc.Logout(token)
	assert.False(t, svc.Verify(token))

	// Повторный logout безопасен
	svc.Logout(token)
}

func TestLogin_IssuesDistinctTokens(t *testing.T) {
	clock := &fixedTime{now: time.Now()}
	svc := newTestService(t, "studio-secret", time.Hour, clock)

	first, err := svc.Login("studio-secret")
	require.NoError(t, err)
	second, err := svc.Login("studio-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(first), "older sessions stay valid")
	assert.True(t, svc.Verify(second))
}
