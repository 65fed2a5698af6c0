package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

type fakeStore struct {
	inserted *domain.Appointment
	err      error
}

func (s *fakeStore) InsertAppointment(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.inserted = appt
	created := *appt
	created.CreatedAt = time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	return &created, nil
}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Services: []domain.Service{
			{ID: "support", Title: "Маникюр с покрытием", Price: 1000, IsStartPrice: true, DurationMinutes: 240},
			{ID: "cat_eye", Title: "Кошачий глаз", Price: 850, DurationMinutes: 120},
		},
		AddOns: []domain.AddOn{
			{ID: "remove_our", Title: "Снятие нашего покрытия", Price: 150},
			{ID: "remove_other", Title: "Снятие чужого покрытия", Price: 250},
			{ID: "extension", Title: "Наращивание", Price: 80, IsCount: true},
		},
		Slots: []domain.SlotLabel{"10:00", "14:00", "18:00"},
	}
}

func newTestUseCase(store *fakeStore) *UseCase {
	uc := NewUseCase(testCatalog(), store, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 19, 9, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceID:      "support",
		AddOns:         []string{"remove_our", "extension"},
		ExtensionCount: 2,
		Date:           "2024-03-25",
		Slot:           "14:00",
		Client: ClientInfo{
			Name:  "Аня",
			Phone: "+79990001122",
			Line:  "anya_nails",
		},
	}
}

func TestExecute(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "support", resp.ServiceID)
	assert.Equal(t, "Маникюр с покрытием", resp.ServiceName)
	assert.True(t, resp.IsStartPrice)
	assert.Equal(t, int64(1310), resp.Price, "1000 + 150 + 2*80")
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "2024-03-25", resp.Date)
	assert.Equal(t, "14:00", resp.Slot)
	assert.False(t, resp.CreatedAt.IsZero())

	require.NotNil(t, store.inserted)
	assert.Equal(t, domain.StatusPending, store.inserted.Status)
	assert.Equal(t, resp.ID, store.inserted.ID)
}

func TestExecute_PriceComputedServerSide(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store)

	req := validRequest()
	req.ServiceID = "cat_eye"
	req.AddOns = []string{"remove_other"}
	req.ExtensionCount = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1100), resp.Price)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "missing service",
			mutate:  func(r *Request) { r.ServiceID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown service",
			mutate:  func(r *Request) { r.ServiceID = "pedicure" },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "missing client name",
			mutate:  func(r *Request) { r.Client.Name = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing client phone",
			mutate:  func(r *Request) { r.Client.Phone = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing client line",
			mutate:  func(r *Request) { r.Client.Line = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative extension count",
			mutate:  func(r *Request) { r.ExtensionCount = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "extension count above limit",
			mutate:  func(r *Request) { r.ExtensionCount = 11 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown add-on",
			mutate:  func(r *Request) { r.AddOns = []string{"glitter"} },
			wantErr: ErrUnknownAddOn,
		},
		{
			name:    "conflicting removal add-ons",
			mutate:  func(r *Request) { r.AddOns = []string{"remove_our", "remove_other"} },
			wantErr: ErrConflictingAddOns,
		},
		{
			name:    "slot outside schedule",
			mutate:  func(r *Request) { r.Slot = "12:00" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "malformed date",
			mutate:  func(r *Request) { r.Date = "25.03.2024" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date in the past",
			mutate:  func(r *Request) { r.Date = "2024-03-18" },
			wantErr: ErrDateOutOfWindow,
		},
		{
			name:    "date past the horizon",
			mutate:  func(r *Request) { r.Date = "2024-04-01" },
			wantErr: ErrDateOutOfWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uc := newTestUseCase(store)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, store.inserted, "nothing is persisted on validation failure")
		})
	}
}

func TestExecute_HorizonExpandsOnCutoff(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store)
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.Date = "2024-04-30"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_HorizonEndInServerTimezone(t *testing.T) {
	// Часы сервиса идут в зоне студии, дата запроса парсится в UTC:
	// дата, равная горизонту, всё равно принимается
	store := &fakeStore{}
	uc := newTestUseCase(store)
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 19, 9, 0, 0, 0, time.FixedZone("UTC+8", 8*60*60))}

	req := validRequest()
	req.Date = "2024-03-31"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// Запись на сегодня к западу от UTC не считается прошедшей
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 19, 9, 0, 0, 0, time.FixedZone("UTC-7", -7*60*60))}
	req.Date = "2024-03-19"

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_StoreFailure(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
}
