package toggle_block

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

type fakeBlockStore struct {
	records  []domain.BlockRecord
	upserted []domain.BlockRecord
	deleted  []string
	listErr  error
}

func (s *fakeBlockStore) ListBlocks(context.Context) ([]domain.BlockRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *fakeBlockStore) UpsertBlock(_ context.Context, rec domain.BlockRecord) error {
	s.upserted = append(s.upserted, rec)
	return nil
}

func (s *fakeBlockStore) DeleteBlock(_ context.Context, date string) error {
	s.deleted = append(s.deleted, date)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Services: []domain.Service{{ID: "support", Title: "Маникюр", Price: 1000}},
		AddOns:   []domain.AddOn{{ID: "extension", Title: "Наращивание", Price: 80, IsCount: true}},
		Slots:    []domain.SlotLabel{"10:00", "14:00", "18:00"},
	}
}

func TestExecute_ToggleDayOn(t *testing.T) {
	store := &fakeBlockStore{}
	uc := NewUseCase(testCatalog(), store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)

	assert.True(t, resp.FullDay)
	assert.Empty(t, resp.Slots)
	require.Len(t, store.upserted, 1)
	assert.True(t, store.upserted[0].FullDay)
	assert.Empty(t, store.deleted)
}

func TestExecute_ToggleDayOff(t *testing.T) {
	store := &fakeBlockStore{
		records: []domain.BlockRecord{{Date: "2024-05-10", FullDay: true}},
	}
	uc := NewUseCase(testCatalog(), store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)

	assert.False(t, resp.FullDay)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, []string{"2024-05-10"}, store.deleted)
	assert.Empty(t, store.upserted)
}

func TestExecute_ToggleSlotOn(t *testing.T) {
	store := &fakeBlockStore{}
	uc := NewUseCase(testCatalog(), store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Slot: "14:00"})
	require.NoError(t, err)

	assert.False(t, resp.FullDay)
	assert.Equal(t, []string{"14:00"}, resp.Slots)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, []domain.SlotLabel{"14:00"}, store.upserted[0].Slots)
}

func TestExecute_ToggleLastSlotOffDeletesRecord(t *testing.T) {
	store := &fakeBlockStore{
		records: []domain.BlockRecord{{Date: "2024-05-10", Slots: []domain.SlotLabel{"14:00"}}},
	}
	uc := NewUseCase(testCatalog(), store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Slot: "14:00"})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, []string{"2024-05-10"}, store.deleted)
	assert.Empty(t, store.upserted)
}

func TestExecute_ToggleSlotOnFullDayChangesNothing(t *testing.T) {
	store := &fakeBlockStore{
		records: []domain.BlockRecord{{Date: "2024-05-10", FullDay: true}},
	}
	uc := NewUseCase(testCatalog(), store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Slot: "14:00"})
	require.NoError(t, err)

	assert.True(t, resp.FullDay)
	assert.Empty(t, store.upserted, "no-op must not touch storage")
	assert.Empty(t, store.deleted)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing date",
			req:     &Request{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed date",
			req:     &Request{Date: "10.05.2024"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "slot outside schedule",
			req:     &Request{Date: "2024-05-10", Slot: "12:00"},
			wantErr: ErrInvalidSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBlockStore{}
			uc := NewUseCase(testCatalog(), store, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.upserted)
			assert.Empty(t, store.deleted)
		})
	}
}

func TestExecute_ListFailure(t *testing.T) {
	store := &fakeBlockStore{listErr: assert.AnError}
	uc := NewUseCase(testCatalog(), store, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.ErrorIs(t, err, ErrInternal)
}
