package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

type fakeApptRepo struct {
	appointments []*domain.Appointment
	listErr      error
}

func (r *fakeApptRepo) Insert(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.appointments = append(r.appointments, appt)
	return appt, nil
}

func (r *fakeApptRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeApptRepo) List(context.Context) ([]*domain.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.appointments, nil
}

func (r *fakeApptRepo) PatchStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	for _, a := range r.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return assert.AnError
}

type fakeBlockRepo struct {
	records []domain.BlockRecord
}

func (r *fakeBlockRepo) Upsert(_ context.Context, rec domain.BlockRecord) error {
	for i, existing := range r.records {
		if existing.Date == rec.Date {
			r.records[i] = rec
			return nil
		}
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, date string) error {
	for i, existing := range r.records {
		if existing.Date == date {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBlockRepo) List(context.Context) ([]domain.BlockRecord, error) {
	return r.records, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newStartedStore(t *testing.T, apptRepo *fakeApptRepo, blockRepo *fakeBlockRepo) *Store {
	t.Helper()

	st := New(apptRepo, blockRepo, nopLogger{})
	require.NoError(t, st.Start(context.Background()))
	return st
}

func TestStart_PublishesInitialSnapshots(t *testing.T) {
	apptRepo := &fakeApptRepo{appointments: []*domain.Appointment{{ID: "a1", Status: domain.StatusPending}}}
	blockRepo := &fakeBlockRepo{records: []domain.BlockRecord{{Date: "2024-05-10", FullDay: true}}}

	st := newStartedStore(t, apptRepo, blockRepo)

	appts, releaseAppts := st.SubscribeAppointments()
	blocks, releaseBlocks := st.SubscribeBlocks()
	defer releaseAppts()
	defer releaseBlocks()

	assert.Len(t, <-appts, 1)
	assert.Len(t, <-blocks, 1)
}

func TestStart_FailsWithoutSnapshot(t *testing.T) {
	apptRepo := &fakeApptRepo{listErr: assert.AnError}

	st := New(apptRepo, &fakeBlockRepo{}, nopLogger{})
	assert.Error(t, st.Start(context.Background()))
}

func TestInsertAppointment_PushesSnapshot(t *testing.T) {
	apptRepo := &fakeApptRepo{}
	st := newStartedStore(t, apptRepo, &fakeBlockRepo{})

	appts, release := st.SubscribeAppointments()
	defer release()
	<-appts // начальный снимок

	_, err := st.InsertAppointment(context.Background(), &domain.Appointment{ID: "a1", Status: domain.StatusPending})
	require.NoError(t, err)

	snapshot := <-appts
	require.Len(t, snapshot, 1)
	assert.Equal(t, "a1", snapshot[0].ID)
}

func TestPatchAppointmentStatus_PushesSnapshot(t *testing.T) {
	apptRepo := &fakeApptRepo{appointments: []*domain.Appointment{{ID: "a1", Status: domain.StatusPending}}}
	st := newStartedStore(t, apptRepo, &fakeBlockRepo{})

	appts, release := st.SubscribeAppointments()
	defer release()
	<-appts

	require.NoError(t, st.PatchAppointmentStatus(context.Background(), "a1", domain.StatusCancelled))

	snapshot := <-appts
	require.Len(t, snapshot, 1)
	assert.Equal(t, domain.StatusCancelled, snapshot[0].Status)
}

func TestBlockWrites_PushSnapshots(t *testing.T) {
	st := newStartedStore(t, &fakeApptRepo{}, &fakeBlockRepo{})

	blocks, release := st.SubscribeBlocks()
	defer release()
	<-blocks

	rec := domain.BlockRecord{Date: "2024-05-10", Slots: []domain.SlotLabel{"14:00"}}
	require.NoError(t, st.UpsertBlock(context.Background(), rec))
	assert.Equal(t, []domain.BlockRecord{rec}, <-blocks)

	require.NoError(t, st.DeleteBlock(context.Background(), "2024-05-10"))
	assert.Empty(t, <-blocks)
}

func TestHandleNotification(t *testing.T) {
	apptRepo := &fakeApptRepo{}
	blockRepo := &fakeBlockRepo{}
	st := newStartedStore(t, apptRepo, blockRepo)

	appts, releaseAppts := st.SubscribeAppointments()
	blocks, releaseBlocks := st.SubscribeBlocks()
	defer releaseAppts()
	defer releaseBlocks()
	<-appts
	<-blocks

	// Изменение пришло из другого процесса: в репозитории уже новые данные
	apptRepo.appointments = []*domain.Appointment{{ID: "a1", Status: domain.StatusPending}}
	st.HandleNotification(context.Background(), ChannelAppointments)
	assert.Len(t, <-appts, 1)

	blockRepo.records = []domain.BlockRecord{{Date: "2024-05-10", FullDay: true}}
	st.HandleNotification(context.Background(), ChannelBlocks)
	assert.Len(t, <-blocks, 1)
}

func TestHandleNotification_EmptyChannelResyncsAll(t *testing.T) {
	apptRepo := &fakeApptRepo{}
	blockRepo := &fakeBlockRepo{}
	st := newStartedStore(t, apptRepo, blockRepo)

	appts, releaseAppts := st.SubscribeAppointments()
	blocks, releaseBlocks := st.SubscribeBlocks()
	defer releaseAppts()
	defer releaseBlocks()
	<-appts
	<-blocks

	apptRepo.appointments = []*domain.Appointment{{ID: "a1"}}
	blockRepo.records = []domain.BlockRecord{{Date: "2024-05-10", FullDay: true}}

	st.HandleNotification(context.Background(), "")

	assert.Len(t, <-appts, 1)
	assert.Len(t, <-blocks, 1)
}
