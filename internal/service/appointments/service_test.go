package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	apptRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/appointment"
	"github.com/consultarprocessos/CP-SchedulingService/internal/service/appointments/models"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

type fakeApptRepo struct {
	appts map[string]*domain.Appointment

	lastFilter    domain.AppointmentsFilter
	updatedStatus *domain.AppointmentStatus
	cancelledID   string
	cancelReason  string
}

func newFakeApptRepo(appts ...*domain.Appointment) *fakeApptRepo {
	m := make(map[string]*domain.Appointment, len(appts))
	for _, a := range appts {
		m[a.ID] = a
	}
	return &fakeApptRepo{appts: m}
}

func (f *fakeApptRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeApptRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	result := make([]*domain.Appointment, 0, len(f.appts))
	for _, a := range f.appts {
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	if _, ok := f.appts[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	f.updatedStatus = &status
	f.appts[id].Status = status
	return nil
}

func (f *fakeApptRepo) Cancel(_ context.Context, id string, reason string) error {
	if _, ok := f.appts[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	f.cancelledID = id
	f.cancelReason = reason
	f.appts[id].Status = domain.StatusCancelled
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		SlotID:     "slot-1",
		ClientID:   "client-1",
		ClientName: "Maria Souza",
		Date:       time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		EndTime:    types.TimeString("11:00"),
		Mode:       domain.ModeOnline,
		Origin:     domain.OriginSite,
		Status:     status,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeApptRepo(testAppointment("appt-1", domain.StatusScheduled))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2024-12-02", resp.Date)
	assert.Equal(t, "scheduled", resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_FilterPassthrough(t *testing.T) {
	repo := newFakeApptRepo(testAppointment("appt-1", domain.StatusScheduled))
	svc := NewService(repo, nopLogger{})

	clientID := "client-1"
	status := "scheduled"
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		ClientID: &clientID,
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	require.NotNil(t, repo.lastFilter.ClientID)
	assert.Equal(t, "client-1", *repo.lastFilter.ClientID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusScheduled, *repo.lastFilter.Status)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeApptRepo(), nopLogger{})

	status := "pending"
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.AppointmentStatus
		newStatus string
		wantErr   error
	}{
		{name: "scheduled to completed", current: domain.StatusScheduled, newStatus: "completed"},
		{name: "completed is terminal", current: domain.StatusCompleted, newStatus: "completed", wantErr: ErrInvalidStatus},
		{name: "cancelled is terminal", current: domain.StatusCancelled, newStatus: "completed", wantErr: ErrInvalidStatus},
		{name: "cancel goes through Cancel", current: domain.StatusScheduled, newStatus: "cancelled", wantErr: ErrInvalidStatus},
		{name: "downgrade to scheduled", current: domain.StatusCompleted, newStatus: "scheduled", wantErr: ErrInvalidStatus},
		{name: "unknown status", current: domain.StatusScheduled, newStatus: "pending", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo(testAppointment("appt-1", tt.current))
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), "appt-1", &models.UpdateStatusRequest{Status: tt.newStatus})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.updatedStatus)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, repo.updatedStatus)
			assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeApptRepo(), nopLogger{})

	err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeApptRepo(testAppointment("appt-1", domain.StatusScheduled))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{
		CancellationReason: "imprevisto do cliente",
	})
	require.NoError(t, err)

	assert.Equal(t, "appt-1", repo.cancelledID)
	assert.Equal(t, "imprevisto do cliente", repo.cancelReason)
}

func TestCancel_OnlyScheduled(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.AppointmentStatus
		wantErr error
	}{
		{name: "completed", status: domain.StatusCompleted, wantErr: ErrCannotCancel},
		{name: "already cancelled", status: domain.StatusCancelled, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo(testAppointment("appt-1", tt.status))
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.cancelledID)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := newFakeApptRepo(testAppointment("appt-1", domain.StatusScheduled))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "appt-1", &models.CancelAppointmentRequest{
		CancellationReason: strings.Repeat("a", domain.MaxCancellationReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeApptRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), "missing", &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
