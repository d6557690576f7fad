package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	slotRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/slot"
	"github.com/consultarprocessos/CP-SchedulingService/internal/service/slots/models"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/ptr"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

type fakeSlotRepo struct {
	slots      []*domain.Slot
	lastFilter domain.SlotsFilter
	deleteErr  error
	deletedID  string
}

func (f *fakeSlotRepo) List(_ context.Context, filter domain.SlotsFilter) ([]*domain.Slot, error) {
	f.lastFilter = filter
	return f.slots, nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.Slot{
		{
			ID:              "slot-1",
			Date:            time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
			StartTime:       types.TimeString("09:00"),
			EndTime:         types.TimeString("10:00"),
			DurationMinutes: 60,
			AllowedMode:     domain.ModeBoth,
			Available:       true,
		},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{
		Mode:          ptr.Ptr("online"),
		OnlyAvailable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "slot-1", resp.Slots[0].ID)
	assert.Equal(t, "2024-12-02", resp.Slots[0].Date)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)

	require.NotNil(t, repo.lastFilter.Mode)
	assert.Equal(t, domain.ModeOnline, *repo.lastFilter.Mode)
	assert.True(t, repo.lastFilter.OnlyAvailable)
}

func TestList_InvalidMode(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{
		Mode: ptr.Ptr("hybrid"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "slot-1"))
	assert.Equal(t, "slot-1", repo.deletedID)
}

func TestDelete_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: slotRepo.ErrSlotNotFound, wantErr: ErrSlotNotFound},
		{name: "booked slot is protected", repoErr: slotRepo.ErrSlotInUse, wantErr: ErrSlotInUse},
		{name: "infra error", repoErr: errors.New("connection reset"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSlotRepo{deleteErr: tt.repoErr}, nopLogger{})

			err := svc.Delete(context.Background(), "slot-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDelete_EmptyID(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.deletedID)
}
