package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	createAppointment "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/create_appointment"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

type fakeUseCase struct {
	resp    *createAppointment.Response
	err     error
	lastReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postAppointment(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:         "appt-1",
		SlotID:     "slot-1",
		ClientID:   "client-1",
		ClientName: "Maria Souza",
		Date:       time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		EndTime:    types.TimeString("11:00"),
		Mode:       domain.ModeOnline,
		Origin:     domain.OriginSite,
		Status:     domain.StatusScheduled,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postAppointment(t, h, CreateAppointmentRequest{
		SlotID:     "slot-1",
		ClientName: "Maria Souza",
		Mode:       "online",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "2024-12-02", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandle_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{name: "slot not found", useCaseErr: createAppointment.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "slot already booked", useCaseErr: createAppointment.ErrSlotAlreadyBooked, wantStatus: http.StatusConflict},
		{name: "mode not allowed", useCaseErr: createAppointment.ErrModeNotAllowed, wantStatus: http.StatusConflict},
		{name: "missing field", useCaseErr: createAppointment.ErrMissingRequiredField, wantStatus: http.StatusBadRequest},
		{name: "invalid input", useCaseErr: createAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", useCaseErr: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.useCaseErr}, nopLogger{})

			rec := postAppointment(t, h, CreateAppointmentRequest{
				SlotID:     "slot-1",
				ClientName: "Maria Souza",
				Mode:       "online",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
