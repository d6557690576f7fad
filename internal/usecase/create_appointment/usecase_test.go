package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	slotRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/slot"
	"github.com/consultarprocessos/CP-SchedulingService/internal/notifier"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/ptr"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// fakeSlotRepo повторяет семантику настоящего репозитория: Claim выигрывает
// не более одного раза на слот. Мьютекс делает фейк безопасным для
// конкурентных тестов
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	m := make(map[string]*domain.Slot, len(slots))
	for _, s := range slots {
		m[s.ID] = s
	}
	return &fakeSlotRepo{slots: m}
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) Claim(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if !s.Available {
		return slotRepo.ErrSlotAlreadyBooked
	}
	s.Available = false
	return nil
}

type fakeApptRepo struct {
	mu      sync.Mutex
	created []*domain.Appointment
	err     error
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	f.created = append(f.created, appt)
	return appt, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []notifier.Contact
	appts []*domain.Appointment
	err   error
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, appt *domain.Appointment, contact notifier.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, contact)
	f.appts = append(f.appts, appt)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSlot(id string, mode domain.ConsultationMode) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		Date:            time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		DurationMinutes: 60,
		AllowedMode:     mode,
		Available:       true,
	}
}

func validRequest(slotID string) *Request {
	return &Request{
		SlotID:       slotID,
		ClientID:     "client-1",
		ClientName:   "Maria Souza",
		Mode:         domain.ModeOnline,
		ContactPhone: "11987654321",
		ContactEmail: "maria@example.com",
	}
}

func TestExecute_Success(t *testing.T) {
	slots := newFakeSlotRepo(testSlot("slot-1", domain.ModeBoth))
	appts := &fakeApptRepo{}
	notify := &fakeNotifier{}
	uc := NewUseCase(slots, appts, fakeTxManager{}, notify, nopLogger{})

	req := validRequest("slot-1")
	req.ProcessReference = ptr.Ptr("0001234-56.2024.8.26.0100")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "slot-1", resp.SlotID)
	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.Equal(t, domain.OriginSite, resp.Origin)

	// Дата и время денормализованы из слота
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)

	// Слот помечен занятым
	s, err := slots.GetByID(context.Background(), "slot-1")
	require.NoError(t, err)
	assert.False(t, s.Available)

	// Подтверждение ушло на контакты из запроса
	require.Len(t, notify.sent, 1)
	assert.Equal(t, "11987654321", notify.sent[0].Phone)
	assert.Equal(t, "maria@example.com", notify.sent[0].Email)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeApptRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest("missing"))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	booked := testSlot("slot-1", domain.ModeBoth)
	booked.Available = false

	appts := &fakeApptRepo{}
	notify := &fakeNotifier{}
	uc := NewUseCase(newFakeSlotRepo(booked), appts, fakeTxManager{}, notify, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest("slot-1"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// Проигравший не оставляет следов
	assert.Empty(t, appts.created)
	assert.Empty(t, notify.sent)
}

func TestExecute_ModeCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		slotMode domain.ConsultationMode
		reqMode  domain.ConsultationMode
		wantErr  error
	}{
		{name: "both accepts online", slotMode: domain.ModeBoth, reqMode: domain.ModeOnline},
		{name: "both accepts in_person", slotMode: domain.ModeBoth, reqMode: domain.ModeInPerson},
		{name: "online accepts online", slotMode: domain.ModeOnline, reqMode: domain.ModeOnline},
		{name: "online rejects in_person", slotMode: domain.ModeOnline, reqMode: domain.ModeInPerson, wantErr: ErrModeNotAllowed},
		{name: "in_person rejects online", slotMode: domain.ModeInPerson, reqMode: domain.ModeOnline, wantErr: ErrModeNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := newFakeSlotRepo(testSlot("slot-1", tt.slotMode))
			uc := NewUseCase(slots, &fakeApptRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

			req := validRequest("slot-1")
			req.Mode = tt.reqMode

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				// Отклоненная попытка не занимает слот
				s, getErr := slots.GetByID(context.Background(), "slot-1")
				require.NoError(t, getErr)
				assert.True(t, s.Available)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "missing slotId", mutate: func(r *Request) { r.SlotID = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing clientId", mutate: func(r *Request) { r.ClientID = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing clientName", mutate: func(r *Request) { r.ClientName = "" }, wantErr: ErrMissingRequiredField},
		{name: "missing mode", mutate: func(r *Request) { r.Mode = "" }, wantErr: ErrMissingRequiredField},
		{name: "mode both not bookable", mutate: func(r *Request) { r.Mode = domain.ModeBoth }, wantErr: ErrInvalidInput},
		{name: "unknown origin", mutate: func(r *Request) { r.Origin = "phone" }, wantErr: ErrInvalidInput},
		{
			name: "notes too long",
			mutate: func(r *Request) {
				long := make([]byte, domain.MaxNotesLength+1)
				for i := range long {
					long[i] = 'a'
				}
				r.Notes = ptr.Ptr(string(long))
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := newFakeSlotRepo(testSlot("slot-1", domain.ModeBoth))
			uc := NewUseCase(slots, &fakeApptRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

			req := validRequest("slot-1")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	slots := newFakeSlotRepo(testSlot("slot-1", domain.ModeBoth))
	appts := &fakeApptRepo{}
	notify := &fakeNotifier{err: errors.New("smtp timeout")}
	uc := NewUseCase(slots, appts, fakeTxManager{}, notify, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest("slot-1"))
	require.NoError(t, err)

	// Бронирование зафиксировано несмотря на сбой доставки
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, appts.created, 1)
}

func TestExecute_DefaultsOriginToSite(t *testing.T) {
	slots := newFakeSlotRepo(testSlot("slot-1", domain.ModeBoth))
	uc := NewUseCase(slots, &fakeApptRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := validRequest("slot-1")
	req.Origin = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.OriginSite, resp.Origin)
}

func TestExecute_ConcurrentBookingHasSingleWinner(t *testing.T) {
	const attempts = 20

	slots := newFakeSlotRepo(testSlot("slot-1", domain.ModeBoth))
	appts := &fakeApptRepo{}
	uc := NewUseCase(slots, appts, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest("slot-1"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotAlreadyBooked):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Ровно один победитель, остальные получают штатный конфликт
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, appts.created, 1)
}
