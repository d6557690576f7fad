package create_appointment

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// Request модель запроса на создание агендамента
type Request struct {
	SlotID           string                   // Стабильный ID слота, полученный из запроса доступности
	ClientID         string                   // ID клиента
	ClientName       string                   // Имя клиента
	Mode             domain.ConsultationMode  // Тип консультации: online или in_person
	ProcessReference *string                  // Номер отслеживаемого процесса (опционально)
	Notes            *string                  // Заметки клиента (опционально)
	Origin           domain.AppointmentOrigin // Откуда создан агендамент (site/admin)

	// Контакты для подтверждения; не сохраняются в агендаменте
	ContactPhone string
	ContactEmail string
}

// Response модель ответа с созданным агендаментом
type Response struct {
	ID               string
	SlotID           string
	ClientID         string
	ClientName       string
	ProcessReference *string
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	Mode             domain.ConsultationMode
	Notes            *string
	Origin           domain.AppointmentOrigin
	Status           domain.AppointmentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func fromDomainAppointment(a *domain.Appointment) *Response {
	return &Response{
		ID:               a.ID,
		SlotID:           a.SlotID,
		ClientID:         a.ClientID,
		ClientName:       a.ClientName,
		ProcessReference: a.ProcessReference,
		Date:             a.Date,
		StartTime:        a.StartTime,
		EndTime:          a.EndTime,
		Mode:             a.Mode,
		Notes:            a.Notes,
		Origin:           a.Origin,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
