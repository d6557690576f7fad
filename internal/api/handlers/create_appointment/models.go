package create_appointment

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/middleware"
	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	createAppointment "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SlotID           string  `json:"slotId"`
	ClientName       string  `json:"clientName"`
	Mode             string  `json:"mode"` // online | in_person
	ProcessReference *string `json:"processReference,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	ContactPhone     string  `json:"contactPhone,omitempty"`
	ContactEmail     string  `json:"contactEmail,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               string  `json:"id"`
	SlotID           string  `json:"slotId"`
	ClientID         string  `json:"clientId"`
	ClientName       string  `json:"clientName"`
	ProcessReference *string `json:"processReference,omitempty"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	Mode             string  `json:"mode"`
	Notes            *string `json:"notes,omitempty"`
	Origin           string  `json:"origin"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// ClientID и origin берутся из контекста аутентификации, не из тела
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID, role string) *createAppointment.Request {
	origin := domain.OriginSite
	if role == middleware.RoleAdmin {
		origin = domain.OriginAdmin
	}

	return &createAppointment.Request{
		SlotID:           r.SlotID,
		ClientID:         clientID,
		ClientName:       r.ClientName,
		Mode:             domain.ConsultationMode(r.Mode),
		ProcessReference: r.ProcessReference,
		Notes:            r.Notes,
		Origin:           origin,
		ContactPhone:     r.ContactPhone,
		ContactEmail:     r.ContactEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		SlotID:           resp.SlotID,
		ClientID:         resp.ClientID,
		ClientName:       resp.ClientName,
		ProcessReference: resp.ProcessReference,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		Mode:             string(resp.Mode),
		Notes:            resp.Notes,
		Origin:           string(resp.Origin),
		Status:           string(resp.Status),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
