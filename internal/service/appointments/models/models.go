package models

import (
	"time"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// ClientInfo контактные данные клиента во внешнем представлении
type ClientInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Line  string `json:"line"`
	Note  string `json:"note"`
}

// AppointmentResponse ответ с данными записи во внешней форме коллекции
type AppointmentResponse struct {
	ID             string     `json:"id"`
	ServiceID      string     `json:"serviceId"`
	ServiceName    string     `json:"serviceName"`
	Price          int64      `json:"price"`
	IsStartPrice   bool       `json:"isStartPrice"`
	AddOns         []string   `json:"addons"`
	ExtensionCount int        `json:"extensionCount"`
	Date           string     `json:"date"` // YYYY-MM-DD
	Time           string     `json:"time"` // метка слота, например "10:00"
	Client         ClientInfo `json:"client"`
	Status         string     `json:"status"`
	CreatedAt      string     `json:"createdAt"` // ISO 8601
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует доменную модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	addons := a.AddOns
	if addons == nil {
		addons = []string{}
	}

	return &AppointmentResponse{
		ID:             a.ID,
		ServiceID:      a.ServiceID,
		ServiceName:    a.ServiceName,
		Price:          a.Price,
		IsStartPrice:   a.IsStartPrice,
		AddOns:         addons,
		ExtensionCount: a.ExtensionCount,
		Date:           a.Date,
		Time:           string(a.Slot),
		Client: ClientInfo{
			Name:  a.Client.Name,
			Phone: a.Client.Phone,
			Line:  a.Client.Line,
			Note:  a.Client.Note,
		},
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if dto := FromDomainAppointment(appt); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
