package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/JMN-BookingService/internal/usecase/create_appointment"
)

// ClientRequest HTTP модель контактных данных клиента
type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Line  string `json:"line"`
	Note  string `json:"note,omitempty"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID      string        `json:"serviceId"`
	AddOns         []string      `json:"addons,omitempty"`
	ExtensionCount int           `json:"extensionCount,omitempty"`
	Date           string        `json:"date"` // "2026-09-15"
	Time           string        `json:"time"` // "10:00"
	Client         ClientRequest `json:"client"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             string        `json:"id"`
	ServiceID      string        `json:"serviceId"`
	ServiceName    string        `json:"serviceName"`
	Price          int64         `json:"price"`
	IsStartPrice   bool          `json:"isStartPrice"`
	AddOns         []string      `json:"addons"`
	ExtensionCount int           `json:"extensionCount"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Client         ClientRequest `json:"client"`
	Status         string        `json:"status"`
	CreatedAt      string        `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		ServiceID:      r.ServiceID,
		AddOns:         r.AddOns,
		ExtensionCount: r.ExtensionCount,
		Date:           r.Date,
		Slot:           r.Time,
		Client: createAppointment.ClientInfo{
			Name:  r.Client.Name,
			Phone: r.Client.Phone,
			Line:  r.Client.Line,
			Note:  r.Client.Note,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	addons := resp.AddOns
	if addons == nil {
		addons = []string{}
	}

	return &AppointmentResponse{
		ID:             resp.ID,
		ServiceID:      resp.ServiceID,
		ServiceName:    resp.ServiceName,
		Price:          resp.Price,
		IsStartPrice:   resp.IsStartPrice,
		AddOns:         addons,
		ExtensionCount: resp.ExtensionCount,
		Date:           resp.Date,
		Time:           resp.Slot,
		Client: ClientRequest{
			Name:  resp.Client.Name,
			Phone: resp.Client.Phone,
			Line:  resp.Client.Line,
			Note:  resp.Client.Note,
		},
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
