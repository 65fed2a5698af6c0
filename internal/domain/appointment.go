package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ClientInfo контактные данные клиента, указанные при записи
type ClientInfo struct {
	Name  string
	Phone string
	Line  string
	Note  string
}

// Appointment represents a customer appointment in the studio
type Appointment struct {
	ID        string
	ServiceID string

	// Denormalized data for history
	ServiceName  string
	Price        int64
	IsStartPrice bool

	AddOns         []string
	ExtensionCount int

	Date string // YYYY-MM-DD
	Slot SlotLabel

	Client ClientInfo

	Status    AppointmentStatus
	CreatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Occupies returns true if the appointment holds the given (date, slot) pair.
// Отменённые записи слот не занимают.
func (a *Appointment) Occupies(date string, slot SlotLabel) bool {
	return a.IsActive() && a.Date == date && a.Slot == slot
}

// HasAddOn returns true if the add-on is selected on this appointment
func (a *Appointment) HasAddOn(id string) bool {
	for _, selected := range a.AddOns {
		if selected == id {
			return true
		}
	}
	return false
}
