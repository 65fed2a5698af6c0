package get_availability

import "github.com/m04kA/JMN-BookingService/internal/service/availability"

// SlotResponse HTTP модель доступности слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Blocked   bool   `json:"blocked"`
	Booked    bool   `json:"booked"`
}

// DayResponse HTTP модель доступности даты
type DayResponse struct {
	Date           string         `json:"date"`
	Selectable     bool           `json:"selectable"`
	FullDayBlocked bool           `json:"fullDayBlocked"`
	Slots          []SlotResponse `json:"slots"`
}

// AvailabilityResponse HTTP модель снимка доступности
type AvailabilityResponse struct {
	Today   string        `json:"today"`
	Horizon string        `json:"horizon"`
	Days    []DayResponse `json:"days"`
}

// FromSnapshot конвертирует снимок доступности в HTTP response
func FromSnapshot(snap availability.Snapshot) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Today:   snap.Today,
		Horizon: snap.Horizon,
		Days:    make([]DayResponse, 0, len(snap.Days)),
	}

	for _, day := range snap.Days {
		out := DayResponse{
			Date:           day.Date,
			Selectable:     day.Selectable,
			FullDayBlocked: day.FullDayBlocked,
			Slots:          make([]SlotResponse, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			out.Slots = append(out.Slots, SlotResponse{
				Time:      string(slot.Slot),
				Available: slot.Available,
				Blocked:   slot.Blocked,
				Booked:    slot.Booked,
			})
		}
		resp.Days = append(resp.Days, out)
	}

	return resp
}
