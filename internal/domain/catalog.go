package domain

// SlotLabel метка одного из фиксированных дневных слотов (например, "10:00").
// Множество меток закрыто и задаётся каталогом, произвольные значения не допускаются.
type SlotLabel string

// Service represents a bookable studio service
type Service struct {
	ID              string
	Title           string
	Price           int64
	DurationMinutes int
	Description     string

	// IsStartPrice помечает цену как стартовую ("от ..."), влияет только
	// на отображение, никогда — на арифметику итоговой стоимости
	IsStartPrice bool
}

// AddOn represents an optional supplementary charge
type AddOn struct {
	ID    string
	Title string
	Price int64

	// IsCount добавка с количеством (цена за единицу), а не переключатель
	IsCount bool
}

// Catalog статическая конфигурация студии: услуги, добавки и фиксированные слоты.
// Загружается при старте и ядром никогда не изменяется.
type Catalog struct {
	Services []Service
	AddOns   []AddOn
	Slots    []SlotLabel
}

// ServiceByID возвращает услугу по идентификатору
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// AddOnByID возвращает добавку по идентификатору
func (c *Catalog) AddOnByID(id string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// CountAddOn возвращает количественную добавку каталога (цена указана за единицу)
func (c *Catalog) CountAddOn() (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.IsCount {
			return a, true
		}
	}
	return AddOn{}, false
}

// IsValidSlot проверяет, что метка принадлежит фиксированному множеству слотов
func (c *Catalog) IsValidSlot(slot SlotLabel) bool {
	for _, s := range c.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
