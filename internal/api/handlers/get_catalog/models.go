package get_catalog

import "github.com/m04kA/JMN-BookingService/internal/domain"

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Price           int64  `json:"price"`
	IsStartPrice    bool   `json:"isStartPrice"`
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description,omitempty"`
}

// AddOnResponse HTTP модель добавки каталога
type AddOnResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Price   int64  `json:"price"`
	IsCount bool   `json:"isCount"`
}

// CatalogResponse HTTP модель каталога студии
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	AddOns   []AddOnResponse   `json:"addons"`
	Slots    []string          `json:"slots"`
}

// FromDomainCatalog конвертирует доменный каталог в HTTP response
func FromDomainCatalog(c *domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Services: make([]ServiceResponse, 0, len(c.Services)),
		AddOns:   make([]AddOnResponse, 0, len(c.AddOns)),
		Slots:    make([]string, 0, len(c.Slots)),
	}

	for _, svc := range c.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Title:           svc.Title,
			Price:           svc.Price,
			IsStartPrice:    svc.IsStartPrice,
			DurationMinutes: svc.DurationMinutes,
			Description:     svc.Description,
		})
	}

	for _, addOn := range c.AddOns {
		resp.AddOns = append(resp.AddOns, AddOnResponse{
			ID:      addOn.ID,
			Title:   addOn.Title,
			Price:   addOn.Price,
			IsCount: addOn.IsCount,
		})
	}

	for _, slot := range c.Slots {
		resp.Slots = append(resp.Slots, string(slot))
	}

	return resp
}
