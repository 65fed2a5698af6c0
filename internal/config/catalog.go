package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

var (
	// ErrReadCatalog возвращается при ошибке чтения файла каталога
	ErrReadCatalog = errors.New("config: failed to read catalog file")

	// ErrInvalidCatalog возвращается при некорректном каталоге
	ErrInvalidCatalog = errors.New("config: invalid catalog")
)

// catalogFile TOML-представление каталога студии
type catalogFile struct {
	Slots    []string      `toml:"slots"`
	Services []serviceToml `toml:"services"`
	AddOns   []addOnToml   `toml:"addons"`
}

type serviceToml struct {
	ID              string `toml:"id"`
	Title           string `toml:"title"`
	Price           int64  `toml:"price"`
	DurationMinutes int    `toml:"duration_minutes"`
	Description     string `toml:"description"`
	IsStartPrice    bool   `toml:"is_start_price"`
}

type addOnToml struct {
	ID      string `toml:"id"`
	Title   string `toml:"title"`
	Price   int64  `toml:"price"`
	IsCount bool   `toml:"is_count"`
}

// LoadCatalog загружает статический каталог студии из TOML файла.
// Каталог — внешний вход ядра: услуги, добавки и фиксированные метки слотов.
func LoadCatalog(path string) (*domain.Catalog, error) {
	var file catalogFile

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCatalog, err)
	}

	catalog := &domain.Catalog{
		Services: make([]domain.Service, 0, len(file.Services)),
		AddOns:   make([]domain.AddOn, 0, len(file.AddOns)),
		Slots:    make([]domain.SlotLabel, 0, len(file.Slots)),
	}

	for _, s := range file.Services {
		catalog.Services = append(catalog.Services, domain.Service{
			ID:              s.ID,
			Title:           s.Title,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Description:     s.Description,
			IsStartPrice:    s.IsStartPrice,
		})
	}

	for _, a := range file.AddOns {
		catalog.AddOns = append(catalog.AddOns, domain.AddOn{
			ID:      a.ID,
			Title:   a.Title,
			Price:   a.Price,
			IsCount: a.IsCount,
		})
	}

	for _, slot := range file.Slots {
		catalog.Slots = append(catalog.Slots, domain.SlotLabel(slot))
	}

	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

// validateCatalog проверяет целостность каталога
func validateCatalog(catalog *domain.Catalog) error {
	if len(catalog.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot label is required", ErrInvalidCatalog)
	}
	if len(catalog.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidCatalog)
	}

	seenSlots := map[domain.SlotLabel]struct{}{}
	for _, slot := range catalog.Slots {
		if slot == "" {
			return fmt.Errorf("%w: empty slot label", ErrInvalidCatalog)
		}
		if _, ok := seenSlots[slot]; ok {
			return fmt.Errorf("%w: duplicate slot label %q", ErrInvalidCatalog, slot)
		}
		seenSlots[slot] = struct{}{}
	}

	seenServices := map[string]struct{}{}
	for _, s := range catalog.Services {
		if s.ID == "" {
			return fmt.Errorf("%w: service without id", ErrInvalidCatalog)
		}
		if _, ok := seenServices[s.ID]; ok {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		if s.Price < 0 {
			return fmt.Errorf("%w: service %q has negative price", ErrInvalidCatalog, s.ID)
		}
		seenServices[s.ID] = struct{}{}
	}

	seenAddOns := map[string]struct{}{}
	countAddOns := 0
	for _, a := range catalog.AddOns {
		if a.ID == "" {
			return fmt.Errorf("%w: add-on without id", ErrInvalidCatalog)
		}
		if _, ok := seenAddOns[a.ID]; ok {
			return fmt.Errorf("%w: duplicate add-on id %q", ErrInvalidCatalog, a.ID)
		}
		if a.Price < 0 {
			return fmt.Errorf("%w: add-on %q has negative price", ErrInvalidCatalog, a.ID)
		}
		if a.IsCount {
			countAddOns++
		}
		seenAddOns[a.ID] = struct{}{}
	}

	if countAddOns > 1 {
		return fmt.Errorf("%w: at most one count-based add-on is supported", ErrInvalidCatalog)
	}

	return nil
}
