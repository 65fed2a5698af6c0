package toggle_block

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// UseCase use case для переключения блокировок расписания оператором
type UseCase struct {
	catalog *domain.Catalog
	store   BlockStore
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog *domain.Catalog, store BlockStore, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

// Execute выполняет переключение блокировки дня или отдельного слота.
// Переключение — инволюция: повторный запрос возвращает исходное состояние.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleBlock: date=%s, slot=%q", req.Date, req.Slot)

	if err := validateRequest(uc.catalog, req); err != nil {
		uc.logger.Warn("ToggleBlock: validation failed: %v", err)
		return nil, err
	}

	records, err := uc.store.ListBlocks(ctx)
	if err != nil {
		uc.logger.Error("ToggleBlock: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	registry := domain.BlockRegistryFromRecords(records)

	var next domain.BlockRegistry
	if req.Slot == "" {
		next = registry.ToggleDay(req.Date)
	} else {
		next = registry.ToggleSlot(req.Date, domain.SlotLabel(req.Slot))
	}

	if err := uc.persist(ctx, registry, next, req.Date); err != nil {
		return nil, err
	}

	resp := &Response{Date: req.Date, Slots: []string{}}
	if state, ok := next.State(req.Date); ok {
		resp.FullDay = state.IsFullDay()
		for _, slot := range state.Slots() {
			resp.Slots = append(resp.Slots, string(slot))
		}
	}

	uc.logger.Info("ToggleBlock: date=%s, fullDay=%t, slots=%v", resp.Date, resp.FullDay, resp.Slots)
	return resp, nil
}

// persist сохраняет изменившееся состояние даты: запись либо обновляется,
// либо удаляется, когда дата вернулась в "не заблокирована"
func (uc *UseCase) persist(ctx context.Context, prev, next domain.BlockRegistry, date string) error {
	prevState, hadPrev := prev.State(date)
	nextState, hasNext := next.State(date)

	switch {
	case !hasNext && hadPrev:
		if err := uc.store.DeleteBlock(ctx, date); err != nil {
			uc.logger.Error("ToggleBlock: failed to delete block for %s: %v", date, err)
			return fmt.Errorf("%w: failed to delete block: %v", ErrInternal, err)
		}
	case hasNext && stateChanged(prevState, nextState, hadPrev):
		rec := domain.BlockRecord{
			Date:    date,
			FullDay: nextState.IsFullDay(),
			Slots:   nextState.Slots(),
		}
		if err := uc.store.UpsertBlock(ctx, rec); err != nil {
			uc.logger.Error("ToggleBlock: failed to upsert block for %s: %v", date, err)
			return fmt.Errorf("%w: failed to upsert block: %v", ErrInternal, err)
		}
	}

	return nil
}

// stateChanged сравнивает состояния даты до и после переключения.
// Переключение слота у даты с блокировкой всего дня ничего не меняет.
func stateChanged(prev, next domain.BlockState, hadPrev bool) bool {
	if !hadPrev {
		return true
	}
	if prev.IsFullDay() != next.IsFullDay() {
		return true
	}

	prevSlots, nextSlots := prev.Slots(), next.Slots()
	if len(prevSlots) != len(nextSlots) {
		return true
	}
	for i := range prevSlots {
		if prevSlots[i] != nextSlots[i] {
			return true
		}
	}
	return false
}

// validateRequest валидирует входные данные запроса
func validateRequest(catalog *domain.Catalog, req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	if req.Slot != "" && !catalog.IsValidSlot(domain.SlotLabel(req.Slot)) {
		return fmt.Errorf("%w: %s", ErrInvalidSlot, req.Slot)
	}

	return nil
}
