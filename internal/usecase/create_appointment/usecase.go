package create_appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	catalog      *domain.Catalog
	store        AppointmentStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog *domain.Catalog, store AppointmentStore, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
//
// Занятость слота здесь повторно не проверяется: клиент выбирает слот
// по снимку доступности, и между выбором и сохранением возможна гонка.
// Оператор разбирает такие пересечения вручную, подтверждая записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s", req.ServiceID, req.Date, req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна существовать в каталоге
	service, ok := uc.catalog.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Добавки должны быть известны и непротиворечивы
	if err := validateAddOns(uc.catalog, req.AddOns); err != nil {
		uc.logger.Warn("CreateAppointment: add-ons validation failed: %v", err)
		return nil, err
	}

	// 4. Слот должен входить в расписание студии
	if !uc.catalog.IsValidSlot(domain.SlotLabel(req.Slot)) {
		uc.logger.Warn("CreateAppointment: slot %s is not in the schedule", req.Slot)
		return nil, ErrInvalidSlot
	}

	// 5. Дата должна попадать в окно бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 6. Цена пересчитывается на сервере по каталогу
	price := uc.catalog.Quote(service, req.AddOns, req.ExtensionCount)

	appt := &domain.Appointment{
		ID:             uuid.NewString(),
		ServiceID:      service.ID,
		ServiceName:    service.Title,
		Price:          price,
		IsStartPrice:   service.IsStartPrice,
		AddOns:         req.AddOns,
		ExtensionCount: req.ExtensionCount,
		Date:           req.Date,
		Slot:           domain.SlotLabel(req.Slot),
		Client: domain.ClientInfo{
			Name:  req.Client.Name,
			Phone: req.Client.Phone,
			Line:  req.Client.Line,
			Note:  req.Client.Note,
		},
		Status: domain.StatusPending,
	}

	created, err := uc.store.InsertAppointment(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to insert appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to insert appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s, price=%d", created.ID, created.Price)

	return buildResponse(created), nil
}

func buildResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:             appt.ID,
		ServiceID:      appt.ServiceID,
		ServiceName:    appt.ServiceName,
		Price:          appt.Price,
		IsStartPrice:   appt.IsStartPrice,
		AddOns:         appt.AddOns,
		ExtensionCount: appt.ExtensionCount,
		Date:           appt.Date,
		Slot:           string(appt.Slot),
		Client: ClientInfo{
			Name:  appt.Client.Name,
			Phone: appt.Client.Phone,
			Line:  appt.Client.Line,
			Note:  appt.Client.Note,
		},
		Status:    string(appt.Status),
		CreatedAt: appt.CreatedAt,
	}
}
