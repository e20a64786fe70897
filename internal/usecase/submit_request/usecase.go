package submit_request

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// UUIDGenerator генерирует случайные UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case для подачи заявки на бронирование
type UseCase struct {
	writer       LedgerWriter
	conflicts    ConflictDetector
	resources    ResourceCatalog
	window       domain.DayWindow
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	writer LedgerWriter,
	conflicts ConflictDetector,
	resources ResourceCatalog,
	window domain.DayWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		writer:       writer,
		conflicts:    conflicts,
		resources:    resources,
		window:       window,
		ids:          UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithIDGenerator подменяет генератор идентификаторов
func (uc *UseCase) WithIDGenerator(ids IDGenerator) *UseCase {
	uc.ids = ids
	return uc
}

// Execute выполняет use case подачи заявки.
// Все проверки выполняются до любого I/O; проверка пересечений повторяется
// под блокировкой слоя синхронизации непосредственно перед записью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRequest: resource=%s, date=%s, interval=%s, attendees=%d",
		req.ResourceID, req.Date, req.Interval(), req.AttendeeCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Ресурс
	resource, err := uc.resources.Get(req.ResourceID)
	if err != nil {
		uc.logger.Warn("SubmitRequest: resource=%s: %v", req.ResourceID, err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := types.DateOf(now)

	// 3. Окно дня и границы слотов
	if err := validateInterval(req.Interval(), uc.window); err != nil {
		uc.logger.Warn("SubmitRequest: interval validation failed: %v", err)
		return nil, err
	}

	// 4. Прошедший день
	if err := validateDate(req.Date, today); err != nil {
		uc.logger.Warn("SubmitRequest: date validation failed: %v", err)
		return nil, err
	}

	// 5. Закрытый день ресурса
	if resource.IsClosedOn(req.Date) {
		uc.logger.Warn("SubmitRequest: resource=%s is closed on %s", resource.ID, req.Date)
		return nil, ErrResourceClosed
	}

	// 6. Вместимость
	if err := validateCapacity(resource, req.AttendeeCount); err != nil {
		uc.logger.Warn("SubmitRequest: capacity validation failed: %v", err)
		return nil, err
	}

	// 7. Встреча для подтверждения
	if err := validateConfirmationMeeting(req.ConfirmationMeeting, today); err != nil {
		uc.logger.Warn("SubmitRequest: confirmation meeting validation failed: %v", err)
		return nil, err
	}

	// 8. Авторитетная проверка пересечений и создание заявки в pending
	created, err := uc.writer.Create(ctx, func() (domain.Request, error) {
		if existing, found := uc.conflicts.FindConflict(req.ResourceID, req.Date, req.Interval()); found {
			return domain.Request{}, &domain.ConflictError{Existing: *existing}
		}

		var meeting *domain.ConfirmationMeeting
		if req.ConfirmationMeeting != nil {
			m := *req.ConfirmationMeeting
			meeting = &m
		}

		return domain.Request{
			ID:                  uc.ids.NewID(),
			ResourceID:          resource.ID,
			RequesterName:       req.RequesterName,
			RequesterContact:    req.RequesterContact,
			RequesterEmail:      req.RequesterEmail,
			Date:                req.Date,
			StartTime:           req.StartTime,
			EndTime:             req.EndTime,
			AttendeeCount:       req.AttendeeCount,
			Purpose:             req.Purpose,
			ConfirmationMeeting: meeting,
			Status:              domain.StatusPending,
			PaymentStatus:       domain.PaymentPending,
			SubmittedAt:         now,
		}, nil
	})
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			uc.logger.Warn("SubmitRequest: conflicts with approved request id=%s (%s)",
				conflict.Existing.ID, conflict.Existing.Interval())
			return nil, err
		}
		uc.logger.Error("SubmitRequest: failed to create request: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitRequest: created pending request id=%s", created.ID)
	return &Response{Request: created}, nil
}
