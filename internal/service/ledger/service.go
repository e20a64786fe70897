package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Service удаленный реестр: общий список заявок и журнал бронирований.
// Поля не проверяются по бизнес-правилам, этим занимаются клиенты.
type Service struct {
	requests RequestRepository
	bookings BookingRepository
	tx       TransactionManager
	ids      IDGenerator
	clock    TimeProvider
	logger   Logger
}

// NewService создает новый экземпляр сервиса реестра
func NewService(
	requests RequestRepository,
	bookings BookingRepository,
	tx TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		requests: requests,
		bookings: bookings,
		tx:       tx,
		ids:      uuidGenerator{},
		clock:    realTimeProvider{},
		logger:   logger,
	}
}

// WithIDGenerator подменяет генератор id (для тестов)
func (s *Service) WithIDGenerator(ids IDGenerator) *Service {
	s.ids = ids
	return s
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(clock TimeProvider) *Service {
	s.clock = clock
	return s
}

// List возвращает все заявки в порядке добавления
func (s *Service) List(ctx context.Context) ([]domain.Request, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return requests, nil
}

// Create добавляет заявку. Пустой id и время подачи заполняются сервером.
func (s *Service) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.ID == "" {
		req.ID = s.ids.NewID()
	}
	if req.SubmittedAt.IsZero() {
		req.SubmittedAt = s.clock.Now()
	}
	if req.Status == "" {
		req.Status = domain.StatusPending
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = domain.PaymentPending
	}

	created, err := s.requests.Create(ctx, req)
	if err != nil {
		s.logger.Error("Create: repository error for request id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: request id=%s stored, resource=%s, date=%s", created.ID, created.ResourceID, created.Date)
	return created, nil
}

// Patch сливает переданные поля с сохраненной заявкой. id и время подачи не меняются.
func (s *Service) Patch(ctx context.Context, id string, patch domain.RequestPatch) (*domain.Request, error) {
	var updated *domain.Request

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := s.requests.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		patch.Apply(current)

		updated, err = s.requests.Update(ctx, current)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			s.logger.Warn("Patch: request id=%s not found", id)
			return nil, fmt.Errorf("%w: id=%s", ErrRequestNotFound, id)
		}
		s.logger.Error("Patch: repository error for request id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Patch - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Patch: request id=%s updated, status=%s", id, updated.Status)
	return updated, nil
}

// AppendBooking дописывает запись в журнал бронирований
func (s *Service) AppendBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || booking.ID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	saved, err := s.bookings.Append(ctx, booking)
	if err != nil {
		s.logger.Error("AppendBooking: repository error for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: AppendBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AppendBooking: booking id=%s appended, room=%s", saved.ID, saved.ResourceID)
	return saved, nil
}
