package requests

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/requests/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Service жизненный цикл заявки после подачи: решение администратора и правки
type Service struct {
	writer       LedgerWriter
	reader       LedgerReader
	resources    ResourceCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	writer LedgerWriter,
	reader LedgerReader,
	resources ResourceCatalog,
	logger Logger,
) *Service {
	return &Service{
		writer:       writer,
		reader:       reader,
		resources:    resources,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Accept переводит заявку из pending в approved.
// Пересечения с другими одобренными заявками не блокируют одобрение, только логируются.
func (s *Service) Accept(ctx context.Context, id string) (*domain.Request, error) {
	s.logger.Info("Accept: request id=%s", id)
	return s.resolve(ctx, "Accept", id, domain.StatusApproved)
}

// Reject переводит заявку из pending в rejected
func (s *Service) Reject(ctx context.Context, id string) (*domain.Request, error) {
	s.logger.Info("Reject: request id=%s", id)
	return s.resolve(ctx, "Reject", id, domain.StatusRejected)
}

func (s *Service) resolve(ctx context.Context, op string, id string, target domain.RequestStatus) (*domain.Request, error) {
	updated, err := s.writer.Update(ctx, id, func(current domain.Request) (domain.RequestPatch, error) {
		if !current.IsPending() {
			return domain.RequestPatch{}, fmt.Errorf("%w: id=%s status=%s", ErrNotPending, id, current.Status)
		}
		if target == domain.StatusApproved {
			s.warnOnOverlap(op, current)
		}
		return domain.RequestPatch{Status: &target}, nil
	})
	if err != nil {
		return nil, s.mapWriteError(op, id, err)
	}

	s.logger.Info("%s: request id=%s is now %s", op, id, updated.Status)
	return &updated, nil
}

// warnOnOverlap сообщает о пересечении с уже одобренной заявкой
func (s *Service) warnOnOverlap(op string, candidate domain.Request) {
	for _, other := range s.reader.ApprovedOn(candidate.ResourceID, candidate.Date) {
		if other.ID != candidate.ID && domain.Overlaps(other.Interval(), candidate.Interval()) {
			s.logger.Warn("%s: request id=%s overlaps approved request id=%s on %s %s",
				op, candidate.ID, other.ID, candidate.Date, other.Interval())
		}
	}
}

// Edit заменяет все изменяемые поля заявки в любом статусе, включая статус.
// Пересечения не проверяются, id и submittedAt не меняются.
func (s *Service) Edit(ctx context.Context, id string, req *models.EditRequest) (*domain.Request, error) {
	s.logger.Info("Edit: request id=%s, status=%s", id, req.Status)

	if err := s.validateEdit(req); err != nil {
		s.logger.Warn("Edit: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.writer.Replace(ctx, id, func(current domain.Request) (domain.Request, error) {
		return req.ApplyTo(current), nil
	})
	if err != nil {
		return nil, s.mapWriteError("Edit", id, err)
	}

	s.logger.Info("Edit: request id=%s updated", id)
	return &updated, nil
}

func (s *Service) validateEdit(req *models.EditRequest) error {
	if !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	if !req.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, req.PaymentStatus)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	interval := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if !interval.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInterval, interval)
	}
	if req.AttendeeCount <= 0 {
		return fmt.Errorf("%w: attendeeCount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.RequesterName) == "" {
		return fmt.Errorf("%w: requesterName is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if _, err := s.resources.Get(req.ResourceID); err != nil {
		return err
	}
	return nil
}

func (s *Service) mapWriteError(op string, id string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		s.logger.Warn("%s: request id=%s not found", op, id)
		return fmt.Errorf("%w: id=%s", ErrRequestNotFound, id)
	case errors.Is(err, domain.ErrInvalidTransition):
		s.logger.Warn("%s: %v", op, err)
		return err
	default:
		s.logger.Error("%s: failed to update request id=%s: %v", op, id, err)
		return err
	}
}

// Get returns the request with id
func (s *Service) Get(ctx context.Context, id string) (*domain.Request, error) {
	r, ok := s.reader.Get(id)
	if !ok {
		s.logger.Warn("Get: request id=%s not found", id)
		return nil, fmt.Errorf("%w: id=%s", ErrRequestNotFound, id)
	}
	return &r, nil
}

// List возвращает заявки для очереди или истории с фильтрами.
// Очередь отсортирована по времени подачи, история - от новых к старым.
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]domain.Request, error) {
	filter, err := s.toFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	out := make([]domain.Request, 0)
	for _, r := range s.reader.Snapshot() {
		if matches(&r, filter) {
			out = append(out, r)
		}
	}

	switch req.View {
	case models.ViewQueue:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		})
	case models.ViewHistory:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		})
	}

	s.logger.Info("List: view=%q, matched %d requests", req.View, len(out))
	return out, nil
}

func (s *Service) toFilter(req *models.ListRequest) (domain.RequestFilter, error) {
	filter := domain.RequestFilter{
		ResourceID:    req.ResourceID,
		PaymentStatus: req.PaymentStatus,
		Date:          req.Date,
		Search:        strings.ToLower(strings.TrimSpace(req.Search)),
	}

	switch req.View {
	case models.ViewAll:
	case models.ViewQueue:
		filter.Statuses = []domain.RequestStatus{domain.StatusPending}
	case models.ViewHistory:
		filter.Statuses = domain.ResolvedStatuses
	default:
		return filter, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, *req.Status) {
			// Статус вне представления: пустой результат
			filter.Statuses = []domain.RequestStatus{}
			return filter, nil
		}
		filter.Statuses = []domain.RequestStatus{*req.Status}
	}

	if req.PaymentStatus != nil && !req.PaymentStatus.IsValid() {
		return filter, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *req.PaymentStatus)
	}

	return filter, nil
}

func matches(r *domain.Request, f domain.RequestFilter) bool {
	if f.Statuses != nil && !containsStatus(f.Statuses, r.Status) {
		return false
	}
	if f.ResourceID != nil && r.ResourceID != *f.ResourceID {
		return false
	}
	if f.PaymentStatus != nil && r.PaymentStatus != *f.PaymentStatus {
		return false
	}
	if f.Date != nil && r.Date != *f.Date {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(r.RequesterName), f.Search) &&
		!strings.Contains(strings.ToLower(r.Purpose), f.Search) {
		return false
	}
	return true
}

func containsStatus(statuses []domain.RequestStatus, status domain.RequestStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Stats считает сводку по всему реестру
func (s *Service) Stats(ctx context.Context) *models.Stats {
	today := types.DateOf(s.timeProvider.Now())
	stats := &models.Stats{}

	for _, r := range s.reader.Snapshot() {
		stats.Total++
		switch r.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusApproved:
			stats.Approved++
			if !r.Date.Before(today) {
				stats.UpcomingApproved++
			}
		case domain.StatusRejected:
			stats.Rejected++
		}
		switch r.PaymentStatus {
		case domain.PaymentPaid:
			stats.Paid++
		case domain.PaymentUnpaid:
			stats.Unpaid++
		default:
			stats.PaymentPending++
		}
	}

	return stats
}

// ApprovedOn возвращает одобренные заявки всех ресурсов на день, упорядоченные по ресурсу и времени
func (s *Service) ApprovedOn(ctx context.Context, date types.Date) ([]domain.Request, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := make([]domain.Request, 0)
	for _, r := range s.reader.Snapshot() {
		if r.IsApproved() && r.Date == date {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ResourceID != out[j].ResourceID {
			return out[i].ResourceID < out[j].ResourceID
		}
		return out[i].StartTime.IsBefore(out[j].StartTime)
	})

	return out, nil
}
