package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Syncer сводит кэш актора с удаленным реестром, локальным хранилищем и статическим снимком.
//
// Чтение: remote, затем local, затем snapshot; первый успешный источник побеждает.
// Запись: сначала кэш и локальное хранилище, затем зеркалирование в remote.
// Ошибка зеркалирования не откатывает локальную запись: запись остается в outbox,
// накладывается на следующие чтения и повторяется при каждом обновлении.
// Все операции актора выполняются последовательно под одним мьютексом.
type Syncer struct {
	remote   RemoteLedger
	local    LocalStore
	snapshot Snapshot
	ledger   Ledger
	metrics  Metrics
	cfg      Config
	logger   Logger

	mu          sync.Mutex
	outbox      map[string]*pendingWrite
	outboxOrder []string
	tier        Tier
	lastRefresh time.Time

	trigger chan struct{}
}

// NewSyncer создает слой синхронизации. remote, local и snapshot могут быть nil,
// тогда соответствующий уровень считается недоступным.
func NewSyncer(
	remote RemoteLedger,
	local LocalStore,
	snapshot Snapshot,
	ledger Ledger,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *Syncer {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Syncer{
		remote:   remote,
		local:    local,
		snapshot: snapshot,
		ledger:   ledger,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
		outbox:   make(map[string]*pendingWrite),
		trigger:  make(chan struct{}, 1),
	}
}

// Refresh перечитывает реестр по цепочке источников.
// Если все источники недоступны, текущий кэш сохраняется (деградированный режим);
// если кэш при этом ни разу не загружался, возвращается domain.ErrDataUnavailable.
func (s *Syncer) Refresh(ctx context.Context) (Tier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Syncer) refreshLocked(ctx context.Context) (Tier, error) {
	requests, tier, ok := s.readTiers(ctx)
	if !ok {
		s.metrics.IncSyncRefresh(string(TierCache))
		if !s.ledger.Loaded() {
			s.logger.Error("Refresh: all tiers failed and nothing was ever loaded")
			return TierCache, domain.ErrDataUnavailable
		}
		s.logger.Warn("Refresh: all tiers failed, keeping %d cached requests", len(s.ledger.Snapshot()))
		s.tier = TierCache
		return TierCache, nil
	}

	s.ledger.Replace(s.overlay(requests))
	s.tier = tier
	s.lastRefresh = time.Now()
	s.metrics.IncSyncRefresh(string(tier))
	s.logger.Info("Refresh: loaded %d requests from tier=%s, unmirrored=%d", len(requests), tier, len(s.outbox))

	if tier == TierRemote {
		s.persistLocked(ctx)
		s.flushLocked(ctx)
	}

	return tier, nil
}

// readTiers обходит источники по порядку и возвращает первый успешный результат
func (s *Syncer) readTiers(ctx context.Context) ([]domain.Request, Tier, bool) {
	if s.remote != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
		requests, err := s.remote.FetchAll(callCtx)
		cancel()
		if err == nil {
			return s.normalize(requests, TierRemote), TierRemote, true
		}
		s.logger.Warn("Refresh: remote tier failed: %v", err)
	}

	if s.local != nil {
		requests, found, err := s.local.Load(ctx)
		switch {
		case err != nil:
			s.logger.Warn("Refresh: local tier failed: %v", err)
		case !found:
			s.logger.Warn("Refresh: local tier is empty")
		default:
			return s.normalize(requests, TierLocal), TierLocal, true
		}
	}

	if s.snapshot != nil {
		requests, err := s.snapshot.Requests(ctx)
		if err == nil {
			return s.normalize(requests, TierSnapshot), TierSnapshot, true
		}
		s.logger.Warn("Refresh: snapshot tier failed: %v", err)
	}

	return nil, "", false
}

// normalize приводит даты и время к каноническому виду и отбрасывает нераспознанные записи
func (s *Syncer) normalize(requests []domain.Request, tier Tier) []domain.Request {
	out := make([]domain.Request, 0, len(requests))
	for _, r := range requests {
		if err := r.Normalize(); err != nil {
			s.logger.Warn("Refresh: dropping malformed record from tier=%s: %v", tier, err)
			continue
		}
		out = append(out, r)
	}
	return out
}

// overlay накладывает недоставленные локальные записи поверх прочитанного реестра
func (s *Syncer) overlay(requests []domain.Request) []domain.Request {
	if len(s.outbox) == 0 {
		return requests
	}

	out := make([]domain.Request, 0, len(requests)+len(s.outbox))
	seen := make(map[string]bool, len(s.outbox))
	for _, r := range requests {
		if w, ok := s.outbox[r.ID]; ok {
			out = append(out, w.request)
			seen[r.ID] = true
			continue
		}
		out = append(out, r)
	}
	for _, id := range s.outboxOrder {
		if !seen[id] {
			out = append(out, s.outbox[id].request)
		}
	}
	return out
}

// Create добавляет новую заявку. build выполняется под блокировкой до любого I/O;
// ошибка build возвращается без изменений реестра.
func (s *Syncer) Create(ctx context.Context, build func() (domain.Request, error)) (domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, err := build()
	if err != nil {
		return domain.Request{}, err
	}

	s.ledger.Put(request)
	s.persistLocked(ctx)

	s.enqueue(request, pendingWrite{create: true})
	s.flushOneLocked(ctx, request.ID)

	return request, nil
}

// Update изменяет существующую заявку. change получает текущую версию и возвращает патч;
// ошибка change возвращается без изменений реестра.
func (s *Syncer) Update(
	ctx context.Context,
	id string,
	change func(current domain.Request) (domain.RequestPatch, error),
) (domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.ledger.Get(id)
	if !ok {
		return domain.Request{}, domain.ErrRequestNotFound
	}

	patch, err := change(current)
	if err != nil {
		return domain.Request{}, err
	}

	updated := current.Clone()
	patch.Apply(&updated)

	return s.commitLocked(ctx, current, updated, pendingWrite{patch: &patch}), nil
}

// Replace заменяет заявку целиком, включая очистку необязательных полей.
// В удаленный реестр уходит полная версия через POST /requests (upsert по id).
func (s *Syncer) Replace(
	ctx context.Context,
	id string,
	build func(current domain.Request) (domain.Request, error),
) (domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.ledger.Get(id)
	if !ok {
		return domain.Request{}, domain.ErrRequestNotFound
	}

	replacement, err := build(current.Clone())
	if err != nil {
		return domain.Request{}, err
	}

	return s.commitLocked(ctx, current, replacement.Clone(), pendingWrite{create: true}), nil
}

// commitLocked сохраняет новую версию заявки локально и запускает зеркалирование.
// id и время подачи всегда берутся из текущей версии.
func (s *Syncer) commitLocked(ctx context.Context, current, updated domain.Request, write pendingWrite) domain.Request {
	updated.ID = current.ID
	updated.SubmittedAt = current.SubmittedAt

	s.ledger.Put(updated)
	s.persistLocked(ctx)

	write.booking = updated.IsApproved() && !current.IsApproved()
	s.enqueue(updated, write)
	s.flushOneLocked(ctx, current.ID)

	return updated
}

// enqueue объединяет новую запись с уже ожидающей доставки записью той же заявки
func (s *Syncer) enqueue(request domain.Request, write pendingWrite) {
	existing, ok := s.outbox[request.ID]
	if !ok {
		write.request = request.Clone()
		s.outbox[request.ID] = &write
		s.outboxOrder = append(s.outboxOrder, request.ID)
		return
	}

	existing.request = request.Clone()
	existing.booking = existing.booking || write.booking
	// Полная версия перекрывает все накопленные патчи
	if write.create {
		existing.create = true
		existing.patch = nil
		return
	}
	// Заявка, которая еще не создана удаленно, уйдет целиком через create
	if existing.create || write.patch == nil {
		return
	}
	if existing.patch == nil {
		merged := *write.patch
		existing.patch = &merged
		return
	}
	existing.patch.Merge(*write.patch)
}

// flushLocked повторяет доставку всех ожидающих записей в порядке их появления
func (s *Syncer) flushLocked(ctx context.Context) {
	ids := append([]string(nil), s.outboxOrder...)
	for _, id := range ids {
		s.flushOneLocked(ctx, id)
	}
}

// flushOneLocked зеркалирует одну запись. Ошибки логируются и оставляют запись в outbox.
func (s *Syncer) flushOneLocked(ctx context.Context, id string) {
	w, ok := s.outbox[id]
	if !ok {
		return
	}
	if s.remote == nil {
		return
	}

	if w.create {
		if err := s.mirrorCreate(ctx, w.request); err != nil {
			s.logger.Warn("Mirror: create id=%s failed, kept locally: %v", id, err)
			s.metrics.IncSyncMirrorFailure(opCreate)
			return
		}
		w.create = false
		w.patch = nil
	}

	if w.patch != nil {
		err := s.mirrorPatch(ctx, id, *w.patch)
		if errors.Is(err, domain.ErrRequestNotFound) {
			// Удаленный реестр не знает заявку (например, она пришла из снимка): создаем целиком
			s.logger.Warn("Mirror: id=%s unknown remotely, sending full request", id)
			err = s.mirrorCreate(ctx, w.request)
		}
		if err != nil {
			s.logger.Warn("Mirror: patch id=%s failed, kept locally: %v", id, err)
			s.metrics.IncSyncMirrorFailure(opPatch)
			return
		}
		w.patch = nil
	}

	if w.booking {
		if err := s.mirrorBooking(ctx, w.request); err != nil {
			s.logger.Warn("Mirror: booking id=%s failed, kept locally: %v", id, err)
			s.metrics.IncSyncMirrorFailure(opBooking)
			return
		}
		w.booking = false
	}

	if w.done() {
		s.dropFromOutbox(id)
		s.logger.Info("Mirror: id=%s delivered", id)
	}
}

func (s *Syncer) mirrorCreate(ctx context.Context, request domain.Request) error {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()
	_, err := s.remote.Create(callCtx, request)
	return err
}

func (s *Syncer) mirrorPatch(ctx context.Context, id string, patch domain.RequestPatch) error {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()
	_, err := s.remote.Patch(callCtx, id, patch)
	return err
}

func (s *Syncer) mirrorBooking(ctx context.Context, request domain.Request) error {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()
	return s.remote.AppendBooking(callCtx, domain.BookingFromRequest(&request))
}

func (s *Syncer) dropFromOutbox(id string) {
	delete(s.outbox, id)
	for i, queued := range s.outboxOrder {
		if queued == id {
			s.outboxOrder = append(s.outboxOrder[:i], s.outboxOrder[i+1:]...)
			return
		}
	}
}

// persistLocked записывает весь реестр в локальное хранилище одним блоком
func (s *Syncer) persistLocked(ctx context.Context) {
	if s.local == nil {
		return
	}
	if err := s.local.Save(ctx, s.ledger.Snapshot()); err != nil {
		s.logger.Error("Persist: failed to save local cache: %v", err)
		s.metrics.IncSyncMirrorFailure(opPersist)
	}
}

// Trigger просит Run выполнить внеочередное обновление (возврат фокуса, видимость)
func (s *Syncer) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run выполняет первое обновление и затем обновляет реестр по таймеру и по Trigger до отмены ctx
func (s *Syncer) Run(ctx context.Context) error {
	s.logger.Info("Syncer: starting, poll interval=%s", s.cfg.PollInterval)

	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Syncer: initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Syncer: stopped")
			return ctx.Err()
		case <-ticker.C:
		case <-s.trigger:
		}

		if _, err := s.Refresh(ctx); err != nil {
			s.logger.Warn("Syncer: refresh failed: %v", err)
		}
	}
}

// Status returns the current synchronization state
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Tier:          s.tier,
		LastRefreshAt: s.lastRefresh,
		Requests:      len(s.ledger.Snapshot()),
		Unmirrored:    len(s.outbox),
	}
}
