package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/normalizer"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	watchdogErrorCode    = "SYNC_WATCHDOG"
	watchdogErrorMessage = "sync did not finish before the watchdog limit"

	syncInstrumentationName = "wearsync/usecase/sync"
)

type syncService struct {
	deviceRepo  repository.ConnectedDeviceRepository
	historyRepo repository.SyncHistoryRepository
	healthRepo  repository.HealthDataRepository
	prefsRepo   repository.SyncPreferencesRepository
	gateway     service.SyncGateway
	exchanger   service.OAuthExchanger
	sealer      service.CredentialSealer
	archive     service.PayloadArchive
	publisher   service.EventPublisher
	notifier    usecase.SyncNotifier

	timeout             time.Duration
	watchdogGrace       time.Duration
	notificationTimeout time.Duration
	maxConcurrency      int

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *syncMetrics
	now     func() time.Time

	// Detached notification goroutines still running.
	pending sync.WaitGroup
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	Lc          fx.Lifecycle `optional:"true"`
	DeviceRepo  repository.ConnectedDeviceRepository
	HistoryRepo repository.SyncHistoryRepository
	HealthRepo  repository.HealthDataRepository
	PrefsRepo   repository.SyncPreferencesRepository
	Gateway     service.SyncGateway
	Exchanger   service.OAuthExchanger
	Sealer      service.CredentialSealer
	Archive     service.PayloadArchive `optional:"true"`
	Publisher   service.EventPublisher `optional:"true"`
	Notifier    usecase.SyncNotifier   `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSyncService creates a new sync service instance
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return newSyncService(params)
}

func newSyncService(params SyncServiceParams) *syncService {
	svc := &syncService{
		deviceRepo:          params.DeviceRepo,
		historyRepo:         params.HistoryRepo,
		healthRepo:          params.HealthRepo,
		prefsRepo:           params.PrefsRepo,
		gateway:             params.Gateway,
		exchanger:           params.Exchanger,
		sealer:              params.Sealer,
		archive:             params.Archive,
		publisher:           params.Publisher,
		notifier:            params.Notifier,
		timeout:             5 * time.Second,
		watchdogGrace:       30 * time.Second,
		notificationTimeout: 5 * time.Second,
		maxConcurrency:      4,
		logger:              params.Logger,
		tracer:              otel.Tracer(syncInstrumentationName),
		metrics:             newSyncMetrics(params.Logger),
		now:                 time.Now,
	}

	if params.Config != nil && params.Config.Sync != nil {
		syncCfg := params.Config.Sync
		if syncCfg.Timeout > 0 {
			svc.timeout = syncCfg.Timeout
		}
		if syncCfg.WatchdogGrace > 0 {
			svc.watchdogGrace = syncCfg.WatchdogGrace
		}
		if syncCfg.NotificationTimeout > 0 {
			svc.notificationTimeout = syncCfg.NotificationTimeout
		}
		if syncCfg.MaxConcurrency > 0 {
			svc.maxConcurrency = syncCfg.MaxConcurrency
		}
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{OnStop: svc.waitPending})
	}

	return svc
}

// waitPending blocks until detached notifications finish or ctx is done.
func (s *syncService) waitPending(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "pending sync notifications")
	}
}

// TriggerSync runs one sync for a device and waits for its outcome.
// A sync that fails after the device lock was taken returns its failed history row along with the error.
func (s *syncService) TriggerSync(
	ctx context.Context,
	userID, deviceID uuid.UUID,
	dataTypes []entity.DataType,
	syncType entity.SyncType,
) (*entity.DeviceSyncHistory, error) {
	device, err := findOwnedDevice(ctx, s.deviceRepo, userID, deviceID)
	if err != nil {
		return nil, err
	}

	return s.syncDevice(ctx, device, dataTypes, syncType)
}

func (s *syncService) syncDevice(
	ctx context.Context,
	device *entity.ConnectedDevice,
	requested []entity.DataType,
	syncType entity.SyncType,
) (*entity.DeviceSyncHistory, error) {
	switch device.Status {
	case entity.DeviceStatusDisconnected, entity.DeviceStatusPendingAuth:
		return nil, domainerrors.ErrDeviceDisconnected
	case entity.DeviceStatusTokenExpired:
		return nil, domainerrors.ErrTokenExpired
	case entity.DeviceStatusSyncing:
		if !s.isStuck(device, s.now()) {
			return nil, domainerrors.ErrAlreadySyncing
		}
		if _, err := s.resolveStuck(ctx, device); err != nil {
			return nil, err
		}
	}

	p, ok := provider.Lookup(device.Provider)
	if !ok {
		return nil, domainerrors.ErrInvalidProvider
	}
	if len(requested) > 0 && len(p.FilterSupported(requested)) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("none of the requested data types is supported by the provider")
	}

	startedAt := s.now()
	acquired, err := s.deviceRepo.TransitionStatus(ctx, device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire sync lock")
	}
	if !acquired {
		return nil, domainerrors.ErrAlreadySyncing
	}
	device.Status = entity.DeviceStatusSyncing

	ctx, span := s.tracer.Start(ctx, "SyncService.Sync", trace.WithAttributes(
		attribute.String("device.id", device.ID.String()),
		attribute.String("device.provider", string(device.Provider)),
		attribute.String("sync.type", string(syncType)),
	))
	defer span.End()

	// The outcome must be written even when the caller goes away.
	persistCtx := context.WithoutCancel(ctx)

	outcome, err := s.fetch(ctx, device, p, requested, startedAt)
	if err == nil {
		var history *entity.DeviceSyncHistory
		history, err = s.recordSuccess(persistCtx, device, syncType, outcome, startedAt)
		if err == nil {
			span.SetAttributes(attribute.Int("sync.records_stored", history.RecordsStored))
			span.SetStatus(codes.Ok, "")
			s.finish(ctx, device, history)

			return history, nil
		}
	}

	failure := asSyncFailure(err)
	span.RecordError(failure)
	span.SetStatus(codes.Error, failure.HistoryCode())

	var typesAttempted []entity.DataType
	if outcome != nil {
		typesAttempted = outcome.dataTypes
	}
	history, recordErr := s.recordFailure(persistCtx, device, syncType, typesAttempted, startedAt, failure)
	if recordErr != nil {
		s.log(ctx).Error("Failed to record sync failure",
			slog.String("device_id", device.ID.String()),
			slog.Any("error", recordErr),
		)

		return nil, failure
	}
	s.finish(ctx, device, history)

	return history, failure
}

// syncOutcome is the fetched and normalized result of one remote call.
type syncOutcome struct {
	dataTypes     []entity.DataType
	syncedTypes   []entity.DataType
	records       []*entity.WearableHealthData
	fetched       int
	partial       bool
	errorCode     string
	errorMessages []string
}

func (s *syncService) fetch(
	ctx context.Context,
	device *entity.ConnectedDevice,
	p *provider.Provider,
	requested []entity.DataType,
	startedAt time.Time,
) (*syncOutcome, error) {
	prefs, err := s.prefsRepo.FindPreferences(ctx, device.ID)
	if err != nil && !errors.Is(err, repository.ErrPreferencesNotFound) {
		return nil, errors.Wrap(err, "failed to load sync preferences")
	}

	outcome := &syncOutcome{dataTypes: resolveDataTypes(p, requested, prefs)}

	backfillDays := entity.DefaultBackfillDays
	if prefs != nil && prefs.BackfillDays > 0 {
		backfillDays = prefs.BackfillDays
	}
	since := startedAt.AddDate(0, 0, -backfillDays)
	if device.LastSyncAt != nil {
		since = *device.LastSyncAt
	}

	// The token refresh and the provider call share one deadline.
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	accessToken, err := s.freshAccessToken(callCtx, device)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return outcome, domainerrors.NewSyncFailure(domainerrors.ErrSyncTimeout, "", "", err)
		}

		return outcome, err
	}

	result, err := s.gateway.ExecuteSync(callCtx, &service.SyncRequest{
		DeviceID:       device.ID.String(),
		Provider:       device.Provider,
		ProviderUserID: device.ProviderUserID,
		AccessToken:    accessToken,
		DataTypes:      outcome.dataTypes,
		Since:          since,
		Until:          startedAt,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			var failure *domainerrors.SyncFailure
			if !errors.As(err, &failure) || failure.Kind != domainerrors.ErrSyncTimeout {
				return outcome, domainerrors.NewSyncFailure(domainerrors.ErrSyncTimeout, "", "", err)
			}
		}

		return outcome, err
	}

	syncedAt := s.now()
	for _, payload := range result.Payloads {
		if payload.ErrorCode != "" {
			outcome.partial = true
			outcome.noteError(payload.ErrorCode, fmt.Sprintf("%s: %s", payload.DataType, payload.ErrorMessage))

			continue
		}

		s.archivePayload(ctx, device, payload, startedAt)

		samples, err := normalizer.Normalize(payload.Payload, device.Provider, payload.DataType)
		if err != nil {
			outcome.partial = true
			outcome.noteError("NORMALIZATION_FAILED", fmt.Sprintf("%s: %v", payload.DataType, err))

			continue
		}
		if payload.Count > len(samples) {
			outcome.partial = true
			outcome.noteError("NORMALIZATION_FAILED",
				fmt.Sprintf("%s: %d of %d records could not be normalized", payload.DataType, payload.Count-len(samples), payload.Count))
		}

		fetched := payload.Count
		if fetched == 0 {
			fetched = len(samples)
		}
		outcome.fetched += fetched
		outcome.syncedTypes = append(outcome.syncedTypes, payload.DataType)

		for _, sample := range samples {
			outcome.records = append(outcome.records, &entity.WearableHealthData{
				ID:              uuid.New(),
				UserID:          device.UserID,
				DeviceID:        device.ID,
				Provider:        device.Provider,
				DataType:        payload.DataType,
				Timestamp:       sample.Timestamp,
				Value:           sample.Value,
				Unit:            sample.Unit,
				QualityScore:    sample.QualityScore,
				SourceWorkoutID: sample.SourceWorkoutID,
				RawData:         sample.Raw,
				SyncedAt:        syncedAt,
			})
		}
	}

	// Every data type came back with an error: nothing was synced.
	if len(outcome.syncedTypes) == 0 && len(result.Payloads) > 0 {
		return outcome, domainerrors.NewSyncFailure(
			domainerrors.ErrSyncFailed,
			outcome.errorCode,
			strings.Join(outcome.errorMessages, "; "),
			nil,
		)
	}

	return outcome, nil
}

func (o *syncOutcome) noteError(code, message string) {
	if o.errorCode == "" {
		o.errorCode = code
	}
	o.errorMessages = append(o.errorMessages, message)
}

// freshAccessToken opens the sealed credential and refreshes it when it has expired.
// A refreshed credential is sealed back onto device and saved with the sync outcome.
func (s *syncService) freshAccessToken(ctx context.Context, device *entity.ConnectedDevice) (string, error) {
	if len(device.Credential) == 0 {
		return "", domainerrors.NewSyncFailure(domainerrors.ErrTokenExpired, "", "no stored credential", nil)
	}

	cred, err := s.sealer.Open(device.Credential)
	if err != nil {
		return "", domainerrors.NewSyncFailure(domainerrors.ErrTokenExpired, "", "stored credential is unreadable", err)
	}

	fresh, refreshed, err := s.exchanger.Refresh(ctx, device.Provider, cred)
	if err != nil {
		var failure *domainerrors.SyncFailure
		if errors.As(err, &failure) {
			return "", err
		}

		return "", domainerrors.NewSyncFailure(domainerrors.ErrTokenExpired, "", "", err)
	}

	if refreshed {
		sealed, err := s.sealer.Seal(fresh)
		if err != nil {
			return "", errors.Wrap(err, "failed to seal refreshed credential")
		}
		device.Credential = sealed
		if !fresh.Expiry.IsZero() {
			expiry := fresh.Expiry
			device.TokenExpiresAt = &expiry
		}
	}

	return fresh.AccessToken, nil
}

func (s *syncService) archivePayload(ctx context.Context, device *entity.ConnectedDevice, payload service.DataTypePayload, startedAt time.Time) {
	if s.archive == nil || len(payload.Payload) == 0 {
		return
	}

	key := fmt.Sprintf("%s/%s/%s/%s.json",
		device.UserID, device.ID, payload.DataType, startedAt.UTC().Format("20060102T150405.000Z"))
	if err := s.archive.Store(ctx, key, payload.Payload); err != nil {
		s.log(ctx).Warn("Failed to archive provider payload",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (s *syncService) recordSuccess(
	ctx context.Context,
	device *entity.ConnectedDevice,
	syncType entity.SyncType,
	outcome *syncOutcome,
	startedAt time.Time,
) (*entity.DeviceSyncHistory, error) {
	stored := 0
	if len(outcome.records) > 0 {
		n, err := s.healthRepo.UpsertHealthData(ctx, outcome.records)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store health data")
		}
		stored = n
	}

	completedAt := s.now()
	device.LastSyncAt = &completedAt
	device.ErrorCount = 0
	device.LastError = ""
	if err := s.releaseDevice(ctx, device, entity.DeviceStatusConnected); err != nil {
		return nil, err
	}

	status := entity.SyncStatusSuccess
	history := &entity.DeviceSyncHistory{
		ID:              uuid.New(),
		DeviceID:        device.ID,
		UserID:          device.UserID,
		SyncType:        syncType,
		DataTypesSynced: outcome.syncedTypes,
		RecordsFetched:  outcome.fetched,
		RecordsStored:   stored,
		DurationMs:      completedAt.Sub(startedAt).Milliseconds(),
		StartedAt:       startedAt,
		CompletedAt:     completedAt,
	}
	if outcome.partial {
		status = entity.SyncStatusPartial
		history.ErrorCode = outcome.errorCode
		history.ErrorMessage = strings.Join(outcome.errorMessages, "; ")
	}
	history.Status = status

	if err := s.historyRepo.AppendHistory(ctx, history); err != nil {
		return nil, errors.Wrap(err, "failed to append sync history")
	}

	return history, nil
}

func (s *syncService) recordFailure(
	ctx context.Context,
	device *entity.ConnectedDevice,
	syncType entity.SyncType,
	dataTypes []entity.DataType,
	startedAt time.Time,
	failure *domainerrors.SyncFailure,
) (*entity.DeviceSyncHistory, error) {
	next := entity.DeviceStatusError
	if failure.Kind == domainerrors.ErrProviderAuth || failure.Kind == domainerrors.ErrTokenExpired {
		next = entity.DeviceStatusTokenExpired
	}

	completedAt := s.now()
	device.ErrorCount++
	device.LastError = failure.HistoryMessage()
	if err := s.releaseDevice(ctx, device, next); err != nil {
		return nil, err
	}

	history := &entity.DeviceSyncHistory{
		ID:              uuid.New(),
		DeviceID:        device.ID,
		UserID:          device.UserID,
		SyncType:        syncType,
		Status:          entity.SyncStatusFailed,
		DataTypesSynced: dataTypes,
		DurationMs:      completedAt.Sub(startedAt).Milliseconds(),
		ErrorCode:       failure.HistoryCode(),
		ErrorMessage:    failure.HistoryMessage(),
		StartedAt:       startedAt,
		CompletedAt:     completedAt,
	}
	if err := s.historyRepo.AppendHistory(ctx, history); err != nil {
		return nil, errors.Wrap(err, "failed to append sync history")
	}

	return history, nil
}

// releaseDevice moves a device out of syncing and saves its sync fields in a single write.
// A device disconnected while syncing keeps its disconnected state.
func (s *syncService) releaseDevice(ctx context.Context, device *entity.ConnectedDevice, next entity.DeviceStatus) error {
	device.Status = next
	released, err := s.deviceRepo.ReleaseSync(ctx, device)
	if err != nil {
		return errors.Wrap(err, "failed to release sync lock")
	}
	if released {
		return nil
	}

	s.log(ctx).Warn("Device left syncing state during sync", slog.String("device_id", device.ID.String()))

	stored, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
	if err != nil {
		return errors.Wrap(err, "failed to reload device")
	}
	*device = *stored

	return nil
}

func (s *syncService) isStuck(device *entity.ConnectedDevice, now time.Time) bool {
	return device.Status == entity.DeviceStatusSyncing &&
		now.Sub(device.UpdatedAt) > s.timeout+s.watchdogGrace
}

// resolveStuck fails a device stuck in syncing. It reports false when another caller got there first.
func (s *syncService) resolveStuck(ctx context.Context, device *entity.ConnectedDevice) (bool, error) {
	ctx = context.WithoutCancel(ctx)

	now := s.now()
	stuckSince := device.UpdatedAt
	failed := *device
	failed.Status = entity.DeviceStatusError
	failed.ErrorCount++
	failed.LastError = watchdogErrorMessage

	resolved, err := s.deviceRepo.ReleaseSync(ctx, &failed)
	if err != nil {
		return false, errors.Wrap(err, "failed to resolve stuck sync")
	}
	if !resolved {
		return false, nil
	}
	*device = failed

	history := &entity.DeviceSyncHistory{
		ID:           uuid.New(),
		DeviceID:     device.ID,
		UserID:       device.UserID,
		SyncType:     entity.SyncTypeWatchdog,
		Status:       entity.SyncStatusFailed,
		DurationMs:   now.Sub(stuckSince).Milliseconds(),
		ErrorCode:    watchdogErrorCode,
		ErrorMessage: watchdogErrorMessage,
		StartedAt:    stuckSince,
		CompletedAt:  now,
	}
	if err := s.historyRepo.AppendHistory(ctx, history); err != nil {
		return true, errors.Wrap(err, "failed to append watchdog history")
	}

	s.log(ctx).Warn("Resolved stuck sync",
		slog.String("device_id", device.ID.String()),
		slog.Time("stuck_since", stuckSince),
	)
	s.metrics.record(ctx, device.Provider, history)

	return true, nil
}

// finish records metrics and dispatches the notification of a recorded outcome.
func (s *syncService) finish(ctx context.Context, device *entity.ConnectedDevice, history *entity.DeviceSyncHistory) {
	s.metrics.record(ctx, device.Provider, history)

	s.log(ctx).Info("Sync finished",
		slog.String("device_id", device.ID.String()),
		slog.String("status", string(history.Status)),
		slog.Int("records_stored", history.RecordsStored),
		slog.Int64("duration_ms", history.DurationMs),
	)

	if s.notifier == nil {
		return
	}

	snapshot := *device
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notificationTimeout)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()

		if err := s.notifier.NotifySyncResult(notifyCtx, &snapshot, history); err != nil {
			s.log(notifyCtx).Warn("Failed to send sync notification",
				slog.String("device_id", snapshot.ID.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// RequestSync queues an auxiliary sync of several devices and returns the request id.
func (s *syncService) RequestSync(ctx context.Context, userID uuid.UUID, deviceIDs []uuid.UUID, dataTypes []entity.DataType) (string, error) {
	if userID == uuid.Nil {
		return "", domainerrors.ErrNotAuthenticated
	}
	if len(deviceIDs) == 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("at least one device id is required")
	}
	for _, dt := range dataTypes {
		if !dt.IsValid() {
			return "", domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown data type %q", dt))
		}
	}
	if s.publisher == nil {
		return "", errors.Wrap(domainerrors.ErrInternalError, "sync requests are not configured")
	}

	event := &service.SyncRequestedEvent{
		UserID:   userID.String(),
		SyncType: string(entity.SyncTypeAuxiliary),
	}
	for _, id := range deviceIDs {
		if _, err := findOwnedDevice(ctx, s.deviceRepo, userID, id); err != nil {
			return "", err
		}
		event.DeviceIDs = append(event.DeviceIDs, id.String())
	}
	for _, dt := range dataTypes {
		event.DataTypes = append(event.DataTypes, string(dt))
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.RequestID == "" {
		event.RequestID = uuid.New().String()
	}

	if err := s.publisher.PublishSyncRequested(ctx, event); err != nil {
		return "", errors.Wrap(err, "failed to publish sync request")
	}

	return event.RequestID, nil
}

// SyncBatch syncs every item; one failure never affects another.
func (s *syncService) SyncBatch(ctx context.Context, items []usecase.SyncItem) []usecase.BatchResult {
	results := make([]usecase.BatchResult, len(items))
	sem := make(chan struct{}, s.maxConcurrency)

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item usecase.SyncItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			syncType := item.SyncType
			if syncType == "" {
				syncType = entity.SyncTypeAuxiliary
			}

			history, err := s.TriggerSync(ctx, item.UserID, item.DeviceID, item.DataTypes, syncType)
			results[i] = usecase.BatchResult{
				DeviceID: item.DeviceID,
				History:  history,
				Err:      err,
			}
		}(i, item)
	}
	wg.Wait()

	return results
}

// SyncDueDevices syncs every device whose auto sync interval has elapsed at now.
func (s *syncService) SyncDueDevices(ctx context.Context, now time.Time) ([]usecase.BatchResult, error) {
	prefsList, err := s.prefsRepo.FindAutoSyncPreferences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find auto sync preferences")
	}
	if len(prefsList) == 0 {
		return []usecase.BatchResult{}, nil
	}

	prefsByDevice := make(map[uuid.UUID]*entity.SyncPreferences, len(prefsList))
	for _, prefs := range prefsList {
		prefsByDevice[prefs.DeviceID] = prefs
	}

	devices, err := s.deviceRepo.FindDevicesByStatus(ctx, entity.SyncableStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find syncable devices")
	}

	items := make([]usecase.SyncItem, 0, len(devices))
	for _, device := range devices {
		if prefsByDevice[device.ID].IsDue(device.LastSyncAt, now) {
			items = append(items, usecase.SyncItem{
				UserID:   device.UserID,
				DeviceID: device.ID,
				SyncType: entity.SyncTypeScheduled,
			})
		}
	}

	s.log(ctx).Info("Running scheduled syncs", slog.Int("due", len(items)), slog.Int("candidates", len(devices)))

	return s.SyncBatch(ctx, items), nil
}

// ResolveStuckSyncs fails devices left in syncing past the watchdog limit.
func (s *syncService) ResolveStuckSyncs(ctx context.Context, now time.Time) (int, error) {
	devices, err := s.deviceRepo.FindStuckSyncingDevices(ctx, now.Add(-(s.timeout + s.watchdogGrace)))
	if err != nil {
		return 0, errors.Wrap(err, "failed to find stuck devices")
	}

	resolved := 0
	for _, device := range devices {
		ok, err := s.resolveStuck(ctx, device)
		if err != nil {
			s.log(ctx).Error("Failed to resolve stuck sync",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
		if ok {
			resolved++
		}
	}

	return resolved, nil
}

// GetSyncHistory returns the latest sync attempts of a device, newest first.
func (s *syncService) GetSyncHistory(ctx context.Context, userID, deviceID uuid.UUID, limit int) ([]*entity.DeviceSyncHistory, error) {
	if _, err := findOwnedDevice(ctx, s.deviceRepo, userID, deviceID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	history, err := s.historyRepo.FindHistoryByDevice(ctx, deviceID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sync history")
	}

	return history, nil
}

func (s *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// resolveDataTypes picks the types to sync: the explicit request, then the enabled preferences, then everything the provider offers.
func resolveDataTypes(p *provider.Provider, requested []entity.DataType, prefs *entity.SyncPreferences) []entity.DataType {
	if len(requested) > 0 {
		return p.FilterSupported(requested)
	}
	if prefs != nil && len(prefs.DataTypesEnabled) > 0 {
		if enabled := p.FilterSupported(prefs.DataTypesEnabled); len(enabled) > 0 {
			return enabled
		}
	}

	return p.DataTypes()
}

// asSyncFailure classifies any sync error. Errors without a sync kind become ErrSyncFailed.
func asSyncFailure(err error) *domainerrors.SyncFailure {
	var failure *domainerrors.SyncFailure
	if errors.As(err, &failure) {
		return failure
	}

	return domainerrors.NewSyncFailure(domainerrors.ErrSyncFailed, "", "", err)
}
