package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "wearsync/internal/domain/errors"
	mockUsecase "wearsync/internal/mocks/usecase"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestScheduledHandler(t *testing.T, now time.Time) (*ScheduledHandler, *mockUsecase.MockSyncUsecase) {
	t.Helper()

	syncUC := mockUsecase.NewMockSyncUsecase(t)
	h := NewScheduledHandler(ScheduledHandlerParams{
		Logger: newTestLogger(),
		SyncUC: syncUC,
	})
	h.now = func() time.Time { return now }

	return h, syncUC
}

func TestScheduledHandler_SyncDueDevices(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h, syncUC := newTestScheduledHandler(t, now)

	syncUC.EXPECT().SyncDueDevices(mock.Anything, now).Return([]usecase.BatchResult{
		{DeviceID: uuid.New()},
		{DeviceID: uuid.New(), Err: domainerrors.ErrAlreadySyncing},
	}, nil)

	rec := serve(h.SyncDueDevices, httptest.NewRequest(http.MethodPost, "/scheduled/due", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"devices":2,"failed":1}`, rec.Body.String())
}

func TestScheduledHandler_SyncDueDevicesFails(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h, syncUC := newTestScheduledHandler(t, now)

	syncUC.EXPECT().SyncDueDevices(mock.Anything, now).Return(nil, errors.New("db down"))

	rec := serve(h.SyncDueDevices, httptest.NewRequest(http.MethodPost, "/scheduled/due", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestScheduledHandler_ResolveStuckSyncs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h, syncUC := newTestScheduledHandler(t, now)

	syncUC.EXPECT().ResolveStuckSyncs(mock.Anything, now).Return(3, nil)

	rec := serve(h.ResolveStuckSyncs, httptest.NewRequest(http.MethodPost, "/scheduled/watchdog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"resolved":3}`, rec.Body.String())
}
