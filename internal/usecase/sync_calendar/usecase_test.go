package sync_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/internal/domain"
	calendarRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/calendar"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePropertyRepo struct{ config *domain.PropertyConfig }

func (f *fakePropertyRepo) GetConfig(ctx context.Context) (*domain.PropertyConfig, error) {
	return f.config, nil
}

type fakeCalendarRepo struct {
	connections map[string]*domain.CalendarConnection
	imported    map[string][]types.DateString
	statuses    []domain.ConnectionStatus
	replaceErr  error
}

func (f *fakeCalendarRepo) GetConnection(ctx context.Context, id string) (*domain.CalendarConnection, error) {
	conn, ok := f.connections[id]
	if !ok {
		return nil, calendarRepo.ErrConnectionNotFound
	}
	copied := *conn
	return &copied, nil
}

func (f *fakeCalendarRepo) ListConnections(ctx context.Context) ([]*domain.CalendarConnection, error) {
	var conns []*domain.CalendarConnection
	for _, conn := range f.connections {
		conns = append(conns, conn)
	}
	return conns, nil
}

func (f *fakeCalendarRepo) UpdateConnectionStatus(ctx context.Context, id string, status domain.ConnectionStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeCalendarRepo) ReplaceImported(ctx context.Context, id string, dates []types.DateString, syncedAt time.Time) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.imported[id] = dates
	return nil
}

type fakeFeedClient struct {
	dates []types.DateString
	err   error
}

func (f *fakeFeedClient) FetchImportedDates(ctx context.Context, feedURL string) ([]types.DateString, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dates, nil
}

func proConfig() *domain.PropertyConfig {
	return &domain.PropertyConfig{Name: "Sea Breeze Apartment", Plan: domain.PlanPro}
}

func newFixture(config *domain.PropertyConfig, feed *fakeFeedClient) (*UseCase, *fakeCalendarRepo, time.Time) {
	calendar := &fakeCalendarRepo{
		connections: map[string]*domain.CalendarConnection{
			"conn-1": {
				ID:       "conn-1",
				Platform: "airbnb",
				URL:      "https://example.com/feed.ics",
				Status:   domain.ConnectionConnected,
			},
		},
		imported: map[string][]types.DateString{
			"conn-1": {"2026-03-01", "2026-03-02", "2026-03-03"},
		},
	}

	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakePropertyRepo{config: config}, calendar, feed, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedClock{now}
	return uc, calendar, now
}

func TestExecute_ReplacesImportedDates(t *testing.T) {
	// Фид вернул меньше дат, чем было: старые должны пропасть
	feed := &fakeFeedClient{dates: []types.DateString{"2026-03-05"}}
	uc, calendar, now := newFixture(proConfig(), feed)

	resp, err := uc.Execute(context.Background(), "conn-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, []types.DateString{"2026-03-05"}, calendar.imported["conn-1"])
	assert.Equal(t, domain.ConnectionConnected, resp.Connection.Status)
	require.NotNil(t, resp.Connection.LastSyncAt)
	assert.Equal(t, now, *resp.Connection.LastSyncAt)
	assert.Equal(t, []domain.ConnectionStatus{domain.ConnectionSyncing}, calendar.statuses)
}

func TestExecute_FetchFailureKeepsPreviousDates(t *testing.T) {
	feed := &fakeFeedClient{err: errors.New("connection refused")}
	uc, calendar, _ := newFixture(proConfig(), feed)

	_, err := uc.Execute(context.Background(), "conn-1")
	assert.ErrorIs(t, err, ErrSyncFailed)

	// Ранее импортированные даты не тронуты, подключение помечено error
	assert.Equal(t, []types.DateString{"2026-03-01", "2026-03-02", "2026-03-03"}, calendar.imported["conn-1"])
	assert.Equal(t, []domain.ConnectionStatus{domain.ConnectionSyncing, domain.ConnectionError}, calendar.statuses)
}

func TestExecute_ReplaceFailureMarksError(t *testing.T) {
	feed := &fakeFeedClient{dates: []types.DateString{"2026-03-05"}}
	uc, calendar, _ := newFixture(proConfig(), feed)
	calendar.replaceErr = errors.New("deadlock detected")

	_, err := uc.Execute(context.Background(), "conn-1")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []domain.ConnectionStatus{domain.ConnectionSyncing, domain.ConnectionError}, calendar.statuses)
}

func TestExecute_BasicPlanRejected(t *testing.T) {
	config := proConfig()
	config.Plan = domain.PlanBasic
	feed := &fakeFeedClient{dates: []types.DateString{"2026-03-05"}}
	uc, calendar, _ := newFixture(config, feed)

	_, err := uc.Execute(context.Background(), "conn-1")
	assert.ErrorIs(t, err, ErrPlanRestricted)
	assert.Empty(t, calendar.statuses)
}

func TestExecute_ConnectionNotFound(t *testing.T) {
	feed := &fakeFeedClient{}
	uc, _, _ := newFixture(proConfig(), feed)

	_, err := uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestExecuteAll_ContinuesPastFailures(t *testing.T) {
	feed := &fakeFeedClient{err: errors.New("timeout")}
	uc, calendar, _ := newFixture(proConfig(), feed)
	calendar.connections["conn-2"] = &domain.CalendarConnection{
		ID:       "conn-2",
		Platform: "booking",
		URL:      "https://example.com/other.ics",
		Status:   domain.ConnectionConnected,
	}

	// Оба подключения падают на fetch: проход не прерывается
	uc.ExecuteAll(context.Background())
	assert.Len(t, calendar.statuses, 4)
}
