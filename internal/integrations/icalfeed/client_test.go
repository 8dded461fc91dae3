package icalfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const sampleFeed = "BEGIN:VCALENDAR\r\n" +
	"PRODID:-//Airbnb Inc//Hosting Calendar 1.0//EN\r\n" +
	"VERSION:2.0\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTSTART;VALUE=DATE:20260110\r\n" +
	"DTEND;VALUE=DATE:20260113\r\n" +
	"SUMMARY:Reserved\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTSTART;VALUE=DATE:20260201\r\n" +
	"SUMMARY:Airbnb (Not available)\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func newTestClient() *Client {
	return NewClient(5*time.Second, nopLogger{})
}

func TestFetchImportedDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/calendar", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	dates, err := newTestClient().FetchImportedDates(context.Background(), srv.URL)
	require.NoError(t, err)

	// DTEND is exclusive, the single-day event covers one date
	assert.Equal(t, []types.DateString{
		"2026-01-10", "2026-01-11", "2026-01-12", "2026-02-01",
	}, dates)
}

func TestFetchImportedDates_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient().FetchImportedDates(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchImportedDates_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient().FetchImportedDates(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchImportedDates_NotACalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>login required</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient().FetchImportedDates(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrInvalidFeed)
}

func TestFetchImportedDates_OverlappingEventsDeduplicated(t *testing.T) {
	feed := "BEGIN:VCALENDAR\r\n" +
		"BEGIN:VEVENT\r\nDTSTART;VALUE=DATE:20260110\r\nDTEND;VALUE=DATE:20260112\r\nEND:VEVENT\r\n" +
		"BEGIN:VEVENT\r\nDTSTART;VALUE=DATE:20260111\r\nDTEND;VALUE=DATE:20260113\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	dates, err := newTestClient().FetchImportedDates(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2026-01-10", "2026-01-11", "2026-01-12"}, dates)
}
