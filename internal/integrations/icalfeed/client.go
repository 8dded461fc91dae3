package icalfeed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для загрузки внешних iCal календарей (Airbnb, Booking.com).
// Единственная операция с сетевым I/O во всем сервисе; вызывать вне
// транзакций БД.
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента внешних календарей
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchImportedDates загружает фид по URL и возвращает множество занятых дат.
// Каждое VEVENT разворачивается в полуоткрытый интервал [DTSTART, DTEND) -
// в iCal для all-day событий DTEND эксклюзивен, что совпадает с нашей
// семантикой занятости (день выезда свободен).
func (c *Client) FetchImportedDates(ctx context.Context, feedURL string) ([]types.DateString, error) {
	c.log.Info("Fetching ical feed url=%s", feedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrFetchFailed, resp.StatusCode, string(body))
	}

	dates, err := parseFeed(resp.Body)
	if err != nil {
		return nil, err
	}

	c.log.Info("Fetched ical feed url=%s, blocked_dates=%d", feedURL, len(dates))
	return dates, nil
}

// parseFeed разбирает iCalendar поток в отсортированный список дат.
// Парсер минимальный: интересуют только DTSTART/DTEND внутри VEVENT,
// остальные свойства фида игнорируются.
func parseFeed(r io.Reader) ([]types.DateString, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var sawCalendar bool
	var inEvent bool
	var start, end types.DateString

	seen := make(map[types.DateString]struct{})

	flush := func() {
		if start.IsZero() {
			return
		}
		if end.IsZero() {
			// Событие без DTEND занимает один день
			end = start.AddDays(1)
		}
		for _, day := range types.DatesBetween(start, end) {
			seen[day] = struct{}{}
		}
		start, end = "", ""
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, "BEGIN:VCALENDAR"):
			sawCalendar = true
		case strings.HasPrefix(line, "BEGIN:VEVENT"):
			inEvent = true
			start, end = "", ""
		case strings.HasPrefix(line, "END:VEVENT"):
			if inEvent {
				flush()
			}
			inEvent = false
		case inEvent && strings.HasPrefix(line, "DTSTART"):
			if d, err := parseDateProperty(line); err == nil {
				start = d
			}
		case inEvent && strings.HasPrefix(line, "DTEND"):
			if d, err := parseDateProperty(line); err == nil {
				end = d
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read error: %v", ErrInvalidFeed, err)
	}
	if !sawCalendar {
		return nil, fmt.Errorf("%w: missing BEGIN:VCALENDAR", ErrInvalidFeed)
	}

	out := make([]types.DateString, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out, nil
}

// parseDateProperty извлекает дату из строк вида
// "DTSTART;VALUE=DATE:20260217" или "DTSTART:20260217T140000Z"
func parseDateProperty(line string) (types.DateString, error) {
	idx := strings.LastIndex(line, ":")
	if idx < 0 || idx == len(line)-1 {
		return "", fmt.Errorf("%w: malformed property %q", ErrInvalidFeed, line)
	}

	value := line[idx+1:]
	if len(value) < 8 {
		return "", fmt.Errorf("%w: malformed date %q", ErrInvalidFeed, value)
	}

	t, err := time.Parse("20060102", value[:8])
	if err != nil {
		return "", fmt.Errorf("%w: malformed date %q: %v", ErrInvalidFeed, value, err)
	}

	return types.NewDateString(t), nil
}

