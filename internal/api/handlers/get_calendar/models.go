package get_calendar

import (
	getCalendar "github.com/saltylife/SL-RentalService/internal/usecase/get_calendar"
)

// CalendarResponse календарь объекта за диапазон [from, to)
type CalendarResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days []Day  `json:"days"`
}

// Day один день календаря
type Day struct {
	Date      string `json:"date"`
	Price     int64  `json:"price"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]Day, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, Day{
			Date:      d.Date.String(),
			Price:     d.Price,
			Label:     d.Label,
			Available: d.Available,
			Reason:    d.Reason,
		})
	}

	return &CalendarResponse{
		From: resp.From.String(),
		To:   resp.To.String(),
		Days: days,
	}
}
