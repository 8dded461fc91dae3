package get_quote

import (
	checkAvailability "github.com/saltylife/SL-RentalService/internal/usecase/check_availability"
)

// QuoteResponse расчёт стоимости проживания для гостя
type QuoteResponse struct {
	Available     bool    `json:"available"`
	MeetsMinStay  bool    `json:"meetsMinStay"`
	MinNights     int     `json:"minNights"`
	Nights        int     `json:"nights"`
	Breakdown     []Night `json:"breakdown"`
	Accommodation int64   `json:"accommodation"`
	CleaningFee   int64   `json:"cleaningFee"`
	Total         int64   `json:"total"`
}

// Night цена одной ночи
type Night struct {
	Date  string `json:"date"`
	Price int64  `json:"price"`
	Label string `json:"label"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) *QuoteResponse {
	breakdown := make([]Night, 0, len(resp.Breakdown))
	for _, n := range resp.Breakdown {
		breakdown = append(breakdown, Night{Date: n.Date.String(), Price: n.Price, Label: n.Label})
	}

	return &QuoteResponse{
		Available:     resp.Available,
		MeetsMinStay:  resp.MeetsMinStay,
		MinNights:     resp.MinNights,
		Nights:        resp.Nights,
		Breakdown:     breakdown,
		Accommodation: resp.Accommodation,
		CleaningFee:   resp.CleaningFee,
		Total:         resp.Total,
	}
}
