package get_property

import (
	"github.com/saltylife/SL-RentalService/internal/domain"
)

// PropertyResponse публичная карточка объекта.
// Тариф и ключи владельца наружу не отдаются.
type PropertyResponse struct {
	Name           string        `json:"name"`
	BasePrice      int64         `json:"basePrice"`
	CleaningFee    int64         `json:"cleaningFee"`
	MinNights      int           `json:"minNights"`
	WeekendMult    float64       `json:"weekendMultiplier"`
	BookingMode    string        `json:"bookingMode"`
	InstantBooking bool          `json:"instantBooking"`
	WhatsApp       string        `json:"whatsApp"`
	Holidays       []HolidayRule `json:"holidays"`
}

// HolidayRule праздничный период с множителем цены
type HolidayRule struct {
	Name       string  `json:"name"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Multiplier float64 `json:"multiplier"`
}

// FromDomainConfig конвертирует конфигурацию объекта в публичную модель
func FromDomainConfig(c *domain.PropertyConfig) *PropertyResponse {
	holidays := make([]HolidayRule, 0, len(c.Holidays))
	for _, hr := range c.Holidays {
		holidays = append(holidays, HolidayRule{
			Name:       hr.Name,
			Start:      hr.Start.String(),
			End:        hr.End.String(),
			Multiplier: hr.Multiplier,
		})
	}

	return &PropertyResponse{
		Name:           c.Name,
		BasePrice:      c.BasePrice,
		CleaningFee:    c.CleaningFee,
		MinNights:      c.MinNights,
		WeekendMult:    c.WeekendMult,
		BookingMode:    string(c.BookingMode),
		InstantBooking: c.CanInstantBook(),
		WhatsApp:       c.WhatsApp,
		Holidays:       holidays,
	}
}
