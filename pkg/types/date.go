package types

import (
	"fmt"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DateString календарная дата в формате "YYYY-MM-DD" без компонента времени.
// Используется для всех дат заезда/выезда и блокировок календаря.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит строку "YYYY-MM-DD" в DateString
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date string format: %v", err)
	}
	return DateString(s), nil
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что значение является корректной датой
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("invalid date string format: %v", err)
	}
	return nil
}

// Time конвертирует DateString в time.Time (полночь UTC)
func (d DateString) Time() time.Time {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsBefore возвращает true, если d строго раньше other.
// Лексикографическое сравнение корректно для формата YYYY-MM-DD.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter возвращает true, если d строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// AddDays возвращает дату, сдвинутую на days дней (days может быть отрицательным)
func (d DateString) AddDays(days int) DateString {
	return NewDateString(d.Time().AddDate(0, 0, days))
}

// Weekday возвращает день недели
func (d DateString) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysUntil возвращает количество дней от d до other (other - d).
// Отрицательное значение означает, что other раньше d.
func (d DateString) DaysUntil(other DateString) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// DatesBetween возвращает все даты полуоткрытого интервала [from, to).
// Для to <= from возвращает пустой слайс.
func DatesBetween(from, to DateString) []DateString {
	out := make([]DateString, 0)
	for day := from; day.IsBefore(to); day = day.AddDays(1) {
		out = append(out, day)
	}
	return out
}
