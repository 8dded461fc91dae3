package pricing

import (
	"math"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// DayPrice результат расчета цены за одну ночь
type DayPrice struct {
	Price      int64
	Label      string
	Multiplier float64
}

// PriceForDay вычисляет цену за ночь на указанную дату.
// Правила праздников проверяются линейно в порядке таблицы - первое совпадение
// выигрывает и возвращается сразу, даже если дата приходится на выходной.
// Если праздник не совпал, для четверга/пятницы применяется weekendMult.
// Чистая тотальная функция - ошибок не бывает.
func PriceForDay(date types.DateString, basePrice int64, weekendMult float64, holidays domain.HolidayTable) DayPrice {
	if rule, ok := holidays.Match(date); ok {
		return DayPrice{
			Price:      roundHalfUp(float64(basePrice) * rule.Multiplier),
			Label:      rule.Name,
			Multiplier: rule.Multiplier,
		}
	}

	mult := 1.0
	label := domain.LabelBase
	// При множителе 1.0 выходной день помечается как базовый
	if domain.IsWeekend(date.Weekday()) && weekendMult != 1.0 {
		mult = weekendMult
		label = domain.LabelWeekend
	}

	return DayPrice{
		Price:      roundHalfUp(float64(basePrice) * mult),
		Label:      label,
		Multiplier: mult,
	}
}

// Estimate вычисляет полную стоимость проживания: сумма цен за каждую ночь
// полуоткрытого интервала [checkIn, checkOut) плюс разовый сбор за уборку.
// Для checkOut <= checkIn (или незаданных дат) возвращает 0 - вызывающая
// сторона обязана трактовать 0 как "нечего оценивать", а не бесплатное
// проживание. Слишком короткое проживание здесь не ошибка: проверка
// минимального количества ночей - забота валидации, не прайсинга.
func Estimate(checkIn, checkOut types.DateString, basePrice, cleaningFee int64, weekendMult float64, holidays domain.HolidayTable) int64 {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	if !checkOut.IsAfter(checkIn) {
		return 0
	}

	var sum int64
	for _, day := range types.DatesBetween(checkIn, checkOut) {
		sum += PriceForDay(day, basePrice, weekendMult, holidays).Price
	}

	return sum + cleaningFee
}

// roundHalfUp округляет до ближайшего целого, 0.5 всегда вверх
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
