package check_availability

import (
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// Request модель запроса расчёта стоимости и проверки доступности
type Request struct {
	CheckIn  types.DateString // Дата заезда
	CheckOut types.DateString // Дата выезда (не включается в проживание)
}

// Night цена одной ночи в разбивке
type Night struct {
	Date  types.DateString
	Price int64
	Label string // "Base", "Weekend" или название праздничного периода
}

// Response модель расчёта: стоимость считается и для занятых дат,
// чтобы гость видел цену до выбора других дат
type Response struct {
	Available     bool    // Все ночи диапазона свободны
	MeetsMinStay  bool    // Длина проживания не меньше минимума
	MinNights     int     // Минимальная длина проживания
	Nights        int     // Количество ночей
	Breakdown     []Night // Поночная разбивка
	Accommodation int64   // Сумма за проживание без сбора за уборку
	CleaningFee   int64   // Сбор за уборку (один раз за проживание)
	Total         int64   // Итог: проживание + уборка
}
