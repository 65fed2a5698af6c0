package domain

import "time"

// HorizonEnd вычисляет последнюю доступную для записи дату.
// Правило: до HorizonCutoffDay числа месяца — последний день текущего месяца,
// начиная с HorizonCutoffDay — последний день следующего месяца
// (с переходом через год: декабрь → январь).
//
// Чистая функция от "сегодня", пересчитывается при каждом обращении
// и никогда не кэшируется через границу суток.
func HorizonEnd(today time.Time) time.Time {
	year, month, _ := today.Date()

	// День 0 следующего месяца — последний день нужного месяца,
	// time.Date нормализует переполнение месяца сам
	if today.Day() >= HorizonCutoffDay {
		return time.Date(year, month+2, 0, 0, 0, 0, 0, today.Location())
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, today.Location())
}

// IsWithinHorizon проверяет, что дата попадает в окно записи [сегодня, горизонт].
// Дата, равная горизонту, доступна; горизонт + 1 день — нет.
//
// Сравниваются календарные даты: аргументы могут жить в разных time.Location
// (дата из запроса парсится в UTC, "сегодня" приходит в локальной зоне
// сервера), поэтому сравнение ведётся по строкам YYYY-MM-DD, а не по моментам.
func IsWithinHorizon(date, today time.Time) bool {
	day := date.Format(DateFormat)
	return day >= today.Format(DateFormat) && day <= HorizonEnd(today).Format(DateFormat)
}
