package utils

import (
	"fmt"
	"strings"
	"time"
)

// InputDateLayout é o formato usado pelos formulários e pela API (YYYY-MM-DD)
const InputDateLayout = "2006-01-02"

// MonthLayout é o formato de mês aceito nos filtros de previsão (YYYY-MM)
const MonthLayout = "2006-01"

// ParseInputDate converte um texto YYYY-MM-DD em uma data à meia-noite local.
// Retorna false para entrada vazia ou inválida, nunca entra em pânico.
func ParseInputDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	date, err := time.ParseInLocation(InputDateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// FormatForInput formata uma data (ou texto de data) como YYYY-MM-DD.
// Valores ausentes ou inválidos resultam em string vazia.
func FormatForInput(value any) string {
	var date time.Time

	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		date = v
	case *time.Time:
		if v == nil {
			return ""
		}
		date = *v
	case string:
		parsed, ok := parseLooseDate(v)
		if !ok {
			return ""
		}
		date = parsed
	case *string:
		if v == nil {
			return ""
		}
		return FormatForInput(*v)
	default:
		return ""
	}

	if date.IsZero() {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}

// parseLooseDate aceita YYYY-MM-DD ou RFC3339
func parseLooseDate(value string) (time.Time, bool) {
	if date, ok := ParseInputDate(value); ok {
		return date, true
	}

	date, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}

	return date.In(time.Local), true
}

// ParseMonth converte YYYY-MM no primeiro dia do mês à meia-noite local
func ParseMonth(value string) (time.Time, error) {
	month, err := time.ParseInLocation(MonthLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, err
	}

	return month, nil
}

// FirstDayOfMonth retorna o primeiro dia do mês da data, à meia-noite local
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
}

// SameMonth indica se as duas datas caem no mesmo mês do mesmo ano
func SameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// MonthPeriod formata a data no padrão de período mm-yyyy
func MonthPeriod(date time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(date.Month()), date.Year())
}

// ParseMonthPeriod converte um período mm-yyyy no primeiro dia do mês
func ParseMonthPeriod(period string) (time.Time, error) {
	return time.ParseInLocation("01-2006", period, time.Local)
}

var shortMonthNames = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// ShortMonthLabel retorna o rótulo curto do mês usado nos gráficos (ex: jan/2025)
func ShortMonthLabel(date time.Time) string {
	return fmt.Sprintf("%s/%d", shortMonthNames[date.Month()-1], date.Year())
}
