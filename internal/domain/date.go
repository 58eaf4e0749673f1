package domain

import (
	"strconv"
	"time"

	"github.com/vfg2006/revenue-planning-api/pkg/utils"
)

// Date é uma data de calendário serializada como YYYY-MM-DD.
// A data zero representa um valor ausente.
type Date struct {
	time.Time
}

// NewDate cria uma data à meia-noite local
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDateOrZero converte YYYY-MM-DD, retornando a data zero se o texto for inválido
func ParseDateOrZero(value string) Date {
	date, _ := utils.ParseInputDate(value)
	return Date{Time: date}
}

func (d Date) String() string {
	return utils.FormatForInput(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON nunca falha por data inválida: o campo fica vazio
func (d *Date) UnmarshalJSON(data []byte) error {
	text, err := strconv.Unquote(string(data))
	if err != nil {
		d.Time = time.Time{}
		return nil
	}

	date, ok := utils.ParseInputDate(text)
	if !ok {
		// aceita também timestamps completos enviados por clientes antigos
		if formatted := utils.FormatForInput(text); formatted != "" {
			date, _ = utils.ParseInputDate(formatted)
		}
	}

	d.Time = date
	return nil
}
