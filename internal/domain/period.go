package domain

import "time"

// MetricPeriod representa a janela (inclusiva) usada nas agregações
type MetricPeriod struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewMetricPeriod cria e valida um período
func NewMetricPeriod(start, end time.Time) (MetricPeriod, error) {
	period := MetricPeriod{Start: DateOnly(start), End: DateOnly(end)}
	if err := period.Validate(); err != nil {
		return MetricPeriod{}, err
	}
	return period, nil
}

// Validate rejeita períodos invertidos
func (p MetricPeriod) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return InvalidInputf("período sem data de início ou fim")
	}
	if DateOnly(p.Start).After(DateOnly(p.End)) {
		return InvalidInputf("período invertido: %s > %s", p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly))
	}
	return nil
}

// Contains verifica se a data está dentro do período, considerando apenas o dia
func (p MetricPeriod) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(p.Start)) && !d.After(DateOnly(p.End))
}

// PreviousMonth retorna o mês completo anterior à data de referência
func PreviousMonth(ref time.Time) MetricPeriod {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MetricPeriod{
		Start: firstOfMonth.AddDate(0, -1, 0),
		End:   firstOfMonth.AddDate(0, 0, -1),
	}
}
