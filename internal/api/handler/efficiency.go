package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/efficiency"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/utils"
)

const (
	defaultMetricsLimit      = 12
	defaultFollowUpDays      = 7
	defaultPromiseWindowDays = 90
)

type SaveMetricsRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// parsePeriod lê start e end da query string. Sem datas, usa o período padrão.
func parsePeriod(r *http.Request, fallback domain.MetricPeriod) (domain.MetricPeriod, string, error) {
	start, err := utils.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		return domain.MetricPeriod{}, apiErrors.ErrInvalidFormat, err
	}

	end, err := utils.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		return domain.MetricPeriod{}, apiErrors.ErrInvalidFormat, err
	}

	if start == nil && end == nil {
		return fallback, "", nil
	}
	if start == nil || end == nil {
		return domain.MetricPeriod{}, apiErrors.ErrMissingRequiredData, domain.InvalidInputf("informe start e end")
	}

	period, err := domain.NewMetricPeriod(*start, *end)
	if err != nil {
		return domain.MetricPeriod{}, apiErrors.ErrInvalidInput, err
	}
	return period, "", nil
}

func GetEfficiencyReport(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, code, err := parsePeriod(r, domain.PreviousMonth(time.Now()))
		if err != nil {
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		report, err := service.GetEfficiencyReport(period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetAgingReport(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetAgingReport()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func ListMetricsSnapshots(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", defaultMetricsLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		snapshots, err := service.ListMetricsSnapshots(limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	}
}

// SaveMetricsSnapshot grava os indicadores de um período informado
func SaveMetricsSnapshot(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveMetricsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		start, _ := utils.ParseDate(req.StartDate)
		end, _ := utils.ParseDate(req.EndDate)

		period, err := domain.NewMetricPeriod(*start, *end)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput, err.Error(), nil)
			return
		}

		snapshot, err := service.SaveMetricsSnapshot(period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, snapshot)
	}
}

func GetMetricsTrend(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", defaultMetricsLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.GetMetricsTrend(limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetCollectorPerformance(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, code, err := parsePeriod(r, domain.PreviousMonth(time.Now()))
		if err != nil {
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		report, err := service.GetCollectorPerformance(period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetPromiseFollowUps(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		daysAhead, err := queryInt(r, "days_ahead", defaultFollowUpDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		items, err := service.GetPromiseFollowUps(daysAhead)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// GetPromisePerformance usa os últimos 90 dias quando o período não é informado
func GetPromisePerformance(service efficiency.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := domain.DateOnly(time.Now())
		fallback := domain.MetricPeriod{Start: today.AddDate(0, 0, -defaultPromiseWindowDays), End: today}

		period, code, err := parsePeriod(r, fallback)
		if err != nil {
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		report, err := service.GetPromisePerformance(period)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
