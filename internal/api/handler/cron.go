package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/internal/scheduler"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
)

// CronJobAll dispara todas as rotinas
const CronJobAll = "all"

// CronJobs indexa as rotinas agendadas pelo nome usado na URL
type CronJobs map[string]scheduler.Job

func NewCronJobs(jobs ...scheduler.Job) CronJobs {
	indexed := make(CronJobs, len(jobs))
	for _, job := range jobs {
		indexed[job.Name()] = job
	}
	return indexed
}

func (c CronJobs) names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunCronJob executa manualmente uma rotina específica
func RunCronJob(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de rotina não especificado", nil)
			return
		}

		logrus.WithField("job", cronType).Info("Execução manual de rotina solicitada")

		if cronType == CronJobAll {
			started := make([]string, 0, len(jobs))
			for _, name := range jobs.names() {
				if err := jobs[name].TriggerManualSync(); err != nil {
					logrus.WithError(err).WithField("job", name).Warn("Rotina não iniciada")
					continue
				}
				started = append(started, name)
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Rotinas iniciadas com sucesso",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, exists := jobs[cronType]
		if !exists {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de rotina inválido", map[string]any{
				"accepted": append(jobs.names(), CronJobAll),
			})
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Rotina iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das rotinas
func GetCronStatus(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
