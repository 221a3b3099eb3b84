package handler

import (
	"net/http"

	"github.com/vfg2006/collections-manager-api/internal/api/handler/router"
	"github.com/vfg2006/collections-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/collections-manager-api/internal/usecases/efficiency"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Collections(service prioritizing.Prioritizer, defaultLimit int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/collections/priorities",
			Method:      http.MethodGet,
			Handler:     GetPrioritizedList(service, defaultLimit),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/collections/categories",
			Method:      http.MethodGet,
			Handler:     GetCategories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/recommendations",
			Method:      http.MethodGet,
			Handler:     GetCustomerRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/collections/weights",
			Method:      http.MethodGet,
			Handler:     GetWeights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/collections/weights",
			Method:      http.MethodPut,
			Handler:     UpdateWeights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/collections/workload",
			Method:      http.MethodPost,
			Handler:     DistributeWorkload(service, defaultLimit),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/collections/ranking",
			Method:      http.MethodGet,
			Handler:     GetPriorityRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Efficiency(service efficiency.Calculator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/collections/efficiency",
			Method:      http.MethodGet,
			Handler:     GetEfficiencyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/collections/aging",
			Method:      http.MethodGet,
			Handler:     GetAgingReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/collections/metrics",
			Method:      http.MethodGet,
			Handler:     ListMetricsSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/collections/metrics",
			Method:      http.MethodPost,
			Handler:     SaveMetricsSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/collections/metrics/trends",
			Method:      http.MethodGet,
			Handler:     GetMetricsTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/collections/collectors",
			Method:      http.MethodGet,
			Handler:     GetCollectorPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/promises/follow-ups",
			Method:      http.MethodGet,
			Handler:     GetPromiseFollowUps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/promises/performance",
			Method:      http.MethodGet,
			Handler:     GetPromisePerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Cron(jobs CronJobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
