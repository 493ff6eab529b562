package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ghosteone/manager-api/internal/api/handler/router"
	"github.com/ghosteone/manager-api/internal/usecases/aggregating"
	"github.com/ghosteone/manager-api/internal/usecases/authenticating"
	"github.com/ghosteone/manager-api/internal/usecases/connecting"
	"github.com/ghosteone/manager-api/internal/usecases/deciding"
	"github.com/ghosteone/manager-api/internal/usecases/scoring"
	"github.com/ghosteone/manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Connection(service connecting.ConnectionResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connection-status",
			Method:      http.MethodGet,
			Handler:     GetConnectionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ManagerContext(service aggregating.ContextBuilder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/manager/context",
			Method:      http.MethodGet,
			Handler:     GetManagerContext(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Scores(scorer scoring.Scorer, reader *scoring.ReadService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scores",
			Method:      http.MethodPost,
			Handler:     ComputeScore(scorer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entities/:type/:id/scores/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestScore(reader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Decisions(service deciding.Decider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/recommend",
			Method:      http.MethodPost,
			Handler:     RecommendCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/decisions",
			Method:      http.MethodGet,
			Handler:     ListCampaignDecisions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
