package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-planning-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/reporting"
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

func Contracts(service records.RecordService, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/contracts",
			Method:  http.MethodGet,
			Handler: ListContracts(service),
		},
		{
			Path:    "/v1/contracts",
			Method:  http.MethodPost,
			Handler: AddContract(service),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodPut,
			Handler: UpdateContract(service),
		},
		{
			Path:    "/v1/contracts/:id/total-value",
			Method:  http.MethodGet,
			Handler: GetContractTotalValue(insighter),
		},
	}
}

func Negotiations(service records.RecordService, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/negotiations",
			Method:  http.MethodGet,
			Handler: ListNegotiations(service),
		},
		{
			Path:    "/v1/negotiations",
			Method:  http.MethodPost,
			Handler: AddNegotiation(service),
		},
		{
			Path:    "/v1/negotiations/by-vertical",
			Method:  http.MethodGet,
			Handler: GetNegotiationsByVertical(insighter),
		},
		{
			Path:    "/v1/negotiations/:id",
			Method:  http.MethodPut,
			Handler: UpdateNegotiation(service),
		},
	}
}

func Marketing(service records.RecordService, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/marketing/strategies",
			Method:  http.MethodGet,
			Handler: ListMarketingStrategies(service),
		},
		{
			Path:    "/v1/marketing/strategies",
			Method:  http.MethodPost,
			Handler: AddMarketingStrategy(service),
		},
		{
			Path:    "/v1/marketing/strategies/:id",
			Method:  http.MethodPut,
			Handler: UpdateMarketingStrategy(service),
		},
		{
			Path:    "/v1/marketing/strategies/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMarketingStrategy(service),
		},
		{
			Path:    "/v1/marketing/overview",
			Method:  http.MethodGet,
			Handler: GetMarketingOverview(insighter),
		},
	}
}

func Team(service records.RecordService, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/team/members",
			Method:  http.MethodGet,
			Handler: ListTeam(service),
		},
		{
			Path:    "/v1/team/members",
			Method:  http.MethodPost,
			Handler: AddTeamMember(service),
		},
		{
			Path:    "/v1/team/members/:id",
			Method:  http.MethodPut,
			Handler: UpdateTeamMember(service),
		},
		{
			Path:    "/v1/team/needs",
			Method:  http.MethodGet,
			Handler: ListStaffingNeeds(service),
		},
		{
			Path:    "/v1/team/needs",
			Method:  http.MethodPost,
			Handler: AddStaffingNeed(service),
		},
		{
			Path:    "/v1/team/needs/:id",
			Method:  http.MethodDelete,
			Handler: DeleteStaffingNeed(service),
		},
		{
			Path:    "/v1/team/overview",
			Method:  http.MethodGet,
			Handler: GetTeamOverview(insighter),
		},
	}
}

func Insights(service insighting.Insighter, defaultForecastMonths int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/verticals",
			Method:  http.MethodGet,
			Handler: GetVerticalMetrics(service),
		},
		{
			Path:    "/v1/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service, defaultForecastMonths),
		},
		{
			Path:    "/v1/forecast/annual",
			Method:  http.MethodGet,
			Handler: GetAnnualForecast(service),
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetMonthlyReport(service),
		},
		{
			Path:    "/v1/reports/periods",
			Method:  http.MethodGet,
			Handler: GetAvailableReportPeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
