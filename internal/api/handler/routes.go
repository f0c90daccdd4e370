package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/managing"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
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

func Users(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users",
			Method:  http.MethodGet,
			Handler: ListUsers(service),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodPut,
			Handler: UpdateUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodDelete,
			Handler: DeleteUser(service),
		},
	}
}

func Groups(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/groups",
			Method:  http.MethodGet,
			Handler: ListGroups(service),
		},
		{
			Path:    "/v1/groups",
			Method:  http.MethodPost,
			Handler: CreateGroup(service),
		},
		{
			Path:    "/v1/groups/:id",
			Method:  http.MethodGet,
			Handler: GetGroup(service),
		},
		{
			Path:    "/v1/groups/:id",
			Method:  http.MethodPut,
			Handler: UpdateGroup(service),
		},
		{
			Path:    "/v1/groups/:id",
			Method:  http.MethodDelete,
			Handler: DeleteGroup(service),
		},
		{
			Path:    "/v1/groups/:id/users/:user_id",
			Method:  http.MethodPost,
			Handler: AddUserToGroup(service),
		},
		{
			Path:    "/v1/groups/:id/users/:user_id",
			Method:  http.MethodDelete,
			Handler: RemoveUserFromGroup(service),
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: AddSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

// AgentSales retorna as rotas de consulta de vendas atribuídas ao
// vendedor
func AgentSales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/agents/user/:id",
			Method:  http.MethodGet,
			Handler: GetAgentSales(service),
		},
		{
			Path:    "/v1/sales/agents/user/:id/:timeframe",
			Method:  http.MethodGet,
			Handler: GetAgentSalesTimeframe(service),
		},
		{
			Path:    "/v1/sales/agents/after/:start_date/:timeframe",
			Method:  http.MethodGet,
			Handler: GetAgentSalesAfterDate(service),
		},
		{
			Path:    "/v1/sales/agents/timeframe/:timeframe",
			Method:  http.MethodGet,
			Handler: GetAgentSalesGroupedByTimeframe(service),
		},
		{
			Path:    "/v1/sales/agents/range/:start_date/:end_date",
			Method:  http.MethodGet,
			Handler: GetAgentSalesByDateRange(service),
		},
	}
}

// GroupSales retorna as rotas de consulta de vendas atribuídas ao grupo
// pelo vínculo do vendedor
func GroupSales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/groups/group/:id",
			Method:  http.MethodGet,
			Handler: GetGroupSales(service),
		},
		{
			Path:    "/v1/sales/groups/group/:id/:timeframe",
			Method:  http.MethodGet,
			Handler: GetGroupSalesTimeframe(service),
		},
		{
			Path:    "/v1/sales/groups/after/:start_date/:timeframe",
			Method:  http.MethodGet,
			Handler: GetGroupSalesAfterDate(service),
		},
		{
			Path:    "/v1/sales/groups/timeframe/:timeframe",
			Method:  http.MethodGet,
			Handler: GetGroupSalesGroupedByTimeframe(service),
		},
		{
			Path:    "/v1/sales/groups/range/:start_date/:end_date",
			Method:  http.MethodGet,
			Handler: GetGroupSalesByDateRange(service),
		},
	}
}

func Reports(reporter reporting.Reporter, manager managing.Manager, seller selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/user/:id/:year",
			Method:  http.MethodGet,
			Handler: GetUserReport(reporter, manager, seller),
		},
		{
			Path:    "/v1/reports/group/:id/:year",
			Method:  http.MethodGet,
			Handler: GetGroupReport(reporter, manager, seller),
		},
	}
}
