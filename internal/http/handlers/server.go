package handlers

import (
	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
)

var dashboardSvc *dashboard.Service

func SetDashboard(s *dashboard.Service) {
	dashboardSvc = s
}
