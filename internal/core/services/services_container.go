package services

import (
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Journal:   NewJournalService(repos.JournalRepo, repos.AccountRepo),
		Reporting: NewReportingService(repos.ReportingRepo, WithBalanceTolerance(cfg.BalanceTolerance)),
		User:      NewUserService(repos.UserRepo),
		Auth:      NewTokenService(cfg),
		Customer:  NewCustomerService(repos.CustomerRepo),
		Shipment:  NewShipmentService(repos.ShipmentRepo, repos.CustomerRepo),
		Dashboard: NewDashboardService(repos.DashboardRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.JournalSvcFacade  = (*journalService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.AuthSvcFacade     = (*tokenService)(nil)
	_ portssvc.CustomerSvcFacade = (*customerService)(nil)
	_ portssvc.ShipmentSvcFacade = (*shipmentService)(nil)
	_ portssvc.DashboardService  = (*dashboardService)(nil)
)
