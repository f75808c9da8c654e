package pgsql

import (
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	shipmentRepo := newPgxShipmentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		JournalRepo:   journalRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
		CustomerRepo:  customerRepo,
		ShipmentRepo:  shipmentRepo,
		DashboardRepo: shipmentRepo,
	}
}
