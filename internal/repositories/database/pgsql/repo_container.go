package pgsql

import (
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		HierarchyRepo: newPgxHierarchyRepository(dbPool),
		PeriodRepo:    newPgxPeriodRepository(dbPool),
		MeasureRepo:   newPgxMeasureRepository(dbPool),
		VersionRepo:   newPgxVersionRepository(dbPool),
		CellRepo:      newPgxCellRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
