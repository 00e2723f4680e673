package services

import (
	portsrepo "github.com/PlanSmiths/merch_planning_app/internal/core/ports/repositories"
	portssvc "github.com/PlanSmiths/merch_planning_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Hierarchy = NewHierarchyService(repos.HierarchyRepo)
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Measure = NewMeasureService(repos.MeasureRepo)
	container.Version = NewVersionService(repos.VersionRepo)
	container.User = NewUserService(repos.UserRepo)

	// The engines share the cell store; the orchestrator sequences them.
	spreadSvc := NewSpreadService(repos.CellRepo)
	rollupSvc := NewRollupService(repos.CellRepo)
	formulaSvc := NewFormulaService(repos.CellRepo)
	container.Planning = NewPlanningService(repos, spreadSvc, rollupSvc, formulaSvc)

	return container
}
