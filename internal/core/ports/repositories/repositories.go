package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	HierarchyRepo HierarchyRepositoryFacade
	PeriodRepo    PeriodRepositoryFacade
	MeasureRepo   MeasureRepositoryFacade
	VersionRepo   VersionRepositoryFacade
	CellRepo      CellRepositoryFacade
	UserRepo      UserRepositoryFacade
}
