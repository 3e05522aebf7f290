package repositories

// RepositoryProvider bundles concrete repository implementations for
// injection into the service container.
type RepositoryProvider struct {
	EventRepo  EventRepositoryFacade
	ResultRepo ResultRepositoryFacade
	UserRepo   UserRepositoryFacade
}
