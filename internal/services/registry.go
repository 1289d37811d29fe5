package services

// ServiceContainer bundles the application services for wiring into
// handlers.
type ServiceContainer struct {
	AuthService        AuthService
	InternshipService  InternshipService
	ApplicationService ApplicationService
	ProfileService     ProfileService
}
