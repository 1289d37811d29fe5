package handlers

// AppHandlers bundles the HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	InternshipHandler  *InternshipHandler
	ApplicationHandler *ApplicationHandler
	ProfileHandler     *ProfileHandler
}
