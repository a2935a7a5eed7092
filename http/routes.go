package http

// registerRoutes sets up all routes for the server.
// All routes are defined in this single file for easy navigation.
func (s *Server) registerRoutes() {
	// Health check routes (public)
	s.echo.GET("/health", s.handleHealthCheck)
	s.echo.GET("/health/live", s.handleLivenessCheck)
	s.echo.GET("/health/ready", s.handleReadinessCheck)

	api := s.echo.Group("/api")

	// Due-date dashboard
	api.GET("/due-dates", s.handleListDueDates)

	// Scheduled inspections (bookings)
	api.POST("/scheduled-inspections", s.handleCreateScheduledInspection)
	api.PUT("/scheduled-inspections/:id", s.handleUpdateScheduledInspection)
	api.DELETE("/scheduled-inspections/:id", s.handleDeleteScheduledInspection)
	api.GET("/holdings/:id/scheduled", s.handleListScheduledByHolding)

	// Multi-inspection batches
	api.GET("/customers/:customerId/multi-inspection-holdings", s.handleListMultiInspectionHoldings)
	api.POST("/multi-inspections", s.handleCreateMultiInspection)

	// Inspection history and certificates
	api.GET("/holdings/:id/inspections", s.handleListInspectionHistory)
	api.GET("/inspections/:id", s.handleGetInspection)
	api.POST("/inspections/:id/certificate/email", s.handleEmailCertificate)
}
