package handlers

import "edubridge_backend/internal/services"

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Enquiry    *EnquiryHandler
	Enterprise *EnterpriseEnquiryHandler
	Faculty    *FacultyEnquiryHandler
	Course     *CourseHandler
	Blog       *BlogHandler
	Catalog    *CatalogHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		Auth:       NewAuthHandler(sc.Auth),
		User:       NewUserHandler(sc.User),
		Enquiry:    NewEnquiryHandler(sc.Enquiry),
		Enterprise: NewEnterpriseEnquiryHandler(sc.Enterprise),
		Faculty:    NewFacultyEnquiryHandler(sc.Faculty),
		Course:     NewCourseHandler(sc.Course),
		Blog:       NewBlogHandler(sc.Blog),
		Catalog:    NewCatalogHandler(sc.Catalog),
	}
}
