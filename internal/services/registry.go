package services

import (
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/validator"
)

// ServiceContainer wires every service over a shared repository set. All
// services are stateless, the per-request *gorm.DB handle is passed into
// each call.
type ServiceContainer struct {
	Auth       *AuthService
	User       *UserService
	Enquiry    *EnquiryService
	Enterprise *EnterpriseEnquiryService
	Faculty    *FacultyEnquiryService
	Course     *CourseService
	Blog       *BlogService
	Catalog    *CatalogService
}

func NewServiceContainer(v *validator.Validator) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	enquiryRepo := repositories.NewEnquiryRepository()
	enterpriseRepo := repositories.NewEnterpriseEnquiryRepository()
	facultyRepo := repositories.NewFacultyEnquiryRepository()
	outboxRepo := repositories.NewOutboxRepository()
	courseRepo := repositories.NewCourseRepository()
	blogRepo := repositories.NewBlogRepository()
	catalogRepo := repositories.NewCatalogRepository()

	return &ServiceContainer{
		Auth:       NewAuthService(userRepo, v),
		User:       NewUserService(userRepo, v),
		Enquiry:    NewEnquiryService(enquiryRepo, userRepo, outboxRepo, v),
		Enterprise: NewEnterpriseEnquiryService(enterpriseRepo, userRepo, outboxRepo, v),
		Faculty:    NewFacultyEnquiryService(facultyRepo, userRepo, outboxRepo, v),
		Course:     NewCourseService(courseRepo, v),
		Blog:       NewBlogService(blogRepo, v),
		Catalog:    NewCatalogService(catalogRepo, v),
	}
}
