package dto

// Course

type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=150"`
	Slug        string   `json:"slug" validate:"required,min=2,max=150"`
	Description string   `json:"description" validate:"max=5000"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Duration    string   `json:"duration" validate:"max=100"`
	Price       int64    `json:"price" validate:"min=0"`
	Level       string   `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Topics      []string `json:"topics"`
	CategoryID  *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Published   bool     `json:"published"`
}

type UpdateCourseRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Slug        *string   `json:"slug,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string   `json:"image,omitempty" validate:"omitempty,url"`
	Duration    *string   `json:"duration,omitempty" validate:"omitempty,max=100"`
	Price       *int64    `json:"price,omitempty" validate:"omitempty,min=0"`
	Level       *string   `json:"level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Topics      *[]string `json:"topics,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Published   *bool     `json:"published,omitempty"`
}

type CourseListQuery struct {
	PaginationQuery
	CategoryID string `form:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Published  *bool  `form:"published" json:"published"`
	Search     string `form:"search" json:"search" validate:"omitempty,max=100"`
}

// Blog

type CreateBlogRequest struct {
	Title      string   `json:"title" validate:"required,min=2,max=200"`
	Slug       string   `json:"slug" validate:"required,min=2,max=200"`
	Content    string   `json:"content" validate:"required"`
	Image      string   `json:"image" validate:"omitempty,url"`
	Tags       []string `json:"tags"`
	CategoryID *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Published  bool     `json:"published"`
}

type UpdateBlogRequest struct {
	Title      *string   `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Slug       *string   `json:"slug,omitempty" validate:"omitempty,min=2,max=200"`
	Content    *string   `json:"content,omitempty"`
	Image      *string   `json:"image,omitempty" validate:"omitempty,url"`
	Tags       *[]string `json:"tags,omitempty"`
	CategoryID *string   `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Published  *bool     `json:"published,omitempty"`
}

type BlogListQuery struct {
	PaginationQuery
	CategoryID string `form:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Published  *bool  `form:"published" json:"published"`
	Search     string `form:"search" json:"search" validate:"omitempty,max=100"`
}

// Categories (shared shape for course and blog categories)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// Showcase content

type CreateFacultyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Designation string `json:"designation" validate:"max=150"`
	Bio         string `json:"bio" validate:"max=2000"`
	Image       string `json:"image" validate:"omitempty,url"`
	Experience  string `json:"experience" validate:"max=150"`
}

type UpdateFacultyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Designation *string `json:"designation,omitempty" validate:"omitempty,max=150"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
	Experience  *string `json:"experience,omitempty" validate:"omitempty,max=150"`
}

type CreateTestimonialRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Course  string `json:"course" validate:"max=150"`
	Content string `json:"content" validate:"required,max=2000"`
	Image   string `json:"image" validate:"omitempty,url"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type CreatePlacementRequest struct {
	StudentName string `json:"student_name" validate:"required,min=2,max=100"`
	Company     string `json:"company" validate:"required,max=150"`
	Role        string `json:"role" validate:"max=150"`
	Package     string `json:"package" validate:"max=100"`
	Image       string `json:"image" validate:"omitempty,url"`
	Year        int    `json:"year" validate:"omitempty,min=2000,max=2100"`
}

type CreateFAQRequest struct {
	Question   string  `json:"question" validate:"required,max=500"`
	Answer     string  `json:"answer" validate:"required,max=5000"`
	CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
}
