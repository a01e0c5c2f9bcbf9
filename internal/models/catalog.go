package models

import (
	"gorm.io/datatypes"
)

// Public-site catalog entities. They all follow the same CRUD shape in the
// repositories; update paths only ever touch allow-listed columns.

type CourseCategory struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Courses []Course `gorm:"foreignKey:CategoryID" json:"-"`
}

type Course struct {
	BaseModel
	Title       string         `gorm:"not null;index" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Price       int64          `json:"price"`
	Level       string         `json:"level"`
	Topics      datatypes.JSON `json:"topics"`
	Image       string         `json:"image"`
	Published   bool           `gorm:"default:false;index" json:"published"`
	CategoryID  *string        `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Category *CourseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type BlogCategory struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Blogs []Blog `gorm:"foreignKey:CategoryID" json:"-"`
}

type Blog struct {
	BaseModel
	Title      string         `gorm:"not null;index" json:"title"`
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content    string         `json:"content"`
	Image      string         `json:"image"`
	Tags       datatypes.JSON `json:"tags"`
	Published  bool           `gorm:"default:false;index" json:"published"`
	AuthorID   *string        `gorm:"type:uuid;index" json:"author_id,omitempty"`
	CategoryID *string        `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Author   *User         `gorm:"foreignKey:AuthorID" json:"-"`
	Category *BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// Faculty is a public instructor profile shown on the website, distinct
// from FacultyEnquiry (the job application).
type Faculty struct {
	BaseModel
	Name        string `gorm:"not null;index" json:"name"`
	Designation string `json:"designation"`
	Bio         string `json:"bio"`
	Image       string `json:"image"`
	Experience  string `json:"experience"`
}

type Testimonial struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Course  string `json:"course"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

type Placement struct {
	BaseModel
	StudentName string `gorm:"not null" json:"student_name"`
	Company     string `gorm:"not null" json:"company"`
	Role        string `json:"role"`
	Package     string `json:"package"`
	Image       string `json:"image"`
	Year        int    `json:"year"`
}

type FAQCategory struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	FAQs []FAQ `gorm:"foreignKey:CategoryID" json:"-"`
}

type FAQ struct {
	BaseModel
	Question   string  `gorm:"not null" json:"question"`
	Answer     string  `json:"answer"`
	CategoryID *string `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Category *FAQCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
