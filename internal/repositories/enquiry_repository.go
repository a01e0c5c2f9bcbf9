package repositories

import (
	"errors"
	"strings"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

// Assignment sub-filter values for the NEW status split.
const (
	AssignmentUnassigned = "unassigned"
	AssignmentAssigned   = "assigned"
)

// EnquiryFilter narrows student enquiry lists.
type EnquiryFilter struct {
	Status       models.EnquiryStatus
	Assignment   string // "", "unassigned", "assigned"
	AssignedToID string
	AgentID      string
	CourseID     string
	Search       string
	Page         int
	Limit        int
}

// EnquiryCounts is the fixed-shape aggregate for dashboard funnel widgets.
type EnquiryCounts struct {
	New           int64 `json:"NEW"`
	NewUnassigned int64 `json:"NEW_UNASSIGNED"`
	NewAssigned   int64 `json:"NEW_ASSIGNED"`
	Contacted     int64 `json:"CONTACTED"`
	Enrolled      int64 `json:"ENROLLED"`
	Dead          int64 `json:"DEAD"`
	Archived      int64 `json:"ARCHIVED"`
	Total         int64 `json:"TOTAL"`
}

type EnquiryRepository interface {
	Create(db *gorm.DB, enquiry *models.Enquiry) error
	FindByID(db *gorm.DB, id string) (*models.Enquiry, error)
	FindWithFilter(db *gorm.DB, criteria EnquiryFilter) ([]models.Enquiry, int64, error)
	Update(db *gorm.DB, id string, values map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	GetCounts(db *gorm.DB) (*EnquiryCounts, error)
}

type EnquiryRepositoryImpl struct{}

func NewEnquiryRepository() EnquiryRepository {
	return &EnquiryRepositoryImpl{}
}

func (r *EnquiryRepositoryImpl) Create(db *gorm.DB, enquiry *models.Enquiry) error {
	return db.Create(enquiry).Error
}

func (r *EnquiryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := db.Preload("Course").Preload("AssignedTo").Preload("Agent").
		First(&enquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func applyEnquiryFilter(query *gorm.DB, criteria EnquiryFilter) *gorm.DB {
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	switch criteria.Assignment {
	case AssignmentUnassigned:
		query = query.Where("assigned_to_id IS NULL")
	case AssignmentAssigned:
		query = query.Where("assigned_to_id IS NOT NULL")
	}
	if criteria.AssignedToID != "" {
		query = query.Where("assigned_to_id = ?", criteria.AssignedToID)
	}
	if criteria.AgentID != "" {
		query = query.Where("agent_id = ?", criteria.AgentID)
	}
	if criteria.CourseID != "" {
		query = query.Where("course_id = ?", criteria.CourseID)
	}
	if criteria.Search != "" {
		search := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(email) LIKE ? OR phone LIKE ?",
			search, search, "%"+criteria.Search+"%",
		)
	}
	return query
}

// FindWithFilter returns the page plus the total matching count. Both
// queries run inside one transaction so the pair is read from a single
// snapshot.
func (r *EnquiryRepositoryImpl) FindWithFilter(db *gorm.DB, criteria EnquiryFilter) ([]models.Enquiry, int64, error) {
	var enquiries []models.Enquiry
	var total int64

	offset := (criteria.Page - 1) * criteria.Limit

	err := db.Transaction(func(tx *gorm.DB) error {
		query := applyEnquiryFilter(tx.Model(&models.Enquiry{}), criteria)

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.Preload("Course").
			Order("created_at DESC").
			Limit(criteria.Limit).Offset(offset).
			Find(&enquiries).Error
	})

	return enquiries, total, err
}

func (r *EnquiryRepositoryImpl) Update(db *gorm.DB, id string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	result := db.Model(&models.Enquiry{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}

func (r *EnquiryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Enquiry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}

// GetCounts runs one count query per bucket, all inside a single
// transaction. Several round trips, but the status cardinality is tiny and
// the shared snapshot keeps TOTAL equal to the sum of the buckets.
func (r *EnquiryRepositoryImpl) GetCounts(db *gorm.DB) (*EnquiryCounts, error) {
	var counts EnquiryCounts

	err := db.Transaction(func(tx *gorm.DB) error {
		model := func() *gorm.DB { return tx.Model(&models.Enquiry{}) }

		statusCounts := []struct {
			status models.EnquiryStatus
			dest   *int64
		}{
			{models.EnquiryStatusNew, &counts.New},
			{models.EnquiryStatusContacted, &counts.Contacted},
			{models.EnquiryStatusEnrolled, &counts.Enrolled},
			{models.EnquiryStatusDead, &counts.Dead},
			{models.EnquiryStatusArchived, &counts.Archived},
		}

		for _, sc := range statusCounts {
			if err := model().Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
				return err
			}
		}

		if err := model().
			Where("status = ? AND assigned_to_id IS NULL", models.EnquiryStatusNew).
			Count(&counts.NewUnassigned).Error; err != nil {
			return err
		}
		counts.NewAssigned = counts.New - counts.NewUnassigned

		return model().Count(&counts.Total).Error
	})
	if err != nil {
		return nil, err
	}

	return &counts, nil
}
