package repositories

import (
	"errors"
	"strings"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFacultyEnquiryNotFound = errors.New("faculty enquiry not found")

type FacultyEnquiryFilter struct {
	Status       models.FacultyEnquiryStatus
	Assignment   string
	AssignedToID string
	Search       string
	Page         int
	Limit        int
}

type FacultyEnquiryCounts struct {
	New           int64 `json:"NEW"`
	NewUnassigned int64 `json:"NEW_UNASSIGNED"`
	NewAssigned   int64 `json:"NEW_ASSIGNED"`
	Contacted     int64 `json:"CONTACTED"`
	Hired         int64 `json:"HIRED"`
	Closed        int64 `json:"CLOSED"`
	Archived      int64 `json:"ARCHIVED"`
	Total         int64 `json:"TOTAL"`
}

type FacultyEnquiryRepository interface {
	Create(db *gorm.DB, enquiry *models.FacultyEnquiry) error
	FindByID(db *gorm.DB, id string) (*models.FacultyEnquiry, error)
	FindWithFilter(db *gorm.DB, criteria FacultyEnquiryFilter) ([]models.FacultyEnquiry, int64, error)
	Update(db *gorm.DB, id string, values map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	GetCounts(db *gorm.DB) (*FacultyEnquiryCounts, error)
}

type FacultyEnquiryRepositoryImpl struct{}

func NewFacultyEnquiryRepository() FacultyEnquiryRepository {
	return &FacultyEnquiryRepositoryImpl{}
}

func (r *FacultyEnquiryRepositoryImpl) Create(db *gorm.DB, enquiry *models.FacultyEnquiry) error {
	return db.Create(enquiry).Error
}

func (r *FacultyEnquiryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.FacultyEnquiry, error) {
	var enquiry models.FacultyEnquiry
	err := db.Preload("AssignedTo").First(&enquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func applyFacultyFilter(query *gorm.DB, criteria FacultyEnquiryFilter) *gorm.DB {
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
	if criteria.Search != "" {
		search := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(email) LIKE ? OR phone LIKE ?",
			search, search, "%"+criteria.Search+"%",
		)
	}
	return query
}

func (r *FacultyEnquiryRepositoryImpl) FindWithFilter(db *gorm.DB, criteria FacultyEnquiryFilter) ([]models.FacultyEnquiry, int64, error) {
	var enquiries []models.FacultyEnquiry
	var total int64

	offset := (criteria.Page - 1) * criteria.Limit

	err := db.Transaction(func(tx *gorm.DB) error {
		query := applyFacultyFilter(tx.Model(&models.FacultyEnquiry{}), criteria)

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.Preload("AssignedTo").
			Order("created_at DESC").
			Limit(criteria.Limit).Offset(offset).
			Find(&enquiries).Error
	})

	return enquiries, total, err
}

func (r *FacultyEnquiryRepositoryImpl) Update(db *gorm.DB, id string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	result := db.Model(&models.FacultyEnquiry{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFacultyEnquiryNotFound
	}
	return nil
}

func (r *FacultyEnquiryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.FacultyEnquiry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFacultyEnquiryNotFound
	}
	return nil
}

func (r *FacultyEnquiryRepositoryImpl) GetCounts(db *gorm.DB) (*FacultyEnquiryCounts, error) {
	var counts FacultyEnquiryCounts

	err := db.Transaction(func(tx *gorm.DB) error {
		model := func() *gorm.DB { return tx.Model(&models.FacultyEnquiry{}) }

		statusCounts := []struct {
			status models.FacultyEnquiryStatus
			dest   *int64
		}{
			{models.FacultyStatusNew, &counts.New},
			{models.FacultyStatusContacted, &counts.Contacted},
			{models.FacultyStatusHired, &counts.Hired},
			{models.FacultyStatusClosed, &counts.Closed},
			{models.FacultyStatusArchived, &counts.Archived},
		}

		for _, sc := range statusCounts {
			if err := model().Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
				return err
			}
		}

		if err := model().
			Where("status = ? AND assigned_to_id IS NULL", models.FacultyStatusNew).
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
