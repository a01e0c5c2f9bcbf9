package repositories

import (
	"errors"
	"strings"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEnterpriseEnquiryNotFound = errors.New("enterprise enquiry not found")

type EnterpriseEnquiryFilter struct {
	Status       models.EnterpriseEnquiryStatus
	Assignment   string
	AssignedToID string
	Search       string
	Page         int
	Limit        int
}

type EnterpriseEnquiryCounts struct {
	New           int64 `json:"NEW"`
	NewUnassigned int64 `json:"NEW_UNASSIGNED"`
	NewAssigned   int64 `json:"NEW_ASSIGNED"`
	Contacted     int64 `json:"CONTACTED"`
	Completed     int64 `json:"COMPLETED"`
	Closed        int64 `json:"CLOSED"`
	Archived      int64 `json:"ARCHIVED"`
	Total         int64 `json:"TOTAL"`
}

type EnterpriseEnquiryRepository interface {
	Create(db *gorm.DB, enquiry *models.EnterpriseEnquiry) error
	FindByID(db *gorm.DB, id string) (*models.EnterpriseEnquiry, error)
	FindWithFilter(db *gorm.DB, criteria EnterpriseEnquiryFilter) ([]models.EnterpriseEnquiry, int64, error)
	Update(db *gorm.DB, id string, values map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	GetCounts(db *gorm.DB) (*EnterpriseEnquiryCounts, error)
}

type EnterpriseEnquiryRepositoryImpl struct{}

func NewEnterpriseEnquiryRepository() EnterpriseEnquiryRepository {
	return &EnterpriseEnquiryRepositoryImpl{}
}

func (r *EnterpriseEnquiryRepositoryImpl) Create(db *gorm.DB, enquiry *models.EnterpriseEnquiry) error {
	return db.Create(enquiry).Error
}

// FindByID joins the assigned staff member so callers can render the
// assignee's public profile without a second query.
func (r *EnterpriseEnquiryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.EnterpriseEnquiry, error) {
	var enquiry models.EnterpriseEnquiry
	err := db.Preload("AssignedTo").First(&enquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnterpriseEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func applyEnterpriseFilter(query *gorm.DB, criteria EnterpriseEnquiryFilter) *gorm.DB {
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
			"lower(company_name) LIKE ? OR lower(email) LIKE ? OR phone LIKE ?",
			search, search, "%"+criteria.Search+"%",
		)
	}
	return query
}

func (r *EnterpriseEnquiryRepositoryImpl) FindWithFilter(db *gorm.DB, criteria EnterpriseEnquiryFilter) ([]models.EnterpriseEnquiry, int64, error) {
	var enquiries []models.EnterpriseEnquiry
	var total int64

	offset := (criteria.Page - 1) * criteria.Limit

	err := db.Transaction(func(tx *gorm.DB) error {
		query := applyEnterpriseFilter(tx.Model(&models.EnterpriseEnquiry{}), criteria)

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

func (r *EnterpriseEnquiryRepositoryImpl) Update(db *gorm.DB, id string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	result := db.Model(&models.EnterpriseEnquiry{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnterpriseEnquiryNotFound
	}
	return nil
}

func (r *EnterpriseEnquiryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.EnterpriseEnquiry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnterpriseEnquiryNotFound
	}
	return nil
}

func (r *EnterpriseEnquiryRepositoryImpl) GetCounts(db *gorm.DB) (*EnterpriseEnquiryCounts, error) {
	var counts EnterpriseEnquiryCounts

	err := db.Transaction(func(tx *gorm.DB) error {
		model := func() *gorm.DB { return tx.Model(&models.EnterpriseEnquiry{}) }

		statusCounts := []struct {
			status models.EnterpriseEnquiryStatus
			dest   *int64
		}{
			{models.EnterpriseStatusNew, &counts.New},
			{models.EnterpriseStatusContacted, &counts.Contacted},
			{models.EnterpriseStatusCompleted, &counts.Completed},
			{models.EnterpriseStatusClosed, &counts.Closed},
			{models.EnterpriseStatusArchived, &counts.Archived},
		}

		for _, sc := range statusCounts {
			if err := model().Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
				return err
			}
		}

		if err := model().
			Where("status = ? AND assigned_to_id IS NULL", models.EnterpriseStatusNew).
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
