package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/pkg/apperrors"
)

func createApplication(t *testing.T, db *gorm.DB, sc *ServiceContainer, name string) *dto.FacultyEnquiryResponse {
	t.Helper()
	resp, err := sc.Faculty.Create(context.Background(), db, &dto.CreateFacultyEnquiryRequest{
		Name:   name,
		Email:  name + "@example.com",
		Phone:  "5550100300",
		Resume: "https://cdn.example.com/resumes/" + name + ".pdf",
	})
	require.NoError(t, err)
	return resp
}

func TestFacultyAssignRequiresHRRole(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	application := createApplication(t, db, sc, "jane")

	counselor := createStaff(t, db, models.UserRoleCounselor)
	_, err := sc.Faculty.Assign(ctx, db, application.ID,
		&dto.AssignEnquiryRequest{AssignedToID: counselor.ID})
	require.Error(t, err, "counselors cannot carry faculty applications")

	hr := createStaff(t, db, models.UserRoleHR)
	resp, err := sc.Faculty.Assign(ctx, db, application.ID,
		&dto.AssignEnquiryRequest{AssignedToID: hr.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.AssignedToID)
	assert.Equal(t, hr.ID, *resp.AssignedToID)
}

func TestFacultyCountsNewSplit(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	hr := createStaff(t, db, models.UserRoleHR)

	first := createApplication(t, db, sc, "first")
	createApplication(t, db, sc, "second")
	createApplication(t, db, sc, "third")

	_, err := sc.Faculty.Assign(ctx, db, first.ID,
		&dto.AssignEnquiryRequest{AssignedToID: hr.ID})
	require.NoError(t, err)

	counts, err := sc.Faculty.GetCounts(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, int64(3), counts.New)
	assert.Equal(t, int64(2), counts.NewUnassigned)
	assert.Equal(t, int64(1), counts.NewAssigned)
	assert.Equal(t, int64(3), counts.Total)
}

func TestFacultyHiringFlow(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	application := createApplication(t, db, sc, "jane")

	// NEW -> HIRED without a screening call is rejected.
	_, err := sc.Faculty.ChangeStatus(ctx, db, application.ID,
		&dto.ChangeFacultyStatusRequest{Status: models.FacultyStatusHired}, ListScope{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	resp, err := sc.Faculty.ChangeStatus(ctx, db, application.ID,
		&dto.ChangeFacultyStatusRequest{Status: models.FacultyStatusContacted}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.FacultyStatusContacted, resp.Status)

	resp, err = sc.Faculty.ChangeStatus(ctx, db, application.ID,
		&dto.ChangeFacultyStatusRequest{Status: models.FacultyStatusHired}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.FacultyStatusHired, resp.Status)
}

func TestFacultyHRScope(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	hr := createStaff(t, db, models.UserRoleHR)

	mine := createApplication(t, db, sc, "mine")
	other := createApplication(t, db, sc, "other")

	_, err := sc.Faculty.Assign(ctx, db, mine.ID,
		&dto.AssignEnquiryRequest{AssignedToID: hr.ID})
	require.NoError(t, err)

	scope := ListScope{AssignedToID: hr.ID}

	resp, err := sc.Faculty.List(ctx, db, &dto.FacultyEnquiryListQuery{}, scope)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, mine.ID, resp.Rows[0].ID)

	_, err = sc.Faculty.GetByID(ctx, db, other.ID, scope)
	require.Error(t, err)
}

func TestFacultyCreateAcceptsShortInput(t *testing.T) {
	sc, db := newTestContainer(t)

	resp, err := sc.Faculty.Create(context.Background(), db, &dto.CreateFacultyEnquiryRequest{
		Name:  "J",
		Email: "j@x.com",
		Phone: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FacultyStatusNew, resp.Status)
}

func TestFacultyCreateRejectsBadResumeURL(t *testing.T) {
	sc, db := newTestContainer(t)

	_, err := sc.Faculty.Create(context.Background(), db, &dto.CreateFacultyEnquiryRequest{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "5550100300",
		Resume: "not-a-url",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.FacultyEnquiry{}).Count(&count).Error)
	assert.Zero(t, count)
}
