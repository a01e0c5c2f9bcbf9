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

func createCorporateLead(t *testing.T, db *gorm.DB, sc *ServiceContainer, company string) *dto.EnterpriseEnquiryResponse {
	t.Helper()
	resp, err := sc.Enterprise.Create(context.Background(), db, &dto.CreateEnterpriseEnquiryRequest{
		CompanyName: company,
		Email:       "training@" + company + ".example.com",
		Phone:       "5550100400",
		Duration:    "6 weeks",
	})
	require.NoError(t, err)
	return resp
}

func TestEnterpriseAssignAcceptsCounselorAndHR(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()

	lead := createCorporateLead(t, db, sc, "acme")
	agent := createStaff(t, db, models.UserRoleAgent)

	_, err := sc.Enterprise.Assign(ctx, db, lead.ID,
		&dto.AssignEnquiryRequest{AssignedToID: agent.ID})
	require.Error(t, err, "agents cannot carry enterprise leads")

	counselor := createStaff(t, db, models.UserRoleCounselor)
	resp, err := sc.Enterprise.Assign(ctx, db, lead.ID,
		&dto.AssignEnquiryRequest{AssignedToID: counselor.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.AssignedToID)

	hr := createStaff(t, db, models.UserRoleHR)
	resp, err = sc.Enterprise.Assign(ctx, db, lead.ID,
		&dto.AssignEnquiryRequest{AssignedToID: hr.ID})
	require.NoError(t, err)
	assert.Equal(t, hr.ID, *resp.AssignedToID)
}

func TestEnterpriseEngagementFlow(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	lead := createCorporateLead(t, db, sc, "acme")

	_, err := sc.Enterprise.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnterpriseStatusRequest{Status: models.EnterpriseStatusCompleted}, ListScope{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	resp, err := sc.Enterprise.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnterpriseStatusRequest{Status: models.EnterpriseStatusContacted}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.EnterpriseStatusContacted, resp.Status)

	resp, err = sc.Enterprise.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnterpriseStatusRequest{Status: models.EnterpriseStatusCompleted}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.EnterpriseStatusCompleted, resp.Status)

	// Completed engagements can still be archived.
	resp, err = sc.Enterprise.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnterpriseStatusRequest{Status: models.EnterpriseStatusArchived}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.EnterpriseStatusArchived, resp.Status)
}

func TestEnterpriseCreateAcceptsShortInput(t *testing.T) {
	sc, db := newTestContainer(t)

	resp, err := sc.Enterprise.Create(context.Background(), db, &dto.CreateEnterpriseEnquiryRequest{
		CompanyName: "X",
		Email:       "x@x.com",
		Phone:       "123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EnterpriseStatusNew, resp.Status)
}

func TestEnterpriseCreateEnqueuesAcknowledgement(t *testing.T) {
	sc, db := newTestContainer(t)
	createCorporateLead(t, db, sc, "acme")

	var entries []models.EmailOutbox
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ToEmail, "acme")
}

func TestEnterpriseSearchByCompanyName(t *testing.T) {
	sc, db := newTestContainer(t)
	createCorporateLead(t, db, sc, "acme")
	createCorporateLead(t, db, sc, "globex")

	resp, err := sc.Enterprise.List(context.Background(), db,
		&dto.EnterpriseEnquiryListQuery{Search: "GLOB"}, ListScope{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "globex", resp.Rows[0].CompanyName)
}

func TestEnterpriseCountsShape(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()

	a := createCorporateLead(t, db, sc, "acme")
	createCorporateLead(t, db, sc, "globex")

	_, err := sc.Enterprise.ChangeStatus(ctx, db, a.ID,
		&dto.ChangeEnterpriseStatusRequest{Status: models.EnterpriseStatusClosed}, ListScope{})
	require.NoError(t, err)

	counts, err := sc.Enterprise.GetCounts(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.New)
	assert.Equal(t, int64(1), counts.Closed)
	assert.Equal(t, int64(2), counts.Total)
}
