package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/internal/testutil"
	"edubridge_backend/internal/validator"
	"edubridge_backend/pkg/apperrors"
)

func newTestContainer(t *testing.T) (*ServiceContainer, *gorm.DB) {
	t.Helper()
	return NewServiceContainer(validator.New()), testutil.NewTestDB(t)
}

func createStaff(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Staff " + string(role),
		Email:        string(role) + "-" + t.Name() + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createLead(t *testing.T, db *gorm.DB, sc *ServiceContainer, name, email string) *dto.EnquiryResponse {
	t.Helper()
	resp, err := sc.Enquiry.Create(context.Background(), db, &dto.CreateEnquiryRequest{
		Name:  name,
		Email: email,
		Phone: "5550100200",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateEnquirySetsNewAndUnassigned(t *testing.T) {
	sc, db := newTestContainer(t)

	resp := createLead(t, db, sc, "Asha Verma", "asha@example.com")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, models.EnquiryStatusNew, resp.Status)
	assert.Nil(t, resp.AssignedToID)
	assert.Nil(t, resp.AssignedAt)
}

func TestCreateEnquiryAcceptsShortNameAndPhone(t *testing.T) {
	sc, db := newTestContainer(t)

	// Public forms only check presence and upper bounds; a one-letter name
	// and a short phone number are legitimate input.
	resp, err := sc.Enquiry.Create(context.Background(), db, &dto.CreateEnquiryRequest{
		Name:  "A",
		Email: "a@x.com",
		Phone: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusNew, resp.Status)
	assert.Nil(t, resp.AssignedToID)

	var row models.Enquiry
	require.NoError(t, db.First(&row, "id = ?", resp.ID).Error)
	assert.Equal(t, "A", row.Name)
	assert.Equal(t, "123", row.Phone)
}

func TestCreateEnquiryValidationPersistsNothing(t *testing.T) {
	sc, db := newTestContainer(t)

	_, err := sc.Enquiry.Create(context.Background(), db, &dto.CreateEnquiryRequest{
		Name: "No Contact Details",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Enquiry{}).Count(&count).Error)
	assert.Zero(t, count, "a rejected enquiry must not be persisted")

	require.NoError(t, db.Model(&models.EmailOutbox{}).Count(&count).Error)
	assert.Zero(t, count, "no acknowledgement email without a persisted enquiry")
}

func TestCreateEnquiryEnqueuesAcknowledgement(t *testing.T) {
	sc, db := newTestContainer(t)

	createLead(t, db, sc, "Asha Verma", "asha@example.com")

	var entries []models.EmailOutbox
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "asha@example.com", entries[0].ToEmail)
	assert.Equal(t, models.OutboxStatusPending, entries[0].Status)
}

func TestListPaginationBoundsAreStrict(t *testing.T) {
	sc, db := newTestContainer(t)

	cases := []dto.PaginationQuery{
		{Page: -1, Limit: 10},
		{Page: 1, Limit: -5},
		{Page: 1, Limit: 51},
	}
	for _, p := range cases {
		_, err := sc.Enquiry.List(context.Background(), db,
			&dto.EnquiryListQuery{PaginationQuery: p}, ListScope{})
		require.Error(t, err, "page=%d limit=%d", p.Page, p.Limit)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.HTTPCode)
	}

	// Zero values fall back to defaults rather than erroring.
	resp, err := sc.Enquiry.List(context.Background(), db,
		&dto.EnquiryListQuery{}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, dto.DefaultLimit, resp.Limit)
}

func TestListReturnsTotalAcrossPages(t *testing.T) {
	sc, db := newTestContainer(t)

	for i := 0; i < 7; i++ {
		createLead(t, db, sc, "Lead", "lead@example.com")
	}

	resp, err := sc.Enquiry.List(context.Background(), db, &dto.EnquiryListQuery{
		PaginationQuery: dto.PaginationQuery{Page: 2, Limit: 3},
	}, ListScope{})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3)
	assert.Equal(t, int64(7), resp.Total)
}

func TestAssignRequiresCounselorRole(t *testing.T) {
	sc, db := newTestContainer(t)
	lead := createLead(t, db, sc, "Asha Verma", "asha@example.com")
	hr := createStaff(t, db, models.UserRoleHR)

	_, err := sc.Enquiry.Assign(context.Background(), db, lead.ID,
		&dto.AssignEnquiryRequest{AssignedToID: hr.ID})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	counselor := createStaff(t, db, models.UserRoleCounselor)
	resp, err := sc.Enquiry.Assign(context.Background(), db, lead.ID,
		&dto.AssignEnquiryRequest{AssignedToID: counselor.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.AssignedToID)
	assert.Equal(t, counselor.ID, *resp.AssignedToID)
	assert.NotNil(t, resp.AssignedAt)
}

func TestChangeStatusFollowsTransitionTable(t *testing.T) {
	sc, db := newTestContainer(t)
	lead := createLead(t, db, sc, "Asha Verma", "asha@example.com")
	ctx := context.Background()

	// NEW -> ENROLLED skips CONTACTED and must fail with a conflict.
	_, err := sc.Enquiry.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnquiryStatusRequest{Status: models.EnquiryStatusEnrolled}, ListScope{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	resp, err := sc.Enquiry.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnquiryStatusRequest{Status: models.EnquiryStatusContacted}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusContacted, resp.Status)

	// Re-setting the current status is an idempotent success.
	resp, err = sc.Enquiry.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnquiryStatusRequest{Status: models.EnquiryStatusContacted}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusContacted, resp.Status)

	resp, err = sc.Enquiry.ChangeStatus(ctx, db, lead.ID,
		&dto.ChangeEnquiryStatusRequest{Status: models.EnquiryStatusEnrolled}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusEnrolled, resp.Status)
}

func TestCounselorScopeSeesOnlyOwnAssignments(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()

	counselorA := createStaff(t, db, models.UserRoleCounselor)
	counselorB := &models.User{
		Name: "Other Counselor", Email: "other@example.com",
		PasswordHash: "x", Role: models.UserRoleCounselor,
	}
	require.NoError(t, db.Create(counselorB).Error)

	mine := createLead(t, db, sc, "Mine", "mine@example.com")
	other := createLead(t, db, sc, "Other", "other-lead@example.com")
	createLead(t, db, sc, "Pool", "pool@example.com")

	_, err := sc.Enquiry.Assign(ctx, db, mine.ID, &dto.AssignEnquiryRequest{AssignedToID: counselorA.ID})
	require.NoError(t, err)
	_, err = sc.Enquiry.Assign(ctx, db, other.ID, &dto.AssignEnquiryRequest{AssignedToID: counselorB.ID})
	require.NoError(t, err)

	scope := ListScope{AssignedToID: counselorA.ID}

	resp, err := sc.Enquiry.List(ctx, db, &dto.EnquiryListQuery{}, scope)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, mine.ID, resp.Rows[0].ID)
	assert.Equal(t, int64(1), resp.Total)

	// Direct reads outside the scope come back as not found.
	_, err = sc.Enquiry.GetByID(ctx, db, other.ID, scope)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	_, err = sc.Enquiry.GetByID(ctx, db, mine.ID, scope)
	require.NoError(t, err)
}

func TestCountsSplitNewByAssignment(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	counselor := createStaff(t, db, models.UserRoleCounselor)

	a := createLead(t, db, sc, "A", "a@example.com")
	createLead(t, db, sc, "B", "b@example.com")
	c := createLead(t, db, sc, "C", "c@example.com")

	_, err := sc.Enquiry.Assign(ctx, db, a.ID, &dto.AssignEnquiryRequest{AssignedToID: counselor.ID})
	require.NoError(t, err)
	_, err = sc.Enquiry.ChangeStatus(ctx, db, c.ID,
		&dto.ChangeEnquiryStatusRequest{Status: models.EnquiryStatusContacted}, ListScope{})
	require.NoError(t, err)

	counts, err := sc.Enquiry.GetCounts(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.New)
	assert.Equal(t, int64(1), counts.NewUnassigned)
	assert.Equal(t, int64(1), counts.NewAssigned)
	assert.Equal(t, int64(1), counts.Contacted)
	assert.Equal(t, int64(3), counts.Total)
	assert.Equal(t, counts.Total,
		counts.New+counts.Contacted+counts.Enrolled+counts.Dead+counts.Archived)
}

func TestUpdateOnlyTouchesAllowListedFields(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	lead := createLead(t, db, sc, "Asha Verma", "asha@example.com")

	newName := "Asha V."
	resp, err := sc.Enquiry.Update(ctx, db, lead.ID, &dto.UpdateEnquiryRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha V.", resp.Name)
	// Untouched fields keep their values; status is unreachable from Update.
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, models.EnquiryStatusNew, resp.Status)
	assert.Equal(t, lead.ID, resp.ID)
}

func TestUpdateNotes(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	lead := createLead(t, db, sc, "Asha Verma", "asha@example.com")

	note := "called, asked for evening batch"
	resp, err := sc.Enquiry.UpdateNotes(ctx, db, lead.ID,
		&dto.UpdateNotesRequest{Note: &note}, ListScope{})
	require.NoError(t, err)
	assert.Equal(t, note, resp.Note)
	assert.Empty(t, resp.Remark)
}

func TestDeleteEnquiry(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	lead := createLead(t, db, sc, "Asha Verma", "asha@example.com")

	require.NoError(t, sc.Enquiry.Delete(ctx, db, lead.ID))

	_, err := sc.Enquiry.GetByID(ctx, db, lead.ID, ListScope{})
	require.Error(t, err)

	err = sc.Enquiry.Delete(ctx, db, lead.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUnassignReturnsLeadToPool(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	counselor := createStaff(t, db, models.UserRoleCounselor)
	lead := createLead(t, db, sc, "Asha Verma", "asha@example.com")

	_, err := sc.Enquiry.Assign(ctx, db, lead.ID, &dto.AssignEnquiryRequest{AssignedToID: counselor.ID})
	require.NoError(t, err)

	resp, err := sc.Enquiry.Unassign(ctx, db, lead.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.AssignedToID)
	assert.Nil(t, resp.AssignedAt)

	var row models.Enquiry
	require.NoError(t, db.First(&row, "id = ?", lead.ID).Error)
	assert.Nil(t, row.AssignedToID)
}

func TestAgentReferralValidation(t *testing.T) {
	sc, db := newTestContainer(t)
	hr := createStaff(t, db, models.UserRoleHR)

	_, err := sc.Enquiry.Create(context.Background(), db, &dto.CreateEnquiryRequest{
		Name:    "Referred Lead",
		Email:   "ref@example.com",
		Phone:   "5550100200",
		AgentID: &hr.ID,
	})
	require.Error(t, err, "a non-agent referrer must be rejected")

	agent := createStaff(t, db, models.UserRoleAgent)
	resp, err := sc.Enquiry.Create(context.Background(), db, &dto.CreateEnquiryRequest{
		Name:    "Referred Lead",
		Email:   "ref@example.com",
		Phone:   "5550100200",
		AgentID: &agent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.AgentID)
	assert.Equal(t, agent.ID, *resp.AgentID)

	// Agent scope follows the referral.
	listResp, err := sc.Enquiry.List(context.Background(), db,
		&dto.EnquiryListQuery{}, ListScope{AgentID: agent.ID})
	require.NoError(t, err)
	require.Len(t, listResp.Rows, 1)
	assert.Equal(t, resp.ID, listResp.Rows[0].ID)
}

func TestSearchFiltersByNameEmailPhone(t *testing.T) {
	sc, db := newTestContainer(t)
	createLead(t, db, sc, "Asha Verma", "asha@example.com")

	_, err := sc.Enquiry.Create(context.Background(), db, &dto.CreateEnquiryRequest{
		Name:  "Vikram Rao",
		Email: "vikram@example.com",
		Phone: "9990001111",
	})
	require.NoError(t, err)

	resp, err := sc.Enquiry.List(context.Background(), db, &dto.EnquiryListQuery{
		Search: "VIKRAM",
	}, ListScope{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Vikram Rao", resp.Rows[0].Name)

	resp, err = sc.Enquiry.List(context.Background(), db, &dto.EnquiryListQuery{
		Search: "9990001111",
	}, ListScope{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
}

func TestAssignmentFilter(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	counselor := createStaff(t, db, models.UserRoleCounselor)

	assigned := createLead(t, db, sc, "Assigned", "a@example.com")
	createLead(t, db, sc, "Pool", "p@example.com")

	_, err := sc.Enquiry.Assign(ctx, db, assigned.ID, &dto.AssignEnquiryRequest{AssignedToID: counselor.ID})
	require.NoError(t, err)

	resp, err := sc.Enquiry.List(ctx, db, &dto.EnquiryListQuery{
		Assignment: repositories.AssignmentUnassigned,
	}, ListScope{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Pool", resp.Rows[0].Name)

	resp, err = sc.Enquiry.List(ctx, db, &dto.EnquiryListQuery{
		Assignment: repositories.AssignmentAssigned,
	}, ListScope{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Assigned", resp.Rows[0].Name)
}
