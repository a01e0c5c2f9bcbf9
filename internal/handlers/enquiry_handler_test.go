package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edubridge_backend/internal/app"
	"edubridge_backend/internal/auth"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	auth.Init("test-secret", 60)
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &testEnv{router: app.SetupRouter(db), db: db}
}

func (e *testEnv) staffToken(t *testing.T, role models.UserRole) (string, *models.User) {
	t.Helper()
	user := &models.User{
		Name:         "Staff " + string(role),
		Email:        fmt.Sprintf("%s-%s@example.com", role, t.Name()),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, e.db.Create(user).Error)

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	return token, user
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestStudentEnquiryLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	// A visitor submits the public form, no auth required.
	w := env.do(t, http.MethodPost, "/api/v1/enquiries", "", gin.H{
		"name":  "Asha Verma",
		"email": "asha@example.com",
		"phone": "5550100200",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, w, &created)
	assert.Equal(t, "NEW", created.Status)

	adminToken, _ := env.staffToken(t, models.UserRoleAdmin)
	counselorToken, counselor := env.staffToken(t, models.UserRoleCounselor)

	// Admin routes the lead to the counselor.
	w = env.do(t, http.MethodPost, "/api/v1/staff/enquiries/"+created.ID+"/assign", adminToken, gin.H{
		"assigned_to_id": counselor.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The counselor sees it in their queue.
	w = env.do(t, http.MethodGet, "/api/v1/staff/enquiries", counselorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Rows  []struct{ ID string } `json:"rows"`
		Total int64                 `json:"total"`
	}
	decodeData(t, w, &page)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, created.ID, page.Rows[0].ID)

	// And works it through to enrolled.
	w = env.do(t, http.MethodPatch, "/api/v1/staff/enquiries/"+created.ID+"/status", counselorToken, gin.H{
		"status": "CONTACTED",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPatch, "/api/v1/staff/enquiries/"+created.ID+"/status", counselorToken, gin.H{
		"status": "ENROLLED",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Status string `json:"status"`
	}
	decodeData(t, w, &updated)
	assert.Equal(t, "ENROLLED", updated.Status)
}

func TestStaffSurfaceRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/staff/enquiries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCounselorCannotSeeForeignAssignment(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/enquiries", "", gin.H{
		"name":  "Lead",
		"email": "lead@example.com",
		"phone": "5550100200",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &created)

	// The lead stays unassigned; a counselor cannot read it.
	counselorToken, _ := env.staffToken(t, models.UserRoleCounselor)
	w = env.do(t, http.MethodGet, "/api/v1/staff/enquiries/"+created.ID, counselorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An admin can.
	adminToken, _ := env.staffToken(t, models.UserRoleAdmin)
	w = env.do(t, http.MethodGet, "/api/v1/staff/enquiries/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGateOnDelete(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/enquiries", "", gin.H{
		"name":  "Lead",
		"email": "lead@example.com",
		"phone": "5550100200",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &created)

	counselorToken, _ := env.staffToken(t, models.UserRoleCounselor)
	w = env.do(t, http.MethodDelete, "/api/v1/staff/enquiries/"+created.ID, counselorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _ := env.staffToken(t, models.UserRoleAdmin)
	w = env.do(t, http.MethodDelete, "/api/v1/staff/enquiries/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPaginationErrorsOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	adminToken, _ := env.staffToken(t, models.UserRoleAdmin)

	w := env.do(t, http.MethodGet, "/api/v1/staff/enquiries?limit=500", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/staff/enquiries?page=0&limit=10", adminToken, nil)
	// page=0 falls back to the default page rather than erroring.
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/staff/enquiries?page=-2&limit=10", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
