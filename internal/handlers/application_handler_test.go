package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/store"
)

func TestListApplications_Scoping(t *testing.T) {
	tests := []struct {
		name           string
		role           models.Role
		expectedFilter store.ApplicationFilter
	}{
		{
			name:           "borrower only sees own applications",
			role:           models.RoleBorrower,
			expectedFilter: store.ApplicationFilter{BorrowerEmail: "amina@example.com"},
		},
		{
			name:           "unknown user is scoped like a borrower",
			role:           models.Role(""),
			expectedFilter: store.ApplicationFilter{BorrowerEmail: "amina@example.com"},
		},
		{
			name:           "manager sees all applications",
			role:           models.RoleManager,
			expectedFilter: store.ApplicationFilter{},
		},
		{
			name:           "admin sees all applications",
			role:           models.RoleAdmin,
			expectedFilter: store.ApplicationFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.users.On("FindRole", mock.Anything, "amina@example.com").
				Return(tt.role, models.StatusActive, nil)
			env.apps.On("List", mock.Anything, tt.expectedFilter).
				Return([]models.Application{}, nil)

			r := gin.New()
			r.GET("/applications", withIdentity("amina@example.com"), env.h.ListApplications)
			w := performRequest(r, http.MethodGet, "/applications", "")

			assert.Equal(t, http.StatusOK, w.Code)
			env.apps.AssertExpectations(t)
		})
	}
}

func TestCreateApplication(t *testing.T) {
	env := newTestEnv()
	env.apps.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Application) bool {
		return a.BorrowerEmail == "amina@example.com" &&
			a.LoanID == "65f000000000000000000003" &&
			a.Status == models.ApplicationPending &&
			a.Stage == models.StageApplied &&
			a.FeeStatus == models.FeeUnpaid &&
			!a.AppliedAt.IsZero()
	})).Return("65f000000000000000000010", nil)

	r := gin.New()
	r.POST("/applications", withIdentity("amina@example.com"), env.h.CreateApplication)
	w := performRequest(r, http.MethodPost, "/applications",
		`{"loanId":"65f000000000000000000003","amount":500}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "65f000000000000000000010", body["insertedId"])
	env.apps.AssertExpectations(t)
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Run("approval stamps the approval time", func(t *testing.T) {
		env := newTestEnv()
		env.apps.On("UpdateStatus", mock.Anything, "65f000000000000000000010",
			models.ApplicationApproved, mock.MatchedBy(func(at *time.Time) bool {
				return at != nil && !at.IsZero()
			})).Return(store.UpdateResult{Matched: 1, Modified: 1}, nil)

		r := gin.New()
		r.PATCH("/applications/status/:id", env.h.UpdateApplicationStatus)
		w := performRequest(r, http.MethodPatch, "/applications/status/65f000000000000000000010",
			`{"status":"approved"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env.apps.AssertExpectations(t)
	})

	t.Run("rejection carries no approval time", func(t *testing.T) {
		env := newTestEnv()
		env.apps.On("UpdateStatus", mock.Anything, "65f000000000000000000010",
			models.ApplicationRejected, (*time.Time)(nil)).
			Return(store.UpdateResult{Matched: 1, Modified: 1}, nil)

		r := gin.New()
		r.PATCH("/applications/status/:id", env.h.UpdateApplicationStatus)
		w := performRequest(r, http.MethodPatch, "/applications/status/65f000000000000000000010",
			`{"status":"rejected"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env.apps.AssertExpectations(t)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		env := newTestEnv()

		r := gin.New()
		r.PATCH("/applications/status/:id", env.h.UpdateApplicationStatus)
		w := performRequest(r, http.MethodPatch, "/applications/status/65f000000000000000000010",
			`{"status":"shipped"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.apps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateApplicationStage(t *testing.T) {
	t.Run("valid stage passes through", func(t *testing.T) {
		env := newTestEnv()
		env.apps.On("UpdateStage", mock.Anything, "65f000000000000000000010", models.StageReview).
			Return(store.UpdateResult{Matched: 1, Modified: 1}, nil)

		r := gin.New()
		r.PATCH("/applications/stage/:id", env.h.UpdateApplicationStage)
		w := performRequest(r, http.MethodPatch, "/applications/stage/65f000000000000000000010",
			`{"stage":"review"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		env.apps.AssertExpectations(t)
	})

	t.Run("unknown stage is rejected", func(t *testing.T) {
		env := newTestEnv()

		r := gin.New()
		r.PATCH("/applications/stage/:id", env.h.UpdateApplicationStage)
		w := performRequest(r, http.MethodPatch, "/applications/stage/65f000000000000000000010",
			`{"stage":"limbo"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteApplication(t *testing.T) {
	t.Run("pending application is removed", func(t *testing.T) {
		env := newTestEnv()
		env.apps.On("DeletePending", mock.Anything, "65f000000000000000000010").Return(int64(1), nil)

		r := gin.New()
		r.DELETE("/applications/:id", withIdentity("amina@example.com"), env.h.DeleteApplication)
		w := performRequest(r, http.MethodDelete, "/applications/65f000000000000000000010", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["deletedCount"])
	})

	t.Run("non-pending application silently fails to delete", func(t *testing.T) {
		env := newTestEnv()
		env.apps.On("DeletePending", mock.Anything, "65f000000000000000000010").Return(int64(0), nil)

		r := gin.New()
		r.DELETE("/applications/:id", withIdentity("amina@example.com"), env.h.DeleteApplication)
		w := performRequest(r, http.MethodDelete, "/applications/65f000000000000000000010", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(0), body["deletedCount"])
	})
}
