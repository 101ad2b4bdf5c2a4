package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loanlift/loanlift-api/internal/middleware"
	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/store"
)

// ListApplications returns applications, self-scoped to the caller's
// own documents unless the caller is a manager or admin.
func (h *Handler) ListApplications(c *gin.Context) {
	email := middleware.Identity(c)

	role, _, err := h.Users.FindRole(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})
		return
	}

	filter := store.ApplicationFilter{
		Status: models.ApplicationStatus(c.Query("status")),
	}
	// Borrowers (and unknown users) only see their own applications.
	if !role.AtLeast(models.RoleManager) {
		filter.BorrowerEmail = email
	}

	apps, err := h.Applications.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}
	if apps == nil {
		apps = make([]models.Application, 0)
	}
	c.JSON(http.StatusOK, apps)
}

type createApplicationRequest struct {
	LoanID    string  `json:"loanId" binding:"required"`
	LoanTitle string  `json:"loanTitle"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// CreateApplication inserts a pending application for the caller.
func (h *Handler) CreateApplication(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app := models.Application{
		BorrowerEmail: middleware.Identity(c),
		LoanID:        req.LoanID,
		LoanTitle:     req.LoanTitle,
		Amount:        req.Amount,
		Status:        models.ApplicationPending,
		Stage:         models.StageApplied,
		FeeStatus:     models.FeeUnpaid,
		AppliedAt:     time.Now(),
	}

	id, err := h.Applications.Insert(c.Request.Context(), &app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

type updateStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// UpdateApplicationStatus transitions an application's status. Approval
// additionally stamps the approval time. Manager or admin only.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	var approvedAt *time.Time
	if req.Status == models.ApplicationApproved {
		now := time.Now()
		approvedAt = &now
	}

	res, err := h.Applications.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, approvedAt)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}
	c.JSON(http.StatusOK, res)
}

type updateStageRequest struct {
	Stage models.ApplicationStage `json:"stage" binding:"required"`
}

// UpdateApplicationStage moves an application to a processing stage.
// Manager or admin only.
func (h *Handler) UpdateApplicationStage(c *gin.Context) {
	var req updateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.Stage.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown stage"})
		return
	}

	res, err := h.Applications.UpdateStage(c.Request.Context(), c.Param("id"), req.Stage)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteApplication removes an application while it is still pending.
// A non-pending application is left intact and answers deletedCount 0.
func (h *Handler) DeleteApplication(c *gin.Context) {
	count, err := h.Applications.DeletePending(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
