package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/store"
	"github.com/loanlift/loanlift-api/internal/utils"
)

// ListUsers returns users matching the optional search and exact-match
// filters. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	filter := store.UserFilter{
		Search: c.Query("search"),
		Role:   models.Role(c.Query("role")),
		Status: models.UserStatus(c.Query("status")),
	}

	users, err := h.Users.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}

// GetUserRole returns the role and status stored for an email.
// A missing user answers null, not 404.
func (h *Handler) GetUserRole(c *gin.Context) {
	role, status, err := h.Users.FindRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if role == "" {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "status": status})
}

type createUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// CreateUser inserts a user unless the email is already taken, in which
// case it answers an already-exists marker with a null insertedId.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleBorrower
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	existing, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      role,
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.PasswordHash = hash
	}

	id, err := h.Users.Insert(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// UpdateUserModeration updates role, status and suspend reason by user
// id. Admin only; no upsert.
func (h *Handler) UpdateUserModeration(c *gin.Context) {
	var patch store.UserModeration
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if patch.Role != nil && !patch.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	res, err := h.Users.UpdateModeration(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, res)
}
