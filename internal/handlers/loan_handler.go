package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/store"
)

// ListLoans returns loans matching the optional title substring and
// category filters. ?home=true narrows to storefront loans.
func (h *Handler) ListLoans(c *gin.Context) {
	filter := store.LoanFilter{
		Title:    c.Query("title"),
		Category: c.Query("category"),
	}
	if c.Query("home") == "true" {
		home := true
		filter.ShowOnHome = &home
	}

	loans, err := h.Loans.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve loans"})
		return
	}
	if loans == nil {
		loans = make([]models.Loan, 0)
	}
	c.JSON(http.StatusOK, loans)
}

// GetLoan returns the loan document by id, or null when absent.
func (h *Handler) GetLoan(c *gin.Context) {
	loan, err := h.Loans.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve loan"})
		return
	}
	c.JSON(http.StatusOK, loan)
}

type createLoanRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" binding:"required"`
	MinAmount      float64 `json:"minAmount"`
	MaxAmount      float64 `json:"maxAmount"`
	InterestRate   float64 `json:"interestRate"`
	TermMonths     int     `json:"termMonths"`
	ApplicationFee float64 `json:"applicationFee"`
	ShowOnHome     bool    `json:"showOnHome"`
}

// CreateLoan inserts a new loan. Manager or admin only.
func (h *Handler) CreateLoan(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan := models.Loan{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		MinAmount:      req.MinAmount,
		MaxAmount:      req.MaxAmount,
		InterestRate:   req.InterestRate,
		TermMonths:     req.TermMonths,
		ApplicationFee: req.ApplicationFee,
		ShowOnHome:     req.ShowOnHome,
		CreatedAt:      time.Now(),
	}

	id, err := h.Loans.Insert(c.Request.Context(), &loan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create loan"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// UpsertLoan applies the supplied fields to the loan with the given id,
// creating the document when absent. Manager or admin only.
func (h *Handler) UpsertLoan(c *gin.Context) {
	var patch store.LoanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	res, err := h.Loans.Upsert(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update loan"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteLoan removes a loan by id. Manager or admin only. An unmatched
// id answers a zero deletedCount, not an error.
func (h *Handler) DeleteLoan(c *gin.Context) {
	count, err := h.Loans.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete loan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
