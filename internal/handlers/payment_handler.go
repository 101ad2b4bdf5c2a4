package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/loanlift/loanlift-api/internal/middleware"
	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/services"
)

type createIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePaymentIntent opens a payment intent for the application fee
// and returns the processor's client secret.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.Gateway.CreateIntent(c.Request.Context(), req.Amount)
	if errors.Is(err, services.ErrNotConfigured) {
		log.Println("CreatePaymentIntent: payment processor secret key is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processor unavailable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

type recordPaymentRequest struct {
	ApplicationID string  `json:"applicationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
}

// RecordPayment stores the payment document and marks the referenced
// application's fee as paid. The two writes are independent; a crash
// between them leaves feeStatus stale relative to the stored payment.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Reject a malformed id up front so the payment insert cannot
	// strand a document the fee status update can never reach.
	if _, err := primitive.ObjectIDFromHex(req.ApplicationID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	payment := models.Payment{
		ApplicationID: req.ApplicationID,
		Email:         middleware.Identity(c),
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		PaidAt:        time.Now(),
	}

	id, err := h.Payments.Insert(c.Request.Context(), &payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	if _, err := h.Applications.MarkFeePaid(c.Request.Context(), req.ApplicationID); err != nil {
		log.Printf("RecordPayment: payment %s stored but fee status update failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment recorded but fee status update failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// GetPaymentByApplication returns the payment recorded for an
// application, or null when none exists.
func (h *Handler) GetPaymentByApplication(c *gin.Context) {
	payment, err := h.Payments.FindByApplicationID(c.Request.Context(), c.Param("applicationId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		return
	}
	c.JSON(http.StatusOK, payment)
}
