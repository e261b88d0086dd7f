package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scholarbridge/backend/config"
	"github.com/scholarbridge/backend/models"
	"github.com/scholarbridge/backend/utils"
)

// ZellePaymentRequest is the student-submitted bank transfer with proof
type ZellePaymentRequest struct {
	FeeType         string `json:"fee_type" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	PaymentProofURL string `json:"payment_proof_url" binding:"required"`
	ScholarshipsIDs string `json:"scholarships_ids"`
}

// POST /user/payments/zelle
func SubmitZellePayment(c *gin.Context) {
	utils.LogInfo("SubmitZellePayment called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Processing zelle submission for user ID: %d", user.ID)

	var req ZellePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid zelle submission for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request. fee_type, amount and payment_proof_url are required", err.Error())
		return
	}

	if _, ok := NormalizeFeeType(req.FeeType); !ok {
		utils.LogError("Unknown fee type %q in zelle submission for user ID: %d", req.FeeType, user.ID)
		utils.BadRequest(c, utils.ErrInvalidFeeType, nil)
		return
	}
	if _, err := strconv.ParseFloat(req.Amount, 64); err != nil {
		utils.LogError("Invalid amount %q in zelle submission for user ID: %d", req.Amount, user.ID)
		utils.BadRequest(c, utils.ErrInvalidAmount, nil)
		return
	}

	now := time.Now()
	payment := models.ZellePayment{
		UserID:          user.ID,
		FeeType:         req.FeeType,
		Amount:          req.Amount,
		PaymentProofURL: req.PaymentProofURL,
		Status:          models.ZelleStatusPending,
		ScholarshipsIDs: req.ScholarshipsIDs,
		PaymentDate:     &now,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to create zelle payment for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to submit payment", err.Error())
		return
	}

	utils.LogInfo("Zelle payment %d submitted by user ID: %d", payment.ID, user.ID)
	utils.Created(c, "Payment submitted for review", gin.H{
		"payment": gin.H{
			"id":       payment.ID,
			"fee_type": payment.FeeType,
			"amount":   payment.Amount,
			"status":   payment.Status,
		},
	})
}

// Admin: list zelle payments awaiting review
func AdminListZellePayments(c *gin.Context) {
	utils.LogInfo("AdminListZellePayments called")

	query := config.DB.Preload("User").Order("created_at DESC")
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
		utils.LogDebug("Applied status filter: %s", status)
	}

	pagination := utils.NewPagination(c)

	var total int64
	if err := query.Model(&models.ZellePayment{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count zelle payments: %v", err)
		utils.InternalServerError(c, "Failed to count payments", err.Error())
		return
	}
	pagination.SetTotal(total)

	var payments []models.ZellePayment
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch zelle payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d zelle payments", len(payments))

	var rows []gin.H
	for _, payment := range payments {
		rows = append(rows, gin.H{
			"id":                payment.ID,
			"student_name":      payment.User.Name,
			"student_email":     payment.User.Email,
			"fee_type":          payment.FeeType,
			"amount":            payment.Amount,
			"status":            payment.Status,
			"payment_proof_url": payment.PaymentProofURL,
			"reviewed_by":       payment.ReviewedBy,
			"reviewed_at":       payment.ReviewedAt,
			"created_at":        payment.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	utils.LogInfo("Successfully retrieved %d zelle payments", len(rows))
	utils.Success(c, "Zelle payments retrieved successfully", gin.H{
		"payments": rows,
		"pagination": gin.H{
			"current_page": pagination.Page,
			"per_page":     pagination.Limit,
			"total":        pagination.Total,
			"total_pages":  pagination.LastPage,
		},
	})
}

// ZelleReviewRequest is the admin verdict on a submitted transfer
type ZelleReviewRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

// Admin: approve or reject a zelle payment and notify the student
func AdminReviewZellePayment(c *gin.Context) {
	utils.LogInfo("AdminReviewZellePayment called")

	admin, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found in context")
		return
	}
	adminModel, ok := admin.(models.Admin)
	if !ok {
		utils.LogError("Invalid admin type in context")
		utils.InternalServerError(c, "Invalid admin type", nil)
		return
	}

	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid payment ID: %v", err)
		utils.BadRequest(c, "Invalid payment ID", nil)
		return
	}

	var req ZelleReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review request: %v", err)
		utils.BadRequest(c, "Invalid request. status is required", err.Error())
		return
	}
	if req.Status != models.ZelleStatusApproved && req.Status != models.ZelleStatusRejected {
		utils.LogError("Invalid review status: %s", req.Status)
		utils.BadRequest(c, "Status must be approved or rejected", nil)
		return
	}

	var payment models.ZellePayment
	if err := config.DB.Preload("User").First(&payment, paymentID).Error; err != nil {
		utils.LogError("Zelle payment not found: %v", err)
		utils.NotFound(c, "Payment not found")
		return
	}

	now := time.Now()
	if err := config.DB.Model(&payment).Updates(map[string]interface{}{
		"status":      req.Status,
		"admin_notes": req.AdminNotes,
		"reviewed_by": adminModel.Email,
		"reviewed_at": now,
	}).Error; err != nil {
		utils.LogError("Failed to update zelle payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to update payment", err.Error())
		return
	}
	utils.LogInfo("Zelle payment %d marked %s by %s", payment.ID, req.Status, adminModel.Email)

	if err := utils.SendZelleReviewEmail(payment.User.Email, payment.User.Name, req.Status, req.AdminNotes); err != nil {
		// Review outcome stands even when the notification fails.
		utils.LogError("Failed to send review notification for payment %d: %v", payment.ID, err)
	}

	utils.Success(c, "Payment review recorded", gin.H{
		"payment": gin.H{
			"id":          payment.ID,
			"status":      req.Status,
			"reviewed_by": adminModel.Email,
			"reviewed_at": now.Format("2006-01-02 15:04:05"),
		},
	})
}
