package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scholarbridge/backend/models"
	"github.com/scholarbridge/backend/utils"
)

// buildPaymentRecords runs the full reconciliation pipeline: load the three
// evidence collections and the resolver inputs, then assemble the normalized
// record set. Loader failures are hard failures; no partial run is attempted.
func buildPaymentRecords(ctx context.Context) ([]models.PaymentRecord, error) {
	apps, err := LoadApplicationEvidence(ctx)
	if err != nil {
		return nil, err
	}
	zelles, err := LoadZelleEvidence(ctx)
	if err != nil {
		return nil, err
	}
	gateways, err := LoadGatewayEvidence(ctx)
	if err != nil {
		return nil, err
	}
	inputs, err := LoadResolverInputs(ctx)
	if err != nil {
		return nil, err
	}
	return AssemblePaymentRecords(apps, zelles, gateways, inputs), nil
}

// parseAdminPaymentsFilters extracts the filter value object from the request
func parseAdminPaymentsFilters(c *gin.Context) (models.AdminPaymentsFilters, error) {
	filters := models.AdminPaymentsFilters{
		Search:        c.Query("search"),
		FeeType:       c.DefaultQuery("fee_type", "all"),
		Status:        c.DefaultQuery("status", "all"),
		PaymentMethod: c.DefaultQuery("payment_method", "all"),
	}

	if raw := c.Query("university_id"); raw != "" && raw != "all" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filters, utils.BadRequestError("university_id must be numeric", nil)
		}
		filters.UniversityID = uint(id)
	}
	if raw := c.Query("affiliate_id"); raw != "" && raw != "all" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filters, utils.BadRequestError("affiliate_id must be numeric", nil)
		}
		filters.AffiliateID = uint(id)
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, utils.BadRequestError("date_from must be in YYYY-MM-DD format", nil)
		}
		filters.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, utils.BadRequestError("date_to must be in YYYY-MM-DD format", nil)
		}
		// Include the entire end date.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filters.DateTo = &to
	}
	return filters, nil
}

// Admin: list reconciled payment records with filters, sort and pagination
func AdminListPayments(c *gin.Context) {
	utils.LogInfo("AdminListPayments called")

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
	utils.LogDebug("Admin authenticated: %s", adminModel.Email)

	filters, err := parseAdminPaymentsFilters(c)
	if err != nil {
		utils.LogError("Invalid payment filters: %v", err)
		utils.BadRequest(c, "Invalid filters", err.Error())
		return
	}

	ctx := c.Request.Context()
	records, err := buildPaymentRecords(ctx)
	if err != nil {
		utils.LogError("Failed to build payment records: %v", err)
		utils.InternalServerError(c, "Failed to load payment records", err.Error())
		return
	}
	utils.LogDebug("Assembled %d payment records", len(records))

	affiliates, err := LoadAffiliates(ctx)
	if err != nil {
		utils.LogError("Failed to load affiliates: %v", err)
		utils.InternalServerError(c, "Failed to load affiliates", err.Error())
		return
	}

	filtered := FilterPaymentRecords(records, filters, affiliates)
	utils.LogDebug("%d records remain after filtering", len(filtered))

	sortField := c.DefaultQuery("sort", "payment_date")
	orderDir := c.DefaultQuery("order", "desc")
	if orderDir != "asc" && orderDir != "desc" {
		orderDir = "desc"
	}
	sorted := SortPaymentRecords(filtered, sortField, orderDir)
	utils.LogDebug("Applied sorting: %s %s", sortField, orderDir)

	stats := ComputePaymentStats(sorted)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(sorted)))
	page := paginateRecords(sorted, pagination.Offset, pagination.Limit)
	utils.LogDebug("Returning page %d with %d records", pagination.Page, len(page))

	utils.LogInfo("Successfully retrieved %d payment records", len(page))
	utils.Success(c, "Payment records retrieved successfully", gin.H{
		"payments": page,
		"stats":    stats,
		"pagination": gin.H{
			"current_page": pagination.Page,
			"per_page":     pagination.Limit,
			"total":        pagination.Total,
			"total_pages":  pagination.LastPage,
		},
		"filters": gin.H{
			"search":         filters.Search,
			"university_id":  c.Query("university_id"),
			"fee_type":       filters.FeeType,
			"status":         filters.Status,
			"payment_method": filters.PaymentMethod,
			"date_from":      c.Query("date_from"),
			"date_to":        c.Query("date_to"),
			"affiliate_id":   c.Query("affiliate_id"),
		},
		"sort": gin.H{
			"by":    sortField,
			"order": orderDir,
		},
	})
}

// Admin: summary statistics over the (optionally filtered) record set
func AdminPaymentStats(c *gin.Context) {
	utils.LogInfo("AdminPaymentStats called")

	filters, err := parseAdminPaymentsFilters(c)
	if err != nil {
		utils.LogError("Invalid payment filters: %v", err)
		utils.BadRequest(c, "Invalid filters", err.Error())
		return
	}

	ctx := c.Request.Context()
	records, err := buildPaymentRecords(ctx)
	if err != nil {
		utils.LogError("Failed to build payment records: %v", err)
		utils.InternalServerError(c, "Failed to load payment records", err.Error())
		return
	}

	affiliates, err := LoadAffiliates(ctx)
	if err != nil {
		utils.LogError("Failed to load affiliates: %v", err)
		utils.InternalServerError(c, "Failed to load affiliates", err.Error())
		return
	}

	filtered := FilterPaymentRecords(records, filters, affiliates)
	stats := ComputePaymentStats(filtered)

	utils.LogInfo("Successfully computed stats over %d records", len(filtered))
	utils.Success(c, "Payment stats computed successfully", gin.H{
		"stats": stats,
	})
}

// SelectionTotalsRequest carries the record ids an admin selected in the UI
type SelectionTotalsRequest struct {
	RecordIDs []string `json:"record_ids" binding:"required"`
}

// Admin: totals and per-method breakdown for a selected subset of records
func AdminSelectionTotals(c *gin.Context) {
	utils.LogInfo("AdminSelectionTotals called")

	var req SelectionTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid selection totals request: %v", err)
		utils.BadRequest(c, "Invalid request. record_ids is required", err.Error())
		return
	}
	utils.LogDebug("Computing totals for %d selected records", len(req.RecordIDs))

	records, err := buildPaymentRecords(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to build payment records: %v", err)
		utils.InternalServerError(c, "Failed to load payment records", err.Error())
		return
	}

	totals := ComputeSelectionTotals(records, req.RecordIDs)

	utils.LogInfo("Successfully computed selection totals for %d records", totals.Count)
	utils.Success(c, "Selection totals computed successfully", gin.H{
		"totals": totals,
	})
}

// paginateRecords slices an in-memory record set
func paginateRecords(records []models.PaymentRecord, offset, limit int) []models.PaymentRecord {
	if offset >= len(records) {
		return []models.PaymentRecord{}
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
