package controllers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/scholarbridge/backend/config"
	"github.com/scholarbridge/backend/models"
	"github.com/scholarbridge/backend/utils"
)

// paymentExportColumns is the contract column order for CSV exports
var paymentExportColumns = []string{
	"Student Name", "Email", "University", "Scholarship", "Field of Study",
	"Fee Type", "Amount", "Status", "Payment Method", "Payment Date",
}

// CSVExportRequest is the request object sent to the external CSV-generation
// service
type CSVExportRequest struct {
	Status       string `json:"status"`
	FeeType      string `json:"fee_type"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
	UniversityID string `json:"university_id,omitempty"`
	SearchQuery  string `json:"search_query,omitempty"`
	AffiliateID  string `json:"affiliate_id,omitempty"`
}

// Admin: download payment records as CSV. The export request is forwarded to
// the external CSV service first; on failure the already-computed record set
// is serialized locally.
func AdminExportPaymentsCSV(c *gin.Context) {
	utils.LogInfo("AdminExportPaymentsCSV called")

	filters, err := parseAdminPaymentsFilters(c)
	if err != nil {
		utils.LogError("Invalid payment filters: %v", err)
		utils.BadRequest(c, "Invalid filters", err.Error())
		return
	}

	if body, ok := exportViaService(c, filters); ok {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment; filename=payments.csv")
		c.Writer.Write(body)
		utils.LogInfo("Successfully exported payments via CSV service")
		return
	}
	utils.LogInfo("Falling back to client-side CSV serialization")

	records, err := loadFilteredRecords(c, filters)
	if err != nil {
		utils.LogError("Failed to build payment records: %v", err)
		utils.InternalServerError(c, "Failed to load payment records", err.Error())
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=payments.csv")

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(paymentExportColumns); err != nil {
		utils.LogError("Failed to write CSV header: %v", err)
		utils.InternalServerError(c, "Failed to write CSV", err.Error())
		return
	}
	for _, record := range records {
		if err := writer.Write(paymentExportRow(record)); err != nil {
			utils.LogError("Failed to write CSV row: %v", err)
			utils.InternalServerError(c, "Failed to write CSV", err.Error())
			return
		}
	}
	writer.Flush()
	utils.LogInfo("Successfully exported %d payment records as CSV", len(records))
}

// exportViaService forwards the export request to the configured external CSV
// service. Returns the response body and true only on success.
func exportViaService(c *gin.Context, filters models.AdminPaymentsFilters) ([]byte, bool) {
	cfg, err := config.LoadConfig()
	if err != nil || cfg.CSVExportServiceURL == "" {
		utils.LogDebug("CSV export service not configured")
		return nil, false
	}

	req := CSVExportRequest{
		Status:       filters.Status,
		FeeType:      filters.FeeType,
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
		UniversityID: c.Query("university_id"),
		SearchQuery:  filters.Search,
		AffiliateID:  c.Query("affiliate_id"),
	}
	payload, err := json.Marshal(req)
	if err != nil {
		utils.LogError("Failed to marshal CSV export request: %v", err)
		return nil, false
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost,
		cfg.CSVExportServiceURL, bytes.NewReader(payload))
	if err != nil {
		utils.LogError("Failed to build CSV export request: %v", err)
		return nil, false
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		utils.LogError("CSV export service unreachable: %v", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		utils.LogError("CSV export service returned %d: %s", resp.StatusCode, string(detail))
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.LogError("Failed to read CSV export response: %v", err)
		return nil, false
	}
	return body, true
}

// Admin: download payment records as Excel
func AdminExportPaymentsExcel(c *gin.Context) {
	utils.LogInfo("AdminExportPaymentsExcel called")

	filters, err := parseAdminPaymentsFilters(c)
	if err != nil {
		utils.LogError("Invalid payment filters: %v", err)
		utils.BadRequest(c, "Invalid filters", err.Error())
		return
	}

	records, err := loadFilteredRecords(c, filters)
	if err != nil {
		utils.LogError("Failed to build payment records: %v", err)
		utils.InternalServerError(c, "Failed to load payment records", err.Error())
		return
	}
	stats := ComputePaymentStats(records)
	utils.LogDebug("Retrieved %d payment records for Excel report", len(records))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString("SCHOLARBRIDGE - Payment Records")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headerRow := sheet.AddRow()
	for _, h := range paymentExportColumns {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, record := range records {
		row := sheet.AddRow()
		for _, value := range paymentExportRow(record) {
			row.AddCell().SetString(value)
		}
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Payments", fmt.Sprintf("%d", stats.TotalPayments)},
		{"Paid Payments", fmt.Sprintf("%d", stats.PaidPayments)},
		{"Pending Payments", fmt.Sprintf("%d", stats.PendingPayments)},
		{"Total Revenue", formatCents(stats.TotalRevenue)},
		{"Manual Revenue", formatCents(stats.ManualRevenue)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=payments.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully exported %d payment records as Excel", len(records))
}

// Admin: download payment records as PDF
func AdminExportPaymentsPDF(c *gin.Context) {
	utils.LogInfo("AdminExportPaymentsPDF called")

	filters, err := parseAdminPaymentsFilters(c)
	if err != nil {
		utils.LogError("Invalid payment filters: %v", err)
		utils.BadRequest(c, "Invalid filters", err.Error())
		return
	}

	records, err := loadFilteredRecords(c, filters)
	if err != nil {
		utils.LogError("Failed to build payment records: %v", err)
		utils.InternalServerError(c, "Failed to load payment records", err.Error())
		return
	}
	stats := ComputePaymentStats(records)
	utils.LogDebug("Retrieved %d payment records for PDF report", len(records))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "SCHOLARBRIDGE - Payment Records")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	colWidths := []float64{38, 48, 38, 38, 28, 28, 20, 18, 20, 24}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range paymentExportColumns {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	fill := false
	for _, record := range records {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		for i, value := range paymentExportRow(record) {
			align := "L"
			if i >= 5 {
				align = "C"
			}
			pdf.CellFormat(colWidths[i], 8, value, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	summaryData := [][]string{
		{"Total Payments", fmt.Sprintf("%d", stats.TotalPayments)},
		{"Paid Payments", fmt.Sprintf("%d", stats.PaidPayments)},
		{"Pending Payments", fmt.Sprintf("%d", stats.PendingPayments)},
		{"Total Revenue", formatCents(stats.TotalRevenue)},
		{"Manual Revenue", formatCents(stats.ManualRevenue)},
	}
	for _, data := range summaryData {
		pdf.CellFormat(50, 8, data[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, data[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=payments.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully exported %d payment records as PDF", len(records))
}

// loadFilteredRecords runs the pipeline and applies the request filters,
// sorted by payment date descending
func loadFilteredRecords(c *gin.Context, filters models.AdminPaymentsFilters) ([]models.PaymentRecord, error) {
	ctx := c.Request.Context()
	records, err := buildPaymentRecords(ctx)
	if err != nil {
		return nil, err
	}
	affiliates, err := LoadAffiliates(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterPaymentRecords(records, filters, affiliates)
	return SortPaymentRecords(filtered, "payment_date", "desc"), nil
}

// paymentExportRow serializes one record in the contract column order
func paymentExportRow(record models.PaymentRecord) []string {
	paymentDate := ""
	if record.PaymentDate != nil {
		paymentDate = record.PaymentDate.Format("2006-01-02 15:04")
	}
	return []string{
		record.StudentName,
		record.StudentEmail,
		record.UniversityName,
		record.ScholarshipTitle,
		record.FieldOfStudy,
		record.FeeType,
		formatCents(record.Amount),
		record.Status,
		record.PaymentMethod,
		paymentDate,
	}
}

// formatCents renders a cent amount as dollars with two decimals
func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
