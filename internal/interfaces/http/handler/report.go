package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/vakif/backend/internal/application/report"
	"github.com/vakif/backend/internal/domain/report"
)

const dateLayout = "2006-01-02"

// ReportHandler handles report and dashboard API endpoints
type ReportHandler struct {
	BaseHandler
	reportService    *reportapp.ReportService
	dashboardService *reportapp.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService, dashboardService *reportapp.DashboardService) *ReportHandler {
	return &ReportHandler{
		reportService:    reportService,
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("", h.Generate)
		reports.GET("/types", h.ListTypes)
	}
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.GetDashboardSummary)
	}
}

// generateReportRequest binds the report query parameters
type generateReportRequest struct {
	Type             string `form:"type" binding:"required"`
	StartDate        string `form:"start_date" binding:"required"`
	EndDate          string `form:"end_date" binding:"required"`
	CompareStartDate string `form:"compare_start_date"`
	CompareEndDate   string `form:"compare_end_date"`
	GroupBy          string `form:"group_by"`
}

// Generate handles GET /reports
func (h *ReportHandler) Generate(c *gin.Context) {
	var req generateReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid report parameters: "+err.Error())
		return
	}

	facilityID, err := getFacilityID(c)
	if err != nil {
		h.BadRequest(c, "invalid facility id")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.BadRequest(c, "start_date must be formatted as YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		h.BadRequest(c, "end_date must be formatted as YYYY-MM-DD")
		return
	}

	params := report.Params{
		FacilityID: facilityID,
		Type:       report.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		GroupBy:    report.GranularityMonth,
	}
	if req.GroupBy != "" {
		params.GroupBy = report.Granularity(req.GroupBy)
	}
	if req.CompareStartDate != "" {
		compareStart, err := time.Parse(dateLayout, req.CompareStartDate)
		if err != nil {
			h.BadRequest(c, "compare_start_date must be formatted as YYYY-MM-DD")
			return
		}
		params.CompareStartDate = &compareStart
	}
	if req.CompareEndDate != "" {
		compareEnd, err := time.Parse(dateLayout, req.CompareEndDate)
		if err != nil {
			h.BadRequest(c, "compare_end_date must be formatted as YYYY-MM-DD")
			return
		}
		params.CompareEndDate = &compareEnd
	}

	result, err := h.reportService.Generate(c.Request.Context(), params)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListTypes handles GET /reports/types
func (h *ReportHandler) ListTypes(c *gin.Context) {
	h.Success(c, h.reportService.ListReportTypes())
}

// GetDashboardSummary handles GET /dashboard/summary
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	facilityID, err := getFacilityID(c)
	if err != nil {
		h.BadRequest(c, "invalid facility id")
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), facilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
