package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/dto"
	"github.com/finacct/accounting_reports_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	trialBalanceService portssvc.TrialBalanceSvc
	profitLossService   portssvc.ProfitLossSvc
	cashFlowService     portssvc.CashFlowSvc
	defaultCurrency     string
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(services *portssvc.ServiceContainer, defaultCurrency string) *reportingHandler {
	return &reportingHandler{
		trialBalanceService: services.TrialBalance,
		profitLossService:   services.ProfitLoss,
		cashFlowService:     services.CashFlow,
		defaultCurrency:     defaultCurrency,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, defaultCurrency string) {
	h := newReportingHandler(services, defaultCurrency)

	// Routes for reports are nested under a specific company
	reportingGroup := rg.Group("/companies/:company_id/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/trial-balance/export", h.exportTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
	}
}

// statusForCode maps a stable application error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case apperrors.CodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.CodeNoAccountsFound:
		return http.StatusNotFound
	case apperrors.CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the error response for a failed report request.
func respondWithError(c *gin.Context, logger *slog.Logger, report string, err error) {
	code := apperrors.CodeOf(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to generate report", slog.String("report", report), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fmt.Sprintf("Failed to generate %s report", report), "code": code})
		return
	}
	logger.Warn("Report request rejected", slog.String("report", report), slog.String("code", code), slog.String("error", err.Error()))
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(status, gin.H{"error": message, "code": code})
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param accountTypes query string false "Comma-separated account types to include"
// @Param includePeriodActivity query bool false "Split fiscal-year activity from opening balances" default(true)
// @Param includeZeroBalances query bool false "Include accounts with no activity" default(false)
// @Param currency query string false "Display currency code"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No accounts found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, ok := h.parseTrialBalanceRequest(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("company_id", req.CompanyID),
		slog.String("asOf", req.AsOfDate.Format("2006-01-02")),
	)
	logger.Info("Received request to generate trial balance report")

	result, err := h.trialBalanceService.TrialBalance(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, "trial balance", err)
		return
	}

	response := dto.ToTrialBalanceResponse(result, req.Currency)

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(result.Rows)), slog.Bool("is_balanced", result.IsBalanced))
	c.JSON(http.StatusOK, response)
}

// exportTrialBalance godoc
// @Summary Export trial balance report
// @Description Renders a trial balance report in a downloadable format
// @Tags reports
// @Produce text/csv
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param format query string false "Export format: CSV, XLSX or PDF" default(CSV)
// @Success 200 {string} string "Rendered report"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No accounts found"
// @Failure 501 {object} map[string]string "Format not implemented"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /companies/{company_id}/reports/trial-balance/export [get]
func (h *reportingHandler) exportTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, ok := h.parseTrialBalanceRequest(c, logger)
	if !ok {
		return
	}

	format := reports.ExportFormat(strings.ToUpper(c.DefaultQuery("format", string(reports.FormatCSV))))

	logger = logger.With(
		slog.String("company_id", req.CompanyID),
		slog.String("asOf", req.AsOfDate.Format("2006-01-02")),
		slog.String("format", string(format)),
	)
	logger.Info("Received request to export trial balance report")

	rendered, err := h.trialBalanceService.ExportTrialBalance(c.Request.Context(), req, format)
	if err != nil {
		respondWithError(c, logger, "trial balance export", err)
		return
	}

	filename := fmt.Sprintf("trial-balance-%s.csv", req.AsOfDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", []byte(rendered))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss statement for a specific period
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param comparativeFromDate query string false "Comparative period start date (YYYY-MM-DD)"
// @Param comparativeToDate query string false "Comparative period end date (YYYY-MM-DD)"
// @Param currency query string false "Display currency code"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No accounts found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base, ok := h.parsePeriodRequest(c, logger)
	if !ok {
		return
	}

	req := dto.ProfitLossRequest{
		TenantID:          base.tenantID,
		CompanyID:         base.companyID,
		StartDate:         base.from,
		EndDate:           base.to,
		ComparativePeriod: base.comparative,
		Currency:          base.currency,
	}

	logger = logger.With(
		slog.String("company_id", req.CompanyID),
		slog.String("fromDate", req.StartDate.Format("2006-01-02")),
		slog.String("toDate", req.EndDate.Format("2006-01-02")),
	)
	logger.Info("Received request to generate profit and loss report")

	result, err := h.profitLossService.ProfitAndLoss(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, "profit and loss", err)
		return
	}

	response := dto.ToProfitAndLossResponse(result, req.Currency)

	logger.Info("Profit and loss report generated successfully", slog.Int("section_count", len(result.Sections)))
	c.JSON(http.StatusOK, response)
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Generates a cash flow statement for a specific period
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param method query string false "Presentation method: DIRECT or INDIRECT" default(DIRECT)
// @Param comparativeFromDate query string false "Comparative period start date (YYYY-MM-DD)"
// @Param comparativeToDate query string false "Comparative period end date (YYYY-MM-DD)"
// @Param currency query string false "Display currency code"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No accounts found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /companies/{company_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base, ok := h.parsePeriodRequest(c, logger)
	if !ok {
		return
	}

	method := domain.CashFlowMethod(strings.ToUpper(c.DefaultQuery("method", string(domain.DirectMethod))))

	req := dto.CashFlowRequest{
		TenantID:          base.tenantID,
		CompanyID:         base.companyID,
		StartDate:         base.from,
		EndDate:           base.to,
		ComparativePeriod: base.comparative,
		Method:            method,
		Currency:          base.currency,
	}

	logger = logger.With(
		slog.String("company_id", req.CompanyID),
		slog.String("fromDate", req.StartDate.Format("2006-01-02")),
		slog.String("toDate", req.EndDate.Format("2006-01-02")),
		slog.String("method", string(method)),
	)
	logger.Info("Received request to generate cash flow statement")

	result, err := h.cashFlowService.CashFlow(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, "cash flow", err)
		return
	}

	response := dto.ToCashFlowResponse(result, req.Currency)

	logger.Info("Cash flow statement generated successfully", slog.Int("section_count", len(result.Sections)))
	c.JSON(http.StatusOK, response)
}

// parseTrialBalanceRequest extracts and validates the shared trial balance
// query parameters. It writes the error response itself and returns ok=false
// on failure.
func (h *reportingHandler) parseTrialBalanceRequest(c *gin.Context, logger *slog.Logger) (dto.TrialBalanceRequest, bool) {
	var req dto.TrialBalanceRequest

	tenantID, companyID, ok := requestScope(c, logger)
	if !ok {
		return req, false
	}

	asOfStr := c.DefaultQuery("asOf", time.Now().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date format. Use YYYY-MM-DD", "code": apperrors.CodeInvalidInput})
		return req, false
	}

	includePeriodActivity, ok := parseBoolQuery(c, logger, "includePeriodActivity", true)
	if !ok {
		return req, false
	}
	includeZeroBalances, ok := parseBoolQuery(c, logger, "includeZeroBalances", false)
	if !ok {
		return req, false
	}

	var accountTypes []domain.AccountType
	if typesStr := c.Query("accountTypes"); typesStr != "" {
		for _, raw := range strings.Split(typesStr, ",") {
			accountTypes = append(accountTypes, domain.AccountType(strings.ToUpper(strings.TrimSpace(raw))))
		}
	}

	req = dto.TrialBalanceRequest{
		TenantID:              tenantID,
		CompanyID:             companyID,
		AsOfDate:              asOf,
		AccountTypes:          accountTypes,
		IncludePeriodActivity: includePeriodActivity,
		IncludeZeroBalances:   includeZeroBalances,
		Currency:              c.DefaultQuery("currency", h.defaultCurrency),
	}
	return req, true
}

// periodRequest carries the query parameters shared by the period statements.
type periodRequest struct {
	tenantID    string
	companyID   string
	from        time.Time
	to          time.Time
	comparative *domain.DatePeriod
	currency    string
}

// parsePeriodRequest extracts the shared period statement parameters. It
// writes the error response itself and returns ok=false on failure.
func (h *reportingHandler) parsePeriodRequest(c *gin.Context, logger *slog.Logger) (periodRequest, bool) {
	var base periodRequest

	tenantID, companyID, ok := requestScope(c, logger)
	if !ok {
		return base, false
	}

	now := time.Now()
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	fromStr := c.DefaultQuery("fromDate", firstDayOfMonth.Format("2006-01-02"))
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		logger.Warn("Invalid from date format", slog.String("fromDate", fromStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD", "code": apperrors.CodeInvalidInput})
		return base, false
	}

	toStr := c.DefaultQuery("toDate", now.Format("2006-01-02"))
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		logger.Warn("Invalid to date format", slog.String("toDate", toStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD", "code": apperrors.CodeInvalidInput})
		return base, false
	}

	comparative, ok := parseComparativePeriod(c, logger)
	if !ok {
		return base, false
	}

	base = periodRequest{
		tenantID:    tenantID,
		companyID:   companyID,
		from:        from,
		to:          to,
		comparative: comparative,
		currency:    c.DefaultQuery("currency", h.defaultCurrency),
	}
	return base, true
}

// parseComparativePeriod reads the optional comparative window parameters.
// Both bounds must be supplied together.
func parseComparativePeriod(c *gin.Context, logger *slog.Logger) (*domain.DatePeriod, bool) {
	compFromStr := c.Query("comparativeFromDate")
	compToStr := c.Query("comparativeToDate")
	if compFromStr == "" && compToStr == "" {
		return nil, true
	}
	if compFromStr == "" || compToStr == "" {
		logger.Warn("Incomplete comparative period", slog.String("comparativeFromDate", compFromStr), slog.String("comparativeToDate", compToStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "comparativeFromDate and comparativeToDate must be supplied together", "code": apperrors.CodeInvalidInput})
		return nil, false
	}

	compFrom, err := time.Parse("2006-01-02", compFromStr)
	if err != nil {
		logger.Warn("Invalid comparative from date format", slog.String("comparativeFromDate", compFromStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comparativeFromDate format. Use YYYY-MM-DD", "code": apperrors.CodeInvalidInput})
		return nil, false
	}
	compTo, err := time.Parse("2006-01-02", compToStr)
	if err != nil {
		logger.Warn("Invalid comparative to date format", slog.String("comparativeToDate", compToStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comparativeToDate format. Use YYYY-MM-DD", "code": apperrors.CodeInvalidInput})
		return nil, false
	}

	return &domain.DatePeriod{StartDate: compFrom, EndDate: compTo}, true
}

// requestScope resolves the tenant and company identifiers for the request.
func requestScope(c *gin.Context, logger *slog.Logger) (string, string, bool) {
	companyID := c.Param("company_id")
	if companyID == "" {
		logger.Error("Company ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID required in path", "code": apperrors.CodeInvalidInput})
		return "", "", false
	}

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		logger.Error("Tenant ID not found in context")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required", "code": apperrors.CodeInvalidInput})
		return "", "", false
	}

	return tenantID, companyID, true
}

// parseBoolQuery reads an optional boolean query parameter.
func parseBoolQuery(c *gin.Context, logger *slog.Logger, name string, defaultValue bool) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Invalid boolean query parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid value for %s. Use true or false", name), "code": apperrors.CodeInvalidInput})
		return false, false
	}
	return value, true
}
