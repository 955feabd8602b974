package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obruchev/user_intake_service/internal/core/domain"
	"github.com/obruchev/user_intake_service/internal/core/ports"
	"github.com/obruchev/user_intake_service/internal/core/services"
)

type RecordHandler struct {
	intakeService ports.IntakeService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewRecordHandler(
	intakeService ports.IntakeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RecordHandler {
	return &RecordHandler{
		intakeService: intakeService,
		logger:        logger,
		metrics:       metrics,
	}
}

type RecordRequest struct {
	Name      string `json:"name" example:"Ana Lopez"`
	Email     string `json:"email" example:"ana@example.com"`
	BirthDate string `json:"birth_date" example:"1990-05-12"`
	Address   string `json:"address" example:"Calle 1, City"`
	Password  string `json:"password" example:"secret1"`
}

type RecordDTO struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Ana Lopez"`
	Email     string `json:"email" example:"ana@example.com"`
	BirthDate string `json:"birth_date" example:"1990-05-12"`
}

type PrefillDTO struct {
	Name      string `json:"name" example:"Ana Lopez"`
	Email     string `json:"email" example:"ana@example.com"`
	BirthDate string `json:"birth_date" example:"1990-05-12"`
	Address   string `json:"address" example:"Calle 1, City"`
	Password  string `json:"password" example:"secret1"`
}

type PageDTO struct {
	Items        []RecordDTO `json:"items"`
	Page         int         `json:"page" example:"1"`
	PageSize     int         `json:"page_size" example:"5"`
	TotalPages   int         `json:"total_pages" example:"3"`
	TotalRecords int         `json:"total_records" example:"12"`
}

func toRecordDTO(record *domain.Record) RecordDTO {
	return RecordDTO{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		BirthDate: record.BirthDate,
	}
}

func toPageDTO(page services.Page) PageDTO {
	items := make([]RecordDTO, len(page.Items))
	for i := range page.Items {
		items[i] = toRecordDTO(&page.Items[i])
	}
	return PageDTO{
		Items:        items,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalRecords: page.TotalRecords,
	}
}

// @Summary Submit a record
// @Description Validates the form fields and persists a new record
// @Tags records
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Form field values"
// @Success 201 {object} successResponse "Record stored"
// @Failure 400 {object} errorResponse "Invalid JSON"
// @Failure 422 {object} validationErrorResponse "Field validation failed"
// @Failure 500 {object} errorResponse "Storage failure"
// @Router /records [post]
func (h *RecordHandler) Submit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RecordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in submit", map[string]interface{}{
			"error":      err.Error(),
			"request_id": getRequestID(c),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ctx := c.Request.Context()

	record := &domain.Record{
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Address:   req.Address,
		Password:  req.Password,
	}

	created, listing, err := h.intakeService.Submit(ctx, record)
	if err != nil {
		var validationErrors domain.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.logger.Info("Submission rejected", map[string]interface{}{
				"fields":     validationErrors.Fields(),
				"request_id": getRequestID(c),
			})
			newValidationErrorResponse(c, http.StatusUnprocessableEntity, validationErrors.Fields())
			return
		}

		h.logger.Error("Failed to store record", map[string]interface{}{
			"error":      err.Error(),
			"request_id": getRequestID(c),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to store record")
		return
	}

	h.logger.Info("Record created", map[string]interface{}{
		"id":         created.ID,
		"email":      created.Email,
		"request_id": getRequestID(c),
	})

	page := services.Paginate(listing, 1, services.DefaultPageSize)
	newSuccessResponse(c, http.StatusCreated, "Record stored", map[string]interface{}{
		"record":  toRecordDTO(created),
		"listing": toPageDTO(page),
	})
}

// @Summary List records
// @Description Paginated listing of stored records, five per page
// @Tags records
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} successResponse{data=PageDTO} "One page of records"
// @Failure 500 {object} errorResponse "Storage failure"
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			newErrorResponse(c, http.StatusBadRequest, "Invalid page number")
			return
		}
		page = parsed
	}

	listing, err := h.intakeService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list records", map[string]interface{}{
			"error":      err.Error(),
			"request_id": getRequestID(c),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list records")
		return
	}

	pageDTO := toPageDTO(services.Paginate(listing, page, services.DefaultPageSize))
	newSuccessResponse(c, http.StatusOK, "Records found", pageDTO)
}

// @Summary Pre-fill form fields
// @Description One-shot fetch from the external random-profile provider; nothing is persisted
// @Tags records
// @Produce json
// @Success 200 {object} successResponse{data=PrefillDTO} "Draft field values"
// @Failure 502 {object} errorResponse "Provider fetch failed"
// @Router /prefill [get]
func (h *RecordHandler) Prefill(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	draft, err := h.intakeService.Prefill(c.Request.Context())
	if err != nil {
		h.logger.Error("Pre-fill failed", map[string]interface{}{
			"error":      err.Error(),
			"request_id": getRequestID(c),
		})
		newErrorResponse(c, http.StatusBadGateway, "Provider fetch failed")
		return
	}

	prefillDTO := PrefillDTO{
		Name:      draft.Name,
		Email:     draft.Email,
		BirthDate: draft.BirthDate,
		Address:   draft.Address,
		Password:  draft.Password,
	}
	newSuccessResponse(c, http.StatusOK, "Form pre-filled", prefillDTO)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} successResponse "Service is up"
// @Router /health [get]
func (h *RecordHandler) Health(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "ok", nil)
}
