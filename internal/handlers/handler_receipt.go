package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/middleware"
)

// receiptHandler handles HTTP requests for receipts and remittance.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes related to receipts. The remittance
// routes are also exposed under /api for clients built against the older
// route layout.
func registerReceiptRoutes(r *gin.Engine, auth gin.HandlerFunc, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := r.Group("/receipts", auth)
	{
		receipts.GET("/", h.listReceipts)
		receipts.GET("/:id", h.getReceiptByID)
		receipts.POST("/", h.createReceipt)
		receipts.PUT("/:id", h.updateReceipt)
		receipts.DELETE("/:id", h.deleteReceipt)
		receipts.POST("/remit", h.remit)
		receipts.GET("/remit-summary", h.remitSummary)
		receipts.GET("/remit-summary/:machine_sn", h.remitSummaryByMachine)
	}

	api := r.Group("/api/receipts", auth)
	{
		api.POST("/remit", h.remit)
		api.GET("/remit-summary", h.remitSummary)
		api.GET("/remit-summary/:machine_sn", h.remitSummaryByMachine)
	}
}

// remit godoc
// @Summary Remit a machine's issued receipts
// @Description Flips every issued receipt of the machine to remitted under the next batch number and returns the batch totals. Responds 200 with success=false when nothing is pending.
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body dto.RemitRequest true "Machine serial number"
// @Success 200 {object} dto.RemitResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to remit receipts"
// @Security BearerAuth
// @Router /receipts/remit [post]
func (h *receiptHandler) remit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RemitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Remit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to remit receipts", slog.String("machine_sn", req.MachineSN))

	result, err := h.receiptService.Remit(c.Request.Context(), req.MachineSN)
	if err != nil {
		logger.Error("Failed to remit receipts in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remit receipts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRemitResponse(result))
}

// remitSummary godoc
// @Summary Remittance history across all machines
// @Tags receipts
// @Produce json
// @Success 200 {object} dto.RemitSummaryResponse
// @Failure 500 {object} map[string]string "Failed to load remit summary"
// @Security BearerAuth
// @Router /receipts/remit-summary [get]
func (h *receiptHandler) remitSummary(c *gin.Context) {
	h.serveRemitSummary(c, nil)
}

// remitSummaryByMachine godoc
// @Summary Remittance history for one machine
// @Tags receipts
// @Produce json
// @Param machine_sn path string true "Machine serial number"
// @Success 200 {object} dto.RemitSummaryResponse
// @Failure 500 {object} map[string]string "Failed to load remit summary"
// @Security BearerAuth
// @Router /receipts/remit-summary/{machine_sn} [get]
func (h *receiptHandler) remitSummaryByMachine(c *gin.Context) {
	machineSN := c.Param("machine_sn")
	h.serveRemitSummary(c, &machineSN)
}

func (h *receiptHandler) serveRemitSummary(c *gin.Context, machineSN *string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.receiptService.RemitSummary(c.Request.Context(), machineSN)
	if err != nil {
		logger.Error("Failed to load remit summary from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load remit summary"})
		return
	}

	sn := ""
	if machineSN != nil {
		sn = *machineSN
	}
	c.JSON(http.StatusOK, dto.ToRemitSummaryResponse(sn, summaries))
}

// createReceipt godoc
// @Summary Record an issued receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "OR number already exists"
// @Failure 500 {object} map[string]string "Failed to create receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate receipt", slog.String("or_number", req.ORNumber))
			c.JSON(http.StatusConflict, gin.H{"error": "OR number '" + req.ORNumber + "' already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create receipt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List all receipts
// @Tags receipts
// @Produce json
// @Success 200 {array} dto.ReceiptResponse
// @Failure 500 {object} map[string]string "Failed to list receipts"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipts, err := h.receiptService.ListReceipts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list receipts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponses(receipts))
}

// getReceiptByID godoc
// @Summary Get a receipt
// @Tags receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve receipt"
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceiptByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to get receipt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// updateReceipt godoc
// @Summary Update an issued receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path int true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Receipt details"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to update receipt"
// @Security BearerAuth
// @Router /receipts/{id} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to update receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Tags receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to delete receipt"
// @Security BearerAuth
// @Router /receipts/{id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to delete receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receipt deleted"})
}
