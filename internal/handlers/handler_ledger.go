package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/middleware"
)

// ledgerHandler handles HTTP requests for the consumer water ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the water ledger.
func registerLedgerRoutes(r *gin.Engine, auth gin.HandlerFunc, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := r.Group("/wb_ledger", auth)
	{
		ledger.GET("/", h.listEntries)
		ledger.GET("/consumer/:consumer_id", h.entriesByConsumer)
		ledger.GET("/balance/:consumer_id", h.latestBalance)
		ledger.POST("/", h.createEntry)
		ledger.POST("/transaction", h.postTransaction)
		ledger.PUT("/status/:id", h.updateStatus)
		ledger.DELETE("/:id", h.deleteEntry)
	}
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return v, true
}

// postTransaction godoc
// @Summary Post a ledger transaction
// @Description Appends a billing or payment entry to a consumer's ledger. The running balance and payment classification are derived server-side in one atomic step.
// @Tags wb_ledger
// @Accept json
// @Produce json
// @Param transaction body dto.PostTransactionRequest true "Transaction details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Consumer not found"
// @Failure 500 {object} map[string]string "Failed to post transaction"
// @Security BearerAuth
// @Router /wb_ledger/transaction [post]
func (h *ledgerHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("acting_user_id", userID))
	}
	logger.Info("Received request to post ledger transaction", slog.Int64("consumer_id", *req.ConsumerID))

	entry, err := h.ledgerService.PostTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error posting transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Consumer not found for transaction", slog.Int64("consumer_id", *req.ConsumerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Consumer not found"})
		} else {
			logger.Error("Failed to post transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// createEntry godoc
// @Summary Create a raw ledger entry
// @Description Inserts a ledger row with an explicit balance. Administrative backfill; bypasses balance derivation.
// @Tags wb_ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /wb_ledger [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// updateStatus godoc
// @Summary Update a ledger entry's payment status
// @Tags wb_ledger
// @Accept json
// @Produce json
// @Param id path int true "Ledger entry ID"
// @Param status body dto.UpdateLedgerStatusRequest true "New status"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Security BearerAuth
// @Router /wb_ledger/status/{id} [put]
func (h *ledgerHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLedgerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.UpdateStatus(c.Request.Context(), id, domain.LedgerStatus(*req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
		} else {
			logger.Error("Failed to update ledger status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// latestBalance godoc
// @Summary Get a consumer's current balance
// @Description Returns the balance of the consumer's most recent ledger entry.
// @Tags wb_ledger
// @Produce json
// @Param consumer_id path int true "Consumer ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} map[string]string "No ledger entries for consumer"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /wb_ledger/balance/{consumer_id} [get]
func (h *ledgerHandler) latestBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	consumerID, ok := parseInt64Param(c, "consumer_id")
	if !ok {
		return
	}

	balance, err := h.ledgerService.LatestBalance(c.Request.Context(), consumerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No ledger entries found for consumer"})
		} else {
			logger.Error("Failed to get latest balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// listEntries godoc
// @Summary List all ledger entries
// @Tags wb_ledger
// @Produce json
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /wb_ledger [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// entriesByConsumer godoc
// @Summary List a consumer's ledger entries
// @Tags wb_ledger
// @Produce json
// @Param consumer_id path int true "Consumer ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "No ledger entries for consumer"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /wb_ledger/consumer/{consumer_id} [get]
func (h *ledgerHandler) entriesByConsumer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	consumerID, ok := parseInt64Param(c, "consumer_id")
	if !ok {
		return
	}

	entries, err := h.ledgerService.FindEntriesByConsumer(c.Request.Context(), consumerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No ledger entries found for consumer"})
		} else {
			logger.Error("Failed to list consumer ledger entries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Tags wb_ledger
// @Produce json
// @Param id path int true "Ledger entry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /wb_ledger/{id} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
		} else {
			logger.Error("Failed to delete ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ledger entry deleted"})
}
