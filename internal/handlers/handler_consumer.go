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

// consumerHandler handles HTTP requests for consumer accounts.
type consumerHandler struct {
	consumerService portssvc.ConsumerSvcFacade
}

// newConsumerHandler creates a new consumerHandler.
func newConsumerHandler(cs portssvc.ConsumerSvcFacade) *consumerHandler {
	return &consumerHandler{consumerService: cs}
}

// registerConsumerRoutes registers routes related to consumers.
func registerConsumerRoutes(r *gin.Engine, auth gin.HandlerFunc, consumerService portssvc.ConsumerSvcFacade) {
	h := newConsumerHandler(consumerService)

	consumers := r.Group("/consumers", auth)
	{
		consumers.GET("/", h.listConsumers)
		consumers.GET("/:id", h.getConsumerByID)
		consumers.POST("/", h.createConsumer)
		consumers.PUT("/:id", h.updateConsumer)
		consumers.DELETE("/:id", h.deleteConsumer)
	}
}

// listConsumers godoc
// @Summary List all consumers
// @Tags consumers
// @Produce json
// @Success 200 {array} dto.ConsumerResponse
// @Failure 500 {object} map[string]string "Failed to list consumers"
// @Security BearerAuth
// @Router /consumers [get]
func (h *consumerHandler) listConsumers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	consumers, err := h.consumerService.ListConsumers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list consumers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list consumers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConsumerResponses(consumers))
}

// getConsumerByID godoc
// @Summary Get a consumer
// @Tags consumers
// @Produce json
// @Param id path int true "Consumer ID"
// @Success 200 {object} dto.ConsumerResponse
// @Failure 404 {object} map[string]string "Consumer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve consumer"
// @Security BearerAuth
// @Router /consumers/{id} [get]
func (h *consumerHandler) getConsumerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	consumer, err := h.consumerService.GetConsumerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consumer not found"})
		} else {
			logger.Error("Failed to get consumer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consumer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConsumerResponse(consumer))
}

// createConsumer godoc
// @Summary Create a consumer
// @Tags consumers
// @Accept json
// @Produce json
// @Param consumer body dto.CreateConsumerRequest true "Consumer details"
// @Success 201 {object} dto.ConsumerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create consumer"
// @Security BearerAuth
// @Router /consumers [post]
func (h *consumerHandler) createConsumer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConsumer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	consumer, err := h.consumerService.CreateConsumer(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create consumer in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create consumer"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToConsumerResponse(consumer))
}

// updateConsumer godoc
// @Summary Update a consumer
// @Tags consumers
// @Accept json
// @Produce json
// @Param id path int true "Consumer ID"
// @Param consumer body dto.UpdateConsumerRequest true "Consumer details"
// @Success 200 {object} dto.ConsumerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Consumer not found"
// @Failure 500 {object} map[string]string "Failed to update consumer"
// @Security BearerAuth
// @Router /consumers/{id} [put]
func (h *consumerHandler) updateConsumer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateConsumer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	consumer, err := h.consumerService.UpdateConsumer(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consumer not found"})
		} else {
			logger.Error("Failed to update consumer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update consumer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConsumerResponse(consumer))
}

// deleteConsumer godoc
// @Summary Delete a consumer
// @Tags consumers
// @Produce json
// @Param id path int true "Consumer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Consumer not found"
// @Failure 500 {object} map[string]string "Failed to delete consumer"
// @Security BearerAuth
// @Router /consumers/{id} [delete]
func (h *consumerHandler) deleteConsumer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	if err := h.consumerService.DeleteConsumer(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consumer not found"})
		} else {
			logger.Error("Failed to delete consumer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consumer"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consumer deleted"})
}
