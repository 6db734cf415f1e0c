package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/middleware"
)

// machineHandler handles HTTP requests for POS machines and the OR-number
// series.
type machineHandler struct {
	machineService portssvc.MachineSvcFacade
}

// newMachineHandler creates a new machineHandler.
func newMachineHandler(ms portssvc.MachineSvcFacade) *machineHandler {
	return &machineHandler{machineService: ms}
}

// registerMachineRoutes registers the authenticated POS machine routes.
func registerMachineRoutes(r *gin.Engine, auth gin.HandlerFunc, machineService portssvc.MachineSvcFacade) {
	h := newMachineHandler(machineService)

	machines := r.Group("/pos_machine", auth)
	{
		machines.GET("/", h.listMachines)
		machines.GET("/:id", h.getMachineByID)
		machines.POST("/", h.createMachine)
		machines.PUT("/:id", h.updateMachine)
		machines.DELETE("/:id", h.deleteMachine)
		machines.GET("/peek/:serial_num", h.peekSeries)
		machines.GET("/forward/:serial_num", h.forwardSeries)
	}
}

// registerPublicMachineRoutes registers the unauthenticated reduced machine
// listing used by POS terminals during setup.
func registerPublicMachineRoutes(r *gin.Engine, machineService portssvc.MachineSvcFacade) {
	h := newMachineHandler(machineService)
	r.GET("/pos_machine/public", h.listPublicMachines)
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return v, true
}

// listMachines godoc
// @Summary List all POS machines
// @Tags pos_machine
// @Produce json
// @Success 200 {array} dto.MachineResponse
// @Failure 500 {object} map[string]string "Failed to list machines"
// @Security BearerAuth
// @Router /pos_machine [get]
func (h *machineHandler) listMachines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	machines, err := h.machineService.ListMachines(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list machines from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list machines"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponses(machines))
}

// listPublicMachines godoc
// @Summary List POS machines (public fields only)
// @Tags pos_machine
// @Produce json
// @Success 200 {array} dto.PublicMachineResponse
// @Failure 500 {object} map[string]string "Failed to list machines"
// @Router /pos_machine/public [get]
func (h *machineHandler) listPublicMachines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	machines, err := h.machineService.ListMachines(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list machines from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list machines"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicMachineResponses(machines))
}

// getMachineByID godoc
// @Summary Get a POS machine
// @Tags pos_machine
// @Produce json
// @Param id path int true "Machine ID"
// @Success 200 {object} dto.MachineResponse
// @Failure 404 {object} map[string]string "Machine not found"
// @Failure 500 {object} map[string]string "Failed to retrieve machine"
// @Security BearerAuth
// @Router /pos_machine/{id} [get]
func (h *machineHandler) getMachineByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	machine, err := h.machineService.GetMachineByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
		} else {
			logger.Error("Failed to get machine from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve machine"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// createMachine godoc
// @Summary Register a POS machine
// @Tags pos_machine
// @Accept json
// @Produce json
// @Param machine body dto.CreateMachineRequest true "Machine details"
// @Success 201 {object} dto.MachineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Serial number already exists"
// @Failure 500 {object} map[string]string "Failed to create machine"
// @Security BearerAuth
// @Router /pos_machine [post]
func (h *machineHandler) createMachine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMachine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	machine, err := h.machineService.CreateMachine(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate machine", slog.String("serial_num", req.SerialNum))
			c.JSON(http.StatusConflict, gin.H{"error": "Serial number '" + req.SerialNum + "' already exists"})
		} else {
			logger.Error("Failed to create machine in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create machine"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMachineResponse(machine))
}

// updateMachine godoc
// @Summary Update a POS machine
// @Tags pos_machine
// @Accept json
// @Produce json
// @Param id path int true "Machine ID"
// @Param machine body dto.UpdateMachineRequest true "Machine details"
// @Success 200 {object} dto.MachineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Machine not found"
// @Failure 500 {object} map[string]string "Failed to update machine"
// @Security BearerAuth
// @Router /pos_machine/{id} [put]
func (h *machineHandler) updateMachine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMachine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	machine, err := h.machineService.UpdateMachine(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
		} else {
			logger.Error("Failed to update machine in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update machine"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// deleteMachine godoc
// @Summary Delete a POS machine
// @Description Removes a machine and returns the deleted row.
// @Tags pos_machine
// @Produce json
// @Param id path int true "Machine ID"
// @Success 200 {object} dto.MachineResponse
// @Failure 404 {object} map[string]string "Machine not found"
// @Failure 500 {object} map[string]string "Failed to delete machine"
// @Security BearerAuth
// @Router /pos_machine/{id} [delete]
func (h *machineHandler) deleteMachine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}

	machine, err := h.machineService.DeleteMachine(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
		} else {
			logger.Error("Failed to delete machine in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete machine"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// peekSeries godoc
// @Summary Peek the machine's OR-number series
// @Description Reads the current OR counter without advancing it.
// @Tags pos_machine
// @Produce json
// @Param serial_num path string true "Machine serial number"
// @Success 200 {object} dto.ORSeriesResponse
// @Failure 404 {object} map[string]string "Machine not found"
// @Failure 500 {object} map[string]string "Failed to read series"
// @Security BearerAuth
// @Router /pos_machine/peek/{serial_num} [get]
func (h *machineHandler) peekSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serialNum := c.Param("serial_num")

	series, err := h.machineService.PeekSeries(c.Request.Context(), serialNum)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
		} else {
			logger.Error("Failed to peek OR series from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read series"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToORSeriesResponse(series))
}

// forwardSeries godoc
// @Summary Advance the machine's OR-number series
// @Description Atomically increments the OR counter and returns the newly issued number.
// @Tags pos_machine
// @Produce json
// @Param serial_num path string true "Machine serial number"
// @Success 200 {object} dto.ORSeriesResponse
// @Failure 404 {object} map[string]string "Machine not found"
// @Failure 500 {object} map[string]string "Failed to advance series"
// @Security BearerAuth
// @Router /pos_machine/forward/{serial_num} [get]
func (h *machineHandler) forwardSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serialNum := c.Param("serial_num")

	series, err := h.machineService.ForwardSeries(c.Request.Context(), serialNum)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
		} else {
			logger.Error("Failed to advance OR series in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance series"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToORSeriesResponse(series))
}
