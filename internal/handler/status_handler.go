package handler

import (
	"fmt"
	"net/http"

	"hotel-rooms-backend/internal/service"
	"hotel-rooms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	statusService *service.StatusService
}

func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// GetAvailability returns the status rows of a room. numero_quarto comes
// from the JSON body or, for clients that cannot send a GET body, the query
// string.
func (h *StatusHandler) GetAvailability(c *gin.Context) {
	var req statusRequest
	if c.Request.ContentLength != 0 && c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido: "+err.Error())
			return
		}
	}
	if !req.NumeroQuarto.Set {
		if q := c.Query("numero_quarto"); q != "" {
			n, ok := parseNumero(q)
			if !ok {
				utils.ErrorResponse(c, http.StatusBadRequest, "numero_quarto inválido")
				return
			}
			req.NumeroQuarto = flexInt{Value: n, Set: true}
		}
	}

	rows, err := h.statusService.GetStatus(c.Request.Context(), req.NumeroQuarto.Value)
	if err != nil {
		respondError(c, err, "Erro ao buscar disponibilidade")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UpdateStatus rewrites the status of a room
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido: "+err.Error())
		return
	}

	if _, err := h.statusService.UpdateStatus(c.Request.Context(), req.NumeroQuarto.Value, req.Status); err != nil {
		respondError(c, err, "Erro ao atualizar status")
		return
	}
	utils.MessageResponse(c, "Status atualizado com sucesso")
}

// AddStatus inserts a status row for a room
func (h *StatusHandler) AddStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido: "+err.Error())
		return
	}

	if _, err := h.statusService.AddStatus(c.Request.Context(), req.NumeroQuarto.Value, req.Status); err != nil {
		respondError(c, err, "Erro ao adicionar status")
		return
	}
	utils.MessageResponse(c, "Status adicionado com sucesso")
}

// DeleteStatus removes the status rows of a room
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	numero, ok := parseNumero(c.Param("numero"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Número do quarto inválido")
		return
	}

	if err := h.statusService.DeleteStatus(c.Request.Context(), numero); err != nil {
		respondError(c, err, "Erro ao excluir status")
		return
	}
	utils.MessageResponse(c, fmt.Sprintf("Status do quarto %d excluído com sucesso", numero))
}
