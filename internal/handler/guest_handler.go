package handler

import (
	"net/http"

	"hotel-rooms-backend/internal/middleware"
	"hotel-rooms-backend/internal/service"
	"hotel-rooms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestService *service.GuestService
}

func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
	}
}

// Register handles guest self-registration
func (h *GuestHandler) Register(c *gin.Context) {
	var req service.RegisterGuestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	guest, err := h.guestService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao cadastrar hóspede")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    guest,
	})
}

// Login handles guest authentication by CPF and senha
func (h *GuestHandler) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.guestService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao autenticar hóspede")
		return
	}
	utils.SuccessResponse(c, response)
}

// List returns all guests
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.guestService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao listar hóspedes")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"hospedes": guests,
		"count":    len(guests),
	})
}

// Me returns the authenticated guest
func (h *GuestHandler) Me(c *gin.Context) {
	guest, err := h.guestService.GetByID(c.Request.Context(), c.GetString(middleware.GuestIDKey))
	if err != nil {
		respondError(c, err, "Erro ao buscar hóspede")
		return
	}
	utils.SuccessResponse(c, guest)
}

// GetByCPF looks a guest up by CPF
func (h *GuestHandler) GetByCPF(c *gin.Context) {
	guest, err := h.guestService.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, err, "Erro ao buscar hóspede")
		return
	}
	utils.SuccessResponse(c, guest)
}

// UpdateMe applies a partial update to the authenticated guest
func (h *GuestHandler) UpdateMe(c *gin.Context) {
	var req service.UpdateGuestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	guest, err := h.guestService.Update(c.Request.Context(), c.GetString(middleware.GuestIDKey), req)
	if err != nil {
		respondError(c, err, "Erro ao atualizar hóspede")
		return
	}
	utils.SuccessResponse(c, guest)
}

// DeleteMe removes the authenticated guest
func (h *GuestHandler) DeleteMe(c *gin.Context) {
	if err := h.guestService.Delete(c.Request.Context(), c.GetString(middleware.GuestIDKey)); err != nil {
		respondError(c, err, "Erro ao excluir hóspede")
		return
	}
	utils.MessageResponse(c, "Hóspede excluído com sucesso")
}
