package handler

import (
	"fmt"
	"net/http"

	"hotel-rooms-backend/internal/models"
	"hotel-rooms-backend/internal/service"
	"hotel-rooms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// roomResponse is a room plus the warnings of its status mirror
type roomResponse struct {
	models.Room
	Avisos []string `json:"avisos,omitempty"`
}

// ListRooms returns every room merged with its current status
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomService.ListMerged(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao buscar quartos")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetRoom returns the merged view of one room
func (h *RoomHandler) GetRoom(c *gin.Context) {
	numero, ok := parseNumero(c.Param("numero"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Número do quarto inválido")
		return
	}

	view, err := h.roomService.GetMerged(c.Request.Context(), numero)
	if err != nil {
		respondError(c, err, "Erro ao buscar quarto")
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateRoom inserts a room and mirrors its availability
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var in models.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Dados do quarto inválidos: "+err.Error())
		return
	}

	res, err := h.roomService.CreateRoom(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Erro ao inserir quarto")
		return
	}
	c.JSON(http.StatusOK, roomResponse{Room: *res.Room, Avisos: warnings(res.Mirror)})
}

// UpdateRoom applies a partial update keyed by numero
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var in models.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Dados do quarto inválidos: "+err.Error())
		return
	}

	res, err := h.roomService.UpdateRoom(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Erro ao atualizar quarto")
		return
	}
	c.JSON(http.StatusOK, roomResponse{Room: *res.Room, Avisos: warnings(res.Mirror)})
}

// DeleteRoom removes a room and its status
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	numero, ok := parseNumero(c.Param("numero"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Número do quarto inválido")
		return
	}

	res, err := h.roomService.DeleteRoom(c.Request.Context(), numero)
	if err != nil {
		respondError(c, err, "Erro ao excluir quarto")
		return
	}

	body := gin.H{"mensagem": fmt.Sprintf("Quarto %d excluído com sucesso", numero)}
	if avisos := warnings(res.Mirror); len(avisos) > 0 {
		body["avisos"] = avisos
	}
	c.JSON(http.StatusOK, body)
}
