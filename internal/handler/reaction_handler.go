package handler

import (
	"errors"
	"net/http"

	"tablero/internal/middleware"
	"tablero/internal/repository"
	"tablero/internal/service"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	repo    *repository.ReactionRepository
	authSvc *service.AuthService
}

func NewReactionHandler(repo *repository.ReactionRepository, authSvc *service.AuthService) *ReactionHandler {
	return &ReactionHandler{repo: repo, authSvc: authSvc}
}

type ToggleReactionRequest struct {
	Tipo     string `json:"tipo" binding:"required,oneof=me_interesa increible aporta"`
	ReportID uint   `json:"report_id" binding:"required"`
}

func (h *ReactionHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(queryReportID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener reacciones"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReactionHandler) Toggle(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	var req ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos de entrada inválidos"})
		return
	}
	action, err := h.repo.Toggle(user.ID, req.ReportID, req.Tipo)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReactionType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Datos de entrada inválidos"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al procesar reacción"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"action":  action,
		"message": "Reacción registrada",
	})
}

func (h *ReactionHandler) ListMine(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	reactions, err := h.repo.ListByUser(user.ID, queryReportID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener reacciones del usuario"})
		return
	}
	c.JSON(http.StatusOK, reactions)
}
