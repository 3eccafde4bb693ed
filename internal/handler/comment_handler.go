package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tablero/internal/middleware"
	"tablero/internal/repository"
	"tablero/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	repo    *repository.CommentRepository
	authSvc *service.AuthService
}

func NewCommentHandler(repo *repository.CommentRepository, authSvc *service.AuthService) *CommentHandler {
	return &CommentHandler{repo: repo, authSvc: authSvc}
}

type CreateCommentRequest struct {
	Contenido string `json:"contenido" binding:"required,min=1,max=1000"`
	ReportID  uint   `json:"report_id" binding:"required"`
}

// List is public; a valid bearer token personalizes the userLiked flag.
func (h *CommentHandler) List(c *gin.Context) {
	reportID := queryReportID(c)
	currentUserID := middleware.GetUserID(c)
	views, err := h.repo.ListByReport(reportID, currentUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener comentarios"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *CommentHandler) Create(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos de entrada inválidos"})
		return
	}
	view, err := h.repo.Create(user.ID, req.ReportID, req.Contenido)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear comentario"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) ToggleLike(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos de entrada inválidos"})
		return
	}
	action, likes, err := h.repo.ToggleLike(user.ID, uint(commentID))
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comentario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al procesar like"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"action":  action,
		"likes":   likes,
	})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos de entrada inválidos"})
		return
	}
	comment, err := h.repo.GetByID(uint(commentID))
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comentario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al eliminar comentario"})
		return
	}
	if comment.UserID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "No tienes permisos para eliminar este comentario"})
		return
	}
	if err := h.repo.SoftDelete(comment.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al eliminar comentario"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comentario eliminado"})
}

// queryReportID reads report_id from the query string, defaulting to the
// first report.
func queryReportID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.DefaultQuery("report_id", "1"), 10, 64)
	if err != nil {
		return 1
	}
	return uint(id)
}
