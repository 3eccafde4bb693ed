package handler

import (
	"errors"
	"net/http"

	"tablero/internal/middleware"
	"tablero/internal/models"
	"tablero/internal/repository"
	"tablero/internal/service"
	"tablero/pkg/powerbi"

	"github.com/gin-gonic/gin"
)

type PowerBIHandler struct {
	client     powerbi.Client
	reportRepo *repository.ReportRepository
	authSvc    *service.AuthService
}

func NewPowerBIHandler(client powerbi.Client, reportRepo *repository.ReportRepository, authSvc *service.AuthService) *PowerBIHandler {
	return &PowerBIHandler{client: client, reportRepo: reportRepo, authSvc: authSvc}
}

type CreateReportRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	PowerBIReportID    string `json:"powerbi_report_id" binding:"required"`
	PowerBIWorkspaceID string `json:"powerbi_workspace_id" binding:"required"`
}

// ReportURL returns the embed URL plus a short-lived access token. The
// gateway degrades to mock data on provider failure, so this endpoint
// always answers 200 for an authenticated user.
func (h *PowerBIHandler) ReportURL(c *gin.Context) {
	if _, err := h.authSvc.CurrentUser(middleware.GetUserID(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	embed := h.client.GenerateEmbedToken(c.Request.Context(), c.Query("report_id"))
	c.JSON(http.StatusOK, embed)
}

// ListReports serves the registered active reports, falling back to the
// provider-side workspace listing when the registry is empty.
func (h *PowerBIHandler) ListReports(c *gin.Context) {
	if _, err := h.authSvc.CurrentUser(middleware.GetUserID(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuario no válido"})
		return
	}
	reports, err := h.reportRepo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener lista de reportes"})
		return
	}
	if len(reports) == 0 {
		c.JSON(http.StatusOK, h.client.ListReports(c.Request.Context()))
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *PowerBIHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Datos de entrada inválidos"})
		return
	}
	report := models.Report{
		Name:               req.Name,
		Description:        req.Description,
		PowerBIReportID:    req.PowerBIReportID,
		PowerBIWorkspaceID: req.PowerBIWorkspaceID,
		IsActive:           true,
	}
	if err := h.reportRepo.Create(&report); err != nil {
		if errors.Is(err, repository.ErrDuplicateReport) {
			c.JSON(http.StatusConflict, gin.H{"message": "Ya existe un reporte con ese identificador"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear reporte"})
		return
	}
	c.JSON(http.StatusCreated, report)
}
