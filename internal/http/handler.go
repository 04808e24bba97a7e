package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkarag/pubhouse/internal/service"
)

type Handler struct {
	browse  *service.BrowseService
	reports *service.ReportService
	log     zerolog.Logger
}

func NewHandler(browse *service.BrowseService, reports *service.ReportService, log zerolog.Logger) *Handler {
	return &Handler{browse: browse, reports: reports, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/health", h.health)

	api := router.Group("/api")
	api.Use(authMiddleware)
	api.GET("/tables", h.listTables)
	api.GET("/search", h.search)
	api.GET("/stats", h.stats)
	api.POST("/stats/export", h.exportExcel)
	api.POST("/stats/export/pdf", h.exportPDF)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listTables(c *gin.Context) {
	tables, err := h.browse.Tables(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *Handler) search(c *gin.Context) {
	input := service.SearchInput{
		Table:    strings.TrimSpace(c.Query("table")),
		Column:   strings.TrimSpace(c.Query("column")),
		Operator: strings.TrimSpace(c.Query("op")),
		Value:    c.Query("value"),
	}
	if input.Operator == "" {
		input.Operator = "LIKE"
	}

	result, err := h.browse.Search(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.reports.BuildStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) exportExcel(c *gin.Context) {
	result, err := h.reports.ExportExcel(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportPDF(c *gin.Context) {
	result, err := h.reports.ExportPDF(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
