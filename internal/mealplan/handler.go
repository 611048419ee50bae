package mealplan

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Site ids become storage keys and archive prefixes, so keep them to
// a tame charset.
var siteRe = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// --------------------------------------------------
// UPLOAD WEEKLY PLAN
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	site := c.Param("site")
	if !siteRe.MatchString(site) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site id"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "workbook exceeds 10 MiB"})
		return
	}

	if err := ValidateFileExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.service.Ingest(
		c.Request.Context(),
		site,
		header.Filename,
		file,
	)
	if err != nil {
		if errors.Is(err, ErrNoWeekStart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no recognizable dates in sheet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"site":       doc.Site,
		"week_start": doc.WeekStart,
		"days":       len(doc.Days),
		"sheet":      doc.Source.Sheet,
		"message":    "Meal plan stored.",
	})
}

// --------------------------------------------------
// READ: ONE WEEK (RAW STORED PAYLOAD)
// --------------------------------------------------
func (h *Handler) GetWeek(c *gin.Context) {
	site := c.Param("site")
	week := c.Param("week")

	if _, err := time.Parse(isoDate, week); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be YYYY-MM-DD"})
		return
	}

	payload, err := h.service.GetWeek(c.Request.Context(), site, week)
	if err != nil {
		if errors.Is(err, ErrWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no plan stored for this week"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// --------------------------------------------------
// READ: LATEST WEEK
// --------------------------------------------------
func (h *Handler) GetLatest(c *gin.Context) {
	site := c.Param("site")

	_, payload, err := h.service.GetLatest(c.Request.Context(), site)
	if err != nil {
		if errors.Is(err, ErrWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no plans stored for this site"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// --------------------------------------------------
// READ: WEEK LIST
// --------------------------------------------------
func (h *Handler) ListWeeks(c *gin.Context) {
	site := c.Param("site")

	weeks, err := h.service.ListWeeks(c.Request.Context(), site)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"site":  site,
		"weeks": weeks,
	})
}
