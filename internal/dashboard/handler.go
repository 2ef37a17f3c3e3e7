package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sipsa-dashboard/internal/analysis"
	"sipsa-dashboard/internal/chart"
	"sipsa-dashboard/internal/dataset"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/options
// --------------------------------------------------
func (h *Handler) GetOptions(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, err := h.service.Options(filter)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, opts)
}

// --------------------------------------------------
// GET /api/dashboard
// --------------------------------------------------
func (h *Handler) GetDashboard(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.View(filter)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// GET /api/chart.png
// --------------------------------------------------
func (h *Handler) GetChart(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	png, err := h.service.ChartPNG(filter)
	if errors.Is(err, chart.ErrNoData) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data for the selected filters"})
		return
	}
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// --------------------------------------------------
// POST /api/dataset/reload
// --------------------------------------------------
func (h *Handler) ReloadDataset(c *gin.Context) {
	count, err := h.service.Reload()
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "dataset reloaded",
		"observations": count,
	})
}

// --------------------------------------------------
// Query parsing
// --------------------------------------------------

// parseFilter reads start/end/product/markets query parameters.
// Dates are YYYY-MM-DD; a missing bound stays open. Markets may be
// repeated or comma-separated.
func parseFilter(c *gin.Context) (analysis.Filter, error) {
	var f analysis.Filter

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", raw)
		}
		f.From = t
	}

	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", raw)
		}
		f.To = t
	}

	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return f, fmt.Errorf("end date is before start date")
	}

	f.Product = c.Query("product")

	for _, raw := range c.QueryArray("markets") {
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				f.Markets = append(f.Markets, m)
			}
		}
	}

	return f, nil
}

func respondLoadError(c *gin.Context, err error) {
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": loadErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
