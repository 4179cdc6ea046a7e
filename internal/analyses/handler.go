package analyses

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorcv-backend/internal/shared/server/respond"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// Handler wires HTTP handlers to the analyses repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analyses/recent", h.recent)
}

func (h *Handler) recent(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Email is required", nil)
		return
	}

	limit := defaultRecentLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := h.Repo.RecentByEmail(c.Request.Context(), email, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch recent analyses", nil)
		return
	}

	respond.OK(c, gin.H{"analyses": Summarize(rows)})
}
