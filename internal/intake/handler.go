package intake

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mentorcv-backend/internal/quota"
	"mentorcv-backend/internal/shared/metrics"
	"mentorcv-backend/internal/shared/server/respond"
)

// maxUploadBytes caps how much of an uploaded file is read.
const maxUploadBytes = 10 << 20

// Handler exposes the upload pipeline over HTTP.
type Handler struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	start := time.Now()

	email := strings.TrimSpace(c.PostForm("email"))
	fileHeader, err := c.FormFile("file")
	if err != nil || email == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing file or email", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing file or email", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to process upload", nil)
		return
	}

	in := UploadInput{
		FileName:       fileHeader.Filename,
		FileType:       fileHeader.Header.Get("Content-Type"),
		Data:           data,
		Email:          email,
		Name:           strings.TrimSpace(c.PostForm("name")),
		TargetRole:     strings.TrimSpace(c.PostForm("targetRole")),
		JobDescription: strings.TrimSpace(c.PostForm("jobDescription")),
		IP:             c.ClientIP(),
	}

	result, err := h.Service.HandleUpload(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("analysisId", result.AnalysisID)
	metrics.ObserveUploadDurationMs(float64(time.Since(start).Milliseconds()))

	body := gin.H{"analysisId": result.AnalysisID}
	if c.Query("debug") == "1" {
		body["textLength"] = result.TextLength
		body["parser"] = result.Parser
		body["fileType"] = in.FileType
		body["fileName"] = in.FileName
	}
	respond.OK(c, body)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quota.ErrIPLimit):
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Too many requests from this IP. Try later.", nil)
	case errors.Is(err, quota.ErrMonthlyLimit):
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusForbidden, "quota_exceeded", "Monthly limit reached (5 analyses). Upgrade to continue.", nil)
	case errors.Is(err, quota.ErrHourlyLimit):
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Hourly limit reached (2 analyses). Try again later.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to process upload", nil)
	}
}
