package candidate

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("candidate.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	if h.rdb != nil {
		if lk := c.GetString("idempotency_lock_key"); lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateCandidateRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	var resume *ResumeUpload
	if fh := middleware.UploadedFile(c, "resume"); fh != nil {
		f, err := fh.Open()
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		defer f.Close()
		resume = &ResumeUpload{Filename: fh.Filename, Content: f}
	}

	resp, err := h.service.Create(c.Request.Context(), ownerID, req, resume)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck := c.GetString("idempotency_cache_key"); ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, "Candidate created successfully", resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	var q ListCandidatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, err)
		return
	}

	items, total, err := h.service.List(c.Request.Context(), ownerID, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, "Candidates retrieved successfully", items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	resp, err := h.service.GetByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved successfully", resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	var req UpdateCandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	message := "Candidate status updated successfully"
	if resp.EmployeeID != "" {
		message = "Candidate selected and employee created successfully"
	}
	response.Success(c, http.StatusOK, message, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	if err := h.service.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted successfully", nil, nil)
}

func (h *Handler) DownloadResume(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	rc, name, err := h.service.OpenResume(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Error("stream resume failed", zap.Error(err))
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
