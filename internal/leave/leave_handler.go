package leave

import (
	"io"
	"net/http"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	var req CreateLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	var doc *DocumentUpload
	if fh := middleware.UploadedFile(c, "document"); fh != nil {
		f, err := fh.Open()
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		defer f.Close()
		doc = &DocumentUpload{Filename: fh.Filename, Content: f}
	}

	resp, err := h.service.Create(c.Request.Context(), ownerID, req, doc)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Leave request created successfully", resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	var q ListLeavesQuery
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
	response.Success(c, http.StatusOK, "Leave requests retrieved successfully", items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	resp, err := h.service.GetByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Leave request retrieved successfully", resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	var req UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), ownerID, c.Param("id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Leave status updated successfully", resp, nil)
}

func (h *Handler) DownloadDocument(c *gin.Context) {
	ownerID := c.GetString("owner_id")

	rc, name, err := h.service.OpenDocument(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Error("stream document failed", zap.Error(err))
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
