package leave_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/leave"
	leaveerrors "go-hrm/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	createFn       func(ctx context.Context, ownerID string, req leave.CreateLeaveRequest, doc *leave.DocumentUpload) (leave.LeaveResponse, error)
	listFn         func(ctx context.Context, ownerID string, q leave.ListLeavesQuery) ([]leave.LeaveResponse, int64, error)
	getByIDFn      func(ctx context.Context, ownerID, id string) (leave.LeaveResponse, error)
	updateStatusFn func(ctx context.Context, ownerID, id, status string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, ownerID string, req leave.CreateLeaveRequest, doc *leave.DocumentUpload) (leave.LeaveResponse, error) {
	return f.createFn(ctx, ownerID, req, doc)
}
func (f *fakeLeaveService) List(ctx context.Context, ownerID string, q leave.ListLeavesQuery) ([]leave.LeaveResponse, int64, error) {
	return f.listFn(ctx, ownerID, q)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, ownerID, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, ownerID, id)
}
func (f *fakeLeaveService) UpdateStatus(ctx context.Context, ownerID, id, status string) (leave.LeaveResponse, error) {
	return f.updateStatusFn(ctx, ownerID, id, status)
}
func (f *fakeLeaveService) OpenDocument(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error) {
	return nil, "", leaveerrors.ErrNoDocument
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	leaveID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, oid, id, status string) (leave.LeaveResponse, error) {
				assert.Equal(t, ownerID, oid)
				assert.Equal(t, leaveID, id)
				assert.Equal(t, leave.StatusApproved, status)
				return leave.LeaveResponse{ID: id, Status: status}, nil
			},
		}
		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+leaveID+"/status", strings.NewReader(`{"status":"Approved"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\"status\":\"Approved\"")
	})

	t.Run("decided request maps to 400", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, oid, id, status string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidTransition
			},
		}
		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+leaveID+"/status", strings.NewReader(`{"status":"Rejected"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already been decided")
	})
}
