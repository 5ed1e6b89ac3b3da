package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/attendance"
	attendanceerrors "go-hrm/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	recordFn func(ctx context.Context, ownerID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error)
	listFn   func(ctx context.Context, ownerID string, q attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, int64, error)
}

func (f *fakeService) Record(ctx context.Context, ownerID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.recordFn(ctx, ownerID, req)
}
func (f *fakeService) List(ctx context.Context, ownerID string, q attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, int64, error) {
	return f.listFn(ctx, ownerID, q)
}

func TestHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			recordFn: func(ctx context.Context, oid string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, ownerID, oid)
				assert.Equal(t, employeeID, req.EmployeeID)
				assert.Equal(t, attendance.StatusPresent, req.Status)
				return attendance.AttendanceResponse{
					ID:     uuid.New().String(),
					Date:   req.Date,
					Status: req.Status,
				}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		body := `{"employee_id":"` + employeeID + `","date":"2025-07-01","status":"Present"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Record(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Attendance recorded successfully")
	})

	t.Run("negative unknown employee maps to 404", func(t *testing.T) {
		svc := &fakeService{
			recordFn: func(ctx context.Context, oid string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		body := `{"employee_id":"` + uuid.New().String() + `","date":"2025-07-01","status":"Present"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Record(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "\"success\":false")
	})

	t.Run("negative missing status fails binding", func(t *testing.T) {
		called := false
		svc := &fakeService{
			recordFn: func(ctx context.Context, oid string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
				called = true
				return attendance.AttendanceResponse{}, nil
			},
		}
		h := attendance.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		body := `{"employee_id":"` + employeeID + `","date":"2025-07-01"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Record(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeService{
		listFn: func(ctx context.Context, oid string, q attendance.ListAttendanceQuery) ([]attendance.AttendanceResponse, int64, error) {
			assert.Equal(t, ownerID, oid)
			assert.Equal(t, employeeID, q.EmployeeID)
			assert.Equal(t, "2025-07-01", q.Date)
			return []attendance.AttendanceResponse{{
				ID:       uuid.New().String(),
				Date:     "2025-07-01",
				Status:   attendance.StatusPresent,
				Employee: attendanceEmp(employeeID, "Budi Santoso"),
			}}, 1, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("owner_id", ownerID)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance?employee_id="+employeeID+"&date=2025-07-01&page=1&limit=10", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Budi Santoso")
	assert.Contains(t, w.Body.String(), "\"total\":1")
}

func attendanceEmp(id, name string) *attendance.AttendanceEmployee {
	return &attendance.AttendanceEmployee{ID: id, Name: name, Department: "Engineering", Position: "Backend Engineer"}
}
