package employee_test

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeHandlerService struct {
	createFn       func(ctx context.Context, ownerID string, req employee.CreateEmployeeRequest, resume *employee.ResumeUpload) (employee.EmployeeResponse, error)
	updateFn       func(ctx context.Context, ownerID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	updateStatusFn func(ctx context.Context, ownerID, id, status string) (employee.EmployeeResponse, error)
}

func (f *fakeHandlerService) Create(ctx context.Context, ownerID string, req employee.CreateEmployeeRequest, resume *employee.ResumeUpload) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, ownerID, req, resume)
}
func (f *fakeHandlerService) List(ctx context.Context, ownerID string, q employee.ListEmployeesQuery) ([]employee.EmployeeResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeHandlerService) GetOptions(ctx context.Context, ownerID string) ([]employee.EmployeeResponse, error) {
	return nil, nil
}
func (f *fakeHandlerService) GetByID(ctx context.Context, ownerID, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
}
func (f *fakeHandlerService) Update(ctx context.Context, ownerID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, ownerID, id, req)
}
func (f *fakeHandlerService) UpdateStatus(ctx context.Context, ownerID, id, status string) (employee.EmployeeResponse, error) {
	return f.updateStatusFn(ctx, ownerID, id, status)
}
func (f *fakeHandlerService) Delete(ctx context.Context, ownerID, id string) error {
	return nil
}
func (f *fakeHandlerService) OpenResume(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error) {
	return nil, "", employeeerrors.ErrNoResume
}
func (f *fakeHandlerService) SeedOnboardingTask(ctx context.Context, ownerID, employeeID string) error {
	return nil
}

func TestHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeHandlerService{
			updateFn: func(ctx context.Context, oid, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, ownerID, oid)
				assert.Equal(t, employeeID, id)
				assert.Equal(t, employee.EmploymentContract, req.EmploymentType)
				assert.Len(t, req.Tasks, 1)
				return employee.EmployeeResponse{ID: id, EmploymentType: req.EmploymentType}, nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}
		body := `{"joining_date":"2025-07-01","employment_type":"Contract","position":"Backend Engineer","tasks":[{"description":"Setup laptop","due_date":"2025-07-02"}]}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+employeeID, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee updated successfully")
	})

	t.Run("negative unknown employee maps to 404", func(t *testing.T) {
		svc := &fakeHandlerService{
			updateFn: func(ctx context.Context, oid, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}
		body := `{"joining_date":"2025-07-01","employment_type":"Contract","position":"Backend Engineer","tasks":[]}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+employeeID, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "\"success\":false")
	})

	t.Run("negative missing position fails binding", func(t *testing.T) {
		called := false
		svc := &fakeHandlerService{
			updateFn: func(ctx context.Context, oid, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				called = true
				return employee.EmployeeResponse{}, nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}
		body := `{"joining_date":"2025-07-01","employment_type":"Contract","tasks":[]}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+employeeID, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeHandlerService{
			updateStatusFn: func(ctx context.Context, oid, id, status string) (employee.EmployeeResponse, error) {
				assert.Equal(t, employee.StatusOngoing, status)
				return employee.EmployeeResponse{ID: id, Status: status}, nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/employees/"+employeeID+"/status", strings.NewReader(`{"status":"Ongoing"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee status updated successfully")
	})

	t.Run("negative unknown status maps to 400", func(t *testing.T) {
		svc := &fakeHandlerService{
			updateStatusFn: func(ctx context.Context, oid, id, status string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrInvalidStatus
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/employees/"+employeeID+"/status", strings.NewReader(`{"status":"Fired"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "\"success\":false")
	})
}

func TestHandler_Create_ZeroSalary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()

	svc := &fakeHandlerService{
		createFn: func(ctx context.Context, oid string, req employee.CreateEmployeeRequest, resume *employee.ResumeUpload) (employee.EmployeeResponse, error) {
			assert.Equal(t, float64(0), req.Salary)
			return employee.EmployeeResponse{ID: uuid.New().String(), Name: req.Name}, nil
		},
	}
	h := employee.NewHandler(svc)

	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "Budi Santoso")
	mw.WriteField("email", "budi@example.com")
	mw.WriteField("phone", "0812")
	mw.WriteField("position", "Intern")
	mw.WriteField("department", "Engineering")
	mw.WriteField("salary", "0")
	mw.WriteField("joining_date", "2025-07-01")
	mw.WriteField("work_location", "Jakarta")
	mw.WriteField("employment_type", "Internship")
	mw.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("owner_id", ownerID)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(buf.String()))
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}
