package candidate_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hrm/internal/candidate"
	candidateerrors "go-hrm/internal/candidate/errors"
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn       func(ctx context.Context, ownerID string, req candidate.CreateCandidateRequest, resume *candidate.ResumeUpload) (candidate.CandidateResponse, error)
	listFn         func(ctx context.Context, ownerID string, q candidate.ListCandidatesQuery) ([]candidate.CandidateResponse, int64, error)
	getByIDFn      func(ctx context.Context, ownerID, id string) (candidate.CandidateResponse, error)
	updateStatusFn func(ctx context.Context, ownerID, id string, req candidate.UpdateCandidateStatusRequest) (candidate.PromotionResponse, error)
	deleteFn       func(ctx context.Context, ownerID, id string) error
}

func (f *fakeService) Create(ctx context.Context, ownerID string, req candidate.CreateCandidateRequest, resume *candidate.ResumeUpload) (candidate.CandidateResponse, error) {
	return f.createFn(ctx, ownerID, req, resume)
}
func (f *fakeService) List(ctx context.Context, ownerID string, q candidate.ListCandidatesQuery) ([]candidate.CandidateResponse, int64, error) {
	return f.listFn(ctx, ownerID, q)
}
func (f *fakeService) GetByID(ctx context.Context, ownerID, id string) (candidate.CandidateResponse, error) {
	return f.getByIDFn(ctx, ownerID, id)
}
func (f *fakeService) UpdateStatus(ctx context.Context, ownerID, id string, req candidate.UpdateCandidateStatusRequest) (candidate.PromotionResponse, error) {
	return f.updateStatusFn(ctx, ownerID, id, req)
}
func (f *fakeService) Delete(ctx context.Context, ownerID, id string) error {
	return f.deleteFn(ctx, ownerID, id)
}
func (f *fakeService) OpenResume(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error) {
	return nil, "", candidateerrors.ErrNoResume
}
func (f *fakeService) ReconcilePromotions(ctx context.Context) (int, error) {
	return 0, nil
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	candidateID := uuid.New().String()

	t.Run("selection returns employee id", func(t *testing.T) {
		svc := &fakeService{
			updateStatusFn: func(ctx context.Context, oid, id string, req candidate.UpdateCandidateStatusRequest) (candidate.PromotionResponse, error) {
				assert.Equal(t, ownerID, oid)
				assert.Equal(t, candidateID, id)
				assert.Equal(t, candidate.StatusSelected, req.Status)
				assert.NotNil(t, req.EmployeeData)
				return candidate.PromotionResponse{
					Candidate:  candidate.CandidateResponse{ID: id, Status: candidate.StatusSelected},
					EmployeeID: uuid.New().String(),
				}, nil
			},
		}
		h := candidate.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: candidateID}}
		body := `{"status":"Selected","employee_data":{"department":"Engineering","salary":9000000,"joining_date":"2025-07-01","work_location":"Jakarta","employment_type":"Full-time"}}`
		c.Request = httptest.NewRequest(http.MethodPatch, "/candidates/"+candidateID+"/status", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "employee created")
		assert.Contains(t, w.Body.String(), "\"employee_id\"")
	})

	t.Run("zero salary passes validation", func(t *testing.T) {
		svc := &fakeService{
			updateStatusFn: func(ctx context.Context, oid, id string, req candidate.UpdateCandidateStatusRequest) (candidate.PromotionResponse, error) {
				assert.NotNil(t, req.EmployeeData)
				assert.Equal(t, float64(0), req.EmployeeData.Salary)
				return candidate.PromotionResponse{
					Candidate:  candidate.CandidateResponse{ID: id, Status: candidate.StatusSelected},
					EmployeeID: uuid.New().String(),
				}, nil
			},
		}
		h := candidate.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: candidateID}}
		body := `{"status":"Selected","employee_data":{"department":"Engineering","salary":0,"joining_date":"2025-07-01","work_location":"Jakarta","employment_type":"Internship"}}`
		c.Request = httptest.NewRequest(http.MethodPatch, "/candidates/"+candidateID+"/status", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid transition maps to 400", func(t *testing.T) {
		svc := &fakeService{
			updateStatusFn: func(ctx context.Context, oid, id string, req candidate.UpdateCandidateStatusRequest) (candidate.PromotionResponse, error) {
				return candidate.PromotionResponse{}, candidateerrors.ErrInvalidTransition
			},
		}
		h := candidate.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("owner_id", ownerID)
		c.Params = gin.Params{{Key: "id", Value: candidateID}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/candidates/"+candidateID+"/status", strings.NewReader(`{"status":"Pending"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "\"success\":false")
	})
}

func TestHandler_Create_IdempotencyReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()
	candidateID := uuid.New().String()
	idempKey := "retry-123"

	created := candidate.CandidateResponse{
		ID:     candidateID,
		Name:   "Andi",
		Email:  "andi@example.com",
		Status: candidate.StatusPending,
	}
	payload, _ := json.Marshal(created)

	createCalls := 0
	svc := &fakeService{
		createFn: func(ctx context.Context, oid string, req candidate.CreateCandidateRequest, resume *candidate.ResumeUpload) (candidate.CandidateResponse, error) {
			createCalls++
			return created, nil
		},
	}

	rdb, redisMock := redismock.NewClientMock()
	h := candidate.NewHandlerWithRedis(svc, rdb)

	router := gin.New()
	router.POST("/candidates",
		func(c *gin.Context) { c.Set("owner_id", ownerID) },
		middleware.Idempotency(rdb),
		h.Create,
	)

	cacheKey := fmt.Sprintf("idemp:/candidates:%s:%s", ownerID, idempKey)
	lockKey := cacheKey + ":lock"

	form := url.Values{}
	form.Set("name", "Andi")
	form.Set("email", "andi@example.com")
	form.Set("phone", "0811")
	form.Set("position", "Backend Engineer")

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/candidates", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Idempotency-Key", idempKey)
		return req
	}

	// Request pertama: miss → lock → handler menyimpan response dan melepas lock.
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	redisMock.CustomMatch(func(expected, actual []interface{}) error {
		return nil
	}).ExpectSet(cacheKey, nil, 24*time.Hour).SetVal("OK")
	redisMock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newReq())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, createCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())

	// Retry dengan key yang sama: replay dari cache, service tidak dipanggil lagi.
	redisMock.ExpectGet(cacheKey).SetVal(string(payload))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newReq())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, createCalls)
	assert.Contains(t, w.Body.String(), candidateID)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New().String()

	svc := &fakeService{
		listFn: func(ctx context.Context, oid string, q candidate.ListCandidatesQuery) ([]candidate.CandidateResponse, int64, error) {
			assert.Equal(t, "all", q.Status)
			assert.Equal(t, "andi", q.Search)
			return []candidate.CandidateResponse{{ID: uuid.New().String()}}, 1, nil
		},
	}
	h := candidate.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("owner_id", ownerID)
	c.Request = httptest.NewRequest(http.MethodGet, "/candidates?search=andi&status=all&page=1&limit=10", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"meta\"")
	assert.Contains(t, w.Body.String(), "\"total\":1")
}
