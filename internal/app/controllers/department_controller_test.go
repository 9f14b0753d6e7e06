package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubDepartmentService struct {
	departments map[int64]*models.Department
	createErr   error
}

func (s *stubDepartmentService) CreateDepartment(_ context.Context, department *models.Department) error {
	if s.createErr != nil {
		return s.createErr
	}
	department.ID = 1
	return nil
}

func (s *stubDepartmentService) GetDepartmentByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := s.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *stubDepartmentService) ListDepartments(_ context.Context, _ repositories.DepartmentFilter, _, _ int) ([]*models.Department, int64, error) {
	out := make([]*models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (s *stubDepartmentService) UpdateDepartment(_ context.Context, department *models.Department) error {
	if _, ok := s.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

func (s *stubDepartmentService) DeleteDepartment(_ context.Context, id int64) error {
	if _, ok := s.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

func departmentRouter(svc *stubDepartmentService) *gin.Engine {
	ctrl := NewDepartmentController(svc)
	router := gin.New()
	router.POST("/departments", ctrl.CreateDepartment)
	router.GET("/departments", ctrl.ListDepartments)
	router.GET("/departments/:id", ctrl.GetDepartmentByID)
	router.DELETE("/departments/:id", ctrl.DeleteDepartment)
	return router
}

func TestCreateDepartment(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		router := departmentRouter(&stubDepartmentService{})

		body := `{"name": "Computer Science", "code": "CS"}`
		req := httptest.NewRequest("POST", "/departments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data models.Department `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.ID != 1 || resp.Data.Name != "Computer Science" {
			t.Errorf("data = %+v, want id 1 and created name", resp.Data)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		router := departmentRouter(&stubDepartmentService{})

		req := httptest.NewRequest("POST", "/departments", strings.NewReader(`{"name": ""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		router := departmentRouter(&stubDepartmentService{createErr: apperrors.ErrDepartmentAlreadyExists})

		body := `{"name": "Computer Science", "code": "CS"}`
		req := httptest.NewRequest("POST", "/departments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
	})
}

func TestGetDepartmentByID(t *testing.T) {
	svc := &stubDepartmentService{departments: map[int64]*models.Department{
		3: {ID: 3, Name: "Physics", Code: "PHY"},
	}}
	router := departmentRouter(svc)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/departments/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/departments/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		var resp dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceNotFound {
			t.Errorf("error = %+v, want %s", resp.Error, dto.ErrorCodeResourceNotFound)
		}
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/departments/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestListDepartmentsEnvelope(t *testing.T) {
	svc := &stubDepartmentService{departments: map[int64]*models.Department{
		1: {ID: 1, Name: "Computer Science", Code: "CS"},
		2: {ID: 2, Name: "Mathematics", Code: "MATH"},
	}}
	router := departmentRouter(svc)

	req := httptest.NewRequest("GET", "/departments?page=1&size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			Items      []models.Department `json:"items"`
			Pagination dto.PaginationInfo  `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Items) != 2 {
		t.Errorf("items = %d, want 2", len(resp.Data.Items))
	}
	if resp.Data.Pagination.TotalItems != 2 || resp.Data.Pagination.CurrentPage != 1 {
		t.Errorf("pagination = %+v", resp.Data.Pagination)
	}
}
