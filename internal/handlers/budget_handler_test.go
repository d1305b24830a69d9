package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "privfin/internal/errors"
	"privfin/internal/models"
	"privfin/internal/services"
	"privfin/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.RegisterTags()
}

// mockBudgetService records call counts so tests can assert the service is
// never reached when validation fails.
type mockBudgetService struct {
	listCalls   int
	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int

	listFn   func(filter services.BudgetFilter) ([]models.Budget, error)
	getFn    func(id string) (*models.Budget, error)
	createFn func(input services.CreateBudgetInput) (*models.Budget, error)
	updateFn func(id string, input services.UpdateBudgetInput) (*models.Budget, error)
	deleteFn func(id string) (*models.Budget, error)
}

func (m *mockBudgetService) List(filter services.BudgetFilter) ([]models.Budget, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(filter)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetByID(id string) (*models.Budget, error) {
	m.getCalls++
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) Create(input services.CreateBudgetInput) (*models.Budget, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(input)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) Update(id string, input services.UpdateBudgetInput) (*models.Budget, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(id, input)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) Delete(id string) (*models.Budget, error) {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return &models.Budget{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(svc services.BudgetServicer) *gin.Engine {
	r := gin.New()
	RegisterBudgetRoutes(r.Group("/api/budgets"), NewBudgetHandler(svc))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

const testUUID = "0190b6a1-7f4e-7000-8000-000000000001"

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 with envelope on success", func(t *testing.T) {
		svc := &mockBudgetService{
			createFn: func(input services.CreateBudgetInput) (*models.Budget, error) {
				return &models.Budget{
					Base:       models.Base{ID: testUUID},
					CategoryID: input.CategoryID,
					Period:     input.Period,
					Amount:     input.Amount,
					IsActive:   true,
				}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "POST", "/api/budgets",
			`{"categoryId":"`+testUUID+`","period":"monthly","amount":500}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true {
			t.Error("expected success true")
		}
		data := result["data"].(map[string]interface{})
		if data["amount"] != "500" {
			t.Errorf("expected amount as decimal string \"500\", got %v", data["amount"])
		}
		if data["isActive"] != true {
			t.Errorf("expected isActive true, got %v", data["isActive"])
		}
	})

	t.Run("rejects missing categoryId before the service runs", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "POST", "/api/budgets", `{"period":"monthly","amount":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != false {
			t.Error("expected success false")
		}
		errObj := result["error"].(map[string]interface{})
		if errObj["code"] != "VALIDATION_ERROR" {
			t.Errorf("expected VALIDATION_ERROR, got %v", errObj["code"])
		}
		details := errObj["details"].([]interface{})
		issue := details[0].(map[string]interface{})
		if issue["path"] != "categoryId" {
			t.Errorf("expected issue path categoryId, got %v", issue["path"])
		}
		if svc.createCalls != 0 {
			t.Errorf("service called %d times despite validation failure", svc.createCalls)
		}
	})

	t.Run("rejects unknown period", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "POST", "/api/budgets",
			`{"categoryId":"`+testUUID+`","period":"fortnightly","amount":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.createCalls != 0 {
			t.Error("service must not run for an invalid period")
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "POST", "/api/budgets",
			`{"categoryId":"`+testUUID+`","period":"monthly","amount":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.createCalls != 0 {
			t.Error("service must not run for a negative amount")
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockBudgetService{
			getFn: func(id string) (*models.Budget, error) {
				return &models.Budget{Base: models.Base{ID: id}, IsActive: true}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets/"+testUUID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["id"] != testUUID {
			t.Errorf("expected id %s, got %v", testUUID, data["id"])
		}
	})

	t.Run("rejects malformed id before the service runs", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "VALIDATION_ERROR" {
			t.Errorf("expected VALIDATION_ERROR, got %v", errObj["code"])
		}
		if svc.getCalls != 0 {
			t.Error("service must not run for a malformed id")
		}
	})

	t.Run("passes not found through untouched", func(t *testing.T) {
		svc := &mockBudgetService{
			getFn: func(id string) (*models.Budget, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets/"+testUUID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "BUDGET_NOT_FOUND" {
			t.Errorf("expected BUDGET_NOT_FOUND, got %v", errObj["code"])
		}
	})

	t.Run("hides internal errors behind a 500 envelope", func(t *testing.T) {
		svc := &mockBudgetService{
			getFn: func(id string) (*models.Budget, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, sqlDown{})
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets/"+testUUID, "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
		}
		errObj := parseJSON(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "INTERNAL_ERROR" {
			t.Errorf("expected INTERNAL_ERROR, got %v", errObj["code"])
		}
		if strings.Contains(rec.Body.String(), "connection refused") {
			t.Error("internal error detail leaked to the client")
		}
	})
}

type sqlDown struct{}

func (sqlDown) Error() string { return "pq: connection refused" }

func TestBudgetHandler_ListBudgets(t *testing.T) {
	t.Run("passes filters to the service", func(t *testing.T) {
		var got services.BudgetFilter
		svc := &mockBudgetService{
			listFn: func(filter services.BudgetFilter) ([]models.Budget, error) {
				got = filter
				return []models.Budget{}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets?categoryId="+testUUID+"&period=weekly&isActive=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.CategoryID == nil || *got.CategoryID != testUUID {
			t.Errorf("categoryId filter not passed: %v", got.CategoryID)
		}
		if got.Period == nil || *got.Period != models.BudgetPeriodWeekly {
			t.Errorf("period filter not passed: %v", got.Period)
		}
		if got.IsActive == nil || !*got.IsActive {
			t.Errorf("isActive filter not passed: %v", got.IsActive)
		}
	})

	t.Run("no filters means no constraints", func(t *testing.T) {
		var got services.BudgetFilter
		svc := &mockBudgetService{
			listFn: func(filter services.BudgetFilter) ([]models.Budget, error) {
				got = filter
				return []models.Budget{}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.CategoryID != nil || got.Period != nil || got.IsActive != nil {
			t.Errorf("expected empty filter, got %+v", got)
		}
	})

	t.Run("rejects a non-boolean isActive", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "GET", "/api/budgets?isActive=banana", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.listCalls != 0 {
			t.Error("service must not run for an invalid query")
		}
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("returns 200 and passes only supplied fields", func(t *testing.T) {
		var gotInput services.UpdateBudgetInput
		svc := &mockBudgetService{
			updateFn: func(id string, input services.UpdateBudgetInput) (*models.Budget, error) {
				gotInput = input
				return &models.Budget{
					Base:     models.Base{ID: id},
					Amount:   *input.Amount,
					IsActive: true,
				}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "PUT", "/api/budgets/"+testUUID, `{"amount":750}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.Amount == nil || !gotInput.Amount.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected amount 750, got %v", gotInput.Amount)
		}
		if gotInput.CategoryID != nil || gotInput.Period != nil || gotInput.IsActive != nil {
			t.Errorf("unsupplied fields must stay nil: %+v", gotInput)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["amount"] != "750" {
			t.Errorf("expected amount \"750\", got %v", data["amount"])
		}
	})

	t.Run("validates both path and body", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "PUT", "/api/budgets/nope", `{"amount":750}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad id, got %d", rec.Code)
		}

		rec = doRequest(r, "PUT", "/api/budgets/"+testUUID, `{"period":"daily"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad period, got %d", rec.Code)
		}

		if svc.updateCalls != 0 {
			t.Error("service must not run when any validator fails")
		}
	})
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	t.Run("returns the soft-deleted row", func(t *testing.T) {
		svc := &mockBudgetService{
			deleteFn: func(id string) (*models.Budget, error) {
				return &models.Budget{Base: models.Base{ID: id}, IsActive: false}, nil
			},
		}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "DELETE", "/api/budgets/"+testUUID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["isActive"] != false {
			t.Errorf("expected isActive false, got %v", data["isActive"])
		}
	})

	t.Run("rejects malformed id before the service runs", func(t *testing.T) {
		svc := &mockBudgetService{}
		r := setupBudgetRouter(svc)

		rec := doRequest(r, "DELETE", "/api/budgets/123", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.deleteCalls != 0 {
			t.Error("service must not run for a malformed id")
		}
	})
}
