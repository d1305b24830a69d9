package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"privfin/internal/handlers"
	"privfin/internal/logger"
	"privfin/internal/middleware"
	"privfin/internal/models"
	"privfin/internal/services"
	"privfin/internal/validation"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validation.RegisterTags()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Budget{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	budgetService := services.NewBudgetService(db)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	healthHandler := handlers.NewHealthHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS([]string{"*"}))
	router.Use(middleware.ErrorHandler())

	handlers.RegisterSystemRoutes(router, healthHandler)
	handlers.RegisterBudgetRoutes(router.Group("/api/budgets"), budgetHandler)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// data extracts the envelope data object, failing if the envelope reports failure.
func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %s", rec.Body.String())
	}
	return result["data"].(map[string]interface{})
}

// dataList extracts the envelope data array.
func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %s", rec.Body.String())
	}
	return result["data"].([]interface{})
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
