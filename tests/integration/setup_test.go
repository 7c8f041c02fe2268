package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rms/internal/handlers"
	"rms/internal/logger"
	"rms/internal/middleware"
	"rms/internal/models"
	"rms/internal/services"
	"rms/internal/validator"
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
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.AITool{},
		&models.Allocation{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	toolService := services.NewAIToolService(db)
	allocationService := services.NewAllocationService(db, toolService)
	auditService := services.NewAuditService(db)

	// Handlers
	toolHandler := handlers.NewAIToolHandler(toolService, auditService)
	allocationHandler := handlers.NewAllocationHandler(allocationService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	api := router.Group("/api")

	tools := api.Group("/ai-tools")
	tools.GET("", toolHandler.GetAllTools)
	tools.GET("/:id", toolHandler.GetToolByID)
	tools.POST("", toolHandler.CreateTool)
	tools.PUT("/:id", toolHandler.UpdateTool)
	tools.DELETE("/:id", toolHandler.DeleteTool)

	allocations := api.Group("/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.GET("/pending", allocationHandler.GetPendingRequests)
	allocations.GET("/processed", allocationHandler.GetProcessedRequests)
	allocations.PUT("/:id/approve", allocationHandler.ApproveAllocation)
	allocations.PUT("/:id/reject", allocationHandler.RejectAllocation)
	allocations.GET("/employee/:employeeId", allocationHandler.GetEmployeeAllocations)
	allocations.GET("/employee/:employeeId/active", allocationHandler.GetActiveEmployeeAllocations)
	allocations.GET("/:id", allocationHandler.GetAllocationByID)

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

// data extracts the data field from a success envelope.
func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	d, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %s", rec.Body.String())
	}
	return d
}

// dataList extracts the data field from a success envelope as a list.
func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	d, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("response has no data array: %s", rec.Body.String())
	}
	return d
}

// createTool creates a catalog tool over HTTP and returns its ID.
func (app *testApp) createTool(t *testing.T, name, monthlyPrice string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"monthlyPrice":%q}`, name, monthlyPrice)
	rec := app.request("POST", "/api/ai-tools", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tool failed: %d %s", rec.Code, rec.Body.String())
	}
	return data(t, rec)["id"].(string)
}

// createAllocation submits an allocation request over HTTP and returns its ID.
func (app *testApp) createAllocation(t *testing.T, employeeID, toolID string) string {
	t.Helper()
	body := fmt.Sprintf(`{
		"employeeId": %q,
		"employeeName": "Amira Duarte",
		"employeeEmail": "amira.duarte@example.com",
		"employeeDepartment": "Engineering",
		"aiToolId": %q,
		"startDate": "2024-03-01",
		"endDate": "2024-09-01",
		"notes": "code review assistance"
	}`, employeeID, toolID)
	rec := app.request("POST", "/api/allocations", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create allocation failed: %d %s", rec.Code, rec.Body.String())
	}
	return data(t, rec)["id"].(string)
}
