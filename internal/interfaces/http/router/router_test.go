package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	financeapp "github.com/opsportal/backend/internal/application/finance"
	inventoryapp "github.com/opsportal/backend/internal/application/inventory"
	orderapp "github.com/opsportal/backend/internal/application/order"
	partnerapp "github.com/opsportal/backend/internal/application/partner"
	pricingapp "github.com/opsportal/backend/internal/application/pricing"
	qualityapp "github.com/opsportal/backend/internal/application/quality"
	reportapp "github.com/opsportal/backend/internal/application/report"
	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/infrastructure/auth"
	"github.com/opsportal/backend/internal/infrastructure/config"
	"github.com/opsportal/backend/internal/infrastructure/persistence"
	"github.com/opsportal/backend/internal/infrastructure/persistence/models"
	"github.com/opsportal/backend/internal/infrastructure/storage"
	"github.com/opsportal/backend/internal/interfaces/http/dto"
	"github.com/opsportal/backend/internal/interfaces/http/handler"
	"github.com/opsportal/backend/internal/interfaces/http/router"
)

type testAPI struct {
	engine      *gin.Engine
	token       string
	workerToken string
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.InventoryItemModel{},
		&models.InventoryMovementModel{},
		&models.MaterialUsageModel{},
		&models.ExpenseModel{},
		&models.DefectRecordModel{},
	))

	clientRepo := persistence.NewGormClientRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	itemRepo := persistence.NewGormInventoryItemRepository(db)
	movementRepo := persistence.NewGormInventoryMovementRepository(db)
	usageRepo := persistence.NewGormMaterialUsageRepository(db)
	expenseRepo := persistence.NewGormExpenseRepository(db)
	defectRepo := persistence.NewGormDefectRecordRepository(db)
	reportRepo := persistence.NewGormReportRepository(db)

	attachments, err := storage.NewLocalAttachmentStore(t.TempDir())
	require.NoError(t, err)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "router-test-secret-with-enough-length",
		AccessTokenExpiration: time.Hour,
		Issuer:                "opsportal-test",
	})
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      uuid.New(),
		Username:    "tester",
		IsSuperuser: true,
	})
	require.NoError(t, err)
	workerPair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "worker",
	})
	require.NoError(t, err)

	r := router.New(router.Config{JWTService: jwtService})
	r.Register(
		handler.NewSystemHandler(db, "test"),
		handler.NewClientHandler(partnerapp.NewClientService(clientRepo)),
		handler.NewOrderHandler(orderapp.NewOrderService(orderRepo, clientRepo, order.PermissivePolicy{})),
		handler.NewInventoryHandler(
			inventoryapp.NewItemService(itemRepo),
			inventoryapp.NewMovementService(movementRepo, itemRepo),
			inventoryapp.NewUsageService(usageRepo, itemRepo, orderRepo),
		),
		handler.NewExpenseHandler(financeapp.NewExpenseService(expenseRepo, attachments)),
		handler.NewDefectHandler(qualityapp.NewDefectService(defectRepo, orderRepo)),
		handler.NewCalculatorHandler(pricingapp.NewCalculatorService(itemRepo)),
		handler.NewReportHandler(reportapp.NewReportService(reportRepo, orderRepo, expenseRepo)),
	)

	return &testAPI{engine: r.Engine(), token: pair.AccessToken, workerToken: workerPair.AccessToken}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	return a.doAs(t, a.token, method, path, body)
}

func (a *testAPI) doAs(t *testing.T, token, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success, "body: %s", w.Body.String())
	return resp.Data
}

func TestRouterHealthSkipsAuth(t *testing.T) {
	api := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouterRejectsMissingToken(t *testing.T) {
	api := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeTokenInvalid, resp.Error.Code)
}

func TestRouterClientOrderFlow(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/clients", gin.H{
		"name":           "Oak & Pine Ltd",
		"contact_person": "J. Smith",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientID := decodeData(t, w)["id"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"client_id": clientID,
		"title":     "Kitchen refit",
		"items": []gin.H{
			{"title": "Cabinet", "quantity": "2", "unit_price": "150"},
			{"title": "Worktop", "quantity": "1", "unit_price": "300"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData(t, w)
	orderID := created["id"].(string)
	assert.Equal(t, "600", created["total_amount"])

	w = api.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/orders?page=1&page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []json.RawMessage `json:"data"`
		Meta *dto.Meta         `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.NotNil(t, listResp.Meta)
	assert.Equal(t, int64(1), listResp.Meta.Total)
	assert.Len(t, listResp.Data, 1)
}

func TestRouterLockedOrderEdits(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/clients", gin.H{"name": "Oak & Pine Ltd"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientID := decodeData(t, w)["id"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/orders", gin.H{
		"client_id": clientID,
		"title":     "Kitchen refit",
		"items": []gin.H{
			{"title": "Cabinet", "quantity": "2", "unit_price": "150"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := decodeData(t, w)["id"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/lock", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.doAs(t, api.workerToken, http.MethodPut, "/api/v1/orders/"+orderID+"/items", gin.H{
		"items": []gin.H{},
	})
	assert.Equal(t, http.StatusLocked, w.Code, w.Body.String())

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeOrderLocked, resp.Error.Code)

	w = api.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "300", decodeData(t, w)["total_amount"])
}

func TestRouterMonthlyReport(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/reports/monthly?month=2025-13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = api.do(t, http.MethodPost, "/api/v1/expenses", gin.H{
		"supplier_name": "Timber & Co",
		"expense_date":  "2025-04-02T00:00:00Z",
		"amount":        "149.90",
		"description":   "plywood delivery",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/v1/reports/monthly?month=2025-04", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "2025-04", data["month"])

	expenseRows, ok := data["expense_rows"].([]any)
	require.True(t, ok)
	require.Len(t, expenseRows, 1)

	incomeRows, ok := data["income_rows"].([]any)
	require.True(t, ok)
	assert.Empty(t, incomeRows)
}

func TestRouterCalculator(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/calculator", gin.H{
		"project_name":   "Garden shed",
		"margin_percent": "10",
		"entries": []gin.H{
			{"description": "Timber", "quantity": "4", "unit_price": "25"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "100", data["subtotal"])
	assert.Equal(t, "10", data["percent_amount"])
	assert.Equal(t, "110", data["grand_total"])
}
