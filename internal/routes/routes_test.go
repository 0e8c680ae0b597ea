package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database/databasetest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
	}
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return Setup(databasetest.New(t), testConfig())
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestWelcomeAndHealth(t *testing.T) {
	router := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to Smart Inventory")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCategoryItemScenario(t *testing.T) {
	router := newRouter(t)

	code, resp := do(t, router, http.MethodPost, "/api/category", `{"title":"Soft Materials"}`)
	require.Equal(t, http.StatusOK, code)
	soft := decode[map[string]interface{}](t, resp.Data)
	assert.Equal(t, "Soft Materials", soft["title"])
	assert.Nil(t, soft["parent_id"])

	code, resp = do(t, router, http.MethodPost, "/api/category", `{"title":"Silicon","parent_id":1}`)
	require.Equal(t, http.StatusOK, code)
	silicon := decode[map[string]interface{}](t, resp.Data)
	assert.EqualValues(t, 1, silicon["parent_id"])

	code, resp = do(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, code)
	roots := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, roots, 1)
	assert.Equal(t, "Soft Materials", roots[0]["title"])

	code, resp = do(t, router, http.MethodGet, "/api/categories/subcategories/1", "")
	require.Equal(t, http.StatusOK, code)
	subs := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, subs, 1)
	assert.Equal(t, "Silicon", subs[0]["title"])

	code, resp = do(t, router, http.MethodPost, "/api/item", `{"title":"Bobine PLA","price":19.9,"category_id":2}`)
	require.Equal(t, http.StatusOK, code)
	item := decode[map[string]interface{}](t, resp.Data)
	assert.EqualValues(t, 2, item["category_id"])

	code, resp = do(t, router, http.MethodGet, "/api/categories/2/items", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 1)

	code, resp = do(t, router, http.MethodDelete, "/api/category/2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]interface{}{"id": float64(2)}, decode[map[string]interface{}](t, resp.Data))

	code, resp = do(t, router, http.MethodGet, "/api/category/2", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Category not found", resp.Message)

	code, resp = do(t, router, http.MethodGet, "/api/item/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, decode[map[string]interface{}](t, resp.Data)["category_id"])

	code, _ = do(t, router, http.MethodDelete, "/api/item/1", "")
	require.Equal(t, http.StatusOK, code)

	code, resp = do(t, router, http.MethodGet, "/api/item/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Item not found", resp.Message)
}

func TestConflicts(t *testing.T) {
	router := newRouter(t)

	requests := []struct {
		path    string
		body    string
		message string
	}{
		{"/api/user", `{"uid":"04A1B2C3"}`, "User already exists"},
		{"/api/cabinet", `{"id":"CAB-1"}`, "Cabinet already exists"},
		{"/api/category", `{"title":"Tools"}`, "Category already exists"},
		{"/api/item", `{"title":"Drill"}`, "Item already exists"},
		{"/api/order-request", `{"item_id":1,"user_id":"04A1B2C3"}`, "Order already requested by this user"},
		{"/api/storage-unit", `{"id":7,"item_id":1,"cabinet_id":"CAB-1"}`, "Storage unit ID already assigned"},
	}

	for _, r := range requests {
		code, _ := do(t, router, http.MethodPost, r.path, r.body)
		require.Equal(t, http.StatusOK, code, r.path)

		code, resp := do(t, router, http.MethodPost, r.path, r.body)
		assert.Equal(t, http.StatusConflict, code, r.path)
		assert.Equal(t, r.message, resp.Message)
	}
}

func TestNotFoundReferents(t *testing.T) {
	router := newRouter(t)

	cases := []struct {
		method  string
		path    string
		body    string
		message string
	}{
		{http.MethodGet, "/api/user/nobody", "", "User not found"},
		{http.MethodDelete, "/api/cabinet/nope", "", "Cabinet not found"},
		{http.MethodPost, "/api/category", `{"title":"Orphan","parent_id":9}`, "Parent category not found"},
		{http.MethodGet, "/api/categories/subcategories/9", "", "Parent category not found"},
		{http.MethodGet, "/api/categories/9/items", "", "Category not found"},
		{http.MethodPost, "/api/item", `{"title":"Lost","category_id":9}`, "Category not found"},
		{http.MethodPost, "/api/order-request", `{"item_id":9,"user_id":"nobody"}`, "Item or user not found"},
		{http.MethodGet, "/api/order-requests/item/9", "", "Item not found"},
		{http.MethodGet, "/api/order-requests/user/nobody", "", "User not found"},
		{http.MethodDelete, "/api/order-request/9", "", "Order request not found"},
		{http.MethodGet, "/api/storage-unit/9", "", "Storage unit not found"},
		{http.MethodGet, "/api/storage-units/cabinet/nope", "", "Cabinet not found"},
		{http.MethodPost, "/api/storage-unit", `{"id":1,"item_id":9}`, "Item not found"},
		{http.MethodPost, "/api/unlock-attempt", `{"user_id":"nobody","cabinet_id":"nope"}`, "User or cabinet not found"},
		{http.MethodGet, "/api/unlock-attempts/cabinet/nope", "", "Cabinet not found"},
		{http.MethodGet, "/api/unlock-attempts/user/nobody", "", "User not found"},
		{http.MethodGet, "/api/unlock-attempts/cabinet/nope/user/nobody", "", "User or cabinet not found"},
	}

	for _, tc := range cases {
		code, resp := do(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, code, tc.path)
		assert.Equal(t, tc.message, resp.Message, tc.path)
	}
}

func TestBadRequests(t *testing.T) {
	router := newRouter(t)

	code, _ := do(t, router, http.MethodPost, "/api/user", `{"uid":`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodGet, "/api/item/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodGet, "/api/order-requests/state/open", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodDelete, "/api/unlock-attempts/days/-1", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp := do(t, router, http.MethodPost, "/api/user", `{"uid":"   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "notblank", decode[map[string]string](t, resp.Errors)["uid"])

	code, resp = do(t, router, http.MethodPost, "/api/user", `{"uid":"123456789012"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "max=11", decode[map[string]string](t, resp.Errors)["uid"])

	code, resp = do(t, router, http.MethodPost, "/api/item", `{"title":"   ","price":-1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "notblank", decode[map[string]string](t, resp.Errors)["title"])

	code, resp = do(t, router, http.MethodPost, "/api/item", `{"title":"Refund voucher","price":-1}`)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, -1, decode[map[string]interface{}](t, resp.Data)["price"])

	code, resp = do(t, router, http.MethodPost, "/api/storage-unit", `{"item_id":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "required", decode[map[string]string](t, resp.Errors)["id"])
}

func TestUserLifecycle(t *testing.T) {
	router := newRouter(t)

	code, _ := do(t, router, http.MethodPost, "/api/user", `{"uid":"u1","firstname":"Ada","lastname":"Lovelace"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, router, http.MethodPost, "/api/cabinet", `{"id":"CAB-1","description":"Lab"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, router, http.MethodPost, "/api/item", `{"title":"Solder"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, router, http.MethodPost, "/api/order-request", `{"item_id":1,"user_id":"u1"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, router, http.MethodPost, "/api/unlock-attempt", `{"user_id":"u1","cabinet_id":"CAB-1","granted":true}`)
	require.Equal(t, http.StatusOK, code)

	code, resp := do(t, router, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, code)
	users := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, users, 1)
	assert.Equal(t, "Ada", users[0]["firstname"])

	code, resp = do(t, router, http.MethodGet, "/api/order-requests/state/0", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 1)

	code, resp = do(t, router, http.MethodGet, "/api/unlock-attempts/cabinet/CAB-1/user/u1", "")
	require.Equal(t, http.StatusOK, code)
	attempts := decode[[]map[string]interface{}](t, resp.Data)
	require.Len(t, attempts, 1)
	assert.Equal(t, true, attempts[0]["granted"])

	code, resp = do(t, router, http.MethodDelete, "/api/user/u1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]interface{}{"uid": "u1"}, decode[map[string]interface{}](t, resp.Data))

	code, resp = do(t, router, http.MethodGet, "/api/order-requests", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]map[string]interface{}](t, resp.Data))

	code, resp = do(t, router, http.MethodGet, "/api/unlock-attempts", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]map[string]interface{}](t, resp.Data))
}

func TestPurgeUnlockAttempts(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/user", `{"uid":"u1"}`)
	do(t, router, http.MethodPost, "/api/cabinet", `{"id":"CAB-1"}`)
	code, _ := do(t, router, http.MethodPost, "/api/unlock-attempt", `{"user_id":"u1","cabinet_id":"CAB-1"}`)
	require.Equal(t, http.StatusOK, code)

	code, resp := do(t, router, http.MethodDelete, "/api/unlock-attempts/days/7", "")
	require.Equal(t, http.StatusOK, code)
	result := decode[map[string]interface{}](t, resp.Data)
	assert.EqualValues(t, 7, result["days"])
	assert.EqualValues(t, 0, result["deleted"])

	for _, n := range []string{"9223372036854775807", "4611686018427387904", "106751991167300"} {
		code, resp = do(t, router, http.MethodDelete, "/api/unlock-attempts/days/"+n, "")
		require.Equal(t, http.StatusOK, code, n)
		assert.EqualValues(t, 0, decode[map[string]interface{}](t, resp.Data)["deleted"], n)
	}

	code, resp = do(t, router, http.MethodGet, "/api/unlock-attempts", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 1)
}

func TestStorageUnitLifecycle(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/api/cabinet", `{"id":"CAB-1"}`)
	do(t, router, http.MethodPost, "/api/item", `{"title":"Resistor"}`)

	code, resp := do(t, router, http.MethodPost, "/api/storage-unit", `{"id":42,"item_id":1,"cabinet_id":"CAB-1","state":2}`)
	require.Equal(t, http.StatusOK, code)
	unit := decode[map[string]interface{}](t, resp.Data)
	assert.EqualValues(t, 42, unit["id"])
	assert.EqualValues(t, 2, unit["state"])
	assert.Equal(t, false, unit["verified"])

	code, resp = do(t, router, http.MethodGet, "/api/storage-units/cabinet/CAB-1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]interface{}](t, resp.Data), 1)

	code, _ = do(t, router, http.MethodDelete, "/api/cabinet/CAB-1", "")
	require.Equal(t, http.StatusOK, code)

	code, resp = do(t, router, http.MethodGet, "/api/storage-unit/42", "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, decode[map[string]interface{}](t, resp.Data)["cabinet_id"])

	code, _ = do(t, router, http.MethodDelete, "/api/storage-unit/42", "")
	require.Equal(t, http.StatusOK, code)
}

func TestStoreFailureIsInternalError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cabinets"`)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	router := Setup(db, testConfig())
	code, resp := do(t, router, http.MethodGet, "/api/cabinets", "")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
