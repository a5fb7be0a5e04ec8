package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/auth"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/middleware"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

func newOrderStore(t *testing.T, orders ...models.Order) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	t.Cleanup(st.Close)

	doc := st.Snapshot()
	doc.Orders = append(doc.Orders, orders...)
	require.NoError(t, st.Submit(doc))
	return st
}

func newRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("/api")
	authed.Use(middleware.RequireAuth)
	authed.GET("/orders", GetOrders(st))

	admin := r.Group("/api")
	admin.Use(middleware.RequireAuth, middleware.RequireAdmin)
	admin.PUT("/orders/:id/status", UpdateOrderStatus(st))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := auth.SignToken(user)
	require.NoError(t, err)
	return token
}

func TestGetOrdersFiltersByOwner(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t,
		models.Order{ID: "ORD-1", UserID: "u_alice", CreatedAt: time.Now().UTC()},
		models.Order{ID: "ORD-2", UserID: "u_bob", CreatedAt: time.Now().UTC()},
	)

	alice := models.User{ID: "u_alice", Name: "Alice", Email: "alice@example.com"}
	r := newRouter(st)

	w := doJSON(t, r, http.MethodGet, "/api/orders", signFor(t, alice), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	require.Equal(t, "ORD-1", resp.Orders[0].ID)
}

func TestGetOrdersAdminSeesAll(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t,
		models.Order{ID: "ORD-1", UserID: "u_alice"},
		models.Order{ID: "ORD-2", UserID: "u_bob"},
	)

	admin := models.User{ID: "u_admin", Name: "Admin", Email: "admin@example.com", IsAdmin: true}
	r := newRouter(st)

	w := doJSON(t, r, http.MethodGet, "/api/orders", signFor(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 2)
}

func TestGetOrdersRequiresAuth(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t)
	r := newRouter(st)

	w := doJSON(t, r, http.MethodGet, "/api/orders", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t, models.Order{ID: "ORD-1", UserID: "u_alice", Status: models.OrderStatusProcessing})

	admin := models.User{ID: "u_admin", IsAdmin: true}
	r := newRouter(st)

	w := doJSON(t, r, http.MethodPut, "/api/orders/ORD-1/status", signFor(t, admin),
		UpdateOrderStatusRequest{Status: "shipped"})
	require.Equal(t, http.StatusOK, w.Code)

	doc := st.Snapshot()
	require.Equal(t, models.OrderStatusShipped, doc.Order("ORD-1").Status)
}

func TestUpdateOrderStatusRejectsInvalidStatus(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t, models.Order{ID: "ORD-1", Status: models.OrderStatusProcessing})

	admin := models.User{ID: "u_admin", IsAdmin: true}
	r := newRouter(st)

	w := doJSON(t, r, http.MethodPut, "/api/orders/ORD-1/status", signFor(t, admin),
		UpdateOrderStatusRequest{Status: "teleported"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	doc := st.Snapshot()
	require.Equal(t, models.OrderStatusProcessing, doc.Order("ORD-1").Status)
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t, models.Order{ID: "ORD-1", Status: models.OrderStatusProcessing})

	user := models.User{ID: "u_alice"}
	r := newRouter(st)

	w := doJSON(t, r, http.MethodPut, "/api/orders/ORD-1/status", signFor(t, user),
		UpdateOrderStatusRequest{Status: "shipped"})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	st := newOrderStore(t)

	admin := models.User{ID: "u_admin", IsAdmin: true}
	r := newRouter(st)

	w := doJSON(t, r, http.MethodPut, "/api/orders/ORD-404/status", signFor(t, admin),
		UpdateOrderStatusRequest{Status: "shipped"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
