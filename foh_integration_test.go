package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/nakhazaman/restaurant-foh/config"
	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/router"
	"github.com/nakhazaman/restaurant-foh/session"
	"github.com/nakhazaman/restaurant-foh/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeUpstream meniru API pusat restoran secukupnya untuk flow utama.
type fakeUpstream struct {
	mu            sync.Mutex
	orders        []map[string]interface{}
	lastOrderBody map[string]interface{}
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("upstream-secret"))
	assert.NoError(t, err)
	return signed
}

func (u *fakeUpstream) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, payload interface{}) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)

		role := "customer"
		if strings.HasPrefix(creds["email"], "waiter") {
			role = "waiter"
		}
		writeJSON(w, map[string]interface{}{
			"success": true,
			"message": "تم تسجيل الدخول",
			"data": map[string]interface{}{
				"token": signTestToken(t, role),
				"user": map[string]interface{}{
					"_id":      "u1",
					"fullName": "Test User",
					"email":    creds["email"],
					"role":     role,
				},
			},
		})
	})

	mux.HandleFunc("GET /menu/items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"_id": "m1", "name": "Kebab", "price": 10.0, "categoryId": "c1"},
				{"_id": "m2", "name": "Hummus", "price": 5.0, "categoryId": "c1"},
			},
		})
	})

	mux.HandleFunc("GET /table", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"_id": "t1", "tableNumber": 1, "capacity": 4, "status": "available"},
				{"_id": "t2", "tableNumber": 2, "capacity": 2, "status": "occupied"},
			},
		})
	})

	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]interface{}{"success": false, "message": "unauthorized"})
			return
		}
		u.mu.Lock()
		orders := append([]map[string]interface{}(nil), u.orders...)
		u.mu.Unlock()
		writeJSON(w, map[string]interface{}{"success": true, "data": orders})
	})

	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)

		u.mu.Lock()
		u.lastOrderBody = body
		order := map[string]interface{}{
			"_id":       "order-1",
			"tableId":   body["tableId"],
			"items":     body["items"],
			"status":    "pending",
			"createdAt": time.Now().UTC().Format(time.RFC3339),
		}
		u.orders = append(u.orders, order)
		u.mu.Unlock()

		writeJSON(w, map[string]interface{}{
			"success": true,
			"message": "تم إنشاء الطلب بنجاح",
			"data":    order,
		})
	})

	mux.HandleFunc("PUT /orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		orderID := r.PathValue("id")
		u.mu.Lock()
		for _, order := range u.orders {
			if order["_id"] == orderID {
				order["status"] = "served"
			}
		}
		u.mu.Unlock()
		writeJSON(w, map[string]interface{}{"success": true})
	})

	return mux
}

func setupFOH(t *testing.T) (*gin.Engine, *fakeUpstream, func()) {
	t.Helper()
	upstream := &fakeUpstream{}
	server := httptest.NewServer(upstream.handler(t))

	cfg := config.Config{
		ServerURL:     server.URL,
		HTTPTimeout:   5 * time.Second,
		SessionTTL:    time.Hour,
		AllowedOrigin: "http://localhost:5173",
	}
	gw := gateway.NewClient(cfg.ServerURL, cfg.HTTPTimeout)
	sessions := session.NewManager(gw, cfg.SessionTTL)

	return router.SetupRouter(cfg, gw, sessions), upstream, server.Close
}

func doJSON(t *testing.T, r *gin.Engine, method, path, cookie string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("session cookie not set")
	return ""
}

func TestCustomerOrderWorkflow(t *testing.T) {
	r, upstream, cleanup := setupFOH(t)
	defer cleanup()

	cookie := loginAs(t, r, "guest@example.com")

	// Submit tanpa meja ditolak tanpa menyentuh upstream.
	w := doJSON(t, r, http.MethodPost, "/orders", cookie, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, upstream.lastOrderBody)

	// Isi cart: Kebab x2, Hummus x1.
	w = doJSON(t, r, http.MethodPost, "/cart/items", cookie, map[string]string{"menuItemId": "m1"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/cart/items/m1/increment", cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/cart/items", cookie, map[string]string{"menuItemId": "m2"})
	assert.Equal(t, http.StatusOK, w.Code)

	var cartResp struct {
		Data struct {
			Count int     `json:"count"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Equal(t, 2, cartResp.Data.Count)
	assert.InDelta(t, 25, cartResp.Data.Total, 0.001)

	// Pilih meja yang available lalu submit.
	w = doJSON(t, r, http.MethodPut, "/order-draft", cookie, map[string]string{"tableId": "t1", "notes": " بدون بصل "})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/orders", cookie, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "تم إنشاء الطلب بنجاح")

	upstream.mu.Lock()
	body := upstream.lastOrderBody
	upstream.mu.Unlock()
	assert.Equal(t, "t1", body["tableId"])
	assert.Equal(t, "بدون بصل", body["notes"])
	assert.Len(t, body["items"], 2)

	// Setelah sukses: cart dan draft kosong lagi.
	w = doJSON(t, r, http.MethodGet, "/cart", cookie, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Zero(t, cartResp.Data.Count)

	// Riwayat customer memuat order barunya.
	w = doJSON(t, r, http.MethodGet, "/orders", cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order-1")
	assert.Contains(t, w.Body.String(), `"isWaiter":false`)
}

func TestWaiterDeliversOrder(t *testing.T) {
	r, upstream, cleanup := setupFOH(t)
	defer cleanup()

	upstream.orders = append(upstream.orders, map[string]interface{}{
		"_id":       "order-7",
		"tableId":   "t2",
		"items":     []map[string]interface{}{{"menuItemId": "m1", "quantity": 1}},
		"status":    "pending",
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	})

	cookie := loginAs(t, r, "waiter@example.com")

	w := doJSON(t, r, http.MethodGet, "/orders", cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isWaiter":true`)
	assert.Contains(t, w.Body.String(), `"canDeliver":true`)

	w = doJSON(t, r, http.MethodPut, "/orders/order-7/deliver", cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	upstream.mu.Lock()
	status := upstream.orders[0]["status"]
	upstream.mu.Unlock()
	assert.Equal(t, "served", status)

	// Setelah refetch, aksi deliver mati untuk order yang sudah served.
	w = doJSON(t, r, http.MethodGet, "/orders", cookie, nil)
	assert.Contains(t, w.Body.String(), `"canDeliver":false`)
}

func TestCustomerCannotDeliver(t *testing.T) {
	r, upstream, cleanup := setupFOH(t)
	defer cleanup()

	upstream.orders = append(upstream.orders, map[string]interface{}{
		"_id":    "order-7",
		"status": "pending",
	})

	cookie := loginAs(t, r, "guest@example.com")
	w := doJSON(t, r, http.MethodPut, "/orders/order-7/deliver", cookie, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMissingSessionRedirectsToLogin(t *testing.T) {
	r, _, cleanup := setupFOH(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAvailableTablesEndpoint(t *testing.T) {
	r, _, cleanup := setupFOH(t)
	defer cleanup()

	cookie := loginAs(t, r, "guest@example.com")
	w := doJSON(t, r, http.MethodGet, "/tables/available", cookie, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"t1"`)
	assert.NotContains(t, w.Body.String(), `"t2"`)
}
