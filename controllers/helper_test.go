package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/qwerty0999999/payment-projek/config"
	"github.com/qwerty0999999/payment-projek/controllers"
	"github.com/qwerty0999999/payment-projek/models"
	"github.com/qwerty0999999/payment-projek/routes"
	"github.com/qwerty0999999/payment-projek/session"
	"github.com/qwerty0999999/payment-projek/storage"
)

// testServer membungkus router lengkap di atas direktori data sementara.
type testServer struct {
	router *gin.Engine
	store  *storage.Store
	ctrl   *controllers.Controller
	cfg    *config.AppConfig
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	store, err := storage.NewStore(dataDir)
	require.NoError(t, err)

	cfg := &config.AppConfig{
		Port:          "3000",
		Env:           "test",
		DataDir:       dataDir,
		UploadDir:     t.TempDir(),
		SessionKey:    []byte("rahasia-rahasia-rahasia-rahasia!"),
		SessionMaxAge: 3600,
	}
	ctrl := &controllers.Controller{
		Store:    store,
		Activity: storage.NewActivityLog(store),
		Sessions: session.NewManager(cfg.SessionKey, cfg.SessionMaxAge),
		Cfg:      cfg,
	}
	return &testServer{
		router: routes.Setup(ctrl, cfg.Env),
		store:  store,
		ctrl:   ctrl,
		cfg:    cfg,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// login memasukkan kredensial lewat rute /auth dan mengembalikan cookie
// sesi yang diterbitkan server.
func (s *testServer) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	w := s.do(t, http.MethodPost, "/auth", gin.H{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeBody(t, w)["success"])
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// createOrder mengirim form pembayaran multipart lengkap dengan bukti
// transfer dan mengembalikan nomor invoice yang diterbitkan.
func (s *testServer) createOrder(t *testing.T, nama, produk, harga string) string {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("nama", nama))
	require.NoError(t, writer.WriteField("produk", produk))
	require.NoError(t, writer.WriteField("harga", harga))
	part, err := writer.CreateFormFile("buktiTransfer", "bukti.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("isi bukti transfer"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/bayar", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	invoice, ok := body["invoiceId"].(string)
	require.True(t, ok)
	return invoice
}

// orders mengambil seluruh pesanan lewat rute publik /api/data.
func (s *testServer) orders(t *testing.T) []models.Order {
	t.Helper()
	w := s.do(t, http.MethodGet, "/api/data", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	return orders
}

// logsByAction menyaring log aktivitas berdasarkan nama aksi.
func (s *testServer) logsByAction(action string) []models.LogEntry {
	var matched []models.LogEntry
	for _, e := range s.ctrl.Activity.Entries() {
		if e.Action == action {
			matched = append(matched, e)
		}
	}
	return matched
}
