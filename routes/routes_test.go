package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rishabgems/invoicegen/auth"
	"rishabgems/invoicegen/handlers"
	"rishabgems/invoicegen/models"
	"rishabgems/invoicegen/services"
	"rishabgems/invoicegen/utils"
)

type stubRenderer struct{}

func (stubRenderer) Render(context.Context, models.InvoiceDocData) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}
func (stubRenderer) ContentType() string { return "application/pdf" }
func (stubRenderer) Extension() string   { return "pdf" }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPin("123456")
	require.NoError(t, err)

	svc := services.NewInvoiceService(services.Options{
		CompanyName: "Rishab Gems", BillPrefix: "RG", BillerName: "Mr. Manish Dugar", DueDays: 7,
	}, nil, stubRenderer{}, &utils.XLSXRenderer{})

	router := gin.New()
	SetupRoutes(router,
		&handlers.AuthHandler{
			Pins:   auth.NewPinChecker(hash),
			Tokens: auth.NewTokenManager("test-secret", time.Hour),
		},
		&handlers.InvoiceHandler{Service: svc},
	)
	return router
}

func do(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := do(router, http.MethodPost, "/api/v1/login", "", gin.H{"pin": "123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}

func TestHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/metrics", "", nil).Code)
}

func TestLoginRejectsWrongPin(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodPost, "/api/v1/login", "", gin.H{"pin": "000000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect PIN. Please try again.", decode(t, w)["error"])
}

func TestSecuredRoutesNeedToken(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodPost, "/api/v1/amount/words", "", gin.H{"amount": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/v1/amount/words", "garbage", gin.H{"amount": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAmountWords(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := do(router, http.MethodPost, "/api/v1/amount/words", token, gin.H{"amount": 100000})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "One Lakh", body["words"])
	assert.Equal(t, "Rupees One Lakh Only.", body["rupees"])

	w = do(router, http.MethodPost, "/api/v1/amount/words", token, gin.H{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/amount/words", token, gin.H{"amount": "100000000000000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/amount/words", token, gin.H{"amount": "1e200000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/billing/summary", token, gin.H{"amounts": []string{"1", "1e200000000"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/amount/words", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingSummary(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := do(router, http.MethodPost, "/api/v1/billing/summary", token, gin.H{"amounts": []string{"100.25", "50.50", "25.00"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "175.75", body["subtotal"])
	assert.Equal(t, "0.25", body["rounding"])
	assert.Equal(t, "176", body["net_payable"])
	assert.Equal(t, "Rupees One Hundred Seventy Six Only.", body["amount_in_words"])

	w = do(router, http.MethodPost, "/api/v1/billing/summary", token, gin.H{"amounts": []float64{-1}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "index 0")
}

func invoiceRequest() models.InvoiceRequest {
	return models.InvoiceRequest{
		Bill:          models.BillInfo{BillNo: "RG-1", ClientBillTo: "Shah Jewellers", ClientPhone: "9876543210"},
		PaymentMethod: models.PaymentUPI,
		Rows: []models.LineItemInput{
			{No: "1", Description: "Diamond Ring", Weight: "1.25", Rate: "45000"},
		},
	}
}

func TestPreviewInvoice(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := do(router, http.MethodPost, "/api/v1/invoices/preview", token, invoiceRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var inv models.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, "56250", inv.Summary.NetPayable.String())
	assert.Equal(t, "Rupees Fifty Six Thousand Two Hundred Fifty Only.", inv.AmountInWords)
}

func TestPreviewInvoiceValidation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	req := invoiceRequest()
	req.Rows[0].Rate = "lots"
	w := do(router, http.MethodPost, "/api/v1/invoices/preview", token, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, []any{"Row 1: Rate (₹) must be a number (e.g. 45000).; " +
		"Amount (₹) must be a number (e.g. 56250) or left blank for auto-calc."}, body["details"])

	req.Rows = nil
	w = do(router, http.MethodPost, "/api/v1/invoices/preview", token, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGenerateInvoiceDownload(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := do(router, http.MethodPost, "/api/v1/invoices/generate", token, invoiceRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "RishabGems_RG-1_Shah Jewellers_9876543210_")
	assert.Equal(t, "%PDF-stub", w.Body.String())

	w = do(router, http.MethodPost, "/api/v1/invoices/generate?format=xlsx", token, invoiceRequest())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w = do(router, http.MethodPost, "/api/v1/invoices/generate?format=pptx", token, invoiceRequest())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateInvoiceUploadDisabled(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := do(router, http.MethodPost, "/api/v1/invoices/generate?upload=true", token, invoiceRequest())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodGet, "/healthz", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
