package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/recibos/ticketero-api/internal/application/service"
	"github.com/recibos/ticketero-api/internal/domain/entity"
	"github.com/recibos/ticketero-api/internal/infrastructure/storage"
	"go.uber.org/zap"
)

type stubCustomerRepo struct{}

func (stubCustomerRepo) FindByOrderID(ctx context.Context, orderID string) (*entity.CustomerRecord, error) {
	return &entity.CustomerRecord{TaxID: orderID, FullName: "Luis"}, nil
}

type stubLineItemRepo struct {
	items map[string][]entity.LineItem
}

func (s stubLineItemRepo) FindAllByOrderID(ctx context.Context, orderID string) ([]entity.LineItem, error) {
	return s.items[orderID], nil
}

type stubReceiptLogRepo struct{}

func (stubReceiptLogRepo) Create(ctx context.Context, log *entity.ReceiptLog) error { return nil }

type stubRenderer struct{}

func (stubRenderer) Render(ticket *entity.Ticket) ([]byte, error) { return []byte("%PDF"), nil }

type stubBlobStore struct{}

func (stubBlobStore) Put(ctx context.Context, name string, data []byte, contentType string) (*storage.PutResult, error) {
	return &storage.PutResult{Name: name, URL: "https://files.example.com/" + name}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewTicketService(
		stubCustomerRepo{},
		stubLineItemRepo{items: map[string][]entity.LineItem{
			"1002": {{Code: "P1", LineTotal: 11.80}, {Code: "P2", LineTotal: 23.60}},
		}},
		stubReceiptLogRepo{},
		service.NewTaxCalculator(0.18),
		stubRenderer{},
		stubBlobStore{},
		zap.NewNop(),
	)

	router := gin.New()
	router.POST("/api/v1/tickets", NewTicketHandler(svc).Generate)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

func TestGenerate_Success(t *testing.T) {
	router := newTestRouter()

	w, resp := doRequest(t, router, `{"id_orden":"1002","fecha":"12/08/2025"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if resp["status"] != "success" {
		t.Errorf("status field = %v, want success", resp["status"])
	}
	if resp["fileName"] != "TICKET_1002_12-08-2025.pdf" {
		t.Errorf("fileName = %v", resp["fileName"])
	}
	if resp["fileUrl"] != "https://files.example.com/TICKET_1002_12-08-2025.pdf" {
		t.Errorf("fileUrl = %v", resp["fileUrl"])
	}
}

func TestGenerate_NumericOrderIDIsAccepted(t *testing.T) {
	router := newTestRouter()

	w, resp := doRequest(t, router, `{"id_orden":1002,"fecha":"12/08/2025"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if resp["status"] != "success" {
		t.Errorf("status field = %v, want success", resp["status"])
	}
	if resp["fileName"] != "TICKET_1002_12-08-2025.pdf" {
		t.Errorf("fileName = %v, want the same file as the string form", resp["fileName"])
	}
}

func TestGenerate_NonJSONBodyIsRequestFormatError(t *testing.T) {
	router := newTestRouter()

	w, resp := doRequest(t, router, "id_orden=1002")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["status"] != "error" {
		t.Errorf("status field = %v, want error", resp["status"])
	}
}

func TestGenerate_MissingOrderIDIsValidationError(t *testing.T) {
	router := newTestRouter()

	w, resp := doRequest(t, router, `{"fecha":"12/08/2025"}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if resp["status"] != "error" {
		t.Errorf("status field = %v, want error", resp["status"])
	}
	if _, ok := resp["fileName"]; ok {
		t.Error("error response must not carry fileName")
	}
}

func TestGenerate_UnknownOrderIsNotFound(t *testing.T) {
	router := newTestRouter()

	w, resp := doRequest(t, router, `{"id_orden":"9999"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if resp["status"] != "error" {
		t.Errorf("status field = %v, want error", resp["status"])
	}
}
