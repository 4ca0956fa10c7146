package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/httperr"
	"github.com/devsquadbr/crm-template/internal/middleware"
	uc "github.com/devsquadbr/crm-template/internal/usecase/customer"
)

// fakeCustomerService records calls and returns canned results.
type fakeCustomerService struct {
	lastOwner string
	customer  *dto.Customer
}

func (f *fakeCustomerService) Create(ctx context.Context, ownerID string, in dto.Customer) (string, error) {
	f.lastOwner = ownerID
	if in.Name == "" {
		return "", httperr.ErrBusinessMsg(uc.CodeNameRequired, "Customer name is required")
	}
	return "new-id", nil
}

func (f *fakeCustomerService) Get(ctx context.Context, customerID, ownerID string) (*dto.Customer, error) {
	f.lastOwner = ownerID
	if f.customer == nil || f.customer.ID != customerID {
		return nil, httperr.ErrBusinessMsg(uc.CodeNotFound, "Customer not found")
	}
	return f.customer, nil
}

func (f *fakeCustomerService) Update(ctx context.Context, customerID, ownerID string, in dto.Customer) error {
	return nil
}

func (f *fakeCustomerService) Delete(ctx context.Context, customerID, ownerID string) error {
	return nil
}

func (f *fakeCustomerService) Search(ctx context.Context, ownerID string, search dto.Search) (*dto.SearchResponse[dto.CustomerListItem], error) {
	return &dto.SearchResponse[dto.CustomerListItem]{Results: []dto.CustomerListItem{}}, nil
}

func (f *fakeCustomerService) Seed(ctx context.Context, ownerID string, number int) error {
	return nil
}

var _ CustomerService = (*fakeCustomerService)(nil)

func newTestRouter(svc CustomerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// stand-in for AuthMiddleware
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "caller-1")
	})

	h := NewCustomerHandler(svc)
	r.POST("/customer", h.Create)
	r.GET("/customer/:id", h.Get)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCustomerReturnsID(t *testing.T) {
	svc := &fakeCustomerService{}
	r := newTestRouter(svc)

	w := postJSON(r, "/customer", dto.Customer{Name: "Ann"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp["id"] != "new-id" {
		t.Errorf("id = %q, want new-id", resp["id"])
	}
	if svc.lastOwner != "caller-1" {
		t.Errorf("ownerID = %q, want caller-1", svc.lastOwner)
	}
}

func TestCreateCustomerWithoutName(t *testing.T) {
	r := newTestRouter(&fakeCustomerService{})

	w := postJSON(r, "/customer", dto.Customer{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp httperr.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Code != uc.CodeNameRequired {
		t.Errorf("error_code = %q, want %s", resp.Code, uc.CodeNameRequired)
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	r := newTestRouter(&fakeCustomerService{})

	req := httptest.NewRequest(http.MethodGet, "/customer/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp httperr.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Code != uc.CodeNotFound {
		t.Errorf("error_code = %q, want %s", resp.Code, uc.CodeNotFound)
	}
}

func TestGetCustomerFullShape(t *testing.T) {
	svc := &fakeCustomerService{customer: &dto.Customer{
		ID: "c1", Name: "Ann", Email: "ann@example.com", Notes: "vip",
	}}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/customer/c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp dto.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Email != "ann@example.com" || resp.Notes != "vip" {
		t.Errorf("get-by-id must return the full shape, got %+v", resp)
	}
}
