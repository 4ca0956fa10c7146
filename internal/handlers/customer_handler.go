package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/httperr"
	"github.com/devsquadbr/crm-template/internal/httpresp"
	"github.com/devsquadbr/crm-template/internal/middleware"
)

type CustomerService interface {
	Create(ctx context.Context, ownerID string, in dto.Customer) (string, error)
	Get(ctx context.Context, customerID, ownerID string) (*dto.Customer, error)
	Update(ctx context.Context, customerID, ownerID string, in dto.Customer) error
	Delete(ctx context.Context, customerID, ownerID string) error
	Search(ctx context.Context, ownerID string, search dto.Search) (*dto.SearchResponse[dto.CustomerListItem], error)
	Seed(ctx context.Context, ownerID string, number int) error
}

type CustomerHandler struct {
	service CustomerService
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	var req dto.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	id, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		writeError(c, err, "failed_to_create_customer")
		return
	}

	httpresp.CreatedID(c, id)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	customer, err := h.service.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		writeError(c, err, "failed_to_get_customer")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	var req dto.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request.Context(), id, ownerID, req); err != nil {
		writeError(c, err, "failed_to_update_customer")
		return
	}

	httpresp.CreatedID(c, id)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		writeError(c, err, "failed_to_delete_customer")
		return
	}

	httpresp.OKMessage(c, "Customer deleted")
}

func (h *CustomerHandler) Search(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	var req dto.Search
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.service.Search(c.Request.Context(), ownerID, req)
	if err != nil {
		writeError(c, err, "failed_to_search_customers")
		return
	}

	httpresp.OK(c, resp)
}

func (h *CustomerHandler) Seed(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(string)

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 || number > 1000 {
		httperr.BadRequest(c, "invalid_seed_number", "Seed number must be between 1 and 1000")
		return
	}

	if err := h.service.Seed(c.Request.Context(), ownerID, number); err != nil {
		writeError(c, err, "failed_to_seed_customers")
		return
	}

	httpresp.OKMessage(c, "Customers seeded")
}
