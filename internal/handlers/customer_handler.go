package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
	"github.com/BruksfildServices01/appointment-manager/internal/httpresp"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
	uccustomer "github.com/BruksfildServices01/appointment-manager/internal/usecase/customer"
)

type CustomerHandler struct {
	save   *uccustomer.SaveCustomer
	delete *uccustomer.DeleteCustomer
	list   *uccustomer.ListCustomers
}

func NewCustomerHandler(
	save *uccustomer.SaveCustomer,
	del *uccustomer.DeleteCustomer,
	list *uccustomer.ListCustomers,
) *CustomerHandler {
	return &CustomerHandler{save: save, delete: del, list: list}
}

type SaveCustomerRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

func (r SaveCustomerRequest) details() domain.Details {
	return domain.Details{
		Name:       r.Name,
		Address:    r.Address,
		Address2:   r.Address2,
		City:       r.City,
		Country:    r.Country,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	h.saveCustomer(c, 0, http.StatusCreated)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	h.saveCustomer(c, id, http.StatusOK)
}

func (h *CustomerHandler) saveCustomer(c *gin.Context, id uint, status int) {
	var req SaveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	row, err := h.save.Execute(c.Request.Context(), uccustomer.SaveCustomerInput{
		CustomerID: id,
		ActorID:    c.MustGet(middleware.ContextUserID).(uint),
		Actor:      c.GetString(middleware.ContextUsername),
		Details:    req.details(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(status, row)
}

// ======================================================
// DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)
	if err := h.delete.Execute(c.Request.Context(), actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
