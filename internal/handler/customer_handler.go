package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"growthpro/internal/domain"
	"growthpro/internal/models"
	"growthpro/internal/repository"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customers *repository.CustomerRepository
	ledger    *repository.InteractionRepository
}

func NewCustomerHandler(customers *repository.CustomerRepository, ledger *repository.InteractionRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers, ledger: ledger}
}

type CreateCustomerRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info"`
	Notes       string `json:"notes"`
}

type UpdateCustomerRequest struct {
	UserID      uint    `json:"user_id" binding:"required"`
	Name        *string `json:"name"`
	ContactInfo *string `json:"contact_info"`
	Notes       *string `json:"notes"`
}

type ContactCustomerRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message"`
	SentBy  string `json:"sent_by" binding:"omitempty,oneof=user customer system"`
}

// Create adds a customer under the owner. last_contacted starts unset and
// is only ever advanced by recorded interactions.
// POST /customers/
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	cust := &models.Customer{
		UserID:      req.UserID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Notes:       req.Notes,
	}
	if err := h.customers.Create(cust); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// List returns the owner's customers.
// GET /customers/?user_id=&limit=&offset=
func (h *CustomerHandler) List(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.customers.ListByOwner(userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Search matches name, contact info and notes, owner-scoped.
// GET /customers/search?user_id=&query=
func (h *CustomerHandler) Search(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	query := c.Query("query")
	if query == "" {
		respondError(c, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest))
		return
	}
	list, err := h.customers.Search(userID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns one customer, owner-scoped.
// GET /customers/:id?user_id=
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	cust, err := h.customers.GetOwned(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// Update changes profile fields in place. last_contacted is not updatable
// here; only the ledger advances it.
// PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req UpdateCustomerRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	cust, err := h.customers.GetOwned(id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Name != nil {
		cust.Name = *req.Name
	}
	if req.ContactInfo != nil {
		cust.ContactInfo = *req.ContactInfo
	}
	if req.Notes != nil {
		cust.Notes = *req.Notes
	}
	if err := h.customers.Update(cust); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// Delete hard-deletes the customer row. Ledger entries and referral links
// are left in place; see the customer model for the orphan policy.
// DELETE /customers/:id?user_id=
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.customers.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "customer deleted"})
}

// Contact records an explicit contact action in the ledger, advancing
// last_contacted transactionally with the append.
// POST /customers/:id/contact
func (h *CustomerHandler) Contact(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req ContactCustomerRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	cust, err := h.customers.GetOwned(id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	message := req.Message
	if message == "" {
		message = "Contact made"
	}
	sentBy := domain.SentByUser(req.UserID)
	switch req.SentBy {
	case domain.SentByCustomer:
		sentBy = domain.SentByCustomer
	case domain.SentBySystem:
		sentBy = domain.SentBySystem
	}
	in, err := h.ledger.Record(cust.ID, message, sentBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"detail":         "contact recorded",
		"interaction_id": in.ID,
		"last_contacted": in.Timestamp,
	})
}

// Interactions returns the customer's ledger, newest first.
// GET /customers/:id/interactions?user_id=
func (h *CustomerHandler) Interactions(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.customers.GetOwned(id, userID); err != nil {
		respondError(c, err)
		return
	}
	list, err := h.ledger.History(id, domain.OrderDescending)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
