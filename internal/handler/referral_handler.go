package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"growthpro/internal/domain"
	"growthpro/internal/models"
	"growthpro/internal/repository"
	"growthpro/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referrals *repository.ReferralRepository
	svc       *service.ReferralService
}

func NewReferralHandler(referrals *repository.ReferralRepository, svc *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referrals: referrals, svc: svc}
}

type CreateReferralRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	CustomerID   *uint  `json:"customer_id"`
	ReferredBy   string `json:"referred_by"`
	Status       string `json:"status" binding:"omitempty,oneof=pending accepted completed"`
	RewardPoints int    `json:"reward_points" binding:"gte=0"`
}

type UpdateReferralRequest struct {
	UserID       uint   `json:"user_id" binding:"required"`
	Status       string `json:"status" binding:"omitempty,oneof=pending accepted completed"`
	RewardPoints *int   `json:"reward_points" binding:"omitempty,gte=0"`
}

// Create records a new referral lead, defaulting to pending.
// POST /referrals/
func (h *ReferralHandler) Create(c *gin.Context) {
	var req CreateReferralRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	status := req.Status
	if status == "" {
		status = domain.ReferralStatusPending
	}
	ref := &models.Referral{
		UserID:       req.UserID,
		CustomerID:   req.CustomerID,
		ReferredBy:   req.ReferredBy,
		Status:       status,
		RewardPoints: req.RewardPoints,
	}
	if err := h.referrals.Create(ref); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// List returns the owner's referrals.
// GET /referrals/?user_id=&limit=&offset=
func (h *ReferralHandler) List(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.referrals.ListByOwner(userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Stats returns tier, progress and earnings for the owner.
// GET /referrals/stats?user_id=
func (h *ReferralHandler) Stats(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.svc.Stats(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Rewards lists the owner's referrals by status, default completed.
// GET /referrals/rewards?user_id=&status=
func (h *ReferralHandler) Rewards(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	status := c.DefaultQuery("status", domain.ReferralStatusCompleted)
	if !domain.ValidReferralStatus(status) {
		respondError(c, fmt.Errorf("%w: status must be pending, accepted or completed", domain.ErrInvalidRequest))
		return
	}
	list, err := h.referrals.ListByOwnerAndStatus(userID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Link generates a shareable referral link for the user.
// GET /referrals/link/:user_id
func (h *ReferralHandler) Link(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	link, code, err := h.svc.Link(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referral_link": link, "referral_code": code})
}

// Update changes status and reward points, owner-scoped.
// PUT /referrals/:id
func (h *ReferralHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req UpdateReferralRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	ref, err := h.referrals.GetOwned(id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Status != "" {
		ref.Status = req.Status
	}
	if req.RewardPoints != nil {
		ref.RewardPoints = *req.RewardPoints
	}
	if err := h.referrals.Update(ref); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}
