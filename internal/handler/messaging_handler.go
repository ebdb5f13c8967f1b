package handler

import (
	"fmt"
	"net/http"
	"time"

	"growthpro/internal/domain"
	"growthpro/internal/service"
	"growthpro/internal/templates"

	"github.com/gin-gonic/gin"
)

type MessagingHandler struct {
	svc     *service.MessagingService
	catalog templates.Catalog
}

func NewMessagingHandler(svc *service.MessagingService, catalog templates.Catalog) *MessagingHandler {
	return &MessagingHandler{svc: svc, catalog: catalog}
}

type SendMessageRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Platform   string `json:"platform"`
}

type BulkMessageRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	CustomerIDs []uint `json:"customer_ids" binding:"required,min=1"`
	Message     string `json:"message" binding:"required"`
	Platform    string `json:"platform"`
}

type ScheduleMessageRequest struct {
	UserID        uint   `json:"user_id" binding:"required"`
	CustomerID    uint   `json:"customer_id" binding:"required"`
	Message       string `json:"message" binding:"required"`
	Platform      string `json:"platform"`
	ScheduledTime string `json:"scheduled_time" binding:"required"` // RFC 3339
}

// Send records and queues one outbound message.
// POST /messaging/send
func (h *MessagingHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	in, err := h.svc.Send(req.UserID, req.CustomerID, req.Message, req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"detail":         "message sent successfully",
		"interaction_id": in.ID,
		"timestamp":      in.Timestamp,
		"status":         "delivered",
	})
}

// Bulk sends one message to many customers. Partial per-item failure is a
// 200 with failed_count > 0, not an error status.
// POST /messaging/bulk-message
func (h *MessagingHandler) Bulk(c *gin.Context) {
	var req BulkMessageRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	res, err := h.svc.BulkSend(req.UserID, req.CustomerIDs, req.Message, req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"detail":       fmt.Sprintf("bulk message sent to %d customers", res.SentCount),
		"sent_count":   res.SentCount,
		"failed_count": res.FailedCount,
		"failures":     res.Failures,
	})
}

// Conversation returns the message history with a customer.
// GET /messaging/conversations/:customer_id?user_id=&order=
func (h *MessagingHandler) Conversation(c *gin.Context) {
	customerID, err := pathID(c, "customer_id")
	if err != nil {
		respondError(c, err)
		return
	}
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	order := c.DefaultQuery("order", domain.OrderAscending)
	list, err := h.svc.Conversation(userID, customerID, order)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for i := range list {
		in := &list[i]
		out = append(out, gin.H{
			"id":           in.ID,
			"message":      in.Message,
			"sent_by":      in.SentBy,
			"timestamp":    in.Timestamp,
			"is_from_user": in.IsFromUser(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Schedule queues a delayed delivery with the dispatch collaborator.
// POST /messaging/schedule-message
func (h *MessagingHandler) Schedule(c *gin.Context) {
	var req ScheduleMessageRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	at, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		respondError(c, fmt.Errorf("%w: scheduled_time must be RFC 3339", domain.ErrInvalidRequest))
		return
	}
	if err := h.svc.Schedule(req.UserID, req.CustomerID, req.Message, req.Platform, at); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"detail":         "message scheduled successfully",
		"customer_id":    req.CustomerID,
		"scheduled_time": at,
		"status":         "scheduled",
	})
}

// Templates lists the effective message template catalog.
// GET /messaging/message-templates
func (h *MessagingHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// Analytics returns outbound message counts for the user.
// GET /messaging/analytics/:user_id
func (h *MessagingHandler) Analytics(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.svc.AnalyticsFor(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
