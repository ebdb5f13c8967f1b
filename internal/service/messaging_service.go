package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"growthpro/internal/domain"
	"growthpro/internal/models"
	"growthpro/internal/repository"
	"growthpro/pkg/dispatch"

	"gorm.io/gorm"
)

// Ledger is the slice of the interaction repository the messaging
// dispatcher writes through. Narrowed to an interface so tests can wrap
// the real store and induce per-item faults.
type Ledger interface {
	Record(customerID uint, message, sentBy string) (*models.Interaction, error)
	Append(tx *gorm.DB, in *models.Interaction) error
	Touch(tx *gorm.DB, customerID uint, at time.Time) error
	History(customerID uint, order string) ([]models.Interaction, error)
	CountBySentBy(userID uint, sentBy string) (int64, error)
	CountByMessagePrefix(userID uint, prefix string) (int64, error)
}

// MessagingService validates and records single and bulk outbound
// messages. Real delivery happens at the external dispatch collaborator;
// the service only appends to the ledger and queues.
type MessagingService struct {
	db              *gorm.DB
	customers       *repository.CustomerRepository
	ledger          Ledger
	dispatcher      dispatch.Provider
	defaultPlatform string
	maxBulk         int
}

func NewMessagingService(
	db *gorm.DB,
	customers *repository.CustomerRepository,
	ledger Ledger,
	dispatcher dispatch.Provider,
	defaultPlatform string,
	maxBulk int,
) *MessagingService {
	return &MessagingService{
		db:              db,
		customers:       customers,
		ledger:          ledger,
		dispatcher:      dispatcher,
		defaultPlatform: defaultPlatform,
		maxBulk:         maxBulk,
	}
}

// Send records one outbound message for the customer. The ledger append
// and the last_contacted update are transactional; delivery is queued
// fire-and-forget afterwards, so the returned status is immediately
// "delivered" from the core's point of view.
func (s *MessagingService) Send(userID, customerID uint, message, platform string) (*models.Interaction, error) {
	if userID == 0 || customerID == 0 || message == "" {
		return nil, fmt.Errorf("%w: customer_id, message and user_id are required", domain.ErrInvalidRequest)
	}
	platform = s.normalizePlatform(platform)
	if _, err := s.customers.GetOwned(customerID, userID); err != nil {
		return nil, err
	}
	in, err := s.ledger.Record(customerID, taggedMessage(platform, message), domain.SentByUser(userID))
	if err != nil {
		return nil, err
	}
	s.enqueue(dispatch.Job{UserID: userID, CustomerID: customerID, Platform: platform, Message: message})
	return in, nil
}

type BulkFailure struct {
	CustomerID uint   `json:"customer_id"`
	Reason     string `json:"reason"`
}

type BulkResult struct {
	SentCount   int           `json:"sent_count"`
	FailedCount int           `json:"failed_count"`
	Failures    []BulkFailure `json:"failures,omitempty"`
}

// BulkSend messages every customer in ids. The membership precondition is
// all-or-nothing: if any id is missing or not owned by the user, the call
// fails with no writes. Past that point semantics are best-effort: each
// per-item append failure is swallowed into the failure list while the
// rest proceed, and a single commit finalizes all successful appends at
// the end of the loop.
func (s *MessagingService) BulkSend(userID uint, ids []uint, message, platform string) (*BulkResult, error) {
	if userID == 0 || len(ids) == 0 || message == "" {
		return nil, fmt.Errorf("%w: customer_ids, message and user_id are required", domain.ErrInvalidRequest)
	}
	if s.maxBulk > 0 && len(ids) > s.maxBulk {
		return nil, fmt.Errorf("%w: at most %d recipients per bulk message", domain.ErrInvalidRequest, s.maxBulk)
	}
	platform = s.normalizePlatform(platform)

	customers, err := s.customers.ListOwnedByIDs(userID, ids)
	if err != nil {
		return nil, err
	}
	if len(customers) != len(ids) {
		return nil, fmt.Errorf("%w: some customers not found or not owned by user", domain.ErrInvalidRequest)
	}

	tagged := bulkTaggedMessage(platform, message)
	sentBy := domain.SentByUser(userID)
	now := time.Now().UTC()

	result := &BulkResult{}
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	for _, c := range customers {
		in := &models.Interaction{CustomerID: c.ID, Message: tagged, SentBy: sentBy, Timestamp: now}
		if err := s.ledger.Append(tx, in); err != nil {
			log.Printf("[messaging] bulk append failed for customer %d: %v", c.ID, err)
			result.Failures = append(result.Failures, BulkFailure{CustomerID: c.ID, Reason: err.Error()})
			continue
		}
		if err := s.ledger.Touch(tx, c.ID, now); err != nil {
			log.Printf("[messaging] bulk touch failed for customer %d: %v", c.ID, err)
			result.Failures = append(result.Failures, BulkFailure{CustomerID: c.ID, Reason: err.Error()})
			continue
		}
		result.SentCount++
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	result.FailedCount = len(result.Failures)

	for _, c := range customers {
		s.enqueue(dispatch.Job{UserID: userID, CustomerID: c.ID, Platform: platform, Message: message})
	}
	return result, nil
}

// Conversation returns the customer's ledger in the requested order after
// verifying ownership.
func (s *MessagingService) Conversation(userID, customerID uint, order string) ([]models.Interaction, error) {
	if _, err := s.customers.GetOwned(customerID, userID); err != nil {
		return nil, err
	}
	return s.ledger.History(customerID, order)
}

// Schedule validates the request and queues a delayed delivery with the
// external dispatch collaborator. Nothing is appended to the ledger until
// the collaborator delivers and reports back.
func (s *MessagingService) Schedule(userID, customerID uint, message, platform string, at time.Time) error {
	if userID == 0 || customerID == 0 || message == "" || at.IsZero() {
		return fmt.Errorf("%w: customer_id, message, scheduled_time and user_id are required", domain.ErrInvalidRequest)
	}
	platform = s.normalizePlatform(platform)
	if _, err := s.customers.GetOwned(customerID, userID); err != nil {
		return err
	}
	s.enqueue(dispatch.Job{UserID: userID, CustomerID: customerID, Platform: platform, Message: message, ScheduledAt: &at})
	return nil
}

type Analytics struct {
	TotalMessages      int64            `json:"total_messages"`
	CustomersContacted int64            `json:"customers_contacted"`
	Platforms          map[string]int64 `json:"platforms"`
}

// AnalyticsFor counts outbound messages authored by the user and breaks
// single sends down by platform tag. Bulk sends carry a BULK- prefix and
// are counted in the total only.
func (s *MessagingService) AnalyticsFor(userID uint) (*Analytics, error) {
	total, err := s.ledger.CountBySentBy(userID, domain.SentByUser(userID))
	if err != nil {
		return nil, err
	}
	contacted, err := s.customers.ContactedCountByOwner(userID)
	if err != nil {
		return nil, err
	}
	platforms := make(map[string]int64, 3)
	for _, p := range []string{domain.PlatformWhatsApp, domain.PlatformSMS, domain.PlatformEmail} {
		n, err := s.ledger.CountByMessagePrefix(userID, platformTag(p))
		if err != nil {
			return nil, err
		}
		platforms[p] = n
	}
	return &Analytics{TotalMessages: total, CustomersContacted: contacted, Platforms: platforms}, nil
}

func (s *MessagingService) normalizePlatform(platform string) string {
	if platform == "" {
		return s.defaultPlatform
	}
	return strings.ToLower(platform)
}

// enqueue hands the job to the dispatch collaborator without awaiting it.
func (s *MessagingService) enqueue(job dispatch.Job) {
	go func() {
		if err := s.dispatcher.Enqueue(context.Background(), job); err != nil {
			log.Printf("[messaging] enqueue failed for customer %d: %v", job.CustomerID, err)
		}
	}()
}

func platformTag(platform string) string {
	return "[" + strings.ToUpper(platform) + "]"
}

func taggedMessage(platform, message string) string {
	return platformTag(platform) + " " + message
}

func bulkTaggedMessage(platform, message string) string {
	return "[BULK-" + strings.ToUpper(platform) + "] " + message
}
