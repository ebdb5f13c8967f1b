package repository

import (
	"time"

	"growthpro/internal/domain"
	"growthpro/internal/models"

	"gorm.io/gorm"
)

// InteractionRepository is the append-only engagement ledger. There are no
// update or delete methods: corrections are modeled as new entries.
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Record appends an interaction and advances the owning customer's
// last_contacted to the entry timestamp in one transaction; both writes
// succeed or neither does. Ownership must already be verified by the caller.
func (r *InteractionRepository) Record(customerID uint, message, sentBy string) (*models.Interaction, error) {
	in := &models.Interaction{
		CustomerID: customerID,
		Message:    message,
		SentBy:     sentBy,
		Timestamp:  time.Now().UTC(),
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.Append(tx, in); err != nil {
			return err
		}
		return r.Touch(tx, customerID, in.Timestamp)
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

// Append creates a single ledger entry inside the given transaction.
func (r *InteractionRepository) Append(tx *gorm.DB, in *models.Interaction) error {
	return tx.Create(in).Error
}

// Touch advances last_contacted for the customer inside the given
// transaction. Last writer wins under concurrent sends; the field is
// advisory, not a coordination primitive.
func (r *InteractionRepository) Touch(tx *gorm.DB, customerID uint, at time.Time) error {
	return tx.Model(&models.Customer{}).Where("id = ?", customerID).
		Update("last_contacted", at).Error
}

// History lists the customer's ledger in timestamp order. Ascending is the
// conversation view, descending the recency view; ties break on id so the
// two orders are exact reverses of each other.
func (r *InteractionRepository) History(customerID uint, order string) ([]models.Interaction, error) {
	sort := "timestamp ASC, id ASC"
	if order == domain.OrderDescending {
		sort = "timestamp DESC, id DESC"
	}
	var list []models.Interaction
	err := r.db.Where("customer_id = ?", customerID).Order(sort).Find(&list).Error
	return list, err
}

// CountByOwner counts ledger entries across all customers of the user.
func (r *InteractionRepository) CountByOwner(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Interaction{}).
		Joins("JOIN customers ON customers.id = interactions.customer_id").
		Where("customers.user_id = ?", userID).
		Count(&c).Error
	return c, err
}

// RecentByOwner returns the newest entries across the user's customers.
func (r *InteractionRepository) RecentByOwner(userID uint, limit int) ([]models.Interaction, error) {
	var list []models.Interaction
	err := r.db.
		Joins("JOIN customers ON customers.id = interactions.customer_id").
		Where("customers.user_id = ?", userID).
		Order("interactions.timestamp DESC, interactions.id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// CountBySentBy counts entries with an exact sent_by tag, owner-scoped.
func (r *InteractionRepository) CountBySentBy(userID uint, sentBy string) (int64, error) {
	var c int64
	err := r.db.Model(&models.Interaction{}).
		Joins("JOIN customers ON customers.id = interactions.customer_id").
		Where("customers.user_id = ? AND interactions.sent_by = ?", userID, sentBy).
		Count(&c).Error
	return c, err
}

// CountByMessagePrefix counts entries whose message starts with the given
// prefix (e.g. "[WHATSAPP]"), owner-scoped.
func (r *InteractionRepository) CountByMessagePrefix(userID uint, prefix string) (int64, error) {
	var c int64
	err := r.db.Model(&models.Interaction{}).
		Joins("JOIN customers ON customers.id = interactions.customer_id").
		Where("customers.user_id = ? AND interactions.message LIKE ?", userID, prefix+"%").
		Count(&c).Error
	return c, err
}
