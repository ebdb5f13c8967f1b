package handler

import (
	"fmt"
	"net/http"
	"testing"

	"growthpro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserStoresCredentialHash(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/", map[string]any{
		"name":     "Asha Devi",
		"handle":   "asha.devi",
		"password": "s3cret-enough",
		"email":    "asha@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var u models.User
	require.NoError(t, env.db.Where("handle = ?", "asha.devi").First(&u).Error)
	assert.NotEqual(t, "s3cret-enough", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-enough")))
	assert.NotContains(t, rec.Body.String(), "password_hash", "hash must never be serialized")
}

func TestCreateUserDuplicateHandle(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "asha")

	rec := env.do(t, http.MethodPost, "/users/", map[string]any{
		"name":     "Another Asha",
		"handle":   "asha",
		"password": "s3cret-enough",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactCustomerRecordsLedgerEntry(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	c := env.seedCustomer(t, owner.ID, "Asha")

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/customers/%d/contact", c.ID), map[string]any{
		"user_id": owner.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var in models.Interaction
	require.NoError(t, env.db.First(&in).Error)
	assert.Equal(t, "Contact made", in.Message)
	assert.Equal(t, fmt.Sprintf("user_%d", owner.ID), in.SentBy)

	var got models.Customer
	require.NoError(t, env.db.First(&got, c.ID).Error)
	assert.NotNil(t, got.LastContacted)
}

func TestContactCustomerSentByTag(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	c := env.seedCustomer(t, owner.ID, "Asha")

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/customers/%d/contact", c.ID), map[string]any{
		"user_id": owner.ID,
		"message": "called back",
		"sent_by": "customer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var in models.Interaction
	require.NoError(t, env.db.First(&in).Error)
	assert.Equal(t, "customer", in.SentBy)

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/customers/%d/contact", c.ID), map[string]any{
		"user_id": owner.ID,
		"sent_by": "martian",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerListOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	other := env.seedUser(t, "other")
	env.seedCustomer(t, owner.ID, "Mine")
	env.seedCustomer(t, other.ID, "Theirs")

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/customers/?user_id=%d", owner.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	env.decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0]["name"])
}

func TestDeleteCustomerNotOwnedIs404(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	other := env.seedUser(t, "other")
	c := env.seedCustomer(t, owner.ID, "Asha")

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/customers/%d?user_id=%d", c.ID, other.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/customers/%d?user_id=%d", c.ID, owner.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerUpdateCannotTouchLastContacted(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	c := env.seedCustomer(t, owner.ID, "Asha")

	rec := env.do(t, http.MethodPut, fmt.Sprintf("/customers/%d", c.ID), map[string]any{
		"user_id":        owner.ID,
		"name":           "Asha D.",
		"last_contacted": "2020-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "last_contacted is ledger-owned and not a writable field")
}
