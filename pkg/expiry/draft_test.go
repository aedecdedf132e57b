package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDraft_Defaults(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	draft := NewDraft(now)

	assert.Equal(t, "", draft.Name)
	assert.Equal(t, "", draft.Quantity)
	assert.Equal(t, "2024-05-10", FormatDate(draft.PurchaseDate))
	assert.True(t, draft.ExpiryDate.IsZero())
}

func TestDraft_DerivesOnNameChange(t *testing.T) {
	draft := NewDraft(mustDate(t, "2024-01-01"))

	draft.SetName("Eggs")
	assert.Equal(t, "2024-01-22", FormatDate(draft.ExpiryDate))

	draft.SetName("Milk")
	assert.Equal(t, "2024-01-08", FormatDate(draft.ExpiryDate))
}

func TestDraft_DerivesOnPurchaseDateChange(t *testing.T) {
	draft := NewDraft(mustDate(t, "2024-01-01"))
	draft.SetName("Cheese")

	draft.SetPurchaseDate(mustDate(t, "2024-03-01"))
	assert.Equal(t, "2024-03-15", FormatDate(draft.ExpiryDate))
}

func TestDraft_ManualExpiryOverwrittenByLaterChange(t *testing.T) {
	draft := NewDraft(mustDate(t, "2024-01-01"))
	draft.SetName("Eggs")

	draft.SetExpiryDate(mustDate(t, "2024-12-31"))
	assert.Equal(t, "2024-12-31", FormatDate(draft.ExpiryDate))

	draft.SetQuantity("6")
	assert.Equal(t, "2024-12-31", FormatDate(draft.ExpiryDate))

	draft.SetPurchaseDate(mustDate(t, "2024-01-02"))
	assert.Equal(t, "2024-01-23", FormatDate(draft.ExpiryDate))
}

func TestDraft_UnknownNameLeavesExpiryUnchanged(t *testing.T) {
	draft := NewDraft(mustDate(t, "2024-01-01"))

	draft.SetName("Bread")
	assert.True(t, draft.ExpiryDate.IsZero())

	draft.SetName("Eggs")
	draft.SetName("Bread")
	assert.Equal(t, "2024-01-22", FormatDate(draft.ExpiryDate))
}

func TestDraft_ClearedPurchaseDateLeavesExpiryUnchanged(t *testing.T) {
	draft := NewDraft(mustDate(t, "2024-01-01"))
	draft.SetName("Eggs")

	draft.SetPurchaseDate(time.Time{})
	assert.True(t, draft.PurchaseDate.IsZero())
	assert.Equal(t, "2024-01-22", FormatDate(draft.ExpiryDate))
}

func TestDraft_Reset(t *testing.T) {
	draft := NewDraft(mustDate(t, "2024-01-01"))
	draft.SetName("Eggs")
	draft.SetQuantity("12")

	draft.Reset(mustDate(t, "2024-02-02"))
	assert.Equal(t, NewDraft(mustDate(t, "2024-02-02")), draft)
}
