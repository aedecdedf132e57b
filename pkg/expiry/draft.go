package expiry

import "time"

// Draft is the transient state of the add-ingredient dialog.
//
// ExpiryDate is derived: every change to Name or PurchaseDate recomputes it
// and overwrites whatever was there, including a value set by hand through
// SetExpiryDate. When the inputs do not resolve to a catalog entry the
// previous ExpiryDate is kept.
type Draft struct {
	Name         string
	Quantity     string
	PurchaseDate time.Time
	ExpiryDate   time.Time
}

// NewDraft returns the dialog defaults: purchased today, nothing else set.
func NewDraft(today time.Time) Draft {
	return Draft{PurchaseDate: Today(today)}
}

func (d *Draft) SetName(name string) {
	d.Name = name
	d.derive()
}

func (d *Draft) SetPurchaseDate(date time.Time) {
	if !date.IsZero() {
		date = Today(date)
	}
	d.PurchaseDate = date
	d.derive()
}

func (d *Draft) SetQuantity(quantity string) {
	d.Quantity = quantity
}

// SetExpiryDate is a manual override; see the type comment.
func (d *Draft) SetExpiryDate(date time.Time) {
	if !date.IsZero() {
		date = Today(date)
	}
	d.ExpiryDate = date
}

func (d *Draft) Reset(today time.Time) {
	*d = NewDraft(today)
}

func (d *Draft) derive() {
	if expiry, ok := Calculate(d.Name, d.PurchaseDate); ok {
		d.ExpiryDate = expiry
	}
}
