package gatewaykey

import (
	"time"

	"github.com/google/uuid"
)

// Key is a publishable payment gateway key served to the storefront.
// The secret half never leaves server config; this table only holds the
// public key id the checkout page hands to the gateway SDK.
type Key struct {
	ID        uuid.UUID `db:"id" json:"_id"`
	Key       string    `db:"key" json:"key"`
	Active    bool      `db:"active" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
