package room

import (
	"time"

	"github.com/google/uuid"
)

// Room is one bookable property. Slug is the stable storefront reference
// ("dubai-mall-residence"); Name is what bookings record as roomname.
type Room struct {
	ID        uuid.UUID `db:"id" json:"_id"`
	Slug      string    `db:"slug" json:"slug"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
