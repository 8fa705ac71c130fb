package credits

import "time"

// Balance tracks purchased production credits for one customer, keyed by email.
type Balance struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Credits        int        `json:"credits"`
	TotalPurchased int        `json:"totalPurchased"`
	LastPurchase   *time.Time `json:"lastPurchase,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
