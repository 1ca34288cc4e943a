package entity

import (
	"context"
	"time"
)

// Lead is an unscored qualification-funnel entry from a landing-page
// variant. Leads are append-only: there is no update or delete path.
type Lead struct {
	ID         string `json:"id"`
	Ref        string `json:"ref"` // funnel variant tag, e.g. LP1 / LP2
	Salutation string `json:"salutation"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`

	WillingToSell    *string `json:"willing_to_sell,omitempty"`
	PriceExpectation *string `json:"price_expectation,omitempty"`
	MoveTiming       *string `json:"move_timing,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
}
