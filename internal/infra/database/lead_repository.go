package database

import (
	"context"
	"database/sql"

	"github.com/homepilot/homepilot-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create appends a funnel lead. Leads have no update or delete path.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO homepilot_leads
			(id, ref, salutation, name, email, address,
			 willing_to_sell, price_expectation, move_timing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.Ref,
		lead.Salutation,
		lead.Name,
		lead.Email,
		lead.Address,
		lead.WillingToSell,
		lead.PriceExpectation,
		lead.MoveTiming,
		lead.CreatedAt,
	)

	return err
}
