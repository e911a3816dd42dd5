package repository

import (
	"context"
	"encoding/json"
	"errors"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

type DealPostgresRepository struct {
	db PgxQuerier
}

var _ interfaces.IDealRepository = (*DealPostgresRepository)(nil)

func NewDealPostgresRepository(db PgxQuerier) *DealPostgresRepository {
	return &DealPostgresRepository{db: db}
}

func (r *DealPostgresRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	var d entities.Deal
	err := r.db.QueryRow(ctx, `
SELECT id, client_name, client_email, client_phone, company, event_title, event_date, event_location,
  event_type, attendee_count, speaker_requested, deal_value, travel_required, flight_required,
  hotel_required, travel_stipend
FROM deals WHERE id=$1
`, id).Scan(&d.ID, &d.ClientName, &d.ClientEmail, &d.ClientPhone, &d.Company, &d.EventTitle, &d.EventDate,
		&d.EventLocation, &d.EventType, &d.AttendeeCount, &d.SpeakerRequested, &d.DealValue, &d.TravelRequired,
		&d.FlightRequired, &d.HotelRequired, &d.TravelStipend)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Deal{}, nil
	}
	if err != nil {
		return entities.Deal{}, err
	}
	return d, nil
}

type ProposalPostgresRepository struct {
	db PgxQuerier
}

var _ interfaces.IProposalRepository = (*ProposalPostgresRepository)(nil)

func NewProposalPostgresRepository(db PgxQuerier) *ProposalPostgresRepository {
	return &ProposalPostgresRepository{db: db}
}

func (r *ProposalPostgresRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	var (
		p        entities.Proposal
		speakers []byte
	)
	err := r.db.QueryRow(ctx, `
SELECT id, client_name, client_email, client_company, event_title, event_date, event_location,
  event_type, attendee_count, speakers, total_investment
FROM proposals WHERE id=$1
`, id).Scan(&p.ID, &p.ClientName, &p.ClientEmail, &p.ClientCompany, &p.EventTitle, &p.EventDate,
		&p.EventLocation, &p.EventType, &p.AttendeeCount, &speakers, &p.TotalInvestment)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Proposal{}, nil
	}
	if err != nil {
		return entities.Proposal{}, err
	}

	p.Speakers = []entities.ProposalSpeaker{}
	if len(speakers) > 0 {
		if err := json.Unmarshal(speakers, &p.Speakers); err != nil {
			return entities.Proposal{}, err
		}
	}
	return p, nil
}
