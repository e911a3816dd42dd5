package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxQuerier is the subset of *pgxpool.Pool (and pgx.Tx) the Postgres
// repositories use.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const firmOfferColumns = `id, proposal_id, deal_id, status, client_access_token, speaker_review_token,
speaker_email, created_at, updated_at, hold_expires_at, submitted_at, sent_to_speaker_at,
speaker_viewed_at, speaker_response_at, speaker_confirmed, speaker_notes, documents`

// FirmOfferPostgresRepository persists FirmOffer entities in PostgreSQL. Each
// guarded write is one UPDATE whose WHERE clause is the transition guard.
type FirmOfferPostgresRepository struct {
	db PgxQuerier
}

var _ interfaces.IFirmOfferRepository = (*FirmOfferPostgresRepository)(nil)

func NewFirmOfferPostgresRepository(db PgxQuerier) *FirmOfferPostgresRepository {
	return &FirmOfferPostgresRepository{db: db}
}

func (r *FirmOfferPostgresRepository) Create(ctx context.Context, o entities.FirmOffer) (entities.FirmOffer, error) {
	o.FirmOfferDocuments = o.FirmOfferDocuments.Normalize()
	docs, err := json.Marshal(o.FirmOfferDocuments)
	if err != nil {
		return entities.FirmOffer{}, err
	}

	_, err = r.db.Exec(ctx, `
INSERT INTO firm_offers(id, proposal_id, deal_id, status, client_access_token, speaker_review_token,
  speaker_email, created_at, updated_at, hold_expires_at, submitted_at, sent_to_speaker_at,
  speaker_viewed_at, speaker_response_at, speaker_confirmed, speaker_notes, documents)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17::jsonb)
`, o.ID, nullString(o.ProposalID), nullString(o.DealID), string(o.Status), o.ClientAccessToken,
		nullString(o.SpeakerReviewToken), o.SpeakerEmail, o.CreatedAt, o.UpdatedAt, o.HoldExpiresAt,
		o.SubmittedAt, o.SentToSpeakerAt, o.SpeakerViewedAt, o.SpeakerResponseAt, o.SpeakerConfirmed,
		o.SpeakerNotes, string(docs))
	if err != nil {
		return entities.FirmOffer{}, err
	}
	return o, nil
}

func (r *FirmOfferPostgresRepository) GetByID(ctx context.Context, id string) (entities.FirmOffer, error) {
	return r.getOne(ctx, `SELECT `+firmOfferColumns+` FROM firm_offers WHERE id=$1`, id)
}

func (r *FirmOfferPostgresRepository) GetByClientToken(ctx context.Context, token string) (entities.FirmOffer, error) {
	return r.getOne(ctx, `SELECT `+firmOfferColumns+` FROM firm_offers WHERE client_access_token=$1`, token)
}

func (r *FirmOfferPostgresRepository) GetBySpeakerToken(ctx context.Context, token string) (entities.FirmOffer, error) {
	return r.getOne(ctx, `SELECT `+firmOfferColumns+` FROM firm_offers WHERE speaker_review_token=$1`, token)
}

func (r *FirmOfferPostgresRepository) List(ctx context.Context) ([]entities.FirmOffer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+firmOfferColumns+` FROM firm_offers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.FirmOffer
	for rows.Next() {
		o, err := scanFirmOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *FirmOfferPostgresRepository) UpdateDocuments(
	ctx context.Context,
	id string,
	docs entities.FirmOfferDocuments,
	allowed []entities.FirmOfferStatus,
	at time.Time,
) (entities.FirmOffer, error) {
	b, err := json.Marshal(docs.Normalize())
	if err != nil {
		return entities.FirmOffer{}, err
	}
	return r.guarded(ctx, id, `
UPDATE firm_offers SET documents=$2::jsonb, updated_at=$3
WHERE id=$1 AND speaker_confirmed IS NULL AND status = ANY($4)
RETURNING `+firmOfferColumns, id, string(b), at, statusStrings(allowed))
}

func (r *FirmOfferPostgresRepository) MarkSubmitted(ctx context.Context, id string, at time.Time) (entities.FirmOffer, error) {
	return r.guarded(ctx, id, `
UPDATE firm_offers SET status=$2, submitted_at=COALESCE(submitted_at, $3), updated_at=$3
WHERE id=$1 AND status = ANY($4)
RETURNING `+firmOfferColumns, id, string(entities.FirmOfferStatusSubmitted), at, statusStrings(entities.SubmittableStatuses))
}

func (r *FirmOfferPostgresRepository) MarkSentToSpeaker(ctx context.Context, id, speakerToken, speakerEmail string, at time.Time) (entities.FirmOffer, error) {
	return r.guarded(ctx, id, `
UPDATE firm_offers SET
  status=$2,
  speaker_review_token=COALESCE(NULLIF(speaker_review_token, ''), $3::text),
  speaker_email=COALESCE(NULLIF($4::text, ''), speaker_email),
  sent_to_speaker_at=COALESCE(sent_to_speaker_at, $5),
  updated_at=$5
WHERE id=$1 AND speaker_confirmed IS NULL AND status = ANY($6)
RETURNING `+firmOfferColumns, id, string(entities.FirmOfferStatusSentToSpeaker), speakerToken, speakerEmail, at,
		statusStrings(entities.SendableStatuses))
}

func (r *FirmOfferPostgresRepository) MarkSpeakerViewed(ctx context.Context, id string, at time.Time) (entities.FirmOffer, error) {
	return r.guarded(ctx, id, `
UPDATE firm_offers SET speaker_viewed_at=COALESCE(speaker_viewed_at, $2)
WHERE id=$1 AND status=$3
RETURNING `+firmOfferColumns, id, at, string(entities.FirmOfferStatusSentToSpeaker))
}

func (r *FirmOfferPostgresRepository) RecordSpeakerDecision(ctx context.Context, id string, d entities.SpeakerDecision) (entities.FirmOffer, error) {
	return r.guarded(ctx, id, `
UPDATE firm_offers SET speaker_confirmed=$2, speaker_notes=$3, speaker_response_at=$4, updated_at=$4
WHERE id=$1 AND status=$5 AND speaker_confirmed IS NULL
RETURNING `+firmOfferColumns, id, d.Confirmed, d.Notes, d.RespondedAt, string(entities.FirmOfferStatusSentToSpeaker))
}

func (r *FirmOfferPostgresRepository) ResetHold(ctx context.Context, id string, holdExpiresAt, at time.Time) (entities.FirmOffer, error) {
	return r.guarded(ctx, id, `
UPDATE firm_offers SET hold_expires_at=$2, updated_at=$3
WHERE id=$1 AND speaker_confirmed IS NULL
RETURNING `+firmOfferColumns, id, holdExpiresAt, at)
}

func (r *FirmOfferPostgresRepository) getOne(ctx context.Context, sql string, args ...any) (entities.FirmOffer, error) {
	o, err := scanFirmOffer(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.FirmOffer{}, nil
	}
	return o, err
}

// guarded runs an UPDATE ... RETURNING. When no row comes back the record is
// re-read to tell a missing offer (zero value) from a failed guard.
func (r *FirmOfferPostgresRepository) guarded(ctx context.Context, id, sql string, args ...any) (entities.FirmOffer, error) {
	o, err := scanFirmOffer(r.db.QueryRow(ctx, sql, args...))
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entities.FirmOffer{}, err
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if current.ID == "" {
		return entities.FirmOffer{}, nil
	}
	return current, interfaces.ErrConditionFailed
}

func scanFirmOffer(row pgx.Row) (entities.FirmOffer, error) {
	var (
		o                                      entities.FirmOffer
		status                                 string
		proposalID, dealID, speakerReviewToken *string
		docs                                   []byte
	)
	err := row.Scan(
		&o.ID, &proposalID, &dealID, &status, &o.ClientAccessToken, &speakerReviewToken,
		&o.SpeakerEmail, &o.CreatedAt, &o.UpdatedAt, &o.HoldExpiresAt, &o.SubmittedAt, &o.SentToSpeakerAt,
		&o.SpeakerViewedAt, &o.SpeakerResponseAt, &o.SpeakerConfirmed, &o.SpeakerNotes, &docs,
	)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	o.Status = entities.FirmOfferStatus(status)
	o.ProposalID = derefString(proposalID)
	o.DealID = derefString(dealID)
	o.SpeakerReviewToken = derefString(speakerReviewToken)
	if len(docs) > 0 {
		if err := json.Unmarshal(docs, &o.FirmOfferDocuments); err != nil {
			return entities.FirmOffer{}, err
		}
	}
	o.FirmOfferDocuments = o.FirmOfferDocuments.Normalize()
	return o, nil
}

func statusStrings(list []entities.FirmOfferStatus) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, string(s))
	}
	return out
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
