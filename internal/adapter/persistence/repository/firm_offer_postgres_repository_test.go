package repository

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		v := reflect.ValueOf(r.values[i])
		target := reflect.ValueOf(d).Elem()
		if !v.IsValid() {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(v)
	}
	return nil
}

type fakeQuerier struct {
	sqls []string
	args [][]any
	rows []pgx.Row
	exec error
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sqls = append(q.sqls, sql)
	q.args = append(q.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), q.exec
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sqls = append(q.sqls, sql)
	q.args = append(q.args, args)
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

func offerRow(t *testing.T, o entities.FirmOffer) fakeRow {
	t.Helper()
	docs, err := json.Marshal(o.FirmOfferDocuments)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return fakeRow{values: []any{
		o.ID, nullString(o.ProposalID), nullString(o.DealID), string(o.Status), o.ClientAccessToken,
		nullString(o.SpeakerReviewToken), o.SpeakerEmail, o.CreatedAt, o.UpdatedAt, o.HoldExpiresAt,
		o.SubmittedAt, o.SentToSpeakerAt, o.SpeakerViewedAt, o.SpeakerResponseAt, o.SpeakerConfirmed,
		o.SpeakerNotes, docs,
	}}
}

func TestFirmOfferPostgresRepository_GetByID(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		db := &fakeQuerier{rows: []pgx.Row{fakeRow{err: pgx.ErrNoRows}}}
		repo := NewFirmOfferPostgresRepository(db)

		o, err := repo.GetByID(context.Background(), "fo-404")
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", o, err)
		}
	})

	t.Run("scans nullable columns", func(t *testing.T) {
		want := storedOffer(entities.FirmOfferStatusOutForDelivery)
		want.SpeakerReviewToken = ""
		db := &fakeQuerier{rows: []pgx.Row{offerRow(t, want)}}
		repo := NewFirmOfferPostgresRepository(db)

		got, err := repo.GetByClientToken(context.Background(), want.ClientAccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "fo-1" || got.DealID != "deal-1" || got.ProposalID != "" || got.SpeakerReviewToken != "" {
			t.Fatalf("unexpected scalars: %+v", got)
		}
		if got.EventOverview.ClientName != "Ada" || len(got.EventSchedule.ScheduleItems) != 1 {
			t.Fatalf("unexpected documents: %+v", got.FirmOfferDocuments)
		}
		if !strings.Contains(db.sqls[0], "WHERE client_access_token=$1") {
			t.Fatalf("unexpected query %q", db.sqls[0])
		}
	})
}

func TestFirmOfferPostgresRepository_Guarded(t *testing.T) {
	t.Run("guard holds", func(t *testing.T) {
		o := storedOffer(entities.FirmOfferStatusSentToSpeaker)
		yes := true
		o.SpeakerConfirmed = &yes
		db := &fakeQuerier{rows: []pgx.Row{offerRow(t, o)}}
		repo := NewFirmOfferPostgresRepository(db)

		got, err := repo.RecordSpeakerDecision(context.Background(), "fo-1", entities.SpeakerDecision{Confirmed: true, RespondedAt: repoNow})
		if err != nil || !got.Decided() {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
		if !strings.Contains(db.sqls[0], "speaker_confirmed IS NULL") || !strings.Contains(db.sqls[0], "RETURNING") {
			t.Fatalf("decision must be guarded: %q", db.sqls[0])
		}
	})

	t.Run("guard fails", func(t *testing.T) {
		current := storedOffer(entities.FirmOfferStatusSentToSpeaker)
		no := false
		current.SpeakerConfirmed = &no
		db := &fakeQuerier{rows: []pgx.Row{fakeRow{err: pgx.ErrNoRows}, offerRow(t, current)}}
		repo := NewFirmOfferPostgresRepository(db)

		got, err := repo.RecordSpeakerDecision(context.Background(), "fo-1", entities.SpeakerDecision{Confirmed: true, RespondedAt: repoNow})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
		if got.SpeakerConfirmed == nil || *got.SpeakerConfirmed {
			t.Fatalf("expected the stored decline, got %+v", got)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		db := &fakeQuerier{rows: []pgx.Row{fakeRow{err: pgx.ErrNoRows}, fakeRow{err: pgx.ErrNoRows}}}
		repo := NewFirmOfferPostgresRepository(db)

		got, err := repo.ResetHold(context.Background(), "fo-404", repoNow, repoNow)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", got, err)
		}
	})

	t.Run("status guard uses the allowed list", func(t *testing.T) {
		o := storedOffer(entities.FirmOfferStatusSubmitted)
		db := &fakeQuerier{rows: []pgx.Row{offerRow(t, o)}}
		repo := NewFirmOfferPostgresRepository(db)

		if _, err := repo.MarkSubmitted(context.Background(), "fo-1", repoNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		allowed, ok := db.args[0][3].([]string)
		if !ok || len(allowed) != len(entities.SubmittableStatuses) {
			t.Fatalf("unexpected status argument: %#v", db.args[0][3])
		}
		if !strings.Contains(db.sqls[0], "COALESCE(submitted_at, $3)") {
			t.Fatalf("submitted_at must be set once: %q", db.sqls[0])
		}
	})
}

func TestFirmOfferPostgresRepository_Create(t *testing.T) {
	db := &fakeQuerier{}
	repo := NewFirmOfferPostgresRepository(db)

	o := storedOffer(entities.FirmOfferStatusOutForDelivery)
	o.SpeakerReviewToken = ""
	o.EventSchedule.ScheduleItems = nil
	got, err := repo.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EventSchedule.ScheduleItems == nil {
		t.Fatalf("expected normalized documents")
	}
	if tok, ok := db.args[0][5].(*string); !ok || tok != nil {
		t.Fatalf("empty speaker token must be stored as NULL, got %#v", db.args[0][5])
	}
	if created, ok := db.args[0][7].(time.Time); !ok || !created.Equal(repoNow) {
		t.Fatalf("unexpected created_at argument %#v", db.args[0][7])
	}
}
