package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestDealDynamoRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ddb := &fakeDynamo{getFn: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if aws.ToString(in.TableName) != "crm_deals" {
				t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
			}
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"id":                str("deal-1"),
				"client_name":       str("Ada"),
				"event_title":       str("Summit"),
				"speaker_requested": str("Grace"),
				"deal_value":        &types.AttributeValueMemberN{Value: "20000"},
				"flight_required":   &types.AttributeValueMemberBOOL{Value: true},
			}}, nil
		}}
		repo := NewDealDynamoRepository(ddb, "crm_deals")

		d, err := repo.GetByID(context.Background(), "deal-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "deal-1" || d.DealValue != 20000 || !d.FlightRequired || d.SpeakerRequested != "Grace" {
			t.Fatalf("unexpected deal: %+v", d)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo := NewDealDynamoRepository(&fakeDynamo{}, "")
		d, err := repo.GetByID(context.Background(), "deal-404")
		if err != nil || d.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", d, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		ddb := &fakeDynamo{getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return nil, errors.New("db")
		}}
		repo := NewDealDynamoRepository(ddb, "")
		if _, err := repo.GetByID(context.Background(), "deal-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestProposalDynamoRepository_GetByID(t *testing.T) {
	ddb := &fakeDynamo{getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"id":               str("prop-1"),
			"client_name":      str("Ada"),
			"speakers":         str(`[{"name":"Grace","fee":9000},{"name":"Alan","fee":0}]`),
			"total_investment": &types.AttributeValueMemberN{Value: "12000"},
		}}, nil
	}}
	repo := NewProposalDynamoRepository(ddb, "")

	p, err := repo.GetByID(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Speakers) != 2 || p.Speakers[0].Name != "Grace" || p.Speakers[0].Fee != 9000 || p.TotalInvestment != 12000 {
		t.Fatalf("unexpected proposal: %+v", p)
	}
}
