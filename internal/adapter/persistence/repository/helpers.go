package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"speaker_bureau/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func str(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

// statusIn renders "#status IN (:st0, :st1, ...)" and adds the placeholders to values.
func statusIn(allowed []entities.FirmOfferStatus, values map[string]types.AttributeValue) string {
	placeholders := make([]string, 0, len(allowed))
	for i, s := range allowed {
		p := fmt.Sprintf(":st%d", i)
		values[p] = str(string(s))
		placeholders = append(placeholders, p)
	}
	return "#status IN (" + strings.Join(placeholders, ", ") + ")"
}

// documentField binds a stored JSON attribute to one sub-document.
type documentField struct {
	attr  string
	value any
}

func documentFields(d *entities.FirmOfferDocuments) []documentField {
	return []documentField{
		{"event_overview", &d.EventOverview},
		{"speaker_program", &d.SpeakerProgram},
		{"event_schedule", &d.EventSchedule},
		{"technical_requirements", &d.TechnicalRequirements},
		{"travel_accommodation", &d.TravelAccommodation},
		{"additional_info", &d.AdditionalInfo},
		{"financial_details", &d.FinancialDetails},
		{"confirmation", &d.Confirmation},
	}
}

func encodeDocuments(d entities.FirmOfferDocuments) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, 8)
	for _, f := range documentFields(&d) {
		b, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.attr, err)
		}
		out[f.attr] = str(string(b))
	}
	return out, nil
}

// decodeDocuments reads the JSON sub-documents. Missing attributes stay zero.
func decodeDocuments(item map[string]types.AttributeValue) (entities.FirmOfferDocuments, error) {
	var d entities.FirmOfferDocuments
	for _, f := range documentFields(&d) {
		av, ok := item[f.attr].(*types.AttributeValueMemberS)
		if !ok || av.Value == "" {
			continue
		}
		if err := json.Unmarshal([]byte(av.Value), f.value); err != nil {
			return entities.FirmOfferDocuments{}, fmt.Errorf("decode %s: %w", f.attr, err)
		}
	}
	return d.Normalize(), nil
}
