package repository

import (
	"context"
	"encoding/json"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultDealsTableName     = "deals"
	DefaultProposalsTableName = "proposals"
)

type dealItem struct {
	ID               string  `dynamodbav:"id"`
	ClientName       string  `dynamodbav:"client_name"`
	ClientEmail      string  `dynamodbav:"client_email"`
	ClientPhone      string  `dynamodbav:"client_phone"`
	Company          string  `dynamodbav:"company"`
	EventTitle       string  `dynamodbav:"event_title"`
	EventDate        string  `dynamodbav:"event_date"`
	EventLocation    string  `dynamodbav:"event_location"`
	EventType        string  `dynamodbav:"event_type"`
	AttendeeCount    int     `dynamodbav:"attendee_count"`
	SpeakerRequested string  `dynamodbav:"speaker_requested"`
	DealValue        float64 `dynamodbav:"deal_value"`
	TravelRequired   bool    `dynamodbav:"travel_required"`
	FlightRequired   bool    `dynamodbav:"flight_required"`
	HotelRequired    bool    `dynamodbav:"hotel_required"`
	TravelStipend    float64 `dynamodbav:"travel_stipend"`
}

// proposalItem keeps the speaker list as a JSON string, like the firm-offer
// sub-documents.
type proposalItem struct {
	ID              string  `dynamodbav:"id"`
	ClientName      string  `dynamodbav:"client_name"`
	ClientEmail     string  `dynamodbav:"client_email"`
	ClientCompany   string  `dynamodbav:"client_company"`
	EventTitle      string  `dynamodbav:"event_title"`
	EventDate       string  `dynamodbav:"event_date"`
	EventLocation   string  `dynamodbav:"event_location"`
	EventType       string  `dynamodbav:"event_type"`
	AttendeeCount   int     `dynamodbav:"attendee_count"`
	Speakers        string  `dynamodbav:"speakers"`
	TotalInvestment float64 `dynamodbav:"total_investment"`
}

// DealDynamoRepository reads CRM deals. The deals table is owned by the CRM;
// this service never writes it.
type DealDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb DynamoAPI, tableName string) *DealDynamoRepository {
	if tableName == "" {
		tableName = DefaultDealsTableName
	}
	return &DealDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	item, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil || item == nil {
		return entities.Deal{}, err
	}
	var it dealItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Deal{}, err
	}
	return entities.Deal(it), nil
}

type ProposalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoAPI, tableName string) *ProposalDynamoRepository {
	if tableName == "" {
		tableName = DefaultProposalsTableName
	}
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	item, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil || item == nil {
		return entities.Proposal{}, err
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Proposal{}, err
	}

	p := entities.Proposal{
		ID:              it.ID,
		ClientName:      it.ClientName,
		ClientEmail:     it.ClientEmail,
		ClientCompany:   it.ClientCompany,
		EventTitle:      it.EventTitle,
		EventDate:       it.EventDate,
		EventLocation:   it.EventLocation,
		EventType:       it.EventType,
		AttendeeCount:   it.AttendeeCount,
		TotalInvestment: it.TotalInvestment,
		Speakers:        []entities.ProposalSpeaker{},
	}
	if it.Speakers != "" {
		if err := json.Unmarshal([]byte(it.Speakers), &p.Speakers); err != nil {
			return entities.Proposal{}, err
		}
	}
	return p, nil
}

func getItemByID(ctx context.Context, ddb DynamoAPI, table, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}
