package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultFirmOffersTableName = "firm_offers"

	clientTokenIndex  = "client_access_token-index"
	speakerTokenIndex = "speaker_review_token-index"

	// The client token lives in an attribute still named after the speaker;
	// existing tables and their index key on it.
	clientTokenAttr  = "speaker_access_token"
	speakerTokenAttr = "speaker_review_token"
)

// firmOfferItem holds the scalar attributes. The sub-documents are stored
// next to them as JSON strings (see encodeDocuments).
type firmOfferItem struct {
	ID                 string `dynamodbav:"id"`
	ProposalID         string `dynamodbav:"proposal_id,omitempty"`
	DealID             string `dynamodbav:"deal_id,omitempty"`
	Status             string `dynamodbav:"status"`
	ClientAccessToken  string `dynamodbav:"speaker_access_token"`
	SpeakerReviewToken string `dynamodbav:"speaker_review_token,omitempty"`
	SpeakerEmail       string `dynamodbav:"speaker_email,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	HoldExpiresAt      string `dynamodbav:"hold_expires_at"`
	SubmittedAt        string `dynamodbav:"submitted_at,omitempty"`
	SentToSpeakerAt    string `dynamodbav:"sent_to_speaker_at,omitempty"`
	SpeakerViewedAt    string `dynamodbav:"speaker_viewed_at,omitempty"`
	SpeakerResponseAt  string `dynamodbav:"speaker_response_at,omitempty"`
	SpeakerConfirmed   *bool  `dynamodbav:"speaker_confirmed,omitempty"`
	SpeakerNotes       string `dynamodbav:"speaker_notes,omitempty"`
}

// FirmOfferDynamoRepository persists FirmOffer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_access_token-index on speaker_access_token
//   - GSI speaker_review_token-index on speaker_review_token
//
// Every lifecycle write is a single UpdateItem whose ConditionExpression is the
// transition guard, so two concurrent writers can not both pass it.
type FirmOfferDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFirmOfferRepository = (*FirmOfferDynamoRepository)(nil)

func NewFirmOfferDynamoRepository(ddb DynamoAPI, tableName string) *FirmOfferDynamoRepository {
	if tableName == "" {
		tableName = DefaultFirmOffersTableName
	}
	return &FirmOfferDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FirmOfferDynamoRepository) Create(ctx context.Context, o entities.FirmOffer) (entities.FirmOffer, error) {
	o.FirmOfferDocuments = o.FirmOfferDocuments.Normalize()
	av, err := encodeFirmOffer(o)
	if err != nil {
		return entities.FirmOffer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.FirmOffer{}, err
	}
	return o, nil
}

func (r *FirmOfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.FirmOffer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if len(out.Item) == 0 {
		return entities.FirmOffer{}, nil
	}
	return decodeFirmOffer(out.Item)
}

func (r *FirmOfferDynamoRepository) GetByClientToken(ctx context.Context, token string) (entities.FirmOffer, error) {
	return r.getByToken(ctx, clientTokenIndex, clientTokenAttr, token)
}

func (r *FirmOfferDynamoRepository) GetBySpeakerToken(ctx context.Context, token string) (entities.FirmOffer, error) {
	return r.getByToken(ctx, speakerTokenIndex, speakerTokenAttr, token)
}

// getByToken resolves the token through its index, then re-reads the base
// item consistently since index reads may lag the last guarded write.
func (r *FirmOfferDynamoRepository) getByToken(ctx context.Context, index, attr, token string) (entities.FirmOffer, error) {
	if strings.TrimSpace(token) == "" {
		return entities.FirmOffer{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#token": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": str(token),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.FirmOffer{}, err
	}
	if len(out.Items) == 0 {
		return entities.FirmOffer{}, nil
	}

	var it firmOfferItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.FirmOffer{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *FirmOfferDynamoRepository) List(ctx context.Context) ([]entities.FirmOffer, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var out []entities.FirmOffer
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			o, err := decodeFirmOffer(item)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *FirmOfferDynamoRepository) UpdateDocuments(
	ctx context.Context,
	id string,
	docs entities.FirmOfferDocuments,
	allowed []entities.FirmOfferStatus,
	at time.Time,
) (entities.FirmOffer, error) {
	encoded, err := encodeDocuments(docs.Normalize())
	if err != nil {
		return entities.FirmOffer{}, err
	}

	values := map[string]types.AttributeValue{
		":updated_at": str(formatTime(at)),
	}
	names := map[string]string{
		"#status":            "status",
		"#updated_at":        "updated_at",
		"#speaker_confirmed": "speaker_confirmed",
	}
	sets := []string{"#updated_at = :updated_at"}
	for attr, v := range encoded {
		names["#"+attr] = attr
		values[":"+attr] = v
		sets = append(sets, "#"+attr+" = :"+attr)
	}

	cond := "attribute_not_exists(#speaker_confirmed) AND " + statusIn(allowed, values)
	return r.update(ctx, id, "SET "+strings.Join(sets, ", "), cond, values, names)
}

func (r *FirmOfferDynamoRepository) MarkSubmitted(ctx context.Context, id string, at time.Time) (entities.FirmOffer, error) {
	values := map[string]types.AttributeValue{
		":submitted": str(string(entities.FirmOfferStatusSubmitted)),
		":at":        str(formatTime(at)),
	}
	names := map[string]string{
		"#status":       "status",
		"#submitted_at": "submitted_at",
		"#updated_at":   "updated_at",
	}
	expr := "SET #status = :submitted, #submitted_at = if_not_exists(#submitted_at, :at), #updated_at = :at"
	return r.update(ctx, id, expr, statusIn(entities.SubmittableStatuses, values), values, names)
}

func (r *FirmOfferDynamoRepository) MarkSentToSpeaker(ctx context.Context, id, speakerToken, speakerEmail string, at time.Time) (entities.FirmOffer, error) {
	values := map[string]types.AttributeValue{
		":sent":  str(string(entities.FirmOfferStatusSentToSpeaker)),
		":token": str(speakerToken),
		":at":    str(formatTime(at)),
	}
	names := map[string]string{
		"#status":             "status",
		"#speaker_token":      speakerTokenAttr,
		"#sent_to_speaker_at": "sent_to_speaker_at",
		"#updated_at":         "updated_at",
		"#speaker_confirmed":  "speaker_confirmed",
	}
	expr := "SET #status = :sent, #speaker_token = if_not_exists(#speaker_token, :token), " +
		"#sent_to_speaker_at = if_not_exists(#sent_to_speaker_at, :at), #updated_at = :at"
	if speakerEmail != "" {
		values[":speaker_email"] = str(speakerEmail)
		names["#speaker_email"] = "speaker_email"
		expr += ", #speaker_email = :speaker_email"
	}

	cond := "attribute_not_exists(#speaker_confirmed) AND " + statusIn(entities.SendableStatuses, values)
	return r.update(ctx, id, expr, cond, values, names)
}

func (r *FirmOfferDynamoRepository) MarkSpeakerViewed(ctx context.Context, id string, at time.Time) (entities.FirmOffer, error) {
	values := map[string]types.AttributeValue{
		":sent": str(string(entities.FirmOfferStatusSentToSpeaker)),
		":at":   str(formatTime(at)),
	}
	names := map[string]string{
		"#status":            "status",
		"#speaker_viewed_at": "speaker_viewed_at",
	}
	expr := "SET #speaker_viewed_at = if_not_exists(#speaker_viewed_at, :at)"
	return r.update(ctx, id, expr, "#status = :sent", values, names)
}

func (r *FirmOfferDynamoRepository) RecordSpeakerDecision(ctx context.Context, id string, d entities.SpeakerDecision) (entities.FirmOffer, error) {
	values := map[string]types.AttributeValue{
		":sent":      str(string(entities.FirmOfferStatusSentToSpeaker)),
		":confirmed": &types.AttributeValueMemberBOOL{Value: d.Confirmed},
		":at":        str(formatTime(d.RespondedAt)),
		":notes":     str(d.Notes),
	}
	names := map[string]string{
		"#status":              "status",
		"#speaker_confirmed":   "speaker_confirmed",
		"#speaker_response_at": "speaker_response_at",
		"#speaker_notes":       "speaker_notes",
		"#updated_at":          "updated_at",
	}
	expr := "SET #speaker_confirmed = :confirmed, #speaker_response_at = :at, #speaker_notes = :notes, #updated_at = :at"
	cond := "#status = :sent AND attribute_not_exists(#speaker_confirmed)"
	return r.update(ctx, id, expr, cond, values, names)
}

func (r *FirmOfferDynamoRepository) ResetHold(ctx context.Context, id string, holdExpiresAt, at time.Time) (entities.FirmOffer, error) {
	values := map[string]types.AttributeValue{
		":hold": str(formatTime(holdExpiresAt)),
		":at":   str(formatTime(at)),
	}
	names := map[string]string{
		"#hold_expires_at":   "hold_expires_at",
		"#updated_at":        "updated_at",
		"#speaker_confirmed": "speaker_confirmed",
	}
	expr := "SET #hold_expires_at = :hold, #updated_at = :at"
	return r.update(ctx, id, expr, "attribute_not_exists(#speaker_confirmed)", values, names)
}

// update runs a guarded UpdateItem. A missing item yields a zero FirmOffer; a
// failed guard yields the current item and interfaces.ErrConditionFailed.
func (r *FirmOfferDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	condition string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.FirmOffer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND (" + condition + ")"),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.FirmOffer{}, nil
			}
			current, decodeErr := decodeFirmOffer(cfe.Item)
			if decodeErr != nil {
				return entities.FirmOffer{}, decodeErr
			}
			return current, interfaces.ErrConditionFailed
		}
		return entities.FirmOffer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FirmOffer{}, nil
	}
	return decodeFirmOffer(out.Attributes)
}

func encodeFirmOffer(o entities.FirmOffer) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toFirmOfferItem(o))
	if err != nil {
		return nil, err
	}
	docs, err := encodeDocuments(o.FirmOfferDocuments)
	if err != nil {
		return nil, err
	}
	for k, v := range docs {
		av[k] = v
	}
	return av, nil
}

func decodeFirmOffer(item map[string]types.AttributeValue) (entities.FirmOffer, error) {
	var it firmOfferItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.FirmOffer{}, err
	}
	docs, err := decodeDocuments(item)
	if err != nil {
		return entities.FirmOffer{}, err
	}
	o := fromFirmOfferItem(it)
	o.FirmOfferDocuments = docs
	return o, nil
}

func toFirmOfferItem(o entities.FirmOffer) firmOfferItem {
	return firmOfferItem{
		ID:                 o.ID,
		ProposalID:         o.ProposalID,
		DealID:             o.DealID,
		Status:             string(o.Status),
		ClientAccessToken:  o.ClientAccessToken,
		SpeakerReviewToken: o.SpeakerReviewToken,
		SpeakerEmail:       o.SpeakerEmail,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
		HoldExpiresAt:      formatTime(o.HoldExpiresAt),
		SubmittedAt:        formatTimePtr(o.SubmittedAt),
		SentToSpeakerAt:    formatTimePtr(o.SentToSpeakerAt),
		SpeakerViewedAt:    formatTimePtr(o.SpeakerViewedAt),
		SpeakerResponseAt:  formatTimePtr(o.SpeakerResponseAt),
		SpeakerConfirmed:   o.SpeakerConfirmed,
		SpeakerNotes:       o.SpeakerNotes,
	}
}

func fromFirmOfferItem(it firmOfferItem) entities.FirmOffer {
	return entities.FirmOffer{
		ID:                 it.ID,
		ProposalID:         it.ProposalID,
		DealID:             it.DealID,
		Status:             entities.FirmOfferStatus(it.Status),
		ClientAccessToken:  it.ClientAccessToken,
		SpeakerReviewToken: it.SpeakerReviewToken,
		SpeakerEmail:       it.SpeakerEmail,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		HoldExpiresAt:      parseTime(it.HoldExpiresAt),
		SubmittedAt:        parseTimePtr(it.SubmittedAt),
		SentToSpeakerAt:    parseTimePtr(it.SentToSpeakerAt),
		SpeakerViewedAt:    parseTimePtr(it.SpeakerViewedAt),
		SpeakerResponseAt:  parseTimePtr(it.SpeakerResponseAt),
		SpeakerConfirmed:   it.SpeakerConfirmed,
		SpeakerNotes:       it.SpeakerNotes,
	}
}
