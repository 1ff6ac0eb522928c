package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/google/uuid"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the journal
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type journalItem struct {
	ID              string `dynamodbav:"id"`
	Action          string `dynamodbav:"action"`
	TransactionType string `dynamodbav:"transaction_type"`
	Message         string `dynamodbav:"message,omitempty"`
	Authorization   string `dynamodbav:"authorization,omitempty"`
	CVVResult       string `dynamodbav:"cvv_result,omitempty"`
	OrderID         string `dynamodbav:"order_id,omitempty"`
	Response        string `dynamodbav:"response,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	AmountCents     int64  `dynamodbav:"amount_cents"`
	Success         bool   `dynamodbav:"success"`
	Test            bool   `dynamodbav:"test"`
}

// dynamoJournal implements JournalRepository on a DynamoDB table keyed by id
type dynamoJournal struct {
	ddb       DynamoDBAPI
	tableName string
}

// NewDynamoJournal creates a JournalRepository backed by a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
func NewDynamoJournal(ddb DynamoDBAPI, tableName string) JournalRepository {
	return &dynamoJournal{ddb: ddb, tableName: tableName}
}

func (r *dynamoJournal) Create(ctx context.Context, entry *models.JournalEntry) error {
	prepareEntry(entry)

	it, err := toJournalItem(entry)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
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
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return models.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to put journal entry: %w", err)
	}

	return nil
}

func (r *dynamoJournal) FindByID(ctx context.Context, id uuid.UUID) (*models.JournalEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, models.ErrNotFound
	}

	var it journalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journal entry: %w", err)
	}
	return fromJournalItem(it)
}

func toJournalItem(entry *models.JournalEntry) (journalItem, error) {
	it := journalItem{
		ID:              entry.ID.String(),
		Action:          string(entry.Action),
		TransactionType: entry.TransactionType,
		Message:         entry.Message,
		Authorization:   entry.Authorization,
		CVVResult:       entry.CVVResult,
		OrderID:         entry.OrderID,
		CreatedAt:       entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		AmountCents:     entry.AmountCents,
		Success:         entry.Success,
		Test:            entry.Test,
	}

	if entry.Response != nil {
		raw, err := json.Marshal(entry.Response)
		if err != nil {
			return journalItem{}, fmt.Errorf("failed to encode response: %w", err)
		}
		it.Response = string(raw)
	}

	return it, nil
}

func fromJournalItem(it journalItem) (*models.JournalEntry, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid journal entry id %q: %w", it.ID, err)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt) //nolint:errcheck // zero time on legacy items

	response, err := decodeResponse([]byte(it.Response))
	if err != nil {
		return nil, err
	}

	return &models.JournalEntry{
		ID:              id,
		Action:          models.TransactionAction(it.Action),
		TransactionType: it.TransactionType,
		Message:         it.Message,
		Authorization:   it.Authorization,
		CVVResult:       it.CVVResult,
		OrderID:         it.OrderID,
		Response:        response,
		CreatedAt:       createdAt,
		AmountCents:     it.AmountCents,
		Success:         it.Success,
		Test:            it.Test,
	}, nil
}
