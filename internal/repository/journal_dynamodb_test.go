package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/benx421/payment-gateway/e4/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTable = "e4_transactions"

func TestDynamoJournal_CreateAndFind(t *testing.T) {
	ddb := mocks.NewMockDynamoDBAPI(t)
	repo := NewDynamoJournal(ddb, testTable)

	var stored map[string]types.AttributeValue
	ddb.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return aws.ToString(in.TableName) == testTable &&
			aws.ToString(in.ConditionExpression) == "attribute_not_exists(#id)"
	})).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*dynamodb.PutItemInput).Item
	}).Return(&dynamodb.PutItemOutput{}, nil).Once()

	entry := &models.JournalEntry{
		Action:          models.ActionPurchase,
		TransactionType: "00",
		Success:         true,
		Message:         "Approved",
		Authorization:   "ET1700;100;184638",
		CVVResult:       "M",
		AmountCents:     100,
		Test:            true,
		Response: map[string]any{
			"transaction_approved": json.Number("1"),
		},
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	require.NotNil(t, stored)

	id, ok := stored["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, entry.ID.String(), id.Value)

	ddb.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
		key, ok := in.Key["id"].(*types.AttributeValueMemberS)
		return ok && key.Value == entry.ID.String()
	})).Return(&dynamodb.GetItemOutput{Item: stored}, nil).Once()

	found, err := repo.FindByID(context.Background(), entry.ID)
	require.NoError(t, err)

	assert.Equal(t, entry.ID, found.ID)
	assert.Equal(t, models.ActionPurchase, found.Action)
	assert.Equal(t, "00", found.TransactionType)
	assert.Equal(t, "ET1700;100;184638", found.Authorization)
	assert.Equal(t, int64(100), found.AmountCents)
	assert.True(t, found.Success)
	assert.True(t, found.Test)
	assert.True(t, entry.CreatedAt.Equal(found.CreatedAt))
	assert.Equal(t, json.Number("1"), found.Response["transaction_approved"])
}

func TestDynamoJournal_CreateDuplicate(t *testing.T) {
	ddb := mocks.NewMockDynamoDBAPI(t)
	repo := NewDynamoJournal(ddb, testTable)

	condErr := &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	ddb.On("PutItem", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("operation error DynamoDB: PutItem, %w", condErr)).Once()

	err := repo.Create(context.Background(), &models.JournalEntry{Action: models.ActionVoid})
	assert.ErrorIs(t, err, models.ErrDuplicateEntry)
}

func TestDynamoJournal_CreateError(t *testing.T) {
	ddb := mocks.NewMockDynamoDBAPI(t)
	repo := NewDynamoJournal(ddb, testTable)

	boom := errors.New("throttled")
	ddb.On("PutItem", mock.Anything, mock.Anything).Return(nil, boom).Once()

	err := repo.Create(context.Background(), &models.JournalEntry{Action: models.ActionVoid})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, models.ErrDuplicateEntry)
}

func TestDynamoJournal_FindByIDNotFound(t *testing.T) {
	ddb := mocks.NewMockDynamoDBAPI(t)
	repo := NewDynamoJournal(ddb, testTable)

	ddb.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDynamoJournal_FindByIDInvalidItem(t *testing.T) {
	ddb := mocks.NewMockDynamoDBAPI(t)
	repo := NewDynamoJournal(ddb, testTable)

	item, err := attributevalue.MarshalMap(journalItem{ID: "not-a-uuid", Action: "void"})
	require.NoError(t, err)
	ddb.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil).Once()

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "invalid journal entry id")
}

func TestNopJournal(t *testing.T) {
	repo := NewNopJournal()

	require.NoError(t, repo.Create(context.Background(), &models.JournalEntry{}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
