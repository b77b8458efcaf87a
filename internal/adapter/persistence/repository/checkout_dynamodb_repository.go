package repository

import (
	"context"
	"time"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCheckoutsTableName       = "checkouts"
	checkoutsProviderSessionIDIndex = "provider_session_id-index"
)

// dynamoAPI is the part of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

type checkoutLineItem struct {
	ProductID   string  `dynamodbav:"product_id"`
	ProductName string  `dynamodbav:"product_name"`
	Price       float64 `dynamodbav:"price"`
	Quantity    int     `dynamodbav:"quantity"`
	ImageURL    string  `dynamodbav:"image_url,omitempty"`
}

type checkoutItem struct {
	ID                string             `dynamodbav:"id"`
	Provider          string             `dynamodbav:"provider"`
	ProviderSessionID string             `dynamodbav:"provider_session_id"`
	URL               string             `dynamodbav:"url,omitempty"`
	CartID            string             `dynamodbav:"cart_id,omitempty"`
	Items             []checkoutLineItem `dynamodbav:"items"`
	AmountTotal       float64            `dynamodbav:"amount_total"`
	Currency          string             `dynamodbav:"currency"`
	Status            string             `dynamodbav:"status"`
	OrderRecordID     string             `dynamodbav:"order_record_id,omitempty"`
	CreatedAt         string             `dynamodbav:"created_at"`
	CompletedAt       string             `dynamodbav:"completed_at,omitempty"`
}

// CheckoutDynamoRepository persists CheckoutSession records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_session_id-index (PK: provider_session_id)

type CheckoutDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICheckoutRepository = (*CheckoutDynamoRepository)(nil)

func NewCheckoutDynamoRepository(ddb dynamoAPI, tableName string) *CheckoutDynamoRepository {
	return &CheckoutDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOrEnv(tableName, "CHECKOUTS_TABLE", defaultCheckoutsTableName),
	}
}

func (r *CheckoutDynamoRepository) Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	av, err := attributevalue.MarshalMap(toCheckoutItem(s))
	if err != nil {
		return entities.CheckoutSession{}, err
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
		return entities.CheckoutSession{}, err
	}
	return s, nil
}

func (r *CheckoutDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return decodeCheckout(out.Item)
}

func (r *CheckoutDynamoRepository) GetByProviderSessionID(ctx context.Context, providerSessionID string) (entities.CheckoutSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutsProviderSessionIDIndex),
		KeyConditionExpression: aws.String("provider_session_id = :psid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":psid": &types.AttributeValueMemberS{Value: providerSessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if len(out.Items) == 0 {
		return entities.CheckoutSession{}, nil
	}
	return decodeCheckout(out.Items[0])
}

func (r *CheckoutDynamoRepository) MarkCompleted(ctx context.Context, id, orderRecordID string, at time.Time) (entities.CheckoutSession, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #order = :order, #completed = :completed"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#status":    "status",
			"#order":     "order_record_id",
			"#completed": "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: string(entities.CheckoutStatusCompleted)},
			":order":     &types.AttributeValueMemberS{Value: orderRecordID},
			":completed": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CheckoutSession{}, nil
		}
		return entities.CheckoutSession{}, err
	}
	return decodeCheckout(out.Attributes)
}

func decodeCheckout(raw map[string]types.AttributeValue) (entities.CheckoutSession, error) {
	if len(raw) == 0 {
		return entities.CheckoutSession{}, nil
	}
	var it checkoutItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.CheckoutSession{}, err
	}
	return fromCheckoutItem(it), nil
}

func toCheckoutItem(s entities.CheckoutSession) checkoutItem {
	it := checkoutItem{
		ID:                s.ID,
		Provider:          s.Provider,
		ProviderSessionID: s.ProviderSessionID,
		URL:               s.URL,
		CartID:            s.CartID,
		Items:             make([]checkoutLineItem, 0, len(s.Items)),
		AmountTotal:       s.AmountTotal,
		Currency:          s.Currency,
		Status:            string(s.Status),
		OrderRecordID:     s.OrderRecordID,
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, l := range s.Items {
		it.Items = append(it.Items, checkoutLineItem(l))
	}
	if s.CompletedAt != nil {
		it.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromCheckoutItem(it checkoutItem) entities.CheckoutSession {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.CheckoutSession{
		ID:                it.ID,
		Provider:          it.Provider,
		ProviderSessionID: it.ProviderSessionID,
		URL:               it.URL,
		CartID:            it.CartID,
		Items:             make([]entities.CheckoutLine, 0, len(it.Items)),
		AmountTotal:       it.AmountTotal,
		Currency:          it.Currency,
		Status:            entities.CheckoutStatus(it.Status),
		OrderRecordID:     it.OrderRecordID,
		CreatedAt:         created,
	}
	for _, l := range it.Items {
		s.Items = append(s.Items, entities.CheckoutLine(l))
	}
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			s.CompletedAt = &t
		}
	}
	return s
}
