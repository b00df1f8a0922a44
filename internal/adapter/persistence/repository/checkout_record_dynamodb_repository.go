package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultCheckoutsTableName = "checkouts"
	checkoutsReferenceIDIndex = "reference_id-index"
)

// ErrCheckoutExists is returned by Create when a record with the same id is stored.
var ErrCheckoutExists = errors.New("checkout record already exists")

// dynamoAPI is the subset of *dynamodb.Client used by the repository.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type checkoutRecordItem struct {
	ID          string                 `dynamodbav:"id"`
	OrderID     string                 `dynamodbav:"order_id"`
	ReferenceID string                 `dynamodbav:"reference_id"`
	Status      string                 `dynamodbav:"status"`
	PaymentURL  string                 `dynamodbav:"payment_url,omitempty"`
	Date        string                 `dynamodbav:"date"`
	Response    map[string]interface{} `dynamodbav:"response,omitempty"`
	ResponseRaw string                 `dynamodbav:"response_raw,omitempty"`
}

// CheckoutRecordDynamoRepository persists CheckoutRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference_id-index (PK: reference_id)
type CheckoutRecordDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICheckoutRecordRepository = (*CheckoutRecordDynamoRepository)(nil)

func NewCheckoutRecordDynamoRepository(ddb dynamoAPI, tableName string) *CheckoutRecordDynamoRepository {
	if tableName == "" {
		tableName = DefaultCheckoutsTableName
	}
	return &CheckoutRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CheckoutRecordDynamoRepository) Create(ctx context.Context, rec entities.CheckoutRecord) (entities.CheckoutRecord, error) {
	av, err := attributevalue.MarshalMap(toCheckoutRecordItem(rec))
	if err != nil {
		return entities.CheckoutRecord{}, fmt.Errorf("marshal checkout record: %w", err)
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
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.CheckoutRecord{}, fmt.Errorf("%w: %s", ErrCheckoutExists, rec.ID)
		}
		return entities.CheckoutRecord{}, err
	}
	return rec, nil
}

func (r *CheckoutRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutRecord{}, nil
	}

	var it checkoutRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutRecord{}, err
	}
	return fromCheckoutRecordItem(it), nil
}

// ListByReferenceID follows LastEvaluatedKey until the index is exhausted.
func (r *CheckoutRecordDynamoRepository) ListByReferenceID(ctx context.Context, referenceID string) ([]entities.CheckoutRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutsReferenceIDIndex),
		KeyConditionExpression: aws.String("reference_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: referenceID},
		},
	})

	records := make([]entities.CheckoutRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it checkoutRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromCheckoutRecordItem(it))
		}
	}
	return records, nil
}

func toCheckoutRecordItem(rec entities.CheckoutRecord) checkoutRecordItem {
	return checkoutRecordItem{
		ID:          rec.ID,
		OrderID:     rec.OrderID,
		ReferenceID: rec.ReferenceID,
		Status:      rec.Status,
		PaymentURL:  rec.PaymentURL,
		Date:        rec.Date.UTC().Format(time.RFC3339Nano),
		Response:    rec.Response,
		ResponseRaw: string(rec.ResponseRaw),
	}
}

func fromCheckoutRecordItem(it checkoutRecordItem) entities.CheckoutRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	rec := entities.CheckoutRecord{
		ID:          it.ID,
		OrderID:     it.OrderID,
		ReferenceID: it.ReferenceID,
		Status:      it.Status,
		PaymentURL:  it.PaymentURL,
		Date:        dt,
		Response:    it.Response,
	}
	if it.ResponseRaw != "" {
		rec.ResponseRaw = json.RawMessage(it.ResponseRaw)
	}
	return rec
}
