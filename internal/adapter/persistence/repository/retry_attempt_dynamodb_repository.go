package repository

import (
	"context"
	"sort"
	"time"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RetryAttemptDynamoRepository reads teimosinha rows from DynamoDB. Rows are written by
// ContractDynamoRepository.Commit.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_token-index (PK: contract_token, SK: solicitada_em)
//   - GSI: pending-index (PK: pending, SK: proxima_tentativa_em), sparse
type RetryAttemptDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRetryAttemptRepository = (*RetryAttemptDynamoRepository)(nil)

func NewRetryAttemptDynamoRepository(ddb DynamoAPI, tables Tables) *RetryAttemptDynamoRepository {
	return &RetryAttemptDynamoRepository{ddb: ddb, tableName: tables.RetryAttempts}
}

func (r *RetryAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.RetryAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RetryAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.RetryAttempt{}, nil
	}

	var it retryAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RetryAttempt{}, err
	}
	return fromRetryAttemptItem(it), nil
}

func (r *RetryAttemptDynamoRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]entities.RetryAttempt, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(retryAttemptsPendingIndex),
		KeyConditionExpression: aws.String("#pending = :p AND #due <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#pending": "pending",
			"#due":     "proxima_tentativa_em",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":   &types.AttributeValueMemberS{Value: pendingMarker},
			":now": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	return r.query(ctx, in)
}

func (r *RetryAttemptDynamoRepository) ListByContract(ctx context.Context, token string) ([]entities.RetryAttempt, error) {
	items, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(retryAttemptsContractIndex),
		KeyConditionExpression: aws.String("contract_token = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: token},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	sortAttemptsNewestFirst(items)
	return items, nil
}

func (r *RetryAttemptDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.RetryAttempt, error) {
	raws, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	items := make([]entities.RetryAttempt, 0, len(raws))
	for _, raw := range raws {
		var it retryAttemptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRetryAttemptItem(it))
	}
	return items, nil
}

// sortAttemptsNewestFirst breaks solicitada_em ties by attempt number: the failed call
// and the attempt it schedules are requested at the same instant.
func sortAttemptsNewestFirst(items []entities.RetryAttempt) {
	sort.SliceStable(items, func(i, j int) bool { return newerAttempt(items[i], items[j]) })
}

func newerAttempt(a, b entities.RetryAttempt) bool {
	if !a.SolicitadaEm.Equal(b.SolicitadaEm) {
		return a.SolicitadaEm.After(b.SolicitadaEm)
	}
	return a.Attempt > b.Attempt
}
