package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName       = "contracts"
	defaultDetailsTableName         = "contract_details"
	defaultHistoryTableName         = "contract_status_history"
	defaultRetryAttemptsTableName   = "retry_attempts"
	defaultAppliedEventsTableName   = "applied_events"
	defaultBureauSnapshotsTableName = "bureau_snapshots"
	defaultAttachmentsTableName     = "contract_attachments"
	defaultClientContractsTableName = "client_contracts"

	retryAttemptsContractIndex = "contract_token-index"
	retryAttemptsPendingIndex  = "pending-index"
	maxTransactItems           = 100
	conditionalCheckFailedCode = "ConditionalCheckFailed"
)

// Tables names every DynamoDB table the repositories use.
type Tables struct {
	Contracts       string
	Details         string
	History         string
	RetryAttempts   string
	AppliedEvents   string
	BureauSnapshots string
	Attachments     string
	ClientContracts string
}

func TablesFromEnv() Tables {
	return Tables{
		Contracts:       getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
		Details:         getenvDefault("CONTRACT_DETAILS_TABLE", defaultDetailsTableName),
		History:         getenvDefault("STATUS_HISTORY_TABLE", defaultHistoryTableName),
		RetryAttempts:   getenvDefault("RETRY_ATTEMPTS_TABLE", defaultRetryAttemptsTableName),
		AppliedEvents:   getenvDefault("APPLIED_EVENTS_TABLE", defaultAppliedEventsTableName),
		BureauSnapshots: getenvDefault("BUREAU_SNAPSHOTS_TABLE", defaultBureauSnapshotsTableName),
		Attachments:     getenvDefault("ATTACHMENTS_TABLE", defaultAttachmentsTableName),
		ClientContracts: getenvDefault("CLIENT_CONTRACTS_TABLE", defaultClientContractsTableName),
	}
}

// DynamoAPI is the subset of *dynamodb.Client the repositories call.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// ContractDynamoRepository persists contracts and everything they own in DynamoDB.
//
// Table requirements:
//   - contracts: PK token (string)
//   - client_contracts: PK client_id (string), tokens (string set)
//   - contract_details: PK contract_token (string), SK kind (string)
//   - contract_status_history: PK contract_token (string), SK seq (number)
//   - applied_events: PK key (string)
//   - bureau_snapshots: PK benefit_number (string)
//
// Commit writes one transaction: the contract put is conditioned on the version read by
// the caller, the history put on the sequence being new and the applied event put on the
// idempotency key being new. Creations add their tokens to the client_contracts item in
// the same transaction, so ListByClient reads a client's contracts with strongly
// consistent reads only.
type ContractDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoAPI, tables Tables) *ContractDynamoRepository {
	return &ContractDynamoRepository{ddb: ddb, tables: tables}
}

// itemRole remembers what each transaction item guards, to map cancellation reasons.
type itemRole int

const (
	roleOther itemRole = iota
	roleContract
	roleAppliedEvent
)

func (r *ContractDynamoRepository) Commit(ctx context.Context, writes ...interfaces.ContractWrite) error {
	var items []types.TransactWriteItem
	var roles []itemRole
	add := func(role itemRole, it types.TransactWriteItem) {
		items = append(items, it)
		roles = append(roles, role)
	}
	now := time.Now().UTC()
	var clients []string
	created := map[string][]string{}

	for _, w := range writes {
		if w.ExpectedVersion == 0 {
			id := w.Contract.Client.ID
			if _, ok := created[id]; !ok {
				clients = append(clients, id)
			}
			created[id] = append(created[id], w.Contract.Token)
		}

		put, err := r.contractPut(w)
		if err != nil {
			return err
		}
		add(roleContract, types.TransactWriteItem{Put: put})

		for _, d := range w.Details {
			av, err := attributevalue.MarshalMap(toDetailItem(d))
			if err != nil {
				return err
			}
			add(roleOther, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tables.Details), Item: av}})
		}
		if w.CloseEntry != nil && w.CloseEntry.DataFaseFinal != nil {
			add(roleOther, types.TransactWriteItem{Update: &types.Update{
				TableName: aws.String(r.tables.History),
				Key: map[string]types.AttributeValue{
					"contract_token": &types.AttributeValueMemberS{Value: w.CloseEntry.ContractToken},
					"seq":            &types.AttributeValueMemberN{Value: fmt.Sprint(w.CloseEntry.Seq)},
				},
				UpdateExpression:    aws.String("SET #final = :final"),
				ConditionExpression: aws.String("attribute_exists(#seq)"),
				ExpressionAttributeNames: map[string]string{
					"#final": "data_fase_final",
					"#seq":   "seq",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":final": &types.AttributeValueMemberS{Value: formatTime(*w.CloseEntry.DataFaseFinal)},
				},
			}})
		}
		if w.AppendEntry != nil {
			av, err := attributevalue.MarshalMap(toHistoryItem(*w.AppendEntry))
			if err != nil {
				return err
			}
			add(roleOther, types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.tables.History),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#seq)"),
				ExpressionAttributeNames: map[string]string{"#seq": "seq"},
			}})
		}
		if w.IdempotencyKey != "" {
			av, err := attributevalue.MarshalMap(newAppliedEventItem(w.IdempotencyKey, w.Contract.Token, now))
			if err != nil {
				return err
			}
			add(roleAppliedEvent, types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.tables.AppliedEvents),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#key)"),
				ExpressionAttributeNames: map[string]string{"#key": "key"},
			}})
		}
		for _, a := range w.RetryAttempts {
			av, err := attributevalue.MarshalMap(toRetryAttemptItem(a))
			if err != nil {
				return err
			}
			add(roleOther, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tables.RetryAttempts), Item: av}})
		}
		if w.BureauSnapshot != nil && w.BureauSnapshot.BenefitNumber != "" {
			av, err := attributevalue.MarshalMap(toBureauSnapshotItem(*w.BureauSnapshot))
			if err != nil {
				return err
			}
			add(roleOther, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tables.BureauSnapshots), Item: av}})
		}
	}

	for _, id := range clients {
		add(roleOther, types.TransactWriteItem{Update: r.clientContractsUpdate(id, created[id])})
	}

	if len(items) == 0 {
		return nil
	}
	if len(items) > maxTransactItems {
		return fmt.Errorf("commit has %d items, dynamodb allows %d per transaction", len(items), maxTransactItems)
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactionError(err, roles)
	}
	return nil
}

func (r *ContractDynamoRepository) contractPut(w interfaces.ContractWrite) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toContractItem(w.Contract))
	if err != nil {
		return nil, err
	}
	put := &types.Put{TableName: aws.String(r.tables.Contracts), Item: av}
	if w.ExpectedVersion == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#token)")
		put.ExpressionAttributeNames = map[string]string{"#token": "token"}
		return put, nil
	}
	put.ConditionExpression = aws.String("#version = :expected")
	put.ExpressionAttributeNames = map[string]string{"#version": "version"}
	put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberN{Value: fmt.Sprint(w.ExpectedVersion)},
	}
	return put, nil
}

// mapTransactionError turns a cancelled transaction into ErrAlreadyApplied when the
// idempotency key was the failing condition, and into ErrVersionConflict for any other
// failed condition.
func mapTransactionError(err error, roles []itemRole) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	conflict := false
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != conditionalCheckFailedCode {
			continue
		}
		if i < len(roles) && roles[i] == roleAppliedEvent {
			return interfaces.ErrAlreadyApplied
		}
		conflict = true
	}
	if conflict {
		return interfaces.ErrVersionConflict
	}
	return err
}

func (r *ContractDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Contracts),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// clientContractsUpdate adds new contract tokens to the client's index item. One client
// gets a single update per transaction, which DynamoDB requires.
func (r *ContractDynamoRepository) clientContractsUpdate(clientID string, tokens []string) *types.Update {
	return &types.Update{
		TableName: aws.String(r.tables.ClientContracts),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		UpdateExpression:         aws.String("ADD #tokens :tokens, #count :n"),
		ExpressionAttributeNames: map[string]string{"#tokens": "tokens", "#count": "contract_count"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tokens": &types.AttributeValueMemberSS{Value: tokens},
			":n":      &types.AttributeValueMemberN{Value: fmt.Sprint(len(tokens))},
		},
	}
}

// ListByClient reads the client's index item and then each contract, all with strongly
// consistent reads, so a contract committed just before is always seen.
func (r *ContractDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.ClientContracts),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var index clientContractsItem
	if len(out.Item) > 0 {
		if err := attributevalue.UnmarshalMap(out.Item, &index); err != nil {
			return nil, err
		}
	}

	items := make([]entities.Contract, 0, len(index.Tokens))
	for _, token := range index.Tokens {
		c, err := r.GetByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if c.Token != "" {
			items = append(items, c)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].Token < items[j].Token
	})
	return items, nil
}

func (r *ContractDynamoRepository) ListDetails(ctx context.Context, token string) ([]entities.ProductDetail, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Details),
		KeyConditionExpression: aws.String("contract_token = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProductDetail, 0, len(raws))
	for _, raw := range raws {
		var it detailItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDetailItem(it))
	}
	return items, nil
}

func (r *ContractDynamoRepository) ListStatusHistory(ctx context.Context, token string) ([]entities.StatusHistoryEntry, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.History),
		KeyConditionExpression: aws.String("contract_token = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: token},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.StatusHistoryEntry, 0, len(raws))
	for _, raw := range raws {
		var it historyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromHistoryItem(it))
	}
	return items, nil
}

func (r *ContractDynamoRepository) IsApplied(ctx context.Context, key string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.AppliedEvents),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *ContractDynamoRepository) GetBureauSnapshot(ctx context.Context, benefitNumber string) (entities.BureauResult, bool, error) {
	if benefitNumber == "" {
		return entities.BureauResult{}, false, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.BureauSnapshots),
		Key: map[string]types.AttributeValue{
			"benefit_number": &types.AttributeValueMemberS{Value: benefitNumber},
		},
	})
	if err != nil {
		return entities.BureauResult{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.BureauResult{}, false, nil
	}
	var it bureauSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BureauResult{}, false, err
	}
	return fromBureauSnapshotItem(it), true, nil
}

// queryAll follows LastEvaluatedKey until the query is exhausted or in.Limit items were read.
func queryAll(ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var out []map[string]types.AttributeValue
	limit := int(aws.ToInt32(in.Limit))
	for {
		page, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if len(page.LastEvaluatedKey) == 0 || (limit > 0 && len(out) >= limit) {
			break
		}
		next := *in
		next.ExclusiveStartKey = page.LastEvaluatedKey
		in = &next
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
