package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAdminAPI is the subset of *dynamodb.Client EnsureTables calls.
type TableAdminAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the tables and indexes the repositories expect. Existing tables are
// left untouched. Meant for local environments; production tables are provisioned apart.
func EnsureTables(ctx context.Context, ddb TableAdminAPI, tables Tables, log *zap.Logger) error {
	for _, in := range tableDefinitions(tables) {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Info("[schema][repository] table created", zap.String("table", aws.ToString(in.TableName)))
		case errors.As(err, &inUse):
			log.Debug("[schema][repository] table exists", zap.String("table", aws.ToString(in.TableName)))
		default:
			return err
		}
	}
	return nil
}

func tableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.Contracts),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("token"),
			KeySchema:            keys("token", ""),
		},
		{
			TableName:            aws.String(t.ClientContracts),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("client_id"),
			KeySchema:            keys("client_id", ""),
		},
		{
			TableName:            aws.String(t.Details),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("contract_token", "kind"),
			KeySchema:            keys("contract_token", "kind"),
		},
		{
			TableName:   aws.String(t.History),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("contract_token"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("seq"), AttributeType: types.ScalarAttributeTypeN},
			},
			KeySchema: keys("contract_token", "seq"),
		},
		{
			TableName:            aws.String(t.RetryAttempts),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("id", "contract_token", "pending", "proxima_tentativa_em"),
			KeySchema:            keys("id", ""),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				index(retryAttemptsContractIndex, "contract_token", ""),
				index(retryAttemptsPendingIndex, "pending", "proxima_tentativa_em"),
			},
		},
		{
			TableName:            aws.String(t.AppliedEvents),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("key"),
			KeySchema:            keys("key", ""),
		},
		{
			TableName:            aws.String(t.BureauSnapshots),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("benefit_number"),
			KeySchema:            keys("benefit_number", ""),
		},
		{
			TableName:            aws.String(t.Attachments),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("contract_token", "object_key"),
			KeySchema:            keys("contract_token", "object_key"),
		},
	}
}

func attrs(names ...string) []types.AttributeDefinition {
	out := make([]types.AttributeDefinition, 0, len(names))
	for _, n := range names {
		out = append(out, types.AttributeDefinition{AttributeName: aws.String(n), AttributeType: types.ScalarAttributeTypeS})
	}
	return out
}

func keys(hash, sort string) []types.KeySchemaElement {
	out := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
	if sort != "" {
		out = append(out, types.KeySchemaElement{AttributeName: aws.String(sort), KeyType: types.KeyTypeRange})
	}
	return out
}

func index(name, hash, sort string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keys(hash, sort),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
