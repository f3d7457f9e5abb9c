package repository

import (
	"context"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type attachmentItem struct {
	ContractToken string `dynamodbav:"contract_token"`
	ObjectKey     string `dynamodbav:"object_key"`
	Kind          string `dynamodbav:"kind"`
	FileName      string `dynamodbav:"file_name"`
	ContentType   string `dynamodbav:"content_type"`
	UploadedBy    string `dynamodbav:"uploaded_by"`
	UploadedAt    string `dynamodbav:"uploaded_at"`
}

// AttachmentDynamoRepository persists contract document metadata in DynamoDB. The bytes
// live in S3 under ObjectKey.
//
// Table requirements:
//   - PK: contract_token (string), SK: object_key (string)
type AttachmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAttachmentRepository = (*AttachmentDynamoRepository)(nil)

func NewAttachmentDynamoRepository(ddb DynamoAPI, tables Tables) *AttachmentDynamoRepository {
	return &AttachmentDynamoRepository{ddb: ddb, tableName: tables.Attachments}
}

func (r *AttachmentDynamoRepository) Create(ctx context.Context, a entities.Attachment) (entities.Attachment, error) {
	av, err := attributevalue.MarshalMap(attachmentItem{
		ContractToken: a.ContractToken,
		ObjectKey:     a.ObjectKey,
		Kind:          string(a.Kind),
		FileName:      a.FileName,
		ContentType:   a.ContentType,
		UploadedBy:    a.UploadedBy,
		UploadedAt:    formatTime(a.UploadedAt),
	})
	if err != nil {
		return entities.Attachment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "object_key",
		},
	})
	if err != nil {
		return entities.Attachment{}, err
	}
	return a, nil
}

func (r *AttachmentDynamoRepository) ListByContract(ctx context.Context, token string) ([]entities.Attachment, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("contract_token = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Attachment, 0, len(raws))
	for _, raw := range raws {
		var it attachmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.Attachment{
			ContractToken: it.ContractToken,
			ObjectKey:     it.ObjectKey,
			Kind:          entities.AttachmentKind(it.Kind),
			FileName:      it.FileName,
			ContentType:   it.ContentType,
			UploadedBy:    it.UploadedBy,
			UploadedAt:    parseTime(it.UploadedAt),
		})
	}
	return items, nil
}
