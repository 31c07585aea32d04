package services

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoClient is an in-memory DynamoDBAPI for tests. Each table is a
// map keyed by the string value of its configured key attribute.
type fakeDynamoClient struct {
	mu     sync.Mutex
	keys   map[string]string // table name -> key attribute name
	tables map[string]map[string]map[string]types.AttributeValue

	// err, when set, fails every operation. Used to simulate an
	// unreachable service.
	err error
}

func newFakeDynamo() *fakeDynamoClient {
	return &fakeDynamoClient{
		keys: map[string]string{
			"Users":        "emailId",
			"UserProfiles": "userId",
		},
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func (f *fakeDynamoClient) keyValue(table string, item map[string]types.AttributeValue) string {
	attr, ok := item[f.keys[table]].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return attr.Value
}

func (f *fakeDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	table := *params.TableName
	if f.tables[table] == nil {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	f.tables[table][f.keyValue(table, params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	table := *params.TableName
	item := f.tables[table][f.keyValue(table, params.Key)]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	table := *params.TableName
	delete(f.tables[table], f.keyValue(table, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[*params.TableName] {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

// itemCount reports how many items a table holds.
func (f *fakeDynamoClient) itemCount(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}
