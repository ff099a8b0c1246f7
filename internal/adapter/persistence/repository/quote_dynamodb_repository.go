package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/entities"
	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Unit        string `dynamodbav:"unit,omitempty"`
	UnitCost    string `dynamodbav:"unit_cost"`
	Multiplier  string `dynamodbav:"multiplier"`
	Quantity    string `dynamodbav:"quantity"`
}

type quoteLaborItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Hours       string `dynamodbav:"hours"`
	Rate        string `dynamodbav:"rate"`
}

type quoteCustomItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Quantity    string `dynamodbav:"quantity"`
}

type quoteItem struct {
	ID              string            `dynamodbav:"id"`
	CustomerName    string            `dynamodbav:"customer_name"`
	CustomerEmail   string            `dynamodbav:"customer_email,omitempty"`
	JobAddress      string            `dynamodbav:"job_address,omitempty"`
	Status          string            `dynamodbav:"status"`
	OverheadPercent string            `dynamodbav:"overhead_percent"`
	MarkupPercent   string            `dynamodbav:"markup_percent"`
	DiscountPercent string            `dynamodbav:"discount_percent"`
	TaxPercent      string            `dynamodbav:"tax_percent"`
	LineItems       []quoteLineItem   `dynamodbav:"line_items,omitempty"`
	LaborItems      []quoteLaborItem  `dynamodbav:"labor_items,omitempty"`
	CustomItems     []quoteCustomItem `dynamodbav:"custom_items,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Only pricing inputs (items and rates) are stored. Totals are derived state
// and are recomputed from the multiplier table on every read, so a stored
// quote can never drift from what the engine would produce.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	table     pricing.MultiplierTable
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, table pricing.MultiplierTable) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		table:     table,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return r.fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:            q.ID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		JobAddress:    q.JobAddress,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.Estimate == nil {
		return it
	}

	it.OverheadPercent = floatToString(q.Estimate.Rates.OverheadPercent)
	it.MarkupPercent = floatToString(q.Estimate.Rates.MarkupPercent)
	it.DiscountPercent = floatToString(q.Estimate.Rates.DiscountPercent)
	it.TaxPercent = floatToString(q.Estimate.Rates.TaxPercent)

	for _, li := range q.Estimate.LineItems {
		it.LineItems = append(it.LineItems, quoteLineItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Unit:        li.Unit,
			UnitCost:    floatToString(li.UnitCost),
			Multiplier:  floatToString(li.Multiplier),
			Quantity:    floatToString(li.Quantity),
		})
	}
	for _, li := range q.Estimate.LaborItems {
		it.LaborItems = append(it.LaborItems, quoteLaborItem{
			ID:          li.ID,
			Description: li.Description,
			Hours:       floatToString(li.Hours),
			Rate:        floatToString(li.Rate),
		})
	}
	for _, ci := range q.Estimate.CustomItems {
		it.CustomItems = append(it.CustomItems, quoteCustomItem{
			ID:          ci.ID,
			Description: ci.Description,
			UnitPrice:   floatToString(ci.UnitPrice),
			Quantity:    floatToString(ci.Quantity),
		})
	}
	return it
}

func (r *QuoteDynamoRepository) fromQuoteItem(it quoteItem) (entities.Quote, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	rates := pricing.Rates{
		OverheadPercent: parseFloatDefault(it.OverheadPercent),
		MarkupPercent:   parseFloatDefault(it.MarkupPercent),
		DiscountPercent: parseFloatDefault(it.DiscountPercent),
		TaxPercent:      parseFloatDefault(it.TaxPercent),
	}

	lineItems := make([]pricing.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lineItems = append(lineItems, pricing.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Category:    li.Category,
			Unit:        li.Unit,
			UnitCost:    parseFloatDefault(li.UnitCost),
			Multiplier:  parseFloatDefault(li.Multiplier),
			Quantity:    parseFloatDefault(li.Quantity),
		})
	}
	laborItems := make([]pricing.LaborItem, 0, len(it.LaborItems))
	for _, li := range it.LaborItems {
		laborItems = append(laborItems, pricing.LaborItem{
			ID:          li.ID,
			Description: li.Description,
			Hours:       parseFloatDefault(li.Hours),
			Rate:        parseFloatDefault(li.Rate),
		})
	}
	customItems := make([]pricing.CustomItem, 0, len(it.CustomItems))
	for _, ci := range it.CustomItems {
		customItems = append(customItems, pricing.CustomItem{
			ID:          ci.ID,
			Description: ci.Description,
			UnitPrice:   parseFloatDefault(ci.UnitPrice),
			Quantity:    parseFloatDefault(ci.Quantity),
		})
	}

	est, err := pricing.Rehydrate(r.table, rates, lineItems, laborItems, customItems)
	if err != nil {
		return entities.Quote{}, err
	}

	return entities.Quote{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		JobAddress:    it.JobAddress,
		Status:        entities.QuoteStatus(it.Status),
		Estimate:      est,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloatDefault(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
