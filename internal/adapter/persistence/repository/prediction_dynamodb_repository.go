package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"preditor_imoveis/internal/domain/entities"
	"preditor_imoveis/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPredictionsTableName = "predictions"

var ErrPredictionAlreadyExists = errors.New("prediction already exists")

type houseItem struct {
	Area             int    `dynamodbav:"area"`
	Bedrooms         int    `dynamodbav:"bedrooms"`
	Bathrooms        int    `dynamodbav:"bathrooms"`
	Stories          int    `dynamodbav:"stories"`
	MainRoad         int    `dynamodbav:"mainroad"`
	GuestRoom        int    `dynamodbav:"guestroom"`
	Basement         int    `dynamodbav:"basement"`
	HotWaterHeating  int    `dynamodbav:"hotwaterheating"`
	AirConditioning  int    `dynamodbav:"airconditioning"`
	Parking          int    `dynamodbav:"parking"`
	PrefArea         int    `dynamodbav:"prefarea"`
	FurnishingStatus string `dynamodbav:"furnishingstatus"`
}

type predictionItem struct {
	ID              string             `dynamodbav:"id"`
	House           houseItem          `dynamodbav:"house"`
	Features        map[string]float64 `dynamodbav:"features"`
	PredictedPrice  string             `dynamodbav:"predicted_price"`
	FormattedPrice  string             `dynamodbav:"formatted_price"`
	Confidence      string             `dynamodbav:"confidence"`
	ConfidenceScore int                `dynamodbav:"confidence_score"`
	ModelVersion    string             `dynamodbav:"model_version,omitempty"`
	CreatedAt       string             `dynamodbav:"created_at"`
}

// PredictionDynamoRepository persists PredictionRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Records are write-once; there is no update path.

type PredictionDynamoRepository struct {
	ddb       PredictionTableAPI
	tableName string
}

// PredictionTableAPI is the part of the DynamoDB client the repository uses.
type PredictionTableAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

var _ interfaces.IPredictionRepository = (*PredictionDynamoRepository)(nil)

func NewPredictionDynamoRepository(ddb PredictionTableAPI) *PredictionDynamoRepository {
	return &PredictionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PREDICTIONS_TABLE", defaultPredictionsTableName),
	}
}

func (r *PredictionDynamoRepository) Create(ctx context.Context, rec entities.PredictionRecord) (entities.PredictionRecord, error) {
	av, err := attributevalue.MarshalMap(toPredictionItem(rec))
	if err != nil {
		return entities.PredictionRecord{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PredictionRecord{}, fmt.Errorf("%w: %s", ErrPredictionAlreadyExists, rec.ID)
		}
		return entities.PredictionRecord{}, err
	}
	return rec, nil
}

func (r *PredictionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PredictionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PredictionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PredictionRecord{}, nil
	}

	var it predictionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PredictionRecord{}, err
	}
	return fromPredictionItem(it)
}

func toPredictionItem(rec entities.PredictionRecord) predictionItem {
	h := rec.House
	return predictionItem{
		ID: rec.ID,
		House: houseItem{
			Area:             h.Area,
			Bedrooms:         h.Bedrooms,
			Bathrooms:        h.Bathrooms,
			Stories:          h.Stories,
			MainRoad:         h.MainRoad,
			GuestRoom:        h.GuestRoom,
			Basement:         h.Basement,
			HotWaterHeating:  h.HotWaterHeating,
			AirConditioning:  h.AirConditioning,
			Parking:          h.Parking,
			PrefArea:         h.PrefArea,
			FurnishingStatus: string(h.FurnishingStatus),
		},
		Features:        rec.Features.Map(),
		PredictedPrice:  floatToString(rec.PredictedPrice),
		FormattedPrice:  rec.FormattedPrice,
		Confidence:      string(rec.Confidence),
		ConfidenceScore: rec.ConfidenceScore,
		ModelVersion:    rec.ModelVersion,
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPredictionItem(it predictionItem) (entities.PredictionRecord, error) {
	features, err := entities.FeatureVectorFromMap(it.Features)
	if err != nil {
		return entities.PredictionRecord{}, fmt.Errorf("stored prediction %s: %w", it.ID, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.PredictionRecord{}, fmt.Errorf("stored prediction %s: created_at: %w", it.ID, err)
	}
	price, err := strconv.ParseFloat(it.PredictedPrice, 64)
	if err != nil {
		return entities.PredictionRecord{}, fmt.Errorf("stored prediction %s: predicted_price: %w", it.ID, err)
	}
	h := it.House
	return entities.PredictionRecord{
		ID: it.ID,
		House: entities.HouseDescription{
			Area:             h.Area,
			Bedrooms:         h.Bedrooms,
			Bathrooms:        h.Bathrooms,
			Stories:          h.Stories,
			MainRoad:         h.MainRoad,
			GuestRoom:        h.GuestRoom,
			Basement:         h.Basement,
			HotWaterHeating:  h.HotWaterHeating,
			AirConditioning:  h.AirConditioning,
			Parking:          h.Parking,
			PrefArea:         h.PrefArea,
			FurnishingStatus: entities.FurnishingStatus(h.FurnishingStatus),
		},
		Features:        features,
		PredictedPrice:  price,
		FormattedPrice:  it.FormattedPrice,
		Confidence:      entities.Confidence(it.Confidence),
		ConfidenceScore: it.ConfidenceScore,
		ModelVersion:    it.ModelVersion,
		CreatedAt:       createdAt,
	}, nil
}
