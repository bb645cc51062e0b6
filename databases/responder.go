package databases

// go generate: mockery --name ResponderDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bantaydagat/bantay-dagat-api/models"
)

const responderName = "responders"

// ResponderDatabase contains the methods to use with the responder database
type ResponderDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Responder, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Responder, error)
	InsertOne(ctx context.Context, responder models.Responder) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Responder, error)
	EnsureIndexes(ctx context.Context) error
}

type responderDatabase struct {
	db DatabaseHelper
}

// NewResponderDatabase initializes a new instance of responder database with the provided db connection
func NewResponderDatabase(db DatabaseHelper) ResponderDatabase {
	return &responderDatabase{
		db: db,
	}
}

func (rd *responderDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Responder, error) {
	responder := &models.Responder{}
	err := rd.db.Collection(responderName).FindOne(ctx, filter).Decode(responder)
	if err != nil {
		return nil, err
	}
	return responder, nil
}

func (rd *responderDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Responder, error) {
	var responders []models.Responder
	cr, err := rd.db.Collection(responderName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cr.Decode(&responders)
	if err != nil {
		return nil, err
	}
	return responders, nil
}

func (rd *responderDatabase) InsertOne(ctx context.Context, responder models.Responder) error {
	_, err := rd.db.Collection(responderName).InsertOne(ctx, responder)
	return err
}

func (rd *responderDatabase) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Responder, error) {
	filter := bson.M{"_id": id}
	res, err := rd.db.Collection(responderName).UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"active": active, "updatedAt": time.Now()},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return rd.FindOne(ctx, filter)
}

// EnsureIndexes makes email unique
func (rd *responderDatabase) EnsureIndexes(ctx context.Context) error {
	return rd.db.Collection(responderName).CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
}
