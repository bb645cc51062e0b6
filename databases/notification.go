package databases

// go generate: mockery --name NotificationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bantaydagat/bantay-dagat-api/models"
)

const notificationName = "notifications"

// NotificationDatabase contains the methods to use with the notification database
type NotificationDatabase interface {
	Create(ctx context.Context, notification models.Notification) error
	ListForUser(ctx context.Context, userName string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	EnsureIndexes(ctx context.Context) error
}

type notificationDatabase struct {
	db DatabaseHelper
}

// NewNotificationDatabase initializes a new instance of notification database with the provided db connection
func NewNotificationDatabase(db DatabaseHelper) NotificationDatabase {
	return &notificationDatabase{
		db: db,
	}
}

func (n *notificationDatabase) Create(ctx context.Context, notification models.Notification) error {
	_, err := n.db.Collection(notificationName).InsertOne(ctx, notification)
	return err
}

// ListForUser returns every notification addressed to userName, newest first
func (n *notificationDatabase) ListForUser(ctx context.Context, userName string) ([]models.Notification, error) {
	notifications, err := n.find(ctx, bson.M{"userName": userName},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (n *notificationDatabase) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	filter := bson.M{"_id": id}
	res, err := n.db.Collection(notificationName).UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	notification := &models.Notification{}
	err = n.db.Collection(notificationName).FindOne(ctx, filter).Decode(notification)
	if err != nil {
		return nil, err
	}
	return notification, nil
}

func (n *notificationDatabase) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Notification, error) {
	var notifications []models.Notification
	cr, err := n.db.Collection(notificationName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cr.Decode(&notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *notificationDatabase) EnsureIndexes(ctx context.Context) error {
	return n.db.Collection(notificationName).CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userName", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
}
