package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/databases/mocks"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

func TestNotificationDatabase_ListForUserNewestFirst(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	newest := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Notification)
		*arg = []models.Notification{{UserName: "Ana", CreatedAt: newest}}
	})
	collectionHelper.On("Find", mock.Anything, bson.M{"userName": "Ana"}, mock.MatchedBy(func(opts *options.FindOptions) bool {
		sort, ok := opts.Sort.(bson.D)
		return ok && len(sort) == 2 &&
			sort[0].Key == "createdAt" && sort[0].Value == -1 &&
			sort[1].Key == "_id" && sort[1].Value == -1
	})).Return(cursorHelper, nil)
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	notifications, err := databases.NewNotificationDatabase(dbHelper).ListForUser(context.Background(), "Ana")

	assert.NoError(t, err)
	assert.Equal(t, []models.Notification{{UserName: "Ana", CreatedAt: newest}}, notifications)
}

func TestNotificationDatabase_ListForUserEmpty(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil)
	collectionHelper.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper, nil)
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	notifications, err := databases.NewNotificationDatabase(dbHelper).ListForUser(context.Background(), "Nobody")

	assert.NoError(t, err)
	assert.Equal(t, []models.Notification{}, notifications)
}

func TestNotificationDatabase_Create(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	n := models.Notification{ID: primitive.NewObjectID(), UserName: "Ana", Message: "Your report has been updated to Ongoing."}
	collectionHelper.On("InsertOne", mock.Anything, n).Return(n.ID, nil).Once()
	collectionHelper.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	notificationDB := databases.NewNotificationDatabase(dbHelper)

	assert.NoError(t, notificationDB.Create(context.Background(), n))
	assert.EqualError(t, notificationDB.Create(context.Background(), n), "mocked-error")
}

func TestNotificationDatabase_MarkReadNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", mock.Anything, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}}).
		Return(&mongo.UpdateResult{}, nil)
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	n, err := databases.NewNotificationDatabase(dbHelper).MarkRead(context.Background(), id)

	assert.Nil(t, n)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}
