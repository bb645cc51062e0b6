package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/databases/mocks"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

func TestUserDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.User)
		arg.Name = "mocked-user"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	// Create new database with mocked Database interface
	userDba := databases.NewUserDatabase(dbHelper)

	// Call method with defined filter, that in our mocked function returns
	// mocked-error
	user, err := userDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, user)
	assert.EqualError(t, err, "mocked-error")

	// Now call the same function with different different filter for correct
	// result
	user, err = userDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, &models.User{Name: "mocked-user"}, user)
	assert.NoError(t, err)
}

func TestUserDatabase_Find(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	crHelper := &mocks.CursorHelper{}

	crHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.User)
		*arg = []models.User{{Name: "mocked-user"}}
	})
	collectionHelper.On("Find", context.Background(), bson.M{"error": true}).Return(nil, errors.New("mocked-error"))
	collectionHelper.On("Find", context.Background(), bson.M{"error": false}).Return(crHelper, nil)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	userDba := databases.NewUserDatabase(dbHelper)

	users, err := userDba.Find(context.Background(), bson.M{"error": true})
	assert.Empty(t, users)
	assert.EqualError(t, err, "mocked-error")

	users, err = userDba.Find(context.Background(), bson.M{"error": false})
	assert.Equal(t, []models.User{{Name: "mocked-user"}}, users)
	assert.NoError(t, err)
}

func TestResponderDatabase_SetActive(t *testing.T) {
	id := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	collectionHelper.On("UpdateOne", mock.Anything, bson.M{"_id": missing}, mock.Anything).Return(&mongo.UpdateResult{}, nil)
	collectionHelper.On("UpdateOne", mock.Anything, bson.M{"_id": id}, mock.MatchedBy(func(update bson.M) bool {
		set, ok := update["$set"].(bson.M)
		return ok && set["active"] == false
	})).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Responder)
		arg.ID = id
		arg.ResponderType = models.ResponderPCG
		arg.Active = false
	})
	collectionHelper.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(srHelper)
	dbHelper.On("Collection", "responders").Return(collectionHelper)

	responderDB := databases.NewResponderDatabase(dbHelper)

	_, err := responderDB.SetActive(context.Background(), missing, false)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	responder, err := responderDB.SetActive(context.Background(), id, false)
	assert.NoError(t, err)
	assert.Equal(t, id, responder.ID)
	assert.False(t, responder.Active)
}

func TestPaginate(t *testing.T) {
	opts := databases.Paginate(0, 0)
	assert.Equal(t, int64(20), *opts.Limit)
	assert.Equal(t, int64(0), *opts.Skip)

	opts = databases.Paginate(500, 3)
	assert.Equal(t, int64(100), *opts.Limit)
	assert.Equal(t, int64(200), *opts.Skip)
}

func TestUserDatabase_EnsureIndexesUniqueEmail(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	collectionHelper.On("CreateIndexes", mock.Anything, mock.MatchedBy(func(idx []mongo.IndexModel) bool {
		return len(idx) == 1 && idx[0].Options != nil && *idx[0].Options.Unique
	})).Return(nil)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	assert.NoError(t, databases.NewUserDatabase(dbHelper).EnsureIndexes(context.Background()))
	collectionHelper.AssertExpectations(t)
}

func TestAdminDatabase_FindOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}
	srHelper.On("Decode", mock.Anything).Return(databases.ErrNotFound)
	collectionHelper.On("FindOne", mock.Anything, bson.M{"email": "nobody@example.com", "active": true}).Return(srHelper)
	dbHelper.On("Collection", "admin_users").Return(collectionHelper)

	admin, err := databases.NewAdminDatabase(dbHelper).FindOne(context.Background(), bson.M{"email": "nobody@example.com", "active": true})
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}
