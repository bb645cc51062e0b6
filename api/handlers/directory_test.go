package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/bantaydagat/bantay-dagat-api/api/handlers"
	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/databases/mocks"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

func TestDirectory_CreateResponderHandler(t *testing.T) {
	db := &mocks.ResponderDatabase{}
	db.On("InsertOne", mock.Anything, mock.MatchedBy(func(r models.Responder) bool {
		return r.Email == "pcg@bantaydagat.ph" &&
			r.ResponderType == models.ResponderPCG &&
			r.Active &&
			bcrypt.CompareHashAndPassword([]byte(r.Password), []byte("s3cret")) == nil
	})).Return(nil)

	body := `{"name":"PCG Station","email":" PCG@bantaydagat.ph ","password":"s3cret","responderType":"PCG"}`
	rr := httptest.NewRecorder()
	handlers.Directory{RDB: db}.CreateResponderHandler(rr, httptest.NewRequest(http.MethodPost, "/api/admin/responders", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "s3cret")
	assert.NotContains(t, rr.Body.String(), "password")
	db.AssertExpectations(t)
}

func TestDirectory_CreateResponderHandlerInvalidType(t *testing.T) {
	body := `{"name":"Navy","email":"navy@example.com","password":"x","responderType":"Navy"}`
	rr := httptest.NewRecorder()
	handlers.Directory{RDB: &mocks.ResponderDatabase{}}.CreateResponderHandler(rr, httptest.NewRequest(http.MethodPost, "/api/admin/responders", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDirectory_CreateUserHandlerMissingFields(t *testing.T) {
	rr := httptest.NewRecorder()
	handlers.Directory{UDB: &mocks.UserDatabase{}}.CreateUserHandler(rr, httptest.NewRequest(http.MethodPost, "/api/admin/users", bytes.NewBufferString(`{"name":"Ana"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDirectory_CreateUserHandlerStoreFailure(t *testing.T) {
	db := &mocks.UserDatabase{}
	db.On("InsertOne", mock.Anything, mock.Anything).Return(errors.New("timeout"))

	body := `{"name":"Ana","email":"ana@example.com","password":"pw"}`
	rr := httptest.NewRecorder()
	handlers.Directory{UDB: db}.CreateUserHandler(rr, httptest.NewRequest(http.MethodPost, "/api/admin/users", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestDirectory_UsersHandler(t *testing.T) {
	db := &mocks.UserDatabase{}
	db.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	rr := httptest.NewRecorder()
	handlers.Directory{UDB: db}.UsersHandler(rr, httptest.NewRequest(http.MethodGet, "/api/admin/users?limit=5&page=2", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestDirectory_RespondersHandlerFilter(t *testing.T) {
	db := &mocks.ResponderDatabase{}
	db.On("Find", mock.Anything, mock.MatchedBy(func(f interface{}) bool {
		return f != nil
	}), mock.Anything).Return([]models.Responder{{ID: primitive.NewObjectID(), ResponderType: models.ResponderNGO}}, nil)

	rr := httptest.NewRecorder()
	handlers.Directory{RDB: db}.RespondersHandler(rr, httptest.NewRequest(http.MethodGet, "/api/admin/responders?responderType=NGO", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handlers.Directory{RDB: db}.RespondersHandler(rr, httptest.NewRequest(http.MethodGet, "/api/admin/responders?responderType=Navy", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDirectory_UpdateResponderStatusHandler(t *testing.T) {
	id := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	db := &mocks.ResponderDatabase{}
	db.On("SetActive", mock.Anything, id, false).Return(&models.Responder{ID: id, Active: false}, nil)
	db.On("SetActive", mock.Anything, missing, false).Return(nil, databases.ErrNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/admin/responders/x/status", bytes.NewBufferString(`{"active":false}`)), map[string]string{"id": id.Hex()})
	rr := httptest.NewRecorder()
	handlers.Directory{RDB: db}.UpdateResponderStatusHandler(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/admin/responders/x/status", bytes.NewBufferString(`{"active":false}`)), map[string]string{"id": missing.Hex()})
	rr = httptest.NewRecorder()
	handlers.Directory{RDB: db}.UpdateResponderStatusHandler(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDirectory_UserByIDHandler(t *testing.T) {
	id := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(&models.User{ID: id, Name: "Ana", Password: "hash"}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/admin/users/x", nil), map[string]string{"id": id.Hex()})
	rr := httptest.NewRecorder()
	handlers.Directory{UDB: db}.UserByIDHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")
}
