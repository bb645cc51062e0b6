package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bantaydagat/bantay-dagat-api/api/handlers"
	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/databases/mocks"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

func TestNotification_UserNotificationsHandler(t *testing.T) {
	db := &mocks.NotificationDatabase{}
	db.On("ListForUser", mock.Anything, "Ana").Return([]models.Notification{{
		ID:        primitive.NewObjectID(),
		UserName:  "Ana",
		ReportID:  primitive.NewObjectID(),
		Message:   "Your Oil Spill report has been marked as Ongoing.",
		Type:      "Oil Spill",
		CreatedAt: time.Now(),
	}}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/notifications/Ana", nil), map[string]string{"userName": "Ana"})
	rr := httptest.NewRecorder()
	handlers.Notification{NDB: db}.UserNotificationsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.Notification
	decodeBody(t, rr, &got)
	assert.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "Ongoing")
}

func TestNotification_UserNotificationsHandlerFailure(t *testing.T) {
	db := &mocks.NotificationDatabase{}
	db.On("ListForUser", mock.Anything, "Ana").Return(nil, errors.New("timeout"))

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/notifications/Ana", nil), map[string]string{"userName": "Ana"})
	rr := httptest.NewRecorder()
	handlers.Notification{NDB: db}.UserNotificationsHandler(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestNotification_MarkNotificationReadHandler(t *testing.T) {
	id := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	db := &mocks.NotificationDatabase{}
	db.On("MarkRead", mock.Anything, id).Return(&models.Notification{ID: id, Read: true}, nil)
	db.On("MarkRead", mock.Anything, missing).Return(nil, databases.ErrNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/notifications/x/read", nil), map[string]string{"id": id.Hex()})
	rr := httptest.NewRecorder()
	handlers.Notification{NDB: db}.MarkNotificationReadHandler(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Notification
	decodeBody(t, rr, &got)
	assert.True(t, got.Read)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/notifications/x/read", nil), map[string]string{"id": missing.Hex()})
	rr = httptest.NewRecorder()
	handlers.Notification{NDB: db}.MarkNotificationReadHandler(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/notifications/x/read", nil), map[string]string{"id": "nope"})
	rr = httptest.NewRecorder()
	handlers.Notification{NDB: db}.MarkNotificationReadHandler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
