package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bantaydagat/bantay-dagat-api/config"
	"github.com/bantaydagat/bantay-dagat-api/databases"
)

// Notification handles the reporter's notification inbox
type Notification struct {
	NDB databases.NotificationDatabase
}

// UserNotificationsHandler returns the notifications addressed to a reporter, newest first
func (n Notification) UserNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userName := strings.TrimSpace(mux.Vars(r)["userName"])
	if userName == "" {
		config.ErrorStatus("userName is required", http.StatusBadRequest, w, errors.New("empty userName"))
		return
	}
	notifications, err := n.NDB.ListForUser(r.Context(), userName)
	if err != nil {
		config.ErrorStatus("failed to get notifications", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkNotificationReadHandler flags a notification as read
func (n Notification) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDVar(w, r, "id")
	if !ok {
		return
	}
	notification, err := n.NDB.MarkRead(r.Context(), id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("notification not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update notification", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, notification)
}
