package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bantaydagat/bantay-dagat-api/config"
	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

// Directory manages citizen users and responder accounts for admins
type Directory struct {
	UDB databases.UserDatabase
	RDB databases.ResponderDatabase
}

// UsersHandler lists users, newest first, with limit and page query params
func (d Directory) UsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := d.UDB.Find(r.Context(), bson.M{}, pageOpts(r))
	if err != nil {
		config.ErrorStatus("failed to get users", http.StatusInternalServerError, w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUserHandler adds a user with a bcrypt hashed password
func (d Directory) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	req, hash, ok := decodeAccount(w, r)
	if !ok {
		return
	}
	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.UDB.InsertOne(r.Context(), user); err != nil {
		accountInsertError(w, err)
		return
	}
	zap.S().Infow("user created", "id", user.ID.Hex(), "email", user.Email)
	writeJSON(w, http.StatusCreated, user)
}

// UserByIDHandler returns one user
func (d Directory) UserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDVar(w, r, "id")
	if !ok {
		return
	}
	user, err := d.UDB.FindOne(r.Context(), bson.M{"_id": id})
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("user not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get user", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUserStatusHandler activates or deactivates a user
func (d Directory) UpdateUserStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDVar(w, r, "id")
	if !ok {
		return
	}
	var req models.ActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	user, err := d.UDB.SetActive(r.Context(), id, req.Active)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("user not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update user", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// RespondersHandler lists responders, optionally narrowed by responderType
func (d Directory) RespondersHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if rt := r.URL.Query().Get("responderType"); rt != "" {
		if !models.ValidResponderType(rt) {
			config.ErrorStatus("unknown responderType", http.StatusBadRequest, w, fmt.Errorf("responderType %q", rt))
			return
		}
		filter["responderType"] = rt
	}
	responders, err := d.RDB.Find(r.Context(), filter, pageOpts(r))
	if err != nil {
		config.ErrorStatus("failed to get responders", http.StatusInternalServerError, w, err)
		return
	}
	if responders == nil {
		responders = []models.Responder{}
	}
	writeJSON(w, http.StatusOK, responders)
}

// CreateResponderHandler adds a responder account for one of the responder organizations
func (d Directory) CreateResponderHandler(w http.ResponseWriter, r *http.Request) {
	req, hash, ok := decodeAccount(w, r)
	if !ok {
		return
	}
	if !models.ValidResponderType(req.ResponderType) {
		config.ErrorStatus("a valid responderType is required", http.StatusBadRequest, w, fmt.Errorf("responderType %q", req.ResponderType))
		return
	}
	now := time.Now()
	responder := models.Responder{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		Email:         req.Email,
		Password:      hash,
		ResponderType: req.ResponderType,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := d.RDB.InsertOne(r.Context(), responder); err != nil {
		accountInsertError(w, err)
		return
	}
	zap.S().Infow("responder created", "id", responder.ID.Hex(), "responderType", responder.ResponderType)
	writeJSON(w, http.StatusCreated, responder)
}

// ResponderByIDHandler returns one responder
func (d Directory) ResponderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDVar(w, r, "id")
	if !ok {
		return
	}
	responder, err := d.RDB.FindOne(r.Context(), bson.M{"_id": id})
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("responder not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get responder", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, responder)
}

// UpdateResponderStatusHandler activates or deactivates a responder
func (d Directory) UpdateResponderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDVar(w, r, "id")
	if !ok {
		return
	}
	var req models.ActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	responder, err := d.RDB.SetActive(r.Context(), id, req.Active)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("responder not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update responder", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, responder)
}

// decodeAccount reads an AccountRequest and hashes its password. It writes
// the error response itself and returns false on failure.
func decodeAccount(w http.ResponseWriter, r *http.Request) (models.AccountRequest, string, bool) {
	var req models.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return req, "", false
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.ResponderType = strings.TrimSpace(req.ResponderType)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		config.ErrorStatus("name, email and password are required", http.StatusBadRequest, w, errors.New("missing account fields"))
		return req, "", false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return req, "", false
	}
	return req, string(hash), true
}

func accountInsertError(w http.ResponseWriter, err error) {
	if mongo.IsDuplicateKeyError(err) {
		config.ErrorStatus("email already registered", http.StatusBadRequest, w, err)
		return
	}
	config.ErrorStatus("failed to create account", http.StatusInternalServerError, w, err)
}

func pageOpts(r *http.Request) *options.FindOptions {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	return databases.Paginate(limit, page)
}
