package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/api"
	"github.com/bantaydagat/bantay-dagat-api/config"
	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/lifecycle"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewResponderDatabase(a.dbHelper)}
	m.SetupGoGuardian()
	adminOnly := api.AdminMiddleware(a.Config.JWTSecret)

	reports := databases.NewReportDatabase(a.dbHelper)
	notifications := databases.NewNotificationDatabase(a.dbHelper)

	re := Report{RDB: reports, Engine: lifecycle.NewEngine(reports, notifications)}
	n := Notification{NDB: notifications}
	ad := Admin{ADB: databases.NewAdminDatabase(a.dbHelper), Secret: a.Config.JWTSecret}
	d := Directory{UDB: databases.NewUserDatabase(a.dbHelper), RDB: databases.NewResponderDatabase(a.dbHelper)}

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/reports", http.HandlerFunc(re.CreateReportHandler)).Methods("POST")
	apiCreate.Handle("/reports", re.ListHandler(models.PartitionActive)).Methods("GET")
	apiCreate.Handle("/reports/{id}", http.HandlerFunc(re.ReportByIDHandler)).Methods("GET")
	apiCreate.Handle("/reports/{id}/status", api.Middleware(re.UpdateStatusHandler(models.PartitionActive))).Methods("PUT")
	apiCreate.Handle("/reports/{id}", api.Middleware(re.DeleteHandler(models.PartitionActive))).Methods("DELETE")

	apiCreate.Handle("/barangay-reports", re.ResponderReportsHandler(models.ResponderBarangay)).Methods("GET")
	apiCreate.Handle("/ngo-reports", re.ResponderReportsHandler(models.ResponderNGO)).Methods("GET")
	apiCreate.Handle("/pcg-reports", re.ResponderReportsHandler(models.ResponderPCG)).Methods("GET")
	apiCreate.Handle("/maritime-reports", re.ResponderReportsHandler(models.ResponderPCG)).Methods("GET")
	apiCreate.Handle("/bfar-reports", re.ResponderReportsHandler(models.ResponderBFAR)).Methods("GET")

	apiCreate.Handle("/ongoing-reports", re.ListHandler(models.PartitionOngoing)).Methods("GET")
	apiCreate.Handle("/ongoing-reports/{id}/status", api.Middleware(re.UpdateStatusHandler(models.PartitionOngoing))).Methods("PUT")
	apiCreate.Handle("/completed-reports", re.ListHandler(models.PartitionCompleted)).Methods("GET")
	apiCreate.Handle("/completed-reports/{id}", api.Middleware(re.DeleteHandler(models.PartitionCompleted))).Methods("DELETE")
	apiCreate.Handle("/cancelled-reports", re.ListHandler(models.PartitionCancelled)).Methods("GET")
	apiCreate.Handle("/cancelled-reports/{id}", api.Middleware(re.DeleteHandler(models.PartitionCancelled))).Methods("DELETE")

	apiCreate.Handle("/notifications/{id}/read", http.HandlerFunc(n.MarkNotificationReadHandler)).Methods("PUT")
	apiCreate.Handle("/notifications/{userName}", http.HandlerFunc(n.UserNotificationsHandler)).Methods("GET")

	apiCreate.Handle("/admin/login", http.HandlerFunc(ad.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/users", adminOnly(http.HandlerFunc(d.UsersHandler))).Methods("GET")
	apiCreate.Handle("/admin/users", adminOnly(http.HandlerFunc(d.CreateUserHandler))).Methods("POST")
	apiCreate.Handle("/admin/users/{id}", adminOnly(http.HandlerFunc(d.UserByIDHandler))).Methods("GET")
	apiCreate.Handle("/admin/users/{id}/status", adminOnly(http.HandlerFunc(d.UpdateUserStatusHandler))).Methods("PUT")
	apiCreate.Handle("/admin/responders", adminOnly(http.HandlerFunc(d.RespondersHandler))).Methods("GET")
	apiCreate.Handle("/admin/responders", adminOnly(http.HandlerFunc(d.CreateResponderHandler))).Methods("POST")
	apiCreate.Handle("/admin/responders/{id}", adminOnly(http.HandlerFunc(d.ResponderByIDHandler))).Methods("GET")
	apiCreate.Handle("/admin/responders/{id}/status", adminOnly(http.HandlerFunc(d.UpdateResponderStatusHandler))).Methods("PUT")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}
	a.Client = client

	ctx, cancel := api.WithQueryTimeout(context.Background(), a.Config.QueryTimeout)
	defer cancel()

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().Errorw("failed to connect to database", "error", err)
		return err
	}
	zap.S().Info("bantay-dagat-api has connected to the database")

	if err := databases.NewReportDatabase(a.dbHelper).EnsureIndexes(ctx); err != nil {
		zap.S().Warnw("failed to create report indexes", "error", err)
	}
	if err := databases.NewNotificationDatabase(a.dbHelper).EnsureIndexes(ctx); err != nil {
		zap.S().Warnw("failed to create notification indexes", "error", err)
	}
	if err := databases.NewUserDatabase(a.dbHelper).EnsureIndexes(ctx); err != nil {
		zap.S().Warnw("failed to create user indexes", "error", err)
	}
	if err := databases.NewResponderDatabase(a.dbHelper).EnsureIndexes(ctx); err != nil {
		zap.S().Warnw("failed to create responder indexes", "error", err)
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Reports exposes the report store for background jobs
func (a *App) Reports() databases.ReportDatabase {
	return databases.NewReportDatabase(a.dbHelper)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
