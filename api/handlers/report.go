package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/config"
	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/lifecycle"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

// ReportEngine is the part of the lifecycle engine the report handlers drive
type ReportEngine interface {
	Submit(ctx context.Context, req models.ReportRequest) (*models.Report, error)
	Transition(ctx context.Context, from models.Partition, id primitive.ObjectID, target string) (*models.Report, error)
	Delete(ctx context.Context, p models.Partition, id primitive.ObjectID) error
}

// Report handles report-related requests
type Report struct {
	RDB    databases.ReportDatabase
	Engine ReportEngine
}

// CreateReportHandler stores a new citizen report as Pending
func (re Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	report, err := re.Engine.Submit(r.Context(), req)
	if errors.Is(err, lifecycle.ErrInvalidReport) {
		config.ErrorStatus("type and a valid responderType are required", http.StatusBadRequest, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to create report", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.ReportResponse{
		Success: true,
		Message: "Report submitted successfully",
		Report:  report,
	})
}

// ListHandler returns every report in the partition, newest first. The
// responderType query parameter narrows the list.
func (re Report) ListHandler(p models.Partition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responderType := r.URL.Query().Get("responderType")
		if responderType != "" && !models.ValidResponderType(responderType) {
			config.ErrorStatus("unknown responderType", http.StatusBadRequest, w, fmt.Errorf("responderType %q", responderType))
			return
		}
		re.list(w, r, p, models.ReportFilter{ResponderType: responderType})
	}
}

// ResponderReportsHandler returns the active reports routed to one responder type
func (re Report) ResponderReportsHandler(responderType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		re.list(w, r, models.PartitionActive, models.ReportFilter{ResponderType: responderType})
	}
}

func (re Report) list(w http.ResponseWriter, r *http.Request, p models.Partition, filter models.ReportFilter) {
	reports, err := re.RDB.List(r.Context(), p, filter)
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// ReportByIDHandler returns one active report
func (re Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDVar(w, r, "id")
	if !ok {
		return
	}
	report, err := re.RDB.FindByID(r.Context(), models.PartitionActive, id)
	if errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("report not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get report", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// UpdateStatusHandler transitions a report held in partition p to the status
// in the request body
func (re Report) UpdateStatusHandler(p models.Partition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := objectIDVar(w, r, "id")
		if !ok {
			return
		}
		var req models.StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
			return
		}

		report, err := re.Engine.Transition(r.Context(), p, id, req.Status)
		if err != nil {
			transitionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ReportResponse{
			Success: true,
			Message: fmt.Sprintf("Report status updated to %s", report.Status),
			Report:  report,
		})
	}
}

// DeleteHandler permanently removes a report from partition p
func (re Report) DeleteHandler(p models.Partition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := objectIDVar(w, r, "id")
		if !ok {
			return
		}
		err := re.Engine.Delete(r.Context(), p, id)
		if errors.Is(err, lifecycle.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		if err != nil {
			config.ErrorStatus("failed to delete report", http.StatusInternalServerError, w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Report deleted"})
	}
}

func transitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		config.ErrorStatus("report not found", http.StatusNotFound, w, err)
	case errors.Is(err, lifecycle.ErrTerminal):
		config.ErrorStatus("report is already closed", http.StatusBadRequest, w, err)
	case errors.Is(err, lifecycle.ErrInvalidStatus):
		config.ErrorStatus("invalid status", http.StatusBadRequest, w, err)
	case errors.Is(err, lifecycle.ErrMissingReporter):
		config.ErrorStatus("report has no reportedBy", http.StatusBadRequest, w, err)
	default:
		config.ErrorStatus("failed to update report status", http.StatusInternalServerError, w, err)
	}
}

// objectIDVar parses the mux path variable as an ObjectID, writing a 400 when
// it is not one
func objectIDVar(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[name])
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("invalid %s", name), http.StatusBadRequest, w, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		zap.S().Warnw("failed to write response", "error", err)
	}
}
