// Package lifecycle moves reports between the status partitions and notifies
// the original reporter of every change.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

// ReportStore is the partition-local persistence the engine composes moves
// from. FindByID and UpdateStatus return databases.ErrNotFound for an absent
// report, Delete of an absent report succeeds.
type ReportStore interface {
	Insert(ctx context.Context, p models.Partition, report models.Report) error
	InsertIfAbsent(ctx context.Context, p models.Partition, report models.Report) (bool, error)
	FindByID(ctx context.Context, p models.Partition, id primitive.ObjectID) (*models.Report, error)
	UpdateStatus(ctx context.Context, p models.Partition, id primitive.ObjectID, status string, at time.Time) (*models.Report, error)
	Delete(ctx context.Context, p models.Partition, id primitive.ObjectID) error
	List(ctx context.Context, p models.Partition, filter models.ReportFilter) ([]models.Report, error)
}

// NotificationSink receives one notification per successful transition
type NotificationSink interface {
	Create(ctx context.Context, notification models.Notification) error
}

// Engine runs report transitions
type Engine struct {
	Reports       ReportStore
	Notifications NotificationSink
	// Now is the clock used for lifecycle timestamps, time.Now when nil
	Now func() time.Time
}

// NewEngine returns an engine over the given store and sink
func NewEngine(reports ReportStore, notifications NotificationSink) *Engine {
	return &Engine{
		Reports:       reports,
		Notifications: notifications,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

// Submit stores a new report in the active partition with status Pending.
// reportedBy may be empty here, such a report just cannot be transitioned.
func (e *Engine) Submit(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	report := models.Report{
		ID:            primitive.NewObjectID(),
		Type:          strings.TrimSpace(req.Type),
		Description:   strings.TrimSpace(req.Description),
		Address:       strings.TrimSpace(req.Address),
		Comment:       strings.TrimSpace(req.Comment),
		PredictedLaw:  strings.TrimSpace(req.PredictedLaw),
		ReportedBy:    strings.TrimSpace(req.ReportedBy),
		ResponderType: strings.TrimSpace(req.ResponderType),
		Status:        models.StatusPending,
		DateReported:  e.now(),
	}
	if report.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidReport)
	}
	if !models.ValidResponderType(report.ResponderType) {
		return nil, fmt.Errorf("%w: unknown responder type %q", ErrInvalidReport, report.ResponderType)
	}

	if err := e.Reports.Insert(ctx, models.PartitionActive, report); err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	zap.S().Infow("report submitted",
		"id", report.ID.Hex(),
		"type", report.Type,
		"responderType", report.ResponderType,
	)
	return &report, nil
}

// destination resolves where a report in partition from ends up for the
// requested status. move is false for in-place status updates.
func destination(from models.Partition, target string) (to models.Partition, move bool, err error) {
	switch from {
	case models.PartitionActive:
		switch target {
		case models.StatusOngoing:
			return models.PartitionOngoing, true, nil
		case models.StatusCompleted:
			return models.PartitionCompleted, true, nil
		case models.StatusCancelled:
			return models.PartitionCancelled, true, nil
		default:
			return models.PartitionActive, false, nil
		}
	case models.PartitionOngoing:
		switch target {
		case models.StatusCompleted:
			return models.PartitionCompleted, true, nil
		case models.StatusCancelled:
			return models.PartitionCancelled, true, nil
		default:
			return "", false, fmt.Errorf("%w: ongoing reports can only be %s or %s",
				ErrInvalidStatus, models.StatusCompleted, models.StatusCancelled)
		}
	case models.PartitionCompleted, models.PartitionCancelled:
		return "", false, ErrTerminal
	default:
		return "", false, fmt.Errorf("%w: unknown partition %q", ErrInvalidStatus, from)
	}
}

// Transition changes the status of the report with the given id currently
// held in partition from. Moves insert into the destination before deleting
// from the source, so a failure in between leaves a duplicate rather than
// losing the report.
func (e *Engine) Transition(ctx context.Context, from models.Partition, id primitive.ObjectID, target string) (report *models.Report, err error) {
	target = strings.TrimSpace(target)
	defer func() { recordTransition(from, target, err) }()

	if target == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidStatus)
	}
	to, move, err := destination(from, target)
	if err != nil {
		return nil, err
	}

	source, err := e.Reports.FindByID(ctx, from, id)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	if strings.TrimSpace(source.ReportedBy) == "" {
		return nil, ErrMissingReporter
	}

	if !move {
		report, err = e.Reports.UpdateStatus(ctx, from, id, target, e.now())
		if errors.Is(err, databases.ErrNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("update status: %w", err)
		}
	} else {
		var created bool
		report, created, err = e.move(ctx, source, from, to)
		if err != nil {
			return nil, err
		}
		if !created {
			// another request already moved it, that request notified
			return report, nil
		}
	}

	if err := e.notify(ctx, report); err != nil {
		return nil, err
	}
	zap.S().Infow("report transitioned",
		"id", id.Hex(),
		"from", from,
		"to", to,
		"status", report.Status,
	)
	return report, nil
}

// move copies source into partition to and deletes it from partition from.
// created is false when the Ongoing guard found the report already there.
func (e *Engine) move(ctx context.Context, source *models.Report, from, to models.Partition) (*models.Report, bool, error) {
	moved := *source
	moved.Status = to.Status()
	moved.DateOngoing = nil
	moved.DateCompleted = nil
	moved.DateCancelled = nil
	now := e.now()
	switch to {
	case models.PartitionOngoing:
		moved.DateOngoing = &now
	case models.PartitionCompleted:
		moved.DateCompleted = &now
	case models.PartitionCancelled:
		moved.DateCancelled = &now
	}

	created := true
	if to == models.PartitionOngoing {
		inserted, err := e.Reports.InsertIfAbsent(ctx, to, moved)
		if err != nil {
			return nil, false, fmt.Errorf("insert into %s: %w", to, err)
		}
		created = inserted
	} else if err := e.Reports.Insert(ctx, to, moved); err != nil {
		return nil, false, fmt.Errorf("insert into %s: %w", to, err)
	}

	if err := e.Reports.Delete(ctx, from, source.ID); err != nil {
		zap.S().Errorw("report left in two partitions, delete the stale copy",
			"id", source.ID.Hex(),
			"source", from,
			"destination", to,
			"error", err,
		)
		return nil, false, fmt.Errorf("delete from %s: %w", from, err)
	}

	if !created {
		existing, err := e.Reports.FindByID(ctx, to, source.ID)
		if err != nil {
			return nil, false, fmt.Errorf("load %s report: %w", to, err)
		}
		zap.S().Infow("report already moved, skipped duplicate insert", "id", source.ID.Hex(), "partition", to)
		return existing, false, nil
	}
	return &moved, true, nil
}

func (e *Engine) notify(ctx context.Context, report *models.Report) error {
	n := models.Notification{
		ID:        primitive.NewObjectID(),
		UserName:  report.ReportedBy,
		ReportID:  report.ID,
		Message:   StatusMessage(report.Type, report.Status),
		Type:      report.Type,
		CreatedAt: e.now(),
	}
	if err := e.Notifications.Create(ctx, n); err != nil {
		notificationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("create notification: %w", err)
	}
	notificationsTotal.WithLabelValues("success").Inc()
	return nil
}

// StatusMessage is the text sent to a reporter when their report changes status
func StatusMessage(incidentType, status string) string {
	if incidentType == "" {
		return fmt.Sprintf("Your report has been marked as %s.", status)
	}
	return fmt.Sprintf("Your %s report has been marked as %s.", incidentType, status)
}

// Delete permanently removes a report from a partition
func (e *Engine) Delete(ctx context.Context, p models.Partition, id primitive.ObjectID) error {
	_, err := e.Reports.FindByID(ctx, p, id)
	if errors.Is(err, databases.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}
	if err := e.Reports.Delete(ctx, p, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	zap.S().Infow("report deleted", "id", id.Hex(), "partition", p)
	return nil
}
