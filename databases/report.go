package databases

// go generate: mockery --name ReportDatabase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bantaydagat/bantay-dagat-api/models"
)

var partitionCollections = map[models.Partition]string{
	models.PartitionActive:    "reports",
	models.PartitionOngoing:   "ongoing_reports",
	models.PartitionCompleted: "completed_reports",
	models.PartitionCancelled: "cancelled_reports",
}

// ErrUnknownPartition is returned for a partition without a backing collection
var ErrUnknownPartition = errors.New("unknown partition")

// CollectionName returns the mongo collection backing the partition
func CollectionName(p models.Partition) (string, error) {
	name, ok := partitionCollections[p]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPartition, p)
	}
	return name, nil
}

// ReportDatabase contains the methods to use with the report partitions. Every
// method is local to one partition, moves between partitions are composed by
// the caller.
type ReportDatabase interface {
	Insert(ctx context.Context, p models.Partition, report models.Report) error
	InsertIfAbsent(ctx context.Context, p models.Partition, report models.Report) (bool, error)
	FindByID(ctx context.Context, p models.Partition, id primitive.ObjectID) (*models.Report, error)
	UpdateStatus(ctx context.Context, p models.Partition, id primitive.ObjectID, status string, at time.Time) (*models.Report, error)
	Delete(ctx context.Context, p models.Partition, id primitive.ObjectID) error
	List(ctx context.Context, p models.Partition, filter models.ReportFilter) ([]models.Report, error)
	EnsureIndexes(ctx context.Context) error
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (r *reportDatabase) collection(p models.Partition) (CollectionHelper, error) {
	name, err := CollectionName(p)
	if err != nil {
		return nil, err
	}
	return r.db.Collection(name), nil
}

func (r *reportDatabase) Insert(ctx context.Context, p models.Partition, report models.Report) error {
	coll, err := r.collection(p)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, report)
	return err
}

// InsertIfAbsent inserts the report unless a document with the same _id already
// exists in the partition. The check and the insert are a single upsert so two
// racing callers cannot both insert.
func (r *reportDatabase) InsertIfAbsent(ctx context.Context, p models.Partition, report models.Report) (bool, error) {
	coll, err := r.collection(p)
	if err != nil {
		return false, err
	}
	doc, err := withoutID(report)
	if err != nil {
		return false, err
	}
	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": report.ID},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *reportDatabase) FindByID(ctx context.Context, p models.Partition, id primitive.ObjectID) (*models.Report, error) {
	coll, err := r.collection(p)
	if err != nil {
		return nil, err
	}
	report := &models.Report{}
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportDatabase) UpdateStatus(ctx context.Context, p models.Partition, id primitive.ObjectID, status string, at time.Time) (*models.Report, error) {
	coll, err := r.collection(p)
	if err != nil {
		return nil, err
	}
	update := bson.M{
		"$set": bson.M{
			"status":          status,
			"statusUpdatedAt": at,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	report := &models.Report{}
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Delete removes the report if present. Deleting an absent report is not an error.
func (r *reportDatabase) Delete(ctx context.Context, p models.Partition, id primitive.ObjectID) error {
	coll, err := r.collection(p)
	if err != nil {
		return err
	}
	_, err = coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *reportDatabase) List(ctx context.Context, p models.Partition, filter models.ReportFilter) ([]models.Report, error) {
	coll, err := r.collection(p)
	if err != nil {
		return nil, err
	}
	query := bson.M{}
	if filter.ResponderType != "" {
		query["responderType"] = filter.ResponderType
	}
	cr, err := coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "dateReported", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var reports []models.Report
	err = cr.Decode(&reports)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return reports, nil
}

func (r *reportDatabase) EnsureIndexes(ctx context.Context) error {
	for _, p := range models.Partitions {
		coll, err := r.collection(p)
		if err != nil {
			return err
		}
		err = coll.CreateIndexes(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "dateReported", Value: -1}}},
			{Keys: bson.D{{Key: "responderType", Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("%s indexes: %w", p, err)
		}
	}
	return nil
}

// withoutID converts the report into a document minus its _id, which an
// upsert takes from the filter.
func withoutID(report models.Report) (bson.M, error) {
	raw, err := bson.Marshal(report)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}
