package lifecycle

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/models"
)

// Duplicate is a report id present in more than one partition
type Duplicate struct {
	ID         primitive.ObjectID `json:"_id"`
	Partitions []models.Partition `json:"partitions"`
}

// FindDuplicates scans every partition and returns the ids held by more than
// one of them, ordered by id. A move interrupted between insert and delete
// leaves such a duplicate behind. Nothing is repaired here.
func FindDuplicates(ctx context.Context, store ReportStore) ([]Duplicate, error) {
	seen := map[primitive.ObjectID][]models.Partition{}
	for _, p := range models.Partitions {
		reports, err := store.List(ctx, p, models.ReportFilter{})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", p, err)
		}
		for _, r := range reports {
			seen[r.ID] = append(seen[r.ID], p)
		}
	}

	dups := []Duplicate{}
	for id, partitions := range seen {
		if len(partitions) > 1 {
			dups = append(dups, Duplicate{ID: id, Partitions: partitions})
		}
	}
	sort.Slice(dups, func(i, j int) bool {
		return dups[i].ID.Hex() < dups[j].ID.Hex()
	})

	duplicatesGauge.Set(float64(len(dups)))
	for _, d := range dups {
		zap.S().Warnw("report found in more than one partition",
			"id", d.ID.Hex(),
			"partitions", d.Partitions,
		)
	}
	return dups, nil
}
