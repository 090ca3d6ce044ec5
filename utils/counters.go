// utils/counters.go
package utils

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Counter names for sequential display ids.
const (
	FamilyCounter = "familyid"
	UserCounter   = "userid"
)

// NextSequence atomically increments and returns the named counter. The
// upsert creates the counter on first use, so no seeding step is needed.
func NextSequence(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// FormatFamilyID renders a family sequence number as "F0001".
func FormatFamilyID(seq int64) string {
	return fmt.Sprintf("F%04d", seq)
}

// FormatUserID renders a member sequence number as "U0000001".
func FormatUserID(seq int64) string {
	return fmt.Sprintf("U%07d", seq)
}
