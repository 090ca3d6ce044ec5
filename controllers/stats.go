// controllers/stats.go
package controllers

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthBucket is one month of an aggregation grouped by $month(createdAt).
type monthBucket struct {
	Month    int32   `bson:"_id"`
	Count    int64   `bson:"count"`
	Amount   float64 `bson:"amount"`
	Complete int64   `bson:"complete"`
}

// fillMonths expands sparse aggregation buckets into a fixed January to
// December series, defaulting absent months to zero.
func fillMonths(buckets []monthBucket) [12]monthBucket {
	var series [12]monthBucket
	for i := range series {
		series[i].Month = int32(i + 1)
	}
	for _, b := range buckets {
		if b.Month >= 1 && b.Month <= 12 {
			series[b.Month-1] = b
		}
	}
	return series
}

// targetYear resolves the "year" query parameter, defaulting to the current
// year.
func targetYear(raw string, now time.Time) int {
	if raw != "" {
		if y, err := strconv.Atoi(raw); err == nil {
			return y
		}
	}
	return now.Year()
}

// yearRange returns [Jan 1 of year, Jan 1 of year+1).
func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// monthlyBuckets groups documents of one year by registration month. The
// group stage always sums a count; amount and complete sums are optional.
func monthlyBuckets(ctx context.Context, coll *mongo.Collection, match bson.M, withAmount, withComplete bool) ([]monthBucket, error) {
	group := bson.M{
		"_id":   bson.M{"$month": "$createdAt"},
		"count": bson.M{"$sum": 1},
	}
	if withAmount {
		group["amount"] = bson.M{"$sum": "$amount"}
	}
	if withComplete {
		group["complete"] = bson.M{"$sum": bson.M{"$cond": bson.A{"$isComplete", 1, 0}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: group}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	buckets := []monthBucket{}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
