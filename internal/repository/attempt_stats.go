package repository

import "go.mongodb.org/mongo-driver/bson"

// foldAverage folds one more score into a running average over n prior
// attempts: (avg*n + score) / (n+1). It is the reference form of the
// server-side pipeline below; after n folds the average equals the
// arithmetic mean of all n scores.
func foldAverage(avg float64, attempts int, score float64) float64 {
	return (avg*float64(attempts) + score) / float64(attempts+1)
}

// runningAveragePipeline builds the aggregation-pipeline update that
// applies foldAverage to a document's average_score/attempts pair in one
// UpdateOne, so two concurrent submissions cannot lose each other's
// contribution.
func runningAveragePipeline(score float64) []bson.M {
	return []bson.M{
		{"$set": bson.M{
			"average_score": bson.M{"$divide": bson.A{
				bson.M{"$add": bson.A{
					bson.M{"$multiply": bson.A{"$average_score", "$attempts"}},
					score,
				}},
				bson.M{"$add": bson.A{"$attempts", 1}},
			}},
			"attempts":   bson.M{"$add": bson.A{"$attempts", 1}},
			"updated_at": "$$NOW",
		}},
	}
}
