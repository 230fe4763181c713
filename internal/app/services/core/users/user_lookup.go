package users

import (
	"go.mongodb.org/mongo-driver/bson"
)

// PublicProfileProjection drops the user fields that must never leave the
// users collection through a join.
func PublicProfileProjection() bson.M {
	return bson.M{
		"password":      0,
		"email":         0,
		"emailVerified": 0,
	}
}

// LookupUserStages joins the user referenced by localField into a single
// embedded document named as. Records whose user no longer exists keep a
// nil profile.
func LookupUserStages(collection, localField, as string) []bson.M {
	return []bson.M{
		{
			"$lookup": bson.M{
				"from":         collection,
				"localField":   localField,
				"foreignField": "_id",
				"pipeline": bson.A{
					bson.M{"$project": PublicProfileProjection()},
				},
				"as": as,
			},
		},
		{
			"$unwind": bson.M{
				"path":                       "$" + as,
				"preserveNullAndEmptyArrays": true,
			},
		},
	}
}
