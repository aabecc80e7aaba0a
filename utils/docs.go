package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicDoc shapes a stored document for the public API: the internal
// `_id` field is replaced by a string `id`. A nil document becomes an
// empty object so read endpoints degrade to `{}`.
func PublicDoc(doc bson.M) M {
	if doc == nil {
		return M{}
	}

	out := make(M, len(doc))
	for field, value := range doc {
		if field == "_id" {
			continue
		}
		out[field] = value
	}
	if raw, ok := doc["_id"]; ok {
		if oid, isOID := raw.(primitive.ObjectID); isOID {
			out["id"] = oid.Hex()
		} else {
			out["id"] = fmt.Sprint(raw)
		}
	}
	return out
}

// PublicDocs shapes a list of stored documents, preserving order. The
// result is never nil so empty lists serialize as `[]`.
func PublicDocs(docs []bson.M) []M {
	out := make([]M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, PublicDoc(doc))
	}
	return out
}
