package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDString renders a store identifier in its canonical string form. Strings
// pass through unchanged, so applying it twice is harmless.
func IDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case *primitive.ObjectID:
		if v == nil {
			return ""
		}
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ParseID is the inverse of IDString for store-assigned identifiers.
func ParseID(s string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}
