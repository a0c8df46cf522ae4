package db

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexNames(t *testing.T) {
	indexes := []bson.M{
		{"name": "_id_", "key": bson.M{"_id": 1}},
		{"name": "email_1", "key": bson.M{"email": 1}, "unique": true},
		{"key": bson.M{"broken": 1}},
	}
	names := IndexNames(indexes)
	if len(names) != 2 || names[0] != "_id_" || names[1] != "email_1" {
		t.Errorf("unexpected names: %v", names)
	}
	if got := IndexNames(nil); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
}
