package contacts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/case-framework/contact-manager/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	INDEX_NAME_EMAIL        = "email_1"
	INDEX_NAME_PHONE_NUMBER = "phoneNumber_1"
	INDEX_NAME_CREATED_AT   = "createdAt_1"
)

// unique email and phone indexes enforce the invariants the duplicate check can race on
var indexesForContactsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: types.FIELD_EMAIL, Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(INDEX_NAME_EMAIL),
	},
	{
		Keys: bson.D{
			{Key: types.FIELD_PHONE_NUMBER, Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(INDEX_NAME_PHONE_NUMBER),
	},
	{
		Keys: bson.D{
			{Key: types.FIELD_CREATED_AT, Value: 1},
		},
		Options: options.Index().SetName(INDEX_NAME_CREATED_AT),
	},
}

func (dbService *ContactsDBService) CreateDefaultIndexes() error {
	slog.Debug("Ensuring indexes for contacts DB")
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()

	_, err := dbService.collectionContacts().Indexes().CreateMany(ctx, indexesForContactsCollection)
	if err != nil {
		slog.Error("Error creating indexes for contacts", slog.String("error", err.Error()))
	}
	return err
}

func (dbService *ContactsDBService) DropIndexes(dropAll bool) {
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()

	if dropAll {
		_, err := dbService.collectionContacts().Indexes().DropAll(ctx)
		if err != nil {
			slog.Error("Error dropping all indexes for contacts", slog.String("error", err.Error()))
		}
		return
	}

	for _, index := range indexesForContactsCollection {
		if index.Options == nil || index.Options.Name == nil {
			slog.Error("Index name is nil for contacts collection", slog.String("index", fmt.Sprintf("%+v", index)))
			continue
		}
		indexName := *index.Options.Name
		_, err := dbService.collectionContacts().Indexes().DropOne(ctx, indexName)
		if err != nil {
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Name == "IndexNotFound" {
				slog.Debug("Index already absent", slog.String("indexName", indexName))
				continue
			}
			slog.Error("Error dropping index for contacts", slog.String("error", err.Error()), slog.String("indexName", indexName))
		}
	}
}

func (dbService *ContactsDBService) GetIndexes() ([]bson.M, error) {
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()

	return db.ListCollectionIndexes(ctx, dbService.collectionContacts())
}
