package contacts

import (
	"context"
	"log/slog"
	"time"

	"github.com/case-framework/contact-manager/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_CONTACTS = "contacts"
)

type ContactsDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBName          string
}

func NewContactsDBService(configs db.DBConfig) (*ContactsDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(configs.URI).
		SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout) * time.Second)
	if configs.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(configs.MaxPoolSize)
	}

	dbClient, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	contactsDBSc := &ContactsDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBName:          configs.DBName,
	}

	if configs.RunIndexCreation {
		if err := contactsDBSc.CreateDefaultIndexes(); err != nil {
			slog.Error("Error ensuring indexes for contacts DB: ", slog.String("error", err.Error()))
		}
	}

	return contactsDBSc, nil
}

func (dbService *ContactsDBService) collectionContacts() *mongo.Collection {
	return dbService.DBClient.Database(dbService.DBName).Collection(COLLECTION_NAME_CONTACTS)
}

// getContext bounds a single store call by the configured timeout, keeping request cancellation.
func (dbService *ContactsDBService) getContext(parent context.Context) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(dbService.timeout)*time.Second)
}

func (dbService *ContactsDBService) Ping(parent context.Context) error {
	ctx, cancel := dbService.getContext(parent)
	defer cancel()
	return dbService.DBClient.Ping(ctx, nil)
}

func (dbService *ContactsDBService) Disconnect() error {
	ctx, cancel := dbService.getContext(context.Background())
	defer cancel()
	return dbService.DBClient.Disconnect(ctx)
}
