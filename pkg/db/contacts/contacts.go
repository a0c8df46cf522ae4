package contacts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resourceContact = "Contact"

func (dbService *ContactsDBService) FindContactsByEmailOrPhone(ctx context.Context, email string, phoneNumber string, excludeID *primitive.ObjectID) ([]types.Contact, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	cursor, err := dbService.collectionContacts().Find(ctx, duplicateFilter(email, phoneNumber, excludeID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []types.Contact{}
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (dbService *ContactsDBService) AddContact(ctx context.Context, contact types.Contact) (types.Contact, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	if contact.ID.IsZero() {
		contact.ID = primitive.NewObjectID()
	}
	res, err := dbService.collectionContacts().InsertOne(ctx, contact)
	if err != nil {
		return types.Contact{}, translateWriteError(err)
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return contact, nil
}

func (dbService *ContactsDBService) CountContacts(ctx context.Context) (int64, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	return dbService.collectionContacts().CountDocuments(ctx, bson.M{})
}

// get one page of contacts sorted by the given field
func (dbService *ContactsDBService) GetContacts(ctx context.Context, sortBy string, ascending bool, skip int64, limit int64) ([]types.Contact, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	opts := options.Find()
	opts.SetSort(sortDocument(sortBy, ascending))
	opts.SetSkip(skip)
	opts.SetLimit(limit)
	if dbService.noCursorTimeout {
		opts.SetNoCursorTimeout(true)
	}

	cursor, err := dbService.collectionContacts().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []types.Contact{}
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (dbService *ContactsDBService) UpdateContact(ctx context.Context, id primitive.ObjectID, payload types.ContactPayload, updatedAt time.Time) (types.Contact, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	filter := bson.M{types.FIELD_ID: id}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated types.Contact
	err := dbService.collectionContacts().FindOneAndUpdate(ctx, filter, updateDocument(payload, updatedAt), opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Contact{}, apperrors.NewNotFoundError(resourceContact, id.Hex())
		}
		return types.Contact{}, translateWriteError(err)
	}
	return updated, nil
}

func (dbService *ContactsDBService) DeleteContact(ctx context.Context, id primitive.ObjectID) (types.Contact, error) {
	ctx, cancel := dbService.getContext(ctx)
	defer cancel()

	var deleted types.Contact
	err := dbService.collectionContacts().FindOneAndDelete(ctx, bson.M{types.FIELD_ID: id}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Contact{}, apperrors.NewNotFoundError(resourceContact, id.Hex())
		}
		return types.Contact{}, err
	}
	return deleted, nil
}

func duplicateFilter(email string, phoneNumber string, excludeID *primitive.ObjectID) bson.M {
	filter := bson.M{
		"$or": bson.A{
			bson.M{types.FIELD_EMAIL: email},
			bson.M{types.FIELD_PHONE_NUMBER: phoneNumber},
		},
	}
	if excludeID != nil {
		filter[types.FIELD_ID] = bson.M{"$ne": *excludeID}
	}
	return filter
}

// sortDocument orders by the field and breaks ties by _id so pages stay stable.
func sortDocument(sortBy string, ascending bool) bson.D {
	direction := -1
	if ascending {
		direction = 1
	}
	if sortBy == "" || sortBy == types.FIELD_ID {
		return bson.D{{Key: types.FIELD_ID, Value: direction}}
	}
	return bson.D{
		{Key: sortBy, Value: direction},
		{Key: types.FIELD_ID, Value: direction},
	}
}

// updateDocument replaces every mutable field; empty optional fields are removed.
func updateDocument(payload types.ContactPayload, updatedAt time.Time) bson.M {
	set := bson.M{
		types.FIELD_FIRST_NAME:   payload.FirstName,
		types.FIELD_LAST_NAME:    payload.LastName,
		types.FIELD_EMAIL:        payload.Email,
		types.FIELD_PHONE_NUMBER: payload.PhoneNumber,
		types.FIELD_UPDATED_AT:   updatedAt,
	}
	unset := bson.M{}
	if payload.Company != "" {
		set[types.FIELD_COMPANY] = payload.Company
	} else {
		unset[types.FIELD_COMPANY] = ""
	}
	if payload.JobTitle != "" {
		set[types.FIELD_JOB_TITLE] = payload.JobTitle
	} else {
		unset[types.FIELD_JOB_TITLE] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// translateWriteError maps unique index violations to the field they protect.
func translateWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, INDEX_NAME_EMAIL):
		return apperrors.NewConflictError("email")
	case strings.Contains(msg, INDEX_NAME_PHONE_NUMBER):
		return apperrors.NewConflictError("phone")
	default:
		return err
	}
}
