package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/case-framework/contact-manager/pkg/db"
)

func main() {
	if contactsDBService == nil {
		return
	}
	defer func() {
		if err := contactsDBService.Disconnect(); err != nil {
			slog.Error("Error disconnecting from Contacts DB", slog.String("error", err.Error()))
		}
	}()

	dropIndexes()

	createIndexes()

	getIndexes()
}

func dropIndexes() {
	switch conf.TaskConfigs.DropIndexes.ContactsDB {
	case DropIndexesModeAll:
		slog.Info("Dropping all indexes of contacts DB")
		contactsDBService.DropIndexes(true)
	case DropIndexesModeDefaults:
		slog.Info("Dropping default indexes of contacts DB")
		contactsDBService.DropIndexes(false)
	}
}

func createIndexes() {
	if !conf.TaskConfigs.CreateIndexes.ContactsDB {
		return
	}
	start := time.Now()
	if err := contactsDBService.CreateDefaultIndexes(); err != nil {
		slog.Error("Error creating indexes for contacts DB", slog.String("error", err.Error()))
		return
	}
	slog.Info("Indexes created for contacts DB", slog.String("duration", time.Since(start).String()))
}

func getIndexes() {
	if !conf.TaskConfigs.GetIndexes.ContactsDB {
		return
	}
	indexes, err := contactsDBService.GetIndexes()
	if err != nil {
		slog.Error("Error listing indexes for contacts DB", slog.String("error", err.Error()))
		return
	}
	slog.Info("Indexes of contacts DB",
		slog.Int("count", len(indexes)),
		slog.String("names", strings.Join(db.IndexNames(indexes), ", ")),
	)
}
