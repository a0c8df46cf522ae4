package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/case-framework/contact-manager/pkg/db"
	"github.com/case-framework/contact-manager/pkg/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	contactsDB "github.com/case-framework/contact-manager/pkg/db/contacts"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	CONFIG_SECTION_CONTACTS_DB = "contacts_db"
)

// Variables to override "secrets" in the config file
var (
	ENV_CONTACTS_DB_USERNAME = utils.SecretEnvVarName(CONFIG_SECTION_CONTACTS_DB, "username")
	ENV_CONTACTS_DB_PASSWORD = utils.SecretEnvVarName(CONFIG_SECTION_CONTACTS_DB, "password")
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		ContactsDB db.DBConfigYaml `json:"contacts_db" yaml:"contacts_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Task configurations
	TaskConfigs TaskConfigs `json:"task_configs" yaml:"task_configs"`
}

type TaskConfigs struct {
	DropIndexes   DropIndexesConfig   `json:"drop_indexes" yaml:"drop_indexes"`
	CreateIndexes CreateIndexesConfig `json:"create_indexes" yaml:"create_indexes"`
	GetIndexes    GetIndexesConfig    `json:"get_indexes" yaml:"get_indexes"`
}

type DropIndexesConfig struct {
	ContactsDB DropIndexesMode `json:"contacts_db" yaml:"contacts_db"`
}

type CreateIndexesConfig struct {
	ContactsDB bool `json:"contacts_db" yaml:"contacts_db"`
}

type GetIndexesConfig struct {
	ContactsDB bool `json:"contacts_db" yaml:"contacts_db"`
}

type DropIndexesMode string

const (
	DropIndexesModeAll      DropIndexesMode = "all"
	DropIndexesModeDefaults DropIndexesMode = "defaults"
	DropIndexesModeNone     DropIndexesMode = "none"
)

// an unset mode means none
func (mode DropIndexesMode) IsValid() bool {
	switch mode {
	case DropIndexesModeAll, DropIndexesModeDefaults, DropIndexesModeNone, "":
		return true
	default:
		return false
	}
}

func (tasks TaskConfigs) needsContactsDB() bool {
	dropMode := tasks.DropIndexes.ContactsDB
	return (dropMode != "" && dropMode != DropIndexesModeNone) ||
		tasks.CreateIndexes.ContactsDB ||
		tasks.GetIndexes.ContactsDB
}

func validateConfig(c config) error {
	return validateDropIndexesMode("task_configs.drop_indexes.contacts_db", c.TaskConfigs.DropIndexes.ContactsDB)
}

func validateDropIndexesMode(field string, mode DropIndexesMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid drop indexes mode for %s: %q. Use one of: %v", field, mode, []DropIndexesMode{DropIndexesModeAll, DropIndexesModeDefaults, DropIndexesModeNone})
	}
	return nil
}

var conf config

var contactsDBService *contactsDB.ContactsDBService

func init() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			panic(err)
		}
	}

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	if err := validateConfig(conf); err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	// init db
	initDBs()
}

func secretsOverride() {
	// Override secrets from environment variables
	utils.OverrideFromEnv(&conf.DBConfigs.ContactsDB.Username, ENV_CONTACTS_DB_USERNAME)
	utils.OverrideFromEnv(&conf.DBConfigs.ContactsDB.Password, ENV_CONTACTS_DB_PASSWORD)
}

func initDBs() {
	if !conf.TaskConfigs.needsContactsDB() {
		slog.Info("No task needs the contacts DB")
		return
	}

	dbConfig := db.DBConfigFromYamlObj(conf.DBConfigs.ContactsDB)
	// the job decides itself which indexes to create
	dbConfig.RunIndexCreation = false

	var err error
	contactsDBService, err = contactsDB.NewContactsDBService(dbConfig)
	if err != nil {
		slog.Error("Error connecting to Contacts DB", slog.String("error", err.Error()))
		panic(err)
	}
	slog.Info("Database connection established", slog.String("db", dbConfig.DBName))
}
