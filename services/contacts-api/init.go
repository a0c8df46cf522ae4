package main

import (
	"log/slog"
	"os"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/case-framework/contact-manager/pkg/contacts"
	"github.com/case-framework/contact-manager/pkg/db"
	"github.com/case-framework/contact-manager/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	contactsDB "github.com/case-framework/contact-manager/pkg/db/contacts"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"
	ENV_DOTENV_FILE_PATH = "DOTENV_FILE_PATH"

	CONFIG_SECTION_CONTACTS_DB = "contacts_db"
)

// Variables to override "secrets" in the config file
var (
	ENV_CONTACTS_DB_USERNAME = utils.SecretEnvVarName(CONFIG_SECTION_CONTACTS_DB, "username")
	ENV_CONTACTS_DB_PASSWORD = utils.SecretEnvVarName(CONFIG_SECTION_CONTACTS_DB, "password")
)

type ContactsApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode         bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins      []string `json:"allow_origins" yaml:"allow_origins"`
		Port              string   `json:"port" yaml:"port"`
		ReadHeaderTimeout string   `json:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   string   `json:"shutdown_timeout" yaml:"shutdown_timeout"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// DB configs
	DBConfigs struct {
		ContactsDB db.DBConfigYaml `json:"contacts_db" yaml:"contacts_db"`
	} `json:"db_configs" yaml:"db_configs"`

	ContactsConfig struct {
		APIRoot     string `json:"api_root" yaml:"api_root"`
		MaxPageSize int64  `json:"max_page_size" yaml:"max_page_size"`
	} `json:"contacts_config" yaml:"contacts_config"`
}

const defaultAPIRoot = "/api"

var conf ContactsApiConfig

var (
	contactsDBService *contactsDB.ContactsDBService
	contactService    *contacts.ContactService
	apiRoot           string
)

func init() {
	loadDotEnv()

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	apiRoot = readAPIRoot()

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initContactService()
}

func loadDotEnv() {
	path := os.Getenv(ENV_DOTENV_FILE_PATH)
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		panic(err)
	}
}

func secretsOverride() {
	// Override secrets from environment variables
	utils.OverrideFromEnv(&conf.DBConfigs.ContactsDB.Username, ENV_CONTACTS_DB_USERNAME)
	utils.OverrideFromEnv(&conf.DBConfigs.ContactsDB.Password, ENV_CONTACTS_DB_PASSWORD)
}

func readAPIRoot() string {
	root := conf.ContactsConfig.APIRoot
	if root == "" {
		root = defaultAPIRoot
	}
	normalized, err := utils.NormalizeAPIRoot(root)
	if err != nil {
		slog.Error("Invalid api root", slog.String("error", err.Error()))
		panic(err)
	}
	return normalized
}

func initDBs() {
	var err error
	contactsDBService, err = contactsDB.NewContactsDBService(db.DBConfigFromYamlObj(conf.DBConfigs.ContactsDB))
	if err != nil {
		slog.Error("Error connecting to Contacts DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initContactService() {
	contactService = contacts.NewContactService(contactsDBService, conf.ContactsConfig.MaxPageSize)
	slog.Debug("contact service initialized", slog.Int64("maxPageSize", contactService.MaxPageSize()))
}
