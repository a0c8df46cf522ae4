package db

import (
	"fmt"
	"log/slog"
)

const (
	defaultDBName  = "contacts"
	defaultTimeout = 30
)

// DBConfigFromYamlObj builds the connection config from the yaml section of a service config.
// Username and password are optional so a local unauthenticated mongod can be used.
func DBConfigFromYamlObj(yamlObj DBConfigYaml) DBConfig {
	if yamlObj.ConnectionStr == "" {
		slog.Error("couldn't read DB connection string")
		panic("couldn't read DB connection string")
	}

	URI := fmt.Sprintf(`mongodb%s://%s`, yamlObj.ConnectionPrefix, yamlObj.ConnectionStr)
	if yamlObj.Username != "" && yamlObj.Password != "" {
		URI = fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)
	}

	timeout := yamlObj.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dbName := yamlObj.DBName
	if dbName == "" {
		dbName = defaultDBName
	}

	maxPoolSize := uint64(0)
	if yamlObj.MaxPoolSize > 0 {
		maxPoolSize = uint64(yamlObj.MaxPoolSize)
	}

	return DBConfig{
		URI:              URI,
		DBName:           yamlObj.DBNamePrefix + dbName,
		Timeout:          timeout,
		IdleConnTimeout:  yamlObj.IdleConnTimeout,
		MaxPoolSize:      maxPoolSize,
		NoCursorTimeout:  yamlObj.UseNoCursorTimeout,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
