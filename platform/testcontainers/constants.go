package testcontainers

// Postgres constants
const (
	PostgresContainerName = "postgres"
	PostgresPort          = "5432"

	PostgresImageNameKey = "POSTGRES_IMAGE_NAME"
	PostgresHostKey      = "POSTGRES_HOST"
	PostgresPortKey      = "POSTGRES_PORT"
	PostgresDatabaseKey  = "POSTGRES_DB"
	PostgresUserKey      = "POSTGRES_USER"
	PostgresPasswordKey  = "POSTGRES_PASSWORD" //nolint:gosec
	PostgresSSLModeKey   = "POSTGRES_SSL_MODE"
)
