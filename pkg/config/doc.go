// Package config loads process settings from the environment.
//
// Values come from an optional `.env` file (github.com/joho/godotenv) and the
// process environment, parsed with github.com/caarlos0/env/v11. Every
// variable carries the SCHEMAKIT_ prefix:
//
//	SCHEMAKIT_ENV               development | staging | production
//	SCHEMAKIT_SERVICE           service name attached to log records
//	SCHEMAKIT_LOG_LEVEL         debug | info | warn | error
//	SCHEMAKIT_LOG_FORMAT        json | text | pretty
//	SCHEMAKIT_HTTP_ADDR         listen address, default :8080
//	SCHEMAKIT_READ_TIMEOUT      request read timeout
//	SCHEMAKIT_WRITE_TIMEOUT     response write timeout
//	SCHEMAKIT_SHUTDOWN_TIMEOUT  graceful shutdown budget
//	SCHEMAKIT_MAX_BODY_BYTES    request body limit
//	SCHEMAKIT_SCHEMA_DIR        directory of schema documents to register
//	SCHEMAKIT_ABORT_EARLY       stop at the first violation
//	SCHEMAKIT_ALLOW_UNKNOWN     pass undeclared object keys through
//	SCHEMAKIT_STRIP_UNKNOWN     drop undeclared object keys
//	SCHEMAKIT_CONCURRENCY       sibling fan-out for asynchronous validation
//
// Parse failures wrap ErrParsingConfig and out-of-range values wrap
// ErrInvalidConfig; both can be checked with errors.Is.
package config
