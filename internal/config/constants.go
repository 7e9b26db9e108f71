// internal/config/constants.go
package config

const (
	AppName    = "lingua-path"
	AppVersion = "0.3.0"
)

// Defaults applied when neither config.yaml nor the environment sets a value.
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseDriver = "postgres"
	DefaultLogLevel       = "info"
	DefaultAuthEnabled    = true
	DefaultAtomicSubmit   = true
)
