package hibob

import "errors"

// DefaultAPIBaseURL is the production HiBob API endpoint
const DefaultAPIBaseURL = "https://api.hibob.com/v1"

// Config holds the HiBob API connection settings
type Config struct {
	// BaseURL is the API base, without a trailing slash
	BaseURL string
	// ServiceUserID identifies the HiBob service user
	ServiceUserID string
	// ServiceUserToken is the service user's API token
	ServiceUserToken string
	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int
}

// Errors for HiBob configuration
var (
	ErrConfigMissingServiceUser = errors.New("hibob: service user id is required")
	ErrConfigMissingToken       = errors.New("hibob: service user token is required")
)

// NewConfig creates a HiBob configuration with defaults
func NewConfig(serviceUserID, serviceUserToken string) *Config {
	return &Config{
		BaseURL:          DefaultAPIBaseURL,
		ServiceUserID:    serviceUserID,
		ServiceUserToken: serviceUserToken,
		TimeoutSeconds:   30,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ServiceUserID == "" {
		return ErrConfigMissingServiceUser
	}
	if c.ServiceUserToken == "" {
		return ErrConfigMissingToken
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultAPIBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
