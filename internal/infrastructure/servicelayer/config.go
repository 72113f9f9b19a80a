package servicelayer

import (
	"errors"
	"strings"
)

// DefaultTimeoutSeconds is the HTTP client timeout used when none is configured.
const DefaultTimeoutSeconds = 30

// Config validation errors
var (
	ErrConfigMissingBaseURL   = errors.New("service layer: base URL is required")
	ErrConfigMissingCompanyDB = errors.New("service layer: company DB is required")
	ErrConfigMissingUsername  = errors.New("service layer: username is required")
	ErrConfigMissingPassword  = errors.New("service layer: password is required")
)

// Config holds ERP Service Layer connection settings
type Config struct {
	BaseURL        string
	CompanyDB      string
	Username       string
	Password       string
	TimeoutSeconds int
}

// NewConfig creates a Service Layer configuration
func NewConfig(baseURL, companyDB, username, password string) *Config {
	return &Config{
		BaseURL:   baseURL,
		CompanyDB: companyDB,
		Username:  username,
		Password:  password,
	}
}

// Validate checks required fields and applies defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.CompanyDB == "" {
		return ErrConfigMissingCompanyDB
	}
	if c.Username == "" {
		return ErrConfigMissingUsername
	}
	if c.Password == "" {
		return ErrConfigMissingPassword
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}
