// Package config loads per-service runtime configuration from environment
// variables. Each service binary has its own loader so the three processes
// can run against different databases and ports while sharing the same
// JWT secret.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Database holds the relational store connection settings for one service.
type Database struct {
	Host      string `mapstructure:"DB_HOST"`
	Port      int    `mapstructure:"DB_PORT"`
	User      string `mapstructure:"DB_USER"`
	Password  string `mapstructure:"DB_PASSWORD"`
	Name      string `mapstructure:"DB_NAME"`
	ConnLimit int    `mapstructure:"DB_CONN_LIMIT"`
}

// DSN builds a postgres connection string from the discrete settings.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// AuthConfig is the runtime configuration of the auth service.
type AuthConfig struct {
	Port      int      `mapstructure:"PORT"`
	Env       string   `mapstructure:"APP_ENV"` // development | production
	JWTSecret string   `mapstructure:"JWT_SECRET"`
	DB        Database `mapstructure:",squash"`
}

// UserMgmtConfig is the runtime configuration of the user-management service.
type UserMgmtConfig struct {
	Port           int      `mapstructure:"PORT"`
	Env            string   `mapstructure:"APP_ENV"`
	JWTSecret      string   `mapstructure:"JWT_SECRET"`
	AuthServiceURL string   `mapstructure:"AUTH_SERVICE_URL"`
	DB             Database `mapstructure:",squash"`
}

// AttendanceConfig is the runtime configuration of the attendance service.
type AttendanceConfig struct {
	Port              int      `mapstructure:"PORT"`
	Env               string   `mapstructure:"APP_ENV"`
	JWTSecret         string   `mapstructure:"JWT_SECRET"`
	UserManagementURL string   `mapstructure:"USER_MANAGEMENT_SERVICE_URL"`
	DB                Database `mapstructure:",squash"`
}

func newViper(defaults map[string]any) *viper.Viper {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	// Optional .env file for local development — does not fail if missing
	_ = v.ReadInConfig()
	return v
}

func commonDefaults(port int, dbName, dbUser string, dbPort int) map[string]any {
	return map[string]any{
		"PORT":          port,
		"APP_ENV":       "development",
		"JWT_SECRET":    "",
		"DB_HOST":       "localhost",
		"DB_PORT":       dbPort,
		"DB_USER":       dbUser,
		"DB_PASSWORD":   "",
		"DB_NAME":       dbName,
		"DB_CONN_LIMIT": 10,
	}
}

// LoadAuth reads the auth service configuration.
func LoadAuth() (*AuthConfig, error) {
	v := newViper(commonDefaults(8080, "auth_credentials_db", "auth_user", 5432))

	cfg := &AuthConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUserMgmt reads the user-management service configuration.
func LoadUserMgmt() (*UserMgmtConfig, error) {
	defaults := commonDefaults(3001, "user_management_db", "user_management_user", 5432)
	defaults["AUTH_SERVICE_URL"] = "http://localhost:8080"
	v := newViper(defaults)

	cfg := &UserMgmtConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAttendance reads the attendance service configuration.
func LoadAttendance() (*AttendanceConfig, error) {
	defaults := commonDefaults(3002, "attendance_db", "attendance_user", 5432)
	defaults["USER_MANAGEMENT_SERVICE_URL"] = "http://localhost:3001"
	v := newViper(defaults)

	cfg := &AttendanceConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
