// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Data file paths
	InternshipsFile     string
	ApplicationsFile    string
	StudentsFile        string
	RepresentativesFile string
	StaffFile           string

	// Business rule caps
	MaxPostingsPerRep     int
	MaxActiveApplications int

	// DefaultPassword assigned to accounts loaded from the legacy
	// roster files, which carry no password column.
	DefaultPassword string

	// LogLevel - DEBUG, INFO, WARN, ERROR.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		InternshipsFile:       getEnv("PLACEMENT_INTERNSHIPS_FILE", "data/internships.csv"),
		ApplicationsFile:      getEnv("PLACEMENT_APPLICATIONS_FILE", "data/applications.csv"),
		StudentsFile:          getEnv("PLACEMENT_STUDENTS_FILE", "data/sample_student_list.csv"),
		RepresentativesFile:   getEnv("PLACEMENT_REPS_FILE", "data/sample_company_representative_list.csv"),
		StaffFile:             getEnv("PLACEMENT_STAFF_FILE", "data/sample_staff_list.csv"),
		MaxPostingsPerRep:     getEnvInt("PLACEMENT_MAX_POSTINGS_PER_REP", 5),
		MaxActiveApplications: getEnvInt("PLACEMENT_MAX_ACTIVE_APPLICATIONS", 3),
		DefaultPassword:       getEnv("PLACEMENT_DEFAULT_PASSWORD", "password"),
		LogLevel:              getEnv("PLACEMENT_LOG_LEVEL", "INFO"),
	}
}

// getEnv reads a string variable with a fallback.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt reads an integer variable with a fallback.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
