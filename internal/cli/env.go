package cli

import (
	"os"
	"strconv"
	"strings"
	"time"

	"studytutor/internal/grader"
)

// Environment configuration for the grading backend. The engine packages
// never read these; everything reaches them as explicit settings.
const (
	envProvider     = "TUTOR_PROVIDER"
	envModel        = "TUTOR_MODEL"
	envAPIKey       = "TUTOR_API_KEY"
	envBaseURL      = "TUTOR_BASE_URL"
	envGradeTimeout = "TUTOR_GRADE_TIMEOUT"
	envTemperature  = "STUDY_TUTOR_TEMPERATURE"
	envContext      = "STUDY_TUTOR_CTX"
)

const (
	defaultTemperature   = 0.2
	defaultContextWindow = 8192
)

// graderSettingsFromEnv assembles grader settings from the environment.
// Flags override individual fields afterwards.
func graderSettingsFromEnv() grader.Settings {
	settings := grader.Settings{
		Provider:      strings.TrimSpace(os.Getenv(envProvider)),
		Model:         strings.TrimSpace(os.Getenv(envModel)),
		APIKey:        strings.TrimSpace(os.Getenv(envAPIKey)),
		BaseURL:       strings.TrimSpace(os.Getenv(envBaseURL)),
		Temperature:   defaultTemperature,
		ContextWindow: defaultContextWindow,
		Timeout:       grader.DefaultTimeout,
	}
	if raw := strings.TrimSpace(os.Getenv(envTemperature)); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			settings.Temperature = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv(envContext)); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			settings.ContextWindow = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv(envGradeTimeout)); raw != "" {
		if value, err := time.ParseDuration(raw); err == nil && value > 0 {
			settings.Timeout = value
		}
	}
	return settings
}
