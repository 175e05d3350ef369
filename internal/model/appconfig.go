package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new placement runs
	DefaultProfile   string  `json:"default_profile"`
	DefaultBudgetSec float64 `json:"default_budget_sec"`
	DefaultSeed      int64   `json:"default_seed"`

	// Pipeline workspace
	WorkspaceRoot string `json:"workspace_root"` // empty = ~/.eisla/jobs

	// Server defaults
	ServerAddr    string `json:"server_addr"`
	ServerWorkers int    `json:"server_workers"`

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
}

// maxRecentJobs caps the recent-job history kept in the config file.
const maxRecentJobs = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultProfile:   "balanced",
		DefaultBudgetSec: defaults.TimeBudgetSec,
		DefaultSeed:      0,
		WorkspaceRoot:    "",
		ServerAddr:       ":8080",
		ServerWorkers:    2,
		RecentJobs:       []string{},
	}
}

// ApplyToSettings copies the configured run defaults into an AnnealSettings
// struct. This is used when starting a run so it inherits the user's saved
// defaults without touching the schedule itself.
func (c AppConfig) ApplyToSettings(s *AnnealSettings) {
	if c.DefaultBudgetSec > 0 {
		s.TimeBudgetSec = c.DefaultBudgetSec
	}
}

// RememberJob records a job id at the front of the recent list, dropping
// duplicates and trimming to the history cap.
func (c *AppConfig) RememberJob(id string) {
	if id == "" {
		return
	}
	recent := make([]string, 0, len(c.RecentJobs)+1)
	recent = append(recent, id)
	for _, j := range c.RecentJobs {
		if j != id {
			recent = append(recent, j)
		}
	}
	if len(recent) > maxRecentJobs {
		recent = recent[:maxRecentJobs]
	}
	c.RecentJobs = recent
}
