package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eisla/eisla/internal/model"
)

// profilesFile is the on-disk shape of the custom profile store.
type profilesFile struct {
	Profiles []model.AnnealProfile `yaml:"profiles"`
}

// DefaultProfilesPath returns the default file path for custom annealing
// profiles.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.yaml")
}

// ValidateProfile checks that a profile describes a usable annealing schedule.
func ValidateProfile(p model.AnnealProfile) error {
	if p.Name == "" {
		return errors.New("profile has no name")
	}
	s := p.Settings
	if s.InitialTemp <= 0 {
		return fmt.Errorf("profile %q: initial_temp must be positive, got %g", p.Name, s.InitialTemp)
	}
	if s.MinTemp <= 0 {
		return fmt.Errorf("profile %q: min_temp must be positive, got %g", p.Name, s.MinTemp)
	}
	if s.MinTemp >= s.InitialTemp {
		return fmt.Errorf("profile %q: min_temp %g must be below initial_temp %g", p.Name, s.MinTemp, s.InitialTemp)
	}
	if s.CoolingRate <= 0 || s.CoolingRate >= 1 {
		return fmt.Errorf("profile %q: cooling_rate must be between 0 and 1, got %g", p.Name, s.CoolingRate)
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("profile %q: max_iterations must be positive, got %d", p.Name, s.MaxIterations)
	}
	if s.TimeBudgetSec < 0 {
		return fmt.Errorf("profile %q: time_budget_sec must not be negative, got %g", p.Name, s.TimeBudgetSec)
	}
	return nil
}

// SaveCustomProfiles saves custom profiles to a YAML file.
func SaveCustomProfiles(path string, profiles []model.AnnealProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(profilesFile{Profiles: profiles})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom profiles from a YAML file, validating
// every entry. Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.AnnealProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.AnnealProfile{}, nil
		}
		return nil, err
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing profiles %s: %w", path, err)
	}
	for _, p := range file.Profiles {
		if err := ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("invalid profile in %s: %w", path, err)
		}
	}
	if file.Profiles == nil {
		file.Profiles = []model.AnnealProfile{}
	}
	return file.Profiles, nil
}

// SaveCustomProfilesToDefault saves custom profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.AnnealProfile) error {
	return SaveCustomProfiles(DefaultProfilesPath(), profiles)
}

// LoadCustomProfilesFromDefault loads custom profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.AnnealProfile, error) {
	return LoadCustomProfiles(DefaultProfilesPath())
}

// MergedProfiles combines the built-in profiles with custom ones. A custom
// profile with a built-in name replaces it; the rest are appended in order.
func MergedProfiles(custom []model.AnnealProfile) []model.AnnealProfile {
	merged := append([]model.AnnealProfile{}, model.AnnealProfiles...)
	for _, c := range custom {
		replaced := false
		for i := range merged {
			if merged[i].Name == c.Name {
				merged[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, c)
		}
	}
	return merged
}

// ExportProfile exports a single profile to a YAML file (for sharing).
func ExportProfile(path string, profile model.AnnealProfile) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single profile from a YAML file.
func ImportProfile(path string) (model.AnnealProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.AnnealProfile{}, err
	}

	var profile model.AnnealProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return model.AnnealProfile{}, err
	}
	if err := ValidateProfile(profile); err != nil {
		return model.AnnealProfile{}, err
	}
	return profile, nil
}
