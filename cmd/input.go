package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// loadEpics reads the epics JSON file named by --epics.
func loadEpics() ([]schema.Epic, error) {
	if cfg.EpicsFile == "" {
		return nil, fmt.Errorf("--epics is required")
	}
	data, err := os.ReadFile(cfg.EpicsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read epics file: %w", err)
	}
	var epics []schema.Epic
	if err := json.Unmarshal(data, &epics); err != nil {
		return nil, fmt.Errorf("cannot parse epics file %s: %w", cfg.EpicsFile, err)
	}
	return epics, nil
}

// loadDevelopers reads developer profiles from the --developers JSON file,
// falling back to every profile in the store when the flag is unset.
func loadDevelopers() ([]schema.DeveloperProfile, error) {
	if cfg.DevelopersFile != "" {
		data, err := os.ReadFile(cfg.DevelopersFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read developers file: %w", err)
		}
		var developers []schema.DeveloperProfile
		if err := json.Unmarshal(data, &developers); err != nil {
			return nil, fmt.Errorf("cannot parse developers file %s: %w", cfg.DevelopersFile, err)
		}
		return developers, nil
	}

	usernames, err := store.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("cannot list stored profiles: %w", err)
	}
	if len(usernames) == 0 {
		return nil, fmt.Errorf("--developers is required when no profiles are stored")
	}

	developers := make([]schema.DeveloperProfile, 0, len(usernames))
	for _, username := range usernames {
		profile, err := store.GetProfile(username)
		if err != nil {
			return nil, fmt.Errorf("cannot load stored profile for %s: %w", username, err)
		}
		if profile != nil {
			developers = append(developers, *profile)
		}
	}
	return developers, nil
}

// loadAssignments reads an assignment result from the --assignments JSON file.
func loadAssignments() (*schema.AssignmentResult, error) {
	if cfg.AssignmentsFile == "" {
		return nil, fmt.Errorf("--assignments is required")
	}
	data, err := os.ReadFile(cfg.AssignmentsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read assignments file: %w", err)
	}
	var result schema.AssignmentResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("cannot parse assignments file %s: %w", cfg.AssignmentsFile, err)
	}
	return &result, nil
}

// writeAssignmentsFile writes an updated assignment result back to the
// --assignments JSON file.
func writeAssignmentsFile(result *schema.AssignmentResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode assignments: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(cfg.AssignmentsFile, data, 0o644); err != nil {
		return fmt.Errorf("cannot write assignments file %s: %w", cfg.AssignmentsFile, err)
	}
	return nil
}
