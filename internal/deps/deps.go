package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"castfetch/internal/config"
)

// Requirement defines an external binary castfetch relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the external binaries for the given config. curl is
// only required when the fetch mode shells out to it.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "curl",
			Command:     cfg.Fetch.Binary,
			Description: "Required for downloads when fetch.mode is \"curl\"",
			Optional:    cfg.Fetch.Mode != "curl",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

// CheckRequired returns an error if any non-optional requirement is missing.
// This is the startup gate: a missing download tool is fatal to the process.
func CheckRequired(cfg *config.Config) error {
	for _, status := range CheckBinaries(Requirements(cfg)) {
		if !status.Optional && !status.Available {
			return fmt.Errorf("%s unavailable: %s", status.Name, status.Detail)
		}
	}
	return nil
}
