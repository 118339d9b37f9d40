package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the top-level JSON structure for workspace onboarding. It is
// produced either by hand, by the init wizard, or by an external tool; the
// importer validates it as a whole before anything is constructed.
type Document struct {
	Projects []ProjectImport `json:"projects"`
}

// ProjectImport defines one project and its workstreams.
type ProjectImport struct {
	Name        string             `json:"name"`
	Workstreams []WorkstreamImport `json:"workstreams"`
}

// WorkstreamImport defines a workstream, its cadence and its initial tasks.
// Milestone and MilestoneDate optionally seed one milestone that every task
// in the workstream starts out assigned to.
type WorkstreamImport struct {
	Name          string       `json:"name"`
	Cadence       string       `json:"cadence"`
	Lead          string       `json:"lead,omitempty"`
	Milestone     string       `json:"milestone,omitempty"`
	MilestoneDate string       `json:"milestone_date,omitempty"`
	Tasks         []TaskImport `json:"tasks"`
}

// TaskImport defines one recurring check-in commitment.
type TaskImport struct {
	Name  string `json:"name"`
	Owner string `json:"owner,omitempty"`
}

// LoadDocument reads and parses an onboarding JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &doc, nil
}
