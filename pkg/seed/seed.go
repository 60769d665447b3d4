// Package seed loads the sample collections the service starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/insights"
	"github.com/artem13815/after42/pkg/job"
	"github.com/artem13815/after42/pkg/team"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Jobs       []job.Job             `yaml:"jobs"`
	Candidates []candidate.Candidate `yaml:"candidates"`
	Team       []team.Member         `yaml:"team"`
	Insights   insights.Dataset      `yaml:"insights"`
}

// Load reads path, or the embedded dataset when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Parse(defaultSeed)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Data, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := d.validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (d Data) validate() error {
	jobIDs := make(map[string]struct{}, len(d.Jobs))
	for _, j := range d.Jobs {
		if _, dup := jobIDs[j.ID]; dup || j.ID == "" {
			return fmt.Errorf("seed: job id %q is empty or duplicated", j.ID)
		}
		if !j.Status.Valid() || !j.Difficulty.Valid() {
			return fmt.Errorf("seed: job %s has invalid status or difficulty", j.ID)
		}
		jobIDs[j.ID] = struct{}{}
	}
	candIDs := make(map[string]struct{}, len(d.Candidates))
	for _, c := range d.Candidates {
		if _, dup := candIDs[c.ID]; dup || c.ID == "" {
			return fmt.Errorf("seed: candidate id %q is empty or duplicated", c.ID)
		}
		if !c.Status.Valid() {
			return fmt.Errorf("seed: candidate %s has invalid status %q", c.ID, c.Status)
		}
		candIDs[c.ID] = struct{}{}
	}
	return nil
}
