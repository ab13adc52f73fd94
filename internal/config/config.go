// Package config holds the externally supplied scoring data: trait catalogs,
// the question→tendency mapping and the selection thresholds. The engine
// itself stays a pure function of (questions, answers, profile); everything
// that used to be a hand-authored global table lives here as data.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	engineerrors "github.com/talentgauge/assess-engine/internal/errors"
	"github.com/talentgauge/assess-engine/internal/scoring"
)

// Profile bundles one complete set of scoring data.
type Profile struct {
	// PassScore is the exam pass threshold (0-100).
	PassScore int `json:"passScore"`
	// DominanceThreshold is the minimum share for the survey's threshold
	// policy.
	DominanceThreshold float64 `json:"dominanceThreshold"`
	// TopN is the rank cutoff for the interview's top-N-with-ties policy.
	TopN int `json:"topN"`
	// SignificantShare gates characteristic flattening; a dominant trait
	// contributes its tags only above this share.
	SignificantShare float64 `json:"significantShare"`

	Tendencies      []scoring.TraitInfo     `json:"tendencies"`
	TendencyMapping scoring.TendencyMapping `json:"tendencyMapping,omitempty"`
	DiscTypes       []scoring.TraitInfo     `json:"discTypes"`
}

// Params converts the profile into scorer parameters.
func (p *Profile) Params() scoring.Params {
	return scoring.Params{
		PassScore:          p.PassScore,
		DominanceThreshold: p.DominanceThreshold,
		TopN:               p.TopN,
		SignificantShare:   p.SignificantShare,
		Tendencies:         p.Tendencies,
		TendencyMapping:    p.TendencyMapping,
		DiscTypes:          p.DiscTypes,
	}
}

// Validate checks the profile for values the engine cannot work with.
func (p *Profile) Validate() error {
	if p.PassScore < 0 || p.PassScore > 100 {
		return engineerrors.NewConfigError(fmt.Sprintf("pass score %d outside 0-100", p.PassScore), nil)
	}
	if p.DominanceThreshold < 0 || p.DominanceThreshold > 1 {
		return engineerrors.NewConfigError(fmt.Sprintf("dominance threshold %v outside 0-1", p.DominanceThreshold), nil)
	}
	if p.SignificantShare < 0 || p.SignificantShare > 1 {
		return engineerrors.NewConfigError(fmt.Sprintf("significant share %v outside 0-1", p.SignificantShare), nil)
	}
	if p.TopN <= 0 {
		return engineerrors.NewConfigError(fmt.Sprintf("top-N cutoff %d must be positive", p.TopN), nil)
	}
	if len(p.DiscTypes) != 4 {
		return engineerrors.NewConfigError(fmt.Sprintf("DISC catalog has %d traits, want 4", len(p.DiscTypes)), nil)
	}
	if len(p.Tendencies) == 0 {
		return engineerrors.NewConfigError("tendency catalog is empty", nil)
	}
	for qid, item := range p.TendencyMapping {
		if item.Weight < 0 {
			return engineerrors.NewConfigError(fmt.Sprintf("question %d has negative weight %v", qid, item.Weight), nil)
		}
		if item.TraitID == "" {
			return engineerrors.NewConfigError(fmt.Sprintf("question %d maps to an empty trait id", qid), nil)
		}
	}
	return nil
}

// Load reads a profile from path. A missing file yields the built-in default
// profile; a present but malformed file is an error.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, engineerrors.NewConfigError("failed to open scoring profile", err)
	}
	defer file.Close()

	profile := Default()
	if err := json.NewDecoder(file).Decode(profile); err != nil {
		return nil, engineerrors.NewConfigError("failed to decode scoring profile", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Default returns the built-in scoring profile: nine vocational tendencies,
// the four DISC types and the stock thresholds.
func Default() *Profile {
	return &Profile{
		PassScore:          60,
		DominanceThreshold: 0.3,
		TopN:               3,
		SignificantShare:   0.2,
		Tendencies:         defaultTendencies(),
		TendencyMapping:    scoring.TendencyMapping{},
		DiscTypes:          defaultDiscTypes(),
	}
}

func defaultTendencies() []scoring.TraitInfo {
	return []scoring.TraitInfo{
		{
			ID:          "T1",
			Name:        "Leadership",
			Description: "Comfortable taking charge, setting direction and being accountable for outcomes.",
			Occupations: []string{"Team lead", "Project manager", "Operations manager", "Entrepreneur"},
		},
		{
			ID:          "T2",
			Name:        "Persuasion",
			Description: "Enjoys winning people over and negotiating towards an agreement.",
			Occupations: []string{"Sales representative", "Account manager", "Public relations officer", "Recruiter"},
		},
		{
			ID:          "T3",
			Name:        "Analysis",
			Description: "Drawn to data, patterns and rigorous reasoning about how things work.",
			Occupations: []string{"Data analyst", "Software engineer", "Financial analyst", "Researcher"},
		},
		{
			ID:          "T4",
			Name:        "Creativity",
			Description: "Generates original ideas and prefers open-ended problems over routine.",
			Occupations: []string{"Designer", "Copywriter", "Product manager", "Marketing specialist"},
		},
		{
			ID:          "T5",
			Name:        "Service",
			Description: "Finds satisfaction in helping others and smoothing their path.",
			Occupations: []string{"Customer support specialist", "Nurse", "Teacher", "HR generalist"},
		},
		{
			ID:          "T6",
			Name:        "Organization",
			Description: "Keeps processes orderly, plans ahead and follows through on detail.",
			Occupations: []string{"Administrator", "Accountant", "Logistics coordinator", "Quality auditor"},
		},
		{
			ID:          "T7",
			Name:        "Practicality",
			Description: "Prefers tangible, hands-on work with visible results.",
			Occupations: []string{"Field technician", "Mechanic", "Agronomist", "Facilities manager"},
		},
		{
			ID:          "T8",
			Name:        "Resilience",
			Description: "Stays steady under pressure and recovers quickly from setbacks.",
			Occupations: []string{"Emergency dispatcher", "Site supervisor", "Sales manager", "Paramedic"},
		},
		{
			ID:          "T9",
			Name:        "Collaboration",
			Description: "Works best in a team, building consensus and sharing credit.",
			Occupations: []string{"Scrum master", "Community manager", "Event coordinator", "Trainer"},
		},
	}
}

func defaultDiscTypes() []scoring.TraitInfo {
	return []scoring.TraitInfo{
		{
			ID:   scoring.TraitDominance,
			Name: "Dominance",
			Description: "Assertive and competitive, driven by goals and quick decisions; " +
				"takes charge naturally and thrives on challenge.",
			Characteristics: []string{
				"assertive", "goal driven", "decisive", "embraces challenge",
				"natural leader", "competitive",
			},
		},
		{
			ID:   scoring.TraitInfluence,
			Name: "Influence",
			Description: "Outgoing and persuasive, energized by people; builds rapport " +
				"easily and keeps the mood optimistic.",
			Characteristics: []string{
				"sociable", "persuasive", "enthusiastic", "optimistic",
				"builds rapport", "engaging",
			},
		},
		{
			ID:   scoring.TraitSteadiness,
			Name: "Steadiness",
			Description: "Calm, dependable and patient; prefers stable conditions and " +
				"supports the team without seeking the spotlight.",
			Characteristics: []string{
				"dependable", "team player", "patient", "loyal",
				"supportive", "avoids conflict",
			},
		},
		{
			ID:   scoring.TraitCompliance,
			Name: "Compliance",
			Description: "Precise and systematic, works by the rules and measures twice; " +
				"quality and correctness come before speed.",
			Characteristics: []string{
				"precise", "detail oriented", "logical", "quality focused",
				"careful analyst", "systematic",
			},
		},
	}
}
