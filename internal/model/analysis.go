package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RiskAssessment struct {
	PartID      int64
	Key         string
	Wear        int
	Flow        decimal.Decimal
	Commonality int
	Multiplier  decimal.Decimal
	Score       int
	// Fingerprint is set only when it matched other machines.
	Fingerprint string
	// Description is the stored description after tagging; equal to the
	// input when a tag was already present.
	Description string
	Tagged      bool
}

// Finding is a part shared across machines with a non-trivial wear score.
type Finding struct {
	Label       string `json:"label"`
	Commonality int    `json:"commonality"`
	Wear        int    `json:"wear"`
	Score       int    `json:"score"`
}

type RiskResult struct {
	Assessments []RiskAssessment
	Findings    []Finding
}

// RiskUpdate is what the store persists for one part after the risk phase.
type RiskUpdate struct {
	PartID      int64
	Score       int
	WearRating  int
	Description *string
}

type RunOptions struct {
	DryRun    bool
	SkipRisk  bool
	SkipStock bool
	Trigger   string
}

type RunSummary struct {
	RunID              string          `json:"run_id"`
	Trigger            string          `json:"trigger"`
	DryRun             bool            `json:"dry_run"`
	StartedAt          time.Time       `json:"started_at"`
	FinishedAt         time.Time       `json:"finished_at"`
	Loaded             int             `json:"loaded"`
	Processed          int             `json:"processed"`
	Skipped            int             `json:"skipped"`
	RiskTagged         int             `json:"risk_tagged"`
	RiskUpdated        int             `json:"risk_updated"`
	StockGroups        int             `json:"stock_groups"`
	MinUpdated         int             `json:"min_updated"`
	SparesPlanned      int             `json:"spares_planned"`
	SparesCreated      int             `json:"spares_created"`
	EstimatedSpareCost decimal.Decimal `json:"estimated_spare_cost"`
	Findings           []Finding       `json:"findings"`
}

// Update returns the store write for a; the description is only rewritten
// when a tag was added.
func (a RiskAssessment) Update() RiskUpdate {
	u := RiskUpdate{PartID: a.PartID, Score: a.Score, WearRating: a.Wear}
	if !a.Tagged {
		desc := a.Description
		u.Description = &desc
	}
	return u
}
