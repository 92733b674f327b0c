package report

import (
	"fmt"
	"sort"

	"github.com/debagworks/debagmetrics/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Range labels the calendar window a report covers.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Totals holds whole-range counters.
type Totals struct {
	Observations int `json:"observations"`
}

// PersonSummary aggregates one person's observations in range.
type PersonSummary struct {
	PersonID         uint    `json:"personId"`
	PersonName       string  `json:"personName"`
	Observations     int     `json:"observations"`
	AvgSecondsPerBag float64 `json:"avgSecondsPerBag"`
	QualityIssueRate float64 `json:"qualityIssueRate"`
	SafetyIssueRate  float64 `json:"safetyIssueRate"`
}

// RoleSummary aggregates one role's observations in range. A role with no
// observations still gets an entry with zero counts and rates.
type RoleSummary struct {
	Role             models.Role `json:"role"`
	Observations     int         `json:"observations"`
	AvgSecondsPerBag float64     `json:"avgSecondsPerBag"`
	QualityIssueRate float64     `json:"qualityIssueRate"`
	SafetyIssueRate  float64     `json:"safetyIssueRate"`
}

// Report is the aggregation output for a date range.
type Report struct {
	Range     Range           `json:"range"`
	Totals    Totals          `json:"totals"`
	PerPerson []PersonSummary `json:"perPerson"`
	ByRole    []RoleSummary   `json:"byRole"`
}

// percentage computes 100*count/total rounded to 2 decimals; an empty
// denominator yields 0, never an error.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return models.Round2(float64(count) / float64(total) * 100)
}

// average computes the mean rounded to 2 decimals; empty input yields 0.
func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return models.Round2(sum / float64(len(values)))
}

// displayName labels a person the way the dashboard does: name, else
// employee code, else the numeric id.
func displayName(obs *models.Observation) string {
	if name := obs.Person.DisplayName(); name != "" {
		return name
	}
	return fmt.Sprintf("ID %d", obs.PersonID)
}

type personAccumulator struct {
	summary   PersonSummary
	avgValues []float64
	quality   int
	safety    int
}

// Build aggregates a range-filtered observation list (with Person preloaded)
// into per-person and per-role summaries. Pure; performs no I/O.
func Build(rng Range, observations []models.Observation) *Report {
	perPerson := make(map[uint]*personAccumulator)
	for i := range observations {
		obs := &observations[i]
		acc, ok := perPerson[obs.PersonID]
		if !ok {
			acc = &personAccumulator{summary: PersonSummary{
				PersonID:   obs.PersonID,
				PersonName: displayName(obs),
			}}
			perPerson[obs.PersonID] = acc
		}
		acc.summary.Observations++
		acc.avgValues = append(acc.avgValues, obs.AvgSecondsPerBag)
		if obs.QualityIssue {
			acc.quality++
		}
		if obs.SafetyIssue {
			acc.safety++
		}
	}

	people := make([]PersonSummary, 0, len(perPerson))
	for _, acc := range perPerson {
		s := acc.summary
		s.AvgSecondsPerBag = average(acc.avgValues)
		s.QualityIssueRate = percentage(acc.quality, s.Observations)
		s.SafetyIssueRate = percentage(acc.safety, s.Observations)
		people = append(people, s)
	}

	// Locale-aware name ordering, matching the dashboard's sort.
	cl := collate.New(language.English)
	sort.SliceStable(people, func(i, j int) bool {
		return cl.CompareString(people[i].PersonName, people[j].PersonName) < 0
	})

	byRole := make([]RoleSummary, 0, len(models.Roles))
	for _, role := range models.Roles {
		byRole = append(byRole, roleSummary(role, observations))
	}

	return &Report{
		Range:     rng,
		Totals:    Totals{Observations: len(observations)},
		PerPerson: people,
		ByRole:    byRole,
	}
}

func roleSummary(role models.Role, observations []models.Observation) RoleSummary {
	s := RoleSummary{Role: role}
	var avgValues []float64
	var quality, safety int
	for i := range observations {
		obs := &observations[i]
		if obs.Role != role {
			continue
		}
		s.Observations++
		avgValues = append(avgValues, obs.AvgSecondsPerBag)
		if obs.QualityIssue {
			quality++
		}
		if obs.SafetyIssue {
			safety++
		}
	}
	s.AvgSecondsPerBag = average(avgValues)
	s.QualityIssueRate = percentage(quality, s.Observations)
	s.SafetyIssueRate = percentage(safety, s.Observations)
	return s
}
