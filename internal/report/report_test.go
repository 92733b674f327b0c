package report

import (
	"testing"

	"github.com/debagworks/debagmetrics/internal/models"
)

func strPtr(s string) *string { return &s }

func obs(personID uint, name, code string, role models.Role, avg float64, quality, safety bool) models.Observation {
	p := models.Person{ID: personID}
	if name != "" {
		p.Name = strPtr(name)
	}
	if code != "" {
		p.EmployeeCode = strPtr(code)
	}
	return models.Observation{
		PersonID:         personID,
		Role:             role,
		AvgSecondsPerBag: avg,
		QualityIssue:     quality,
		SafetyIssue:      safety,
		Person:           p,
	}
}

func TestSingleObservation(t *testing.T) {
	// 5 bags in 30 seconds => 6.00 stored avg
	observations := []models.Observation{
		obs(1, "Alex", "DB001", models.RoleDumper, 6.00, true, false),
	}

	rep := Build(Range{Start: "2026-01-01", End: "2026-01-31"}, observations)

	if rep.Totals.Observations != 1 {
		t.Fatalf("Expected 1 total observation, got %d", rep.Totals.Observations)
	}
	if len(rep.PerPerson) != 1 {
		t.Fatalf("Expected 1 person entry, got %d", len(rep.PerPerson))
	}

	entry := rep.PerPerson[0]
	if entry.Observations != 1 {
		t.Errorf("Expected 1 observation, got %d", entry.Observations)
	}
	if entry.AvgSecondsPerBag != 6.00 {
		t.Errorf("Expected avg 6.00, got %v", entry.AvgSecondsPerBag)
	}
	if entry.QualityIssueRate != 100 {
		t.Errorf("Expected quality rate 100, got %v", entry.QualityIssueRate)
	}
	if entry.SafetyIssueRate != 0 {
		t.Errorf("Expected safety rate 0, got %v", entry.SafetyIssueRate)
	}
}

func TestGroupingAndRates(t *testing.T) {
	observations := []models.Observation{
		obs(1, "Alex", "", models.RoleDumper, 4.70, true, false),
		obs(1, "Alex", "", models.RoleDumper, 5.30, false, false),
		obs(1, "Alex", "", models.RoleDumper, 6.00, false, true),
		obs(2, "Billie", "", models.RoleUnzipper, 3.00, false, false),
	}

	rep := Build(Range{}, observations)

	if len(rep.PerPerson) != 2 {
		t.Fatalf("Expected 2 person entries, got %d", len(rep.PerPerson))
	}

	alex := rep.PerPerson[0]
	if alex.PersonName != "Alex" {
		t.Fatalf("Expected Alex first, got %s", alex.PersonName)
	}
	if alex.Observations != 3 {
		t.Errorf("Expected 3 observations for Alex, got %d", alex.Observations)
	}
	// (4.70+5.30+6.00)/3 = 5.333... => 5.33
	if alex.AvgSecondsPerBag != 5.33 {
		t.Errorf("Expected avg 5.33, got %v", alex.AvgSecondsPerBag)
	}
	// 1/3 => 33.33
	if alex.QualityIssueRate != 33.33 {
		t.Errorf("Expected quality rate 33.33, got %v", alex.QualityIssueRate)
	}
	if alex.SafetyIssueRate != 33.33 {
		t.Errorf("Expected safety rate 33.33, got %v", alex.SafetyIssueRate)
	}

	for _, entry := range rep.PerPerson {
		if entry.QualityIssueRate < 0 || entry.QualityIssueRate > 100 {
			t.Errorf("Quality rate out of [0,100]: %v", entry.QualityIssueRate)
		}
	}
}

func TestDisplayNameFallbacks(t *testing.T) {
	observations := []models.Observation{
		obs(7, "", "DB007", models.RoleDumper, 5, false, false),
		obs(9, "", "", models.RoleDumper, 5, false, false),
	}

	rep := Build(Range{}, observations)

	names := map[string]bool{}
	for _, entry := range rep.PerPerson {
		names[entry.PersonName] = true
	}
	if !names["DB007"] {
		t.Error("Expected employee code fallback DB007")
	}
	if !names["ID 9"] {
		t.Error("Expected numeric fallback \"ID 9\"")
	}
}

func TestPerPersonSortedByName(t *testing.T) {
	observations := []models.Observation{
		obs(1, "zoe", "", models.RoleDumper, 5, false, false),
		obs(2, "Adam", "", models.RoleDumper, 5, false, false),
		obs(3, "mara", "", models.RoleDumper, 5, false, false),
	}

	rep := Build(Range{}, observations)

	// Collated order ignores case differences the way localeCompare does
	want := []string{"Adam", "mara", "zoe"}
	for i, name := range want {
		if rep.PerPerson[i].PersonName != name {
			t.Fatalf("Expected %s at index %d, got %s", name, i, rep.PerPerson[i].PersonName)
		}
	}
}

func TestByRoleAlwaysComplete(t *testing.T) {
	// Only DUMPER observations; UNZIPPER must still appear with zeros
	observations := []models.Observation{
		obs(1, "Alex", "", models.RoleDumper, 4.50, false, false),
	}

	rep := Build(Range{}, observations)

	if len(rep.ByRole) != len(models.Roles) {
		t.Fatalf("Expected %d role entries, got %d", len(models.Roles), len(rep.ByRole))
	}
	if rep.ByRole[0].Role != models.RoleDumper || rep.ByRole[1].Role != models.RoleUnzipper {
		t.Fatalf("Unexpected role order: %v, %v", rep.ByRole[0].Role, rep.ByRole[1].Role)
	}

	unzipper := rep.ByRole[1]
	if unzipper.Observations != 0 {
		t.Errorf("Expected 0 observations, got %d", unzipper.Observations)
	}
	if unzipper.AvgSecondsPerBag != 0 || unzipper.QualityIssueRate != 0 || unzipper.SafetyIssueRate != 0 {
		t.Errorf("Expected all-zero metrics for empty role, got %+v", unzipper)
	}
}

func TestEmptyInput(t *testing.T) {
	rep := Build(Range{Start: "2026-01-01", End: "2026-01-02"}, nil)

	if rep.Totals.Observations != 0 {
		t.Errorf("Expected 0 totals, got %d", rep.Totals.Observations)
	}
	if len(rep.PerPerson) != 0 {
		t.Errorf("Expected no person entries, got %d", len(rep.PerPerson))
	}
	if len(rep.ByRole) != 2 {
		t.Errorf("Expected 2 role entries even when empty, got %d", len(rep.ByRole))
	}
}

func TestRoundingHalfAwayFromZero(t *testing.T) {
	if got := percentage(1, 3); got != 33.33 {
		t.Errorf("percentage(1,3) = %v, want 33.33", got)
	}
	if got := percentage(2, 3); got != 66.67 {
		t.Errorf("percentage(2,3) = %v, want 66.67", got)
	}
	if got := percentage(0, 0); got != 0 {
		t.Errorf("percentage(0,0) = %v, want 0", got)
	}
	// 0.125 is exactly representable; the half rounds away from zero
	if got := average([]float64{0.125}); got != 0.13 {
		t.Errorf("average(0.125) = %v, want 0.13", got)
	}
	if got := average([]float64{4.70, 5.30, 6.00}); got != 5.33 {
		t.Errorf("average = %v, want 5.33", got)
	}
	if got := average(nil); got != 0 {
		t.Errorf("average(nil) = %v, want 0", got)
	}
}
