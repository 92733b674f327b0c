package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/debagworks/debagmetrics/internal/models"
)

// Request payload limits. These mirror the capture form's own constraints;
// the server is the source of truth.
const (
	MaxNameLen         = 100
	MaxEmployeeCodeLen = 50
	MaxNotesLen        = 500

	MinBagsTimed = 1
	MaxBagsTimed = 500

	MinTotalSeconds = 1
	MaxTotalSeconds = 100000

	MinListLimit     = 1
	MaxListLimit     = 200
	DefaultListLimit = 50

	DefaultBagsTimed = 10
)

// FlexInt is an integer that accepts both a JSON number and a quoted
// numeric string, since the capture form posts form-sourced values.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	*f = FlexInt(n)
	return nil
}

// CreatePersonInput is the request body for quick-adding a roster entry.
type CreatePersonInput struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employeeCode"`
	Active       *bool  `json:"active"`
}

// NewPerson validates the input and builds the model to persist.
func (in CreatePersonInput) NewPerson() (*models.Person, error) {
	name := strings.TrimSpace(in.Name)
	code := strings.TrimSpace(in.EmployeeCode)

	if name == "" && code == "" {
		return nil, fmt.Errorf("Either name or employee code is required.")
	}
	if len(name) > MaxNameLen {
		return nil, fmt.Errorf("Name must be at most %d characters.", MaxNameLen)
	}
	if len(code) > MaxEmployeeCodeLen {
		return nil, fmt.Errorf("Employee code must be at most %d characters.", MaxEmployeeCodeLen)
	}

	person := &models.Person{Active: true}
	if in.Active != nil {
		person.Active = *in.Active
	}
	if name != "" {
		person.Name = &name
	}
	if code != "" {
		person.EmployeeCode = &code
	}
	return person, nil
}

// CreateObservationInput is the request body for recording a timed run.
type CreateObservationInput struct {
	PersonID      FlexInt  `json:"personId"`
	Role          string   `json:"role"`
	Belt          string   `json:"belt"`
	ShiftWindow   string   `json:"shiftWindow"`
	BagsTimed     *FlexInt `json:"bagsTimed"`
	TotalSeconds  FlexInt  `json:"totalSeconds"`
	FlowCondition string   `json:"flowCondition"`
	QualityIssue  bool     `json:"qualityIssue"`
	SafetyIssue   bool     `json:"safetyIssue"`
	Notes         string   `json:"notes"`
}

// NewObservation validates the input and builds the model to persist,
// computing the stored avg seconds per bag.
func (in CreateObservationInput) NewObservation() (*models.Observation, error) {
	if in.PersonID <= 0 {
		return nil, fmt.Errorf("A valid personId is required.")
	}

	role := models.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("Invalid role %q.", in.Role)
	}
	belt := models.Belt(in.Belt)
	if !belt.Valid() {
		return nil, fmt.Errorf("Invalid belt %q.", in.Belt)
	}
	shift := models.ShiftWindow(in.ShiftWindow)
	if !shift.Valid() {
		return nil, fmt.Errorf("Invalid shift window %q.", in.ShiftWindow)
	}

	flow := models.FlowNormal
	if in.FlowCondition != "" {
		flow = models.FlowCondition(in.FlowCondition)
		if !flow.Valid() {
			return nil, fmt.Errorf("Invalid flow condition %q.", in.FlowCondition)
		}
	}

	bags := DefaultBagsTimed
	if in.BagsTimed != nil {
		bags = int(*in.BagsTimed)
	}
	if bags < MinBagsTimed || bags > MaxBagsTimed {
		return nil, fmt.Errorf("bagsTimed must be between %d and %d.", MinBagsTimed, MaxBagsTimed)
	}

	seconds := int(in.TotalSeconds)
	if seconds < MinTotalSeconds || seconds > MaxTotalSeconds {
		return nil, fmt.Errorf("totalSeconds must be between %d and %d.", MinTotalSeconds, MaxTotalSeconds)
	}

	notes := strings.TrimSpace(in.Notes)
	if len(notes) > MaxNotesLen {
		return nil, fmt.Errorf("Notes must be at most %d characters.", MaxNotesLen)
	}

	obs := &models.Observation{
		PersonID:         uint(in.PersonID),
		Role:             role,
		Belt:             belt,
		ShiftWindow:      shift,
		BagsTimed:        bags,
		TotalSeconds:     seconds,
		AvgSecondsPerBag: models.Round2(float64(seconds) / float64(bags)),
		FlowCondition:    flow,
		QualityIssue:     in.QualityIssue,
		SafetyIssue:      in.SafetyIssue,
	}
	if notes != "" {
		obs.Notes = &notes
	}
	return obs, nil
}

// ObservationFilters are the validated query parameters of the list endpoint.
// All filters are optional; Range is set only when both start and end were
// supplied (a lone bound is ignored, matching the capture UI's behavior).
type ObservationFilters struct {
	Role          models.Role
	Belt          models.Belt
	ShiftWindow   models.ShiftWindow
	FlowCondition models.FlowCondition
	Limit         int
	Range         *DateRange
}

// queryParam reads the camelCase key with a snake_case fallback.
func queryParam(q url.Values, key, alias string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return q.Get(alias)
}

// ParseObservationFilters validates list-endpoint query parameters.
func ParseObservationFilters(q url.Values) (*ObservationFilters, error) {
	f := &ObservationFilters{Limit: DefaultListLimit}

	if v := q.Get("role"); v != "" {
		f.Role = models.Role(v)
		if !f.Role.Valid() {
			return nil, fmt.Errorf("Invalid role %q.", v)
		}
	}
	if v := q.Get("belt"); v != "" {
		f.Belt = models.Belt(v)
		if !f.Belt.Valid() {
			return nil, fmt.Errorf("Invalid belt %q.", v)
		}
	}
	if v := queryParam(q, "shiftWindow", "shift_window"); v != "" {
		f.ShiftWindow = models.ShiftWindow(v)
		if !f.ShiftWindow.Valid() {
			return nil, fmt.Errorf("Invalid shift window %q.", v)
		}
	}
	if v := queryParam(q, "flowCondition", "flow_condition"); v != "" {
		f.FlowCondition = models.FlowCondition(v)
		if !f.FlowCondition.Valid() {
			return nil, fmt.Errorf("Invalid flow condition %q.", v)
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("Invalid limit %q.", v)
		}
		if n < MinListLimit || n > MaxListLimit {
			return nil, fmt.Errorf("limit must be between %d and %d.", MinListLimit, MaxListLimit)
		}
		f.Limit = n
	}

	start, end := q.Get("start"), q.Get("end")
	if start != "" && end != "" {
		rng, err := ParseDateRange(start, end)
		if err != nil {
			return nil, err
		}
		f.Range = rng
	}

	return f, nil
}
