package models

import (
	"math"
	"time"
)

// Role is the job a worker performed during a timed observation.
type Role string

const (
	RoleDumper   Role = "DUMPER"
	RoleUnzipper Role = "UNZIPPER"
)

// Roles lists every role in report order. The report deliberately emits a
// zero-count row for roles with no observations in range, so this list is
// fixed rather than derived from data. Keep it in sync with the constants.
var Roles = []Role{RoleDumper, RoleUnzipper}

// Belt identifies which DeBag conveyor the observation was taken on.
type Belt string

const (
	BeltDebag1 Belt = "DEBAG1"
	BeltDebag2 Belt = "DEBAG2"
)

// ShiftWindow is the rough part of the shift the observation fell in.
type ShiftWindow string

const (
	ShiftEarly ShiftWindow = "EARLY"
	ShiftMid   ShiftWindow = "MID"
	ShiftLate  ShiftWindow = "LATE"
)

// FlowCondition describes how the line was running during the timing.
type FlowCondition string

const (
	FlowNormal FlowCondition = "NORMAL"
	FlowPeak   FlowCondition = "PEAK"
	FlowJam    FlowCondition = "JAM"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDumper || r == RoleUnzipper
}

// Valid reports whether b is one of the known belts.
func (b Belt) Valid() bool {
	return b == BeltDebag1 || b == BeltDebag2
}

// Valid reports whether s is one of the known shift windows.
func (s ShiftWindow) Valid() bool {
	return s == ShiftEarly || s == ShiftMid || s == ShiftLate
}

// Valid reports whether f is one of the known flow conditions.
func (f FlowCondition) Valid() bool {
	return f == FlowNormal || f == FlowPeak || f == FlowJam
}

// Observation is an immutable fact record: one timed run of bags for one
// person. AvgSecondsPerBag is computed once at creation and stored; it is
// never recomputed on read.
type Observation struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	PersonID         uint          `gorm:"not null;index" json:"personId"`
	Role             Role          `gorm:"size:16;not null" json:"role"`
	Belt             Belt          `gorm:"size:16;not null" json:"belt"`
	ShiftWindow      ShiftWindow   `gorm:"size:16;not null" json:"shiftWindow"`
	BagsTimed        int           `gorm:"not null" json:"bagsTimed"`
	TotalSeconds     int           `gorm:"not null" json:"totalSeconds"`
	AvgSecondsPerBag float64       `gorm:"not null" json:"avgSecondsPerBag"`
	FlowCondition    FlowCondition `gorm:"size:16;not null;default:'NORMAL'" json:"flowCondition"`
	QualityIssue     bool          `gorm:"not null;default:false" json:"qualityIssue"`
	SafetyIssue      bool          `gorm:"not null;default:false" json:"safetyIssue"`
	Notes            *string       `gorm:"size:500" json:"notes"`
	CreatedAt        time.Time     `gorm:"index" json:"createdAt"`

	// Relations
	Person Person `gorm:"foreignKey:PersonID" json:"person"`
}

// TableName specifies the table name for Observation model
func (Observation) TableName() string {
	return "observations"
}

// Round2 rounds to two decimal places, half away from zero. All derived
// metrics (avg seconds per bag, issue rates) use this rule.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
