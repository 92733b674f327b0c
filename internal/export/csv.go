package export

import (
	"strconv"
	"strings"

	"github.com/debagworks/debagmetrics/internal/models"
)

// Column order of the observation export. Consumers (spreadsheets, the
// supervisor's tooling) rely on this exact header.
var csvHeader = []string{
	"created_at",
	"person",
	"employee_code",
	"role",
	"belt",
	"shift_window",
	"bags_timed",
	"total_seconds",
	"avg_seconds_per_bag",
	"flow_condition",
	"quality_issue",
	"safety_issue",
	"notes",
}

const timestampLayout = "2006-01-02T15:04:05.000Z"

// escape quotes a cell (doubling internal quotes) only when it contains a
// comma, a double quote, or a newline.
func escape(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// optional renders a nullable string cell; nil becomes the empty string.
func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ObservationsCSV renders observations (with Person preloaded) as CSV text
// in the order supplied. Rows are joined with \n and the document carries
// no trailing newline.
func ObservationsCSV(observations []models.Observation) string {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for i := range observations {
		obs := &observations[i]
		b.WriteByte('\n')
		writeRow(&b, []string{
			obs.CreatedAt.UTC().Format(timestampLayout),
			optional(obs.Person.Name),
			optional(obs.Person.EmployeeCode),
			string(obs.Role),
			string(obs.Belt),
			string(obs.ShiftWindow),
			strconv.Itoa(obs.BagsTimed),
			strconv.Itoa(obs.TotalSeconds),
			strconv.FormatFloat(obs.AvgSecondsPerBag, 'f', -1, 64),
			string(obs.FlowCondition),
			strconv.FormatBool(obs.QualityIssue),
			strconv.FormatBool(obs.SafetyIssue),
			optional(obs.Notes),
		})
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(cell))
	}
}
