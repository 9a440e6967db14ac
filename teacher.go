package bicadmin

import (
	"time"

	"github.com/nsifat/bicadmin/date"
	"github.com/shopspring/decimal"
)

// Teacher is a staff member with their salary payment history and a flat
// attendance record. Attendance maps an ISO date string to present/absent;
// re-marking a date overwrites the previous value.
type Teacher struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Gender     string          `json:"gender"`
	ClassName  string          `json:"className"`
	Salary     decimal.Decimal `json:"salary"`
	Payments   []Payment       `json:"payments"`
	Attendance map[string]bool `json:"attendance"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Present reports the attendance recorded for the given date, and whether
// any was recorded at all. Absent dates carry no implicit value.
func (t *Teacher) Present(on date.Date) (present, recorded bool) {
	present, recorded = t.Attendance[on.String()]
	return
}

// TeacherFields holds the caller-assembled fields of a new teacher.
type TeacherFields struct {
	Name      string
	Phone     string
	Gender    string
	ClassName string
	Salary    decimal.Decimal
}
