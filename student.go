package bicadmin

import "time"

// Sibling is a sibling sub-record on a student: the student shape minus id
// and payments.
type Sibling struct {
	Name      string `json:"name"`
	Parent    string `json:"parent"`
	Phone     string `json:"phone"`
	Grade     string `json:"grade"`
	ClassName string `json:"className"`
}

// Student is an enrolled student with their tuition payment history.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Parent    string    `json:"parent"`
	Phone     string    `json:"phone"`
	Grade     string    `json:"grade"`
	ClassName string    `json:"className"`
	Siblings  []Sibling `json:"siblings"`
	Payments  []Payment `json:"payments"`
	CreatedAt time.Time `json:"createdAt"`
}

// StudentFields holds the caller-assembled fields of a new student.
type StudentFields struct {
	Name      string
	Parent    string
	Phone     string
	Grade     string
	ClassName string
	Siblings  []Sibling
}

// StudentPatch is a shallow-merge patch for a student profile: nil fields
// are left unchanged. Payments are never patched this way; they have their
// own operations so the income mirror cannot drift.
type StudentPatch struct {
	Name      *string
	Parent    *string
	Phone     *string
	Grade     *string
	ClassName *string
	Siblings  *[]Sibling
}

func (s *Student) apply(patch StudentPatch) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Parent != nil {
		s.Parent = *patch.Parent
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Grade != nil {
		s.Grade = *patch.Grade
	}
	if patch.ClassName != nil {
		s.ClassName = *patch.ClassName
	}
	if patch.Siblings != nil {
		s.Siblings = *patch.Siblings
	}
}
