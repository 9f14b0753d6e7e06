package repositories

import "testing"

func TestOrderClause(t *testing.T) {
	keys := map[string]string{"fullName": "full_name", "id": "id"}

	tests := []struct {
		name string
		sort string
		want string
	}{
		{"empty falls back to default", "", "id DESC"},
		{"ascending", "fullName", "full_name ASC"},
		{"leading dash is descending", "-fullName", "full_name DESC"},
		{"unknown key falls back to default", "createdAt", "id DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.sort, keys, "id DESC"); got != tt.want {
				t.Errorf("orderClause(%q) = %q, want %q", tt.sort, got, tt.want)
			}
		})
	}
}

func TestListSortKeys(t *testing.T) {
	tests := []struct {
		name    string
		keys    map[string]string
		def     string
		allowed []string
	}{
		{"students", studentSortKeys, "id DESC", []string{"fullName", "enrollmentYear", "id"}},
		{"staff", staffSortKeys, "full_name ASC", []string{"fullName", "id"}},
		{"admissions", admissionSortKeys, "a.admission_date DESC", []string{"id", "admissionDate"}},
		{"enrollments", enrollmentSortKeys, "e.date_enrolled DESC", []string{"id", "year", "semester"}},
		{"fees", feeSortKeys, "f.due_date DESC", []string{"paymentDate", "amount"}},
		{"programs", programSortKeys, "program_number ASC", []string{"name", "programNumber"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.keys) != len(tt.allowed) {
				t.Errorf("allow-list has %d keys, want %d", len(tt.keys), len(tt.allowed))
			}
			for _, key := range tt.allowed {
				if _, ok := tt.keys[key]; !ok {
					t.Errorf("sort key %q missing from allow-list", key)
				}
			}
		})
	}

	defaults := map[string]string{
		"students":    defaultStudentOrder,
		"staff":       defaultStaffOrder,
		"admissions":  defaultAdmissionOrder,
		"enrollments": defaultEnrollmentOrder,
		"fees":        defaultFeeOrder,
		"programs":    defaultProgramOrder,
	}
	for _, tt := range tests {
		if defaults[tt.name] != tt.def {
			t.Errorf("%s default order = %q, want %q", tt.name, defaults[tt.name], tt.def)
		}
	}
}
