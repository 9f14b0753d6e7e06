package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func loadInitSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}
	return string(data)
}

// Row deletes rely on the schema's referential actions: deleting a student
// must take its enrollments, fees and notifications with it, and removing a
// department head must null out hod_id rather than block the delete.
func TestInitSchemaDeclaresDeleteRules(t *testing.T) {
	schema := loadInitSchema(t)

	refs := regexp.MustCompile(`(?i)REFERENCES\s+\w+\s*\([^)]*\)[^,;]*`).FindAllString(schema, -1)
	if len(refs) == 0 {
		t.Fatal("no foreign key clauses found in schema")
	}
	for _, ref := range refs {
		if !strings.Contains(strings.ToUpper(ref), "ON DELETE") {
			t.Errorf("foreign key without delete rule: %q", strings.TrimSpace(ref))
		}
	}

	setNull := []string{
		"FOREIGN KEY (hod_id) REFERENCES staff(id) ON DELETE SET NULL",
		"designations(id) ON DELETE SET NULL",
		"departments(id) ON DELETE SET NULL",
	}
	for _, clause := range setNull {
		if !strings.Contains(schema, clause) {
			t.Errorf("missing SET NULL rule %q", clause)
		}
	}

	cascades := []string{
		"users(id) ON DELETE CASCADE",
		"programs(id) ON DELETE CASCADE",
		"students(id) ON DELETE CASCADE",
		"courses(id) ON DELETE CASCADE",
		"exams(id) ON DELETE CASCADE",
	}
	for _, clause := range cascades {
		if !strings.Contains(schema, clause) {
			t.Errorf("missing CASCADE rule %q", clause)
		}
	}
}
