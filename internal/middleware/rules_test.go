package middleware

import (
	"testing"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
)

func TestCompileRulesRejectsRelativePattern(t *testing.T) {
	if _, err := CompileRules([]Rule{{Pattern: "admin/users", MinLevel: auth.LevelAdmin}}); err == nil {
		t.Fatal("expected error for pattern without leading slash")
	}
}

func TestRuleTableMatching(t *testing.T) {
	table, err := CompileRules([]Rule{
		{Pattern: "/admin/users", MinLevel: auth.LevelAdmin},
		{Pattern: "/admin/cars/:id/edit", MinLevel: auth.LevelEditor},
	})
	if err != nil {
		t.Fatalf("CompileRules: %v", err)
	}

	cases := []struct {
		path      string
		wantLevel auth.AccessLevel
		wantMatch bool
	}{
		{"/admin/users", auth.LevelAdmin, true},
		// prefix semantics: sub-paths inherit the rule
		{"/admin/users/64f1/role", auth.LevelAdmin, true},
		{"/admin/cars/64f1/edit", auth.LevelEditor, true},
		{"/admin/cars/64f1/edit/photos", auth.LevelEditor, true},
		// a wildcard spans exactly one segment
		{"/admin/cars/64f1/extra/edit", auth.LevelNone, false},
		{"/admin/cars/edit", auth.LevelNone, false},
		{"/admin/dashboard", auth.LevelNone, false},
		// no partial-segment matches
		{"/admin/userscache", auth.LevelNone, false},
	}
	for _, tc := range cases {
		level, matched := table.MinLevel(tc.path)
		if matched != tc.wantMatch || level != tc.wantLevel {
			t.Errorf("MinLevel(%q) = %v, %v; want %v, %v", tc.path, level, matched, tc.wantLevel, tc.wantMatch)
		}
	}
}

func TestRuleOrderFirstMatchWins(t *testing.T) {
	table, err := CompileRules([]Rule{
		{Pattern: "/admin/cars/archive", MinLevel: auth.LevelAdmin},
		{Pattern: "/admin/cars/:id", MinLevel: auth.LevelEditor},
	})
	if err != nil {
		t.Fatalf("CompileRules: %v", err)
	}

	if level, _ := table.MinLevel("/admin/cars/archive"); level != auth.LevelAdmin {
		t.Fatalf("earlier rule must win, got %v", level)
	}
	if level, _ := table.MinLevel("/admin/cars/64f1"); level != auth.LevelEditor {
		t.Fatalf("wildcard rule should match other ids, got %v", level)
	}
}
