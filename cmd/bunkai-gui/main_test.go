package main

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/oukeidos/bunkai/internal/analysis"
)

func TestRoleColor_DistinctPerRole(t *testing.T) {
	roles := []analysis.Role{
		analysis.RoleSubject,
		analysis.RoleVerb,
		analysis.RoleObject,
		analysis.RoleComplement,
		analysis.RoleModifier,
	}
	seen := map[string]analysis.Role{}
	for _, role := range roles {
		r, g, b, _ := roleColor(role).RGBA()
		key := fmt.Sprintf("%d/%d/%d", r, g, b)
		if prev, dup := seen[key]; dup {
			t.Fatalf("roles %q and %q share a color", prev, role)
		}
		seen[key] = role
	}
}

func TestRoleTextStyle(t *testing.T) {
	if !roleTextStyle(analysis.RoleSubject).Bold {
		t.Error("subject should be bold")
	}
	if !roleTextStyle(analysis.RoleVerb).Bold {
		t.Error("verb should be bold")
	}
	style := roleTextStyle(analysis.RoleModifier)
	if !style.Italic || style.Bold {
		t.Errorf("modifier style = %+v, want italic and not bold", style)
	}
	if roleTextStyle(analysis.RoleNone) != (fyne.TextStyle{}) {
		t.Error("none role should use the zero style")
	}
}
