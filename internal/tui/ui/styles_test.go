package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	// Test that styles are non-empty (basic sanity check)
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"TabSeparator", styles.TabSeparator},
		{"Content", styles.Content},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusValue", styles.StatusValue},
		{"StatusHelp", styles.StatusHelp},
		{"RowSelected", styles.RowSelected},
		{"RowNormal", styles.RowNormal},
		{"RowIndex", styles.RowIndex},
		{"RowDate", styles.RowDate},
		{"RowTime", styles.RowTime},
		{"RowActivity", styles.RowActivity},
		{"RowDuration", styles.RowDuration},
		{"ChartBar", styles.ChartBar},
		{"ChartLabel", styles.ChartLabel},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"HelpKey", styles.HelpKey},
		{"HelpDesc", styles.HelpDesc},
		{"Input", styles.Input},
		{"InputFocused", styles.InputFocused},
		{"Dialog", styles.Dialog},
		{"DialogTitle", styles.DialogTitle},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("test")
			if rendered == "" {
				t.Errorf("expected non-empty rendered output for style %s", tt.name)
			}
		})
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tp := NewThemeProvider("dracula")

	styles := NewStylesFromRegistry(tp.registry)

	if styles.TabActive.Render("Logs") == "" {
		t.Error("TabActive style rendered empty string")
	}
	if styles.RowDuration.Render("1h 30m") == "" {
		t.Error("RowDuration style rendered empty string")
	}
}
