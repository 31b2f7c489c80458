package tui

import (
	"fmt"
	"strings"

	"github.com/tubeharvest/shipkit/internal/domain"
)

// RenderReport renders the validation report as a styled string:
// grouped check marks, totals, success rate, and a readiness banner.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("shipkit")
	subtitle := dimStyle.Render("Package Validation Report")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n")

	for _, group := range report.Groups {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			groupStyle.Render(humanize(group.Name)),
			dimStyle.Render(fmt.Sprintf("(%d)", len(group.Checks))),
		))
		for _, check := range group.Checks {
			b.WriteString("    " + renderCheck(check) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n")
	b.WriteString(fmt.Sprintf("  %s %d    %s %d    %s %d    %s %.1f%%\n",
		dimStyle.Render("total"), report.Total(),
		passStyle.Render("passed"), report.Passed(),
		failStyle.Render("failed"), report.Failed(),
		dimStyle.Render("success rate"), report.SuccessRate(),
	))
	b.WriteString("\n")

	if report.AllPassed() {
		b.WriteString("  " + bannerPass.Render("All validations passed. Ready for publishing.") + "\n")
	} else {
		b.WriteString("  " + bannerFail.Render(
			fmt.Sprintf("%d issue(s) found. Fix before publishing.", report.Failed())) + "\n")
	}

	return b.String()
}

func renderCheck(check domain.Check) string {
	mark := passStyle.Render("✓")
	if !check.Passed {
		mark = failStyle.Render("✗")
	}
	line := fmt.Sprintf("%s %s", mark, titleStyle.Render(humanize(check.Name)))
	if check.Detail != "" {
		line += "  " + faintStyle.Render(check.Detail)
	}
	return line
}
