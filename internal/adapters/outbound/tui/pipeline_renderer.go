package tui

import (
	"fmt"

	"github.com/tubeharvest/shipkit/internal/domain"
)

// RenderHeader renders the banner shown before the pipeline starts.
func RenderHeader(target string) string {
	title := headerStyle.Render("shipkit")
	subtitle := dimStyle.Render("Publishing to " + target)
	return boxStyle.Render(title+"\n"+subtitle) + "\n"
}

// RenderStepResult renders one completed pipeline step.
func RenderStepResult(r domain.StepResult) string {
	switch {
	case r.OK():
		return fmt.Sprintf("%s %s\n", passStyle.Render("✓"), humanize(r.Name))
	case r.BestEffort:
		return fmt.Sprintf("%s %s  %s\n",
			warnStyle.Render("!"), humanize(r.Name),
			faintStyle.Render(fmt.Sprintf("(best effort: %v)", r.Err)))
	default:
		return fmt.Sprintf("%s %s  %s\n",
			failStyle.Render("✗"), humanize(r.Name),
			failStyle.Render(r.Err.Error()))
	}
}

// RenderOutcome renders the final success or failure banner.
func RenderOutcome(err error) string {
	if err == nil {
		return "\n" + bannerPass.Render("Publishing completed successfully.") + "\n"
	}
	return "\n" + bannerFail.Render("Publishing aborted: "+err.Error()) + "\n"
}
