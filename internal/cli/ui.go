package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/altlist/pkg/catalog"
	"github.com/matzehuels/altlist/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached  = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarnDim = lipgloss.NewStyle().Foreground(colorRed)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Build Report
// =============================================================================

// printBuildResult prints the outcome of a build followed by the largest
// categories.
func printBuildResult(r *pipeline.Result, path string, top int) {
	printSuccess("Wrote %s records", StyleNumber.Render(strconv.Itoa(len(r.Tools))))
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleLink.Render(path))

	parts := []string{
		fmt.Sprintf("%d entries", r.Parse.Entries),
		fmt.Sprintf("%d dropped", r.Parse.Dropped),
	}
	if r.Enrich.Eligible > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d enriched", r.Enrich.Enriched, r.Enrich.Eligible))
		if r.Enrich.Cached > 0 {
			parts = append(parts, styleCached.Render(fmt.Sprintf("%d cached", r.Enrich.Cached)))
		}
	}
	if r.Stats.Overridden > 0 {
		parts = append(parts, fmt.Sprintf("%d overridden", r.Stats.Overridden))
	}
	if r.Enrich.RateLimited > 0 {
		parts = append(parts, styleWarnDim.Render(fmt.Sprintf("%d rate limited", r.Enrich.RateLimited)))
	}
	printStatsLine(parts)

	if r.Enrich.RateLimited > 0 {
		printWarning("GitHub rate limit reached; set GITHUB_TOKEN or raise --interval")
	}

	printNewline()
	printCategories(catalog.Top(r.Categories, top))
	printNewline()
	printNextStep("Show the summary again", appName+" summary "+path)
}

// printSummary prints record counts and the largest categories of an
// artifact. top <= 0 prints every category.
func printSummary(tools []catalog.Tool, top int) {
	enriched := 0
	for _, t := range tools {
		if t.Enriched() {
			enriched++
		}
	}
	counts := catalog.Summarize(tools)

	fmt.Println(StyleTitle.Render("Catalog"))
	printKeyValue("Records", strconv.Itoa(len(tools)))
	printKeyValue("Categories", strconv.Itoa(len(counts)))
	printKeyValue("Enriched", strconv.Itoa(enriched))
	printNewline()

	if top > 0 {
		counts = catalog.Top(counts, top)
	}
	printCategories(counts)
}

// printCategories prints one aligned line per category.
func printCategories(counts []catalog.CategoryCount) {
	if len(counts) == 0 {
		printInfo("No categories")
		return
	}

	width := 0
	for _, c := range counts {
		width = max(width, lipgloss.Width(c.Category))
	}
	nameStyle := lipgloss.NewStyle().Foreground(colorGray).Width(width + 2)

	fmt.Println(StyleTitle.Render("Top categories"))
	for i, c := range counts {
		rank := StyleDim.Render(fmt.Sprintf("%3d.", i+1))
		fmt.Println(rank + " " + nameStyle.Render(c.Category) + StyleNumber.Render(strconv.Itoa(c.Count)))
	}
}

// printStatsLine prints dim parts separated by dots on a single line.
func printStatsLine(parts []string) {
	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
