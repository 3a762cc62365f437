package insight

import (
	"fmt"
	"strings"

	"github.com/verifresh-labs/verifresh-backend/internal/model"
)

// renderHistory produces the deterministic textual log fed to the model:
// one line per entry, in stored (chronological) order.
func renderHistory(history []model.LogEntry) string {
	if len(history) == 0 {
		return "- No supply chain events recorded yet."
	}

	lines := make([]string, 0, len(history))
	for _, entry := range history {
		lines = append(lines, fmt.Sprintf(
			"- At timestamp %d, status was updated to %q at location %q.",
			entry.Timestamp, entry.Status, entry.Location,
		))
	}
	return strings.Join(lines, "\n")
}

// buildPrompt assembles the instruction preamble, the product fields, the
// rendered history and the current time into the model request text.
func buildPrompt(product *model.Product, hasImage bool, nowUnix int64) string {
	var b strings.Builder

	b.WriteString(`You are a supply chain and food quality analyst for a premium grocery store called "VeriFresh".
Your task is to analyze the provided supply chain data`)
	if hasImage {
		b.WriteString(" AND an image of the product")
	}
	b.WriteString(` to generate a customer-facing summary.
Your output MUST be a valid JSON object with the following keys: "freshness_score", "estimated_shelf_life", "quality_assessment", "visual_inspection", and "transit_anomalies". Do not include any other text or markdown formatting.

DATA ANALYSIS:
- freshness_score: An integer between 1 and 10, based on time since harvest.
- estimated_shelf_life: A string estimating remaining shelf life.
- transit_anomalies: A string that is "None detected." unless the history log shows long delays.

`)
	if hasImage {
		b.WriteString(`IMAGE ANALYSIS (based on the provided photo):
- visual_inspection: A one-sentence summary of the product's appearance. Comment on ripeness, color, and any visible blemishes.

`)
	} else {
		b.WriteString(`IMAGE ANALYSIS:
- visual_inspection: No image was provided; set this key to exactly "No image provided."

`)
	}
	b.WriteString(`OVERALL ASSESSMENT:
- quality_assessment: A brief, reassuring summary combining the available analyses.

`)
	fmt.Fprintf(&b, "Here is the data for the product %q from %q:\n", product.Name, product.FarmName)
	fmt.Fprintf(&b, "- Harvested at timestamp: %d\n", product.HarvestTimestamp)
	fmt.Fprintf(&b, "- Current UNIX timestamp: %d\n", nowUnix)
	b.WriteString("- Supply Chain History:\n")
	b.WriteString(renderHistory(product.History))

	return b.String()
}
