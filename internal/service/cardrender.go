package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// ErrUnsupportedFormat is returned for export formats the renderer does not know.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportFormat identifies a kit card export format.
type ExportFormat string

// Supported export formats.
const (
	FormatMarkdown ExportFormat = "markdown"
	FormatJSON     ExportFormat = "json"
)

// ParseExportFormat maps a user-supplied format string to an ExportFormat.
// An empty string defaults to markdown.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// CardRenderer renders kit cards for export. It is stateless and safe
// for concurrent use.
type CardRenderer struct{}

// NewCardRenderer creates a new card renderer.
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{}
}

// Render returns the card rendered in the given format along with the
// matching content type.
func (r *CardRenderer) Render(card *model.KitCard, format ExportFormat) ([]byte, string, error) {
	switch format {
	case FormatMarkdown:
		return r.renderMarkdown(card), "text/markdown; charset=utf-8", nil
	case FormatJSON:
		data, err := json.MarshalIndent(card, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (r *CardRenderer) renderMarkdown(card *model.KitCard) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Kit Card: %s\n\n", card.PartName)
	if !card.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Generated %s\n\n", card.CreatedAt.Format("2006-01-02 15:04 MST"))
	}

	b.WriteString("## Geometry\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Volume | %.2f cm³ |\n", card.Metrics.VolumeCm3)
	fmt.Fprintf(&b, "| Surface area | %.2f cm² |\n", card.Metrics.SurfaceAreaCm2)
	fmt.Fprintf(&b, "| Bounding box | %.1f × %.1f × %.1f cm |\n",
		card.Metrics.BoundingBox.X, card.Metrics.BoundingBox.Y, card.Metrics.BoundingBox.Z)
	fmt.Fprintf(&b, "| Triangles | %d |\n", card.Metrics.TriangleCount)
	fmt.Fprintf(&b, "| Watertight | %v |\n", card.Metrics.IsWatertight)
	fmt.Fprintf(&b, "| Shells | %d |\n\n", card.Metrics.ShellCount)

	b.WriteString("## Estimate\n\n")
	fmt.Fprintf(&b, "- Material: %s (%.2f g/cm³, $%.3f/g)\n",
		card.Material.Name, card.Material.DensityGCm3, card.Material.CostPerGram)
	fmt.Fprintf(&b, "- Complexity score: %.1f / 10\n", card.Estimate.ComplexityScore)
	fmt.Fprintf(&b, "- Mass: %.2f g\n", card.Estimate.MassG)
	fmt.Fprintf(&b, "- Material cost: $%.3f\n", card.Estimate.CostUSD)
	fmt.Fprintf(&b, "- Print time: %.2f h\n\n", card.Estimate.PrintTimeHours)

	b.WriteString("## Recommended settings\n\n")
	settings := card.Estimate.RecommendedSettings
	fmt.Fprintf(&b, "- Layer height: %.2f mm\n", settings.LayerHeightMm)
	fmt.Fprintf(&b, "- Infill: %d%%\n", settings.InfillPercent)
	fmt.Fprintf(&b, "- Supports: %s\n", supportsLabel(settings.SupportsRequired))

	return []byte(b.String())
}

func supportsLabel(required bool) string {
	if required {
		return "required"
	}
	return "not required"
}
