package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

func renderableCard() *model.KitCard {
	return &model.KitCard{
		ID:       primitive.NewObjectID(),
		UserID:   primitive.NewObjectID(),
		PartName: "Tactical Grip",
		FileHash: "abc123",
		Metrics: model.MeshMetrics{
			VolumeCm3:      30,
			SurfaceAreaCm2: 62,
			BoundingBox:    model.BoundingBox{X: 5, Y: 3, Z: 2},
			TriangleCount:  12,
			IsWatertight:   true,
			ShellCount:     1,
		},
		Material: model.MaterialProfile{Name: model.MaterialPLA, DensityGCm3: 1.24, CostPerGram: 0.02},
		Config:   model.PrintConfig{InfillFraction: 0.20},
		Estimate: model.EstimationResult{
			ComplexityScore: 0,
			MassG:           16.37,
			CostUSD:         0.327,
			PrintTimeHours:  1.32,
			RecommendedSettings: model.RecommendedSettings{
				LayerHeightMm:    0.28,
				InfillPercent:    15,
				SupportsRequired: false,
			},
		},
		CreatedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ExportFormat
		wantErr bool
	}{
		{input: "", want: FormatMarkdown},
		{input: "markdown", want: FormatMarkdown},
		{input: "md", want: FormatMarkdown},
		{input: "Markdown", want: FormatMarkdown},
		{input: "json", want: FormatJSON},
		{input: "JSON", want: FormatJSON},
		{input: "pdf", wantErr: true},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseExportFormat(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardRenderer_Markdown(t *testing.T) {
	renderer := NewCardRenderer()

	data, contentType, err := renderer.Render(renderableCard(), FormatMarkdown)

	require.NoError(t, err)
	assert.Equal(t, "text/markdown; charset=utf-8", contentType)

	md := string(data)
	assert.Contains(t, md, "# Kit Card: Tactical Grip")
	assert.Contains(t, md, "| Volume | 30.00 cm³ |")
	assert.Contains(t, md, "- Material: PLA (1.24 g/cm³, $0.020/g)")
	assert.Contains(t, md, "- Mass: 16.37 g")
	assert.Contains(t, md, "- Material cost: $0.327")
	assert.Contains(t, md, "- Print time: 1.32 h")
	assert.Contains(t, md, "- Layer height: 0.28 mm")
	assert.Contains(t, md, "- Infill: 15%")
	assert.Contains(t, md, "- Supports: not required")
}

func TestCardRenderer_JSON(t *testing.T) {
	renderer := NewCardRenderer()
	card := renderableCard()

	data, contentType, err := renderer.Render(card, FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded model.KitCard
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, card.PartName, decoded.PartName)
	assert.Equal(t, card.Estimate.MassG, decoded.Estimate.MassG)
}

func TestCardRenderer_UnsupportedFormat(t *testing.T) {
	renderer := NewCardRenderer()

	_, _, err := renderer.Render(renderableCard(), ExportFormat("xml"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
