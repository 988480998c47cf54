package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eyesofbug/VoyageIQ/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *models.TripPlan {
	return &models.TripPlan{
		ID: "test123",
		Request: models.PlanRequest{
			Destinations: []string{"Aravelle"},
			Days:         1,
			Budget:       20000,
			Month:        "March",
			GroupType:    models.GroupSolo,
		},
		Itinerary: []models.ItineraryDay{{
			Day:  1,
			Area: "Old Town",
			Activities: []models.ActivitySlot{
				{Time: models.TimeSlots[0], Activity: "Sunset Fort", Cost: 300, Duration: 2, Lat: 10, Lon: 76},
				{Time: models.TimeSlotLunch, Activity: "🍱 Lunch: Local Food in Old Town", Cost: 800, Duration: 1.5, IsMeal: true},
			},
		}},
		Budget:      models.BudgetResult{TotalEstimated: 13750, Score: 100, Status: models.StatusOptimal},
		Scores:      models.ScoreBundle{Overall: 92},
		GeneratedAt: time.Now().UTC(),
	}
}

func TestForConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.Config
		want    interface{}
		wantErr bool
	}{
		{"default is console", models.Config{}, &ConsoleOutput{}, false},
		{"explicit console", models.Config{OutputFormat: "console"}, &ConsoleOutput{}, false},
		{"json", models.Config{OutputFormat: "json"}, &JSONOutput{}, false},
		{"csv", models.Config{OutputFormat: "csv"}, &CSVOutput{}, false},
		{"parquet local", models.Config{OutputFormat: "parquet", OutputDestination: "local"}, &ParquetOutput{}, false},
		{"unsupported", models.Config{OutputFormat: "xml"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := ForConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, sink)
		})
	}
}

func TestJSONOutputWritePlan(t *testing.T) {
	dir := t.TempDir()
	sink := NewJSONOutput(dir, "plans")
	plan := testPlan()

	require.NoError(t, sink.WritePlan(plan))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(filepath.Join(dir, "plans", "plan_test123.json"))
	require.NoError(t, err)

	var decoded models.TripPlan
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, plan.ID, decoded.ID)
	assert.Equal(t, plan.Budget.TotalEstimated, decoded.Budget.TotalEstimated)
	require.Len(t, decoded.Itinerary, 1)
	assert.Equal(t, "Sunset Fort", decoded.Itinerary[0].Activities[0].Activity)
}

func TestCSVOutputWritePlan(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir, "plans")
	plan := testPlan()

	require.NoError(t, sink.WritePlan(plan))
	require.NoError(t, sink.Close())

	file, err := os.Open(filepath.Join(dir, "plans", "plan_test123.csv"))
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	// Header plus one row per activity slot.
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "test123", records[1][0])
	assert.Equal(t, "Sunset Fort", records[1][4])
	assert.Equal(t, "true", records[2][7])
}

func TestParquetOutputWritePlanLocal(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewParquetOutput(&models.Config{
		OutputFormat:      "parquet",
		OutputDestination: "local",
		OutputPath:        dir,
		OutputFolder:      "plans",
	})
	require.NoError(t, err)

	require.NoError(t, sink.WritePlan(testPlan()))
	require.NoError(t, sink.Close())

	info, err := os.Stat(filepath.Join(dir, "plans", "plan_test123.parquet"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestParquetOutputRejectsUnknownProvider(t *testing.T) {
	_, err := NewParquetOutput(&models.Config{
		OutputFormat:      "parquet",
		OutputDestination: "cloud",
		CloudStorage:      models.CloudStorage{Provider: "gcs"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cloud storage provider")
}
