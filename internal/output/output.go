package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/eyesofbug/VoyageIQ/internal/models"
)

// OutputDestination receives finished trip plans. Sinks are request-scoped
// consumers; the planner itself performs no I/O.
type OutputDestination interface {
	WritePlan(plan *models.TripPlan) error
	Close() error
}

// ForConfig selects the sink the configuration asks for. Kafka takes
// precedence over the file formats when enabled.
func ForConfig(cfg *models.Config) (OutputDestination, error) {
	if cfg.KafkaEnabled {
		return NewKafkaOutput(cfg)
	}
	switch cfg.OutputFormat {
	case "", "console":
		return &ConsoleOutput{}, nil
	case "json":
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "csv":
		return NewCSVOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "parquet":
		return NewParquetOutput(cfg)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WritePlan(plan *models.TripPlan) error {
	fmt.Printf("Plan %s | %v | %d days | overall score %d%%\n",
		plan.ID, plan.Request.Destinations, plan.Request.Days, plan.Scores.Overall)
	fmt.Printf("  Budget: ₹%d estimated (%s, score %d%%)\n",
		plan.Budget.TotalEstimated, plan.Budget.Status, plan.Budget.Score)
	for _, ind := range plan.Scores.Indicators {
		fmt.Printf("  %s %s: %s\n", ind.Icon, ind.Title, ind.Desc)
	}
	for _, day := range plan.Itinerary {
		fmt.Printf("  Day %d: %s\n", day.Day, day.Area)
		if day.TransitInfo != "" {
			fmt.Printf("    %s\n", day.TransitInfo)
		}
		for _, slot := range day.Activities {
			marker := "📍"
			if slot.IsMeal {
				marker = "🍱"
			}
			badge := ""
			if slot.Optimized {
				badge = " (Budget Optimized)"
			}
			fmt.Printf("    %s | %s %s%s\n", slot.Time, marker, slot.Activity, badge)
		}
	}
	for _, swap := range plan.Swaps {
		fmt.Printf("  💡 %s\n", swap)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return os.Stdout.Sync()
}

type JSONOutput struct {
	basePath string
	folder   string
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{basePath: basePath, folder: folder}
}

func (j *JSONOutput) WritePlan(plan *models.TripPlan) error {
	dir := filepath.Join(j.basePath, j.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, fmt.Sprintf("plan_%s.json", plan.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan %s: %w", plan.ID, err)
	}
	return nil
}

func (j *JSONOutput) Close() error {
	return nil
}

type CSVOutput struct {
	basePath string
	folder   string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{basePath: basePath, folder: folder}
}

var csvHeader = []string{
	"plan_id", "day", "area", "time", "activity", "cost", "duration", "is_meal", "optimized",
}

// WritePlan flattens the itinerary into one CSV row per activity slot.
func (c *CSVOutput) WritePlan(plan *models.TripPlan) error {
	dir := filepath.Join(c.basePath, c.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(dir, fmt.Sprintf("plan_%s.csv", plan.ID)))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, day := range plan.Itinerary {
		for _, slot := range day.Activities {
			record := []string{
				plan.ID,
				strconv.Itoa(day.Day),
				day.Area,
				slot.Time,
				slot.Activity,
				strconv.FormatFloat(slot.Cost, 'f', 2, 64),
				strconv.FormatFloat(slot.Duration, 'f', 2, 64),
				strconv.FormatBool(slot.IsMeal),
				strconv.FormatBool(slot.Optimized),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func (c *CSVOutput) Close() error {
	return nil
}
