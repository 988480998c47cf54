package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/eyesofbug/VoyageIQ/internal/models"
	"github.com/patrickmn/go-cache"
)

const (
	attractionsFile = "attractions_india.json"
	hotelsFile      = "hotel_prices_by_city.json"
	vehiclesFile    = "transport_vehicles.json"
	seasonalityFile = "tourism_seasonality.csv"
)

// Catalog holds the four reference tables. It is populated once at startup
// and is safe for concurrent readers afterwards.
type Catalog struct {
	Attractions []models.Attraction
	Hotels      []models.HotelPriceRow
	Vehicles    []models.VehicleSpec
	Seasonality []models.SeasonalityRow

	byName  map[string]models.Attraction
	lookups *cache.Cache
}

// New builds a catalog from in-memory tables. Used by tests with synthetic data.
func New(attractions []models.Attraction, hotels []models.HotelPriceRow, vehicles []models.VehicleSpec, seasonality []models.SeasonalityRow) *Catalog {
	c := &Catalog{
		Attractions: attractions,
		Hotels:      hotels,
		Vehicles:    vehicles,
		Seasonality: seasonality,
		byName:      make(map[string]models.Attraction, len(attractions)),
		lookups:     cache.New(cache.NoExpiration, 0),
	}
	for _, a := range attractions {
		if _, ok := c.byName[a.Name]; !ok {
			c.byName[a.Name] = a
		}
	}
	return c
}

// Load reads the four reference tables from dataDir. Any missing or
// malformed file is an error; callers treat that as fatal at startup.
func Load(dataDir string) (*Catalog, error) {
	var attractions []models.Attraction
	if err := readJSONTable(filepath.Join(dataDir, attractionsFile), &attractions); err != nil {
		return nil, fmt.Errorf("loading attractions: %w", err)
	}

	var hotels []models.HotelPriceRow
	if err := readJSONTable(filepath.Join(dataDir, hotelsFile), &hotels); err != nil {
		return nil, fmt.Errorf("loading hotel prices: %w", err)
	}

	var vehicles []models.VehicleSpec
	if err := readJSONTable(filepath.Join(dataDir, vehiclesFile), &vehicles); err != nil {
		return nil, fmt.Errorf("loading vehicle specs: %w", err)
	}

	seasonality, err := readSeasonality(filepath.Join(dataDir, seasonalityFile))
	if err != nil {
		return nil, fmt.Errorf("loading seasonality: %w", err)
	}

	return New(attractions, hotels, vehicles, seasonality), nil
}

func readJSONTable(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readSeasonality(path string) ([]models.SeasonalityRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}

	var rows []models.SeasonalityRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 5 {
			return nil, fmt.Errorf("seasonality row has %d fields, want 5", len(fields))
		}
		peakMult, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad peak multiplier for %s: %w", fields[0], err)
		}
		offMult, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad off multiplier for %s: %w", fields[0], err)
		}
		rows = append(rows, models.SeasonalityRow{
			State:          strings.TrimSpace(fields[0]),
			PeakMonths:     splitMonths(fields[1]),
			OffMonths:      splitMonths(fields[2]),
			PeakMultiplier: peakMult,
			OffMultiplier:  offMult,
		})
	}
	return rows, nil
}

func splitMonths(raw string) []string {
	parts := strings.Split(raw, ",")
	months := make([]string, 0, len(parts))
	for _, p := range parts {
		if m := strings.TrimSpace(p); m != "" {
			months = append(months, m)
		}
	}
	return months
}

// AttractionPool resolves a destination to its candidate attractions: exact
// city match first, then state match, else an empty pool. Never an error.
// The returned slice is shared; callers must copy before reordering.
func (c *Catalog) AttractionPool(destination string) []models.Attraction {
	key := "pool:" + destination
	if v, ok := c.lookups.Get(key); ok {
		return v.([]models.Attraction)
	}

	var pool []models.Attraction
	for _, a := range c.Attractions {
		if a.City == destination {
			pool = append(pool, a)
		}
	}
	if len(pool) == 0 {
		for _, a := range c.Attractions {
			if a.State == destination {
				pool = append(pool, a)
			}
		}
	}
	c.lookups.Set(key, pool, cache.NoExpiration)
	return pool
}

// StateOf resolves a destination string to its state, trying city match then
// state match. Returns "" when the destination is unknown.
func (c *Catalog) StateOf(destination string) string {
	key := "state:" + destination
	if v, ok := c.lookups.Get(key); ok {
		return v.(string)
	}

	state := ""
	for _, a := range c.Attractions {
		if a.City == destination {
			state = a.State
			break
		}
	}
	if state == "" {
		for _, a := range c.Attractions {
			if a.State == destination {
				state = a.State
				break
			}
		}
	}
	c.lookups.Set(key, state, cache.NoExpiration)
	return state
}

func (c *Catalog) AttractionByName(name string) (models.Attraction, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// HotelRow returns the price row whose city column matches exactly.
func (c *Catalog) HotelRow(city string) (models.HotelPriceRow, bool) {
	for _, h := range c.Hotels {
		if h.City == city {
			return h, true
		}
	}
	return models.HotelPriceRow{}, false
}

// HotelRowForDestination matches the destination against the hotel city
// column, falling back to the destination's state name.
func (c *Catalog) HotelRowForDestination(destination string) (models.HotelPriceRow, bool) {
	if row, ok := c.HotelRow(destination); ok {
		return row, true
	}
	if state := c.StateOf(destination); state != "" {
		return c.HotelRow(state)
	}
	return models.HotelPriceRow{}, false
}

func (c *Catalog) VehicleByType(vehicle string) (models.VehicleSpec, bool) {
	for _, v := range c.Vehicles {
		if v.Vehicle == vehicle {
			return v, true
		}
	}
	return models.VehicleSpec{}, false
}

func (c *Catalog) SeasonalityFor(state string) (models.SeasonalityRow, bool) {
	for _, s := range c.Seasonality {
		if s.State == state {
			return s, true
		}
	}
	return models.SeasonalityRow{}, false
}

// AverageActivityCost is the mean per-person cost across a city's
// attractions, falling back to the documented default for unknown cities.
func (c *Catalog) AverageActivityCost(city string) float64 {
	total, count := 0.0, 0
	for _, a := range c.Attractions {
		if a.City == city {
			total += a.AvgCostPerPerson
			count++
		}
	}
	if count == 0 {
		return models.DefaultActivityCost
	}
	return total / float64(count)
}

// Cities returns the sorted distinct city labels in the attractions table.
func (c *Catalog) Cities() []string {
	seen := make(map[string]bool)
	var cities []string
	for _, a := range c.Attractions {
		if !seen[a.City] {
			seen[a.City] = true
			cities = append(cities, a.City)
		}
	}
	sort.Strings(cities)
	return cities
}
