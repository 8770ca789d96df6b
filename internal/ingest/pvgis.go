package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mlevant/wattfrance/internal/httputil"
	"github.com/mlevant/wattfrance/internal/metrics"
	"github.com/mlevant/wattfrance/internal/temporal"
)

const defaultPVGISBaseURL = "https://re.jrc.ec.europa.eu/api/v5_2/seriescalc"

// Location is a PVGIS sampling point with a population weight.
type Location struct {
	Name   string
	Lat    float64
	Lon    float64
	Weight float64
}

// FranceLocations samples seven metropolitan areas, weighted by the
// population they stand in for.
func FranceLocations() []Location {
	return []Location{
		{"Paris_IdF", 48.86, 2.35, 0.20},
		{"Lyon", 45.76, 4.83, 0.15},
		{"Marseille", 43.30, 5.37, 0.15},
		{"Toulouse", 43.60, 1.44, 0.12},
		{"Nantes", 47.22, -1.55, 0.13},
		{"Strasbourg", 48.57, 7.75, 0.10},
		{"Lille", 50.63, 3.06, 0.15},
	}
}

// PVGISClient fetches hourly PV output for 1 kWp installations from the
// EU JRC PVGIS API and reduces them to per-period capacity factors.
type PVGISClient struct {
	baseURL   string
	client    *http.Client
	locations []Location
}

func NewPVGISClient() *PVGISClient {
	return &PVGISClient{
		baseURL:   defaultPVGISBaseURL,
		client:    httputil.NewClientWithTimeout(60 * time.Second),
		locations: FranceLocations(),
	}
}

// NewPVGISClientWithBaseURL is used by tests to point at a local server.
func NewPVGISClientWithBaseURL(baseURL string, locations []Location) *PVGISClient {
	c := NewPVGISClient()
	c.baseURL = baseURL
	if locations != nil {
		c.locations = locations
	}
	return c
}

type pvgisResponse struct {
	Outputs struct {
		Hourly []pvgisHour `json:"hourly"`
	} `json:"outputs"`
}

type pvgisHour struct {
	// Time is formatted "20230115:0810".
	Time string `json:"time"`
	// P is the output in W for a 1 kWp installation.
	P float64 `json:"P"`
}

// FetchCapacityFactors downloads hourly output for every location and
// averages it into population-weighted capacity factors per
// (month, slot). A 1 kWp installation producing its full rating has
// capacity factor 1.
func (c *PVGISClient) FetchCapacityFactors() ([temporal.PeriodCount]float64, error) {
	var factors [temporal.PeriodCount]float64
	started := time.Now()

	var totalWeight float64
	for _, loc := range c.locations {
		hours, err := c.fetchHourly(loc)
		if err != nil {
			metrics.DownloadCallsTotal.WithLabelValues("pvgis", "error").Inc()
			return factors, fmt.Errorf("pvgis %s: %w", loc.Name, err)
		}

		locFactors, err := reduceHourly(hours)
		if err != nil {
			return factors, fmt.Errorf("pvgis %s: %w", loc.Name, err)
		}
		for i := range factors {
			factors[i] += loc.Weight * locFactors[i]
		}
		totalWeight += loc.Weight
	}

	if totalWeight == 0 {
		return factors, fmt.Errorf("pvgis: no locations configured")
	}
	for i := range factors {
		factors[i] /= totalWeight
	}

	metrics.DownloadCallsTotal.WithLabelValues("pvgis", "ok").Inc()
	metrics.DownloadLatency.WithLabelValues("pvgis").Observe(time.Since(started).Seconds())
	return factors, nil
}

func (c *PVGISClient) fetchHourly(loc Location) ([]pvgisHour, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.2f", loc.Lat))
	q.Set("lon", fmt.Sprintf("%.2f", loc.Lon))
	q.Set("peakpower", "1")
	q.Set("loss", "14")
	q.Set("pvcalculation", "1")
	q.Set("outputformat", "json")
	reqURL := c.baseURL + "?" + q.Encode()

	var body []byte
	operation := func() error {
		resp, err := c.client.Get(reqURL)
		if err != nil {
			return fmt.Errorf("fetch pvgis: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable {
			return fmt.Errorf("rate limited: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("fetch pvgis: status %d: %s", resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}

	var data pvgisResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return data.Outputs.Hourly, nil
}

// reduceHourly averages hourly 1 kWp output (W) into capacity factors
// per (month, slot).
func reduceHourly(hours []pvgisHour) ([temporal.PeriodCount]float64, error) {
	var sum [temporal.PeriodCount]float64
	var count [temporal.PeriodCount]int

	for _, h := range hours {
		month, hour, err := parsePVGISTime(h.Time)
		if err != nil {
			return sum, err
		}
		idx := temporal.Period{Month: temporal.Month(month - 1), Slot: slotForHour(hour)}.Index()
		sum[idx] += h.P
		count[idx]++
	}

	var factors [temporal.PeriodCount]float64
	for i := range sum {
		if count[i] > 0 {
			// W per kWp to a 0-1 factor.
			factors[i] = sum[i] / float64(count[i]) / 1000
		}
	}
	return factors, nil
}

// parsePVGISTime splits the "20230115:0810" stamp into month and hour.
func parsePVGISTime(s string) (month, hour int, err error) {
	if len(s) < 13 {
		return 0, 0, fmt.Errorf("malformed pvgis time %q", s)
	}
	month, err = strconv.Atoi(s[4:6])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("malformed pvgis time %q", s)
	}
	hour, err = strconv.Atoi(s[9:11])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("malformed pvgis time %q", s)
	}
	return month, hour, nil
}

// slotForHour maps an hour of day to the model slot. The night slot
// wraps midnight.
func slotForHour(hour int) temporal.Slot {
	switch {
	case hour >= 8 && hour < 13:
		return temporal.Slot8h13h
	case hour >= 13 && hour < 18:
		return temporal.Slot13h18h
	case hour >= 18 && hour < 20:
		return temporal.Slot18h20h
	case hour >= 20 && hour < 23:
		return temporal.Slot20h23h
	default:
		return temporal.Slot23h8h
	}
}
