// Package ingest downloads the reference data series feeding the model:
// RTE eco2mix production averages, PVGIS solar capacity factors, and
// Météo-France temperature normals.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mlevant/wattfrance/internal/httputil"
	"github.com/mlevant/wattfrance/internal/metrics"
	"github.com/mlevant/wattfrance/internal/temporal"
)

const defaultRTEBaseURL = "https://odre.opendatasoft.com/api/explore/v2.1/catalog/datasets/eco2mix-national-cons-def/records"

// RTEClient fetches half-hourly nuclear and hydro production from the
// eco2mix open-data API and aggregates it to monthly averages.
type RTEClient struct {
	baseURL string
	client  *http.Client
}

func NewRTEClient() *RTEClient {
	return &RTEClient{
		baseURL: defaultRTEBaseURL,
		client:  httputil.NewClient(),
	}
}

// NewRTEClientWithBaseURL is used by tests to point at a local server.
func NewRTEClientWithBaseURL(baseURL string) *RTEClient {
	c := NewRTEClient()
	c.baseURL = baseURL
	return c
}

type rteResponse struct {
	TotalCount int         `json:"total_count"`
	Results    []rteRecord `json:"results"`
}

type rteRecord struct {
	DateHeure   string   `json:"date_heure"`
	NucleaireMW *float64 `json:"nucleaire"`
	HydroMW     *float64 `json:"hydraulique"`
}

// MonthlyAverages holds the aggregated eco2mix output in GW.
type MonthlyAverages struct {
	NuclearGW [temporal.MonthCount]float64
	HydroGW   [temporal.MonthCount]float64
}

// FetchMonthlyAverages paginates through a year of half-hourly records
// and averages nuclear and hydro production per calendar month.
func (c *RTEClient) FetchMonthlyAverages(year int) (MonthlyAverages, error) {
	var out MonthlyAverages
	var nucSum, hydSum [temporal.MonthCount]float64
	var count [temporal.MonthCount]int

	started := time.Now()
	const pageSize = 100

	// Paginate per month to stay under the API's offset limit.
	for month := 1; month <= 12; month++ {
		nextMonth, nextYear := month+1, year
		if month == 12 {
			nextMonth, nextYear = 1, year+1
		}
		where := fmt.Sprintf("date_heure >= '%d-%02d-01' AND date_heure < '%d-%02d-01'",
			year, month, nextYear, nextMonth)

		for offset := 0; ; offset += pageSize {
			page, err := c.fetchPage(where, pageSize, offset)
			if err != nil {
				metrics.DownloadCallsTotal.WithLabelValues("rte", "error").Inc()
				return out, fmt.Errorf("eco2mix %d-%02d offset %d: %w", year, month, offset, err)
			}
			for _, r := range page.Results {
				if r.NucleaireMW == nil || r.HydroMW == nil {
					continue
				}
				m := month - 1
				nucSum[m] += *r.NucleaireMW
				hydSum[m] += *r.HydroMW
				count[m]++
			}
			if len(page.Results) == 0 || offset+pageSize >= page.TotalCount {
				break
			}
		}
	}

	for m := 0; m < temporal.MonthCount; m++ {
		if count[m] == 0 {
			return out, fmt.Errorf("eco2mix: no records for month %d", m+1)
		}
		// MW to GW.
		out.NuclearGW[m] = nucSum[m] / float64(count[m]) / 1000
		out.HydroGW[m] = hydSum[m] / float64(count[m]) / 1000
	}

	metrics.DownloadCallsTotal.WithLabelValues("rte", "ok").Inc()
	metrics.DownloadLatency.WithLabelValues("rte").Observe(time.Since(started).Seconds())
	return out, nil
}

func (c *RTEClient) fetchPage(where string, limit, offset int) (*rteResponse, error) {
	q := url.Values{}
	q.Set("select", "date_heure,nucleaire,hydraulique")
	q.Set("where", where)
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))
	q.Set("order_by", "date_heure")
	reqURL := c.baseURL + "?" + q.Encode()

	var body []byte
	operation := func() error {
		resp, err := c.client.Get(reqURL)
		if err != nil {
			return fmt.Errorf("fetch eco2mix: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable {
			return fmt.Errorf("rate limited: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("fetch eco2mix: status %d: %s", resp.StatusCode, string(b)))
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

	var data rteResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &data, nil
}
