package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mlevant/wattfrance/internal/temporal"
)

func TestRTEFetchMonthlyAverages(t *testing.T) {
	// Serve two records per month: nuclear 40000/42000 MW, hydro 7000/8000.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "0" {
			json.NewEncoder(w).Encode(rteResponse{TotalCount: 2})
			return
		}
		nuc1, nuc2 := 40000.0, 42000.0
		hyd1, hyd2 := 7000.0, 8000.0
		resp := rteResponse{
			TotalCount: 2,
			Results: []rteRecord{
				{DateHeure: "2023-01-01T08:00:00+01:00", NucleaireMW: &nuc1, HydroMW: &hyd1},
				{DateHeure: "2023-01-01T09:00:00+01:00", NucleaireMW: &nuc2, HydroMW: &hyd2},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	got, err := NewRTEClientWithBaseURL(srv.URL).FetchMonthlyAverages(2023)
	if err != nil {
		t.Fatalf("FetchMonthlyAverages: %v", err)
	}
	for m := 0; m < temporal.MonthCount; m++ {
		if math.Abs(got.NuclearGW[m]-41) > 1e-9 {
			t.Errorf("month %d nuclear = %.3f GW, want 41", m, got.NuclearGW[m])
		}
		if math.Abs(got.HydroGW[m]-7.5) > 1e-9 {
			t.Errorf("month %d hydro = %.3f GW, want 7.5", m, got.HydroGW[m])
		}
	}
}

func TestRTESkipsNullRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nuc := 40000.0
		hyd := 7000.0
		resp := rteResponse{
			TotalCount: 2,
			Results: []rteRecord{
				{DateHeure: "2023-01-01T08:00:00+01:00", NucleaireMW: &nuc, HydroMW: &hyd},
				{DateHeure: "2023-01-01T08:30:00+01:00"}, // nulls
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	got, err := NewRTEClientWithBaseURL(srv.URL).FetchMonthlyAverages(2023)
	if err != nil {
		t.Fatalf("FetchMonthlyAverages: %v", err)
	}
	if math.Abs(got.NuclearGW[0]-40) > 1e-9 {
		t.Errorf("nuclear = %.3f GW, want 40 ignoring null record", got.NuclearGW[0])
	}
}

func TestRTEFailsOnEmptyMonth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rteResponse{TotalCount: 0})
	}))
	defer srv.Close()

	if _, err := NewRTEClientWithBaseURL(srv.URL).FetchMonthlyAverages(2023); err == nil {
		t.Fatal("expected error for a year with no records")
	}
}

func TestPVGISCapacityFactors(t *testing.T) {
	// One year of synthetic hours: 500 W/kWp at 10h, 0 W at 2h.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var resp pvgisResponse
		for month := 1; month <= 12; month++ {
			resp.Outputs.Hourly = append(resp.Outputs.Hourly,
				pvgisHour{Time: fmt.Sprintf("2023%02d15:1010", month), P: 500},
				pvgisHour{Time: fmt.Sprintf("2023%02d15:0210", month), P: 0},
			)
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	locs := []Location{{Name: "A", Weight: 0.5}, {Name: "B", Weight: 0.5}}
	got, err := NewPVGISClientWithBaseURL(srv.URL, locs).FetchCapacityFactors()
	if err != nil {
		t.Fatalf("FetchCapacityFactors: %v", err)
	}

	morning := got[temporal.Period{Month: temporal.Janvier, Slot: temporal.Slot8h13h}.Index()]
	if math.Abs(morning-0.5) > 1e-9 {
		t.Errorf("morning factor = %.3f, want 0.5", morning)
	}
	night := got[temporal.Period{Month: temporal.Janvier, Slot: temporal.Slot23h8h}.Index()]
	if night != 0 {
		t.Errorf("night factor = %.3f, want 0", night)
	}
}

func TestPVGISRejectsMalformedTime(t *testing.T) {
	tests := []string{"", "2023", "2023xx15:1010", "20230115:xx10"}
	for _, s := range tests {
		if _, _, err := parsePVGISTime(s); err == nil {
			t.Errorf("parsePVGISTime(%q) accepted", s)
		}
	}

	month, hour, err := parsePVGISTime("20230615:0810")
	if err != nil {
		t.Fatalf("parsePVGISTime: %v", err)
	}
	if month != 6 || hour != 8 {
		t.Errorf("parsed %d/%d, want 6/8", month, hour)
	}
}

func TestSlotForHour(t *testing.T) {
	tests := []struct {
		hour int
		want temporal.Slot
	}{
		{8, temporal.Slot8h13h},
		{12, temporal.Slot8h13h},
		{13, temporal.Slot13h18h},
		{18, temporal.Slot18h20h},
		{20, temporal.Slot20h23h},
		{22, temporal.Slot20h23h},
		{23, temporal.Slot23h8h},
		{0, temporal.Slot23h8h},
		{7, temporal.Slot23h8h},
	}
	for _, tt := range tests {
		if got := slotForHour(tt.hour); got != tt.want {
			t.Errorf("slotForHour(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestParseNormals(t *testing.T) {
	input := `# monthly normals, metropolitan France
1;5.2
2;6.7
3;9.1
4;11.4
5;15.3
6;19.8
7;22.1
8;21.6
9;17.9
10;13.8
11;8.4
12;5.8
`
	got, err := ParseNormals(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseNormals: %v", err)
	}
	if got[0] != 5.2 || got[11] != 5.8 {
		t.Errorf("january/december = %.1f/%.1f, want 5.2/5.8", got[0], got[11])
	}
}

func TestParseNormalsRejectsIncomplete(t *testing.T) {
	if _, err := ParseNormals(strings.NewReader("1;5.2\n2;6.7\n")); err == nil {
		t.Fatal("expected error for incomplete normals")
	}
}

func TestParseNormalsRejectsMalformed(t *testing.T) {
	tests := []string{"13;5.0", "janvier;5.0", "1;cold", "1,5.0"}
	for _, line := range tests {
		if _, err := ParseNormals(strings.NewReader(line)); err == nil {
			t.Errorf("line %q accepted", line)
		}
	}
}
