package narrative

import (
	"strings"
	"testing"

	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/synthesis"
)

func TestBuildPromptIncludesKeyFigures(t *testing.T) {
	sb := electrify.SystemBalance{
		CurrentTotalTWh:      1615,
		DirectElectricityTWh: 590,
		H2DemandTWh:          89,
		H2ProductionElecTWh:  137,
		TotalElectricityTWh:  727,
		BioEnrTWh:            233,
		FossilResidualTWh:    107,
	}
	res := synthesis.Result{
		BackupTWh:     12.3,
		FuelTWh:       22.4,
		PeakDeficitGW: 31.5,
	}

	prompt := buildPrompt(sb, res)

	for _, want := range []string{"1615 TWh", "727 TWh", "12.3 TWh", "31.5 GW"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestNewSummarizerRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewSummarizer(); err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
}
