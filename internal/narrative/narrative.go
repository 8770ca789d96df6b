// Package narrative produces a short written summary of a scenario run
// using OpenAI's API. It is optional: callers skip it when no API key
// is configured.
package narrative

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/synthesis"
)

// Summarizer turns scenario results into a few paragraphs of prose.
type Summarizer struct {
	client openai.Client
	model  string
}

// NewSummarizer creates a summarizer.
// It reads the OPENAI_API_KEY environment variable for authentication.
func NewSummarizer() (*Summarizer, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Summarizer{
		client: client,
		model:  openai.ChatModelGPT4oMini,
	}, nil
}

// Summarize asks the model for a short commentary on the scenario.
func (s *Summarizer) Summarize(ctx context.Context, sb electrify.SystemBalance, res synthesis.Result) (string, error) {
	prompt := buildPrompt(sb, res)

	log.Printf("narrative: requesting summary (%d prompt bytes)", len(prompt))

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("Tu es un analyste du système électrique français. Réponds en français, en trois paragraphes au plus, sans listes à puces."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty completion returned")
	}
	return text, nil
}

func buildPrompt(sb electrify.SystemBalance, res synthesis.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scénario d'électrification de la France, bilan annuel :\n")
	fmt.Fprintf(&b, "- consommation finale actuelle : %.0f TWh\n", sb.CurrentTotalTWh)
	fmt.Fprintf(&b, "- électricité directe après transition : %.0f TWh\n", sb.DirectElectricityTWh)
	fmt.Fprintf(&b, "- hydrogène demandé : %.0f TWh (soit %.0f TWh d'électricité pour l'électrolyse)\n",
		sb.H2DemandTWh, sb.H2ProductionElecTWh)
	fmt.Fprintf(&b, "- électricité totale à produire : %.0f TWh\n", sb.TotalElectricityTWh)
	fmt.Fprintf(&b, "- biomasse et EnR thermiques : %.0f TWh, fossile résiduel : %.0f TWh\n",
		sb.BioEnrTWh, sb.FossilResidualTWh)
	fmt.Fprintf(&b, "\nÉquilibre temporel sur l'année type :\n")
	fmt.Fprintf(&b, "- énergie de backup thermique : %.1f TWh d'électricité\n", res.BackupTWh)
	fmt.Fprintf(&b, "- combustible consommé par les centrales de pointe : %.1f TWh\n", res.FuelTWh)
	fmt.Fprintf(&b, "- pointe de déficit : %.1f GW\n", res.PeakDeficitGW)
	fmt.Fprintf(&b, "\nCommente la faisabilité de ce scénario et les points de vigilance.\n")

	return b.String()
}
