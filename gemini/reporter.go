// Package gemini generates natural language change reports using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docwatch"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Reporter implements docwatch.Reporter at compile time.
var _ docwatch.Reporter = (*Reporter)(nil)

// Reporter implements docwatch.Reporter using Google Gemini.
type Reporter struct {
	client *genai.Client
}

// NewReporter creates a new Reporter.
func NewReporter(client *genai.Client) *Reporter {
	return &Reporter{client: client}
}

// Generate produces a markdown digest of the run from the snapshot and
// the detected changes. A run with no changes still yields a short
// status report.
func (r *Reporter) Generate(ctx context.Context, snap *docwatch.Snapshot, changes *docwatch.ChangeSet) (string, error) {
	if snap == nil {
		return "", docwatch.Errorf(docwatch.EINVALID, "snapshot required")
	}

	prompt := BuildUserPrompt(snap, changes)
	config := BuildConfig()

	result, err := r.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docwatch.Errorf(docwatch.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant summarizing changes detected across monitored documentation sources. Write a short markdown digest based only on the data provided. Lead with what changed, then note sources that failed to fetch. If nothing changed, say so in one sentence.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the current source
// state and the detected changes.
func BuildUserPrompt(snap *docwatch.Snapshot, changes *docwatch.ChangeSet) string {
	var sb strings.Builder
	sb.WriteString("<sources>\n")
	sb.WriteString(docwatch.FormatSnapshot(snap))
	sb.WriteString("</sources>\n\n")
	sb.WriteString("<changes>\n")
	sb.WriteString(docwatch.FormatChangeSet(changes))
	sb.WriteString("</changes>\n\n")
	fmt.Fprintf(&sb, "Checked at: %s\n\n", snap.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
	sb.WriteString("Write the digest.")
	return sb.String()
}
