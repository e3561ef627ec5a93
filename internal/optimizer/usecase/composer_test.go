package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeBackground_DefaultLine(t *testing.T) {
	out := ComposeBackground(BackgroundInput{})
	assert.Equal(t, "SENDER'S KEY EXPERIENCE:\nExperienced professional ready to contribute", out)
}

func TestComposeBackground_SkillsCappedAtTwelve(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n"}
	out := ComposeBackground(BackgroundInput{Skills: skills})
	assert.Contains(t, out, "SENDER'S SKILLS & EXPERTISE:\na, b, c, d, e, f, g, h, i, j, k, l\n")
	assert.NotContains(t, out, "m")
}

func TestComposeBackground_SectionOrder(t *testing.T) {
	out := ComposeBackground(BackgroundInput{
		Skills:         []string{"go", "kafka"},
		RelevantPoints: "Built streaming pipelines",
		Experience:     "10 years in infrastructure",
	})

	skillsIdx := strings.Index(out, "SENDER'S SKILLS & EXPERTISE:")
	pointsIdx := strings.Index(out, "SENDER'S RELEVANT EXPERIENCE & ACHIEVEMENTS:")
	expIdx := strings.Index(out, "SENDER'S KEY EXPERIENCE:")
	require.GreaterOrEqual(t, skillsIdx, 0)
	require.Greater(t, pointsIdx, skillsIdx)
	require.Greater(t, expIdx, pointsIdx)
}

func TestComposeBackground_SummaryFallbackWhenSparse(t *testing.T) {
	out := ComposeBackground(BackgroundInput{
		Skills:  []string{"go"},
		Summary: "Engineer with a decade of backend work",
	})
	assert.Contains(t, out, "SENDER'S BACKGROUND SUMMARY:\nEngineer with a decade of backend work")
}

func TestComposeBackground_NoSummaryWhenRich(t *testing.T) {
	long := strings.Repeat("Led major migrations across several platform teams. ", 4)
	out := ComposeBackground(BackgroundInput{
		RelevantPoints: long,
		Summary:        "should not appear",
	})
	assert.NotContains(t, out, "SENDER'S BACKGROUND SUMMARY:")
}

func TestComposeBackground_ExperienceAlwaysAppended(t *testing.T) {
	long := strings.Repeat("Shipped large systems under load. ", 5)
	out := ComposeBackground(BackgroundInput{
		RelevantPoints: long,
		Experience:     "Founded two startups",
	})
	assert.Contains(t, out, "SENDER'S KEY EXPERIENCE:\nFounded two startups")
}

func TestComposePrompt_FixedSections(t *testing.T) {
	out := ComposePrompt(BackgroundInput{
		Recipient:  "Acme CTO",
		JobContext: "Scaling the ingestion tier",
		Experience: "Kafka at scale",
	})

	assert.Contains(t, out, "You are an expert cold email copywriter.")
	assert.Contains(t, out, "TARGET RECIPIENT: Acme CTO")
	assert.Contains(t, out, "RECIPIENT CONTEXT/PAIN POINTS: Scaling the ingestion tier")
	assert.Contains(t, out, "Keep it 3-4 sentences max")
	assert.Contains(t, out, "Generate ONLY the email body - no subject line or extra text")
	assert.Contains(t, out, "Write the email now:")
}

func TestComposePrompt_NeverRewritesUserText(t *testing.T) {
	experience := "I did <weird> things & never \"tidied\" them"
	out := ComposePrompt(BackgroundInput{Recipient: "X", JobContext: "Y", Experience: experience})
	assert.Contains(t, out, experience)
}
