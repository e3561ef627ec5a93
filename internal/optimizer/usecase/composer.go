package usecase

import (
	"fmt"
	"strings"
)

const maxPromptSkills = 12

// defaultBackground is used when nothing at all is known about the sender.
const defaultBackground = "SENDER'S KEY EXPERIENCE:\nExperienced professional ready to contribute"

// BackgroundInput carries everything the composer may weave into the prompt.
type BackgroundInput struct {
	Skills         []string
	RelevantPoints string
	Summary        string
	Experience     string
	Recipient      string
	JobContext     string
}

const promptTemplate = `You are an expert cold email copywriter. Your task is to write a compelling cold email STRICTLY based on the information provided below. Use specific details from the sender's actual experience.

%s

TARGET RECIPIENT: %s

RECIPIENT CONTEXT/PAIN POINTS: %s

INSTRUCTIONS (MANDATORY):
1. Reference SPECIFIC achievements and skills from the sender's information above - make it personal and credible
2. Connect sender's actual experience to recipient's stated needs directly
3. Mention concrete metrics, technologies, or accomplishments where relevant
4. Focus on how sender can solve the recipient's specific problem
5. Keep it 3-4 sentences max, natural and conversational
6. Include a clear, low-friction call-to-action (e.g., "Let's chat briefly", "Quick call to discuss")
7. Generate ONLY the email body - no subject line or extra text

Write the email now:`

// ComposeBackground assembles the sender-background block. Sections appear
// only when their source data is non-empty; user-supplied text is never
// rewritten or truncated, only concatenated under fixed headers.
func ComposeBackground(in BackgroundInput) string {
	var bg strings.Builder

	if len(in.Skills) > 0 {
		top := in.Skills
		if len(top) > maxPromptSkills {
			top = top[:maxPromptSkills]
		}
		bg.WriteString("SENDER'S SKILLS & EXPERTISE:\n" + strings.Join(top, ", ") + "\n\n")
	}

	if strings.TrimSpace(in.RelevantPoints) != "" {
		bg.WriteString("SENDER'S RELEVANT EXPERIENCE & ACHIEVEMENTS:\n" + in.RelevantPoints + "\n\n")
	}

	// If the extracted info is too sparse, the local summary fills in
	if bg.Len() < 100 && in.Summary != "" {
		bg.WriteString("SENDER'S BACKGROUND SUMMARY:\n" + in.Summary + "\n\n")
	}

	if strings.TrimSpace(in.Experience) != "" {
		bg.WriteString("SENDER'S KEY EXPERIENCE:\n" + in.Experience)
	}

	background := bg.String()
	if strings.TrimSpace(background) == "" {
		background = defaultBackground
	}
	return background
}

// ComposePrompt builds the full instruction string sent to the generator.
func ComposePrompt(in BackgroundInput) string {
	return fmt.Sprintf(promptTemplate, ComposeBackground(in), in.Recipient, in.JobContext)
}
