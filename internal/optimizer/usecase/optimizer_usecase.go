package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"coldreach-backend/pkg/ai"
	"coldreach-backend/pkg/analyzer"
	"coldreach-backend/pkg/extract"
)

// AttemptRecorder persists a generated attempt and triggers the best-effort
// dispatch through the stored SMTP settings.
type AttemptRecorder interface {
	RecordAttempt(subject, recipient string, probability float64, preview string) (uint, error)
}

// GenerateRequest is one optimizer run: who we write to, what they need,
// and optionally the sender's resume file and free-text experience.
type GenerateRequest struct {
	Recipient  string
	JobContext string
	Experience string

	ResumeFilename    string
	ResumeContentType string
	ResumeData        []byte
}

// GenerateResult is the produced email plus its recorded attempt.
type GenerateResult struct {
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
	Score   int     `json:"score"`
	ID      uint    `json:"id"`
	Prob    float64 `json:"probability"`
}

// ResumeReport is the standalone analysis surface for an uploaded resume.
type ResumeReport struct {
	Skills         []string `json:"skills"`
	Achievements   []string `json:"achievements"`
	Summary        string   `json:"summary"`
	RelevantPoints string   `json:"relevantPoints"`
}

// OptimizerUsecase runs the resume-to-email pipeline.
type OptimizerUsecase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	AnalyzeResume(filename, contentType string, data []byte, jobContext string) (*ResumeReport, error)
	// SetGenerator injects the AI capability after construction
	SetGenerator(g ai.Generator)
}

type optimizerUsecase struct {
	generator ai.Generator
	attempts  AttemptRecorder
}

// NewOptimizerUsecase creates a new OptimizerUsecase
func NewOptimizerUsecase(attempts AttemptRecorder) OptimizerUsecase {
	return &optimizerUsecase{attempts: attempts}
}

func (u *optimizerUsecase) SetGenerator(g ai.Generator) {
	u.generator = g
}

// Generate runs extraction, analysis, prompt composition and the AI round
// trip, then records the attempt. Extraction and generation failures abort
// the run; only the post-insert dispatch is best-effort.
func (u *optimizerUsecase) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if u.generator == nil {
		return nil, ai.ErrUnavailable
	}

	in := BackgroundInput{
		Experience: req.Experience,
		Recipient:  req.Recipient,
		JobContext: req.JobContext,
	}

	if len(req.ResumeData) > 0 {
		text, err := extract.Extract(req.ResumeFilename, req.ResumeContentType, req.ResumeData)
		if err != nil {
			return nil, err
		}

		analysis := analyzer.Analyze(text)
		in.Skills = analysis.Skills
		in.RelevantPoints = analyzer.ExtractRelevant(text, req.JobContext)
		in.Summary = analyzer.Summarize(text, analyzer.DefaultSummaryChars)
	}

	prompt := ComposePrompt(in)

	body, err := u.generator.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if body == "" || strings.Contains(body, "Error") {
		return nil, fmt.Errorf("%w: generator returned an error marker", ai.ErrGenerationFailed)
	}

	prob := math.Round((0.4+rand.Float64()*0.5)*100) / 100
	score := 85 + rand.Intn(15)

	id, err := u.attempts.RecordAttempt("Cold Email to "+req.Recipient, req.Recipient, prob, body)
	if err != nil {
		return nil, fmt.Errorf("saving attempt: %w", err)
	}

	slog.Info("Email generated", "recipient", req.Recipient, "attempt_id", id)

	return &GenerateResult{
		Subject: "Potential opportunity at " + firstWord(req.Recipient),
		Body:    body,
		Score:   score,
		ID:      id,
		Prob:    prob,
	}, nil
}

// AnalyzeResume extracts the document text and returns the structured
// breakdown without touching the generator or the store.
func (u *optimizerUsecase) AnalyzeResume(filename, contentType string, data []byte, jobContext string) (*ResumeReport, error) {
	text, err := extract.Extract(filename, contentType, data)
	if err != nil {
		return nil, err
	}

	analysis := analyzer.Analyze(text)
	return &ResumeReport{
		Skills:         analysis.Skills,
		Achievements:   analysis.Achievements,
		Summary:        analysis.Summary,
		RelevantPoints: analyzer.ExtractRelevant(text, jobContext),
	}, nil
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}
