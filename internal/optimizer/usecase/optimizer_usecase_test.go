package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldreach-backend/pkg/ai"
	"coldreach-backend/pkg/extract"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeRecorder struct {
	subject     string
	recipient   string
	probability float64
	preview     string
	calls       int
	err         error
}

func (f *fakeRecorder) RecordAttempt(subject, recipient string, probability float64, preview string) (uint, error) {
	f.calls++
	f.subject = subject
	f.recipient = recipient
	f.probability = probability
	f.preview = preview
	if f.err != nil {
		return 0, f.err
	}
	return 42, nil
}

func TestGenerate_HappyPath(t *testing.T) {
	gen := &fakeGenerator{reply: "Hi there, quick note about your ingestion tier."}
	rec := &fakeRecorder{}
	uc := NewOptimizerUsecase(rec)
	uc.SetGenerator(gen)

	resume := "Reduced latency by 40% using Kafka and React, 2021\nLed the data platform team"
	res, err := uc.Generate(context.Background(), GenerateRequest{
		Recipient:         "Acme Robotics",
		JobContext:        "Hiring a backend engineer with Kafka experience",
		ResumeFilename:    "resume.txt",
		ResumeContentType: "text/plain",
		ResumeData:        []byte(resume),
	})
	require.NoError(t, err)

	assert.Equal(t, gen.reply, res.Body)
	assert.Equal(t, "Potential opportunity at Acme", res.Subject)
	assert.Equal(t, uint(42), res.ID)
	assert.GreaterOrEqual(t, res.Score, 85)
	assert.Less(t, res.Score, 100)

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "Cold Email to Acme Robotics", rec.subject)
	assert.Equal(t, gen.reply, rec.preview)
	assert.GreaterOrEqual(t, rec.probability, 0.4)
	assert.LessOrEqual(t, rec.probability, 0.9)

	// The composed prompt carried the resume-derived sections
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "SENDER'S SKILLS & EXPERTISE:")
	assert.Contains(t, gen.prompts[0], "kafka")
	assert.Contains(t, gen.prompts[0], "TARGET RECIPIENT: Acme Robotics")
}

func TestGenerate_NoGenerator(t *testing.T) {
	uc := NewOptimizerUsecase(&fakeRecorder{})
	_, err := uc.Generate(context.Background(), GenerateRequest{Recipient: "X", JobContext: "Y"})
	assert.ErrorIs(t, err, ai.ErrUnavailable)
}

func TestGenerate_ErrorMarkerInReply(t *testing.T) {
	gen := &fakeGenerator{reply: "Error generating email. Please try again."}
	rec := &fakeRecorder{}
	uc := NewOptimizerUsecase(rec)
	uc.SetGenerator(gen)

	_, err := uc.Generate(context.Background(), GenerateRequest{Recipient: "X", JobContext: "Y"})
	assert.ErrorIs(t, err, ai.ErrGenerationFailed)
	assert.Equal(t, 0, rec.calls)
}

func TestGenerate_EmptyReply(t *testing.T) {
	gen := &fakeGenerator{reply: ""}
	uc := NewOptimizerUsecase(&fakeRecorder{})
	uc.SetGenerator(gen)

	_, err := uc.Generate(context.Background(), GenerateRequest{Recipient: "X", JobContext: "Y"})
	assert.ErrorIs(t, err, ai.ErrGenerationFailed)
}

func TestGenerate_ExtractionFailureAborts(t *testing.T) {
	gen := &fakeGenerator{reply: "should never be used"}
	rec := &fakeRecorder{}
	uc := NewOptimizerUsecase(rec)
	uc.SetGenerator(gen)

	_, err := uc.Generate(context.Background(), GenerateRequest{
		Recipient:         "X",
		JobContext:        "Y",
		ResumeFilename:    "resume.docx",
		ResumeContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		ResumeData:        []byte("binary"),
	})
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)
	assert.Empty(t, gen.prompts)
	assert.Equal(t, 0, rec.calls)
}

func TestGenerate_PersistenceFailureSurfaces(t *testing.T) {
	gen := &fakeGenerator{reply: "A fine email body."}
	rec := &fakeRecorder{err: errors.New("disk full")}
	uc := NewOptimizerUsecase(rec)
	uc.SetGenerator(gen)

	_, err := uc.Generate(context.Background(), GenerateRequest{Recipient: "X", JobContext: "Y"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
}

func TestAnalyzeResume(t *testing.T) {
	uc := NewOptimizerUsecase(&fakeRecorder{})

	report, err := uc.AnalyzeResume("resume.txt", "text/plain",
		[]byte("Built Kafka consumers processing 2M events daily\nLed the platform team of 5 engineers"),
		"Hiring a backend engineer")
	require.NoError(t, err)

	assert.Contains(t, report.Skills, "kafka")
	assert.NotEmpty(t, report.Achievements)
	assert.Contains(t, report.RelevantPoints, "Built Kafka consumers")
}
