package delivery

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"coldreach-backend/internal/optimizer/usecase"
	"coldreach-backend/pkg/ai"
	"coldreach-backend/pkg/extract"
)

// OptimizerHandler exposes the generation pipeline over HTTP
type OptimizerHandler struct {
	optimizerUsecase usecase.OptimizerUsecase
}

// NewOptimizerHandler creates a new OptimizerHandler
func NewOptimizerHandler(optimizerUsecase usecase.OptimizerUsecase) *OptimizerHandler {
	return &OptimizerHandler{optimizerUsecase: optimizerUsecase}
}

func readUpload(header *multipart.FileHeader) (string, string, []byte, error) {
	file, err := header.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", nil, err
	}
	return header.Filename, header.Header.Get("Content-Type"), data, nil
}

// POST /api/generate (multipart: recipient, jobContext, experience?, resume?)
func (h *OptimizerHandler) Generate(c *gin.Context) {
	recipient := c.PostForm("recipient")
	jobContext := c.PostForm("jobContext")
	if recipient == "" || jobContext == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient and jobContext are required"})
		return
	}

	req := usecase.GenerateRequest{
		Recipient:  recipient,
		JobContext: jobContext,
		Experience: c.PostForm("experience"),
	}

	if header, err := c.FormFile("resume"); err == nil {
		name, contentType, data, err := readUpload(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}
		req.ResumeFilename = name
		req.ResumeContentType = contentType
		req.ResumeData = data
	}

	result, err := h.optimizerUsecase.Generate(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /api/resume/analyze (multipart: resume, jobContext?)
func (h *OptimizerHandler) AnalyzeResume(c *gin.Context) {
	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}

	name, contentType, data, err := readUpload(header)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	report, err := h.optimizerUsecase.AnalyzeResume(name, contentType, data, c.PostForm("jobContext"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// statusFor maps pipeline failures onto HTTP statuses. The typed message
// always travels to the caller.
func statusFor(err error) int {
	switch {
	case errors.Is(err, extract.ErrExtractionFailed),
		errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, extract.ErrUnreadableFile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ai.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ai.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
