package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobjournal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

type stubModel struct {
	response string
	err      error
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: s.response}}}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return s.response, s.err
}

func aiTestRouter(model llms.Model) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAIHandler(&services.LLMService{Client: model})
	r := gin.New()
	r.Use(identity(1, "a@x.com"))
	r.POST("/ai/ask", h.Ask)
	return r
}

func TestAIHandler_Ask(t *testing.T) {
	r := aiTestRouter(&stubModel{response: "Keep going, you are close."})

	w := performJSON(t, r, http.MethodPost, "/ai/ask", gin.H{
		"job": gin.H{
			"jobtitle":    "Backend Engineer",
			"company":     "Acme",
			"roundStatus": gin.H{"HR": 1},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Keep going, you are close.")
}

func TestAIHandler_Ask_UpstreamFailureIsFriendly(t *testing.T) {
	r := aiTestRouter(&stubModel{err: errors.New("model overloaded")})

	w := performJSON(t, r, http.MethodPost, "/ai/ask", gin.H{
		"job": gin.H{"jobtitle": "A"},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "try again later")
	assert.NotContains(t, w.Body.String(), "model overloaded")
}
