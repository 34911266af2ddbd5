package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/justsurfingit/jobjournal/internal/metrics"
	"github.com/justsurfingit/jobjournal/internal/services"
)

type AIHandler struct {
	LLMService *services.LLMService
}

func NewAIHandler(llm *services.LLMService) *AIHandler {
	return &AIHandler{LLMService: llm}
}

// Ask is POST /ai/ask (auth). Upstream model failures turn into a friendly
// "try again later" answer instead of a hard error.
func (h *AIHandler) Ask(c *gin.Context) {
	var req dtos.AIAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	response, err := h.LLMService.AnalyzeJob(c.Request.Context(), req.Job)
	if err != nil {
		metrics.AIRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"message": "AI analysis is unavailable right now. Please try again later."})
		return
	}
	metrics.AIRequests.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, gin.H{"message": "AI analysis generated successfully", "response": response})
}
