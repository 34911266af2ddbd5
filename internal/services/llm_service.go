package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

type LLMService struct {
	// Client is the llms.Model interface so tests can swap in a fake
	Client llms.Model
}

// NewLLMService initializes the Gemini client. The API key is required;
// without it the AI analysis feature cannot work at all.
func NewLLMService(apiKey string) *LLMService {
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is empty. Did you load the .env file?")
	}

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &LLMService{
		Client: llm,
	}
}

const jobAnalysisPrompt = `Generate a detailed analysis and next steps based on this job application review: "%s" and job description: "%s".
Job details for reference:
- Position: %s
- Company: %s
- Location: %s
- Type: %s
- Salary: %s
- Interview Rounds: %s
Provide actionable advice, next steps, and if applicable, congratulations or motivation. Address the user directly using "you" (e.g., "you have done this," "my advice to you is..."). Do not conclude with open-ended questions inviting further conversation. Format your response in markdown. Lastly consolidate it into a 2 to 3 paragraphs content without any bolds and other syntaxes. Ensure the response is clear, concise, and free of grammatical errors. No need to give any headings and side headings in the response. just start with the content. no need to tell what you are going to do, just do it.`

// AnalyzeJob builds the analysis prompt from the job snapshot and asks the
// model for advice. The returned text is trimmed but otherwise verbatim.
func (s *LLMService) AnalyzeJob(ctx context.Context, job dtos.JobSnapshot) (string, error) {
	prompt := fmt.Sprintf(jobAnalysisPrompt,
		job.Review,
		job.Description,
		job.Jobtitle,
		job.Company,
		job.Location,
		job.Jobtype,
		job.Salary,
		formatRounds(job.RoundStatus),
	)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

// formatRounds renders the roundStatus map as "Name: finished, Name: pending"
// with stable ordering so the same job always produces the same prompt.
func formatRounds(rs map[string]int) string {
	if len(rs) == 0 {
		return "None specified"
	}
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		label := "pending"
		if rs[name] == 1 {
			label = "finished"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, label))
	}
	return strings.Join(parts, ", ")
}
