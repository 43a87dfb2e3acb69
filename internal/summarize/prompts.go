package summarize

import (
	"fmt"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
)

const systemPrompt = "You are an expert educational assistant helping students prepare for exams. " +
	"Provide clear, comprehensive summaries that aid in studying and retention."

const classLecturePrompt = `You are an expert educational assistant helping students prepare for exams.

Analyze this class lecture transcript and provide a comprehensive study guide with:

1. **Main Topics Covered**: List all major topics and concepts discussed
2. **Key Concepts & Definitions**: Define important terms and concepts
3. **Important Points**: Highlight critical information students need to remember
4. **Examples & Explanations**: Summarize any examples or detailed explanations given
5. **Potential Exam Questions**: Suggest 3-5 questions that might appear on an exam based on this content
6. **Study Tips**: Brief recommendations on how to study this material

Transcript:
%s

Provide a clear, well-organized summary that helps with exam preparation.`

const briefSummaryPrompt = `Provide a concise summary of this class lecture, focusing on:
- Main topics covered
- Key takeaways
- Important concepts to remember

Transcript:
%s`

const detailedNotesPrompt = `Create detailed study notes from this lecture including:
- All topics covered with timestamps if available
- Definitions and explanations
- Examples and case studies
- Formulas or important facts
- Connections between concepts

Transcript:
%s`

const keyPointsPrompt = `Extract the %d most important key points from this class lecture transcript.
Format as a numbered list with clear, concise points that students should remember.

Transcript:
%s

Key Points:`

const examQuestionsPrompt = `Based on this class lecture, generate %d potential exam questions that test understanding of the material.
Include a mix of question types (multiple choice, short answer, essay).
Format each question clearly with the question type indicated.

Transcript:
%s

Exam Questions:`

const (
	defaultMaxPoints    = 10
	defaultNumQuestions = 5

	keyPointsMaxTokens = 1500
	examMaxTokens      = 2000

	summaryTemperature   float32 = 0.7
	keyPointsTemperature float32 = 0.5
)

// promptSpec is the fully resolved request for one LLM call.
type promptSpec struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

func buildPromptSpec(req Request, cfg config.LLMConfig) promptSpec {
	switch req.Artifact {
	case ArtifactKeyPoints:
		maxPoints := req.MaxPoints
		if maxPoints <= 0 {
			maxPoints = defaultMaxPoints
		}
		return promptSpec{
			Model:       cfg.KeyPointsModel,
			Prompt:      withInstructions(fmt.Sprintf(keyPointsPrompt, maxPoints, req.Transcript), req),
			Temperature: keyPointsTemperature,
			MaxTokens:   keyPointsMaxTokens,
		}

	case ArtifactExamQuestions:
		numQuestions := req.NumQuestions
		if numQuestions <= 0 {
			numQuestions = defaultNumQuestions
		}
		return promptSpec{
			Model:       cfg.ExamModel,
			Prompt:      withInstructions(fmt.Sprintf(examQuestionsPrompt, numQuestions, req.Transcript), req),
			Temperature: summaryTemperature,
			MaxTokens:   examMaxTokens,
		}

	default:
		template := classLecturePrompt
		switch req.Style {
		case StyleBrief:
			template = briefSummaryPrompt
		case StyleDetailed:
			template = detailedNotesPrompt
		}
		return promptSpec{
			Model:       cfg.SummaryModel,
			System:      systemPrompt,
			Prompt:      withInstructions(fmt.Sprintf(template, req.Transcript), req),
			Temperature: summaryTemperature,
			MaxTokens:   cfg.MaxTokens,
		}
	}
}

func withInstructions(prompt string, req Request) string {
	if req.CustomInstructions == "" {
		return prompt
	}
	return prompt + "\n\nAdditional Instructions: " + req.CustomInstructions
}
