package service

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"
)

var (
	errEmptyQuiz     = errors.New("model returned no questions")
	errMalformedQuiz = errors.New("model returned a malformed question")
)

// buildQuizPrompt frames the generation instruction with retrieved
// document chunks so questions come from ingested material.
func buildQuizPrompt(chunks []string, instruction string) string {
	if len(chunks) == 0 {
		return instruction
	}

	var sb strings.Builder
	sb.WriteString("Context from uploaded documents:\n")
	for _, chunk := range chunks {
		sb.WriteString("---\n")
		sb.WriteString(strings.TrimSpace(chunk))
		sb.WriteString("\n")
	}
	sb.WriteString("---\n\n")
	sb.WriteString(instruction)
	return sb.String()
}

// parseQuizResponse extracts a question list from raw model output.
// Models routinely wrap JSON in markdown fences despite instructions,
// so fences are stripped before decoding.
func parseQuizResponse(raw string) ([]dto.QuizQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var questions []dto.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errEmptyQuiz
	}
	for _, q := range questions {
		if q.Question == "" || len(q.Options) == 0 || q.Answer == "" {
			return nil, errMalformedQuiz
		}
	}
	return questions, nil
}

// splitQuiz separates the client-visible questions from the
// server-only answer key.
func splitQuiz(questions []dto.QuizQuestion) ([]dto.ClientQuizQuestion, []entity.ExamKeyItem) {
	client := make([]dto.ClientQuizQuestion, 0, len(questions))
	key := make([]entity.ExamKeyItem, 0, len(questions))
	for _, q := range questions {
		client = append(client, dto.ClientQuizQuestion{
			Id:       q.Id,
			Question: q.Question,
			Options:  q.Options,
		})
		key = append(key, entity.ExamKeyItem{
			Id:            q.Id,
			CorrectAnswer: q.Answer,
		})
	}
	return client, key
}

// gradeQuiz scores submitted answers against the stored key. IDs are
// compared as strings so clients may send either numeric or string
// question ids.
func gradeQuiz(key []entity.ExamKeyItem, answers []dto.QuizAnswer) (correct int, total int) {
	total = len(key)
	for _, item := range key {
		keyId := strconv.Itoa(item.Id)
		for _, a := range answers {
			if string(a.Id) == keyId && a.Answer == item.CorrectAnswer {
				correct++
				break
			}
		}
	}
	return correct, total
}

// scoreLabel maps a percentage score to the feedback label.
func scoreLabel(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 70:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

// fallbackQuiz is served whenever quiz generation or parsing fails, so
// the endpoint degrades instead of erroring.
func fallbackQuiz() []dto.QuizQuestion {
	return []dto.QuizQuestion{
		{
			Id:       1,
			Question: "Could not generate quiz from document. Is the document readable? (Select True)",
			Options:  []string{"True", "False"},
			Answer:   "True",
		},
		{
			Id:       2,
			Question: "Which component of a computer performs arithmetic and logic operations?",
			Options:  []string{"ALU", "RAM", "ROM", "Cache"},
			Answer:   "ALU",
		},
		{
			Id:       3,
			Question: "What does CPU stand for?",
			Options:  []string{"Central Processing Unit", "Computer Personal Unit", "Central Program Utility", "Control Processing Unit"},
			Answer:   "Central Processing Unit",
		},
		{
			Id:       4,
			Question: "RAM is a volatile form of memory. (True/False)",
			Options:  []string{"True", "False"},
			Answer:   "True",
		},
		{
			Id:       5,
			Question: "ROM retains its contents when power is removed. (True/False)",
			Options:  []string{"True", "False"},
			Answer:   "True",
		},
	}
}
