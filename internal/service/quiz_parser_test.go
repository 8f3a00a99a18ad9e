package service

import (
	"strconv"
	"testing"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuizResponse(t *testing.T) {
	valid := `[{"id":1,"question":"What is RAM?","options":["Memory","Disk","CPU","GPU"],"answer":"Memory"}]`

	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{
			name:    "plain json",
			raw:     valid,
			wantErr: false,
			wantLen: 1,
		},
		{
			name:    "json fenced with language tag",
			raw:     "```json\n" + valid + "\n```",
			wantErr: false,
			wantLen: 1,
		},
		{
			name:    "json fenced without language tag",
			raw:     "```\n" + valid + "\n```",
			wantErr: false,
			wantLen: 1,
		},
		{
			name:    "not json at all",
			raw:     "Sorry, I cannot generate a quiz right now.",
			wantErr: true,
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantErr: true,
		},
		{
			name:    "question missing answer",
			raw:     `[{"id":1,"question":"q","options":["a","b"],"answer":""}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := parseQuizResponse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, questions, tt.wantLen)
		})
	}
}

func TestSplitQuizHidesAnswers(t *testing.T) {
	questions := []dto.QuizQuestion{
		{Id: 1, Question: "q1", Options: []string{"a", "b"}, Answer: "a"},
		{Id: 2, Question: "q2", Options: []string{"c", "d"}, Answer: "d"},
	}

	client, key := splitQuiz(questions)

	require.Len(t, client, 2)
	require.Len(t, key, 2)

	for i, q := range questions {
		assert.Equal(t, q.Id, client[i].Id)
		assert.Equal(t, q.Question, client[i].Question)
		assert.Equal(t, q.Options, client[i].Options)
		assert.Equal(t, q.Id, key[i].Id)
		assert.Equal(t, q.Answer, key[i].CorrectAnswer)
	}
}

func TestGradeQuizSingleCorrect(t *testing.T) {
	key := []entity.ExamKeyItem{{Id: 1, CorrectAnswer: "True"}}
	answers := []dto.QuizAnswer{{Id: "1", Answer: "True"}}

	correct, total := gradeQuiz(key, answers)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, total)

	score := float64(correct) / float64(total) * 100
	assert.Equal(t, 100.0, score)
	assert.Equal(t, "Excellent", scoreLabel(score))
}

func TestGradeQuizThreeOfFive(t *testing.T) {
	key := []entity.ExamKeyItem{
		{Id: 1, CorrectAnswer: "a"},
		{Id: 2, CorrectAnswer: "b"},
		{Id: 3, CorrectAnswer: "c"},
		{Id: 4, CorrectAnswer: "d"},
		{Id: 5, CorrectAnswer: "e"},
	}
	answers := []dto.QuizAnswer{
		{Id: "1", Answer: "a"},
		{Id: "2", Answer: "b"},
		{Id: "3", Answer: "c"},
		{Id: "4", Answer: "wrong"},
		{Id: "5", Answer: "wrong"},
	}

	correct, total := gradeQuiz(key, answers)
	assert.Equal(t, 3, correct)
	assert.Equal(t, 5, total)

	score := float64(correct) / float64(total) * 100
	assert.Equal(t, 60.0, score)
	assert.Equal(t, "Needs Improvement", scoreLabel(score))
}

func TestGradeQuizIdempotent(t *testing.T) {
	key := []entity.ExamKeyItem{
		{Id: 1, CorrectAnswer: "a"},
		{Id: 2, CorrectAnswer: "b"},
	}
	answers := []dto.QuizAnswer{
		{Id: "1", Answer: "a"},
		{Id: "2", Answer: "x"},
	}

	c1, t1 := gradeQuiz(key, answers)
	c2, t2 := gradeQuiz(key, answers)
	assert.Equal(t, c1, c2)
	assert.Equal(t, t1, t2)
}

func TestGradeQuizIgnoresUnknownIds(t *testing.T) {
	key := []entity.ExamKeyItem{{Id: 1, CorrectAnswer: "a"}}
	answers := []dto.QuizAnswer{
		{Id: "99", Answer: "a"},
		{Id: "1", Answer: "b"},
	}

	correct, total := gradeQuiz(key, answers)
	assert.Equal(t, 0, correct)
	assert.Equal(t, 1, total)
}

func TestScoreLabelBoundaries(t *testing.T) {
	assert.Equal(t, "Excellent", scoreLabel(90))
	assert.Equal(t, "Good", scoreLabel(89.9))
	assert.Equal(t, "Good", scoreLabel(70))
	assert.Equal(t, "Needs Improvement", scoreLabel(69.9))
	assert.Equal(t, "Needs Improvement", scoreLabel(0))
}

func TestFallbackQuizIsConsistent(t *testing.T) {
	questions := fallbackQuiz()
	require.Len(t, questions, 5)

	client, key := splitQuiz(questions)
	require.Len(t, client, 5)
	require.Len(t, key, 5)

	// Every key answer must be one of the question's options.
	for i, q := range questions {
		assert.Contains(t, q.Options, key[i].CorrectAnswer)
	}

	// Answering from the key scores 100.
	answers := make([]dto.QuizAnswer, 0, len(key))
	for _, item := range key {
		answers = append(answers, dto.QuizAnswer{Id: dto.QuestionId(strconv.Itoa(item.Id)), Answer: item.CorrectAnswer})
	}
	correct, total := gradeQuiz(key, answers)
	assert.Equal(t, total, correct)
}
