package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSubmitRequestAcceptsNumericAndStringIds(t *testing.T) {
	// Clients send question ids as JSON numbers; both forms must decode.
	raw := `{"session_id":"sess-1","answers":[{"id":1,"answer":"True"},{"id":"2","answer":"False"}]}`

	var req QuizSubmitRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	require.Len(t, req.Answers, 2)
	assert.Equal(t, QuestionId("1"), req.Answers[0].Id)
	assert.Equal(t, QuestionId("2"), req.Answers[1].Id)
}

func TestQuestionIdRejectsNonScalar(t *testing.T) {
	var id QuestionId
	err := json.Unmarshal([]byte(`{"nested":true}`), &id)
	assert.Error(t, err)
}
