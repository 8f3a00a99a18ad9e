package dto

import "encoding/json"

type QuizStartRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Topic     string `json:"topic"`
}

// QuizQuestion is the full question shape as produced by the model,
// answer included. Never returned to clients as-is.
type QuizQuestion struct {
	Id       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ClientQuizQuestion is the client-visible part of a question.
type ClientQuizQuestion struct {
	Id       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizStartResponse struct {
	Mode      string               `json:"mode"`
	Questions []ClientQuizQuestion `json:"questions"`
}

// QuestionId accepts both JSON numbers and strings, since clients send
// either form. It always holds the decimal string representation.
type QuestionId string

func (id *QuestionId) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = QuestionId(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = QuestionId(n.String())
	return nil
}

type QuizAnswer struct {
	Id     QuestionId `json:"id"`
	Answer string     `json:"answer"`
}

type QuizSubmitRequest struct {
	SessionId string       `json:"session_id" validate:"required"`
	Answers   []QuizAnswer `json:"answers" validate:"required"`
}

type QuizSubmitResponse struct {
	Score        float64 `json:"score"`
	Feedback     string  `json:"feedback"`
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total"`
}
