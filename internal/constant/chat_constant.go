package constant

const (
	ChatMessageRoleUser = "user"
	ChatMessageRoleBot  = "bot"
)

// HistoryWindow is the number of most recent messages loaded into the
// memory buffer when a chat engine is reconstructed for a session.
const HistoryWindow = 20

const ChatSystemPrompt = `You are Study Buddy, a helpful study assistant. ` +
	`Answer the student's question using the provided document context. ` +
	`If the context does not contain the answer, say so instead of inventing one.`

const QuizGenerationPrompt = `Generate 5 multiple choice questions based on the content of the uploaded document` +
	`%s. Return the response as a STRICT JSON array of objects. ` +
	`Each object must have: 'id' (number), 'question' (string), 'options' (list of 4 strings), ` +
	`and 'answer' (string, must match one of the options exactly). ` +
	"Do not include any markdown formatting like ```json. Just the raw JSON string."
