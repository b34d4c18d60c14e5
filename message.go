package contentchat

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. The ordered sequence of messages
// is the literal transcript resent to the backend on every call - backends
// are stateless and keep no memory of prior turns.
type Message struct {
	Role    Role
	Content string
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// History holds an ordered collection of Message to preserve the transcript.
type History struct {
	Messages []Message
}

func NewHistory() *History {
	return &History{
		Messages: []Message{},
	}
}

func (h *History) Len() int {
	return len(h.Messages)
}

// Add appends one or more new messages to the History in a FIFO order.
func (h *History) Add(msgs ...Message) {
	h.Messages = append(h.Messages, msgs...)
}

// DropLast removes the most recent n messages. Used to undo an appended
// turn when the backend call that followed it failed.
func (h *History) DropLast(n int) {
	if n > len(h.Messages) {
		n = len(h.Messages)
	}
	h.Messages = h.Messages[:len(h.Messages)-n]
}

func (h *History) All() []Message {
	return h.Messages
}

func (h *History) Clone() *History {
	return &History{
		Messages: append([]Message{}, h.Messages...),
	}
}

func (h *History) Clear() {
	h.Messages = []Message{}
}
