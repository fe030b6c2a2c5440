package llm

// Message is a single (role, content) entry sent to a completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
