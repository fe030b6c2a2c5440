package llm

// StudyAssistantPrompt is the fixed system instruction sent ahead of every conversation.
const StudyAssistantPrompt = "You are a helpful academic study assistant. " +
	"Use prior conversation context when relevant. " +
	"Answer study-related questions clearly and concisely. " +
	"If unsure, say you don't know."
