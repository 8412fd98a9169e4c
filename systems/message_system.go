package systems

// MessageLog stores game messages. Each game owns its own log and hands
// its Add method to the components that report progress.
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a message log keeping the last maxMessages entries
func NewMessageLog(maxMessages int) *MessageLog {
	if maxMessages <= 0 {
		maxMessages = 100
	}
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: maxMessages,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}
