package request

// AssistantMessageRequest is the payload for one chat message to the
// scripted trading assistant.
type AssistantMessageRequest struct {
	Message string `json:"message"`
}
