package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"codesaathi_server/services"
)

// ChatController serves the active chat thread.
type ChatController struct {
	App *services.AppService
}

// NewChatController creates a new instance of ChatController
func NewChatController(app *services.AppService) *ChatController {
	return &ChatController{App: app}
}

// SendMessage appends a message to the open thread. The simulated reply
// arrives later over the socket (and in subsequent GetMessages calls).
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Text == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	msg, err := c.App.SendChatMessage(sessionToken(r), request.Text)
	if err != nil {
		log.Println("Send message failed:", err)
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// GetMessages returns the open thread's messages in order.
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := c.App.ChatMessages(sessionToken(r))
	if err != nil {
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
