package utils

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// FlashMessage is a one-shot notice carried across a redirect. Category maps
// onto the alert style rendered in the layout (success, danger, info).
type FlashMessage struct {
	Category string
	Message  string
}

func init() {
	gob.Register(FlashMessage{})
}

func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(FlashMessage{Category: category, Message: message})
	session.Save()
}

// Flashes drains and returns the pending flash messages.
func Flashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save()

	messages := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(FlashMessage); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
