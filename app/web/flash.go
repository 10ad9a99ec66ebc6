// Package web carries the HTTP plumbing shared by all feature handlers:
// the one-shot flash channel, the request middleware and the method
// override wrapper for HTML forms.
package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash status tags. Templates map them onto alert styling.
const (
	StatusSuccess = "success"
	StatusUpdated = "updated"
	StatusDeleted = "deleted"
	StatusDanger  = "danger"
)

const (
	flashMsgKey    = "msg"
	flashStatusKey = "status"
)

// SetFlash queues a one-shot message for the next page render. Call it
// immediately before a redirect.
func SetFlash(c *gin.Context, msg, status string) {
	s := sessions.Default(c)
	s.Set(flashMsgKey, msg)
	s.Set(flashStatusKey, status)
	_ = s.Save()
}

// TakeFlash reads and clears the pending flash message. A message not
// consumed by the very next page load is gone.
func TakeFlash(c *gin.Context) (msg, status string) {
	s := sessions.Default(c)
	msg, _ = s.Get(flashMsgKey).(string)
	status, _ = s.Get(flashStatusKey).(string)
	if msg != "" || status != "" {
		s.Delete(flashMsgKey)
		s.Delete(flashStatusKey)
		_ = s.Save()
	}
	return msg, status
}

// AlertClass maps a flash status tag to its bootstrap alert class.
func AlertClass(status string) string {
	switch status {
	case StatusDanger, "failed":
		return "alert-danger"
	default:
		return "alert-success"
	}
}
