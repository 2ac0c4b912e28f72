package utils

import (
	"log"
	"strings"
)

// LogEvent prints one structured-ish event line per action so the terminal
// log stays greppable by module and request id.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
