package email

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const messageIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateMessageID creates an RFC 5322 message id unique per call
func GenerateMessageID(domain string) string {
	id, err := gonanoid.Generate(messageIDAlphabet, 12)
	if err != nil {
		// crypto/rand failure; fall back to the clock alone
		id = "x"
	}
	return fmt.Sprintf("<%d.%s@%s>", time.Now().UnixMicro(), id, domain)
}
