package invoice

import (
	"fmt"
	"strings"
	"unicode"

	"travel-backoffice/internal/domain/contact"
)

const (
	DefaultNumberPrefix = "RTT-INV-"
	numberWidth         = 4
)

// NextNumber formats the number following existingCount: prefix plus the
// sequence zero-padded to at least four digits. Wider values are not truncated.
func NextNumber(existingCount int64, prefix string) string {
	return fmt.Sprintf("%s%0*d", prefix, numberWidth, existingCount+1)
}

// CustomerNameFromEmail derives a display name from the local part of an
// address: separators become spaces and every word gets an upper-case first letter.
func CustomerNameFromEmail(email contact.Email) string {
	local := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(email.LocalPart())

	runes := []rune(local)
	atWordStart := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			atWordStart = true
			continue
		}
		if atWordStart {
			runes[i] = unicode.ToUpper(r)
		}
		atWordStart = false
	}
	return string(runes)
}
