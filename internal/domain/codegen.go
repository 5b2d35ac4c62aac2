package domain

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"
)

const (
	slugMaxLen         = 10
	terminalSuffixLen  = 5
	eventCodeLen       = 8
	invitationCodeLen  = 10
	lowerAlphanumeric  = "abcdefghijklmnopqrstuvwxyz0123456789"
	upperAlphanumeric  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	defaultTerminalTag = "terminal"
)

// Slugify lowercases name, turns runs of whitespace and hyphens into single
// hyphens, drops anything outside [a-z0-9] and truncates the result to ten
// characters.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = b.Len() > 0
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(r)
		}
	}

	slug := b.String()
	if len(slug) > slugMaxLen {
		slug = slug[:slugMaxLen]
	}
	return strings.TrimRight(slug, "-")
}

// GenerateTerminalCode returns slug(name) + "_" + five random characters.
// Codes are not guaranteed unique; callers retry on a constraint violation.
func GenerateTerminalCode(name string) (string, error) {
	slug := Slugify(name)
	if slug == "" {
		slug = defaultTerminalTag
	}

	suffix, err := randomString(lowerAlphanumeric, terminalSuffixLen)
	if err != nil {
		return "", err
	}
	return slug + "_" + suffix, nil
}

// GenerateEventCode returns a short human-shareable event code.
func GenerateEventCode() (string, error) {
	return randomString(upperAlphanumeric, eventCodeLen)
}

// GenerateInvitationCode returns the value encoded in an invitation QR code.
func GenerateInvitationCode() (string, error) {
	return randomString(upperAlphanumeric, invitationCodeLen)
}

func randomString(alphabet string, n int) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
