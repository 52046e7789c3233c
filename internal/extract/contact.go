// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/resume-analyzer/pkg/types"
)

var (
	// emailRe matches RFC-like email addresses. Pattern matching only;
	// deliverability is not checked.
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phoneRe admits common international formats: optional country code,
	// optional parenthesized area code, separators in space/dot/dash.
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-])?(?:\(?\d{3}\)?[\s.-])?\d{3}[\s.-]?\d{4}`)
)

// Contacts returns the first email address and phone number found in
// text. Absent fields stay empty.
func Contacts(text string) types.ContactInfo {
	return types.ContactInfo{
		Email: emailRe.FindString(text),
		Phone: phoneRe.FindString(text),
	}
}
