package conversation

import (
	"regexp"
	"strings"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// ScriptedOpener is the canned first message the app offers on a new
// match. It does not count as a qualifying message for the decision timer.
const ScriptedOpener = "Hey! Our matchmaker thought we'd hit it off :)"

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Digit runs allowing separators; candidates still need nine digits
	// (see looksLikePhone) so prices and dates don't trip it. False
	// positives only cost a credit, never a punitive action.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)

	socialKeywords = []string{
		"instagram",
		"insta ",
		"ig:",
		"snapchat",
		"my snap",
		"whatsapp",
		"wa.me",
		"telegram",
		"t.me/",
		"tiktok",
		"facebook",
		"fb.com",
		"twitter",
		"x.com/",
	}

	// The product's own prompts mention credits and unlocking; they must
	// never self-trigger a disclosure.
	boilerplatePhrases = []string{
		"date credit",
		"unlock this chat",
		"your chat is now active",
	}
)

// ContainsContactDisclosure reports whether any participant-authored
// message in the history discloses contact information: an email address,
// a phone-number-shaped string, or a named social platform.
func ContainsContactDisclosure(messages []models.Message) bool {
	for _, msg := range messages {
		if msg.Kind != models.MessageKindUser {
			continue
		}
		if isBoilerplate(msg.Body) {
			continue
		}
		if disclosesContact(msg.Body) {
			return true
		}
	}
	return false
}

func disclosesContact(body string) bool {
	if emailPattern.MatchString(body) {
		return true
	}
	if looksLikePhone(body) {
		return true
	}
	lower := strings.ToLower(body)
	for _, keyword := range socialKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// looksLikePhone requires at least nine digits in a separator-allowed run;
// an ISO date like 2025-06-01 carries only eight.
func looksLikePhone(body string) bool {
	for _, candidate := range phonePattern.FindAllString(body, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 9 {
			return true
		}
	}
	return false
}

func isBoilerplate(body string) bool {
	lower := strings.ToLower(body)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// FirstQualifyingSender returns the sender of the first qualifying message
// in the history: a participant-authored message that is not the scripted
// opener. Returns "" when no qualifying message exists yet.
func FirstQualifyingSender(messages []models.Message) string {
	for _, msg := range messages {
		if msg.Kind != models.MessageKindUser {
			continue
		}
		if strings.TrimSpace(msg.Body) == ScriptedOpener {
			continue
		}
		return msg.SenderID
	}
	return ""
}
