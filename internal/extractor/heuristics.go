package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nameTokenRe = regexp.MustCompile(`^[A-Za-z]+$`)

	// dates: DD/MM/YYYY, MM-DD-YY, YYYY-MM-DD ...
	dayFirstDateRe  = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`)
	yearFirstDateRe = regexp.MustCompile(`^\d{2,4}[/-]\d{1,2}[/-]\d{1,2}$`)

	// embedded dates, for labelled lines such as "Expiry 01/02/2030"
	embeddedDayFirstRe  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	embeddedYearFirstRe = regexp.MustCompile(`\b\d{2,4}[/-]\d{1,2}[/-]\d{1,2}\b`)

	// idKeywordRe matches a document-number label. The greedy prefix makes a
	// replacement strip everything up to the last label on the line.
	idKeywordRe = regexp.MustCompile(`^.*\b(id|identification|document)\b`)
)

var (
	nameKeywords    = []string{"name", "surname", "given name"}
	expiryKeywords  = []string{"expiry", "expire", "valid"}
	addressKeywords = []string{"street", "st.", "road", "rd.", "ave.", "avenue", "drive", "dr.", "lane", "ln."}
)

// isNameLabel reports whether a line introduces a name on the next line.
func isNameLabel(line string) bool {
	return containsAny(strings.ToLower(line), nameKeywords)
}

// isLikelyName accepts one to three whitespace-separated tokens made only of
// ASCII letters.
func isLikelyName(text string) bool {
	words := strings.Fields(text)
	if len(words) < 1 || len(words) > 3 {
		return false
	}

	for _, w := range words {
		if !nameTokenRe.MatchString(w) {
			return false
		}
	}

	return true
}

// isLikelyIDNumber accepts text holding at least one ASCII letter and one
// digit with more than four alphanumeric characters overall.
func isLikelyIDNumber(text string) bool {
	var letters, digits int
	for _, r := range text {
		switch {
		case r <= unicode.MaxASCII && unicode.IsLetter(r):
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}

	return letters > 0 && digits > 0 && letters+digits > 4
}

// isLikelyDate reports whether the whole text is a numeric date.
func isLikelyDate(text string) bool {
	return dayFirstDateRe.MatchString(text) || yearFirstDateRe.MatchString(text)
}

// findDate returns the first numeric date contained anywhere in text.
func findDate(text string) (string, bool) {
	if d := embeddedDayFirstRe.FindString(text); d != "" {
		return d, true
	}
	if d := embeddedYearFirstRe.FindString(text); d != "" {
		return d, true
	}
	return "", false
}

func isExpiryLabelled(text string) bool {
	return containsAny(strings.ToLower(text), expiryKeywords)
}

// isLikelyAddress accepts text with a street-type word or a house number.
// A bare date is not an address even though it holds digits.
func isLikelyAddress(text string) bool {
	if isLikelyDate(text) {
		return false
	}

	if containsAny(strings.ToLower(text), addressKeywords) {
		return true
	}

	return strings.ContainsFunc(text, func(r rune) bool { return r >= '0' && r <= '9' })
}

// stripIDKeyword removes everything up to and including the last id label.
// ok is false when the text carries no label.
func stripIDKeyword(text string) (rest string, ok bool) {
	if !idKeywordRe.MatchString(text) {
		return "", false
	}

	return strings.TrimSpace(idKeywordRe.ReplaceAllString(text, "")), true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
