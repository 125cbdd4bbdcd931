// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extractor turns OCR text lines into typed identity fields.
//
// It works on plain line order only: no bounding boxes, no document schema.
// A structured pass tries one matcher per field kind on every line; when it
// finds nothing at all a looser fallback pass runs over the same lines.
package extractor

import (
	"strings"

	"github.com/MKhiriev/go-id-verifier/models"
)

// matcher inspects line i of a document and returns the value for its field.
// lines are already trimmed.
type matcher func(lines []string, i int) (string, bool)

// structuredMatchers is tried for every line in FieldKind order.
var structuredMatchers = map[FieldKind]matcher{
	FieldName:       matchName,
	FieldIDNumber:   matchIDNumber,
	FieldDOB:        matchDOB,
	FieldExpiryDate: matchExpiryDate,
	FieldAddress:    matchAddress,
}

// Extract maps lines to identity fields. Within a document the first match
// of a field wins and later candidates for that field are ignored.
func Extract(lines []models.TextLine) models.IdentityFields {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l.Content)
	}

	found := structuredPass(trimmed)
	if len(found) == 0 {
		found = fallbackPass(trimmed)
	}

	return toIdentityFields(found)
}

func structuredPass(lines []string) map[FieldKind]string {
	found := make(map[FieldKind]string, len(structuredMatchers))

	for i := range lines {
		for _, kind := range FieldKinds() {
			if _, ok := found[kind]; ok {
				continue
			}
			if v, ok := structuredMatchers[kind](lines, i); ok {
				found[kind] = v
			}
		}
	}

	return found
}

// fallbackPass scans every line once more on its lower-cased form. Only
// name, idNumber and dob are produced here. A later name or idNumber match
// replaces an earlier one; dob keeps its first match.
func fallbackPass(lines []string) map[FieldKind]string {
	found := make(map[FieldKind]string, 3)

	for i, line := range lines {
		lower := strings.ToLower(line)

		if isNameLabel(lower) {
			if v, ok := nextLineName(lines, i); ok {
				found[FieldName] = v
			}
			continue
		}

		if rest, ok := stripIDKeyword(lower); ok && isLikelyIDNumber(rest) {
			found[FieldIDNumber] = rest
			continue
		}

		if _, ok := found[FieldDOB]; !ok && isLikelyDate(lower) {
			found[FieldDOB] = lower
		}
	}

	return found
}

func matchName(lines []string, i int) (string, bool) {
	if !isNameLabel(lines[i]) {
		return "", false
	}
	return nextLineName(lines, i)
}

func nextLineName(lines []string, i int) (string, bool) {
	if i+1 >= len(lines) {
		return "", false
	}

	candidate := lines[i+1]
	if !isLikelyName(candidate) {
		return "", false
	}

	return candidate, true
}

func matchIDNumber(lines []string, i int) (string, bool) {
	if !isLikelyIDNumber(lines[i]) {
		return "", false
	}
	return strings.ToUpper(lines[i]), true
}

func matchDOB(lines []string, i int) (string, bool) {
	if !isLikelyDate(lines[i]) {
		return "", false
	}
	return lines[i], true
}

// matchExpiryDate needs the label and the date on the same line and keeps
// only the date.
func matchExpiryDate(lines []string, i int) (string, bool) {
	if !isExpiryLabelled(lines[i]) {
		return "", false
	}
	return findDate(lines[i])
}

func matchAddress(lines []string, i int) (string, bool) {
	if !isLikelyAddress(lines[i]) {
		return "", false
	}
	return lines[i], true
}

func toIdentityFields(found map[FieldKind]string) models.IdentityFields {
	var fields models.IdentityFields

	for kind, v := range found {
		if v == "" {
			continue
		}
		value := v
		switch kind {
		case FieldName:
			fields.Name = &value
		case FieldIDNumber:
			fields.IDNumber = &value
		case FieldDOB:
			fields.DOB = &value
		case FieldExpiryDate:
			fields.ExpiryDate = &value
		case FieldAddress:
			fields.Address = &value
		}
	}

	return fields
}
