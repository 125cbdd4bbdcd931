// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityFields holds the structured identity data extracted from a document.
//
// Every field is optional. A nil pointer means "not found"; an extracted
// field is never an empty string.
type IdentityFields struct {
	Name       *string `json:"name" firestore:"name"`
	IDNumber   *string `json:"idNumber" firestore:"id_number"`
	DOB        *string `json:"dob" firestore:"dob"`
	Address    *string `json:"address" firestore:"address"`
	ExpiryDate *string `json:"expiryDate" firestore:"expiry_date"`
}

// HasName reports whether a name was extracted.
func (f IdentityFields) HasName() bool { return f.Name != nil }

// HasIDNumber reports whether a document number was extracted.
func (f IdentityFields) HasIDNumber() bool { return f.IDNumber != nil }

// HasDOB reports whether a date of birth was extracted.
func (f IdentityFields) HasDOB() bool { return f.DOB != nil }

// IsEmpty reports whether no field at all was extracted.
func (f IdentityFields) IsEmpty() bool {
	return f.Name == nil && f.IDNumber == nil && f.DOB == nil && f.Address == nil && f.ExpiryDate == nil
}

// Presence returns a map of field name to presence flag. It is safe to log:
// no field values are included.
func (f IdentityFields) Presence() map[string]bool {
	return map[string]bool{
		"name":       f.Name != nil,
		"idNumber":   f.IDNumber != nil,
		"dob":        f.DOB != nil,
		"address":    f.Address != nil,
		"expiryDate": f.ExpiryDate != nil,
	}
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
