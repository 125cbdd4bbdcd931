package extractor

// FieldKind enumerates the identity fields the extractor can recognise.
// The declaration order is the priority order in which matchers are tried
// for a single line.
type FieldKind int

const (
	FieldName FieldKind = iota
	FieldIDNumber
	FieldDOB
	FieldExpiryDate
	FieldAddress
)

// String returns the field's JSON name.
func (k FieldKind) String() string {
	switch k {
	case FieldName:
		return "name"
	case FieldIDNumber:
		return "idNumber"
	case FieldDOB:
		return "dob"
	case FieldExpiryDate:
		return "expiryDate"
	case FieldAddress:
		return "address"
	default:
		return "unknown"
	}
}

// FieldKinds returns all kinds in priority order.
func FieldKinds() []FieldKind {
	return []FieldKind{FieldName, FieldIDNumber, FieldDOB, FieldExpiryDate, FieldAddress}
}
