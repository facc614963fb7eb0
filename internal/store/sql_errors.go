package store

// ConstraintKind is the result of [ErrorClassificator.Classify]. It tells
// which integrity constraint, if any, rejected a statement.
type ConstraintKind int

const (
	// NoConstraint means the error is not a constraint violation (or there is
	// no error at all).
	NoConstraint ConstraintKind = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

func (k ConstraintKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique"
	case ForeignKeyViolation:
		return "foreign key"
	case CheckViolation:
		return "check"
	case NotNullViolation:
		return "not null"
	default:
		return "none"
	}
}
