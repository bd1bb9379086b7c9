package calc

import "strconv"

// StructuralError is an error indicating that the input does not have the
// shape of an expression, e.g. unbalanced parentheses or an operator without
// enough operands. It implements InputError.
type StructuralError struct {
	// Col is the position of the token where the problem was detected.
	Col int
	// Kind is the specific problem.
	Kind StructureKind
	// Text is the token at Col, or the empty string at the end of input.
	Text string
}

// StructureKind classifies structural errors.
type StructureKind int8

const (
	// MissingExpression is an empty input or an empty pair of parentheses.
	MissingExpression StructureKind = iota + 1
	// UnopenedBracket is a close parenthesis without a matching open.
	UnopenedBracket
	// UnclosedBracket is an open parenthesis that is never closed.
	UnclosedBracket
	// MissingOperand is an operator applied with fewer than two operands.
	MissingOperand
	// MissingOperator is an operand left over after every operator has been
	// applied, e.g. in "1 2" or "(1)(2)".
	MissingOperator
	// DanglingNegation is a negating minus that is not followed by a number,
	// as in "--3" or "-(3)".
	DanglingNegation
)

func (k StructureKind) String() string {
	switch k {
	case MissingExpression:
		return "MissingExpression"
	case UnopenedBracket:
		return "UnopenedBracket"
	case UnclosedBracket:
		return "UnclosedBracket"
	case MissingOperand:
		return "MissingOperand"
	case MissingOperator:
		return "MissingOperator"
	case DanglingNegation:
		return "DanglingNegation"
	default:
		return "StructureKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (err *StructuralError) Error() string {
	switch err.Kind {
	case MissingExpression:
		if err.Text == "" {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression up to "+strconv.Quote(err.Text))
	case UnopenedBracket:
		return errpos(err.Col, "close bracket "+err.Text+" with no open bracket")
	case UnclosedBracket:
		return errpos(err.Col, "open bracket "+err.Text+" with no close bracket")
	case MissingOperand:
		return errpos(err.Col, "missing operand for "+strconv.Quote(err.Text))
	case MissingOperator:
		return errpos(err.Col, "missing operator before operand")
	case DanglingNegation:
		return errpos(err.Col, "negation is not followed by a number")
	default:
		return errpos(err.Col, "malformed expression")
	}
}

func (err *StructuralError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator that the calculator does
// not know how to apply. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "invalid operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the problem was found.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if the rune does not start any token.
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*StructuralError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*LexError)(nil)
)
