package calc

import (
	"io"
	"strings"
)

// operand is a value on the operand stack with the position of the token that
// began it.
type operand struct {
	val float64
	pos int
}

// evaluator holds the two stacks for a single evaluation.
type evaluator struct {
	vals stack[operand]
	ops  stack[lexToken]
}

// reduce pops one operator and applies it to the top two operands, pushing
// the result. The right operand is the top of the stack.
func (e *evaluator) reduce() error {
	op, _ := e.ops.pop()
	if len(e.vals) < 2 {
		return &StructuralError{Col: op.pos, Kind: MissingOperand, Text: op.text}
	}
	r, _ := e.vals.pop()
	l, _ := e.vals.pop()
	v, err := apply(l.val, r.val, op)
	if err != nil {
		return err
	}
	e.vals.push(operand{val: v, pos: l.pos})
	return nil
}

// binary handles a binary operator token. Pending operators that bind at least
// as tightly are applied first, so equal precedence groups to the left.
func (e *evaluator) binary(tok lexToken) error {
	p := precedence(tok.text)
	for {
		top, ok := e.ops.top()
		if !ok || top.kind == tokenOpen || precedence(top.text) < p {
			break
		}
		if err := e.reduce(); err != nil {
			return err
		}
	}
	e.ops.push(tok)
	return nil
}

// close handles a close bracket by applying operators back to the matching
// open bracket. prev is the kind of the token before tok.
func (e *evaluator) close(tok lexToken, prev tokenKind) error {
	if prev == tokenOpen {
		return &StructuralError{Col: tok.pos, Kind: MissingExpression, Text: tok.text}
	}
	for {
		top, ok := e.ops.top()
		if !ok {
			return &StructuralError{Col: tok.pos, Kind: UnopenedBracket, Text: tok.text}
		}
		if top.kind == tokenOpen {
			e.ops.pop()
			return nil
		}
		if err := e.reduce(); err != nil {
			return err
		}
	}
}

// finish applies all remaining operators and returns the single remaining
// operand. end is the EOF token.
func (e *evaluator) finish(end lexToken) (float64, error) {
	for {
		top, ok := e.ops.top()
		if !ok {
			break
		}
		if top.kind == tokenOpen {
			return 0, &StructuralError{Col: top.pos, Kind: UnclosedBracket, Text: top.text}
		}
		if err := e.reduce(); err != nil {
			return 0, err
		}
	}
	switch len(e.vals) {
	case 0:
		return 0, &StructuralError{Col: end.pos, Kind: MissingExpression}
	case 1:
		return e.vals[0].val, nil
	default:
		// The second operand is the first one that no operator consumed.
		return 0, &StructuralError{Col: e.vals[1].pos, Kind: MissingOperator}
	}
}

// negates reports whether a minus following a token of kind prev is a
// negation rather than a subtraction.
func negates(prev tokenKind) bool {
	switch prev {
	case tokenNone, tokenOpen, tokenOp:
		return true
	default:
		return false
	}
}

// Eval evaluates an expression read from src up to EOF. If the input is not
// a well-formed expression, the result is 0 and the error is an InputError.
// Errors from src other than io.EOF are returned as-is.
func Eval(src io.RuneScanner) (float64, error) {
	scan := lex(src)
	var e evaluator
	prev := tokenNone
	for {
		tok, err := scan.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			e.vals.push(operand{val: tok.num, pos: tok.pos})
		case tokenOpen:
			e.ops.push(tok)
		case tokenClose:
			if err := e.close(tok, prev); err != nil {
				return 0, err
			}
		case tokenOp:
			if tok.text == "-" && negates(prev) {
				// Negation applies directly to the literal that follows and
				// never enters the operator stack.
				n, err := scan.next()
				if err != nil {
					return 0, err
				}
				if n.kind != tokenNum {
					return 0, &StructuralError{Col: tok.pos, Kind: DanglingNegation, Text: tok.text}
				}
				e.vals.push(operand{val: -n.num, pos: tok.pos})
				prev = tokenNum
				continue
			}
			if err := e.binary(tok); err != nil {
				return 0, err
			}
		case tokenEOF:
			return e.finish(tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
		prev = tok.kind
	}
}

// Evaluate is a shortcut to evaluate a string expression.
func Evaluate(expression string) (float64, error) {
	return Eval(strings.NewReader(expression))
}
