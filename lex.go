package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// num is the value of a tokenNum.
	num  float64
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is an operator, recognized or not.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are operators. x, * and / are aliases
// for ×, × and ÷, respectively.
const Operators = "+-×÷*/x"

// OpenBracket and CloseBracket group subexpressions.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an EOF token with a nil error. Subsequent times,
// the result is an empty token with io.EOF.
//
// Runes outside Operators that are symbols or punctuation are returned as
// operator tokens so that the evaluator can reject them when applied.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		tok := lexToken{pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			v, err := l.scanNum(tok.pos)
			if err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			tok.num = v
		case r == OpenBracket:
			tok.text = string(r)
			tok.kind = tokenOpen
		case r == CloseBracket:
			tok.text = string(r)
			tok.kind = tokenClose
		case strings.ContainsRune(Operators, r), unicode.IsSymbol(r), unicode.IsPunct(r):
			tok.text = string(r)
			tok.kind = tokenOp
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("", tok.pos)
		}
		return tok, nil
	}
}

// scanNum scans a run of digits containing at most one decimal point and
// returns its value. Digits before the point accumulate as v*10 + d; each
// digit after it adds d times the current place value, starting from 0.1.
// A run with a second point or with no digits is an error.
func (l *lexer) scanNum(pos int) (float64, error) {
	var (
		v             float64
		place         = 0.1
		dig, dot, bad bool
	)
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if r == '.' {
			if dot {
				// Keep scanning so the whole run appears in the error.
				bad = true
			}
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if r < '0' || r > '9' {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		dig = true
		d := float64(r - '0')
		if dot {
			v += d * place
			place /= 10
		} else {
			v = v*10 + d
		}
	}
	if bad || !dig {
		return 0, l.error("number", pos)
	}
	return v, nil
}

func (l *lexer) error(kind string, pos int) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  pos,
	}
}
