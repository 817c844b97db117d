package calculator

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number, possibly with an exponent.
	tokenNum
	// tokenIdent is a function or constant name.
	tokenIdent
	// tokenOp is a binary or prefix operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenPostfix is a square or cube marker.
	tokenPostfix
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators. The
// display glyphs ×, ÷ and − lex to *, / and -.
const Operators = "+-*/^×÷−"

// Postfix contains the runes which square or cube the preceding operand.
const Postfix = "²³"

// canonop maps an operator rune to the text of its token.
func canonop(r rune) string {
	switch r {
	case '×':
		return "*"
	case '÷':
		return "/"
	case '−':
		return "-"
	default:
		return string(r)
	}
}

type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the 1-based column of the next rune.
	col int
	buf strings.Builder
}

func lex(src string) *lexer {
	return &lexer{
		src: src,
		col: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
// The second result is false at the end of the input.
func (l *lexer) readRune() (rune, bool) {
	if l.off >= len(l.src) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.col++
	return r, true
}

// peek returns the rune k runes past the next one without consuming input.
// The result is -1 past the end of the input.
func (l *lexer) peek(k int) rune {
	s := l.src[l.off:]
	for ; k > 0 && s != ""; k-- {
		_, sz := utf8.DecodeRuneInString(s)
		s = s[sz:]
	}
	if s == "" {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token, every time next is called.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		tok := lexToken{pos: l.col}
		r, ok := l.readRune()
		if !ok {
			tok.kind = tokenEOF
			return tok, nil
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r), r == '.':
			l.buf.WriteRune(r)
			if err := l.scanNum(r); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
		case r == 'π':
			tok.text = "pi"
			tok.kind = tokenIdent
		case r == '√':
			tok.text = "√"
			tok.kind = tokenIdent
		case unicode.IsLetter(r):
			l.buf.WriteRune(r)
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = tokenIdent
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
		case strings.ContainsRune(Operators, r):
			tok.text = canonop(r)
			tok.kind = tokenOp
		case strings.ContainsRune(Postfix, r):
			tok.text = string(r)
			tok.kind = tokenPostfix
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
		return tok, nil
	}
}

// scanNum scans the rest of a number whose first rune is already in buf.
// An e or E is an exponent marker only when a digit, optionally signed,
// follows it. Otherwise it ends the number, and the lexer scans it as the
// constant on the next call.
func (l *lexer) scanNum(first rune) error {
	dig, dot := first != '.', first == '.'
	for {
		r := l.peek(0)
		switch {
		case isDigit(r):
			dig = true
		case r == '.':
			if dot {
				l.readRune()
				l.buf.WriteRune(r)
				return l.error("number")
			}
			dot = true
		case (r == 'e' || r == 'E') && dig && l.exponentFollows():
			l.scanExp()
			return nil
		default:
			if !dig {
				return l.error("number")
			}
			return nil
		}
		l.readRune()
		l.buf.WriteRune(r)
	}
}

// exponentFollows reports whether the rune after the next one starts a
// possibly signed run of digits.
func (l *lexer) exponentFollows() bool {
	r := l.peek(1)
	if r == '+' || r == '-' {
		r = l.peek(2)
	}
	return isDigit(r)
}

// scanExp scans an exponent marker, its sign, and its digits. The caller
// checks that there is at least one digit.
func (l *lexer) scanExp() {
	r, _ := l.readRune()
	l.buf.WriteRune(r)
	if r := l.peek(0); r == '+' || r == '-' {
		l.readRune()
		l.buf.WriteRune(r)
	}
	for isDigit(l.peek(0)) {
		r, _ := l.readRune()
		l.buf.WriteRune(r)
	}
}

// scanIdent scans the rest of a run of letters. π ends an identifier.
func (l *lexer) scanIdent() {
	for {
		r := l.peek(0)
		if r == 'π' || !unicode.IsLetter(r) {
			return
		}
		l.readRune()
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		// The rune that caused the error has already been read.
		Col: l.col - 1,
	}
}

// tokenize scans all of src. The last token in the result is always EOF.
func tokenize(src string) ([]lexToken, error) {
	scan := lex(src)
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// untokenize writes tokens back out as an expression that lexes to the same
// tokens, apart from positions.
func untokenize(toks []lexToken) string {
	var b strings.Builder
	for i, tok := range toks {
		if tok.kind == tokenEOF {
			break
		}
		if i > 0 && tok.kind != tokenPostfix {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// LexError indicates an invalid character in the input. It implements
// InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the column of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid character at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
