package calculator

import (
	"errors"
	"strconv"
)

// TokenError is an error indicating a token that cannot appear where the
// parser found it. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token, or the empty string for the end of the
	// input.
	Token string
	// Want describes what the parser expected instead, if anything.
	Want string
}

func (err *TokenError) Error() string {
	tok := "end of input"
	if err.Token != "" {
		tok = strconv.Quote(err.Token)
	}
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+tok)
	}
	return errpos(err.Col, "unexpected "+tok+", want "+err.Want)
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, if it is unclosed.
	Left string
	// Right is the closing bracket, if it has no opening bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
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
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)

// DomainError is an error returned when a function or operator is applied to
// an argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

var (
	// ErrDivisionByZero is the error for a division, reciprocal, or negative
	// power of zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFinite is the error for a result that overflows or is otherwise
	// not a finite number.
	ErrNonFinite = errors.New("result is not finite")
)
