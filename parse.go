package calculator

import (
	"errors"
	"strconv"
	"strings"
)

// Expr = num | const | Call | Root | Neg | Plus | Add | Sub | Mul | Div | Pow | Post | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Root = '√' '(' Expr ')' | '√' Primary
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr
// Post = Primary '²' | Primary '³'

// Expr is a parsed expression. An Expr is immutable, so it is safe to
// evaluate concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser holds the tokens of an expression being parsed.
type parser struct {
	toks []lexToken
	// i is the index of the next token. The last token is always EOF, and i
	// never moves past it.
	i int
}

// peek returns the next token without consuming it.
func (p *parser) peek() lexToken {
	return p.toks[p.i]
}

// next consumes and returns the next token.
func (p *parser) next() lexToken {
	tok := p.toks[p.i]
	if tok.kind != tokenEOF {
		p.i++
	}
	return tok
}

// Parse parses an expression so it can be evaluated. The entire input must be
// a single expression.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return parse(toks)
}

// parse parses a complete token sequence, which must end with EOF.
func parse(toks []lexToken) (*Expr, error) {
	p := parser{toks: toks}
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := p.next(); tok.kind {
	case tokenEOF:
		if n == nil {
			return nil, &EmptyExpressionError{Col: tok.pos}
		}
	default:
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	return &Expr{n: n}, nil
}

// parseterm parses a single term. parseterm stops before the first token it
// does not use, which is a close bracket, EOF, or a binary operator binding
// less tightly than until. If the input is an empty subexpression, the
// result is nil with no error; callers must create an error in contexts
// where empty subexpressions are illegal.
func (p *parser) parseterm(until operator) (*node, error) {
	n, err := p.parselhs(until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "binary operator"}
			}
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.next()
			rhs, err := p.parseterm(prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := p.peek()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenClose, tokenEOF:
			return n, nil
		default:
			// Multiplication is always explicit, so a term here is an error.
			return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "operator"}
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any token must be valid as the start of a subexpression.
func (p *parser) parselhs(until operator) (*node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenOp:
		p.next()
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "operand"}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.parseterm(prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := p.peek()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenClose:
		// Let the caller decide whether an empty subexpression is an error.
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	}
	n, err := p.parseprimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenPostfix {
		post := p.next()
		n = &node{kind: nodePow, left: n, right: postfix(post.text)}
	}
	return n, nil
}

// parseprimary parses a number, constant, function call, or bracketed
// subexpression.
func (p *parser) parseprimary() (*node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic("calculator: lexed invalid number " + tok.String() + ": " + err.Error())
		}
		// Out of range literals become infinities that fail evaluation.
		return &node{kind: nodeNum, name: tok.text, num: v}, nil
	case tokenIdent:
		if _, ok := constants[tok.text]; ok {
			return &node{kind: nodeConst, name: tok.text}, nil
		}
		if tok.text == sqrtglyph.name {
			if p.peek().kind == tokenOpen {
				return p.parsecall(sqrtglyph)
			}
			// √x -> √(x)
			arg, err := p.parseprimary()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, name: sqrtglyph.name, fn: sqrtglyph, left: arg}, nil
		}
		fn := globalfuncs[tok.text]
		if fn == nil {
			return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "function or constant"}
		}
		if p.peek().kind != tokenOpen {
			end := p.peek()
			return nil, &TokenError{Col: end.pos, Token: end.text, Want: "( after " + fn.name}
		}
		return p.parsecall(fn)
	case tokenOpen:
		n, err := p.parsebracket(tok)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeGroup, left: n}, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "operand"}
	}
}

// parsecall parses the bracketed argument to a call of fn. The next token
// must be an open bracket.
func (p *parser) parsecall(fn *function) (*node, error) {
	arg, err := p.parsebracket(p.next())
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, name: fn.name, fn: fn, left: arg}, nil
}

// parsebracket parses a subexpression up to the bracket closing open, which
// has already been consumed.
func (p *parser) parsebracket(open lexToken) (*node, error) {
	n, err := p.parseterm(exprprec)
	if err != nil {
		// Running out of input inside brackets is more helpfully reported as
		// the unclosed bracket than as an empty expression.
		if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
			err = &BracketError{Col: open.pos, Left: open.text}
		}
		return nil, err
	}
	end := p.next()
	switch end.kind {
	case tokenClose: // ok
	case tokenEOF:
		// Point at the bracket that was never closed.
		return nil, &BracketError{Col: open.pos, Left: open.text}
	default:
		return nil, itShouldNotHaveEndedThisWay(end)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return n, nil
}

// postfix returns the exponent node for a square or cube marker.
func postfix(text string) *node {
	switch text {
	case "²":
		return &node{kind: nodeNum, name: "2", num: 2}
	case "³":
		return &node{kind: nodeNum, name: "3", num: 3}
	default:
		panic("calculator: invalid postfix operator " + strconv.Quote(text))
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression.
func itShouldNotHaveEndedThisWay(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: "("}
	case tokenClose:
		// A close bracket at the end of the input was never opened.
		return &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return &TokenError{Col: tok.pos, Token: tok.text, Want: "operator"}
	}
}

// String creates a fully parenthesized representation of the parsed
// expression using display glyphs.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, true)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeGroup}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
