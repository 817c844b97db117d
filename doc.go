// Package calculator implements the evaluation core of a scientific calculator.
//
// Expressions are written the way a calculator's keypad builds them:
// "2+3×4", "sin(30)", "√(2)^2", "(1+2)²", "π×e". Multiplication is always
// explicit, so "2π" is an error rather than a product. "-2^2" is the same as
// "-(2^2)", and "2^3^2" is "2^(3^2)". Trigonometric functions take degrees
// unless evaluated with Radians.
//
// Evaluation is a pure function of its input. An Expr can be evaluated from
// any number of goroutines at once.
//
package calculator
