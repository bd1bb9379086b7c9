// Package calc implements a four-function calculator.
//
// Expressions are flat strings of decimal numbers, the operators + - × ÷
// (also * / x), and parentheses, e.g. "(2+3)×4" or "-1.5÷(4-2)". Multiplication
// and division bind tighter than addition and subtraction, and operators of
// equal precedence group left to right. A minus at the start of an expression,
// after an open parenthesis, or after another operator negates the number that
// follows it.
//
// Results are float64. Division by zero is not an error; it produces an
// infinity or NaN as usual.
//
package calc
