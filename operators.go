package calc

// precedence gets the binding level of an operator token's text. Higher is
// more binding. Unrecognized operators are 0, below every real operator.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "×", "÷", "*", "/", "x":
		return 2
	default:
		return 0
	}
}

// apply computes left op right. Division by zero follows IEEE 754.
func apply(left, right float64, op lexToken) (float64, error) {
	switch op.text {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "×", "*", "x":
		return left * right, nil
	case "÷", "/":
		return left / right, nil
	default:
		return 0, &OperatorError{Col: op.pos, Operator: op.text}
	}
}
