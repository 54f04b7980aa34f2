// Package numeric implements the scalar routines of numkit: integer
// exponentiation by repeated multiplication and the iterative Fibonacci
// sequence.
//
// What & Why:
//
//	These routines are intentionally textbook. They exist so that a host
//	application (or the numkit CLI) can measure raw CPU cost for a known
//	amount of work, so the algorithms are kept linear and branch-free rather
//	than replaced with faster closed forms.
//
// Contract:
//   - Power works on int32 and wraps on overflow, exactly like repeated int32
//     multiplication. Use PowerChecked for an overflow-aware int64 variant.
//   - Fibonacci returns int64 and refuses indices whose value cannot be
//     represented (n > MaxFibonacciIndex).
//   - Negative exponents and indices are rejected with sentinel errors;
//     match them with errors.Is.
//
// Complexity:
//
//	Power, PowerChecked: O(exponent) multiplications.
//	Fibonacci:           O(n) additions, O(1) memory.
//	FibonacciSequence:   O(n) time and memory.
//
// The package never logs and never panics on user input.
package numeric
