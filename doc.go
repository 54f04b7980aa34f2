// Package numkit is a small native-computation backend: textbook numeric
// routines plus timing wrappers that report how long they took.
//
// 🚀 What is in numkit?
//
//	• numeric/: integer power by repeated multiplication, iterative Fibonacci
//	• sorting/: large random int32 arrays sorted with an unstable pdqsort
//	• matrix/ : dense int32 matrices, sequential and row-parallel products
//	• bench/  : benchmark results (elapsed ms + summary), suites, Prometheus metrics
//	• api/    : flat host-facing functions for a binding layer
//	• config/ : YAML / .env / NUMKIT_* environment / flag configuration
//	• cmd/numkit: command-line front end
//
// ✨ Guarantees
//
//   - No panics on user input: every routine returns a sentinel error that
//     callers match with errors.Is.
//   - The only concurrency is the row-parallel matrix product; every other
//     routine runs to completion on the calling goroutine.
//   - Library packages never log; bench, api and the CLI log through
//     mx-chain-logger-go.
//
// Quick start:
//
//	go run ./cmd/numkit power 2 10           # 1024
//	go run ./cmd/numkit matmul 200 --bench   # timed 200×200 product
//	go run ./cmd/numkit suite --format yaml  # configured suite report
package numkit
