// Package checksum hashes file content for `dirmap sum`.
//
// A raw digest covers the exact bytes. A normalized digest first unifies line
// endings and strips trailing whitespace, so the same text saved on Windows
// and Unix hashes alike:
//
//	calc := checksum.New()
//	exact := calc.CalculateRaw(data)
//	loose := calc.CalculateNormalized(data)
package checksum
