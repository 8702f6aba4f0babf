// Package num implements various utility functions regarding numeric types.
package num

import "math/big"

// ExtendedGCD returns the greatest common divisor of x and y,
// along with the Bezout coefficients s and t such that gcd = s*x + t*y.
// The coefficients may be negative.
func ExtendedGCD(x, y *big.Int) (gcd, s, t *big.Int) {
	oldR, r := big.NewInt(0).Set(x), big.NewInt(0).Set(y)
	oldS, curS := big.NewInt(1), big.NewInt(0)
	oldT, curT := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := big.NewInt(0).Quo(oldR, r)
		oldR, r = r, big.NewInt(0).Sub(oldR, big.NewInt(0).Mul(q, r))
		oldS, curS = curS, big.NewInt(0).Sub(oldS, big.NewInt(0).Mul(q, curS))
		oldT, curT = curT, big.NewInt(0).Sub(oldT, big.NewInt(0).Mul(q, curT))
	}

	return oldR, oldS, oldT
}

// IsPowerOfTwo returns true if x is a power of two.
// Zero and negative values are not powers of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// BigIsPowerOfTwo returns true if x is a power of two.
// Zero and negative values are not powers of two.
func BigIsPowerOfTwo(x *big.Int) bool {
	if x.Sign() <= 0 {
		return false
	}
	tmp := big.NewInt(0).Sub(x, big.NewInt(1))
	return tmp.And(tmp, x).Sign() == 0
}
