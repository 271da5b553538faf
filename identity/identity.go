// Package identity provides the additive and multiplicative identities of every numeric kind.
package identity

import "github.com/ARM-software/golang-numerics/constraints"

// Zero returns the additive identity: `x + Zero[T]() == x`.
func Zero[T constraints.INumber]() T {
	return 0
}

// One returns the multiplicative identity: `x * One[T]() == x`.
func One[T constraints.INumber]() T {
	return 1
}

// IsZero states whether a value equals the additive identity. Both signed zeros are considered zero.
func IsZero[T constraints.INumber](x T) bool {
	return x == Zero[T]()
}

// IsOne states whether a value equals the multiplicative identity.
func IsOne[T constraints.INumber](x T) bool {
	return x == One[T]()
}
