package safecast

import "github.com/ARM-software/golang-numerics/numkind"

//go:generate go tool enumer -type=Rule -trimprefix=Rule -transform=kebab -text -json

// Rule describes which range check applies when converting a value of one kind into another.
type Rule uint8

const (
	// RuleIdentity applies to a conversion to the same kind.
	RuleIdentity Rule = iota
	// RuleSignedWidening applies to a signed integer converted to a signed integer at least as wide.
	RuleSignedWidening
	// RuleSignedNarrowing applies to a signed integer converted to a narrower signed integer.
	RuleSignedNarrowing
	// RuleSignedToUnsigned applies to a signed integer converted to an unsigned integer.
	RuleSignedToUnsigned
	// RuleUnsignedWidening applies to an unsigned integer converted to an unsigned integer at least as wide.
	RuleUnsignedWidening
	// RuleUnsignedNarrowing applies to an unsigned integer converted to a narrower unsigned integer.
	RuleUnsignedNarrowing
	// RuleUnsignedToSigned applies to an unsigned integer converted to a signed integer of the same width or narrower.
	RuleUnsignedToSigned
	// RuleUnsignedToWiderSigned applies to an unsigned integer converted to a wider signed integer.
	RuleUnsignedToWiderSigned
	// RuleIntegerToFloat applies to any integer converted to a float. Rounding is allowed.
	RuleIntegerToFloat
	// RuleFloatToInteger applies to a float converted to an integer. The value is truncated toward zero.
	RuleFloatToInteger
	// RuleFloatWidening applies to a float converted to a float at least as wide.
	RuleFloatWidening
	// RuleFloatNarrowing applies to a float converted to a narrower float.
	RuleFloatNarrowing
)

// RuleFor returns the rule selected for a conversion from src to dst.
func RuleFor(src, dst numkind.Kind) Rule {
	if src == dst {
		return RuleIdentity
	}
	switch {
	case src.IsFloat() && dst.IsFloat():
		if dst.Bits() >= src.Bits() {
			return RuleFloatWidening
		}
		return RuleFloatNarrowing
	case src.IsFloat():
		return RuleFloatToInteger
	case dst.IsFloat():
		return RuleIntegerToFloat
	case src.IsSignedInteger() && dst.IsSignedInteger():
		if dst.Bits() >= src.Bits() {
			return RuleSignedWidening
		}
		return RuleSignedNarrowing
	case src.IsSignedInteger():
		return RuleSignedToUnsigned
	case dst.IsUnsignedInteger():
		if dst.Bits() >= src.Bits() {
			return RuleUnsignedWidening
		}
		return RuleUnsignedNarrowing
	case dst.Bits() > src.Bits():
		return RuleUnsignedToWiderSigned
	default:
		return RuleUnsignedToSigned
	}
}

// Always reports whether every value converted under this rule succeeds.
func (i Rule) Always() bool {
	switch i {
	case RuleIdentity, RuleSignedWidening, RuleUnsignedWidening, RuleUnsignedToWiderSigned, RuleIntegerToFloat, RuleFloatWidening:
		return true
	default:
		return false
	}
}

// Lossless reports whether every value of src converts into dst and back without change.
func Lossless(src, dst numkind.Kind) bool {
	return numkind.Contains(dst, src)
}
