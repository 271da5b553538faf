package numkind

import mapset "github.com/deckarep/golang-set/v2"

// All returns the set of every supported kind.
func All() mapset.Set[Kind] {
	return mapset.NewThreadUnsafeSet(KindValues()...)
}

// InCategory returns the set of kinds belonging to the given category.
func InCategory(c Category) mapset.Set[Kind] {
	set := mapset.NewThreadUnsafeSet[Kind]()
	for _, k := range KindValues() {
		if k.Category() == c {
			set.Add(k)
		}
	}
	return set
}

func SignedIntegers() mapset.Set[Kind] {
	return InCategory(CategorySignedInteger)
}

func UnsignedIntegers() mapset.Set[Kind] {
	return InCategory(CategoryUnsignedInteger)
}

// Integers returns the set of signed and unsigned integer kinds.
func Integers() mapset.Set[Kind] {
	return SignedIntegers().Union(UnsignedIntegers())
}

func Floats() mapset.Set[Kind] {
	return InCategory(CategoryFloat)
}

// ContainedIn returns the kinds whose values are all exactly representable by `outer`.
func ContainedIn(outer Kind) mapset.Set[Kind] {
	set := mapset.NewThreadUnsafeSet[Kind]()
	for _, k := range KindValues() {
		if Contains(outer, k) {
			set.Add(k)
		}
	}
	return set
}
