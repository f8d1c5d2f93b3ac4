//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// Assertions are compiled out in this build; violations proceed unchecked.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// Assertions are compiled out in this build; violations proceed unchecked.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// Nil asserts that the given value is nil.
// Assertions are compiled out in this build; violations proceed unchecked.
func Nil(value any, args ...any) {
	// Intentionally left blank
}

// NotNil asserts that the given value is not nil.
// Assertions are compiled out in this build; violations proceed unchecked.
func NotNil(value any, args ...any) {
	// Intentionally left blank
}

// Divides asserts that value is an exact multiple of divisor.
// Assertions are compiled out in this build; violations proceed unchecked.
func Divides(divisor, value int, args ...any) {
	// Intentionally left blank
}
