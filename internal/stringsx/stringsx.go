package stringsx

import "fmt"

// Repr formats a contained value for the String methods of the container types. Strings are
// quoted so Some("1") and Some(1) stay distinguishable, everything else uses its default format.
func Repr(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("%q", v)
	case error:
		return fmt.Sprintf("%q", v.Error())
	default:
		return fmt.Sprintf("%v", v)
	}
}
