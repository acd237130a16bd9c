package lazy

// Interning caches for the two small value domains the original runtime
// special-cases: the two bool values and integers in [-128, 128). Both
// tables are built once at package init and shared process-wide, mirroring
// lazy.hpp's static bools[2] / integer_cache[256] arrays — the only
// process-wide mutable-looking state this codebase carries, and it is
// immutable after init, so it needs no synchronization.

const (
	intCacheLow  = -128
	intCacheHigh = 128 // exclusive
)

var (
	boolCache [2]*Value[bool]
	intCache  [intCacheHigh - intCacheLow]*Value[int64]
)

func init() {
	boolCache[0] = Const(false)
	boolCache[1] = Const(true)
	for i := intCacheLow; i < intCacheHigh; i++ {
		intCache[i-intCacheLow] = Const(int64(i))
	}
}

// Bool returns the interned lazy value for b.
func Bool(b bool) *Value[bool] {
	if b {
		return boolCache[1]
	}
	return boolCache[0]
}

// Int returns a lazy value for n, reusing the interned instance when n falls
// in [-128, 128) and allocating a fresh constant otherwise.
func Int(n int64) *Value[int64] {
	if n >= intCacheLow && n < intCacheHigh {
		return intCache[n-intCacheLow]
	}
	return Const(n)
}
