package decode

import "go.uber.org/zap"

// zapField builds a zap.Field from a loosely-typed value. Decode-time
// log fields are a mix of uint32 ids/counts and plain ints; zap.Any
// keeps the call sites at the log statement uncluttered rather than
// picking a typed constructor per field.
func zapField(key string, value any) zap.Field {
	return zap.Any(key, value)
}
