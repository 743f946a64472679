package utils

import (
	"encoding/binary"
	"golang.org/x/exp/constraints"
	"math"
	"reflect"
)

// IsValidKey - Returns true if key can be stored, that is if it is equal to itself.
// The only ordered values failing this are floating point NaN.
func IsValidKey[K constraints.Ordered](key K) bool {
	return key == key
}

// KeyToBytes - Encodes an ordered key into bytes suitable for a hash function.
// Equal keys always give equal bytes, which is why -0 is normalised to +0 for floats.
func KeyToBytes[K constraints.Ordered](key K) []byte {
	switch k := any(key).(type) {
	case string:
		return []byte(k)
	case int:
		return intToBytes(int64(k))
	case int8:
		return intToBytes(int64(k))
	case int16:
		return intToBytes(int64(k))
	case int32:
		return intToBytes(int64(k))
	case int64:
		return intToBytes(k)
	case uint:
		return uintToBytes(uint64(k))
	case uint8:
		return uintToBytes(uint64(k))
	case uint16:
		return uintToBytes(uint64(k))
	case uint32:
		return uintToBytes(uint64(k))
	case uint64:
		return uintToBytes(k)
	case uintptr:
		return uintToBytes(uint64(k))
	case float32:
		return floatToBytes(float64(k))
	case float64:
		return floatToBytes(k)
	}

	// Named types, fall back on the underlying kind
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return []byte(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intToBytes(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintToBytes(v.Uint())
	case reflect.Float32, reflect.Float64:
		return floatToBytes(v.Float())
	}

	return nil
}

func intToBytes(i int64) []byte {
	return uintToBytes(uint64(i))
}

func uintToBytes(u uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, u)
	return b
}

func floatToBytes(f float64) []byte {
	if f == 0 {
		f = 0
	}
	return uintToBytes(math.Float64bits(f))
}
