package libgl

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Returns the address of the first byte of data, which must be a non-empty
// slice, a pointer, an unsafe.Pointer or a uintptr.
func Pointer(data any) unsafe.Pointer {
	if data == nil {
		return unsafe.Pointer(nil)
	}
	v := reflect.ValueOf(data)
	switch v.Type().Kind() {
	case reflect.Ptr:
		return unsafe.Pointer(v.Elem().UnsafeAddr())
	case reflect.UnsafePointer:
		return data.(unsafe.Pointer)
	case reflect.Uintptr:
		return unsafe.Pointer(data.(uintptr))
	case reflect.Slice:
		if v.Len() == 0 {
			return unsafe.Pointer(nil)
		}
		return unsafe.Pointer(v.Index(0).UnsafeAddr())
	}
	panic(fmt.Errorf("unsupported type %s; must be a slice, uintptr or pointer to a value", v.Type()))
}
