package swr

import (
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// FieldInterpolator interpolates any varying type made solely of float32
// components: float32 fields, float32 arrays (mgl32.Vec3, mgl32.Mat4, ...)
// and nested structs of those. Shading models can embed it to satisfy the
// Interpolator half of Shader.
//
// The zero value is not usable; create one with NewFieldInterpolator.
type FieldInterpolator[V any] struct {
	components int
	valid      bool
}

// NewFieldInterpolator validates the layout of V and returns an
// interpolator for it. It panics if V is not a struct, has unexported
// fields, or contains anything other than float32 components.
func NewFieldInterpolator[V any]() FieldInterpolator[V] {
	var zero V
	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("swr: varying type %v must be a struct", typ))
	}
	n, err := countComponents(typ)
	if err != nil {
		panic(fmt.Sprintf("swr: varying type %v: %v", typ, err))
	}
	return FieldInterpolator[V]{components: n, valid: true}
}

// Components returns the number of float32 components in V.
func (f FieldInterpolator[V]) Components() int { return f.components }

// Interpolate sets every component of dst to the weighted sum of the
// matching components of src.
func (f FieldInterpolator[V]) Interpolate(dst *V, src *[3]V, weights mgl32.Vec3) {
	if !f.valid {
		panic("swr: FieldInterpolator used without NewFieldInterpolator")
	}
	lerpValue(
		reflect.ValueOf(dst).Elem(),
		reflect.ValueOf(&src[0]).Elem(),
		reflect.ValueOf(&src[1]).Elem(),
		reflect.ValueOf(&src[2]).Elem(),
		weights,
	)
}

func countComponents(typ reflect.Type) (int, error) {
	switch typ.Kind() {
	case reflect.Float32:
		return 1, nil
	case reflect.Array:
		n, err := countComponents(typ.Elem())
		if err != nil {
			return 0, err
		}
		return n * typ.Len(), nil
	case reflect.Struct:
		total := 0
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				return 0, fmt.Errorf("field %s is unexported", field.Name)
			}
			n, err := countComponents(field.Type)
			if err != nil {
				return 0, fmt.Errorf("field %s: %w", field.Name, err)
			}
			total += n
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%v is not a float32 component", typ)
	}
}

func lerpValue(dst, a, b, c reflect.Value, w mgl32.Vec3) {
	switch dst.Kind() {
	case reflect.Float32:
		var sum float32
		sum += float32(a.Float()) * w[0]
		sum += float32(b.Float()) * w[1]
		sum += float32(c.Float()) * w[2]
		dst.SetFloat(float64(sum))
	case reflect.Array:
		for i := range dst.Len() {
			lerpValue(dst.Index(i), a.Index(i), b.Index(i), c.Index(i), w)
		}
	case reflect.Struct:
		for i := range dst.NumField() {
			lerpValue(dst.Field(i), a.Field(i), b.Field(i), c.Field(i), w)
		}
	}
}
