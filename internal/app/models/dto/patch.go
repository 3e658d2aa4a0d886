package dto

// patch overwrites dst when the request carried the field
func patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// patchOptional is patch for nullable model fields
func patchOptional[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
