package tween

// Float starts a float64 tween.
func Float(r *Registry, from, to float64, d float32) Builder[float64, NoOptions, FloatAdapter] {
	return New[float64, NoOptions, FloatAdapter](r, from, to, d)
}

// Float32 starts a float32 tween.
func Float32(r *Registry, from, to float32, d float32) Builder[float32, NoOptions, Float32Adapter] {
	return New[float32, NoOptions, Float32Adapter](r, from, to, d)
}

// Int starts an int tween rounded with rounding.
func Int(r *Registry, from, to int, d float32, rounding Rounding) Builder[int, IntOptions, IntAdapter] {
	return New[int, IntOptions, IntAdapter](r, from, to, d).WithOptions(IntOptions{Rounding: rounding})
}

// ColorTween starts a color tween that includes alpha.
func ColorTween(r *Registry, from, to Color, d float32) Builder[Color, ColorOptions, ColorAdapter] {
	return New[Color, ColorOptions, ColorAdapter](r, from, to, d).WithOptions(ColorOptions{UseAlpha: true})
}

// Vec2Tween starts a 2D vector tween.
func Vec2Tween(r *Registry, from, to Vec2, d float32) Builder[Vec2, NoOptions, Vec2Adapter] {
	return New[Vec2, NoOptions, Vec2Adapter](r, from, to, d)
}

// Vec3Tween starts a 3D vector tween.
func Vec3Tween(r *Registry, from, to Vec3, d float32) Builder[Vec3, NoOptions, Vec3Adapter] {
	return New[Vec3, NoOptions, Vec3Adapter](r, from, to, d)
}

// Text starts a string reveal from `from` to `to`.
func Text(r *Registry, from, to string, d float32, scramble ScrambleMode) Builder[string, StringOptions, StringAdapter] {
	return New[string, StringOptions, StringAdapter](r, from, to, d).WithOptions(StringOptions{Scramble: scramble})
}
