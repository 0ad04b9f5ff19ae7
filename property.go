package teststate

// Prop names a value.
func Prop(name string, v Value) Property {
	return Property{name: name, value: v}
}

// PropOf names v, rendered through [Of].
func PropOf(name string, v any) Property {
	return Prop(name, Of(v))
}

// PropList names the array of values.
func PropList(name string, values ...Value) Property {
	return Prop(name, Array(values...))
}
