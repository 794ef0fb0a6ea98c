package numbase

// Converter is the state of a four-field number base editor. It holds the
// last accepted value; every notation is derived from it.
type Converter struct {
	value uint64
}

// NewConverter returns a Converter holding 255.
func NewConverter() *Converter {
	return &Converter{value: 255}
}

// Set applies an edit to the field for base b. A rejected edit returns the
// validation error and leaves the held value unchanged.
func (c *Converter) Set(b Base, text string) error {
	n, err := Parse(text, b)
	if err != nil {
		return err
	}
	c.value = n
	return nil
}

// Value returns the held value.
func (c *Converter) Value() uint64 {
	return c.value
}

// Representations renders the held value in every notation.
func (c *Converter) Representations() Representations {
	return Of(c.value)
}
