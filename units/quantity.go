package units

// Quantity is a value tagged with its unit.
type Quantity struct {
	Value float64
	Unit  string
}

// String renders the quantity as "value unit".
func (q Quantity) String() string {
	return FormatNumber(q.Value) + " " + q.Unit
}

// To converts the quantity into another unit of category c.
func (q Quantity) To(unit string, c Category) (Quantity, error) {
	v, err := Convert(q.Value, q.Unit, unit, c)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: unit}, nil
}
