package covenant

// Warning bands sit at 10% proximity to the threshold: covenants capped from
// above warn once the value reaches 90% of the cap, covenants floored from
// below warn once the value falls to 110% of the floor.
const (
	warnBandCap   = 0.9
	warnBandFloor = 1.1
)

// Evaluate computes the compliance status for a measured value against a
// threshold rule. Pure: same inputs, same status. Callers are responsible
// for skipping covenants with no usable value — absence of data never
// reaches this function.
func Evaluate(current float64, op Operator, threshold float64) Status {
	switch op {
	case OpLessThan:
		if current >= threshold {
			return StatusBreach
		}
		if current >= threshold*warnBandCap {
			return StatusWarning
		}
	case OpLessThanEqual:
		if current > threshold {
			return StatusBreach
		}
		if current >= threshold*warnBandCap {
			return StatusWarning
		}
	case OpGreaterThan:
		if current <= threshold {
			return StatusBreach
		}
		if current <= threshold*warnBandFloor {
			return StatusWarning
		}
	case OpGreaterThanEqual:
		if current < threshold {
			return StatusBreach
		}
		if current <= threshold*warnBandFloor {
			return StatusWarning
		}
	}
	return StatusCompliant
}
