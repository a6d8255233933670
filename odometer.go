package factor

// odometer is an incremental mixed-radix counter with cursor bookkeeping.
// It enumerates all assignments over a digit vector (least-significant digit
// first) while maintaining one flat-storage cursor per tracked operand, so
// the enumeration never recomputes a full stride dot product per cell.
//
// Each operand supplies one stride per digit; a stride of 0 marks a digit
// whose variable is absent from that operand, which is exactly how
// broadcasting works: the cursor stays put while the digit cycles.
//
// Carry rule: incrementing digit l advances every cursor by its stride for
// l. When digit l overflows (reaches cards[l]) it resets to 0, every cursor
// rolls back by (cards[l]-1)*stride, undoing the accumulated advances for
// that digit, and the carry continues into digit l+1.
type odometer struct {
	cards   []int   // per-digit radix
	digits  []int   // current digit values, all zero initially
	strides [][]int // strides[op][digit]; 0 means "absent, do not advance"
	cursors []int   // current flat offset per operand
}

// newOdometer builds a counter over cards tracking one cursor per stride
// row. All digits and cursors start at zero.
func newOdometer(cards []int, strides ...[]int) *odometer {
	return &odometer{
		cards:   cards,
		digits:  make([]int, len(cards)),
		strides: strides,
		cursors: make([]int, len(strides)),
	}
}

// step advances the counter by one assignment and updates every cursor.
// It returns false when the counter wraps past its most-significant digit
// (all assignments have been visited).
// Amortized complexity: O(number of operands) per call.
func (o *odometer) step() bool {
	for l := 0; l < len(o.cards); l++ {
		o.digits[l]++
		if o.digits[l] < o.cards[l] {
			// No overflow: advance each cursor by its digit-l stride and stop
			// carrying for this cell.
			for op, row := range o.strides {
				o.cursors[op] += row[l]
			}

			return true
		}
		// Overflow: reset the digit and roll each cursor back to the digit's
		// base offset, a true carry.
		o.digits[l] = 0
		for op, row := range o.strides {
			o.cursors[op] -= (o.cards[l] - 1) * row[l]
		}
	}

	return false
}

// cursor returns the current flat offset of operand op.
func (o *odometer) cursor(op int) int {
	return o.cursors[op]
}
