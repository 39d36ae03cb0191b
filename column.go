package votable

import "github.com/johnveitch/votable/internal/cell"

// Column supplies the cell values of one TABLE column. A Column carries the
// datatype it holds, which NewTableNode checks against the datatype the
// corresponding FIELD declares before any cell is formatted.
//
// Build columns with the typed constructors below; the zero Column is not
// usable.
type Column struct {
	datatype Datatype
	rows     int
	cell     func(row int) string
}

// Datatype returns the VOTable datatype the column holds.
func (c Column) Datatype() Datatype { return c.datatype }

// Rows returns the number of cell values the column holds.
func (c Column) Rows() int { return c.rows }

func scalarColumn[T any](dt Datatype, values []T, format func(T) string) Column {
	return Column{
		datatype: dt,
		rows:     len(values),
		cell:     func(row int) string { return format(values[row]) },
	}
}

// arrayColumn extends the scalar formatting rule over per-row arrays;
// elements within a cell are separated by single spaces.
func arrayColumn[T any](dt Datatype, values [][]T, format func(T) string) Column {
	return Column{
		datatype: dt,
		rows:     len(values),
		cell:     func(row int) string { return cell.Join(values[row], format) },
	}
}

// BoolColumn holds boolean cells rendered as "true" or "false".
func BoolColumn(values []bool) Column {
	return scalarColumn(Bool, values, cell.Bool)
}

// BitColumn holds single-bit cells.
func BitColumn(values []uint8) Column {
	return scalarColumn(Bit, values, cell.Bit)
}

// BitArrayColumn holds bit-array cells, one space-separated array per row.
func BitArrayColumn(values [][]uint8) Column {
	return arrayColumn(Bit, values, cell.Bit)
}

// CharColumn holds char cells; each row's string is emitted as the cell
// text, XML-escaped on serialization.
func CharColumn(values []string) Column {
	return scalarColumn(Char, values, func(s string) string { return s })
}

// UnicodeCharColumn holds unicodeChar cells.
func UnicodeCharColumn(values []string) Column {
	return scalarColumn(UnicodeChar, values, func(s string) string { return s })
}

// UnsignedByteColumn holds unsignedByte cells.
func UnsignedByteColumn(values []uint8) Column {
	return scalarColumn(UnsignedByte, values, cell.UnsignedByte)
}

// ShortColumn holds short cells.
func ShortColumn(values []int16) Column {
	return scalarColumn(Short, values, cell.Short)
}

// IntColumn holds int cells.
func IntColumn(values []int32) Column {
	return scalarColumn(Int, values, cell.Int)
}

// IntArrayColumn holds int-array cells.
func IntArrayColumn(values [][]int32) Column {
	return arrayColumn(Int, values, cell.Int)
}

// LongColumn holds long cells.
func LongColumn(values []int64) Column {
	return scalarColumn(Long, values, cell.Long)
}

// LongArrayColumn holds long-array cells.
func LongArrayColumn(values [][]int64) Column {
	return arrayColumn(Long, values, cell.Long)
}

// FloatColumn holds float cells.
func FloatColumn(values []float32) Column {
	return scalarColumn(Float, values, cell.Float)
}

// FloatArrayColumn holds float-array cells.
func FloatArrayColumn(values [][]float32) Column {
	return arrayColumn(Float, values, cell.Float)
}

// DoubleColumn holds double cells.
func DoubleColumn(values []float64) Column {
	return scalarColumn(Double, values, cell.Double)
}

// DoubleArrayColumn holds double-array cells.
func DoubleArrayColumn(values [][]float64) Column {
	return arrayColumn(Double, values, cell.Double)
}

// FloatComplexColumn holds floatComplex cells rendered as "re im".
func FloatComplexColumn(values []complex64) Column {
	return scalarColumn(FloatComplex, values, cell.FloatComplex)
}

// DoubleComplexColumn holds doubleComplex cells rendered as "re im".
func DoubleComplexColumn(values []complex128) Column {
	return scalarColumn(DoubleComplex, values, cell.DoubleComplex)
}
