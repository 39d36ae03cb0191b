package votable

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/johnveitch/votable/errors"
)

// Serialization selects how TABLE row data is emitted.
type Serialization int

const (
	// SerializeTableData emits rows inline as DATA/TABLEDATA/TR/TD.
	SerializeTableData Serialization = iota + 1
	// SerializeBinaryExternal is reserved for writing row data to an
	// external binary stream. NewTableNode rejects it until the stream
	// format is defined.
	SerializeBinaryExternal
)

// NewTableNode builds a VOTable TABLE element from previously built FIELD
// nodes plus one Column of cell values per field.
//
// name is optional; when empty no name attribute is emitted. fields must be
// non-nil (empty is allowed) and every element must be a FIELD carrying a
// datatype from the vocabulary. Each column must hold the datatype its
// field declares and at least numRows values. Only SerializeTableData is
// supported, and it takes no external stream.
//
// The FIELD nodes are consumed: they are relinked under the TABLE, in input
// order, followed by a single DATA/TABLEDATA subtree holding one TR per row
// with one TD per field in column order.
func NewTableNode(name string, fields []*etree.Element, serialization Serialization, externalStream io.Writer, numRows int, columns ...Column) (*etree.Element, error) {
	const op = "NewTableNode"

	if fields == nil {
		return nil, errors.InvalidArgument(op, "", "nil field list")
	}
	if serialization != SerializeTableData {
		return nil, errors.InvalidArgument(op, "", fmt.Sprintf("unsupported serialization mode %d, only TABLEDATA is implemented", int(serialization)))
	}
	if externalStream != nil {
		return nil, errors.InvalidArgument(op, "", "TABLEDATA serialization does not take an external stream")
	}
	if numRows < 0 {
		return nil, errors.InvalidArgument(op, "", fmt.Sprintf("negative row count %d", numRows))
	}
	if len(columns) != len(fields) {
		return nil, errors.InvalidArgument(op, "", fmt.Sprintf("%d columns for %d fields", len(columns), len(fields)))
	}

	table := etree.NewElement("TABLE")
	if name != "" {
		table.CreateAttr("name", name)
	}

	// First pass: attach the FIELD children and check every column against
	// the datatype its field declares.
	for i, field := range fields {
		if field == nil {
			return nil, errors.InvalidArgument(op, "", fmt.Sprintf("field %d is nil", i))
		}
		attr := field.SelectAttr("datatype")
		if attr == nil {
			return nil, errors.InvalidArgument(op, "datatype", fmt.Sprintf("field %d carries no datatype attribute", i))
		}
		declared, ok := DatatypeFromString(attr.Value)
		if !ok {
			return nil, errors.InvalidArgument(op, "datatype", fmt.Sprintf("unknown datatype %q in field %d", attr.Value, i))
		}
		if columns[i].Datatype() != declared {
			return nil, errors.InvalidArgument(op, "datatype", fmt.Sprintf("column %d holds %s values but field %d declares %s", i, columns[i].Datatype(), i, declared))
		}
		if columns[i].Rows() < numRows {
			return nil, errors.InvalidArgument(op, "", fmt.Sprintf("column %d holds %d rows, table needs %d", i, columns[i].Rows(), numRows))
		}
		table.AddChild(field)
	}

	data := table.CreateElement("DATA")
	tabledata := data.CreateElement("TABLEDATA")
	for row := 0; row < numRows; row++ {
		tr := tabledata.CreateElement("TR")
		for col := range columns {
			tr.CreateElement("TD").SetText(columns[col].cell(row))
		}
	}

	return table, nil
}
