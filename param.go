package votable

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/johnveitch/votable/errors"
)

// NewParamNode builds a VOTable PARAM element.
//
// name and datatype are mandatory; unit and arraysize are emitted only when
// non-empty. value is always emitted, the empty string included. Attributes
// appear in the order name, unit, datatype, arraysize, value.
//
// The returned fragment is owned by the caller until it is appended to a
// parent or wrapped into a document.
func NewParamNode(name, unit string, datatype Datatype, arraysize, value string) (*etree.Element, error) {
	const op = "NewParamNode"

	el, err := newTypedElement(op, "PARAM", name, unit, datatype, arraysize)
	if err != nil {
		return nil, err
	}
	el.CreateAttr("value", value)
	return el, nil
}

// newTypedElement builds the attribute prefix shared by PARAM and FIELD:
// name, unit (optional), datatype, arraysize (optional), in that order.
func newTypedElement(op, tag, name, unit string, datatype Datatype, arraysize string) (*etree.Element, error) {
	if name == "" {
		return nil, errors.InvalidArgument(op, "name", "missing mandatory attribute")
	}
	if !datatype.Valid() {
		return nil, errors.InvalidArgument(op, "datatype", fmt.Sprintf("unknown datatype %d", int(datatype)))
	}

	el := etree.NewElement(tag)
	el.CreateAttr("name", name)
	if unit != "" {
		el.CreateAttr("unit", unit)
	}
	el.CreateAttr("datatype", datatype.String())
	if arraysize != "" {
		el.CreateAttr("arraysize", arraysize)
	}
	return el, nil
}
