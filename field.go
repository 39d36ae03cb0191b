package votable

import "github.com/beevik/etree"

// NewFieldNode builds a VOTable FIELD element declaring one TABLE column.
//
// name and datatype are mandatory; unit and arraysize are emitted only when
// non-empty. Unlike PARAM, a FIELD carries no value attribute.
func NewFieldNode(name, unit string, datatype Datatype, arraysize string) (*etree.Element, error) {
	return newTypedElement("NewFieldNode", "FIELD", name, unit, datatype, arraysize)
}
