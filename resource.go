package votable

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/johnveitch/votable/errors"
)

// NewResourceNode builds a VOTable RESOURCE element carrying the utype and
// name attributes and appends the given children in order.
//
// Empty utype and name are accepted; both attributes are always emitted.
// Appended children are consumed: they are relinked under the RESOURCE and
// must not be reused by the caller.
func NewResourceNode(utype, name string, children ...*etree.Element) (*etree.Element, error) {
	const op = "NewResourceNode"

	el := etree.NewElement("RESOURCE")
	el.CreateAttr("utype", utype)
	el.CreateAttr("name", name)

	for i, child := range children {
		if child == nil {
			return nil, errors.InvalidArgument(op, "", fmt.Sprintf("child %d is nil", i))
		}
		el.AddChild(child)
	}
	return el, nil
}
