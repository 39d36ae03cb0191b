package votable

import (
	"github.com/beevik/etree"

	"github.com/johnveitch/votable/errors"
)

// NewInfoNode builds a VOTable INFO element with the mandatory name and
// value attributes. INFO is one of the fragments NewDocument accepts
// directly under the VOTABLE root.
func NewInfoNode(name, value string) (*etree.Element, error) {
	if name == "" {
		return nil, errors.InvalidArgument("NewInfoNode", "name", "missing mandatory attribute")
	}

	el := etree.NewElement("INFO")
	el.CreateAttr("name", name)
	el.CreateAttr("value", value)
	return el, nil
}

// NewDescriptionNode builds a DESCRIPTION element holding free text.
func NewDescriptionNode(text string) *etree.Element {
	el := etree.NewElement("DESCRIPTION")
	el.SetText(text)
	return el
}
