package votable

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/johnveitch/votable/errors"
)

// Document is a complete VOTable document: a VOTABLE root carrying the 1.1
// version, the default and xsi namespace bindings, and the schema location,
// with the wrapped fragment below it.
type Document struct {
	doc *etree.Document
}

// NewDocument wraps fragment in a VOTABLE root and returns the resulting
// document. The root element of the fragment should be one of DESCRIPTION,
// COOSYS, PARAM, INFO, or RESOURCE, the children VOTable 1.1 permits under
// VOTABLE; this is documented, not enforced.
//
// The fragment is consumed. After a successful wrap, every unqualified
// element below the root belongs to the VOTable namespace.
func NewDocument(fragment *etree.Element) (*Document, error) {
	const op = "NewDocument"

	if fragment == nil {
		return nil, errors.InvalidArgument(op, "", "nil fragment")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("VOTABLE")
	root.CreateAttr("version", Version)
	root.CreateAttr("xmlns", NamespaceURL)
	root.CreateAttr("xmlns:xsi", xsiNamespaceURL)
	root.CreateAttr("xsi:noNamespaceSchemaLocation", SchemaURL)
	root.AddChild(fragment)

	if err := reconcileNamespace(op, fragment); err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// reconcileNamespace rebinds every element of the appended subtree to the
// default VOTable namespace declared on the root. Builders emit unprefixed
// elements, so this normalizes redundant declarations; an element carrying
// a foreign prefix or a conflicting default namespace cannot be rebound and
// fails the wrap.
func reconcileNamespace(op string, el *etree.Element) error {
	if el.Space != "" && el.Space != NamespacePrefix {
		return errors.Internal(op, fmt.Sprintf("cannot rebind element %q with prefix %q to the VOTable namespace", el.Tag, el.Space))
	}
	el.Space = ""

	if attr := el.SelectAttr("xmlns"); attr != nil {
		if attr.Value != NamespaceURL {
			return errors.Internal(op, fmt.Sprintf("element %q declares conflicting default namespace %q", el.Tag, attr.Value))
		}
		el.RemoveAttr("xmlns")
	}

	for _, child := range el.ChildElements() {
		if err := reconcileNamespace(op, child); err != nil {
			return err
		}
	}
	return nil
}

// Bytes serializes the document as pretty-printed UTF-8 using the default
// write options.
func (d *Document) Bytes() ([]byte, error) {
	return d.BytesWithOptions(NewWriteOptions())
}

// BytesWithOptions serializes the document as pretty-printed UTF-8.
func (d *Document) BytesWithOptions(opts WriteOptions) ([]byte, error) {
	const op = "Document.Bytes"

	if d == nil || d.doc == nil {
		return nil, errors.InvalidArgument(op, "", "nil document")
	}

	d.doc.Indent(opts.indentOrDefault())
	b, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Internal(op, fmt.Sprintf("document dump failed: %v", err))
	}
	if len(b) == 0 {
		return nil, errors.Internal(op, "document dump produced no output")
	}
	return b, nil
}

// Serialize wraps fragment into a VOTable document and returns the document
// as pretty-printed UTF-8 bytes. The fragment is consumed.
func Serialize(fragment *etree.Element) ([]byte, error) {
	doc, err := NewDocument(fragment)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}
