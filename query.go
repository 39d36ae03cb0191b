package votable

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/johnveitch/votable/errors"
)

// maxXPathLen bounds the rendered XPath expression length.
const maxXPathLen = 500

// ResourceParamAttribute returns the requested attribute of the PARAM named
// paramName inside the RESOURCE identified by the utype resourceType and
// the name resourceName.
//
// The lookup evaluates
//
//	//vot:RESOURCE[@utype='<resourceType>' and @name='<resourceName>']/vot:PARAM[@name='<paramName>']/@<attr>
//
// with vot bound to the VOTable namespace and returns the first match. It
// fails with vot-not-found when no such path exists.
func (d *Document) ResourceParamAttribute(resourceType, resourceName, paramName string, attr Attribute) (string, error) {
	const op = "Document.ResourceParamAttribute"

	if d == nil || d.doc == nil {
		return "", errors.InvalidArgument(op, "", "nil document")
	}
	if !attr.Valid() {
		return "", errors.InvalidArgument(op, "", fmt.Sprintf("unknown attribute %d", int(attr)))
	}

	expr := fmt.Sprintf("//%[1]s:RESOURCE[@utype='%[2]s' and @name='%[3]s']/%[1]s:PARAM[@name='%[4]s']/@%[5]s",
		NamespacePrefix, resourceType, resourceName, paramName, attr)
	return d.nodeContent(op, expr)
}

// NodeContentByXPath evaluates expr against the document, with the vot
// prefix bound to the VOTable namespace, and returns the text content of
// the first matching node or attribute.
func (d *Document) NodeContentByXPath(expr string) (string, error) {
	const op = "Document.NodeContentByXPath"

	if d == nil || d.doc == nil {
		return "", errors.InvalidArgument(op, "", "nil document")
	}
	if expr == "" {
		return "", errors.InvalidArgument(op, "", "empty XPath expression")
	}
	return d.nodeContent(op, expr)
}

func (d *Document) nodeContent(op, expr string) (string, error) {
	if len(expr) > maxXPathLen {
		return "", errors.Internal(op, fmt.Sprintf("XPath expression exceeds %d characters", maxXPathLen))
	}

	compiled, err := xpath.CompileWithNS(expr, map[string]string{NamespacePrefix: NamespaceURL})
	if err != nil {
		return "", errors.Internal(op, fmt.Sprintf("XPath construction failed for %q: %v", expr, err))
	}

	// The query engine navigates its own node model, so the document is
	// re-parsed for evaluation.
	b, err := d.doc.WriteToBytes()
	if err != nil {
		return "", errors.Internal(op, fmt.Sprintf("document dump failed: %v", err))
	}
	parsed, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return "", errors.Internal(op, fmt.Sprintf("document re-parse failed: %v", err))
	}

	node := xmlquery.QuerySelector(parsed, compiled)
	if node == nil {
		return "", errors.NotFound(op, fmt.Sprintf("no node matches %q", expr))
	}
	return node.InnerText(), nil
}
