// Package votable builds, serializes, and queries documents in the IVOA
// VOTable 1.1 interchange format for tabular astronomical data.
//
// Callers assemble leaf fragments with the element builders (NewParamNode,
// NewFieldNode, NewResourceNode, NewTableNode), wrap a fragment into a full
// document with NewDocument, and emit pretty-printed UTF-8 bytes with
// Serialize or Document.Bytes. Individual PARAM attributes can be read back
// from a wrapped document with Document.ResourceParamAttribute.
//
// Fragments are etree elements. Appending a fragment to a parent, or
// wrapping it into a document, consumes it: the fragment is relinked under
// the new parent and must not be reused by the caller. Documents and
// fragments are not safe for concurrent use; confine each to one goroutine
// at a time.
package votable

const (
	// Version is the VOTable schema version emitted on the document root.
	Version = "1.1"

	// NamespaceURL is the default namespace bound on the VOTABLE root.
	NamespaceURL = "http://www.ivoa.net/xml/VOTable/v" + Version

	// SchemaURL is the schema location referenced by the document root.
	SchemaURL = NamespaceURL

	// NamespacePrefix is the prefix bound to NamespaceURL in XPath queries.
	NamespacePrefix = "vot"
)

const xsiNamespaceURL = "http://www.w3.org/2001/XMLSchema-instance"
