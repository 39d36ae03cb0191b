package votable

import "fmt"

// Datatype enumerates the VOTable 1.1 datatype vocabulary used by the
// datatype attribute of PARAM and FIELD elements.
type Datatype int

const (
	// Bool is the VOTable "boolean" datatype.
	Bool Datatype = iota + 1
	// Bit is the VOTable "bit" datatype.
	Bit
	// Char is the VOTable "char" datatype.
	Char
	// UnicodeChar is the VOTable "unicodeChar" datatype.
	UnicodeChar
	// UnsignedByte is the VOTable "unsignedByte" datatype.
	UnsignedByte
	// Short is the VOTable "short" datatype.
	Short
	// Int is the VOTable "int" datatype.
	Int
	// Long is the VOTable "long" datatype.
	Long
	// Float is the VOTable "float" datatype.
	Float
	// Double is the VOTable "double" datatype.
	Double
	// FloatComplex is the VOTable "floatComplex" datatype.
	FloatComplex
	// DoubleComplex is the VOTable "doubleComplex" datatype.
	DoubleComplex
)

var datatypeNames = map[Datatype]string{
	Bool:          "boolean",
	Bit:           "bit",
	Char:          "char",
	UnicodeChar:   "unicodeChar",
	UnsignedByte:  "unsignedByte",
	Short:         "short",
	Int:           "int",
	Long:          "long",
	Float:         "float",
	Double:        "double",
	FloatComplex:  "floatComplex",
	DoubleComplex: "doubleComplex",
}

var datatypesByName = func() map[string]Datatype {
	m := make(map[string]Datatype, len(datatypeNames))
	for d, s := range datatypeNames {
		m[s] = d
	}
	return m
}()

// String returns the canonical VOTable spelling of the datatype, or a
// Datatype(N) placeholder for values outside the vocabulary.
func (d Datatype) String() string {
	if s, ok := datatypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Datatype(%d)", int(d))
}

// Valid reports whether d belongs to the VOTable datatype vocabulary.
func (d Datatype) Valid() bool {
	_, ok := datatypeNames[d]
	return ok
}

// DatatypeFromString maps a canonical VOTable datatype spelling back to its
// Datatype. The second result is false for unknown spellings.
func DatatypeFromString(s string) (Datatype, bool) {
	d, ok := datatypesByName[s]
	return d, ok
}

// Attribute enumerates the element attributes recognized by the builders
// and the attribute-lookup query.
type Attribute int

const (
	// AttrID selects the ID attribute.
	AttrID Attribute = iota + 1
	// AttrUnit selects the unit attribute.
	AttrUnit
	// AttrDatatype selects the datatype attribute.
	AttrDatatype
	// AttrPrecision selects the precision attribute.
	AttrPrecision
	// AttrWidth selects the width attribute.
	AttrWidth
	// AttrRef selects the ref attribute.
	AttrRef
	// AttrName selects the name attribute.
	AttrName
	// AttrUCD selects the ucd attribute.
	AttrUCD
	// AttrUtype selects the utype attribute.
	AttrUtype
	// AttrArraySize selects the arraysize attribute.
	AttrArraySize
	// AttrValue selects the value attribute.
	AttrValue
)

var attributeNames = map[Attribute]string{
	AttrID:        "ID",
	AttrUnit:      "unit",
	AttrDatatype:  "datatype",
	AttrPrecision: "precision",
	AttrWidth:     "width",
	AttrRef:       "ref",
	AttrName:      "name",
	AttrUCD:       "ucd",
	AttrUtype:     "utype",
	AttrArraySize: "arraysize",
	AttrValue:     "value",
}

// String returns the canonical attribute name, or an Attribute(N)
// placeholder for values outside the vocabulary.
func (a Attribute) String() string {
	if s, ok := attributeNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Valid reports whether a belongs to the recognized attribute set.
func (a Attribute) Valid() bool {
	_, ok := attributeNames[a]
	return ok
}
