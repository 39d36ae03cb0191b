package votable_test

import (
	stderrors "errors"
	"testing"

	"github.com/beevik/etree"

	"github.com/johnveitch/votable"
	"github.com/johnveitch/votable/errors"
)

// attrKeys returns the attribute keys of el in declaration order.
func attrKeys(el *etree.Element) []string {
	keys := make([]string, 0, len(el.Attr))
	for _, a := range el.Attr {
		keys = append(keys, a.Key)
	}
	return keys
}

func attrValue(t *testing.T, el *etree.Element, key string) string {
	t.Helper()
	attr := el.SelectAttr(key)
	if attr == nil {
		t.Fatalf("element %s has no attribute %q", el.Tag, key)
	}
	return attr.Value
}

func TestNewParamNode(t *testing.T) {
	el, err := votable.NewParamNode("Freq", "Hz", votable.Double, "", "10.5")
	if err != nil {
		t.Fatalf("NewParamNode() error = %v", err)
	}

	if el.Tag != "PARAM" {
		t.Errorf("Tag = %q, want PARAM", el.Tag)
	}
	wantOrder := []string{"name", "unit", "datatype", "value"}
	gotOrder := attrKeys(el)
	if len(gotOrder) != len(wantOrder) {
		t.Fatalf("attribute keys = %v, want %v", gotOrder, wantOrder)
	}
	for i, key := range wantOrder {
		if gotOrder[i] != key {
			t.Fatalf("attribute keys = %v, want %v", gotOrder, wantOrder)
		}
	}
	if got := attrValue(t, el, "name"); got != "Freq" {
		t.Errorf("name = %q, want Freq", got)
	}
	if got := attrValue(t, el, "unit"); got != "Hz" {
		t.Errorf("unit = %q, want Hz", got)
	}
	if got := attrValue(t, el, "datatype"); got != "double" {
		t.Errorf("datatype = %q, want double", got)
	}
	if got := attrValue(t, el, "value"); got != "10.5" {
		t.Errorf("value = %q, want 10.5", got)
	}
}

func TestNewParamNodeOptionalAttributesOmitted(t *testing.T) {
	el, err := votable.NewParamNode("N", "", votable.Int, "", "7")
	if err != nil {
		t.Fatalf("NewParamNode() error = %v", err)
	}
	if el.SelectAttr("unit") != nil {
		t.Error("empty unit emitted")
	}
	if el.SelectAttr("arraysize") != nil {
		t.Error("empty arraysize emitted")
	}
}

func TestNewParamNodeArraySize(t *testing.T) {
	el, err := votable.NewParamNode("mask", "", votable.Bit, "8", "1 0 1 0 1 0 1 0")
	if err != nil {
		t.Fatalf("NewParamNode() error = %v", err)
	}
	if got := attrValue(t, el, "arraysize"); got != "8" {
		t.Errorf("arraysize = %q, want 8", got)
	}
}

func TestNewParamNodeEmptyValueAllowed(t *testing.T) {
	el, err := votable.NewParamNode("empty", "", votable.Char, "", "")
	if err != nil {
		t.Fatalf("NewParamNode() error = %v", err)
	}
	if got := attrValue(t, el, "value"); got != "" {
		t.Errorf("value = %q, want empty string", got)
	}
}

func TestNewParamNodeMissingName(t *testing.T) {
	el, err := votable.NewParamNode("", "", votable.Double, "", "0")
	if el != nil {
		t.Fatal("NewParamNode() returned a node on error")
	}
	if got := errors.CodeOf(err); got != errors.ErrInvalidArgument {
		t.Fatalf("CodeOf(err) = %q, want %q", got, errors.ErrInvalidArgument)
	}

	var build *errors.Build
	if !stderrors.As(err, &build) {
		t.Fatalf("error %v is not a *errors.Build", err)
	}
	if build.Attr != "name" {
		t.Errorf("Build.Attr = %q, want name", build.Attr)
	}
}

func TestNewParamNodeUnknownDatatype(t *testing.T) {
	for _, d := range []votable.Datatype{0, 99} {
		el, err := votable.NewParamNode("x", "", d, "", "0")
		if el != nil {
			t.Fatalf("NewParamNode(datatype=%d) returned a node on error", d)
		}
		if got := errors.CodeOf(err); got != errors.ErrInvalidArgument {
			t.Errorf("CodeOf(err) = %q, want %q", got, errors.ErrInvalidArgument)
		}
	}
}
