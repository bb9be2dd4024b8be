// Package export writes a machine-readable XML catalog of the manual:
// every topic, its accepted name spellings, and its operation listings.
package export

import (
	"io"

	"github.com/beevik/etree"

	"github.com/arthur-debert/jlman/pkg/content"
	"github.com/arthur-debert/jlman/pkg/errors"
	"github.com/arthur-debert/jlman/pkg/listing"
	"github.com/arthur-debert/jlman/pkg/resolve"
)

// Index builds the XML catalog document. Topics, listings and groups
// appear in authoring order.
func Index() (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	manual := doc.CreateElement("manual")
	manual.CreateAttr("language", "julia")

	for _, b := range resolve.Table() {
		t := manual.CreateElement("topic")
		t.CreateAttr("name", string(b.Topic))
		t.CreateAttr("title", b.Topic.Title())

		for _, alias := range b.Aliases {
			t.CreateElement("alias").SetText(alias)
		}

		ls, err := content.Listings(b.Topic)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrExport, "exporting topic %s", b.Topic)
		}
		for _, l := range ls {
			le := t.CreateElement("listing")
			le.CreateAttr("name", l.Name)
			if l.Stdlib {
				le.CreateAttr("stdlib", "true")
			}
			for _, g := range l.Groups {
				addGroup(le, g)
			}
		}
	}

	return doc, nil
}

func addGroup(parent *etree.Element, g listing.Group) {
	ge := parent.CreateElement("group")
	ge.CreateAttr("name", g.Name)
	for _, name := range g.Names {
		ge.CreateElement("op").SetText(name)
	}
	for _, sub := range g.Groups {
		addGroup(ge, sub)
	}
}

// Write renders the catalog to w with indentation
func Write(w io.Writer) error {
	doc, err := Index()
	if err != nil {
		return err
	}
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrExport, "writing catalog")
	}
	return nil
}
