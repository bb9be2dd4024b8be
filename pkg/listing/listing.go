// Package listing models the categorized operation listings attached to
// documentation topics. Listings are authored as YAML assets, parsed once
// at startup and treated as immutable from then on. Group order is
// authoring order and is never resorted: grouping order conveys topical
// relationship.
package listing

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/jlman/pkg/errors"
)

// Group is a named, ordered sequence of operation names. A group may
// carry one level of sub-groups instead of (or in addition to) direct
// names, as with the Methods group of the dicts listing.
type Group struct {
	Name   string   `yaml:"name"`
	Names  []string `yaml:"names,omitempty"`
	Groups []Group  `yaml:"groups,omitempty"`
}

// Listing is a named ordered collection of groups for one topic.
// Listings marked Stdlib cover standard-library-adjacent operations and
// are only shown when the caller asks for the extended set.
type Listing struct {
	Name   string  `yaml:"name"`
	Stdlib bool    `yaml:"stdlib,omitempty"`
	Groups []Group `yaml:"groups"`
}

// File is one authored YAML document: all listings for a single topic
type File struct {
	Topic    string    `yaml:"topic"`
	Listings []Listing `yaml:"listings"`
}

// Parse decodes one topic's listing document
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrListingParse, "parsing listing document")
	}
	if f.Topic == "" {
		return nil, errors.New(errors.ErrListingParse, "listing document has no topic")
	}
	return &f, nil
}

// Select returns the listings to show for one call: every core listing,
// plus stdlib listings when extended is true. Order is preserved.
func Select(listings []Listing, extended bool) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Stdlib && !extended {
			continue
		}
		out = append(out, l)
	}
	return out
}
