// Package content holds the static documentation corpus: one markdown
// document and one YAML listing file per topic, embedded in the binary.
// The corpus is parsed once on first use and is read-only for the
// process lifetime.
package content

import (
	"embed"
	"fmt"
	"sync"

	"github.com/arthur-debert/jlman/pkg/errors"
	"github.com/arthur-debert/jlman/pkg/listing"
	"github.com/arthur-debert/jlman/pkg/topic"
)

//go:embed docs/*.md
var docsFS embed.FS

//go:embed listings/*.yaml
var listingsFS embed.FS

var (
	loadOnce sync.Once
	loadErr  error
	docs     map[topic.Topic]string
	listings map[topic.Topic][]listing.Listing
)

// load parses the embedded corpus. A malformed asset is a build defect,
// surfaced as an error from every accessor rather than a panic.
func load() {
	docs = make(map[topic.Topic]string)
	listings = make(map[topic.Topic][]listing.Listing)

	for _, t := range topic.All() {
		data, err := docsFS.ReadFile(fmt.Sprintf("docs/%s.md", t))
		if err != nil {
			loadErr = errors.Wrapf(err, errors.ErrDocMissing, "no document for topic %s", t)
			return
		}
		docs[t] = string(data)

		raw, err := listingsFS.ReadFile(fmt.Sprintf("listings/%s.yaml", t))
		if err != nil {
			loadErr = errors.Wrapf(err, errors.ErrListingMissing, "no listings for topic %s", t)
			return
		}
		f, err := listing.Parse(raw)
		if err != nil {
			loadErr = errors.Wrapf(err, errors.ErrListingParse, "listings for topic %s", t)
			return
		}
		if f.Topic != string(t) {
			loadErr = errors.Newf(errors.ErrListingParse, "listing file for %s declares topic %s", t, f.Topic)
			return
		}
		listings[t] = f.Listings
	}
}

// Doc returns the long-form markdown document for a topic
func Doc(t topic.Topic) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}
	doc, ok := docs[t]
	if !ok {
		return "", errors.Newf(errors.ErrDocMissing, "no document for topic %s", t)
	}
	return doc, nil
}

// Listings returns the authored listings for a topic, in authoring order
func Listings(t topic.Topic) ([]listing.Listing, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	ls, ok := listings[t]
	if !ok {
		return nil, errors.Newf(errors.ErrListingMissing, "no listings for topic %s", t)
	}
	return ls, nil
}
