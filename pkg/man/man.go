// Package man is the public lookup surface: explain a topic, list its
// operations, or print the type taxonomy. Topics are addressed either by
// free-text name (permissive, silent on a miss) or by a runtime value
// (strict, errors on an unsupported kind).
package man

import (
	"io"
	"os"

	"github.com/arthur-debert/jlman/pkg/content"
	"github.com/arthur-debert/jlman/pkg/errors"
	"github.com/arthur-debert/jlman/pkg/kind"
	"github.com/arthur-debert/jlman/pkg/listing"
	"github.com/arthur-debert/jlman/pkg/logging"
	"github.com/arthur-debert/jlman/pkg/registry"
	"github.com/arthur-debert/jlman/pkg/render"
	"github.com/arthur-debert/jlman/pkg/resolve"
	"github.com/arthur-debert/jlman/pkg/topic"
)

// Manual resolves topics and dispatches to their handlers. A Manual is
// immutable after New and safe for concurrent use.
type Manual struct {
	renderer render.Renderer
	handlers registry.Registry[topic.Handler]
}

// Option configures a Manual
type Option func(*Manual)

// WithRenderer sets the renderer used for long-form documents
func WithRenderer(r render.Renderer) Option {
	return func(m *Manual) {
		m.renderer = r
	}
}

// New builds a Manual with one handler registered per topic
func New(opts ...Option) *Manual {
	m := &Manual{
		renderer: &render.PlainRenderer{},
		handlers: registry.New[topic.Handler](),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, t := range topic.All() {
		registry.MustRegister(m.handlers, string(t), newHandler(t, m.renderer))
	}
	return m
}

// Explain resolves a value's category and writes the bound topic's
// long-form documentation. Values outside every category are a caller
// error.
func (m *Manual) Explain(w io.Writer, v any) error {
	c, err := kind.Resolve(v)
	if err != nil {
		return err
	}
	return m.explainTopic(w, c.Topic())
}

// ExplainTopic resolves a free-text name and writes the matching
// topic's documentation. An unrecognized name writes nothing and
// returns nil: name lookup absorbs misses silently.
func (m *Manual) ExplainTopic(w io.Writer, name string) error {
	t, ok := resolve.Name(name)
	if !ok {
		return nil
	}
	return m.explainTopic(w, t)
}

func (m *Manual) explainTopic(w io.Writer, t topic.Topic) error {
	h, err := m.handlers.Get(string(t))
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "no handler for topic %s", t)
	}
	return h.Explain(w)
}

// ListOperations resolves a value's category and writes the bound
// topic's operation listings
func (m *Manual) ListOperations(w io.Writer, v any, extended bool) error {
	c, err := kind.Resolve(v)
	if err != nil {
		return err
	}
	return m.listTopic(w, c.Topic(), extended)
}

// ListOperationsTopic resolves a free-text name and writes the matching
// topic's operation listings. Unrecognized names are absorbed silently.
func (m *Manual) ListOperationsTopic(w io.Writer, name string, extended bool) error {
	t, ok := resolve.Name(name)
	if !ok {
		return nil
	}
	return m.listTopic(w, t, extended)
}

func (m *Manual) listTopic(w io.Writer, t topic.Topic, extended bool) error {
	h, err := m.handlers.Get(string(t))
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "no handler for topic %s", t)
	}
	return h.List(w, extended)
}

// TypeTree writes the category taxonomy rooted at the named node, or at
// the root when name is empty. An unknown node name is a caller error.
func (m *Manual) TypeTree(w io.Writer, name string) error {
	root := kind.Taxonomy()
	if name != "" {
		root = kind.FindNode(name)
		if root == nil {
			return errors.Newf(errors.ErrCategoryInvalid, "no type named %s in the taxonomy", name)
		}
	}
	return render.PrintTree(w, root)
}

// handler binds one topic to the shared content corpus and renderer
type handler struct {
	t        topic.Topic
	renderer render.Renderer
}

func newHandler(t topic.Topic, r render.Renderer) topic.Handler {
	return &handler{t: t, renderer: r}
}

func (h *handler) Topic() topic.Topic {
	return h.t
}

func (h *handler) Explain(w io.Writer) error {
	doc, err := content.Doc(h.t)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("man")
	logger.Debug().Str("topic", string(h.t)).Msg("explaining topic")

	if err := render.Header(w, h.t.Title()); err != nil {
		return err
	}
	_, err = io.WriteString(w, h.renderer.Render(doc))
	return err
}

func (h *handler) List(w io.Writer, extended bool) error {
	ls, err := content.Listings(h.t)
	if err != nil {
		return err
	}
	return render.PrintListings(w, listing.Select(ls, extended))
}

// defaultManual backs the package-level convenience functions
var defaultManual = New()

// Explain writes documentation for a value's kind to stdout
func Explain(v any) error {
	return defaultManual.Explain(os.Stdout, v)
}

// ExplainTopic writes documentation for a named topic to stdout
func ExplainTopic(name string) error {
	return defaultManual.ExplainTopic(os.Stdout, name)
}

// ListOperations writes a value's operation listings to stdout
func ListOperations(v any, extended bool) error {
	return defaultManual.ListOperations(os.Stdout, v, extended)
}

// ListOperationsTopic writes a named topic's operation listings to stdout
func ListOperationsTopic(name string, extended bool) error {
	return defaultManual.ListOperationsTopic(os.Stdout, name, extended)
}

// TypeTree writes the taxonomy rooted at name to stdout
func TypeTree(name string) error {
	return defaultManual.TypeTree(os.Stdout, name)
}
