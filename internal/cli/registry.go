package cli

import "github.com/SAP-F-2025/doccli/internal/models"

// Registry holds the static operation table, preserving registration order
// for listings.
type Registry struct {
	order []string
	cmds  map[string]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Descriptor)}
}

func (r *Registry) Register(d *Descriptor) {
	if _, exists := r.cmds[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.cmds[d.Name] = d
}

func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.cmds[name]
	return d, ok
}

// All returns every descriptor in registration order.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.cmds[name])
	}
	return out
}

// Visible returns the descriptors listable for the given session state, in
// registration order.
func (r *Registry) Visible(sess *models.Session) []*Descriptor {
	var out []*Descriptor
	for _, d := range r.All() {
		if Visible(d, sess) {
			out = append(out, d)
		}
	}
	return out
}
