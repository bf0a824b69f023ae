package theme

import "sync"

// ClientDoc stands for a document already rendered in the browser. It records reflected
// root attributes so they can be sent back to the client, and reports the control as
// present because the page was served with it.
type ClientDoc struct {
	mu    sync.Mutex
	attrs map[string]string
}

// NewClientDoc makes an empty ClientDoc.
func NewClientDoc() *ClientDoc {
	return &ClientDoc{attrs: map[string]string{}}
}

// SetRootAttr records the attribute.
func (d *ClientDoc) SetRootAttr(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs[name] = value
}

// RootAttr returns a recorded attribute.
func (d *ClientDoc) RootAttr(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.attrs[name]
	return v, ok
}

// HasControl always reports true.
func (d *ClientDoc) HasControl(string) bool { return true }

// AppendControl is a no-op.
func (d *ClientDoc) AppendControl(Control) error { return nil }
