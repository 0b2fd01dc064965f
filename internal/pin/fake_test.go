package pin

import (
	"errors"

	"github.com/pinwin/pinwin/internal/model"
)

// fakeDesktop implements platform.Reader and platform.ZOrderer against
// an in-memory window table, so the core can be exercised without live
// OS windows.
type fakeWindow struct {
	title   string
	visible bool
	tool    bool
	topmost bool
}

type fakeDesktop struct {
	windows    map[model.Handle]*fakeWindow
	order      []model.Handle
	foreground model.Handle

	enumErr  error
	setCalls int
}

func newFakeDesktop() *fakeDesktop {
	return &fakeDesktop{windows: make(map[model.Handle]*fakeWindow)}
}

func (d *fakeDesktop) add(h model.Handle, title string, visible bool) *fakeWindow {
	w := &fakeWindow{title: title, visible: visible}
	d.windows[h] = w
	d.order = append(d.order, h)
	return w
}

func (d *fakeDesktop) Enumerate() ([]model.Handle, error) {
	if d.enumErr != nil {
		return nil, d.enumErr
	}
	return append([]model.Handle(nil), d.order...), nil
}

func (d *fakeDesktop) IsVisible(h model.Handle) bool {
	w, ok := d.windows[h]
	return ok && w.visible
}

func (d *fakeDesktop) Title(h model.Handle) string {
	if w, ok := d.windows[h]; ok {
		return w.title
	}
	return ""
}

func (d *fakeDesktop) IsToolWindow(h model.Handle) bool {
	w, ok := d.windows[h]
	return ok && w.tool
}

func (d *fakeDesktop) IsTopmost(h model.Handle) bool {
	w, ok := d.windows[h]
	return ok && w.topmost
}

func (d *fakeDesktop) Foreground() model.Handle {
	return d.foreground
}

func (d *fakeDesktop) SetTopmost(h model.Handle, topmost bool) error {
	d.setCalls++
	w, ok := d.windows[h]
	if !ok {
		return errors.New("invalid window handle")
	}
	w.topmost = topmost
	return nil
}
