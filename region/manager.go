package region

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/flowtext/layout"
)

// Manager composes the independent regions of a document: one body,
// optional header and footer bands, and any number of framed text-box
// and table-cell regions. It owns the shared event hub and the single
// focus controller.
type Manager struct {
	regions []*Region
	byID    map[string]*Region
	focus   *FocusController
	hub     *Hub
}

// NewManager creates an empty manager. A nil timer selects the wall
// clock for caret blinking.
func NewManager(timer BlinkTimer) *Manager {
	if timer == nil {
		timer = &SystemTimer{}
	}
	return &Manager{
		byID:  make(map[string]*Region),
		focus: NewFocusController(timer, 0),
		hub:   NewHub(),
	}
}

// Hub returns the manager's event hub.
func (mgr *Manager) Hub() *Hub { return mgr.hub }

// Add registers a region. Later additions stack above earlier ones for
// hit-testing, so framed regions added after the body win clicks over
// it.
func (mgr *Manager) Add(r *Region) error {
	if _, ok := mgr.byID[r.id]; ok {
		return fmt.Errorf("region: duplicate region id %q", r.id)
	}
	r.AttachHub(mgr.hub)
	mgr.regions = append(mgr.regions, r)
	mgr.byID[r.id] = r
	return nil
}

// Region returns a region by id.
func (mgr *Manager) Region(id string) (*Region, error) {
	r, ok := mgr.byID[id]
	if !ok {
		return nil, ErrUnknownRegion
	}
	return r, nil
}

// Focus transfers the caret to the named region.
func (mgr *Manager) Focus(id string) error {
	r, err := mgr.Region(id)
	if err != nil {
		return err
	}
	mgr.focus.FocusOn(r)
	return nil
}

// Blur releases the caret from whichever region holds it.
func (mgr *Manager) Blur() {
	mgr.focus.Blur()
}

// Focused returns the region holding the caret, or nil.
func (mgr *Manager) Focused() *Region {
	return mgr.focus.Owner()
}

// CaretVisible reports the blink phase of the caret.
func (mgr *Manager) CaretVisible() bool {
	return mgr.focus.CaretVisible()
}

// LayoutAll reflows every region. A failing region does not keep the
// others from being laid out; the joined errors are returned.
func (mgr *Manager) LayoutAll() error {
	var errs []error
	for _, r := range mgr.regions {
		if err := r.Layout(); err != nil {
			errs = append(errs, fmt.Errorf("region %q: %w", r.id, err))
		}
	}
	return errors.Join(errs...)
}

// RegionAt finds the topmost region under a point in page coordinates.
func (mgr *Manager) RegionAt(pt layout.Point, page int) (*Region, bool) {
	for i := len(mgr.regions) - 1; i >= 0; i-- {
		r := mgr.regions[i]
		if _, ok := r.GlobalToLocal(pt, page); ok {
			return r, true
		}
	}
	return nil, false
}

// Click dispatches a click in page coordinates: the topmost region
// under the point receives focus and resolves the click locally.
func (mgr *Manager) Click(pt layout.Point, page int) error {
	r, ok := mgr.RegionAt(pt, page)
	if !ok {
		return ErrInvalidPosition
	}
	mgr.focus.FocusOn(r)
	local, _ := r.GlobalToLocal(pt, page)
	return r.Click(page, local)
}

// Close shuts down the manager, stopping the blink timer and closing
// the hub.
func (mgr *Manager) Close() {
	mgr.focus.Blur()
	mgr.hub.Close()
}
