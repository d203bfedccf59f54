package region

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/layout"
	"github.com/npillmayer/flowtext/metrics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fakeTimer is an injectable blink timer recording its lifecycle.
type fakeTimer struct {
	running  bool
	starts   int
	stops    int
	overlaps int
	tick     func()
}

func (ft *fakeTimer) Start(interval time.Duration, tick func()) {
	if ft.running {
		ft.overlaps++
	}
	ft.running = true
	ft.starts++
	ft.tick = tick
}

func (ft *fakeTimer) Stop() {
	ft.running = false
	ft.stops++
}

func testGeometry() PageGeometry {
	return PageGeometry{
		PageWidth: 12, PageHeight: 30,
		MarginLeft: 1, MarginRight: 1, MarginTop: 1, MarginBottom: 1,
	}
}

func measurer() layout.Measurer {
	return metrics.NewFixedWidth(1, 10, nil)
}

// waitFor drains hub events until pred accepts one.
func waitFor(t *testing.T, ch <-chan interface{}, pred func(interface{}) bool) interface{} {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if pred(ev) {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event")
			return nil
		}
	}
}

func TestFocusTransferKeepsOneTimer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	ft := &fakeTimer{}
	mgr := NewManager(ft)
	defer mgr.Close()
	a := New("a", Body, flowtext.NewText(), testGeometry(), measurer())
	b := New("b", Body, flowtext.NewText(), testGeometry(), measurer())
	if err := mgr.Add(a); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := mgr.Add(b); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := mgr.Focus("a"); err != nil {
		t.Fatalf("Focus failed: %v", err)
	}
	if err := mgr.Focus("b"); err != nil {
		t.Fatalf("Focus failed: %v", err)
	}
	if ft.overlaps != 0 {
		t.Fatalf("two blink timers were active concurrently")
	}
	if a.Focused() || !b.Focused() {
		t.Fatalf("focus state wrong: a=%v b=%v", a.Focused(), b.Focused())
	}
	if mgr.Focused() != b {
		t.Fatalf("manager reports wrong owner")
	}
	mgr.Blur()
	if ft.running {
		t.Fatalf("blur must stop the blink timer")
	}
	if b.Focused() {
		t.Fatalf("blur must clear the owner's focus flag")
	}
}

func TestFocusOnSameRegionIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	ft := &fakeTimer{}
	fc := NewFocusController(ft, 0)
	r := New("a", Body, flowtext.NewText(), testGeometry(), measurer())
	fc.FocusOn(r)
	starts := ft.starts
	fc.FocusOn(r)
	if ft.starts != starts {
		t.Fatalf("refocusing the owner must not restart the timer")
	}
}

func TestCaretBlinkToggles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	ft := &fakeTimer{}
	fc := NewFocusController(ft, 0)
	r := New("a", Body, flowtext.NewText(), testGeometry(), measurer())
	fc.FocusOn(r)
	if !fc.CaretVisible() {
		t.Fatalf("caret must be visible right after focus")
	}
	ft.tick()
	if fc.CaretVisible() {
		t.Fatalf("caret must hide after one blink interval")
	}
	ft.tick()
	if !fc.CaretVisible() {
		t.Fatalf("caret must show again after the next interval")
	}
}

func TestSystemTimerStopsCleanlyUnderFire(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	st := &SystemTimer{}
	for i := 0; i < 500; i++ {
		st.Start(time.Microsecond, func() {})
		time.Sleep(time.Microsecond)
		st.Stop()
	}
}

func TestCaretVisibilitySafeWhileBlinking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	fc := NewFocusController(&SystemTimer{}, time.Microsecond)
	r := New("a", Body, flowtext.NewText(), testGeometry(), measurer())
	fc.FocusOn(r)
	for i := 0; i < 1000; i++ {
		fc.CaretVisible()
	}
	fc.Blur()
	if fc.CaretVisible() {
		t.Fatalf("caret must hide after blur")
	}
}

func TestLayoutPublishesOverflowAndShrink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	hub := NewHub()
	defer hub.Close()
	ch, ok := hub.Subscribe(context.Background(), 32)
	if !ok {
		t.Fatalf("subscription failed")
	}
	text := flowtext.TextFromString("aaa bbb ccc ddd eee fff")
	r := New("body", Body, text, testGeometry(), measurer())
	r.AttachHub(hub)
	if err := r.Layout(); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if r.PageCount() < 2 {
		t.Fatalf("expected the text to overflow one page, got %d", r.PageCount())
	}
	ev := waitFor(t, ch, func(ev interface{}) bool {
		_, ok := ev.(TextOverflow)
		return ok
	})
	if ov := ev.(TextOverflow); ov.RegionID != "body" || ov.NewPageCount != r.PageCount() {
		t.Fatalf("unexpected overflow event: %+v", ov)
	}
	if err := text.Delete(3, text.Len()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := r.Layout(); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	ev = waitFor(t, ch, func(ev interface{}) bool {
		_, ok := ev.(PagesShrunk)
		return ok
	})
	if sh := ev.(PagesShrunk); sh.RegionID != "body" || sh.Removed < 1 {
		t.Fatalf("unexpected shrink event: %+v", sh)
	}
}

func TestRegionRepublishesTextEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	hub := NewHub()
	defer hub.Close()
	ch, _ := hub.Subscribe(context.Background(), 32)
	text := flowtext.NewText()
	r := New("body", Body, text, testGeometry(), measurer())
	r.AttachHub(hub)
	if err := text.Insert(0, "hi"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	ev := waitFor(t, ch, func(ev interface{}) bool {
		_, ok := ev.(ContentChanged)
		return ok
	})
	if cc := ev.(ContentChanged); cc.RegionID != "body" || cc.From != 0 || cc.To != 2 {
		t.Fatalf("unexpected content event: %+v", cc)
	}
}

func TestHeaderRepeatsOnEveryPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	geom := testGeometry()
	geom.HeaderHeight = 10
	text := flowtext.TextFromString("title")
	r := New("hdr", Header, text, geom, measurer())
	if err := r.Layout(); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	for _, page := range []int{0, 1, 7} {
		lines := r.Lines(page)
		if len(lines) == 0 {
			t.Fatalf("header missing on page %d", page)
		}
		if b, ok := r.Bounds(page); !ok || b.Height != 10 || b.Y != 1 {
			t.Fatalf("unexpected header bounds on page %d: %+v", page, b)
		}
	}
}

func TestFramedRegionBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	r := New("box", TextBoxRegion, flowtext.NewText(), testGeometry(), measurer())
	frame := layout.Rect{X: 3, Y: 4, Width: 5, Height: 6}
	r.SetFrame(2, frame)
	if _, ok := r.Bounds(1); ok {
		t.Fatalf("framed region must not appear on other pages")
	}
	if b, ok := r.Bounds(2); !ok || b != frame {
		t.Fatalf("unexpected frame bounds: %+v", b)
	}
	if pt, ok := r.GlobalToLocal(layout.Point{X: 4, Y: 5}, 2); !ok || pt.X != 1 || pt.Y != 1 {
		t.Fatalf("unexpected local point: %+v ok=%v", pt, ok)
	}
}

func TestSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	hub := NewHub()
	defer hub.Close()
	ch, _ := hub.Subscribe(context.Background(), 32)
	text := flowtext.TextFromString("hello world")
	r := New("body", Body, text, testGeometry(), measurer())
	r.AttachHub(hub)
	if err := r.Select(6, 11); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if from, to, active := r.Selection(); !active || from != 6 || to != 11 {
		t.Fatalf("unexpected selection: [%d,%d) active=%v", from, to, active)
	}
	waitFor(t, ch, func(ev interface{}) bool {
		sc, ok := ev.(SelectionChanged)
		return ok && sc.Active && sc.From == 6 && sc.To == 11
	})
	// caret placement clears the selection
	if err := r.SetCursor(3); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}
	if _, _, active := r.Selection(); active {
		t.Fatalf("selection must clear on caret placement")
	}
	if err := r.SetCursor(99); err != ErrInvalidPosition {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestRenderMergedLeavesRegionUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowtext")
	defer teardown()
	text := flowtext.TextFromString("Dear ,")
	if _, err := text.InsertField(5, "user.name", "guest", 0); err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	r := New("body", Body, text, testGeometry(), measurer())
	if err := r.Layout(); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	editPages := r.PageCount()
	pages, err := r.RenderMerged(map[string]interface{}{
		"user": map[string]interface{}{"name": "Jane"},
	})
	if err != nil {
		t.Fatalf("RenderMerged failed: %v", err)
	}
	if len(pages) == 0 {
		t.Fatalf("expected merged pages")
	}
	if r.PageCount() != editPages {
		t.Fatalf("merge rendering must not replace the region's layout")
	}
	if text.String()[5] == 'J' {
		t.Fatalf("merge rendering must not mutate the region's text")
	}
}
