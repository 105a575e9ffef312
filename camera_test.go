package easel

import (
	"math"
	"testing"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
	if cam.IsScrolling() || cam.IsZooming() {
		t.Error("new camera is animating")
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	// At (0,0), zoom 1, no rotation the view translates to the viewport center.
	sx, sy := cam.viewMatrix().apply(0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	cam.MarkDirty()
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0
	cam.MarkDirty()

	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("zoom 2x: 1 world unit = %f screen pixels, want 2.0", sx1-sx0)
	}
}

func TestCameraRotation90(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Rotation = math.Pi / 2
	cam.MarkDirty()

	// Rotate(-π/2) maps (1,0) to (0,-1), then translates to the viewport center.
	sx, sy := cam.WorldToScreen(1, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 299, epsilon) {
		t.Errorf("90° rotation: WorldToScreen(1,0) = (%f,%f), want (400,299)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 42
	cam.Y = -17
	cam.Zoom = 1.5
	cam.Rotation = 0.3
	cam.MarkDirty()

	origWX, origWY := 123.0, -456.0
	sx, sy := cam.WorldToScreen(origWX, origWY)
	wx, wy := cam.ScreenToWorld(sx, sy)

	if !approxEqual(wx, origWX, 1e-6) || !approxEqual(wy, origWY, 1e-6) {
		t.Errorf("roundtrip: got (%f,%f), want (%f,%f)", wx, wy, origWX, origWY)
	}
}

func TestVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	cam.MarkDirty()
	b := cam.VisibleBounds()
	if !approxEqual(b.X, 0, 1e-6) || !approxEqual(b.Y, 0, 1e-6) ||
		!approxEqual(b.Width, 800, 1e-6) || !approxEqual(b.Height, 600, 1e-6) {
		t.Errorf("VisibleBounds = %+v, want (0,0,800,600)", b)
	}

	cam.Zoom = 2.0
	cam.MarkDirty()
	b = cam.VisibleBounds()
	if !approxEqual(b.Width, 400, 1e-6) || !approxEqual(b.Height, 300, 1e-6) {
		t.Errorf("VisibleBounds at zoom 2 size = (%f,%f), want (400,300)", b.Width, b.Height)
	}
}

func TestCameraFollowSettlesOnTarget(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	target := &Vec2[float64]{X: 200, Y: 150}

	cam.Follow(target, 10, -20, SpringStiff)
	cam.Update()
	if cam.X <= 0 || cam.X >= 210 {
		t.Errorf("after one tick cam.X = %f, want between 0 and 210", cam.X)
	}
	for i := 0; i < 600; i++ {
		cam.Update()
	}
	if cam.X != 210 || cam.Y != 130 {
		t.Errorf("settled cam = (%f,%f), want (210,130)", cam.X, cam.Y)
	}

	// Moving the target wakes the springs.
	target.X = 300
	for i := 0; i < 600; i++ {
		cam.Update()
	}
	if cam.X != 310 {
		t.Errorf("cam.X after target moved = %f, want 310", cam.X)
	}
}

func TestCameraUnfollow(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	target := &Vec2[float64]{X: 100, Y: 100}

	cam.Follow(target, 0, 0, SpringStiff)
	for i := 0; i < 600; i++ {
		cam.Update()
	}
	cam.Unfollow()

	target.X = 500
	cam.Update()
	if cam.X != 100 {
		t.Errorf("after unfollow: cam.X = %f, want 100", cam.X)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 10, Linear)

	for i := 0; i < 5; i++ {
		cam.Update()
	}
	if !approxEqual(cam.X, 50, epsilon) || !approxEqual(cam.Y, 100, epsilon) {
		t.Errorf("scroll halfway: cam = (%f,%f), want (50,100)", cam.X, cam.Y)
	}

	for i := 0; i < 5; i++ {
		cam.Update()
	}
	if cam.X != 100 || cam.Y != 200 {
		t.Errorf("scroll end: cam = (%f,%f), want (100,200)", cam.X, cam.Y)
	}
	if cam.IsScrolling() {
		t.Error("IsScrolling after scroll finished")
	}
}

func TestCameraScrollToTile(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollToTile(3, 2, 32, 32, 1, Linear)
	cam.Update()
	if cam.X != 112 || cam.Y != 80 {
		t.Errorf("ScrollToTile(3,2): cam = (%f,%f), want (112,80)", cam.X, cam.Y)
	}
}

func TestCameraZoomTo(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ZoomTo(3, 4, EaseInOutSine)
	if !cam.IsZooming() {
		t.Fatal("IsZooming = false after ZoomTo")
	}
	for i := 0; i < 4; i++ {
		cam.Update()
	}
	if !approxEqual(cam.Zoom, 3, epsilon) || cam.IsZooming() {
		t.Errorf("Zoom = %f zooming=%v, want 3 false", cam.Zoom, cam.IsZooming())
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 2000, Height: 1000})

	cam.X = -100
	cam.Y = 5000
	cam.ClampToBounds()
	if cam.X != 400 || cam.Y != 700 {
		t.Errorf("clamped cam = (%f,%f), want (400,700)", cam.X, cam.Y)
	}

	cam.ClearBounds()
	cam.X = -100
	cam.ClampToBounds()
	if cam.X != -100 {
		t.Errorf("ClampToBounds with bounds cleared moved X to %f", cam.X)
	}
}

func TestCameraBoundsSmallWorld(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 400, Height: 300})
	cam.X = 1000
	cam.Update()
	if cam.X != 200 || cam.Y != 150 {
		t.Errorf("small world: cam = (%f,%f), want centered (200,150)", cam.X, cam.Y)
	}
}

func TestRectContainsIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(10, 10) || r.Contains(11, 5) {
		t.Error("Contains edge handling wrong")
	}
	if !r.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("adjacent rects should intersect")
	}
	if r.Intersects(Rect{X: 11, Y: 11, Width: 1, Height: 1}) {
		t.Error("disjoint rects intersect")
	}
}

func TestCameraCanSee(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	cam.MarkDirty()
	// Visible world area is [0,800]x[0,600].
	if !cam.CanSeePoint(799, 599) || cam.CanSeePoint(801, 300) {
		t.Error("CanSeePoint wrong at the view edge")
	}
	if !cam.CanSee(Rect{X: 790, Y: 590, Width: 50, Height: 50}) {
		t.Error("overlapping rect not visible")
	}
	if cam.CanSee(Rect{X: 900, Y: 0, Width: 10, Height: 10}) {
		t.Error("offscreen rect visible")
	}

	cam.ZoomTo(2, 1, Linear)
	cam.Update()
	// At zoom 2 the view shrinks to [200,600]x[150,450].
	if cam.CanSee(Rect{X: 700, Y: 300, Width: 10, Height: 10}) {
		t.Error("rect outside zoomed view visible")
	}
	if !cam.CanSeePoint(500, 400) {
		t.Error("point inside zoomed view not visible")
	}
}

func TestAffineInvertSingular(t *testing.T) {
	if got := (affine{0, 0, 0, 0, 5, 5}).invert(); got != identityAffine {
		t.Errorf("invert(singular) = %v, want identity", got)
	}
}
