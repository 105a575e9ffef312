package easel

import "math"

// Camera is a 2D view driven by the animation primitives: it follows a
// target with a pair of springs, scrolls with a tween pair and zooms with a
// single tween. Call Update once per tick.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	followTarget *Vec2[float64]
	followOffset Vec2[float64]
	followX      *SpringTween[float64]
	followY      *SpringTween[float64]

	scroll *Parallel[float64, float64]
	zoom   *Tween[float64, float64]

	view, invView affine
	dirty         bool
}

// NewCamera creates a Camera with zoom 1 and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Follow makes the camera track target plus an offset. The camera is pulled
// along by springs built from cfg, so a stiffer config follows more tightly.
func (c *Camera) Follow(target *Vec2[float64], offsetX, offsetY float64, cfg SpringConfig) {
	c.followTarget = target
	c.followOffset = Vec2[float64]{offsetX, offsetY}
	c.followX = NewSpringTween(c.X, target.X+offsetX, cfg)
	c.followY = NewSpringTween(c.Y, target.Y+offsetY, cfg)
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
	c.followX, c.followY = nil, nil
}

// ScrollTo animates the camera to the given world position over duration
// ticks.
func (c *Camera) ScrollTo(x, y float64, duration uint32, e Easing) {
	cfg := TweenConfig{Easing: e}
	c.scroll = NewParallel(
		NewTween(c.X, x, duration, cfg),
		NewTween(c.Y, y, duration, cfg),
	)
}

// ScrollToTile scrolls to the center of the given tile in a tile-based layout.
func (c *Camera) ScrollToTile(tileX, tileY int, tileW, tileH float64, duration uint32, e Easing) {
	worldX := float64(tileX)*tileW + tileW/2
	worldY := float64(tileY)*tileH + tileH/2
	c.ScrollTo(worldX, worldY, duration, e)
}

// ZoomTo animates Zoom to zoom over duration ticks.
func (c *Camera) ZoomTo(zoom float64, duration uint32, e Easing) {
	c.zoom = NewTween(c.Zoom, zoom, duration, TweenConfig{Easing: e})
}

// IsScrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) IsScrolling() bool { return c.scroll != nil }

// IsZooming reports whether a ZoomTo animation is in progress.
func (c *Camera) IsZooming() bool { return c.zoom != nil }

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update advances follow, scroll, zoom and bounds clamping by one tick.
func (c *Camera) Update() {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	if c.followTarget != nil {
		tx := c.followTarget.X + c.followOffset.X
		ty := c.followTarget.Y + c.followOffset.Y
		if tx != c.followX.Target() {
			c.followX.SetTarget(tx)
		}
		if ty != c.followY.Target() {
			c.followY.SetTarget(ty)
		}
		c.X = c.followX.Tick()
		c.Y = c.followY.Tick()
	}

	// Scrolling overrides following for its duration.
	if c.scroll != nil {
		xy := c.scroll.Tick()
		c.X, c.Y = xy[0], xy[1]
		if c.scroll.IsFinished() {
			c.scroll = nil
		}
	}

	if c.zoom != nil {
		c.Zoom = c.zoom.Tick()
		if c.zoom.IsFinished() {
			c.zoom = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// viewMatrix recomputes the cached view matrix if dirty.
//
// view = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) viewMatrix() affine {
	if !c.dirty {
		return c.view
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	c.view = affine{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*c.X+sin*c.Y),
		cy + z*(-sin*c.X-cos*c.Y),
	}
	c.invView = c.view.invert()
	return c.view
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.viewMatrix().apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.viewMatrix()
	return c.invView.apply(sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.viewMatrix()
	inv := c.invView

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := inv.apply(vx, vy)
	x1, y1 := inv.apply(vr, vy)
	x2, y2 := inv.apply(vr, vb)
	x3, y3 := inv.apply(vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CanSee reports whether r overlaps the visible world area. It tests against
// VisibleBounds, so a rotated camera also sees rects near its corners.
func (c *Camera) CanSee(r Rect) bool {
	return c.VisibleBounds().Intersects(r)
}

// CanSeePoint reports whether the world point lies within VisibleBounds.
func (c *Camera) CanSeePoint(wx, wy float64) bool {
	return c.VisibleBounds().Contains(wx, wy)
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// changing X, Y, Zoom or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
