// Package render defines the narrow drawing contracts the simulation core
// consumes. Window creation, image decoding and font rendering live behind
// these interfaces and are provided by a frontend such as pkg/render/engo.
package render

// Image is an immutable pixel buffer assigned to a game element at
// construction. Only its dimensions are visible to the core; they determine
// the element's bounding box.
type Image interface {
	Width() int
	Height() int
}

// Surface is the draw target for one frame. The frontend clears it once per
// frame before elements draw, so elements only ever blit on top of the
// current frame. Blit order matters: later blits paint over earlier ones.
type Surface interface {
	// Size returns the fixed pixel dimensions of the surface.
	Size() (w, h int)
	// Blit draws the image with its top-left corner at (x, y).
	Blit(img Image, x, y float64)
	// DrawText renders a single diagnostic text line at (x, y).
	DrawText(text string, x, y float64)
}

// ImageLoader resolves caller-supplied asset paths into images.
type ImageLoader interface {
	Load(path string) (Image, error)
}

// Scaler produces resized copies of an image. SmoothScale can fail for
// pixel formats it cannot filter; Scale is the lower-quality fallback and
// always succeeds.
type Scaler interface {
	SmoothScale(img Image, w, h int) (Image, error)
	Scale(img Image, w, h int) Image
}
