// Package imaging applies the colorutil engine to raster images.
//
// It samples pixel colors and reports them in the engine's hex, rgb(a) and
// hsl(a) forms, extracts dominant colors, runs inversion and grayscale
// reduction over whole images, and renders solid color swatches. Image
// results are returned as base64-encoded PNG so they can travel inside MCP
// text content.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Alpha
//
// Pixels are read as non-premultiplied NRGBA. A pixel that is not fully
// opaque is reported with an explicit alpha, so its rgb string takes the
// rgba(...) form.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual operations are
// stateless and can be called concurrently on different images.
package imaging
