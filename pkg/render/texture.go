package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"unsafe"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// TextureOptions control how image data becomes a GPU texture.
type TextureOptions struct {
	// FlipVertical flips the pixel rows before upload, for images authored
	// with the origin at the bottom left.
	FlipVertical bool
}

// Texture owns a GPU texture handle. Uploaded textures repeat in both
// directions and sample with trilinear minification and linear magnification;
// a full mipmap chain is generated at upload time.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// UploadTexture copies a decoded image into a new GPU texture. The image is
// converted to tightly packed RGBA regardless of its source format. The
// texture is left unbound on return.
func UploadTexture(g GL, img image.Image, opts TextureOptions) *Texture {
	if opts.FlipVertical {
		img = transform.FlipV(img)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	t := &Texture{width: int32(bounds.Dx()), height: int32(bounds.Dy())}

	g.GenTextures(1, &t.id)
	g.BindTexture(Texture2D, t.id)
	defer g.BindTexture(Texture2D, 0)

	g.TexParameteri(Texture2D, TextureWrapS, Repeat)
	g.TexParameteri(Texture2D, TextureWrapT, Repeat)
	g.TexParameteri(Texture2D, TextureMinFilter, LinearMipmapLinear)
	g.TexParameteri(Texture2D, TextureMagFilter, Linear)

	var pixels unsafe.Pointer
	if len(rgba.Pix) > 0 {
		pixels = unsafe.Pointer(&rgba.Pix[0])
	}
	g.TexImage2D(Texture2D, 0, RGBA, t.width, t.height, 0, RGBA, UnsignedByte, pixels)
	g.GenerateMipmap(Texture2D)

	return t
}

// LoadTextureFile decodes an image file and uploads it as a GPU texture.
// JPEG, PNG and WebP are supported.
func LoadTextureFile(g GL, path string, opts TextureOptions) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return UploadTexture(g, img, opts), nil
}

// CheckerImage generates a procedural checkerboard, handy as a fallback when
// no texture file is configured.
func CheckerImage(width, height, checkSize int, c1, c2 color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			cx := x / checkSize
			cy := y / checkSize
			if (cx+cy)%2 == 0 {
				img.SetRGBA(x, y, c1)
			} else {
				img.SetRGBA(x, y, c2)
			}
		}
	}
	return img
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return int(t.width), int(t.height)
}

// Activate binds the texture for subsequent draw calls.
func (t *Texture) Activate(g GL) {
	g.BindTexture(Texture2D, t.id)
}

// Deactivate unbinds the texture.
func (t *Texture) Deactivate(g GL) {
	g.BindTexture(Texture2D, 0)
}
