package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp returned error: %v", err)
	}
	if len(id) != 26 {
		t.Errorf("ULID length = %d, want 26", len(id))
	}
}

func TestDecodeImage(t *testing.T) {
	u := New()

	img, err := u.DecodeImage(encodeJPEG(t, 64, 48))
	if err != nil {
		t.Fatalf("DecodeImage returned error: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("decoded dimensions = %dx%d, want 64x48", img.Bounds().Dx(), img.Bounds().Dy())
	}

	if _, err := u.DecodeImage([]byte("not an image")); err == nil {
		t.Error("DecodeImage on garbage expected error, got nil")
	}
}

func TestImageToRGBA(t *testing.T) {
	u := New()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	buf, width, height := u.ImageToRGBA(img)
	if width != 4 || height != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", width, height)
	}
	if len(buf) != 4*3*4 {
		t.Fatalf("buffer length = %d, want %d", len(buf), 4*3*4)
	}
	if buf[0] != 10 || buf[1] != 20 || buf[2] != 30 || buf[3] != 255 {
		t.Errorf("first pixel = %v, want [10 20 30 255]", buf[:4])
	}
}

func TestResizeImageDownscales(t *testing.T) {
	u := New()

	resized, err := u.ResizeImage(encodeJPEG(t, 200, 100), 50)
	if err != nil {
		t.Fatalf("ResizeImage returned error: %v", err)
	}

	img, err := u.DecodeImage(resized)
	if err != nil {
		t.Fatalf("failed to decode resized image: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 25 {
		t.Errorf("resized dimensions = %dx%d, want 50x25", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestResizeImageKeepsSmallImages(t *testing.T) {
	u := New()

	resized, err := u.ResizeImage(encodeJPEG(t, 40, 30), 100)
	if err != nil {
		t.Fatalf("ResizeImage returned error: %v", err)
	}

	img, err := u.DecodeImage(resized)
	if err != nil {
		t.Fatalf("failed to decode re-encoded image: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
