package imagemeta

import (
	"testing"
)

// TestInspect tests content sniffing on images without EXIF.
func TestInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		data            []byte
		wantContentType string
	}{
		{
			name:            "jpeg without exif",
			data:            []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x43, 0x00, 0x08},
			wantContentType: "image/jpeg",
		},
		{
			name:            "png",
			data:            []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
			wantContentType: "image/png",
		},
		{
			name:            "gif",
			data:            []byte("GIF89a\x01\x00\x01\x00"),
			wantContentType: "image/gif",
		},
		{
			name:            "html error page",
			data:            []byte("<html><body>404</body></html>"),
			wantContentType: "text/html; charset=utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := Inspect(tt.data)
			if meta.ContentType != tt.wantContentType {
				t.Errorf("expected content type %q, got %q", tt.wantContentType, meta.ContentType)
			}
			if meta.Size != len(tt.data) {
				t.Errorf("expected size %d, got %d", len(tt.data), meta.Size)
			}
			if meta.HasEXIF() {
				t.Errorf("expected no EXIF tags, got %+v", meta)
			}
		})
	}
}

// TestMeta_Attrs tests that empty tags are left out of log attributes.
func TestMeta_Attrs(t *testing.T) {
	t.Parallel()

	meta := Meta{ContentType: "image/jpeg", Size: 10, Artist: "Kalevi Puistolinna"}
	attrs := meta.Attrs()

	if len(attrs) != 6 {
		t.Fatalf("expected 3 key-value pairs, got %v", attrs)
	}
	if attrs[4] != "artist" || attrs[5] != "Kalevi Puistolinna" {
		t.Errorf("expected artist pair last, got %v", attrs[4:])
	}
	if !meta.HasEXIF() {
		t.Error("expected HasEXIF with an artist tag")
	}
}
