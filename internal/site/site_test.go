package site

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func newTestSite(t *testing.T, files map[string]string, opts ...Option) *Site {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, filepath.Join("/site", name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return New(fs, "/site", opts...)
}

func TestListPages(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"Boskone.txt":            "a",
		"Boskone.xml":            "<x/>",
		"Bob_Tucker.txt":         "b",
		"index_people.txt":       "c",
		"Log 202101010000.txt":   "d",
		"Notes.xml":              "<x/>",
		"Boskone/attachment.txt": "e",
	}

	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{
			name: "default excludes",
			want: []string{"Bob_Tucker", "Boskone"},
		},
		{
			name: "no excludes",
			opts: []Option{WithExcludePrefixes()},
			want: []string{"Bob_Tucker", "Boskone", "Log 202101010000", "index_people"},
		},
		{
			name: "custom excludes",
			opts: []Option{WithExcludePrefixes("Bo")},
			want: []string{"Log 202101010000", "index_people"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestSite(t, files, tt.opts...).ListPages()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListPages() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		s := New(afero.NewMemMapFs(), "/nowhere")
		if _, err := s.ListPages(); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestLoadPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, map[string]string{
		"Boskone.txt":  "[[Category:Conseries]]",
		"Boskone.xml":  "<page><title>Boskone</title></page>",
		"Orphan.txt":   "text only",
		"Metadata.xml": "<page/>",
	})

	t.Run("both files", func(t *testing.T) {
		t.Parallel()
		markup, metadata, err := s.LoadPage("Boskone")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(markup) != "[[Category:Conseries]]" {
			t.Errorf("markup = %q", markup)
		}
		if string(metadata) != "<page><title>Boskone</title></page>" {
			t.Errorf("metadata = %q", metadata)
		}
	})

	for _, id := range []string{"Orphan", "Metadata", "Nobody"} {
		t.Run("missing "+id, func(t *testing.T) {
			t.Parallel()
			_, _, err := s.LoadPage(id)
			if !errors.Is(err, ErrPageNotFound) {
				t.Errorf("expected ErrPageNotFound, got %v", err)
			}
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("expected os.ErrNotExist, got %v", err)
			}
		})
	}
}
