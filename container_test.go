package epub

import (
	"errors"
	"testing"
)

func TestLocatePackage(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		want    string
		wantErr error
	}{
		{
			name: "container.xml",
			files: map[string]string{
				"META-INF/container.xml": validContainerXML,
				"OEBPS/content.opf":      `<package/>`,
			},
			want: "OEBPS/content.opf",
		},
		{
			name: "case insensitive container path",
			files: map[string]string{
				"meta-inf/CONTAINER.XML": validContainerXML,
			},
			want: "OEBPS/content.opf",
		},
		{
			name: "BOM before container.xml",
			files: map[string]string{
				"META-INF/container.xml": "\xEF\xBB\xBF" + validContainerXML,
			},
			want: "OEBPS/content.opf",
		},
		{
			name: "fallback to first .opf entry",
			files: map[string]string{
				"book/package.OPF": `<package/>`,
			},
			want: "book/package.OPF",
		},
		{
			name: "prefers rootfile with package media type",
			files: map[string]string{
				"META-INF/container.xml": `<container><rootfiles>
  <rootfile full-path="other.pdf" media-type="application/pdf"/>
  <rootfile full-path="main.opf" media-type="application/oebps-package+xml"/>
</rootfiles></container>`,
			},
			want: "main.opf",
		},
		{
			name: "no rootfiles",
			files: map[string]string{
				"META-INF/container.xml": `<container><rootfiles/></container>`,
			},
			wantErr: ErrInvalidEPub,
		},
		{
			name: "no opf anywhere",
			files: map[string]string{
				"OEBPS/ch1.xhtml": `<html/>`,
			},
			wantErr: ErrInvalidEPub,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := locatePackage(newArchive(buildTestZip(t, tt.files)))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("locatePackage() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("locatePackage() = %q, want %q", got, tt.want)
			}
		})
	}
}
