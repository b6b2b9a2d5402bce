package epub

import "testing"

func TestAppendTitleSuffix(t *testing.T) {
	tests := []struct {
		name   string
		opf    string
		want   string
		wantOK bool
	}{
		{
			name:   "single title",
			opf:    `<metadata><dc:title>My Book</dc:title></metadata>`,
			want:   `<metadata><dc:title>My Book - converted to metric</dc:title></metadata>`,
			wantOK: true,
		},
		{
			name:   "only first title",
			opf:    `<dc:title id="t1">Main</dc:title><dc:title id="t2">Sub</dc:title>`,
			want:   `<dc:title id="t1">Main - converted to metric</dc:title><dc:title id="t2">Sub</dc:title>`,
			wantOK: true,
		},
		{
			name:   "no title",
			opf:    `<metadata><dc:creator>A</dc:creator></metadata>`,
			want:   `<metadata><dc:creator>A</dc:creator></metadata>`,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AppendTitleSuffix([]byte(tt.opf), "converted to metric")
			if ok != tt.wantOK {
				t.Errorf("AppendTitleSuffix() ok = %v, want %v", ok, tt.wantOK)
			}
			if string(got) != tt.want {
				t.Errorf("AppendTitleSuffix() = %q, want %q", got, tt.want)
			}
		})
	}
}
