package parse

import "testing"

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "links code spans and references",
			in:   "A tool for chat [Source Code](http://x) `MIT` Demo.",
			want: "A tool for chat",
		},
		{
			name: "awesome-selfhosted layout",
			in:   "Browser-based IMAP client. ([Demo](https://demo.example), [Source Code](https://github.com/r/r)) `GPL-3.0` `PHP`",
			want: "Browser-based IMAP client",
		},
		{
			name: "link label is dropped",
			in:   "Fork of [Etherpad](https://etherpad.org) with extras",
			want: "Fork of with extras",
		},
		{
			name: "comma glue",
			in:   "Wiki engine, Demo, and more.",
			want: "Wiki engine, and more",
		},
		{
			name: "demo inside a word survives",
			in:   "Democratic polling tool.",
			want: "Democratic polling tool",
		},
		{
			name: "parenthetical remnants",
			in:   "Chat server (`Go`, ) done",
			want: "Chat server done",
		},
		{
			name: "space before period",
			in:   "Photo gallery  . Simple",
			want: "Photo gallery. Simple",
		},
		{
			name: "html tags stripped",
			in:   "Notes<br/> app &amp; sync",
			want: "Notes app & sync",
		},
		{
			name: "only one trailing period removed",
			in:   "Ends with dots..",
			want: "Ends with dots.",
		},
		{
			name: "only decoration",
			in:   "[Source Code](https://github.com/x/y) `MIT`",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDescription(tt.in); got != tt.want {
				t.Errorf("NormalizeDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractLicense(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"`MIT` - A chat app", "MIT"},
		{"A chat app `AGPL-3.0` `Go`", "AGPL-3.0"},
		{"A chat app `go` `Apache-2.0`", "Apache-2.0"},
		{"A chat app", ""},
		{"`` empty", ""},
	}
	for _, tt := range tests {
		if got := ExtractLicense(tt.in); got != tt.want {
			t.Errorf("ExtractLicense(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
