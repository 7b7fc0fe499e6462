package session

import (
	"errors"
	"io/fs"
	"testing"
)

func TestBuildSnippet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		file     string
		contents string
		want     string
	}{
		{
			name:     "with file",
			input:    "@app/route.tsx hello",
			file:     "app/route.tsx",
			contents: "X",
			want:     "---\n```app/route.tsx\nX\n```\n@app/route.tsx hello\n---",
		},
		{
			name:  "without file",
			input: "@x",
			want:  "---\n@x\n---",
		},
		{
			name:  "empty input",
			input: "",
			want:  "---\n\n---",
		},
		{
			name:     "contents kept verbatim",
			input:    "@a.txt",
			file:     "a.txt",
			contents: "line 1\n\tline 2\n",
			want:     "---\n```a.txt\nline 1\n\tline 2\n\n```\n@a.txt\n---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSnippet(tt.input, tt.file, tt.contents); got != tt.want {
				t.Errorf("BuildSnippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileReadErrorUnwraps(t *testing.T) {
	err := error(&FileReadError{Path: "gone.txt", Err: fs.ErrNotExist})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected error to wrap fs.ErrNotExist, got %v", err)
	}
	var fre *FileReadError
	if !errors.As(err, &fre) || fre.Path != "gone.txt" {
		t.Fatalf("expected *FileReadError for gone.txt, got %#v", err)
	}
	if err.Error() != "read gone.txt: file does not exist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
