package session

import (
	"reflect"
	"testing"
)

func TestActiveMention(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStart int
		wantQuery string
		wantOK    bool
	}{
		{"empty", "", -1, "", false},
		{"no at", "hello world", -1, "", false},
		{"bare at", "@", 0, "", true},
		{"at start", "@rou", 0, "rou", true},
		{"after text", "look at @app/ro", 8, "app/ro", true},
		{"closed by space", "@app/route.tsx ", -1, "", false},
		{"closed then text", "@app/route.tsx hello", -1, "", false},
		{"second mention", "@a.go and @b", 10, "b", true},
		{"last at wins", "a@b@c", 3, "c", true},
		{"escaped", `\@foo`, -1, "", false},
		{"escaped after real", `@x\@foo`, 0, `x\@foo`, true},
		{"unicode before", "héllo @wö", 7, "wö", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, query, ok := ActiveMention(tt.line)
			if start != tt.wantStart || query != tt.wantQuery || ok != tt.wantOK {
				t.Errorf("ActiveMention(%q) = (%d, %q, %v), want (%d, %q, %v)",
					tt.line, start, query, ok, tt.wantStart, tt.wantQuery, tt.wantOK)
			}
		})
	}
}

func TestMentions(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"none", "plain text", nil},
		{"single", "@app/route.tsx hello", []string{"app/route.tsx"}},
		{"end of line", "explain @main.go", []string{"main.go"}},
		{"several", "@a.go vs @b.go", []string{"a.go", "b.go"}},
		{"bare at skipped", "@ nothing", nil},
		{"escaped skipped", `\@a.go @b.go`, []string{"b.go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mentions(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Mentions(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}
