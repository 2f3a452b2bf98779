package version

import "testing"

func setBuild(t *testing.T, c, b, tg, d string) {
	oc, ob, ot, od := commit, branch, tag, dirty
	commit, branch, tag, dirty = c, b, tg, d
	t.Cleanup(func() { commit, branch, tag, dirty = oc, ob, ot, od })
}

func TestString(t *testing.T) {
	for _, tt := range []struct {
		name                string
		commit, branch, tag string
		dirty               string
		want                string
	}{
		{name: "unset", want: "dev"},
		{name: "dev", commit: "dev", want: "dev"},
		{name: "tagged", commit: "abc123", branch: "main", tag: "v1.0.0", dirty: "false", want: "v1.0.0"},
		{name: "untagged", commit: "abc123", branch: "main", tag: "none", dirty: "false", want: "abc123 (main)"},
		{name: "dirty", commit: "abc123", branch: "main", tag: "v1.0.0", dirty: "true", want: "abc123+ (main)"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, tt.commit, tt.branch, tt.tag, tt.dirty)
			if got := String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
