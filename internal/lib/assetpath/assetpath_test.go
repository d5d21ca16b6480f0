package assetpath_test

import (
	"testing"

	"bluearc/internal/lib/assetpath"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		in       string
		want     string
	}{
		{name: "empty input", basePath: "/Blue-arc", in: "", want: ""},
		{name: "prefixes local path", basePath: "/Blue-arc", in: "/jobs/cvs/cvs.jpg", want: "/Blue-arc/jobs/cvs/cvs.jpg"},
		{name: "adds leading slash", basePath: "/Blue-arc", in: "jobs/cvs/cvs.jpg", want: "/Blue-arc/jobs/cvs/cvs.jpg"},
		{name: "already resolved", basePath: "/Blue-arc", in: "/Blue-arc/jobs/cvs.jpg", want: "/Blue-arc/jobs/cvs.jpg"},
		{name: "https passthrough", basePath: "/Blue-arc", in: "https://cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		{name: "http passthrough", basePath: "/Blue-arc", in: "http://cdn.example.com/a.jpg", want: "http://cdn.example.com/a.jpg"},
		{name: "scheme relative passthrough", basePath: "/Blue-arc", in: "//cdn.example.com/a.jpg", want: "//cdn.example.com/a.jpg"},
		{name: "no base path", basePath: "", in: "jobs/a.jpg", want: "/jobs/a.jpg"},
		{name: "trailing slash on base path", basePath: "/Blue-arc/", in: "/a.jpg", want: "/Blue-arc/a.jpg"},
		{name: "similar prefix is not the base path", basePath: "/Blue-arc", in: "/Blue-arcade/a.jpg", want: "/Blue-arc/Blue-arcade/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assetpath.NewResolver(tt.basePath).Resolve(tt.in))
		})
	}
}

func TestResolver_Idempotent(t *testing.T) {
	r := assetpath.NewResolver("/Blue-arc")

	for _, in := range []string{"/jobs/a.jpg", "jobs/b.mp4", "https://x.y/z.png", "//x.y/z.png"} {
		once := r.Resolve(in)
		assert.Equal(t, once, r.Resolve(once), in)
	}
}
