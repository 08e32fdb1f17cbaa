package version

import (
	"github.com/carlmjohnson/versioninfo"
)

/* injected */

var release string

/* ** */

type InfoGit struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
}

type Info struct {
	Release string  `json:"release"`
	Git     InfoGit `json:"git"`
}

func Get() *Info {
	r := release
	if r == "" {
		r = "unknown"
	}

	return &Info{
		Release: r,
		Git: InfoGit{
			Commit: versioninfo.Revision,
			Dirty:  versioninfo.DirtyBuild,
		},
	}
}
