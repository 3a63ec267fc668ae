// Package buildinfo exposes build metadata (commit, build time, branch) as a
// read-only value. Rendering it on a dashboard is left to the caller.
//
// Commit and time come from the VCS stamp the Go toolchain embeds. The branch
// is not stamped by the toolchain; set it at link time:
//
//	go build -ldflags "-X github.com/chopshop166/commandrobot/buildinfo.gitBranch=main"
//
// Values set with -ldflags take precedence over the VCS stamp.
package buildinfo
