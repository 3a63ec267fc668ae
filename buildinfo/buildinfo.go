package buildinfo

import "runtime/debug"

// Unknown is reported for any value that could not be determined.
const Unknown = "???"

// Set with -ldflags -X.
var (
	gitHash   string
	buildTime string
	gitBranch string
)

// Data is the build metadata of the running binary.
type Data struct {
	GitHash   string
	BuildTime string
	GitBranch string
	Modified  string
	GoVersion string
}

// Attrs returns the data as alternating key/value pairs for a logger.
func (d Data) Attrs() []any {
	return []any{
		"git_hash", d.GitHash,
		"build_time", d.BuildTime,
		"git_branch", d.GitBranch,
		"modified", d.Modified,
		"go_version", d.GoVersion,
	}
}

// Read returns the build metadata of the running binary.
func Read() Data {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(info, overrides{hash: gitHash, time: buildTime, branch: gitBranch})
}

type overrides struct {
	hash   string
	time   string
	branch string
}

func fromBuildInfo(info *debug.BuildInfo, o overrides) Data {
	d := Data{
		GitHash:   Unknown,
		BuildTime: Unknown,
		GitBranch: Unknown,
		Modified:  Unknown,
		GoVersion: Unknown,
	}

	if info != nil {
		if info.GoVersion != "" {
			d.GoVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			if s.Value == "" {
				continue
			}
			switch s.Key {
			case "vcs.revision":
				d.GitHash = s.Value
			case "vcs.time":
				d.BuildTime = s.Value
			case "vcs.modified":
				d.Modified = s.Value
			}
		}
	}

	if o.hash != "" {
		d.GitHash = o.hash
	}
	if o.time != "" {
		d.BuildTime = o.time
	}
	if o.branch != "" {
		d.GitBranch = o.branch
	}
	return d
}
