package version

import (
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"
)

// APIVersion is the version of the HTTP contract served by the API.
// It changes only when the response shapes change, not on every build.
const APIVersion = "1.0.0"

const devVersion = "1.0.0-dev"

var (
	// AppName is the service name reported by the health endpoint.
	AppName = "AzureIdentitiesApi"

	// Version is the build version, set with -ldflags at release time.
	Version = devVersion

	// Revision is the git commit the binary was built from.
	Revision = "HEAD"

	// BuildDate is when the binary was built.
	BuildDate = ""
)

// Info describes the running binary.
type Info struct {
	App       string
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		App:       AppName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// LogValue lets Info be passed straight to slog.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", i.Version),
		slog.String("revision", i.Revision),
		slog.String("build", i.BuildDate),
		slog.String("go", i.GoVersion),
		slog.String("platform", i.Platform),
	)
}

// String renders `AzureIdentitiesApi 1.0.0 (5e23a4; go1.23.6; linux/amd64)`.
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s; %s; %s)", i.App, i.Version, i.Revision, i.GoVersion, i.Platform)
}

// Detailed is Get().String(), used for the CLI --version output.
func Detailed() string {
	return Get().String()
}

// applyBuildInfo fills in values that ldflags left at their defaults.
func applyBuildInfo(mainVersion string, settings map[string]string) {
	if Version == devVersion || Version == "" {
		if mainVersion != "" && mainVersion != "(devel)" {
			Version = strings.TrimPrefix(mainVersion, "v")
		}
	}

	if Revision == "HEAD" || Revision == "" {
		if r := settings["vcs.revision"]; r != "" {
			if settings["vcs.modified"] == "true" {
				r += "-dirty"
			}
			Revision = r
		}
	}

	if BuildDate == "" {
		BuildDate = settings["vcs.time"]
	}
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	applyBuildInfo(info.Main.Version, settings)
}
