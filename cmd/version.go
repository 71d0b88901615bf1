package cmd

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tasklist/pkg/settings"
)

type versionData struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit"`
	BuildTime string `yaml:"buildTime"`
	GoVersion string `yaml:"goVersion"`
	BuildOS   string `yaml:"buildOS"`
	BuildArch string `yaml:"buildArch"`
}

// buildVersionData collects version and build information, preferring ldflags
// values and falling back to the embedded build info.
func buildVersionData() versionData {
	v := versionData{
		Name:      settings.CliBinaryName,
		Version:   settings.VersionInformation.BuildVersion,
		Commit:    settings.VersionInformation.Commit,
		BuildTime: settings.VersionInformation.BuildTime,
		GoVersion: runtime.Version(),
		BuildOS:   runtime.GOOS,
		BuildArch: runtime.GOARCH,
	}

	info, ok := rdebug.ReadBuildInfo()
	if !ok {
		return v
	}
	if info.GoVersion != "" {
		v.GoVersion = info.GoVersion
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && v.Commit == "unknown" && len(s.Value) >= 7 {
			v.Commit = s.Value[:7]
		}
	}
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(buildVersionData())
			if err != nil {
				return fmt.Errorf("marshal version: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
