package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/displaylayout/pkg/scene"
)

const snapshotUsage = "gridlayout snapshot <layout.yaml>"

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Print the scene tree as JSON",
		Long: `Snapshot builds the layout file and prints the scene tree as JSON.

Node ids are stable across runs, so the output can be checked in and diffed.`,
		Usage: snapshotUsage,
		Run:   runSnapshot,
	})
}

func runSnapshot(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unknown flag %s\n\nUsage: %s", arg, snapshotUsage)
		}
	}
	path, err := layoutPath(args, snapshotUsage)
	if err != nil {
		return err
	}
	screen, err := loadScreen(path)
	if err != nil {
		return err
	}
	data, err := scene.Snapshot(screen.Root).JSON()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
