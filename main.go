package main

import (
	"embed"

	"github.com/zapagenda/zapagenda/cmd"
)

//go:embed views
var embedViews embed.FS

func main() {
	cmd.Execute(embedViews)
}
