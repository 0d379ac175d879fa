package main

import (
	"os"

	"github.com/ayoisaiah/tomate/app"
	"github.com/ayoisaiah/tomate/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	report.Quit(run(os.Args))
}
