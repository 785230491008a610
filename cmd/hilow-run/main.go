package main

import (
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"hilow/runtime-go/pkg/programs"
	"hilow/runtime-go/pkg/runtime"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "hilow-run",
	})

	registry := programs.Registry()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	requested := os.Args[1:]
	if len(requested) == 0 {
		requested = names
	}

	printer := runtime.NewPrinter(os.Stdout)
	for i, name := range requested {
		program, ok := registry[name]
		if !ok {
			logger.Error("unknown program", "name", name, "available", names)
			os.Exit(1)
		}
		if i > 0 {
			printer.Println("")
		}
		logger.Info("running", "program", name)
		program(printer)
	}
}
