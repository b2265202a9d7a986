package main

import (
	"context"
	"io"

	"github.com/fwojciec/docwatch"
	"github.com/fwojciec/docwatch/fs"
	"github.com/fwojciec/docwatch/monitor"
	"github.com/fwojciec/docwatch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Sources docwatch.SourceService
	Runs    docwatch.RunLog
	Monitor *monitor.Monitor
	Reports *fs.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Add     AddCmd     `cmd:"" help:"Register a documentation source"`
	List    ListCmd    `cmd:"" help:"List all registered sources"`
	Remove  RemoveCmd  `cmd:"" help:"Remove a source"`
	Run     RunCmd     `cmd:"" help:"Fetch all sources and report changes"`
	History HistoryCmd `cmd:"" help:"Show recent run history"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	ID   string `arg:"" help:"Source identifier"`
	Kind string `arg:"" enum:"feed,page" help:"Source kind: feed or page"`
	URL  string `arg:"" help:"Feed or page URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	ID    string `arg:"" help:"Source identifier"`
	Force bool   `help:"Confirm removal"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Browser     bool    `short:"b" help:"Fetch pages with headless Chrome for JavaScript-rendered docs"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64 `name:"rps" default:"1.0" help:"Max requests per second per domain"`
	Report      bool    `short:"r" help:"Generate a markdown digest with Gemini"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Number of runs to show"`
}
