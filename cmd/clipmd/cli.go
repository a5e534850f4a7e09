package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/clipmd"
)

// Engine names accepted by --engine.
const (
	EngineSelector    = "selector"
	EngineReadability = "readability"
	EngineTrafilatura = "trafilatura"
)

// Renderer names accepted by --renderer.
const (
	RendererNative     = "native"
	RendererCommonMark = "commonmark"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Clipper   clipmd.PageClipper
	Clipboard clipmd.Clipboard
	Clips     clipmd.ClipService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log pipeline steps to stderr"`
	DB      string `name:"db" env:"CLIPMD_DB" default:"${db}" help:"Clip history database path"`

	Copy    CopyCmd    `cmd:"" default:"withargs" help:"Copy the main content of pages as Markdown (default)"`
	History HistoryCmd `cmd:"" help:"Manage saved clips"`
}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Sources     []string      `arg:"" name:"source" help:"URL, file path, file:// URL, or - for stdin"`
	Engine      string        `short:"e" enum:"selector,readability,trafilatura" default:"selector" help:"Content extraction engine (selector, readability, trafilatura)"`
	Renderer    string        `short:"r" enum:"native,commonmark" default:"native" help:"Markdown renderer (native, commonmark)"`
	Browser     bool          `short:"b" help:"Render URLs in headless Chrome"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	Print       bool          `short:"p" help:"Print Markdown to stdout instead of copying it"`
	Output      string        `short:"o" help:"Also write Markdown to this file"`
	JSON        bool          `name:"json" help:"Print the extraction response as JSON (single source)"`
	Save        bool          `short:"s" help:"Record the clip in history"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"1" help:"List saved clips, newest first"`
	Show   HistoryShowCmd   `cmd:"" help:"Print a saved clip"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a saved clip"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Limit  int    `short:"n" default:"20" help:"Maximum number of clips to list"`
	Source string `help:"Only list clips of this source"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID   string `arg:"" help:"Clip ID"`
	Copy bool   `help:"Copy the clip to the clipboard instead of printing it"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID    string `arg:"" help:"Clip ID"`
	Force bool   `help:"Confirm deletion"`
}
