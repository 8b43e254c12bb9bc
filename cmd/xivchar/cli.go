package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/malippew/xivchar"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Characters xivchar.CharacterService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lang    string        `default:"eu" enum:"na,eu,fr,de,jp" env:"XIVCHAR_LANG" help:"Lodestone edition (na, eu, fr, de, jp)"`
	Timeout time.Duration `default:"10s" env:"XIVCHAR_TIMEOUT" help:"HTTP request timeout"`
	RPS     float64       `name:"rps" default:"0" env:"XIVCHAR_RPS" help:"Maximum requests per second (0 for no limit)"`
	Retries int           `default:"0" help:"Retry failed fetches with backoff"`
	Verbose bool          `short:"v" help:"Log requests and malformed entries"`

	Search SearchCmd `cmd:"" help:"Search characters by name"`
	Show   ShowCmd   `cmd:"" help:"Show character profiles"`
	Worlds WorldsCmd `cmd:"" help:"List data centers and their worlds"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name   string `arg:"" help:"Character name"`
	Server string `short:"s" help:"Only search this world"`
	DC     string `name:"dc" short:"d" help:"Only keep characters on this data center"`
	Sort   bool   `help:"Sort results by name"`
	JSON   bool   `name:"json" help:"Print results as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	IDs         []string `arg:"" name:"id" help:"Lodestone character IDs"`
	JSON        bool     `name:"json" help:"Print profiles as JSON"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
}

// WorldsCmd is the "worlds" subcommand.
type WorldsCmd struct {
	DC   string `name:"dc" short:"d" help:"Only list this data center"`
	Live bool   `help:"Read the list from the Lodestone world status page"`
	JSON bool   `name:"json" help:"Print the list as JSON"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
