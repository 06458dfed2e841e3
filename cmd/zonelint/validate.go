package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dnszone/zonescan"
	"github.com/dnszone/zonescan/grammar"
	"github.com/dnszone/zonescan/source"
)

var debugTokens bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a zone file and report records and errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := runValidate(args[0])
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("%s: %d records, no errors", args[0], count)))
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&debugTokens, "debug-tokens", false, "dump the raw token stream instead of records")
}

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func buildOptions(handler zone.RecordHandler) zone.Options {
	class, _ := grammar.ClassByName(cfg.DefaultClass)
	return zone.Options{
		Origin:       cfg.Origin,
		DefaultTTL:   cfg.DefaultTTL,
		DefaultClass: class,
		FriendlyTTLs: cfg.FriendlyTTLs,
		NoIncludes:   cfg.NoIncludes,
		Secondary:    cfg.Secondary,
		Open:         source.New(),
		Accept:       zone.AcceptOptions{Add: handler},
	}
}

func runValidate(path string) (int, error) {
	if debugTokens {
		return 0, runDebugTokens(path)
	}

	count := 0
	handler := grammar.NewHandler(func(p *zone.Parser, rec grammar.Record) error {
		count++
		return nil
	})

	err := zone.ParseFile(path, buildOptions(handler), zone.NewBuffers(64, 64), nil)
	return count, err
}

// debugHandler bypasses the grammar layer entirely and reprs each raw
// token as it comes off the dispatcher, for --debug-tokens.
type debugHandler struct{}

func (debugHandler) HandleTokens(p *zone.Parser) error {
	tok, err := p.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind == zone.EndOfFile {
		return io.EOF
	}
	fmt.Println(repr.String(tok, repr.Indent(" ")))
	return nil
}

func runDebugTokens(path string) error {
	opts := buildOptions(debugHandler{})
	return zone.ParseFile(path, opts, zone.NewBuffers(64, 64), nil)
}
