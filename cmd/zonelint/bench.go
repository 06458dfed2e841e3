package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dnszone/zonescan"
	"github.com/dnszone/zonescan/grammar"
)

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Parse a zone file and report throughput",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(args[0])
	},
}

func runBench(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	count := 0
	handler := grammar.NewHandler(func(p *zone.Parser, rec grammar.Record) error {
		count++
		return nil
	})

	start := time.Now()
	if err := zone.ParseFile(path, buildOptions(handler), zone.NewBuffers(64, 64), nil); err != nil {
		return err
	}
	elapsed := time.Since(start)

	bytesPerSec := float64(info.Size()) / elapsed.Seconds()
	fmt.Println(okStyle.Render(fmt.Sprintf(
		"%s: %d records in %s (%s/s)",
		path, count, elapsed, humanize.Bytes(uint64(bytesPerSec)),
	)))
	return nil
}
