package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/packrat/arith"
	"github.com/dhamidi/packrat/format"
	"github.com/dhamidi/packrat/objpath"
	"github.com/dhamidi/packrat/peg"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("packrat")

func newParseCmd() *cobra.Command {
	var grammarName string
	var outputFormat string
	var verbose int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse expression or object-path input and dump the tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)

			input := io.Reader(os.Stdin)
			name := "<stdin>"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				input = f
				name = args[0]
			}

			var node *peg.Node
			var memoEntries int
			switch grammarName {
			case "expr":
				p, err := arith.ParseExpression(input, arith.WithName(name))
				if err != nil {
					return fmt.Errorf("parser: %w", err)
				}
				node = p.Parse()
				memoEntries = p.MemoEntries()
			case "objpath":
				p, err := objpath.ParsePath(input, objpath.WithName(name))
				if err != nil {
					return fmt.Errorf("parser: %w", err)
				}
				node = p.Parse()
				memoEntries = p.MemoEntries()
			default:
				return fmt.Errorf("unknown grammar: %s", grammarName)
			}

			log.Infof("parsed %s with grammar %s: %d memo entries", name, grammarName, memoEntries)

			if node == nil {
				return fmt.Errorf("parse %s: no match", name)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")
	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "expr", "grammar to parse with (expr or objpath)")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	return cmd
}
