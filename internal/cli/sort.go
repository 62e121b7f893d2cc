package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wesleyorama2/sortbench/internal/output"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

var sortCmd = &cobra.Command{
	Use:   "sort [integers...]",
	Short: "Sort integers with one variant and print its metrics",
	Long: `Sort integers given as arguments, or read from stdin when none are given,
and print the sorted sequence together with the counted operations.

Examples:
  sortbench sort 5 4 3 2 1
  sortbench sort --variant binary --format json 3 1 2
  seq 100 -1 1 | sortbench sort --variant sentinel`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSort(cmd, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runSort(cmd *cobra.Command, args []string, stdin io.Reader, stdout io.Writer) error {
	variantName, _ := cmd.Flags().GetString("variant")
	formatName, _ := cmd.Flags().GetString("format")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	variant, err := sorting.ParseVariant(variantName)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if jsonOutput {
		format = output.FormatJSON
	}

	var data []int
	if len(args) > 0 {
		data, err = parseInts(args)
	} else {
		data, err = readInts(stdin)
	}
	if err != nil {
		return err
	}

	metrics := variant.Func()(data)

	text, err := output.FormatSortResult(format, output.NewSortResult(variant, data, metrics), noColor)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)
	return err
}

// parseInts parses each field as a base-10 integer. Fields may also hold
// comma separated lists.
func parseInts(fields []string) ([]int, error) {
	var out []int
	for _, field := range fields {
		for _, part := range strings.Split(field, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", part)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

// readInts reads whitespace or comma separated integers until EOF.
func readInts(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return parseInts(words)
}

func addSortFlags(fs *pflag.FlagSet) {
	fs.String("variant", "plain", "Variant: plain, binary, sentinel, adaptive")
	fs.StringP("format", "f", "text", "Output format: text, json, yaml")
	fs.Bool("json", false, "Shorthand for --format json")
	fs.Bool("no-color", false, "Disable colored output")
}

func init() {
	addSortFlags(sortCmd.Flags())
}
