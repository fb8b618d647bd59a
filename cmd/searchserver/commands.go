package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/indexer"
)

func newSearchCmd(a *app) *cobra.Command {
	var statusName string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the top documents for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := a.cfg.DefaultStatus()
			if cmd.Flags().Changed("status") {
				parsed, err := document.ParseStatus(statusName)
				if err != nil {
					return err
				}
				status = parsed
			}
			engine, err := a.loadEngine(cmd)
			if err != nil {
				return err
			}
			results, err := engine.FindTopDocumentsByStatus(args[0], status)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().StringVar(&statusName, "status", "", "only rank documents with this status (ACTIVE, IRRELEVANT, EXCLUDED, REMOVED)")
	return cmd
}

func newMatchCmd(a *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Print the query words found in one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.loadEngine(cmd)
			if err != nil {
				return err
			}
			words, status, err := engine.MatchDocument(args[0], id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "{ document_id = %d, status = %s, words = %s}\n",
				id, status, joinWords(words))
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "document id to match against")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print every document's term frequencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := a.loadEngine(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "documents: %d\n", engine.DocumentCount())
			for _, id := range engine.DocumentIDs() {
				freqs, err := engine.TermFrequencies(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d:%s\n", id, formatFrequencies(freqs))
			}
			return nil
		},
	}
}

const stdinLongDesc string = `Read a whole session from standard input.

Line 1 holds the stop words, line 2 the number of documents N. Each of the
next N documents takes two lines: its text, then its ratings as a count
followed by that many integers. Documents get ids 0..N-1 and status ACTIVE.
Every remaining line is a query; its top documents are printed.`

func newStdinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stdin",
		Short: "Load documents and answer queries from standard input",
		Long:  stdinLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, a)
		},
	}
}

func runSession(cmd *cobra.Command, a *app) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	stopLine, _ := readLine()
	engine, err := indexer.NewFromText(stopLine, a.engineOptions()...)
	if err != nil {
		return err
	}

	countLine, _ := readLine()
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return fmt.Errorf("reading document count: %w", err)
	}
	for id := 0; id < count; id++ {
		text, ok := readLine()
		if !ok {
			return fmt.Errorf("expected %d documents, got %d", count, id)
		}
		ratingsLine, _ := readLine()
		ratings, err := parseRatings(ratingsLine)
		if err != nil {
			return fmt.Errorf("document %d: %w", id, err)
		}
		if err := engine.AddDocument(id, text, document.StatusActive, ratings); err != nil {
			return err
		}
	}
	logWith(cmd).Debug("session documents loaded", "documents", engine.DocumentCount())

	for {
		query, ok := readLine()
		if !ok {
			break
		}
		results, err := engine.FindTopActive(query)
		if err != nil {
			return err
		}
		printResults(cmd.OutOrStdout(), results)
	}
	return scanner.Err()
}

// parseRatings reads "k r1 .. rk". An empty line means no ratings.
func parseRatings(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("bad ratings count %q", fields[0])
	}
	if len(fields)-1 != n {
		return nil, fmt.Errorf("ratings count %d does not match %d values", n, len(fields)-1)
	}
	ratings := make([]int, 0, n)
	for _, f := range fields[1:] {
		r, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad rating %q", f)
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}

func printResults(w io.Writer, results []document.Result) {
	for _, r := range results {
		fmt.Fprintln(w, r.String())
	}
}

func joinWords(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte(' ')
	}
	return b.String()
}

func formatFrequencies(freqs map[string]float64) string {
	terms := make([]string, 0, len(freqs))
	for term := range freqs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	var b strings.Builder
	for _, term := range terms {
		fmt.Fprintf(&b, " %s=%g", term, freqs[term])
	}
	return b.String()
}
