package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/filtering"
	"github.com/spigell/talent-alchemy/internal/render"
	"github.com/spigell/talent-alchemy/internal/screen"
	"github.com/spigell/talent-alchemy/internal/tui"
)

const (
	PromptQuit        = "quit"
	PromptResultsFile = "Dump results to file"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search candidates with a natural language query",
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("plain", "p", false, "print results instead of starting the interactive screen")
	searchCmd.Flags().StringP("layout", "l", "", "result layout for plain output: grid or table")
	searchCmd.Flags().StringSliceP("filter", "f", nil, "filter label to apply to plain output, repeatable")
	searchCmd.Flags().Bool("no-prompt", false, "do not offer to open a candidate after printing results")
}

func runSearch(cmd *cobra.Command, query string) {
	ctx := cmd.Context()
	plain, _ := cmd.Flags().GetBool("plain")
	s := setup(!plain)

	if !plain {
		if err := tui.Run(ctx, s.client, s.logger, tui.Options{Query: query}); err != nil {
			s.logger.Fatal("running the search screen", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(query) == "" {
		s.logger.Fatal("a query is required in plain mode")
	}

	search, err := plainSearch(ctx, cmd, s, query)
	if err != nil {
		s.logger.Fatal("preparing the search", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.New(s.width()).Search(search, render.SearchOptions{Selected: -1}))

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		return
	}

	if err := pickCandidates(ctx, out, s, search); err != nil {
		s.logger.Fatal("exiting", zap.Error(err))
	}
}

// plainSearch runs one search with the layout and filters from flags or
// config applied.
func plainSearch(ctx context.Context, cmd *cobra.Command, s *session, query string) (*screen.Search, error) {
	search := screen.NewSearch(s.logger)

	layout, _ := cmd.Flags().GetString("layout")
	filters, _ := cmd.Flags().GetStringSlice("filter")
	if s.config.Search != nil {
		if layout == "" {
			layout = s.config.Search.Layout
		}
		if len(filters) == 0 {
			filters = s.config.Search.Filters
		}
	}

	if layout != "" {
		l, ok := screen.ParseLayout(layout)
		if !ok {
			return nil, fmt.Errorf("unknown layout %q", layout)
		}
		search.SetLayout(l)
	}

	for _, f := range filters {
		label, err := filtering.Resolve(f)
		if err != nil {
			return nil, err
		}
		if label != f {
			s.logger.Info("resolved filter label", zap.String("input", f), zap.String("label", label))
		}
		search.ToggleFilter(label)
	}

	search.SetQuery(query)
	s.logger.Info("starting the search", zap.String("query", query))
	search.Run(ctx, s.client)

	return search, nil
}

// pickCandidates offers the visible results until the user goes back.
func pickCandidates(ctx context.Context, out io.Writer, s *session, search *screen.Search) error {
	visible := search.Visible()
	if len(visible) == 0 {
		return nil
	}

	items := make([]string, 0, len(visible)+1)
	for _, c := range visible {
		items = append(items, fmt.Sprintf("%s %s (%d%%)", c.ID, c.Name, screen.MatchScore(c.SimilarityScore)))
	}

	picker := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptResultsFile, PromptQuit),
		Size:  10,
	}

	for {
		i, selected, err := picker.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		switch selected {
		case PromptQuit:
			return nil
		case PromptResultsFile:
			filename, err := search.Snapshot().DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump results to file: %w", err)
			}
			s.logger.Info("dumping result to file", zap.String("filename", filename))
			continue
		}

		p := screen.NewProfile(s.logger)
		p.ApplyAll(screen.Run(ctx, s.client, p.Open(visible[i].ID)...))
		fmt.Fprintln(out, render.New(s.width()).Profile(p, render.ProfileOptions{}))
	}
}
