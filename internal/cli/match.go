package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/firstmatch/gh-firstmatch/internal/config"
	"github.com/firstmatch/gh-firstmatch/internal/embedding"
	"github.com/firstmatch/gh-firstmatch/internal/github"
	"github.com/firstmatch/gh-firstmatch/internal/matcher"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var (
		keywords  []string
		languages []string
		limit     int
		token     string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "match [profile text]",
		Short: "Recommend beginner-friendly issues for a developer profile",
		Long: `Match a free-text developer profile against open GitHub issues.

Keywords and languages refine the issue search; the profile text drives the
similarity ranking. The command always prints a well-formed result, even
when the search or the embedding backend fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			query := args[0]

			cfgPath := config.FindConfigPath(cfgFile)
			if cfgPath == "" {
				return fmt.Errorf("config file not found")
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if errs := config.Validate(cfg); len(errs) > 0 {
				for _, e := range errs {
					fmt.Printf("config error: %v\n", e)
				}
				return fmt.Errorf("invalid configuration")
			}

			if limit <= 0 {
				limit = cfg.Defaults.TopK
			}

			fetcher := github.NewClient(time.Duration(cfg.Search.RequestTimeoutSeconds) * time.Second)
			loader := embedding.NewLoader(&cfg.Embedding)
			engine := matcher.NewEngine(fetcher, loader, cfg.Search.TopPerKeyword)

			resp := engine.TopMatchedIssues(ctx, query, keywords, languages, limit, token)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			fmt.Printf("%s (%d fetched, %d indexed)\n\n", resp.Message, resp.IssuesFetched, resp.IssuesIndexed)
			for i, r := range resp.Recommendations {
				fmt.Printf("%d. %s\n", i+1, r.Title)
				fmt.Printf("   Repo: %s | Similarity: %.1f%% | Author: %s\n", r.RepoURL, r.SimilarityScore*100, r.UserLogin)
				if r.ShortDescription != "" {
					fmt.Printf("   %s\n", r.ShortDescription)
				}
				fmt.Printf("   %s\n\n", r.IssueURL)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&keywords, "keyword", nil, "search keyword (repeatable)")
	cmd.Flags().StringArrayVar(&languages, "language", nil, "programming language hint (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum matches to return (default from config)")
	cmd.Flags().StringVar(&token, "token", "", "GitHub token (defaults to gh auth)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result envelope as JSON")

	return cmd
}
