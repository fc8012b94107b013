package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/config"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/environment"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/pages"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/site"
)

type checkOptions struct {
	env         string
	static      bool
	serve       bool
	concurrency int
	page        string
}

// checkResult is the outcome of one pages.Check.
type checkResult struct {
	page    string
	name    string
	err     error
	elapsed time.Duration
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{concurrency: 4}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run every page check against an environment",
		Long: `Sweep the site page by page. Pages run concurrently, each in its own
browser session; checks within a page run in order.

The environment and browser come from e2e.yaml, .env and TEST_ENVIRONMENT /
BROWSER_DRIVER, overridden by the flags below. --serve starts the fixture
site on a random port and checks that instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.env, "env", "e", "", "Test environment (local, development, qa, staging, production)")
	f.BoolVar(&opts.static, "static", false, "Use the JavaScript-free static driver instead of Chrome")
	f.BoolVar(&opts.serve, "serve", false, "Serve the fixture site and check it")
	f.IntVarP(&opts.concurrency, "concurrency", "c", opts.concurrency, "Pages checked at once")
	f.StringVarP(&opts.page, "page", "p", "", "Only check pages whose name contains this text")
	return cmd
}

func runCheck(ctx context.Context, out, errOut io.Writer, root *rootOptions, opts *checkOptions) error {
	env := opts.env
	if opts.serve && env == "" {
		env = string(environment.Local)
	}
	overrides := []config.Override{config.WithEnvironment(env)}
	if opts.static {
		overrides = append(overrides, config.WithDriver(browser.DriverStatic))
	}
	cfg, err := root.load(overrides...)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := root.logger.With(zap.String("run_id", runID))

	baseURL := cfg.BaseURL
	if opts.serve {
		srv, err := site.NewServer(site.Config{Addr: "127.0.0.1:0", Logger: logger})
		if err != nil {
			return err
		}
		if _, err := srv.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		baseURL = srv.URL()
	}

	groups := groupByPage(pages.Checks(), opts.page)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total == 0 {
		return fmt.Errorf("no checks match page %q", opts.page)
	}

	bcfg := cfg.Browser
	bcfg.Logger = logger
	b, err := browser.Launch(bcfg)
	if err != nil {
		return err
	}
	defer b.Close()

	fmt.Fprintf(out, "%s %s (%s, %s driver, run %s)\n",
		color.CyanString("Checking"), baseURL, cfg.Environment, bcfg.Driver, runID)
	logger.Info("check run started",
		zap.String("base_url", baseURL),
		zap.String("driver", string(bcfg.Driver)),
		zap.Int("checks", total))

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.CyanString("Checking: ")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(errOut),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(errOut, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	var (
		mu      sync.Mutex
		results = make([][]checkResult, len(groups))
	)
	start := time.Now()

	// A failing check must not cancel the other pages, so workers never
	// return an error to the group.
	g := new(errgroup.Group)
	g.SetLimit(max(opts.concurrency, 1))
	for i, checks := range groups {
		g.Go(func() error {
			res := runPage(ctx, b, baseURL, checks, logger, func() {
				mu.Lock()
				defer mu.Unlock()
				_ = bar.Add(1)
			})
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	_ = bar.Finish()

	failed := report(out, results)
	elapsed := time.Since(start).Round(time.Millisecond)
	logger.Info("check run finished",
		zap.Int("checks", total),
		zap.Int("failed", failed),
		zap.Duration("elapsed", elapsed))

	if failed > 0 {
		fmt.Fprintln(out, color.RedString("✗ %d of %d checks failed in %s", failed, total, elapsed))
		return fmt.Errorf("%d of %d checks failed", failed, total)
	}
	fmt.Fprintln(out, color.GreenString("✓ All %d checks passed in %s", total, elapsed))
	return nil
}

// groupByPage keeps declaration order of pages and of checks within a page.
func groupByPage(checks []pages.Check, filter string) [][]pages.Check {
	filter = strings.ToLower(filter)
	var (
		order  []string
		byPage = map[string][]pages.Check{}
	)
	for _, c := range checks {
		if filter != "" && !strings.Contains(strings.ToLower(c.Page), filter) {
			continue
		}
		if _, ok := byPage[c.Page]; !ok {
			order = append(order, c.Page)
		}
		byPage[c.Page] = append(byPage[c.Page], c)
	}
	groups := make([][]pages.Check, len(order))
	for i, p := range order {
		groups[i] = byPage[p]
	}
	return groups
}

// runPage runs one page's checks in a single session.
func runPage(ctx context.Context, b browser.Browser, baseURL string, checks []pages.Check, logger *zap.Logger, done func()) []checkResult {
	results := make([]checkResult, len(checks))
	session, err := b.NewSession(ctx)
	if err != nil {
		for i, c := range checks {
			results[i] = checkResult{page: c.Page, name: c.Name, err: fmt.Errorf("open session: %w", err)}
			done()
		}
		return results
	}
	defer session.Close()

	for i, c := range checks {
		log := logger.With(zap.String("page", c.Page), zap.String("check", c.Name))
		start := time.Now()
		err := c.Run(ctx, session, baseURL, pages.WithLogger(log))
		results[i] = checkResult{page: c.Page, name: c.Name, err: err, elapsed: time.Since(start)}
		if err != nil {
			log.Warn("check failed", zap.Error(err))
		} else {
			log.Debug("check passed", zap.Duration("elapsed", results[i].elapsed))
		}
		done()
	}
	return results
}

func report(w io.Writer, groups [][]checkResult) int {
	failed := 0
	for _, results := range groups {
		if len(results) == 0 {
			continue
		}
		fmt.Fprintln(w, color.New(color.Bold).Sprint(results[0].page))
		for _, r := range results {
			if r.err != nil {
				failed++
				fmt.Fprintf(w, "  %s\n", color.RedString("✗ %s", r.name))
				fmt.Fprintf(w, "    %s\n", color.YellowString("%v", r.err))
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", color.GreenString("✓ %s", r.name),
				color.HiBlackString("(%s)", r.elapsed.Round(time.Millisecond)))
		}
	}
	return failed
}
