package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ka2n/mado/api"
	"github.com/ka2n/mado/config"
	"github.com/ka2n/mado/mcp"
	"github.com/ka2n/mado/view"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	configFlag   string
	endpointFlag string
	timeoutFlg   timeoutFlag
	plainFlag    bool
	browserFlag  bool
	websiteFlag  bool

	// Root command
	rootCmd = &cobra.Command{
		Use:           "mado [record-id]",
		Short:         "View records from a remote record service",
		SilenceErrors: true,
		Long: `mado is a terminal viewer for records held by a remote record service.
It fetches a record imperatively and displays its fields; in an interactive
terminal the view refreshes on demand and shows call progress.

The record identifier can come from the command line or from the "record"
entry of the configuration file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			// サブコマンドの場合は引数チェックをスキップ
			if cmd.CommandPath() != "mado" {
				return nil
			}
			if len(args) > 1 {
				return failure.New(InvalidArguments,
					failure.Message(fmt.Sprintf("accepts at most 1 arg, but received %d", len(args))),
				)
			}
			return nil
		},
		RunE: runRoot,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about mado",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mado version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}

	// List command
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all records",
		Long:  "Fetch and display every record the record service exposes",
		RunE:  runList,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Record service base URL (overrides configuration)")
	rootCmd.PersistentFlags().VarP(&timeoutFlg, "timeout", "t", "Request timeout (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&plainFlag, "plain", "p", false, "Print once without the interactive view")
	rootCmd.Flags().BoolVarP(&browserFlag, "browser", "b", false, "Open the record in browser instead of displaying it")
	rootCmd.Flags().BoolVarP(&websiteFlag, "website", "w", false, "Display the record's website as readable text")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mcp.Command(loadConfig))
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

// loadConfig loads the configuration file and merges flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if timeoutFlg.IsSet {
		cfg.TimeoutMs = int(timeoutFlg.Value / time.Millisecond)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// interactive reports whether the interactive view should be used
func interactive() bool {
	return !plainFlag && isatty.IsTerminal(os.Stdout.Fd())
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	recordID := cfg.Record
	if len(args) == 1 {
		recordID = args[0]
	}
	if recordID == "" {
		return failure.New(NoRecordSpecified,
			failure.Message("No record specified: pass a record id or set \"record\" in the configuration"),
		)
	}

	gw := api.NewRESTGateway(cfg.Endpoint, cfg.Timeout())

	if browserFlag {
		fmt.Printf("Opening record in browser: %s\n", recordID)
		return browser.OpenURL(gw.RecordURL(recordID))
	}

	if websiteFlag {
		return runWebsite(cmd.Context(), gw, recordID)
	}

	ctrl := view.NewRecordController(gw)
	updates := make(chan stateMsg, 8)
	cancel := ctrl.Subscribe(func(s view.Snapshot[api.Record]) {
		updates <- renderRecordState(s)
	})
	defer cancel()

	trigger := func() {
		ctrl.Trigger(cmd.Context(), api.Params{"id": recordID})
	}

	if interactive() {
		return runView(newFetchModel("Record "+recordID, trigger, updates))
	}
	return runPlain(trigger, updates)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gw := api.NewRESTGateway(cfg.Endpoint, cfg.Timeout())

	ctrl := view.NewListController(gw)
	updates := make(chan stateMsg, 8)
	cancel := ctrl.Subscribe(func(s view.Snapshot[[]api.Record]) {
		updates <- renderListState(s)
	})
	defer cancel()

	trigger := func() {
		ctrl.Trigger(cmd.Context(), nil)
	}

	if interactive() {
		return runView(newFetchModel("Records", trigger, updates))
	}
	return runPlain(trigger, updates)
}

// runPlain triggers one call and prints its outcome
func runPlain(trigger func(), updates <-chan stateMsg) error {
	trigger()
	for msg := range updates {
		switch msg.status {
		case view.StatusSucceeded:
			fmt.Println(msg.content)
			return nil
		case view.StatusFailed:
			return msg.err
		}
	}
	return nil
}

// runView starts the interactive record view
func runView(m *fetchModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runWebsite displays the record's website as readable markdown
func runWebsite(ctx context.Context, gw *api.RESTGateway, recordID string) error {
	rec, err := gw.Record(ctx, api.Params{"id": recordID})
	if err != nil {
		return err
	}

	site := rec.Website()
	if site == "" {
		return failure.New(NoWebsiteField,
			failure.Message("Record has no website field"),
			failure.Context{"id": recordID},
		)
	}

	md, err := api.FetchWebsite(ctx, site)
	if err != nil {
		return err
	}

	out, err := renderMarkdown(md)
	if err != nil {
		return failure.Wrap(err)
	}

	fmt.Println(out)
	return nil
}
