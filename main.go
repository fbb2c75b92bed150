package main

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/reels/internal/app"
	"github.com/llehouerou/reels/internal/config"
	"github.com/llehouerou/reels/internal/errmsg"
	"github.com/llehouerou/reels/internal/feed"
	"github.com/llehouerou/reels/internal/icons"
	"github.com/llehouerou/reels/internal/logging"
	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/mpris"
	"github.com/llehouerou/reels/internal/reel"
	"github.com/llehouerou/reels/internal/schedule"
	"github.com/llehouerou/reels/internal/state"
	"github.com/llehouerou/reels/internal/surface"
	"github.com/llehouerou/reels/internal/transport"
	"github.com/llehouerou/reels/internal/ui/imagecell"
)

type options struct {
	configPath string
	backend    string
	start      int
	noRestore  bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "reels [source...]",
		Short: "A full-screen vertical video feed for the terminal",
		Long: "reels pages through videos and images one per screen.\n" +
			"Sources given as arguments replace the configured feed.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Read configuration from this file only")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "Playback backend: mpv or clock")
	cmd.Flags().IntVarP(&opts.start, "start", "s", -1, "Open on this page (0-based)")
	cmd.Flags().BoolVar(&opts.noRestore, "no-restore", false, "Do not reopen the page from the last session")
	lo.Must0(cmd.RegisterFlagCompletionFunc("backend", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.BackendMPV, config.BackendClock}, cobra.ShellCompDirectiveNoFileComp
	}))
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func newTransport(cfg config.PlayerConfig, log logrus.FieldLogger) transport.Transport {
	if cfg.Backend == config.BackendMPV {
		return transport.NewMPV(cfg.MPVPath, log)
	}
	return transport.NewClock(cfg.ClockLength())
}

func run(opts options, args []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if opts.backend != "" {
		cfg.Player.Backend = opts.backend
	}

	log, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer func() { _ = closeLog() }()

	icons.Init(cfg.Icons)

	playerCfg := cfg.GetPlayerConfig(transport.Available)
	if playerCfg.Backend != config.BackendMPV && playerCfg.Backend != config.BackendClock {
		return fmt.Errorf("unknown backend %q", playerCfg.Backend)
	}
	tr := newTransport(playerCfg, log)
	defer func() {
		if err := tr.Close(); err != nil {
			log.WithError(err).Warn("close transport")
		}
	}()
	log.WithField("backend", playerCfg.Backend).Info("starting")

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	items := cfg.Items()
	if len(args) > 0 {
		items = lo.Map(args, func(src string, _ int) media.Item {
			return media.Item{Kind: media.KindFromPath(src), Source: src}
		})
	}

	timing := cfg.GetTimingConfig()
	sched := schedule.NewProgram()
	surf := surface.New(log)
	pager := feed.New(feed.Options{
		Items:     items,
		Length:    cfg.GetFeedLength(),
		Lock:      surf,
		Scheduler: sched,
		Reload:    timing.Reload(),
	})

	var images *imagecell.Renderer
	if imagecell.Supported() {
		cache, err := imagecell.NewCache("")
		if err != nil {
			log.WithError(err).Warn("image cache disabled")
		}
		images = imagecell.New(cache, log)
	}

	// Remote requests can arrive before the program runs; they are dropped.
	var prog atomic.Pointer[tea.Program]
	send := func(msg tea.Msg) {
		if p := prog.Load(); p != nil {
			p.Send(msg)
		}
	}
	var remote app.Remote
	if adapter, err := mpris.New(send); err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpMPRISStart, err))
	} else {
		defer adapter.Close()
		remote = adapter
	}

	m := app.New(app.Deps{
		Pager:     pager,
		Transport: tr,
		Surface:   surf,
		Scheduler: sched,
		State:     stateMgr,
		Remote:    remote,
		Images:    images,
		Timing: reel.Timing{
			PauseIcon: timing.PauseIcon(),
			TapIcon:   timing.TapIcon(),
			Track:     timing.Track(),
		},
		Poll:    timing.Poll(),
		Logger:  log,
		Start:   opts.start,
		Restore: !opts.noRestore,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	sched.Attach(p)
	prog.Store(p)

	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
