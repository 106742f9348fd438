package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spectra-hq/spectra/go-client/internal/config"
	"github.com/spectra-hq/spectra/go-client/internal/driver"
	"github.com/spectra-hq/spectra/go-client/internal/state"
	"github.com/spectra-hq/spectra/go-client/internal/timeline"
)

// #region main
func main() {
	sessionID := flag.String("session", "", "session id (generated when empty)")
	demo := flag.Bool("demo", false, "run without a backend")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *demo {
		cfg.DemoMode = true
	}

	store, err := timeline.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open timeline store: %v", err)
	}
	defer store.Close()

	d := driver.New(driver.Options{
		SessionID:    *sessionID,
		WSBaseURL:    cfg.WSBaseURL,
		LegacyWSPath: cfg.LegacyWSPath,
		Store:        store,
		Demo:         cfg.DemoMode,
		DemoStress:   cfg.DemoStress,
		OnChange:     printState,
	})
	d.Start()
	defer d.Close()

	fmt.Println("SPECTRA mission console ready.")
	fmt.Printf("  session: %s | ws: %s | demo: %v\n", d.SessionID(), cfg.WSBaseURL, cfg.DemoMode)
	fmt.Println("Commands: pick <id> | say <text> | stress <0..1> | phase <name> | state | timeline | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "exit":
			return
		case "pick":
			d.PickOption(arg)
		case "say":
			d.Say(arg)
		case "stress":
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				fmt.Println("usage: stress 0.45")
				continue
			}
			d.SetDemoStress(v)
		case "phase":
			p := state.Phase(arg)
			if !state.ValidPhase(p) {
				fmt.Println("phases: infiltrate vault escape debrief")
				continue
			}
			d.SetPhase(p)
		case "state":
			printState(d.State())
		case "timeline":
			printTimeline(d.Recorder().Entries())
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

// #endregion main

// #region output

func printState(s state.State) {
	link := "down"
	if s.Connected {
		link = "up"
	}
	fmt.Printf("[%s] link=%s t=%.0fs ui=%s/%s guidance=%s score=%.0f",
		s.Phase, link, s.TimeRemaining, s.UI.Complexity, s.UI.ColorMood,
		s.UI.GuidanceLevel, s.CurrentScore)
	if s.Oracle != nil {
		fmt.Printf(" oracle=%q", s.Oracle.Text)
	}
	if s.GameOver {
		fmt.Printf(" GAME OVER final=%.0f", s.FinalScore)
	}
	fmt.Println()
}

func printTimeline(entries []timeline.Entry) {
	if len(entries) == 0 {
		fmt.Println("no timeline entries")
		return
	}
	for i, e := range entries {
		label := "-"
		if e.Adaptation != nil {
			label = *e.Adaptation
		}
		fmt.Printf("%3d  t=%d phase=%s stress=%.2f focus=%.2f adaptation=%s\n",
			i, e.T, e.Phase, e.Stress, e.Focus, label)
	}
	sum := timeline.Summarize(entries)
	fmt.Printf("entries=%d peak_stress=%.2f top_focus=%.2f adaptations=%d\n",
		sum.Entries, sum.PeakStress, sum.TopFocus, sum.Adaptations)
}

// #endregion output
