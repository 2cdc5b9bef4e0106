// Package setup implements the interactive configuration wizard.
package setup

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/marketscan/profitscan/config"
	"gopkg.in/yaml.v3"
)

// GeneratedConfigFile is where the wizard writes its result.
const GeneratedConfigFile = "profitscan.gen.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// RunTUI launches the terminal configuration wizard.
func RunTUI() error {
	var (
		platform        string
		pairsStr        string
		interval        string
		windowStr       string
		pollIntervalStr string
		listenAddr      string
		confirm         bool
	)

	// defaults
	pairsStr = "BTC_USDT"
	interval = "1h"
	windowStr = "168"
	pollIntervalStr = "5m"
	listenAddr = ":8080"

	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("PROFITSCAN CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Scan markets for the best single buy/sell window.\n"))

	// platform
	fmt.Println(stepStyle.Render("STEP 1: PLATFORM"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Market Data Venue").
				Options(
					huh.NewOption("Binance", "binance"),
					huh.NewOption("Bybit", "bybit"),
					huh.NewOption("Hyperliquid", "hyperliquid"),
				).
				Value(&platform),
		),
	).Run()
	if err != nil {
		return err
	}

	// pairs
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("PROFITSCAN CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: PAIRS"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trading Pairs").
				Description("Comma-separated, BASE_QUOTE format (e.g. BTC_USDT,ETH_USDT)").
				Value(&pairsStr).
				Validate(validatePairs),
		),
	).Run()
	if err != nil {
		return err
	}

	// window
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("PROFITSCAN CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 3: WINDOW"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Kline Interval").
				Description("e.g. 5m, 1h, 4h, 1d").
				Value(&interval),
			huh.NewInput().
				Title("Window Size").
				Description("Number of candles per scan (min 2)").
				Value(&windowStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("must be an integer")
					}
					if n < 2 {
						return fmt.Errorf("window must be at least 2")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return err
	}

	// timing and dashboard
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("PROFITSCAN CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 4: TIMING & DASHBOARD"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Poll Interval").
				Description("Duration string (e.g. 30s, 1m, 5m)").
				Value(&pollIntervalStr).
				Validate(func(s string) error {
					_, err := time.ParseDuration(s)
					return err
				}),
			huh.NewInput().
				Title("Dashboard Listen Address").
				Description("e.g. :8080, empty to disable").
				Value(&listenAddr),
		),
	).Run()
	if err != nil {
		return err
	}

	// confirmation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("PROFITSCAN CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf(
		"Platform: %s\nPairs: %s\nInterval: %s\nWindow: %s candles\nPoll: %s\nDashboard: %s\n",
		platform, pairsStr, interval, windowStr, pollIntervalStr, listenAddr,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	pollInterval, _ := time.ParseDuration(pollIntervalStr)
	window, _ := strconv.Atoi(windowStr)

	pairs := strings.Split(pairsStr, ",")
	for i := range pairs {
		pairs[i] = strings.TrimSpace(pairs[i])
	}

	cfgTmp := config.ConfigTmp{
		Platform:     platform,
		Pairs:        pairs,
		Interval:     interval,
		WindowSize:   window,
		PollInterval: pollInterval,
		ListenAddr:   listenAddr,
	}

	data, err := yaml.Marshal(cfgTmp)
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}

	if err := os.WriteFile(GeneratedConfigFile, data, 0644); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(
		fmt.Sprintf("\nConfiguration saved to %s\nRun: profitscan --config %s", GeneratedConfigFile, GeneratedConfigFile)))
	return nil
}

func validatePairs(s string) error {
	if s == "" {
		return fmt.Errorf("pairs cannot be empty")
	}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		parts := strings.Split(p, "_")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("invalid format: must be BASE_QUOTE (e.g. BTC_USDT)")
		}
	}
	return nil
}
