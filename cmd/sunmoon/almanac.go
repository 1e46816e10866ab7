package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zyo00ody/MeeusSunMoon/internal/almanac"
	"github.com/zyo00ody/MeeusSunMoon/internal/places"
)

var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Interactive month calendar of sun and moon events",
	Long: `Opens a full-screen month calendar with one row per day: sunrise, solar
noon, sunset and daylight duration, with the principal lunar phases
annotated. Arrow keys move between months and catalog places. Edits to
the place catalog file show up live.`,
	RunE: runAlmanac,
}

func init() {
	almanacCmd.Flags().String("month", "", "month to open as YYYY-MM (default this month)")
	rootCmd.AddCommand(almanacCmd)
}

func runAlmanac(cmd *cobra.Command, args []string) error {
	catalog, path, err := loadCatalog()
	if err != nil {
		return err
	}
	// Without a catalog, fall back to the flag/config site so the almanac
	// still has something to show.
	if len(catalog.Places) == 0 {
		s, err := resolveSite()
		if err != nil {
			return err
		}
		catalog.Add(s.place)
	}

	month := time.Now()
	if monthS, _ := cmd.Flags().GetString("month"); monthS != "" {
		month, err = time.Parse("2006-01", monthS)
		if err != nil {
			return fmt.Errorf("invalid --month %q: %w", monthS, err)
		}
	}

	model := almanac.New(catalog, viper.GetString("place"), month, engineConfig())
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Push catalog edits into the running program. A missing catalog
	// directory just means there is nothing to watch yet.
	watcher, err := places.NewWatcher(path)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err == nil {
		defer watcher.Stop()
		go func() {
			for c := range watcher.Reloads {
				p.Send(almanac.CatalogReloadedMsg{Catalog: c})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running almanac: %w", err)
	}
	return nil
}
