package cli

import (
	"io"
	"path/filepath"

	"github.com/alexanderramin/liftplan/internal/catalog"
	"github.com/alexanderramin/liftplan/internal/config"
	"github.com/alexanderramin/liftplan/internal/planner"
)

// workspace is everything loaded from disk for one command invocation.
type workspace struct {
	dataDir  string
	catalog  *catalog.Catalog
	warnings []string
	scoring  *config.Scoring
	user     *config.User
}

func loadScoring(dataDir string) (*config.Scoring, error) {
	return config.LoadScoring(filepath.Join(dataDir, catalog.ScoringFile))
}

func loadWorkspace(flags *globalFlags) (*workspace, error) {
	dataDir, configPath := resolvePaths(flags)

	res, err := catalog.Load(dataDir)
	if err != nil {
		return nil, err
	}
	sc, err := loadScoring(dataDir)
	if err != nil {
		return nil, err
	}
	user, err := config.LoadUser(configPath)
	if err != nil {
		return nil, err
	}

	return &workspace{
		dataDir:  dataDir,
		catalog:  res.Catalog,
		warnings: res.Warnings,
		scoring:  sc,
		user:     user,
	}, nil
}

// plannerOptions maps the loaded settings onto planner options.
func (w *workspace) plannerOptions(app *App, verbose bool, stderr io.Writer) planner.Options {
	opts := planner.Options{
		Strategy:      w.user.Strategy,
		Weights:       &w.scoring.Weights,
		Params:        &w.scoring.Params,
		Preferences:   w.user.MusclePreferences,
		ExcludedIDs:   w.user.ExcludedIDs(),
		ExcludedNames: w.user.ExcludedNames,
		Now:           app.Now,
		NewID:         app.NewID,
	}
	if verbose {
		opts.Observer = planner.NewLogObserver(stderr)
	}
	return opts
}

func resolvePaths(flags *globalFlags) (dataDir, configPath string) {
	return config.ResolvePaths(flags.dataDir, flags.configPath)
}
