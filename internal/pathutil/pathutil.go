// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/tomate/internal/osutil"
)

const envTomate = "TOMATE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	recordFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	recordFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize resolves every path once. Later calls return the first result.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			appDir:         "tomate",
			configFileName: "config.yml",
			recordFileName: "record",
			dbFileName:     "tomate.db",
			statusFileName: "status.json",
			logFileName:    "tomate.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func RecordFilePath() string {
	return Must().recordFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envTomate))
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.recordFileName = fmt.Sprintf("record_%s", env)
	p.dbFileName = fmt.Sprintf("tomate_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("tomate_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.appDir, p.configFileName))
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	err = os.MkdirAll(dataDir, osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	p.recordFilePath = filepath.Join(dataDir, p.recordFileName)

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
