package appConfig

import (
	"fmt"
	"gtc/internal/ext"
	"gtc/internal/gitrepo"
	"gtc/internal/harvest"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const DefaultConfigFileName = "templateCollector.yaml"

const (
	DefaultRepoListURL      = "https://raw.githubusercontent.com/TreviCybersec/trevi-templates/main/repo-list.txt"
	DefaultWorkingDirectory = "TRASH"
	DefaultOutputDirectory  = "Template"
	DefaultInfoURL          = "https://github.com/TreviCybersec/trevi-templates"
)

type CloneBackend string

const (
	CloneBackendExec  CloneBackend = "exec"
	CloneBackendGoGit CloneBackend = "go-git"
)

type AppConfig struct {
	RepoListURL       string       `yaml:"repoListUrl"`
	WorkingDirectory  string       `yaml:"workingDirectory"`  // Transient clone root, removed at the end of every run
	OutputDirectory   string       `yaml:"outputDirectory"`   // Relative paths resolve next to the executable
	TemplateExtension string       `yaml:"templateExtension"` // Suffix a file name must end with to be harvested
	Concurrency       int          `yaml:"concurrency"`
	CloneBackend      CloneBackend `yaml:"cloneBackend"`
	CloneDepth        int          `yaml:"cloneDepth"` // 0 is a full clone
	InfoURL           string       `yaml:"infoUrl"`
}

// WithDefaults fills every unset field.
func (c AppConfig) WithDefaults() AppConfig {
	c.RepoListURL = ext.DefaultValue(c.RepoListURL, DefaultRepoListURL)
	c.WorkingDirectory = ext.DefaultValue(c.WorkingDirectory, DefaultWorkingDirectory)
	c.OutputDirectory = ext.DefaultValue(c.OutputDirectory, DefaultOutputDirectory)
	if !filepath.IsAbs(c.OutputDirectory) {
		c.OutputDirectory = ext.ExecutableSibling(c.OutputDirectory)
	}
	c.TemplateExtension = ext.DefaultValue(c.TemplateExtension, harvest.DefaultExtension)
	c.Concurrency = ext.DefaultValue(c.Concurrency, gitrepo.DefaultConcurrency)
	c.CloneBackend = ext.DefaultValue(c.CloneBackend, CloneBackendExec)
	c.InfoURL = ext.DefaultValue(c.InfoURL, DefaultInfoURL)
	return c
}

func (c AppConfig) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.CloneDepth < 0 {
		return fmt.Errorf("cloneDepth must not be negative, got %d", c.CloneDepth)
	}
	switch c.CloneBackend {
	case CloneBackendExec, CloneBackendGoGit:
	default:
		return fmt.Errorf("unknown cloneBackend %q", c.CloneBackend)
	}
	return c.validateDirectories()
}

// The working directory is removed after harvesting, so the output must live outside it.
func (c AppConfig) validateDirectories() error {
	workDir, err := filepath.Abs(c.WorkingDirectory)
	if err != nil {
		return fmt.Errorf("could not resolve workingDirectory: %w", err)
	}
	outputDir, err := filepath.Abs(c.OutputDirectory)
	if err != nil {
		return fmt.Errorf("could not resolve outputDirectory: %w", err)
	}
	if outputDir == workDir || ext.IsWithin(outputDir, workDir) {
		return fmt.Errorf("outputDirectory %s must not be inside workingDirectory %s", outputDir, workDir)
	}
	return nil
}

func (c AppConfig) NewCloner() gitrepo.Cloner {
	if c.CloneBackend == CloneBackendGoGit {
		return gitrepo.NewGoGitCloner()
	}
	return gitrepo.NewExecCloner()
}

// LoadConfig reads configFileName from the current directory, then from the home directory.
// Without a config file the defaults apply.
func LoadConfig(configFileName string) (*AppConfig, error) {
	configFilePath, found, err := locate(configFileName)
	if err != nil {
		return nil, err
	}

	config := AppConfig{}
	if found {
		data, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return nil, fmt.Errorf("could not unmarshal config file %s: %w", configFilePath, err)
		}
	}

	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFilePath, err)
	}
	return &config, nil
}

func locate(configFileName string) (string, bool, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, true, nil
	}
	if filepath.IsAbs(configFileName) {
		return "", false, fmt.Errorf("config file %s not found", configFileName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, nil
	}
	homeConfig := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfig); err == nil {
		return homeConfig, true, nil
	}
	return "", false, nil
}
