package cmd

import (
	"fmt"
	"log"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/logger"
	"github.com/spigell/talent-alchemy/internal/talent"
)

// session is what every command needs to talk to the backend.
type session struct {
	config *Config
	logger *zap.Logger
	client *talent.Client
}

// setup builds the logger and the API client. Interactive commands log to
// the configured file so log lines do not draw over the screens.
func setup(interactive bool) *session {
	var paths []string
	if interactive {
		file := strings.TrimSpace(viper.GetString("log-file"))
		if file == "" {
			file = defaultLogFile
		}
		paths = append(paths, file)
	}

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), paths...)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talent-alchemy", zap.String("version", version))
	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	client := talent.New(logger)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	return &session{config: config, logger: logger, client: client}
}

func (s *session) width() int {
	if s.config.Width > 0 {
		return s.config.Width
	}
	return defaultWidth
}
