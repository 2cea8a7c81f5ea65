package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Quiz     Quiz
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Quiz holds the weekly exam schedule knobs. They are read once at startup
// and handed to the services; nothing reads viper after this point.
type Quiz struct {
	WordCount        int    // number of words selected per weekly test
	TestStartClock   string // "HH:MM:SS" on Saturday
	TestEndClock     string // "HH:MM:SS" on Saturday
	SchedulerEnabled bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("QUIZ_WORD_COUNT", 30)
	viper.SetDefault("QUIZ_TEST_START", "10:10:00")
	viper.SetDefault("QUIZ_TEST_END", "10:25:00")
	viper.SetDefault("SCHEDULER_ENABLED", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Quiz.WordCount = viper.GetInt("QUIZ_WORD_COUNT")
	config.Quiz.TestStartClock = viper.GetString("QUIZ_TEST_START")
	config.Quiz.TestEndClock = viper.GetString("QUIZ_TEST_END")
	config.Quiz.SchedulerEnabled = viper.GetBool("SCHEDULER_ENABLED")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
