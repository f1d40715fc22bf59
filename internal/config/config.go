package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	AnnounceChannelID  string
	DatabasePath       string
	Port               string
	Timezone           string
	GreetingTime       string
	MediaDir           string
	DailyVideoDir      string
	OpenAIAPIKey       string
	OpenAIModel        string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		AnnounceChannelID:  getEnv("ANNOUNCE_CHANNEL_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./agendabot.db"),
		Port:               getEnv("PORT", "3000"),
		Timezone:           getEnv("TIMEZONE", "America/Sao_Paulo"),
		GreetingTime:       getEnv("GREETING_TIME", "07:30"),
		MediaDir:           getEnv("MEDIA_DIR", "./media"),
		DailyVideoDir:      getEnv("DAILY_VIDEO_DIR", "./daily_vid"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
