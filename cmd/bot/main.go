package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/mferrari/agendabot/internal/caption"
	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/config"
	"github.com/mferrari/agendabot/internal/database"
	"github.com/mferrari/agendabot/internal/domain/service"
	"github.com/mferrari/agendabot/internal/handlers"
	"github.com/mferrari/agendabot/internal/media"
	"github.com/mferrari/agendabot/internal/metrics"
	slackmsg "github.com/mferrari/agendabot/internal/slack"
	"github.com/mferrari/agendabot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	localTime, err := clock.NewLocalTime(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	mediaStore, err := media.NewStore(cfg.MediaDir, cfg.DailyVideoDir)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	dm := database.NewInstance(db)
	messenger := slackmsg.NewMessenger(cfg.SlackBotToken)
	captions := caption.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	m := metrics.New()

	services, err := service.NewInstance(service.Deps{
		DM:           dm,
		Messenger:    messenger,
		Captions:     captions,
		Clock:        clock.NewSystem(),
		LocalTime:    localTime,
		Media:        mediaStore,
		Metrics:      m,
		ChannelID:    cfg.AnnounceChannelID,
		GreetingTime: cfg.GreetingTime,
	})
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	services.Announcer.Start()
	defer services.Announcer.Stop()
	services.Greeter.Start()
	defer services.Greeter.Stop()

	eventHandler := handlers.NewEventHandler(services)
	phraseHandler := handlers.NewPhraseHandler(services)
	mediaHandler := handlers.NewMediaHandler(mediaStore)
	slackHandler := handlers.NewSlackHandler(services, localTime, clock.NewSystem(), cfg.SlackSigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", eventHandler.List)
	mux.HandleFunc("POST /events", eventHandler.Create)
	mux.HandleFunc("DELETE /events/{id}", eventHandler.Delete)
	mux.HandleFunc("GET /db-status", eventHandler.DBStatus)
	mux.HandleFunc("GET /health", eventHandler.Health)

	mux.HandleFunc("GET /frases", phraseHandler.List)
	mux.HandleFunc("POST /frases", phraseHandler.Create)
	mux.HandleFunc("DELETE /frases/{id}", phraseHandler.Delete)

	mux.HandleFunc("POST /media", mediaHandler.Upload)
	mux.HandleFunc("GET /media", mediaHandler.List)
	mux.HandleFunc("GET /media/{filename}", mediaHandler.Serve)
	mux.HandleFunc("DELETE /media/{filename}", mediaHandler.Delete)

	mux.HandleFunc("POST /slack/commands", slackHandler.HandleSlashCommand)
	mux.Handle("GET /metrics", m.Handler())

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
